package cmd

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/oguzhantogay/jira-cli/internal/jira"
)

var (
	editIssueKey         string
	editIssueSummary     string
	editIssueDescription string
	editIssueType        string
	editIssuePriority    string
)

var editIssueCmd = &cobra.Command{
	Use:   "edit-issue",
	Short: "Edit an issue in Jira",
	Args:  cobra.NoArgs,
	RunE:  runEditIssue,
}

func init() {
	editIssueCmd.Flags().StringVar(&editIssueKey, "issueKey", "", "The key of the issue to edit")
	editIssueCmd.Flags().StringVar(&editIssueSummary, "summary", "", "The new summary of the issue")
	editIssueCmd.Flags().StringVar(&editIssueDescription, "description", "", "The new description of the issue")
	editIssueCmd.Flags().StringVar(&editIssueType, "type", "", "The new issue type")
	editIssueCmd.Flags().StringVar(&editIssuePriority, "priority", "", "The new priority level of the issue")
}

func runEditIssue(cmd *cobra.Command, args []string) error {
	client, _ := newJiraClient()

	if err := askIfEmpty(&editIssueKey, "Issue key to edit", "PROJ-123"); err != nil {
		return err
	}
	if editIssueKey == "" {
		pterm.Error.Println("An issue key is required.")
		os.Exit(1)
	}

	// A field is part of the update only when it was explicitly provided,
	// either as an option or as a non-blank interactive answer.
	var edit jira.IssueEdit
	fields := []struct {
		flag   string
		value  *string
		prompt string
		target **string
	}{
		{"summary", &editIssueSummary, "New summary (leave blank to keep unchanged)", &edit.Summary},
		{"description", &editIssueDescription, "New description (leave blank to keep unchanged)", &edit.Description},
		{"type", &editIssueType, "New issue type (leave blank to keep unchanged)", &edit.Type},
		{"priority", &editIssuePriority, "New priority (leave blank to keep unchanged)", &edit.Priority},
	}
	for _, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			*f.target = f.value
			continue
		}
		if err := ask(f.value, f.prompt); err != nil {
			return err
		}
		if *f.value != "" {
			*f.target = f.value
		}
	}

	if edit.IsZero() {
		pterm.Warning.Println("No changes provided; issue left untouched.")
		return nil
	}

	if err := client.EditIssue(cmd.Context(), editIssueKey, edit); err != nil {
		pterm.Error.Printfln("Failed to update issue %s.", editIssueKey)
		os.Exit(1)
	}

	pterm.Success.Printfln("Issue %s updated successfully.", editIssueKey)
	return nil
}

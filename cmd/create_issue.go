package cmd

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/oguzhantogay/jira-cli/internal/jira"
)

var (
	createIssueProject     string
	createIssueSummary     string
	createIssueDescription string
	createIssueType        string
	createIssuePriority    string
)

var createIssueCmd = &cobra.Command{
	Use:   "create-issue",
	Short: "Create a new issue in Jira",
	Args:  cobra.NoArgs,
	RunE:  runCreateIssue,
}

func init() {
	createIssueCmd.Flags().StringVar(&createIssueProject, "project", "", "The project key")
	createIssueCmd.Flags().StringVar(&createIssueSummary, "summary", "", "The issue summary")
	createIssueCmd.Flags().StringVar(&createIssueDescription, "description", "", "The issue description")
	createIssueCmd.Flags().StringVar(&createIssueType, "type", "Task", "The issue type")
	createIssueCmd.Flags().StringVar(&createIssuePriority, "priority", "Medium", "The issue priority")
}

func runCreateIssue(cmd *cobra.Command, args []string) error {
	client, _ := newJiraClient()

	if err := askIfEmpty(&createIssueProject, "Project key", "PROJ"); err != nil {
		return err
	}
	if err := askIfEmpty(&createIssueSummary, "Issue summary", ""); err != nil {
		return err
	}
	if createIssueProject == "" || createIssueSummary == "" {
		pterm.Error.Println("A project key and a summary are required to create an issue.")
		os.Exit(1)
	}
	if !cmd.Flags().Changed("description") {
		if err := ask(&createIssueDescription, "Issue description (optional)"); err != nil {
			return err
		}
	}

	key, err := client.CreateIssue(cmd.Context(), jira.NewIssue{
		ProjectKey:  createIssueProject,
		Summary:     createIssueSummary,
		Description: createIssueDescription,
		Type:        createIssueType,
		Priority:    createIssuePriority,
	})
	if err != nil {
		pterm.Error.Printfln("Failed to create issue: %v", err)
		os.Exit(1)
	}

	pterm.Success.Printfln("Issue %s created successfully.", key)
	return nil
}

package cmd

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var deleteIssueKey string

var deleteIssueCmd = &cobra.Command{
	Use:   "delete-issue",
	Short: "Delete an issue in Jira",
	Args:  cobra.NoArgs,
	RunE:  runDeleteIssue,
}

func init() {
	deleteIssueCmd.Flags().StringVar(&deleteIssueKey, "issueKey", "", "The key of the issue to delete")
}

func runDeleteIssue(cmd *cobra.Command, args []string) error {
	client, _ := newJiraClient()

	if err := askIfEmpty(&deleteIssueKey, "Issue key to delete", "PROJ-123"); err != nil {
		return err
	}
	if deleteIssueKey == "" {
		pterm.Error.Println("An issue key is required.")
		os.Exit(1)
	}

	if err := client.DeleteIssue(cmd.Context(), deleteIssueKey); err != nil {
		pterm.Error.Printfln("Failed to delete issue %s.", deleteIssueKey)
		os.Exit(1)
	}

	pterm.Success.Printfln("Issue %s deleted successfully.", deleteIssueKey)
	return nil
}

package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	assignIssueKey      string
	assignIssueAssignee string
)

var assignIssueCmd = &cobra.Command{
	Use:   "assign-issue",
	Short: "Assign a user to a Jira issue",
	Args:  cobra.NoArgs,
	RunE:  runAssignIssue,
}

func init() {
	assignIssueCmd.Flags().StringVar(&assignIssueKey, "issueKey", "", "The key of the issue to assign")
	assignIssueCmd.Flags().StringVar(&assignIssueAssignee, "assignee", "", "The account ID of the user to assign to the issue")
}

func runAssignIssue(cmd *cobra.Command, args []string) error {
	client, _ := newJiraClient()

	if err := askIfEmpty(&assignIssueKey, "Issue key", "PROJ-123"); err != nil {
		return err
	}
	if assignIssueKey == "" {
		pterm.Error.Println("An issue key is required.")
		os.Exit(1)
	}

	// Without an explicit assignee, offer the project's assignable users.
	if assignIssueAssignee == "" {
		projectKey, _, _ := strings.Cut(assignIssueKey, "-")
		users, err := client.AssignableUsers(cmd.Context(), projectKey)
		if err != nil || len(users) == 0 {
			pterm.Error.Println("No assignable users found for the project.")
			os.Exit(1)
		}

		options := make([]huh.Option[string], 0, len(users))
		for _, u := range users {
			options = append(options, huh.NewOption(u.DisplayName, u.AccountID))
		}
		if err := huh.NewSelect[string]().
			Title("Select assignee").
			Options(options...).
			Value(&assignIssueAssignee).
			Run(); err != nil {
			return err
		}
	}

	if err := client.AssignIssue(cmd.Context(), assignIssueKey, assignIssueAssignee); err != nil {
		pterm.Error.Printfln("Failed to assign issue %s.", assignIssueKey)
		os.Exit(1)
	}

	pterm.Success.Printfln("Issue %s assigned successfully.", assignIssueKey)
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var showIssueKey string

var showIssueCmd = &cobra.Command{
	Use:   "show-issue",
	Short: "Show details for a specific issue",
	Args:  cobra.NoArgs,
	RunE:  runShowIssue,
}

func init() {
	showIssueCmd.Flags().StringVar(&showIssueKey, "issueKey", "", "The ID or key of the Jira issue")
}

func runShowIssue(cmd *cobra.Command, args []string) error {
	if showIssueKey == "" {
		pterm.Error.Println("Error: The --issueKey option is required.")
		os.Exit(1)
	}

	client, _ := newJiraClient()
	issue, err := client.Issue(cmd.Context(), showIssueKey)
	if err != nil {
		pterm.Error.Printfln("Error: Issue with key '%s' not found or could not be retrieved.", showIssueKey)
		os.Exit(1)
	}

	status := ""
	if issue.Fields.Status != nil {
		status = issue.Fields.Status.Name
	}
	description := issue.Fields.DescriptionText()
	if description == "" {
		description = "No description available"
	}

	fmt.Printf("%s %s\n", pterm.Bold.Sprint("Issue Key:"), issue.Key)
	fmt.Printf("%s %s\n", pterm.Bold.Sprint("Summary:"), issue.Fields.Summary)
	fmt.Printf("%s %s\n", pterm.Bold.Sprint("Status:"), status)
	fmt.Printf("%s %s\n", pterm.Bold.Sprint("Description:"), description)
	return nil
}

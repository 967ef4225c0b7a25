package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	listIssuesProject string
	listIssuesStatus  string
	listIssuesRange   string
)

var listIssuesCmd = &cobra.Command{
	Use:   "list-issues",
	Short: "List issues for a specified project",
	Args:  cobra.NoArgs,
	RunE:  runListIssues,
}

func init() {
	listIssuesCmd.Flags().StringVarP(&listIssuesProject, "project", "p", "", "The project key")
	listIssuesCmd.Flags().StringVarP(&listIssuesStatus, "status", "s", "", "Filter issues by status")
	listIssuesCmd.Flags().StringVarP(&listIssuesRange, "range", "r", "0-9", `Specify a range for pagination, e.g., "5-10"`)
}

func runListIssues(cmd *cobra.Command, args []string) error {
	if listIssuesProject == "" {
		pterm.Error.Println("Error: The --project option is required.")
		os.Exit(1)
	}

	client, _ := newJiraClient()
	startAt, maxResults := parseRange(listIssuesRange)

	issues, err := client.IssuesByProject(cmd.Context(), listIssuesProject, listIssuesStatus, startAt, maxResults)
	if err != nil || len(issues) == 0 {
		pterm.Error.Println("No issues found or an error occurred while fetching issues.")
		return nil
	}

	for _, issue := range issues {
		status := ""
		if issue.Fields.Status != nil {
			status = issue.Fields.Status.Name
		}
		fmt.Printf("%s (%s): %s\n", pterm.FgCyan.Sprint(issue.Key), status, issue.Fields.Summary)
	}
	return nil
}

// parseRange parses an inclusive "start-end" pagination range, e.g. "5-10"
// into startAt 5 and maxResults 6. Malformed input falls back to "0-9".
func parseRange(s string) (startAt, maxResults int) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 10
	}
	start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || start < 0 || end < start {
		return 0, 10
	}
	return start, end - start + 1
}

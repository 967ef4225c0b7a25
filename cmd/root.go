package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oguzhantogay/jira-cli/internal/config"
	"github.com/oguzhantogay/jira-cli/internal/jira"
)

var rootCmd = &cobra.Command{
	Use:   "jira",
	Short: "Jira CLI – issues, projects and worklog reports from the terminal",
	Long: `jira is a command-line client for Jira: create, edit, assign and inspect
issues and projects, and render worklog reports for any period.
Connection settings live in ~/.jira-cli/config.json; the JIRA_BASE_URI,
JIRA_USERNAME, JIRA_API_TOKEN and JIRA_ACCOUNT_ID environment variables
override the file.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(showWorkLogCmd)
	rootCmd.AddCommand(listProjectsCmd)
	rootCmd.AddCommand(createProjectCmd)
	rootCmd.AddCommand(listIssuesCmd)
	rootCmd.AddCommand(showIssueCmd)
	rootCmd.AddCommand(createIssueCmd)
	rootCmd.AddCommand(editIssueCmd)
	rootCmd.AddCommand(deleteIssueCmd)
	rootCmd.AddCommand(assignIssueCmd)
	rootCmd.AddCommand(showUserDetailCmd)
	rootCmd.AddCommand(configureAccountIDCmd)
}

// newJiraClient loads the configuration and builds a client from it.
// Missing connection settings abort the command.
func newJiraClient() (*jira.Client, config.Config) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.BaseURL == "" {
		fmt.Fprintf(os.Stderr, "No Jira base URL configured. Set base_url in ~/.jira-cli/config.json or %s.\n", config.EnvBaseURL)
		os.Exit(2)
	}
	client := jira.NewClient(jira.Config{
		BaseURL:  cfg.BaseURL,
		Email:    cfg.Email,
		APIToken: cfg.APIToken,
	})
	return client, cfg
}

package cmd

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/oguzhantogay/jira-cli/internal/config"
)

var configureAccountIDCmd = &cobra.Command{
	Use:   "configure-account-id",
	Short: "Fetch your Jira accountId and save it as the default for reports",
	Args:  cobra.NoArgs,
	RunE:  runConfigureAccountID,
}

func runConfigureAccountID(cmd *cobra.Command, args []string) error {
	client, _ := newJiraClient()

	user, err := client.Myself(cmd.Context())
	if err != nil || user.AccountID == "" {
		pterm.Error.Println("Failed to retrieve accountId. Please check your Jira credentials.")
		os.Exit(1)
	}

	if err := config.SaveAccountID(user.AccountID); err != nil {
		pterm.Error.Printfln("Failed to save accountId: %v", err)
		os.Exit(1)
	}

	pterm.Success.Printfln("Account id '%s' saved to ~/.jira-cli/config.json.", user.AccountID)
	return nil
}

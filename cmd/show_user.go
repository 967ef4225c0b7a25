package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var showUserDetailCmd = &cobra.Command{
	Use:   "show-user-detail",
	Short: "Show details of the currently authenticated Jira user",
	Args:  cobra.NoArgs,
	RunE:  runShowUserDetail,
}

func runShowUserDetail(cmd *cobra.Command, args []string) error {
	client, _ := newJiraClient()

	user, err := client.Myself(cmd.Context())
	if err != nil {
		pterm.Error.Println("Failed to retrieve user details.")
		os.Exit(1)
	}

	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	pterm.Bold.Println("User Details:")
	fmt.Println("Account ID: " + user.AccountID)
	fmt.Println("Display Name: " + user.DisplayName)
	fmt.Println("Email Address: " + orNA(user.EmailAddress))
	fmt.Println("Time Zone: " + orNA(user.TimeZone))
	fmt.Println("Locale: " + orNA(user.Locale))
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/oguzhantogay/jira-cli/internal/timecalc"
	"github.com/oguzhantogay/jira-cli/internal/worklog"
)

var (
	workLogPeriod    string
	workLogDetailed  bool
	workLogAccountID string
)

var showWorkLogCmd = &cobra.Command{
	Use:   "show-work-log",
	Short: "Show the user's worklog totals for a specified period",
	Args:  cobra.NoArgs,
	RunE:  runShowWorkLog,
}

func init() {
	showWorkLogCmd.Flags().StringVar(&workLogPeriod, "period", "daily", "The period for worklogs (daily, weekly, biweekly, monthly)")
	showWorkLogCmd.Flags().BoolVar(&workLogDetailed, "detailed", false, "Show detailed worklog breakdown by issue")
	showWorkLogCmd.Flags().StringVar(&workLogAccountID, "accountId", "", "The accountId of the user to show worklogs for")
}

func runShowWorkLog(cmd *cobra.Command, args []string) error {
	client, cfg := newJiraClient()

	accountID := workLogAccountID
	if accountID == "" {
		accountID = cfg.AccountID
	}
	if accountID == "" {
		pterm.Error.Println("Please provide an accountId using the --accountId option.")
		os.Exit(1)
	}

	period := timecalc.ParsePeriod(workLogPeriod)
	start, end := timecalc.PeriodRange(period, time.Now())

	fmt.Printf("Time period: %s to %s\n", start.Format("2006-01-02"), end.Format("2006-01-02"))
	fmt.Println()

	fetcher := worklog.NewFetcher(client, nil)
	agg := fetcher.Fetch(cmd.Context(), accountID, start, end, workLogDetailed)

	rep := worklog.BuildReport(agg, period)
	worklog.Fprint(os.Stdout, rep)

	fmt.Printf("Total: %s hours\n", timecalc.FormatHours(rep.TotalSeconds))
	return nil
}

package worklog_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/oguzhantogay/jira-cli/internal/timecalc"
	"github.com/oguzhantogay/jira-cli/internal/worklog"
)

func TestBuildReport_DailySingleRow(t *testing.T) {
	agg := worklog.NewAggregate(day(2024, 6, 10), day(2024, 6, 10), false)
	agg.Add("2024-06-10", "PROJ-1", "Fix login", 3600)

	rep := worklog.BuildReport(agg, timecalc.PeriodDaily)

	if rep.Notice != "" {
		t.Fatalf("unexpected notice %q", rep.Notice)
	}
	if len(rep.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(rep.Sections))
	}
	table := rep.Sections[0].Table
	wantRows := [][]string{{"2024-06-10", "1"}}
	if !reflect.DeepEqual(table.Rows, wantRows) {
		t.Errorf("rows = %v, want %v", table.Rows, wantRows)
	}
	if rep.TotalSeconds != 3600 {
		t.Errorf("TotalSeconds = %d, want 3600", rep.TotalSeconds)
	}
	if got := timecalc.FormatHours(rep.TotalSeconds); got != "1" {
		t.Errorf("total hours = %q, want %q", got, "1")
	}
}

func TestBuildReport_DailyDetailed(t *testing.T) {
	agg := worklog.NewAggregate(day(2024, 6, 10), day(2024, 6, 10), true)
	agg.Add("2024-06-10", "PROJ-1", "Fix login", 3600)
	agg.Add("2024-06-10", "PROJ-2", "Update docs", 1800)

	rep := worklog.BuildReport(agg, timecalc.PeriodDaily)

	table := rep.Sections[0].Table
	wantRows := [][]string{
		{"PROJ-1", "1", "Fix login"},
		{"PROJ-2", "0.5", "Update docs"},
		{"Total", "1.5", ""},
	}
	if !reflect.DeepEqual(table.Rows, wantRows) {
		t.Errorf("rows = %v, want %v", table.Rows, wantRows)
	}
	if rep.TotalSeconds != 5400 {
		t.Errorf("TotalSeconds = %d, want 5400", rep.TotalSeconds)
	}
}

func TestBuildReport_WeeklyTotals(t *testing.T) {
	// Monday through Saturday; Sunday is not part of the range.
	agg := worklog.NewAggregate(day(2024, 6, 10), day(2024, 6, 15), false)
	for d := 10; d <= 15; d++ {
		agg.Add(time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), "", "", 3600)
	}

	rep := worklog.BuildReport(agg, timecalc.PeriodWeekly)

	table := rep.Sections[0].Table
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2 (totals + column sums)", len(table.Rows))
	}
	wantRow := []string{"Total", "1", "1", "1", "1", "1", "1", "-"}
	if !reflect.DeepEqual(table.Rows[0], wantRow) {
		t.Errorf("row = %v, want %v", table.Rows[0], wantRow)
	}
	if !reflect.DeepEqual(table.Rows[1], wantRow) {
		t.Errorf("sum row = %v, want %v", table.Rows[1], wantRow)
	}
	if got := timecalc.FormatHours(rep.TotalSeconds); got != "6" {
		t.Errorf("total hours = %q, want %q", got, "6")
	}
}

func TestBuildReport_WeeklyDetailed(t *testing.T) {
	agg := worklog.NewAggregate(day(2024, 6, 10), day(2024, 6, 16), true)
	agg.Add("2024-06-10", "ISSUE-1", "first", 1800) // Monday
	agg.Add("2024-06-10", "ISSUE-2", "second", 1800)

	rep := worklog.BuildReport(agg, timecalc.PeriodWeekly)

	table := rep.Sections[0].Table
	wantRows := [][]string{
		{"ISSUE-1", "0.5", "-", "-", "-", "-", "-", "-"},
		{"ISSUE-2", "0.5", "-", "-", "-", "-", "-", "-"},
		{"Total", "1", "-", "-", "-", "-", "-", "-"},
	}
	if !reflect.DeepEqual(table.Rows, wantRows) {
		t.Errorf("rows = %v, want %v", table.Rows, wantRows)
	}
	if got := timecalc.FormatHours(rep.TotalSeconds); got != "1" {
		t.Errorf("total hours = %q, want %q", got, "1")
	}
}

func TestBuildReport_WeeklyRoundingFromSeconds(t *testing.T) {
	// Three days of 2000s each: cells show 0.56 but the grand total is
	// computed from seconds (6000s = 1.67h), not from 3 × 0.56.
	agg := worklog.NewAggregate(day(2024, 6, 10), day(2024, 6, 16), false)
	agg.Add("2024-06-10", "", "", 2000)
	agg.Add("2024-06-11", "", "", 2000)
	agg.Add("2024-06-12", "", "", 2000)

	rep := worklog.BuildReport(agg, timecalc.PeriodWeekly)

	row := rep.Sections[0].Table.Rows[0]
	if row[1] != "0.56" || row[2] != "0.56" || row[3] != "0.56" {
		t.Errorf("cells = %v, want 0.56 on Mon..Wed", row)
	}
	if rep.TotalSeconds != 6000 {
		t.Errorf("TotalSeconds = %d, want 6000", rep.TotalSeconds)
	}
	if got := timecalc.FormatHours(rep.TotalSeconds); got != "1.67" {
		t.Errorf("total hours = %q, want %q", got, "1.67")
	}
}

func TestBuildReport_BiweeklySplitsAtEarliestDate(t *testing.T) {
	// Previous Monday through the current Friday (12 days).
	agg := worklog.NewAggregate(day(2024, 6, 10), day(2024, 6, 21), false)
	agg.Add("2024-06-11", "", "", 3600)  // week 1 Tuesday
	agg.Add("2024-06-18", "", "", 7200)  // week 2 Tuesday
	agg.Add("2024-06-21", "", "", 1800)  // week 2 Friday

	rep := worklog.BuildReport(agg, timecalc.PeriodBiweekly)

	if len(rep.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(rep.Sections))
	}
	if rep.Sections[0].Label != "Week 1:" || rep.Sections[1].Label != "Week 2:" {
		t.Errorf("labels = %q, %q", rep.Sections[0].Label, rep.Sections[1].Label)
	}

	week1 := rep.Sections[0].Table.Rows[0]
	if week1[2] != "1" {
		t.Errorf("week 1 Tuesday = %q, want %q", week1[2], "1")
	}
	week2 := rep.Sections[1].Table.Rows[0]
	if week2[2] != "2" || week2[5] != "0.5" {
		t.Errorf("week 2 row = %v, want Tuesday 2 and Friday 0.5", week2)
	}
	if rep.TotalSeconds != 12600 {
		t.Errorf("TotalSeconds = %d, want 12600", rep.TotalSeconds)
	}
}

func TestBuildReport_MonthlyCalendar(t *testing.T) {
	// June 2024 starts on a Saturday.
	agg := worklog.NewAggregate(day(2024, 6, 1), day(2024, 6, 30), false)
	agg.Add("2024-06-10", "", "", 3600)

	rep := worklog.BuildReport(agg, timecalc.PeriodMonthly)

	table := rep.Sections[0].Table
	if table.Title != "Monthly Work Log - June 2024" {
		t.Errorf("title = %q", table.Title)
	}
	if len(table.Rows) != 5 {
		t.Fatalf("calendar rows = %d, want 5", len(table.Rows))
	}

	// Leading blanks before Saturday the 1st.
	first := table.Rows[0]
	for i := 0; i < 5; i++ {
		if first[i] != "" {
			t.Errorf("cell %d of first row = %q, want empty", i, first[i])
		}
	}
	if first[5] != "1" || first[6] != "2" {
		t.Errorf("first row ends = %q, %q, want day numbers 1 and 2", first[5], first[6])
	}

	// The 10th is the Monday of the third row and carries hours.
	if got := table.Rows[2][0]; got != "10  1h" {
		t.Errorf("day 10 cell = %q, want %q", got, "10  1h")
	}
	// A zero day shows just the day number.
	if got := table.Rows[2][1]; got != "11" {
		t.Errorf("day 11 cell = %q, want %q", got, "11")
	}
	if rep.TotalSeconds != 3600 {
		t.Errorf("TotalSeconds = %d, want 3600", rep.TotalSeconds)
	}
}

func TestBuildReport_MonthlyDetailedBreakdown(t *testing.T) {
	agg := worklog.NewAggregate(day(2024, 6, 1), day(2024, 6, 30), true)
	agg.Add("2024-06-03", "ISSUE-1", "first", 3600)
	agg.Add("2024-06-04", "ISSUE-2", "second", 3600)
	agg.Add("2024-06-05", "ISSUE-2", "second", 3600)
	agg.Add("2024-06-05", "ISSUE-3", "third", 3600)

	rep := worklog.BuildReport(agg, timecalc.PeriodMonthly)

	if len(rep.Sections) != 2 {
		t.Fatalf("sections = %d, want 2 (calendar + breakdown)", len(rep.Sections))
	}
	breakdown := rep.Sections[1]
	if breakdown.Label != "Issue Breakdown:" {
		t.Errorf("label = %q", breakdown.Label)
	}

	// Sorted by time descending; the ISSUE-1 / ISSUE-3 tie keeps
	// first-encounter order.
	wantRows := [][]string{
		{"ISSUE-2", "2", "second"},
		{"ISSUE-1", "1", "first"},
		{"ISSUE-3", "1", "third"},
		{"Total", "4", ""},
	}
	if !reflect.DeepEqual(breakdown.Table.Rows, wantRows) {
		t.Errorf("rows = %v, want %v", breakdown.Table.Rows, wantRows)
	}
}

func TestBuildReport_EmptyAggregates(t *testing.T) {
	tests := []struct {
		period timecalc.Period
		notice string
	}{
		{timecalc.PeriodDaily, "No worklogs found for this day."},
		{timecalc.PeriodWeekly, "No worklogs found for this week."},
		{timecalc.PeriodBiweekly, "No worklogs found for this period."},
		{timecalc.PeriodMonthly, "No worklogs found for this month."},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			agg := worklog.NewAggregate(day(2024, 6, 10), day(2024, 6, 16), false)
			rep := worklog.BuildReport(agg, tt.period)
			if rep.Notice != tt.notice {
				t.Errorf("notice = %q, want %q", rep.Notice, tt.notice)
			}
			if len(rep.Sections) != 0 {
				t.Errorf("sections = %d, want 0", len(rep.Sections))
			}
			if rep.TotalSeconds != 0 {
				t.Errorf("TotalSeconds = %d, want 0", rep.TotalSeconds)
			}
		})
	}
}

func TestBuildReport_Idempotent(t *testing.T) {
	agg := worklog.NewAggregate(day(2024, 6, 10), day(2024, 6, 16), true)
	agg.Add("2024-06-10", "ISSUE-1", "first", 1800)
	agg.Add("2024-06-12", "ISSUE-2", "second", 5400)

	for _, period := range []timecalc.Period{
		timecalc.PeriodDaily, timecalc.PeriodWeekly, timecalc.PeriodBiweekly, timecalc.PeriodMonthly,
	} {
		first := worklog.BuildReport(agg, period)
		second := worklog.BuildReport(agg, period)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: repeated builds differ", period)
		}
	}
}

package worklog

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/oguzhantogay/jira-cli/internal/timecalc"
)

// Table is a rendered-to-be grid: a title line, a header row and data rows.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Section is one table of a report with an optional label line above it.
type Section struct {
	Label string
	Table Table
}

// Report is the shaped output of a worklog aggregate for one period.
// When there is nothing to show, Notice carries the message instead of
// Sections. TotalSeconds is always the second-level sum, so the grand
// total printed by the caller does not compound per-cell rounding.
type Report struct {
	Sections     []Section
	Notice       string
	TotalSeconds int
}

var weekdayHeaders = []string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// BuildReport shapes an aggregate into the report form of the period.
// It is a pure function of its inputs; the aggregate is never mutated.
func BuildReport(agg *Aggregate, period timecalc.Period) Report {
	switch period {
	case timecalc.PeriodWeekly:
		return buildWeeklyReport(agg)
	case timecalc.PeriodBiweekly:
		return buildBiweeklyReport(agg)
	case timecalc.PeriodMonthly:
		return buildMonthlyReport(agg)
	default:
		return buildDailyReport(agg)
	}
}

func buildDailyReport(agg *Aggregate) Report {
	dates := agg.Dates()
	if len(dates) == 0 || agg.TotalSeconds() == 0 {
		return Report{Notice: "No worklogs found for this day."}
	}

	date := dates[0]
	day := agg.Days[date]

	if agg.Detailed {
		t := Table{
			Title:   "Work Log - " + date,
			Headers: []string{"Issue", "Hours", "Summary"},
		}
		for _, key := range agg.IssueOrder() {
			bucket, ok := day.Issues[key]
			if !ok {
				continue
			}
			t.Rows = append(t.Rows, []string{key, timecalc.FormatHours(bucket.Seconds), bucket.Summary})
		}
		t.Rows = append(t.Rows, []string{"Total", timecalc.FormatHours(day.Seconds), ""})
		return Report{Sections: []Section{{Table: t}}, TotalSeconds: day.Seconds}
	}

	t := Table{
		Title:   "Work Log - " + date,
		Headers: []string{"Date", "Hours"},
		Rows:    [][]string{{date, timecalc.FormatHours(day.Seconds)}},
	}
	return Report{Sections: []Section{{Table: t}}, TotalSeconds: day.Seconds}
}

func buildWeeklyReport(agg *Aggregate) Report {
	if agg.TotalSeconds() == 0 {
		return Report{Notice: "No worklogs found for this week."}
	}
	table, total := buildWeekTable(agg, agg.Dates())
	return Report{Sections: []Section{{Table: table}}, TotalSeconds: total}
}

// buildWeekTable lays the given dates of the aggregate into a Mon..Sun
// grid. Days land in columns by ISO weekday, so partial weeks render with
// dash placeholders in the remaining columns.
func buildWeekTable(agg *Aggregate, dates []string) (Table, int) {
	t := Table{Title: "Weekly Work Log", Headers: weekdayHeaders}
	total := 0
	var colSums [8]float64

	if agg.Detailed {
		for _, key := range agg.IssueOrder() {
			var cells [8]int
			seen := false
			for _, date := range dates {
				bucket, ok := agg.Days[date].Issues[key]
				if !ok {
					continue
				}
				cells[weekdayOf(date)] += bucket.Seconds
				seen = true
			}
			if !seen {
				continue
			}

			row := make([]string, 8)
			row[0] = key
			for i := 1; i <= 7; i++ {
				if cells[i] == 0 {
					row[i] = "-"
					continue
				}
				hours := timecalc.RoundHours(cells[i])
				row[i] = timecalc.FormatHoursValue(hours)
				colSums[i] += hours
				total += cells[i]
			}
			t.Rows = append(t.Rows, row)
		}
	} else {
		var cells [8]int
		for _, date := range dates {
			day := agg.Days[date]
			if day.Seconds == 0 {
				continue
			}
			cells[weekdayOf(date)] += day.Seconds
			total += day.Seconds
		}

		row := make([]string, 8)
		row[0] = "Total"
		for i := 1; i <= 7; i++ {
			if cells[i] == 0 {
				row[i] = "-"
				continue
			}
			hours := timecalc.RoundHours(cells[i])
			row[i] = timecalc.FormatHoursValue(hours)
			colSums[i] += hours
		}
		t.Rows = append(t.Rows, row)
	}

	// Column sums over the displayed hour values.
	totalRow := make([]string, 8)
	totalRow[0] = "Total"
	for i := 1; i <= 7; i++ {
		if colSums[i] == 0 {
			totalRow[i] = "-"
			continue
		}
		totalRow[i] = timecalc.FormatHoursValue(colSums[i])
	}
	t.Rows = append(t.Rows, totalRow)

	return t, total
}

func buildBiweeklyReport(agg *Aggregate) Report {
	dates := agg.Dates()
	if len(dates) == 0 || agg.TotalSeconds() == 0 {
		return Report{Notice: "No worklogs found for this period."}
	}

	// Two consecutive 7-day buckets anchored at the earliest date.
	first, _ := time.Parse("2006-01-02", dates[0])
	split := first.AddDate(0, 0, 7)

	var week1, week2 []string
	for _, date := range dates {
		d, _ := time.Parse("2006-01-02", date)
		if d.Before(split) {
			week1 = append(week1, date)
		} else {
			week2 = append(week2, date)
		}
	}

	t1, total1 := buildWeekTable(agg, week1)
	t2, total2 := buildWeekTable(agg, week2)
	return Report{
		Sections: []Section{
			{Label: "Week 1:", Table: t1},
			{Label: "Week 2:", Table: t2},
		},
		TotalSeconds: total1 + total2,
	}
}

func buildMonthlyReport(agg *Aggregate) Report {
	dates := agg.Dates()
	if len(dates) == 0 || agg.TotalSeconds() == 0 {
		return Report{Notice: "No worklogs found for this month."}
	}

	first, _ := time.Parse("2006-01-02", dates[0])
	monthStart := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, first.Location())
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	cal := Table{
		Title:   "Monthly Work Log - " + monthStart.Format("January 2006"),
		Headers: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	}

	row := make([]string, 7)
	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		current := monthStart.AddDate(0, 0, dayNum-1)
		wd := timecalc.ISOWeekday(current)

		cell := strconv.Itoa(dayNum)
		if day, ok := agg.Days[current.Format("2006-01-02")]; ok && day.Seconds > 0 {
			cell = fmt.Sprintf("%d  %sh", dayNum, timecalc.FormatHours(day.Seconds))
		}
		row[wd-1] = cell

		// Rows wrap after Sunday or at month end.
		if wd == 7 || dayNum == daysInMonth {
			cal.Rows = append(cal.Rows, row)
			row = make([]string, 7)
		}
	}

	total := agg.TotalSeconds()
	sections := []Section{{Table: cal}}
	if agg.Detailed {
		sections = append(sections, Section{Label: "Issue Breakdown:", Table: buildBreakdownTable(agg, total)})
	}
	return Report{Sections: sections, TotalSeconds: total}
}

// buildBreakdownTable sums each issue across the whole range and sorts by
// time spent descending. Ties keep the order issues were first seen in.
func buildBreakdownTable(agg *Aggregate, total int) Table {
	type issueSum struct {
		key     string
		seconds int
		summary string
	}

	var sums []issueSum
	for _, key := range agg.IssueOrder() {
		entry := issueSum{key: key}
		for _, date := range agg.Dates() {
			bucket, ok := agg.Days[date].Issues[key]
			if !ok {
				continue
			}
			entry.seconds += bucket.Seconds
			if entry.summary == "" {
				entry.summary = bucket.Summary
			}
		}
		sums = append(sums, entry)
	}
	sort.SliceStable(sums, func(i, j int) bool { return sums[i].seconds > sums[j].seconds })

	t := Table{Headers: []string{"Issue", "Hours", "Summary"}}
	for _, s := range sums {
		t.Rows = append(t.Rows, []string{s.key, timecalc.FormatHours(s.seconds), s.summary})
	}
	t.Rows = append(t.Rows, []string{"Total", timecalc.FormatHours(total), ""})
	return t
}

func weekdayOf(date string) int {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 1
	}
	return timecalc.ISOWeekday(d)
}

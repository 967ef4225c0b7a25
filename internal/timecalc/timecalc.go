package timecalc

import (
	"math"
	"strconv"
	"time"
)

// Period is the aggregation granularity for worklog reports.
type Period string

const (
	PeriodDaily    Period = "daily"
	PeriodWeekly   Period = "weekly"
	PeriodBiweekly Period = "biweekly"
	PeriodMonthly  Period = "monthly"
)

// ParsePeriod maps a user-supplied period name to a Period.
// Unknown values fall back to daily.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodWeekly, PeriodBiweekly, PeriodMonthly:
		return Period(s)
	}
	return PeriodDaily
}

// ISOWeekday returns the ISO weekday number of t: 1 (Monday) to 7 (Sunday).
func ISOWeekday(t time.Time) int {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

// PeriodRange returns the inclusive [start, end] range for a period relative
// to today. start is normalized to 00:00:00 and end to 23:59:59 local time.
// For every period, end never projects past today.
func PeriodRange(p Period, today time.Time) (time.Time, time.Time) {
	var start, end time.Time

	switch p {
	case PeriodWeekly:
		// Monday of the current week through Sunday, clamped to today.
		start = today.AddDate(0, 0, -(ISOWeekday(today) - 1))
		end = start.AddDate(0, 0, 6)
		if end.After(EndOfDay(today)) {
			end = today
		}
	case PeriodBiweekly:
		// Monday of the previous week through today.
		start = today.AddDate(0, 0, -(ISOWeekday(today) - 1 + 7))
		end = today
	case PeriodMonthly:
		// First of the month through the last day, clamped to today.
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		end = start.AddDate(0, 1, -1)
		if end.After(EndOfDay(today)) {
			end = today
		}
	default:
		start, end = today, today
	}

	return StartOfDay(start), EndOfDay(end)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// RoundHours converts seconds to hours rounded to 2 decimal places.
func RoundHours(seconds int) float64 {
	return math.Round(float64(seconds)/3600*100) / 100
}

// FormatHours formats seconds as hours rounded to 2 decimal places with
// trailing zeros trimmed: 3600 -> "1", 1800 -> "0.5", 26100 -> "7.25".
func FormatHours(seconds int) string {
	return FormatHoursValue(RoundHours(seconds))
}

// FormatHoursValue formats an already-rounded hour value the same way
// FormatHours does.
func FormatHoursValue(hours float64) string {
	return strconv.FormatFloat(math.Round(hours*100)/100, 'f', -1, 64)
}

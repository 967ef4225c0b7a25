package timecalc_test

import (
	"testing"
	"time"

	"github.com/oguzhantogay/jira-cli/internal/timecalc"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		input string
		want  timecalc.Period
	}{
		{"daily", timecalc.PeriodDaily},
		{"weekly", timecalc.PeriodWeekly},
		{"biweekly", timecalc.PeriodBiweekly},
		{"monthly", timecalc.PeriodMonthly},
		{"", timecalc.PeriodDaily},
		{"quarterly", timecalc.PeriodDaily},
		{"WEEKLY", timecalc.PeriodDaily},
	}
	for _, tt := range tests {
		got := timecalc.ParsePeriod(tt.input)
		if got != tt.want {
			t.Errorf("ParsePeriod(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPeriodRange(t *testing.T) {
	// 2026-02-27 is a Friday.
	friday := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		period    timecalc.Period
		today     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "daily is today only",
			period:    timecalc.PeriodDaily,
			today:     friday,
			wantStart: time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "weekly clamps to today mid-week",
			period:    timecalc.PeriodWeekly,
			today:     friday,
			wantStart: time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "weekly covers the full week on Sunday",
			period:    timecalc.PeriodWeekly,
			today:     time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), // Sunday
			wantStart: time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "biweekly starts on the previous Monday",
			period:    timecalc.PeriodBiweekly,
			today:     friday,
			wantStart: time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "monthly clamps to today mid-month",
			period:    timecalc.PeriodMonthly,
			today:     time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 2, 15, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "monthly reaches the last day on the last day",
			period:    timecalc.PeriodMonthly,
			today:     time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := timecalc.PeriodRange(tt.period, tt.today)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestPeriodRange_Bounds(t *testing.T) {
	periods := []timecalc.Period{
		timecalc.PeriodDaily, timecalc.PeriodWeekly, timecalc.PeriodBiweekly, timecalc.PeriodMonthly,
	}
	// A spread of weekdays and month positions.
	days := []time.Time{
		time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 13, 0, 30, 0, 0, time.UTC),
		time.Date(2026, 12, 6, 9, 0, 0, 0, time.UTC),
	}

	for _, p := range periods {
		for _, today := range days {
			start, end := timecalc.PeriodRange(p, today)
			if start.After(end) {
				t.Errorf("%s/%s: start %v after end %v", p, today.Format("2006-01-02"), start, end)
			}
			if end.After(timecalc.EndOfDay(today)) {
				t.Errorf("%s/%s: end %v projects past today", p, today.Format("2006-01-02"), end)
			}
			switch p {
			case timecalc.PeriodWeekly, timecalc.PeriodBiweekly:
				if timecalc.ISOWeekday(start) != 1 {
					t.Errorf("%s/%s: start %v is not a Monday", p, today.Format("2006-01-02"), start)
				}
			case timecalc.PeriodMonthly:
				if start.Day() != 1 {
					t.Errorf("monthly/%s: start %v is not the 1st", today.Format("2006-01-02"), start)
				}
			case timecalc.PeriodDaily:
				if !timecalc.SameDay(start, today) || !timecalc.SameDay(end, today) {
					t.Errorf("daily/%s: range [%v, %v] is not today", today.Format("2006-01-02"), start, end)
				}
			}
		}
	}
}

func TestISOWeekday(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-02-23", 1}, // Monday
		{"2026-02-27", 5}, // Friday
		{"2026-02-28", 6}, // Saturday
		{"2026-03-01", 7}, // Sunday
	}
	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := timecalc.ISOWeekday(d); got != tt.want {
			t.Errorf("ISOWeekday(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0"},
		{3600, "1"},
		{1800, "0.5"},
		{5400, "1.5"},
		{26100, "7.25"},
		{3540, "0.98"},
		{6000, "1.67"},
		{1, "0"},
	}
	for _, tt := range tests {
		got := timecalc.FormatHours(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatHours(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

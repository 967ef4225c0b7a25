package worklog

import "time"

// Aggregate holds per-day worklog totals over an inclusive date range.
// Every calendar day in the range is present as a key from construction
// on, so days without logged work render as zero rather than disappearing.
// The detail mode is fixed when the aggregate is created: scalar per-day
// totals, or additionally a per-issue breakdown.
type Aggregate struct {
	Detailed bool
	Days     map[string]*Day

	dates      []string // range order (sorted)
	issueOrder []string // first-seen order across the whole range
}

// Day is the logged time of one calendar day.
type Day struct {
	Seconds int
	Issues  map[string]*IssueTotal // nil unless the aggregate is detailed
}

// IssueTotal accumulates one issue's share of a day (or a whole period).
type IssueTotal struct {
	Seconds int
	Summary string
}

// NewAggregate seeds an aggregate with one zero entry per calendar day in
// [start, end].
func NewAggregate(start, end time.Time, detailed bool) *Aggregate {
	agg := &Aggregate{
		Detailed: detailed,
		Days:     map[string]*Day{},
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		day := &Day{}
		if detailed {
			day.Issues = map[string]*IssueTotal{}
		}
		agg.Days[key] = day
		agg.dates = append(agg.dates, key)
	}
	return agg
}

// Add accumulates seconds on the given date. Dates outside the seeded
// range are discarded; Add reports whether the entry was counted. In
// detailed mode the issue bucket is created on first sight with the
// issue's summary; later summaries do not overwrite it.
func (a *Aggregate) Add(date, issueKey, summary string, seconds int) bool {
	day, ok := a.Days[date]
	if !ok {
		return false
	}

	day.Seconds += seconds
	if a.Detailed {
		bucket, ok := day.Issues[issueKey]
		if !ok {
			bucket = &IssueTotal{Summary: summary}
			day.Issues[issueKey] = bucket
		}
		bucket.Seconds += seconds
		if !a.seenIssue(issueKey) {
			a.issueOrder = append(a.issueOrder, issueKey)
		}
	}
	return true
}

func (a *Aggregate) seenIssue(issueKey string) bool {
	for _, k := range a.issueOrder {
		if k == issueKey {
			return true
		}
	}
	return false
}

// Dates returns the seeded dates in calendar order.
func (a *Aggregate) Dates() []string {
	return a.dates
}

// IssueOrder returns issue keys in the order they were first encountered.
func (a *Aggregate) IssueOrder() []string {
	return a.issueOrder
}

// TotalSeconds sums the whole range.
func (a *Aggregate) TotalSeconds() int {
	total := 0
	for _, day := range a.Days {
		total += day.Seconds
	}
	return total
}

package jira

import "encoding/json"

// Project is a Jira project.
type Project struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// User is a Jira account.
type User struct {
	AccountID    string `json:"accountId"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
	TimeZone     string `json:"timeZone"`
	Locale       string `json:"locale"`
}

// Issue is a Jira issue with the fields the CLI cares about.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Fields IssueFields `json:"fields"`
}

type IssueFields struct {
	Summary string `json:"summary"`
	// Description is kept raw: API v3 returns an Atlassian document,
	// older servers return a plain string.
	Description json.RawMessage `json:"description"`
	Status      *Status         `json:"status"`
	Priority    *Named          `json:"priority"`
	Assignee    *User           `json:"assignee"`
}

// DescriptionText returns the description when it is a plain string,
// or "" for document-format and absent descriptions.
func (f IssueFields) DescriptionText() string {
	var s string
	if err := json.Unmarshal(f.Description, &s); err == nil {
		return s
	}
	return ""
}

type Status struct {
	Name string `json:"name"`
}

type Named struct {
	Name string `json:"name"`
}

// Worklog is a single logged unit of time on an issue.
type Worklog struct {
	Author           User   `json:"author"`
	Started          string `json:"started"`
	TimeSpentSeconds int    `json:"timeSpentSeconds"`
}

// StartedDate returns the YYYY-MM-DD date component of the start timestamp.
func (w Worklog) StartedDate() string {
	if len(w.Started) < 10 {
		return w.Started
	}
	return w.Started[:10]
}

// IssuePage is one page of an issue search, with the endpoint-reported
// total used to decide when pagination ends.
type IssuePage struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// WorklogPage is one page of an issue's worklog listing.
type WorklogPage struct {
	StartAt    int       `json:"startAt"`
	MaxResults int       `json:"maxResults"`
	Total      int       `json:"total"`
	Worklogs   []Worklog `json:"worklogs"`
}

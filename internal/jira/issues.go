package jira

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Issue fetches a single issue by ID or key.
func (c *Client) Issue(ctx context.Context, issueKey string) (*Issue, error) {
	var issue Issue
	if err := c.doJSON(ctx, http.MethodGet, "/rest/api/3/issue/"+url.PathEscape(issueKey), nil, nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// IssuesByProject lists issues of a project, optionally filtered by status,
// newest first. startAt/maxResults select the page.
func (c *Client) IssuesByProject(ctx context.Context, projectKey, status string, startAt, maxResults int) ([]Issue, error) {
	jql := fmt.Sprintf("project = %s", projectKey)
	if status != "" {
		jql += fmt.Sprintf(" AND status = '%s'", status)
	}
	jql += " ORDER BY created DESC"

	q := url.Values{}
	q.Set("jql", jql)
	q.Set("startAt", strconv.Itoa(startAt))
	q.Set("maxResults", strconv.Itoa(maxResults))

	var page IssuePage
	if err := c.doJSON(ctx, http.MethodGet, "/rest/api/3/search", q, nil, &page); err != nil {
		return nil, err
	}
	return page.Issues, nil
}

// NewIssue describes an issue to create.
type NewIssue struct {
	ProjectKey  string
	Summary     string
	Description string
	Type        string
	Priority    string
}

// CreateIssue creates an issue and returns its key.
func (c *Client) CreateIssue(ctx context.Context, in NewIssue) (string, error) {
	payload := map[string]any{
		"fields": map[string]any{
			"project":     map[string]string{"key": in.ProjectKey},
			"summary":     in.Summary,
			"description": in.Description,
			"issuetype":   map[string]string{"name": in.Type},
			"priority":    map[string]string{"name": in.Priority},
		},
	}

	var created struct {
		ID  string `json:"id"`
		Key string `json:"key"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/rest/api/3/issue", nil, payload, &created); err != nil {
		return "", err
	}
	return created.Key, nil
}

// IssueEdit holds the fields to change on an issue. Nil fields are left
// untouched; a pointer to the empty string clears the field.
type IssueEdit struct {
	Summary     *string
	Description *string
	Type        *string
	Priority    *string
}

// IsZero reports whether the edit changes nothing.
func (e IssueEdit) IsZero() bool {
	return e.Summary == nil && e.Description == nil && e.Type == nil && e.Priority == nil
}

// EditIssue updates the provided fields of an issue.
func (c *Client) EditIssue(ctx context.Context, issueKey string, edit IssueEdit) error {
	fields := map[string]any{}
	if edit.Summary != nil {
		fields["summary"] = *edit.Summary
	}
	if edit.Description != nil {
		fields["description"] = *edit.Description
	}
	if edit.Type != nil {
		fields["issuetype"] = map[string]string{"name": *edit.Type}
	}
	if edit.Priority != nil {
		fields["priority"] = map[string]string{"name": *edit.Priority}
	}
	if len(fields) == 0 {
		return nil
	}

	payload := map[string]any{"fields": fields}
	return c.doJSON(ctx, http.MethodPut, "/rest/api/3/issue/"+url.PathEscape(issueKey), nil, payload, nil)
}

// DeleteIssue deletes an issue.
func (c *Client) DeleteIssue(ctx context.Context, issueKey string) error {
	return c.doJSON(ctx, http.MethodDelete, "/rest/api/3/issue/"+url.PathEscape(issueKey), nil, nil, nil)
}

// AssignIssue assigns the user with the given account id to an issue.
func (c *Client) AssignIssue(ctx context.Context, issueKey, accountID string) error {
	payload := map[string]string{"accountId": accountID}
	return c.doJSON(ctx, http.MethodPut, "/rest/api/3/issue/"+url.PathEscape(issueKey)+"/assignee", nil, payload, nil)
}

// AssignableUsers lists users that can be assigned to issues of a project.
func (c *Client) AssignableUsers(ctx context.Context, projectKey string) ([]User, error) {
	q := url.Values{}
	q.Set("project", projectKey)
	q.Set("maxResults", "50")

	var users []User
	if err := c.doJSON(ctx, http.MethodGet, "/rest/api/3/user/assignable/search", q, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

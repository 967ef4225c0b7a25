package jira

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SearchWorklogIssues fetches one page of the issue search backing a
// worklog report. Only key and summary are requested.
func (c *Client) SearchWorklogIssues(ctx context.Context, jql string, startAt, maxResults int) (IssuePage, error) {
	q := url.Values{}
	q.Set("jql", jql)
	q.Set("fields", "key,summary")
	q.Set("startAt", strconv.Itoa(startAt))
	q.Set("maxResults", strconv.Itoa(maxResults))

	var page IssuePage
	if err := c.doJSON(ctx, http.MethodGet, "/rest/api/3/search", q, nil, &page); err != nil {
		return IssuePage{}, err
	}
	return page, nil
}

// IssueWorklogs fetches one page of an issue's worklog entries.
func (c *Client) IssueWorklogs(ctx context.Context, issueKey string, startAt, maxResults int) (WorklogPage, error) {
	q := url.Values{}
	q.Set("startAt", strconv.Itoa(startAt))
	q.Set("maxResults", strconv.Itoa(maxResults))

	var page WorklogPage
	path := "/rest/api/3/issue/" + url.PathEscape(issueKey) + "/worklog"
	if err := c.doJSON(ctx, http.MethodGet, path, q, nil, &page); err != nil {
		return WorklogPage{}, err
	}
	return page, nil
}

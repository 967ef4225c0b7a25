package worklog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/oguzhantogay/jira-cli/internal/jira"
)

const (
	issuePageSize   = 50
	worklogPageSize = 100
)

// API is the slice of the Jira client the fetcher needs.
type API interface {
	SearchWorklogIssues(ctx context.Context, jql string, startAt, maxResults int) (jira.IssuePage, error)
	IssueWorklogs(ctx context.Context, issueKey string, startAt, maxResults int) (jira.WorklogPage, error)
}

// Fetcher builds per-day worklog aggregates from the remote tracker.
type Fetcher struct {
	api    API
	logger *slog.Logger
}

// NewFetcher creates a Fetcher. A nil logger discards fetch diagnostics.
func NewFetcher(api API, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Fetcher{api: api, logger: logger}
}

// Fetch aggregates the user's logged time per calendar day over
// [start, end]. Issues with matching worklogs are found via a JQL search
// and their worklog entries are read page by page, strictly sequentially.
//
// Fetching is best-effort: a failed request aborts the traversal and the
// aggregate gathered so far is returned, never an error. A report built
// from partial data beats no report for a read-only feature.
func (f *Fetcher) Fetch(ctx context.Context, accountID string, start, end time.Time, detailed bool) *Aggregate {
	agg := NewAggregate(start, end, detailed)

	jql := fmt.Sprintf("worklogAuthor = %s AND worklogDate >= '%s' AND worklogDate <= '%s'",
		accountID, start.Format("2006-01-02"), end.Format("2006-01-02"))

	startAt := 0
	for {
		page, err := f.api.SearchWorklogIssues(ctx, jql, startAt, issuePageSize)
		if err != nil {
			f.logger.Warn("issue search failed, returning partial aggregate", "startAt", startAt, "err", err)
			return agg
		}
		if len(page.Issues) == 0 {
			break
		}

		for _, issue := range page.Issues {
			if !f.collectIssue(ctx, agg, accountID, issue) {
				return agg
			}
		}

		startAt += len(page.Issues)
		if startAt >= page.Total {
			break
		}
	}
	return agg
}

// collectIssue folds one issue's worklog entries into the aggregate.
// It reports false when a page request failed and the fetch should stop.
func (f *Fetcher) collectIssue(ctx context.Context, agg *Aggregate, accountID string, issue jira.Issue) bool {
	startAt := 0
	for {
		page, err := f.api.IssueWorklogs(ctx, issue.Key, startAt, worklogPageSize)
		if err != nil {
			f.logger.Warn("worklog listing failed, returning partial aggregate", "issue", issue.Key, "err", err)
			return false
		}
		if len(page.Worklogs) == 0 {
			break
		}

		for _, wl := range page.Worklogs {
			if wl.Author.AccountID != accountID {
				continue
			}
			// The JQL filter already narrows by date; out-of-range
			// entries on matched issues are discarded here.
			agg.Add(wl.StartedDate(), issue.Key, issue.Fields.Summary, wl.TimeSpentSeconds)
		}

		startAt += len(page.Worklogs)
		if startAt >= page.Total {
			break
		}
	}
	return true
}

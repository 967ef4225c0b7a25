package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Config holds the connection settings for a Jira site.
type Config struct {
	// BaseURL is the site root, e.g. "https://your-org.atlassian.net".
	BaseURL string
	// Email is the account email for basic auth. Leave empty to send the
	// APIToken as a bearer token instead (personal access tokens).
	Email    string
	APIToken string
	Timeout  time.Duration
	Logger   *slog.Logger
}

// Client is an authenticated Jira REST API client.
type Client struct {
	baseURL string
	email   string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a Jira client. With an email configured requests use
// basic auth; otherwise the API token is sent as an OAuth2 bearer token.
func NewClient(cfg Config) *Client {
	l := cfg.Logger
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}
	if cfg.Email == "" && cfg.APIToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIToken})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = timeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		email:   cfg.Email,
		token:   cfg.APIToken,
		http:    httpClient,
		logger:  l,
	}
}

// APIError is a non-2xx response from Jira.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("jira api error: status=%d", e.StatusCode)
	}
	body := e.Body
	if len(body) > 300 {
		body = body[:300] + "…"
	}
	return fmt.Sprintf("jira api error: status=%d body=%s", e.StatusCode, body)
}

// doJSON issues a request against the Jira REST API and decodes the JSON
// response into out (which may be nil for status-only endpoints).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	if c.baseURL == "" {
		return errors.New("jira base url is empty")
	}
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), rdr)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.email != "" {
		req.SetBasicAuth(c.email, c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("jira request: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		c.logger.Debug("jira json unmarshal failed", "path", path, "err", err)
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

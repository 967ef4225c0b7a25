package jira

import (
	"context"
	"net/http"
)

// Projects lists all projects visible to the authenticated user.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.doJSON(ctx, http.MethodGet, "/rest/api/3/project", nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// NewProject describes a project to create.
type NewProject struct {
	Name    string
	Key     string
	TypeKey string
	Lead    string
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, in NewProject) (*Project, error) {
	payload := map[string]string{
		"name":           in.Name,
		"key":            in.Key,
		"projectTypeKey": in.TypeKey,
		"lead":           in.Lead,
	}

	var created Project
	if err := c.doJSON(ctx, http.MethodPost, "/rest/api/3/project", nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

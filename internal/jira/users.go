package jira

import (
	"context"
	"net/http"
)

// Myself returns the currently authenticated user.
func (c *Client) Myself(ctx context.Context) (User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/rest/api/3/myself", nil, nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

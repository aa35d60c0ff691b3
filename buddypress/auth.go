package buddypress

import (
	"context"
	"fmt"

	"github.com/go-json-experiment/json"
)

// LoginResult is the JWT issued for a username/password pair.
type LoginResult struct {
	Token       string `json:"token"`
	UserID      int    `json:"user_id"`
	DisplayName string `json:"user_display_name"`
}

// Login exchanges credentials for a bearer token. Bad credentials
// surface as ErrUnauthorized.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.post(ctx, c.url("jwt-auth/v1/token"), map[string]string{
		"username": username,
		"password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Me returns the member record for the logged-in user. Not cached;
// it doubles as a token liveness check.
func (c *Client) Me(ctx context.Context) (*Member, error) {
	body, err := c.get(ctx, c.url("buddypress/v1/members/me"), nil)
	if err != nil {
		return nil, err
	}
	var m Member
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("failed to decode member: %w", err)
	}
	return &m, nil
}

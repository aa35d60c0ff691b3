package buddypress

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"
)

// Member is an entry in the member directory.
type Member struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar"`
	LastActivity string `json:"last_activity"`
}

// AvatarURL returns the member's avatar with the scheme-relative
// prefix fixed, same as Activity.AvatarURL.
func (m *Member) AvatarURL() string {
	if strings.HasPrefix(m.Avatar, "//") {
		return "https:" + m.Avatar
	}
	return m.Avatar
}

// ListMembers returns one page of the member directory.
func (c *Client) ListMembers(ctx context.Context, f MemberFilter) ([]Member, error) {
	vals, err := f.Values()
	if err != nil {
		return nil, err
	}
	key := "members?" + vals.Encode()
	body, err := c.cache.fetch(ctx, key, []string{tagMembers}, func(ctx context.Context) ([]byte, error) {
		return c.get(ctx, c.url("buddypress/v1/members"), vals)
	})
	if err != nil {
		return nil, err
	}
	var list []Member
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to decode member list: %w", err)
	}
	return list, nil
}

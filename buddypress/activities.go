package buddypress

import (
	"context"
	"fmt"

	"github.com/go-json-experiment/json"
)

// ListActivities returns one page of the feed matching the filter,
// server-ordered (newest first unless the filter says otherwise). The
// result is cached by filter signature; pages are independent, callers
// wanting more results bump f.Page and call again.
func (c *Client) ListActivities(ctx context.Context, f ActivityFilter) ([]Activity, error) {
	vals, err := f.Values()
	if err != nil {
		return nil, err
	}
	key := "activity?" + vals.Encode()
	body, err := c.cache.fetch(ctx, key, []string{tagActivities}, func(ctx context.Context) ([]byte, error) {
		return c.get(ctx, c.url("buddypress/v1/activity"), vals)
	})
	if err != nil {
		return nil, err
	}
	var list []Activity
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to decode activity list: %w", err)
	}
	return list, nil
}

// GetActivity returns a single activity, for detail screens. Called
// without a usable id it returns ErrNoID without issuing a request.
func (c *Client) GetActivity(ctx context.Context, id int) (*Activity, error) {
	if id <= 0 {
		return nil, ErrNoID
	}
	key := activityKey(id)
	body, err := c.cache.fetch(ctx, key, []string{tagActivities, key}, func(ctx context.Context) ([]byte, error) {
		return c.get(ctx, c.url("buddypress/v1/activity/%d", id), nil)
	})
	if err != nil {
		return nil, err
	}
	var a Activity
	if err := json.Unmarshal(body, &a); err != nil {
		return nil, fmt.Errorf("failed to decode activity: %w", err)
	}
	return &a, nil
}

// FavoriteActivity toggles the current user's favourite on the
// activity and returns the updated record. The list cache and the
// record's own entry are invalidated so subsequent reads see the new
// counts; any optimistic UI state is the caller's to roll back on
// error.
func (c *Client) FavoriteActivity(ctx context.Context, id int) (*Activity, error) {
	if id <= 0 {
		return nil, ErrNoID
	}
	var a Activity
	if err := c.post(ctx, c.url("buddypress/v1/activity/%d/favorite", id), nil, &a); err != nil {
		return nil, err
	}
	c.cache.invalidate(tagActivities, activityKey(id))
	return &a, nil
}

// InvalidateActivities drops every cached feed query. Called for an
// explicit user refresh, and by the mutation endpoints that produce
// new feed entries.
func (c *Client) InvalidateActivities() {
	c.cache.invalidate(tagActivities)
}

func activityKey(id int) string {
	return fmt.Sprintf("activity/%d", id)
}

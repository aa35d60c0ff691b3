package buddypress

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-json-experiment/json"

	"github.com/nomavan/nomavan/internal/humanize"
)

// Group is a BuddyPress group repurposed as a meetup: an in-person
// gathering with a location, a time window and a member cap.
type Group struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"` // public, private
	StartAt     string `json:"start_at"`
	EndAt       string `json:"end_at"`
	// Coordinates arrive as strings, WordPress meta being what it is.
	Latitude     string       `json:"latitude"`
	Longitude    string       `json:"longitude"`
	MemberDetail MemberDetail `json:"member_detail"`
}

// MemberDetail is the caller-relative membership state on a meetup.
type MemberDetail struct {
	Count     int  `json:"count"`
	Limit     int  `json:"limit"` // 0 means uncapped
	IsMember  bool `json:"is_member"`
	IsPending bool `json:"is_pending"`
}

// Window returns the meetup's time window. Either bound may be the
// zero time; the feed shows "Anytime" for such meetups.
func (g *Group) Window() (start, end time.Time) {
	return humanize.ParseWire(g.StartAt), humanize.ParseWire(g.EndAt)
}

// Coordinates returns the meetup's location, if it has a usable one.
func (g *Group) Coordinates() (lat, lng float64, ok bool) {
	lat, err := strconv.ParseFloat(g.Latitude, 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(g.Longitude, 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// Full reports whether the meetup has reached its member cap.
func (g *Group) Full() bool {
	return g.MemberDetail.Limit > 0 && g.MemberDetail.Count >= g.MemberDetail.Limit
}

// NewGroup is the payload for creating a meetup.
type NewGroup struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
	StartAt     string  `json:"start_at,omitempty"`
	EndAt       string  `json:"end_at,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	Limit       int     `json:"limit,omitempty"`
}

// ListGroups returns one page of meetups. Cached like the feed.
func (c *Client) ListGroups(ctx context.Context, f GroupFilter) ([]Group, error) {
	vals, err := f.Values()
	if err != nil {
		return nil, err
	}
	key := "groups?" + vals.Encode()
	body, err := c.cache.fetch(ctx, key, []string{tagGroups}, func(ctx context.Context) ([]byte, error) {
		return c.get(ctx, c.url("buddypress/v1/groups"), vals)
	})
	if err != nil {
		return nil, err
	}
	var list []Group
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to decode group list: %w", err)
	}
	return list, nil
}

// GetGroup returns a single meetup for the detail screen.
func (c *Client) GetGroup(ctx context.Context, id int) (*Group, error) {
	if id <= 0 {
		return nil, ErrNoID
	}
	key := groupKey(id)
	body, err := c.cache.fetch(ctx, key, []string{tagGroups, key}, func(ctx context.Context) ([]byte, error) {
		return c.get(ctx, c.url("buddypress/v1/groups/%d", id), nil)
	})
	if err != nil {
		return nil, err
	}
	var g Group
	if err := json.Unmarshal(body, &g); err != nil {
		return nil, fmt.Errorf("failed to decode group: %w", err)
	}
	return &g, nil
}

// CreateGroup creates a meetup. A created meetup also produces a
// created_group feed entry server side, so both caches go stale.
func (c *Client) CreateGroup(ctx context.Context, g NewGroup) (*Group, error) {
	var created Group
	if err := c.post(ctx, c.url("buddypress/v1/groups"), g, &created); err != nil {
		return nil, err
	}
	c.cache.invalidate(tagGroups, tagActivities)
	return &created, nil
}

// JoinGroup adds the user to the meetup.
func (c *Client) JoinGroup(ctx context.Context, groupID, userID int) (*Group, error) {
	if groupID <= 0 {
		return nil, ErrNoID
	}
	var g Group
	err := c.post(ctx, c.url("buddypress/v1/groups/%d/members", groupID), map[string]any{
		"user_id": userID,
	}, &g)
	if err != nil {
		return nil, err
	}
	c.cache.invalidate(tagGroups, groupKey(groupID), tagActivities)
	return &g, nil
}

// LeaveGroup removes the user from the meetup.
func (c *Client) LeaveGroup(ctx context.Context, groupID, userID int) error {
	if groupID <= 0 {
		return ErrNoID
	}
	if err := c.del(ctx, c.url("buddypress/v1/groups/%d/members/%d", groupID, userID), nil); err != nil {
		return err
	}
	c.cache.invalidate(tagGroups, groupKey(groupID), tagActivities)
	return nil
}

// RequestMembership asks to join a private meetup. The meetup's
// IsPending flips server side, so its cache entries go stale.
func (c *Client) RequestMembership(ctx context.Context, groupID, userID int) error {
	if groupID <= 0 {
		return ErrNoID
	}
	err := c.post(ctx, c.url("buddypress/v1/groups/membership-requests"), map[string]any{
		"group_id": groupID,
		"user_id":  userID,
	}, nil)
	if err != nil {
		return err
	}
	c.cache.invalidate(tagGroups, groupKey(groupID))
	return nil
}

func groupKey(id int) string {
	return fmt.Sprintf("groups/%d", id)
}

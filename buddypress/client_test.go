package buddypress_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nomavan/nomavan/buddypress"
	"github.com/nomavan/nomavan/internal/bptest"
)

// session is an in-memory SessionStore.
type session struct {
	token   string
	cleared bool
}

func (s *session) Token() string { return s.token }

func (s *session) Clear() error {
	s.token = ""
	s.cleared = true
	return nil
}

func newClient(t *testing.T) (*buddypress.Client, *bptest.Server) {
	srv := bptest.New(t)
	return buddypress.New(srv.Base(), &session{token: "roadtrip"}), srv
}

func TestListActivitiesCacheReuse(t *testing.T) {
	require := require.New(t)

	client, srv := newClient(t)
	srv.AddActivity(map[string]any{
		"type":         "activity_update",
		"date":         "2026-02-10T08:00:00",
		"user_profile": "Dana",
	})

	filterA := buddypress.ActivityFilter{Type: []string{"activity_update"}}
	filterB := buddypress.ActivityFilter{Type: []string{"new_expense"}}

	list, err := client.ListActivities(context.Background(), filterA)
	require.NoError(err)
	require.Len(list, 1)

	// an identical filter within the cache window reuses the result
	_, err = client.ListActivities(context.Background(), filterA)
	require.NoError(err)
	require.Equal(1, srv.Count("GET", "/wp-json/buddypress/v1/activity"))

	// a different filter is an independent entry
	_, err = client.ListActivities(context.Background(), filterB)
	require.NoError(err)
	require.Equal(2, srv.Count("GET", "/wp-json/buddypress/v1/activity"))

	// and does not disturb the first filter's entry
	_, err = client.ListActivities(context.Background(), filterA)
	require.NoError(err)
	require.Equal(2, srv.Count("GET", "/wp-json/buddypress/v1/activity"))
}

func TestGetActivityWithoutID(t *testing.T) {
	require := require.New(t)

	client, srv := newClient(t)
	_, err := client.GetActivity(context.Background(), 0)
	require.ErrorIs(err, buddypress.ErrNoID)
	require.Zero(srv.Count("GET", "/wp-json/buddypress/v1/activity/0"))
}

func TestFavoriteActivityInvalidatesList(t *testing.T) {
	require := require.New(t)

	client, srv := newClient(t)
	srv.AddActivity(map[string]any{
		"id":              42,
		"type":            "new_story",
		"favorited":       false,
		"favorited_count": 1,
	})

	filter := buddypress.ActivityFilter{}
	list, err := client.ListActivities(context.Background(), filter)
	require.NoError(err)
	require.False(list[0].Favorited)

	updated, err := client.FavoriteActivity(context.Background(), 42)
	require.NoError(err)
	require.True(updated.Favorited)
	require.Equal(2, updated.FavoritedCount)

	// the list cache was invalidated, so this re-fetches
	list, err = client.ListActivities(context.Background(), filter)
	require.NoError(err)
	require.True(list[0].Favorited)
	require.Equal(2, srv.Count("GET", "/wp-json/buddypress/v1/activity"))
}

func TestUnauthorizedClearsSession(t *testing.T) {
	require := require.New(t)

	srv := bptest.New(t)
	srv.Token = "valid"
	sess := &session{token: "expired"}
	client := buddypress.New(srv.Base(), sess)

	_, err := client.ListActivities(context.Background(), buddypress.ActivityFilter{})
	require.ErrorIs(err, buddypress.ErrUnauthorized)
	require.True(sess.cleared)
	require.Empty(sess.token)
}

func TestServerMessageSurfaced(t *testing.T) {
	require := require.New(t)

	client, srv := newClient(t)
	srv.AddGroup(map[string]any{"id": 9, "name": "Sunset potluck"})
	srv.FailNext(http.StatusConflict, "bp_rest_group_member_failed", "You are already a member of this group.")

	_, err := client.JoinGroup(context.Background(), 9, 3)
	require.Error(err)
	msg, ok := buddypress.ServerMessage(err)
	require.True(ok)
	require.Equal("You are already a member of this group.", msg)
}

func TestJoinLeaveGroup(t *testing.T) {
	require := require.New(t)

	client, srv := newClient(t)
	srv.AddGroup(map[string]any{
		"id":   9,
		"name": "Sunset potluck",
		"member_detail": map[string]any{
			"count":     2,
			"is_member": false,
		},
	})

	g, err := client.JoinGroup(context.Background(), 9, 3)
	require.NoError(err)
	require.True(g.MemberDetail.IsMember)
	require.Equal(3, g.MemberDetail.Count)

	require.NoError(client.LeaveGroup(context.Background(), 9, 3))

	g2, err := client.GetGroup(context.Background(), 9)
	require.NoError(err)
	require.False(g2.MemberDetail.IsMember)
}

func TestCreateExpense(t *testing.T) {
	require := require.New(t)

	client, srv := newClient(t)
	created, err := client.CreateExpense(context.Background(), buddypress.NewExpense{
		Title:  "Fuel and snacks",
		Vendor: "Desert Gas & Go",
		Items: []buddypress.ExpenseItem{
			{Name: "coffee", Price: 3.29, Quantity: 1},
			{Name: "ice", Price: 1.69, Quantity: 1},
		},
	})
	require.NoError(err)
	require.NotZero(created.ID)
	require.Equal(1, srv.Count("POST", "/wp-json/wp/v2/expense"))
}

func TestActivityAvatarURL(t *testing.T) {
	require := require.New(t)

	a := buddypress.Activity{UserAvatar: "//gravatar.example/avatar/abc?s=96"}
	require.Equal("https://gravatar.example/avatar/abc?s=96", a.AvatarURL())

	a.UserAvatar = "https://cdn.example/a.png"
	require.Equal("https://cdn.example/a.png", a.AvatarURL())
}

package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nomavan/nomavan/buddypress"
)

// stubSource is an in-memory Source for controller tests.
type stubSource struct {
	activities []buddypress.Activity
	listErr    error
	favErr     error
	lists      int
	favorites  int
}

func (s *stubSource) ListActivities(ctx context.Context, f buddypress.ActivityFilter) ([]buddypress.Activity, error) {
	s.lists++
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]buddypress.Activity, len(s.activities))
	copy(out, s.activities)
	return out, nil
}

func (s *stubSource) FavoriteActivity(ctx context.Context, id int) (*buddypress.Activity, error) {
	s.favorites++
	if s.favErr != nil {
		return nil, s.favErr
	}
	for i := range s.activities {
		if s.activities[i].ID == id {
			a := s.activities[i]
			a.Favorited = !a.Favorited
			if a.Favorited {
				a.FavoritedCount++
			} else {
				a.FavoritedCount--
			}
			return &a, nil
		}
	}
	return nil, buddypress.ErrNoID
}

func (s *stubSource) InvalidateActivities() {}

func TestSetFilterExpandsAll(t *testing.T) {
	require := require.New(t)

	c := NewController(&stubSource{}, false)
	c.SetFilter(buddypress.ActivityFilter{Type: []string{FilterAll}})

	f := c.Filter()
	require.ElementsMatch(buddypress.FilterAllTypes(), f.Type)
	require.Len(f.Type, 6)
}

func TestSetFilterPassesConcreteTypesThrough(t *testing.T) {
	require := require.New(t)

	c := NewController(&stubSource{}, false)
	c.SetFilter(buddypress.ActivityFilter{Type: []string{"new_expense"}})
	require.Equal([]string{"new_expense"}, c.Filter().Type)
}

func TestStateMachine(t *testing.T) {
	require := require.New(t)

	src := &stubSource{activities: []buddypress.Activity{{ID: 1, Kind: buddypress.KindUpdate}}}
	c := NewController(src, false)

	state, err := c.State()
	require.Equal(StateIdle, state)
	require.NoError(err)

	require.NoError(c.Load(context.Background()))
	state, _ = c.State()
	require.Equal(StateSuccess, state)
	require.Len(c.Activities(), 1)

	// a failed refresh moves to Error and keeps the error for the
	// retry affordance
	src.listErr = errors.New("tunnel, no signal")
	require.Error(c.Refresh(context.Background()))
	state, err = c.State()
	require.Equal(StateError, state)
	require.Error(err)

	// user-initiated retry
	src.listErr = nil
	require.NoError(c.Refresh(context.Background()))
	state, _ = c.State()
	require.Equal(StateSuccess, state)
}

func TestNextPageAppends(t *testing.T) {
	require := require.New(t)

	src := &stubSource{activities: []buddypress.Activity{{ID: 1, Kind: buddypress.KindUpdate}}}
	c := NewController(src, false)

	require.NoError(c.Load(context.Background()))
	require.NoError(c.NextPage(context.Background()))
	require.Len(c.Activities(), 2)
	require.Equal(2, c.Filter().Page)
}

func TestToggleFavoriteRollback(t *testing.T) {
	require := require.New(t)

	src := &stubSource{activities: []buddypress.Activity{
		{ID: 7, Kind: buddypress.KindStory, Favorited: false, FavoritedCount: 3},
	}}
	c := NewController(src, false)
	require.NoError(c.Load(context.Background()))

	src.favErr = errors.New("server said no")
	require.Error(c.ToggleFavorite(context.Background(), 7))

	// both fields restored to their pre-toggle values
	got := c.Activities()[0]
	require.False(got.Favorited)
	require.Equal(3, got.FavoritedCount)
}

func TestToggleFavoriteSuccess(t *testing.T) {
	require := require.New(t)

	src := &stubSource{activities: []buddypress.Activity{
		{ID: 7, Kind: buddypress.KindStory, Favorited: false, FavoritedCount: 3},
	}}
	c := NewController(src, false)
	require.NoError(c.Load(context.Background()))

	require.NoError(c.ToggleFavorite(context.Background(), 7))
	got := c.Activities()[0]
	require.True(got.Favorited)
	require.Equal(4, got.FavoritedCount)
}

func TestSubscribeSeesUpdates(t *testing.T) {
	require := require.New(t)

	src := &stubSource{}
	c := NewController(src, false)
	sub := c.Subscribe(false)
	defer sub.Cancel()

	c.SetFilter(buddypress.ActivityFilter{Type: []string{FilterAll}})
	got := <-sub.C
	require.Equal("filter", got.Event)
}

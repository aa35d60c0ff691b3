package feed

import (
	"context"
	"sync"

	"github.com/nomavan/nomavan/buddypress"
	"github.com/nomavan/nomavan/internal/streaming"
)

// State is the lifecycle of a feed list view. Every transition is
// driven by an explicit caller action or a request completing; there
// is no automatic retry and no timer.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// FilterAll is the sentinel type value that expands to every concrete
// activity type. The expansion happens here, at the point the filter
// is set; the query layer passes whatever it is given straight
// through.
const FilterAll = "all"

// Source is the slice of the query layer the controller needs.
// *buddypress.Client satisfies it.
type Source interface {
	ListActivities(ctx context.Context, f buddypress.ActivityFilter) ([]buddypress.Activity, error)
	FavoriteActivity(ctx context.Context, id int) (*buddypress.Activity, error)
	InvalidateActivities()
}

// Controller drives one feed list: it owns the active filter, the
// fetched pages, and the Idle/Loading/Success/Error state machine.
// Quick successive fetches are fenced with a sequence number: only
// the most recently issued fetch may publish its result, so an
// out-of-order completion can never overwrite newer data.
type Controller struct {
	source Source
	events streaming.Mux

	mu         sync.Mutex
	filter     buddypress.ActivityFilter
	state      State
	err        error
	activities []buddypress.Activity
	seq        uint64
	fallback   bool
}

// NewController returns an idle controller. With fallback set,
// activities of unknown kind render as a minimal label instead of
// being dropped.
func NewController(source Source, fallback bool) *Controller {
	return &Controller{
		source:   source,
		fallback: fallback,
	}
}

// SetFilter replaces the active filter and resets to the first page.
// A Type of ["all"] is expanded to the full set of concrete types.
// The change is broadcast to subscribers; the next Refresh fetches
// under the new filter.
func (c *Controller) SetFilter(f buddypress.ActivityFilter) {
	if len(f.Type) == 1 && f.Type[0] == FilterAll {
		f.Type = buddypress.FilterAllTypes()
	}
	f.Page = 0
	c.mu.Lock()
	c.filter = f
	c.mu.Unlock()
	c.events.Publish("filter", f)
}

// Filter returns the active filter, post-expansion.
func (c *Controller) Filter() buddypress.ActivityFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Refresh drops the cached query for the active filter and fetches
// the first page again, replacing the list. This is the user-pull
// transition: Idle/Success/Error all move to Loading, then to Success
// or Error when the request completes.
func (c *Controller) Refresh(ctx context.Context) error {
	c.source.InvalidateActivities()
	c.mu.Lock()
	c.filter.Page = 0
	c.mu.Unlock()
	return c.fetch(ctx, false)
}

// Load fetches the first page without forcing a refetch, so a recent
// cached result is reused.
func (c *Controller) Load(ctx context.Context) error {
	return c.fetch(ctx, false)
}

// NextPage fetches the following page and appends it. Pages are
// requested one at a time; there is no auto-aggregation in the query
// layer.
func (c *Controller) NextPage(ctx context.Context) error {
	c.mu.Lock()
	if c.filter.Page == 0 {
		c.filter.Page = 1
	}
	c.filter.Page++
	c.mu.Unlock()
	return c.fetch(ctx, true)
}

func (c *Controller) fetch(ctx context.Context, appendPage bool) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state = StateLoading
	f := c.filter
	c.mu.Unlock()
	c.events.Publish("loading", f)

	list, err := c.source.ListActivities(ctx, f)

	c.mu.Lock()
	if seq != c.seq {
		// superseded by a newer fetch; drop this result
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.state = StateError
		c.err = err
		c.mu.Unlock()
		c.events.Publish("error", err)
		return err
	}
	c.state = StateSuccess
	c.err = nil
	if appendPage {
		c.activities = append(c.activities, list...)
	} else {
		c.activities = list
	}
	c.mu.Unlock()
	c.events.Publish("updated", len(list))
	return nil
}

// ToggleFavorite optimistically flips the favourite state of the
// given activity, then reconciles with the server. On failure both
// Favorited and FavoritedCount are restored to their pre-toggle
// values and the error is returned for the caller to surface.
func (c *Controller) ToggleFavorite(ctx context.Context, id int) error {
	c.mu.Lock()
	i := c.index(id)
	if i < 0 {
		c.mu.Unlock()
		return buddypress.ErrNoID
	}
	before := c.activities[i]
	c.activities[i].Favorited = !before.Favorited
	if before.Favorited {
		c.activities[i].FavoritedCount--
	} else {
		c.activities[i].FavoritedCount++
	}
	c.mu.Unlock()
	c.events.Publish("updated", 1)

	updated, err := c.source.FavoriteActivity(ctx, id)

	c.mu.Lock()
	i = c.index(id)
	if i >= 0 {
		if err != nil {
			c.activities[i] = before
		} else {
			c.activities[i] = *updated
		}
	}
	c.mu.Unlock()
	c.events.Publish("updated", 1)
	return err
}

// index must be called with c.mu held.
func (c *Controller) index(id int) int {
	for i := range c.activities {
		if c.activities[i].ID == id {
			return i
		}
	}
	return -1
}

// State returns the current list state and, in StateError, the error
// to render alongside the retry affordance.
func (c *Controller) State() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.err
}

// Activities returns a copy of the fetched records.
func (c *Controller) Activities() []buddypress.Activity {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]buddypress.Activity, len(c.activities))
	copy(out, c.activities)
	return out
}

// Views renders the fetched records through the dispatch table.
func (c *Controller) Views() []View {
	return RenderList(c.Activities(), c.fallback)
}

// Subscribe returns a subscription to the controller's state
// broadcasts ("filter", "loading", "updated", "error"). With replay
// set, the last broadcast is delivered immediately.
func (c *Controller) Subscribe(replay bool) *streaming.Subscription {
	return c.events.Subscribe(replay)
}

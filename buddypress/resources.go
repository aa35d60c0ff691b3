package buddypress

import "context"

// The posting forms publish to domain-specific WordPress resources
// under wp/v2. Each resource creation produces a matching feed entry
// server side, which is why they all invalidate the activity cache.

// Resource is the minimal record the wp/v2 endpoints return for a
// created post.
type Resource struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
}

// ExpenseItem is a single line of a logged expense.
type ExpenseItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// NewExpense is a scanned or hand-entered expense.
type NewExpense struct {
	Title     string
	Vendor    string
	Items     []ExpenseItem
	Latitude  float64
	Longitude float64
	SpentAt   string
}

// CreateExpense logs an expense.
func (c *Client) CreateExpense(ctx context.Context, e NewExpense) (*Resource, error) {
	return c.createResource(ctx, "expense", e.Title, map[string]any{
		"vendor":               e.Vendor,
		"expense_items_inline": e.Items,
		"expense_total":        ExpenseTotal(e.Items),
		"latitude":             e.Latitude,
		"longitude":            e.Longitude,
		"spent_at":             e.SpentAt,
	})
}

// ExpenseTotal returns the sum of price*quantity over the items.
func ExpenseTotal(items []ExpenseItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// NewConnectivity is a cell/wifi coverage report for a spot.
type NewConnectivity struct {
	Title       string
	Network     string
	SignalLevel int // 0..4 bars
	Download    float64
	Upload      float64
	Latitude    float64
	Longitude   float64
}

// CreateConnectivityReport publishes a connectivity report.
func (c *Client) CreateConnectivityReport(ctx context.Context, r NewConnectivity) (*Resource, error) {
	return c.createResource(ctx, "connectivity", r.Title, map[string]any{
		"network":       r.Network,
		"signal_level":  r.SignalLevel,
		"download_mbps": r.Download,
		"upload_mbps":   r.Upload,
		"latitude":      r.Latitude,
		"longitude":     r.Longitude,
	})
}

// NewStory is a longer-form travel story with photos.
type NewStory struct {
	Title   string
	Content string
	Photos  []string
}

// CreateStory publishes a story.
func (c *Client) CreateStory(ctx context.Context, s NewStory) (*Resource, error) {
	return c.createResource(ctx, "story", s.Title, map[string]any{
		"content": s.Content,
		"photos":  s.Photos,
	})
}

// NewSpotHunt is a location-discovery pin with photos and a clue.
type NewSpotHunt struct {
	Title     string
	Clue      string
	Photos    []string
	Latitude  float64
	Longitude float64
}

// CreateSpotHunt publishes a spot hunt.
func (c *Client) CreateSpotHunt(ctx context.Context, s NewSpotHunt) (*Resource, error) {
	return c.createResource(ctx, "spothunt", s.Title, map[string]any{
		"clue":      s.Clue,
		"photos":    s.Photos,
		"latitude":  s.Latitude,
		"longitude": s.Longitude,
	})
}

// NewRoutePoint is a stop on the user's route. ArrivedAt empty means
// the user is still en route to it; PreviousRoutePointID is 0 for the
// first point of a trip.
type NewRoutePoint struct {
	Title                string
	Latitude             float64
	Longitude            float64
	ArrivedAt            string
	PreviousRoutePointID int
}

// CreateRoutePoint publishes a route point.
func (c *Client) CreateRoutePoint(ctx context.Context, p NewRoutePoint) (*Resource, error) {
	meta := map[string]any{
		"latitude":  p.Latitude,
		"longitude": p.Longitude,
	}
	if p.ArrivedAt != "" {
		meta["arrived_at"] = p.ArrivedAt
	}
	if p.PreviousRoutePointID > 0 {
		meta["previous_route_point_id"] = p.PreviousRoutePointID
	}
	return c.createResource(ctx, "routepoint", p.Title, meta)
}

func (c *Client) createResource(ctx context.Context, resource, title string, meta map[string]any) (*Resource, error) {
	var created Resource
	err := c.post(ctx, c.url("wp/v2/%s", resource), map[string]any{
		"title":  title,
		"status": "publish",
		"meta":   meta,
	}, &created)
	if err != nil {
		return nil, err
	}
	c.cache.invalidate(tagActivities)
	return &created, nil
}

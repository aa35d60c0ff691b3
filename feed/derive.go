// Package feed turns raw activity records into renderable feed
// entries: it computes the derived values the renderers need, routes
// each record to the right presentation variant, and drives the list
// state machine the feed screens share.
package feed

import (
	"time"

	"github.com/nomavan/nomavan/buddypress"
	"github.com/nomavan/nomavan/internal/geo"
	"github.com/nomavan/nomavan/internal/humanize"
)

// Derived-field accessors. All of them are total over malformed or
// partial payloads: BuddyPress responses are loosely typed and a
// missing nested field is a normal condition, not an error.

// ExpenseItems returns the line items of an expense activity.
func ExpenseItems(a *buddypress.Activity) ([]buddypress.ExpenseItem, bool) {
	raw, ok := a.Secondary.Slice("meta", "expense_items_inline")
	if !ok {
		return nil, false
	}
	items := make([]buddypress.ExpenseItem, 0, len(raw))
	for _, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		p := buddypress.Payload(m)
		var item buddypress.ExpenseItem
		item.Name, _ = p.Str("name")
		item.Price, _ = p.Float("price")
		item.Quantity, ok = p.Int("quantity")
		if !ok {
			item.Quantity = 1
		}
		items = append(items, item)
	}
	return items, true
}

// RoutePointArrived reports whether the route point has been reached,
// and when. A point without an arrival timestamp is still en route.
func RoutePointArrived(a *buddypress.Activity) (time.Time, bool) {
	s, ok := a.Secondary.Str("meta", "arrived_at")
	if !ok {
		return time.Time{}, false
	}
	t := humanize.ParseWire(s)
	return t, !t.IsZero()
}

// InitialRoutePoint reports whether this is the first point of a
// trip. previous_route_point_id is only present on later points.
func InitialRoutePoint(a *buddypress.Activity) bool {
	_, ok := a.Secondary.Int("meta", "previous_route_point_id")
	return !ok
}

// RouteLeg returns the distance in metres from the previous route
// point, when both coordinate pairs made it into the payload.
func RouteLeg(a *buddypress.Activity) (float64, bool) {
	lat, ok := a.Secondary.Float("meta", "latitude")
	if !ok {
		return 0, false
	}
	lng, ok := a.Secondary.Float("meta", "longitude")
	if !ok {
		return 0, false
	}
	prevLat, ok := a.Secondary.Float("meta", "previous_latitude")
	if !ok {
		return 0, false
	}
	prevLng, ok := a.Secondary.Float("meta", "previous_longitude")
	if !ok {
		return 0, false
	}
	return geo.Distance(prevLat, prevLng, lat, lng)
}

// Coordinates returns the activity's location for the map view,
// checking the secondary then the primary payload.
func Coordinates(a *buddypress.Activity) (lat, lng float64, ok bool) {
	for _, p := range []buddypress.Payload{a.Secondary, a.Primary} {
		lat, latOK := p.Float("meta", "latitude")
		lng, lngOK := p.Float("meta", "longitude")
		if latOK && lngOK {
			return lat, lng, true
		}
		lat, latOK = p.Float("latitude")
		lng, lngOK = p.Float("longitude")
		if latOK && lngOK {
			return lat, lng, true
		}
	}
	return 0, 0, false
}

// MeetupWindow returns the formatted date and time labels for a
// meetup activity (created_group / joined_group), whose primary item
// is the group record.
func MeetupWindow(a *buddypress.Activity) (date, clock string) {
	start, _ := a.Primary.Str("start_at")
	end, _ := a.Primary.Str("end_at")
	return humanize.DateRange(humanize.ParseWire(start), humanize.ParseWire(end))
}

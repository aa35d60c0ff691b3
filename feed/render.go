package feed

import (
	"fmt"
	"time"

	"github.com/nomavan/nomavan/buddypress"
	"github.com/nomavan/nomavan/internal/algorithms"
	"github.com/nomavan/nomavan/internal/signal"
)

// View is the presentation-agnostic form of one feed entry: a badge
// naming the variant, a title line, and detail lines. Screens decide
// how to draw it, the CLI prints it.
type View struct {
	Kind  buddypress.Kind
	Badge string
	Title string
	Lines []string
	Time  time.Time
}

// builders routes each activity kind to its presentation variant.
// This table is the single dispatch point for every feed surface;
// adding a kind means adding one entry here.
var builders = map[buddypress.Kind]func(*buddypress.Activity) View{
	buddypress.KindUpdate:       buildUpdate,
	buddypress.KindExpense:      buildExpense,
	buddypress.KindRoutePoint:   buildRoutePoint,
	buddypress.KindConnectivity: buildConnectivity,
	buddypress.KindStory:        buildStory,
	buddypress.KindSpotHunt:     buildSpotHunt,
	buddypress.KindCreatedGroup: buildCreatedGroup,
	buddypress.KindJoinedGroup:  buildJoinedGroup,
}

// Render builds the view for a single activity. ok is false for a
// kind with no known renderer; the record is then either dropped or
// shown via Fallback, at the caller's option.
func Render(a *buddypress.Activity) (View, bool) {
	build, ok := builders[a.Kind]
	if !ok {
		return View{}, false
	}
	v := build(a)
	v.Kind = a.Kind
	v.Time = a.Time()
	return v, true
}

// Fallback is the minimal rendering for an activity of unknown kind:
// a raw label, so one odd record never takes the list down.
func Fallback(a *buddypress.Activity) View {
	return View{
		Kind:  a.Kind,
		Badge: "activity",
		Title: fmt.Sprintf("%s posted a %s", orSomeone(a.UserName), a.Kind),
		Time:  a.Time(),
	}
}

// RenderList renders a page of activities. Records with no renderer
// are dropped, or rendered via Fallback when fallback is set; they
// never prevent sibling records from rendering.
func RenderList(list []buddypress.Activity, fallback bool) []View {
	return algorithms.FilterMap(list, func(a buddypress.Activity) (View, bool) {
		if v, ok := Render(&a); ok {
			return v, true
		}
		if fallback {
			return Fallback(&a), true
		}
		return View{}, false
	})
}

func buildUpdate(a *buddypress.Activity) View {
	v := View{
		Badge: "update",
		Title: orSomeone(a.UserName) + " posted an update",
	}
	if text := a.ContentText(); text != "" {
		v.Lines = append(v.Lines, text)
	}
	return v
}

func buildExpense(a *buddypress.Activity) View {
	v := View{
		Badge: "expense",
		Title: orSomeone(a.UserName) + " logged an expense",
	}
	if vendor, ok := a.Secondary.Str("meta", "vendor"); ok && vendor != "" {
		v.Lines = append(v.Lines, "at "+vendor)
	}
	// no line items, no breakdown; the entry still renders
	items, ok := ExpenseItems(a)
	if !ok {
		return v
	}
	for _, item := range items {
		v.Lines = append(v.Lines, fmt.Sprintf("%s x%d  %.2f", item.Name, item.Quantity, item.Price*float64(item.Quantity)))
	}
	v.Lines = append(v.Lines, fmt.Sprintf("total %.2f", buddypress.ExpenseTotal(items)))
	return v
}

func buildRoutePoint(a *buddypress.Activity) View {
	name, _ := a.Secondary.Str("title")
	v := View{Badge: "route"}
	if _, arrived := RoutePointArrived(a); arrived {
		v.Title = orSomeone(a.UserName) + " arrived at " + orLabel(name, "a stop")
	} else {
		v.Title = orSomeone(a.UserName) + " is en route to " + orLabel(name, "a stop")
	}
	if meters, ok := RouteLeg(a); ok {
		v.Lines = append(v.Lines, fmt.Sprintf("%.1f km from last stop", meters/1000))
	}
	return v
}

func buildConnectivity(a *buddypress.Activity) View {
	v := View{
		Badge: "signal",
		Title: orSomeone(a.UserName) + " reported coverage",
	}
	if network, ok := a.Secondary.Str("meta", "network"); ok && network != "" {
		v.Lines = append(v.Lines, network)
	}
	if level, ok := a.Secondary.Int("meta", "signal_level"); ok {
		min, max := signal.DbmRange(level)
		v.Lines = append(v.Lines, fmt.Sprintf("%d/4 bars (%d to %d dBm)", level, min, max))
	}
	if down, ok := a.Secondary.Float("meta", "download_mbps"); ok {
		v.Lines = append(v.Lines, fmt.Sprintf("%.1f Mbps down", down))
	}
	return v
}

func buildStory(a *buddypress.Activity) View {
	title, _ := a.Secondary.Str("title")
	v := View{
		Badge: "story",
		Title: orSomeone(a.UserName) + " shared a story: " + orLabel(title, "untitled"),
	}
	if text := a.ContentText(); text != "" {
		v.Lines = append(v.Lines, text)
	}
	return v
}

func buildSpotHunt(a *buddypress.Activity) View {
	title, _ := a.Secondary.Str("title")
	v := View{
		Badge: "spot hunt",
		Title: orSomeone(a.UserName) + " pinned a spot hunt: " + orLabel(title, "untitled"),
	}
	if clue, ok := a.Secondary.Str("meta", "clue"); ok && clue != "" {
		v.Lines = append(v.Lines, "clue: "+clue)
	}
	if photos, ok := a.Secondary.Slice("meta", "photos"); ok && len(photos) > 0 {
		v.Lines = append(v.Lines, fmt.Sprintf("%d photos", len(photos)))
	}
	return v
}

func buildCreatedGroup(a *buddypress.Activity) View {
	name, _ := a.Primary.Str("name")
	v := View{
		Badge: "meetup",
		Title: orSomeone(a.UserName) + " created a meetup: " + orLabel(name, "untitled"),
	}
	date, clock := MeetupWindow(a)
	v.Lines = append(v.Lines, date+" "+clock)
	if count, ok := a.Primary.Int("member_detail", "count"); ok {
		line := fmt.Sprintf("%d going", count)
		if limit, ok := a.Primary.Int("member_detail", "limit"); ok && limit > 0 {
			line = fmt.Sprintf("%d/%d going", count, limit)
		}
		v.Lines = append(v.Lines, line)
	}
	return v
}

func buildJoinedGroup(a *buddypress.Activity) View {
	name, _ := a.Primary.Str("name")
	return View{
		Badge: "meetup",
		Title: orSomeone(a.UserName) + " joined " + orLabel(name, "a meetup"),
	}
}

func orSomeone(name string) string {
	return orLabel(name, "Someone")
}

func orLabel(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Package humanize formats timestamps the way the feed presents them.
package humanize

import (
	"strconv"
	"time"
)

// Anytime is the label used when a meetup has no usable time window.
const Anytime = "Anytime"

// RelativeTime returns a human readable "time ago" string for t
// relative to now. Future timestamps collapse to "just now".
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 7*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/(24*7)), "week")
	case d < 365*24*time.Hour:
		return plural(int(d.Hours()/(24*30)), "month")
	default:
		return plural(int(d.Hours()/(24*365)), "year")
	}
}

func plural(n int, unit string) string {
	if n <= 1 {
		return "1 " + unit + " ago"
	}
	return strconv.Itoa(n) + " " + unit + "s ago"
}

// DateRange produces the date and time labels for a meetup window.
// Both parts fall back to sentinels when either timestamp is missing:
// the feed shows "Anytime" rather than an error for an open-ended
// meetup.
func DateRange(start, end time.Time) (date, clock string) {
	if start.IsZero() || end.IsZero() {
		return Anytime, "-"
	}
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy == ey && sm == em && sd == ed {
		return start.Format("Mon, Jan 2 2006"),
			start.Format("15:04") + " - " + end.Format("15:04")
	}
	return start.Format("Jan 2 2006") + " - " + end.Format("Jan 2 2006"),
		start.Format("15:04") + " - " + end.Format("15:04")
}

// ParseWire parses the timestamp formats the WordPress API emits.
// The zero time is returned for anything unparseable.
func ParseWire(s string) time.Time {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

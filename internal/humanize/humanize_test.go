package humanize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	tc := []struct {
		ago    time.Duration
		expect string
	}{
		{30 * time.Second, "just now"},
		{90 * time.Second, "1 minute ago"},
		{45 * time.Minute, "45 minutes ago"},
		{3 * time.Hour, "3 hours ago"},
		{48 * time.Hour, "2 days ago"},
		{9 * 24 * time.Hour, "1 week ago"},
		{40 * 24 * time.Hour, "1 month ago"},
		{800 * 24 * time.Hour, "2 years ago"},
	}
	for _, tt := range tc {
		t.Run(tt.expect, func(t *testing.T) {
			require.Equal(t, tt.expect, RelativeTime(now.Add(-tt.ago), now))
		})
	}
}

func TestDateRangeSameDay(t *testing.T) {
	require := require.New(t)
	start := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	date, clock := DateRange(start, end)
	require.Equal("Tue, Feb 10 2026", date)
	require.Equal("08:00 - 12:00", clock)
}

func TestDateRangeMultiDay(t *testing.T) {
	require := require.New(t)
	start := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 12, 12, 0, 0, 0, time.UTC)
	date, _ := DateRange(start, end)
	require.Equal("Feb 10 2026 - Feb 12 2026", date)
}

func TestDateRangeMissing(t *testing.T) {
	require := require.New(t)
	date, clock := DateRange(time.Time{}, time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC))
	require.Equal(Anytime, date)
	require.Equal("-", clock)

	date, clock = DateRange(time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC), time.Time{})
	require.Equal(Anytime, date)
	require.Equal("-", clock)
}

func TestParseWire(t *testing.T) {
	tc := []struct {
		in string
		ok bool
	}{
		{"2026-02-10T08:00:00Z", true},
		{"2026-02-10T08:00:00", true},
		{"2026-02-10 08:00:00", true},
		{"2026-02-10", true},
		{"", false},
		{"not a date", false},
	}
	for _, tt := range tc {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.ok, !ParseWire(tt.in).IsZero())
		})
	}
}

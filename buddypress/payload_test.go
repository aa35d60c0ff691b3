package buddypress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPayloadAccessors(t *testing.T) {
	require := require.New(t)

	p := Payload{
		"title": "Cathedral Rock",
		"meta": map[string]any{
			"latitude":     "34.8697",
			"longitude":    -111.7610,
			"signal_level": float64(3),
			"photos":       []any{"a.jpg", "b.jpg"},
			"hidden":       true,
		},
	}

	title, ok := p.Str("title")
	require.True(ok)
	require.Equal("Cathedral Rock", title)

	// numeric strings are accepted, WordPress meta being what it is
	lat, ok := p.Float("meta", "latitude")
	require.True(ok)
	require.InDelta(34.8697, lat, 1e-9)

	lng, ok := p.Float("meta", "longitude")
	require.True(ok)
	require.InDelta(-111.7610, lng, 1e-9)

	level, ok := p.Int("meta", "signal_level")
	require.True(ok)
	require.Equal(3, level)

	photos, ok := p.Slice("meta", "photos")
	require.True(ok)
	require.Len(photos, 2)

	hidden, ok := p.Bool("meta", "hidden")
	require.True(ok)
	require.True(hidden)
}

func TestPayloadMissingPaths(t *testing.T) {
	require := require.New(t)

	var nilPayload Payload
	_, ok := nilPayload.Str("title")
	require.False(ok)

	p := Payload{"meta": "not an object"}
	_, ok = p.Str("meta", "vendor")
	require.False(ok)
	_, ok = p.Float("meta", "latitude")
	require.False(ok)
	_, ok = p.Slice("meta", "photos")
	require.False(ok)

	// wrong type at the leaf
	p = Payload{"title": 42.0}
	_, ok = p.Str("title")
	require.False(ok)
	_, ok = p.Int("title")
	require.True(ok) // 42.0 is a usable integer
}

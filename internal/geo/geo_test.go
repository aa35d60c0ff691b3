package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistanceIdentity(t *testing.T) {
	require := require.New(t)
	d, ok := Distance(34.8697, -111.7610, 34.8697, -111.7610)
	require.True(ok)
	require.Zero(d)
}

func TestDistanceSymmetry(t *testing.T) {
	tc := []struct {
		lat1, lon1, lat2, lon2 float64
	}{
		{34.8697, -111.7610, 34.8653, -111.7635},
		{-33.8688, 151.2093, 51.5074, -0.1278},
		{0, 0, 0, 180},
	}
	for _, tt := range tc {
		req := require.New(t)
		ab, ok := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
		req.True(ok)
		ba, ok := Distance(tt.lat2, tt.lon2, tt.lat1, tt.lon1)
		req.True(ok)
		req.InDelta(ab, ba, 1e-9)
	}
}

func TestDistanceSedona(t *testing.T) {
	// two spots near Cathedral Rock, about half a kilometre apart
	require := require.New(t)
	d, ok := Distance(34.8697, -111.7610, 34.8653, -111.7635)
	require.True(ok)
	require.Greater(d, 450.0)
	require.Less(d, 650.0)
}

func TestDistanceRejectsNonFinite(t *testing.T) {
	require := require.New(t)
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, ok := Distance(bad, 0, 0, 0)
		require.False(ok)
		_, ok = Distance(0, 0, 0, bad)
		require.False(ok)
	}
}

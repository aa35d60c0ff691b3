package signal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDbmRange(t *testing.T) {
	tc := []struct {
		level    int
		min, max int
	}{
		{0, -120, -112},
		{1, -106, -98},
		{2, -92, -84},
		{3, -78, -70},
		{4, -64, -56},
		// clamped
		{-1, -120, -112},
		{7, -64, -56},
	}
	for _, tt := range tc {
		min, max := DbmRange(tt.level)
		require.Equal(t, tt.min, min, "level %d", tt.level)
		require.Equal(t, tt.max, max, "level %d", tt.level)
	}
}

package htmltext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrip(t *testing.T) {
	tc := []struct {
		in     string
		expect string
	}{
		{"<p>Fresh water at the rest stop</p>", "Fresh water at the rest stop"},
		{"plain text", "plain text"},
		{"<p>two</p>\n<p>paragraphs</p>", "two paragraphs"},
		{"<a href=\"https://nomavan.example\">link</a> trailing", "link trailing"},
		{"", ""},
		{"<p>unclosed", "unclosed"},
	}
	for _, tt := range tc {
		require.Equal(t, tt.expect, Strip(tt.in))
	}
}

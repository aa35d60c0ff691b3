// Package htmltext flattens WordPress-rendered HTML into plain text
// suitable for a single feed line.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// Strip returns the text content of the given HTML fragment with
// whitespace collapsed. Malformed markup is tolerated; the tokenizer
// simply stops at the end of input.
func Strip(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
			b.WriteByte(' ')
		}
	}
}

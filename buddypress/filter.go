package buddypress

import (
	"net/url"
	"strconv"

	"github.com/gorilla/schema"
)

var encoder = schema.NewEncoder()

// ActivityFilter selects which activities a list request returns. The
// zero value means "server defaults". An empty Type slice is passed
// through verbatim; expanding "all" to the known types is the caller's
// job (see feed.Controller.SetFilter).
type ActivityFilter struct {
	Page      int      `schema:"page,omitempty"`
	PerPage   int      `schema:"per_page,omitempty"`
	Type      []string `schema:"type,omitempty"`
	UserID    int      `schema:"user_id,omitempty"`
	Component string   `schema:"component,omitempty"`
	Search    string   `schema:"search,omitempty"`
	Scope     string   `schema:"scope,omitempty"`
}

// Values flattens the filter into request query parameters.
// Array-valued fields are serialized the way WordPress expects them,
// as indexed array parameters: type[0]=…&type[1]=….
func (f ActivityFilter) Values() (url.Values, error) {
	vals := url.Values{}
	if err := encoder.Encode(&f, vals); err != nil {
		return nil, err
	}
	if types := vals["type"]; len(types) > 0 {
		vals.Del("type")
		for i, t := range types {
			vals.Set("type["+strconv.Itoa(i)+"]", t)
		}
	}
	return vals, nil
}

// Signature returns the canonical cache key for this filter. Two
// filters with the same signature are the same query.
func (f ActivityFilter) Signature() (string, error) {
	vals, err := f.Values()
	if err != nil {
		return "", err
	}
	return vals.Encode(), nil
}

// GroupFilter selects which meetups a list request returns.
type GroupFilter struct {
	Page    int    `schema:"page,omitempty"`
	PerPage int    `schema:"per_page,omitempty"`
	UserID  int    `schema:"user_id,omitempty"`
	Search  string `schema:"search,omitempty"`
}

func (f GroupFilter) Values() (url.Values, error) {
	vals := url.Values{}
	return vals, encoder.Encode(&f, vals)
}

// MemberFilter selects which members a directory request returns.
type MemberFilter struct {
	Page    int    `schema:"page,omitempty"`
	PerPage int    `schema:"per_page,omitempty"`
	Search  string `schema:"search,omitempty"`
	Type    string `schema:"type,omitempty"` // active, newest, alphabetical
}

func (f MemberFilter) Values() (url.Values, error) {
	vals := url.Values{}
	return vals, encoder.Encode(&f, vals)
}

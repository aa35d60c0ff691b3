// Package buddypress is a client for the Nomavan BuddyPress/WordPress
// REST API. It owns request construction, the short-lived query cache,
// and the cross-cutting auth policy: every request carries the bearer
// token from the local session, and a rejected token clears that
// session so the app falls back to the login screen.
package buddypress

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/carlmjohnson/requests"
	"github.com/go-json-experiment/json"
)

// SessionStore is the local auth state the client reads its token
// from. store.Sessions satisfies it.
type SessionStore interface {
	// Token returns the bearer token, or "" when logged out.
	Token() string
	// Clear drops the session. Clearing an absent session is a no-op.
	Clear() error
}

// Client is a Nomavan API client. Methods are safe for concurrent use.
type Client struct {
	base    string // e.g. https://nomavan.example/wp-json
	session SessionStore
	cache   *queryCache

	// Transport overrides the HTTP transport, for tests.
	Transport http.RoundTripper
}

// New returns a client for the WordPress REST root at base.
func New(base string, session SessionStore) *Client {
	return &Client{
		base:    strings.TrimRight(base, "/"),
		session: session,
		cache:   newQueryCache(),
	}
}

func (c *Client) url(format string, args ...any) string {
	return c.base + "/" + fmt.Sprintf(format, args...)
}

// send issues the request described by b and returns the raw 2xx body.
// Non-2xx statuses are mapped to the error taxonomy: 401/403 clears
// the session and returns ErrUnauthorized, anything else surfaces the
// server's error payload. Transport failures are wrapped untagged so
// callers can offer a retry.
func (c *Client) send(ctx context.Context, b *requests.Builder) ([]byte, error) {
	if token := c.session.Token(); token != "" {
		b.Header("Authorization", "Bearer "+token)
	}
	if c.Transport != nil {
		b.Transport(c.Transport)
	}

	var (
		status int
		buf    bytes.Buffer
	)
	err := b.
		AddValidator(func(res *http.Response) error {
			status = res.StatusCode
			return nil
		}).
		ToBytesBuffer(&buf).
		Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	switch {
	case status >= 200 && status < 300:
		return buf.Bytes(), nil
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		if err := c.session.Clear(); err != nil {
			log.Printf("buddypress: failed to clear session: %v", err)
		}
		return nil, ErrUnauthorized
	default:
		return nil, apiError(status, buf.Bytes())
	}
}

// get fetches a GET endpoint and returns the raw body. Cached reads
// decode after the cache so the cache holds one canonical form.
func (c *Client) get(ctx context.Context, u string, vals url.Values) ([]byte, error) {
	b := requests.URL(u)
	for key, values := range vals {
		b.Param(key, values...)
	}
	return c.send(ctx, b)
}

// post issues a POST with an optional JSON body and decodes the
// response into obj (obj may be nil).
func (c *Client) post(ctx context.Context, u string, body, obj any) error {
	b := requests.URL(u).Method(http.MethodPost)
	if body != nil {
		b.BodyJSON(body)
	}
	resp, err := c.send(ctx, b)
	return decode(resp, err, obj)
}

// del issues a DELETE.
func (c *Client) del(ctx context.Context, u string, obj any) error {
	resp, err := c.send(ctx, requests.URL(u).Method(http.MethodDelete))
	return decode(resp, err, obj)
}

func decode(body []byte, err error, obj any) error {
	if err != nil {
		return err
	}
	if obj == nil {
		return nil
	}
	if err := json.Unmarshal(body, obj); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

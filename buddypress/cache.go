package buddypress

import (
	"context"
	"sync"
	"time"

	"github.com/viccon/sturdyc"
)

// Query results are cached by filter signature for a short window so
// that a screen remount does not re-issue an identical request.
// sturdyc also deduplicates concurrent fetches for the same key, so
// two screens asking for the same filter share one request.
const (
	cacheTTL       = 30 * time.Second
	cacheCapacity  = 256
	cacheShards    = 8
	cacheEviction  = 10
)

// Mutations invalidate coarsely: the whole list tag plus the specific
// record's entry.
const (
	tagActivities = "activities"
	tagGroups     = "groups"
	tagMembers    = "members"
)

type queryCache struct {
	data *sturdyc.Client[[]byte]

	mu   sync.Mutex
	tags map[string]map[string]struct{} // tag -> cache keys
}

func newQueryCache() *queryCache {
	return &queryCache{
		data: sturdyc.New[[]byte](cacheCapacity, cacheShards, cacheTTL, cacheEviction),
		tags: make(map[string]map[string]struct{}),
	}
}

// fetch returns the cached body for key, or runs fn and caches its
// result. Errors are not cached; a failed fetch leaves the entry
// empty so a retry re-issues the request.
func (q *queryCache) fetch(ctx context.Context, key string, tags []string, fn func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	q.mu.Lock()
	for _, tag := range tags {
		keys, ok := q.tags[tag]
		if !ok {
			keys = make(map[string]struct{})
			q.tags[tag] = keys
		}
		keys[key] = struct{}{}
	}
	q.mu.Unlock()
	return q.data.GetOrFetch(ctx, key, fn)
}

// invalidate drops every entry recorded under the given tags.
func (q *queryCache) invalidate(tags ...string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, tag := range tags {
		for key := range q.tags[tag] {
			q.data.Delete(key)
		}
		delete(q.tags, tag)
	}
}

package tfidf

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// QueryCache memoizes Search results for a Model. Entries are keyed by a
// normalized form of the query (term order is irrelevant to the score, so
// sorted terms with duplicates preserved share one entry) and the whole
// cache is invalidated whenever the model's generation advances, so a
// cached result never outlives a mutation. Concurrent identical queries
// are collapsed into a single Search via singleflight.
//
// Cached slices are shared between callers and must be treated as
// read-only.
type QueryCache[K comparable] struct {
	model  *Model[K]
	group  singleflight.Group
	logger *slog.Logger

	mu      sync.Mutex
	entries map[string][]ScoredDoc[K]
	gen     uint64

	hits   atomic.Int64
	misses atomic.Int64
}

// NewQueryCache creates a cache over model.
func NewQueryCache[K comparable](model *Model[K]) *QueryCache[K] {
	return &QueryCache[K]{
		model:   model,
		logger:  slog.Default().With("component", "query-cache"),
		entries: make(map[string][]ScoredDoc[K]),
	}
}

// Search returns the ranked results for query, serving from cache when
// the model has not mutated since the entry was stored. A result computed
// against a model that mutates mid-flight is returned to the caller but
// not cached.
func (c *QueryCache[K]) Search(query []string) []ScoredDoc[K] {
	key := buildKey(query)
	gen := c.model.Generation()

	c.mu.Lock()
	if c.gen != gen {
		c.entries = make(map[string][]ScoredDoc[K])
		c.gen = gen
	}
	if cached, ok := c.entries[key]; ok {
		c.mu.Unlock()
		c.hits.Add(1)
		c.logger.Debug("cache hit", "key", key)
		return cached
	}
	c.mu.Unlock()
	c.misses.Add(1)

	val, _, _ := c.group.Do(key, func() (any, error) {
		results := c.model.Search(query)
		c.mu.Lock()
		if c.gen == gen {
			c.entries[key] = results
		}
		c.mu.Unlock()
		return results, nil
	})
	return val.([]ScoredDoc[K])
}

// Stats returns the number of cache hits and misses served so far.
func (c *QueryCache[K]) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// buildKey derives a fixed-length cache key from the normalized query.
func buildKey(query []string) string {
	normalized := make([]string, len(query))
	copy(normalized, query)
	sort.Strings(normalized)
	hash := sha256.Sum256([]byte(strings.Join(normalized, "\x00")))
	return fmt.Sprintf("%x", hash[:16])
}

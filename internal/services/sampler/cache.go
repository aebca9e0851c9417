package sampler

import (
	"bytes"
	"encoding/json"
	"sync"

	"github.com/cespare/xxhash/v2"

	"vertexfx/internal/domain"
	"vertexfx/internal/geom"
)

// cacheKey is the encoded request and its xxhash.
type cacheKey struct {
	hash uint64
	req  []byte
}

type cacheEntry struct {
	req []byte
	res domain.SampleResult
}

// cache keeps the most recent results indexed by the xxhash of the request
// JSON. An entry only matches when its stored request is byte-equal to the
// lookup's, so colliding hashes miss. When full it evicts the oldest entry.
type cache struct {
	mu      sync.Mutex
	size    int
	entries map[uint64]cacheEntry
	order   []uint64
}

func newCache(size int) *cache {
	return &cache{size: size, entries: make(map[uint64]cacheEntry)}
}

// key returns false when req cannot be encoded; such requests are not cached.
func key(req domain.SampleRequest) (cacheKey, bool) {
	b, err := json.Marshal(req)
	if err != nil {
		return cacheKey{}, false
	}
	return cacheKey{hash: xxhash.Sum64(b), req: b}, true
}

func (c *cache) get(k cacheKey) (domain.SampleResult, bool) {
	if c.size <= 0 {
		return domain.SampleResult{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[k.hash]
	if !ok || !bytes.Equal(e.req, k.req) {
		return domain.SampleResult{}, false
	}
	return copyResult(e.res), true
}

// add stores r under k. A colliding entry for another request is replaced.
func (c *cache) add(k cacheKey, r domain.SampleResult) {
	if c.size <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e := cacheEntry{req: k.req, res: copyResult(r)}
	if _, ok := c.entries[k.hash]; ok {
		c.entries[k.hash] = e
		return
	}
	for len(c.order) >= c.size {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[k.hash] = e
	c.order = append(c.order, k.hash)
}

func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func copyResult(r domain.SampleResult) domain.SampleResult {
	r.Points = append([]geom.Point(nil), r.Points...)
	return r
}

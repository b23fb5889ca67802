// Package registry caches computed family contexts. It replaces the
// unbounded process-lifetime maps of the original registry service
// with an explicit bounded LRU object that callers hold by reference.
package registry

import (
	"container/list"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/golang/snappy"

	"github.com/dhimarketer/newDirReact-sub000/pkg/kinship"
	"github.com/dhimarketer/newDirReact-sub000/pkg/layout"
)

// DefaultCapacity bounds the cache when the caller passes zero.
const DefaultCapacity = 256

// Context is one cached inference+layout computation.
type Context struct {
	Classification *kinship.Classification `json:"classification"`
	Layout         *layout.Result          `json:"layout,omitempty"`
}

// Cache is a bounded LRU of compressed family contexts keyed by input
// fingerprint. Values are stored as snappy-compressed JSON so a large
// cache stays cheap to hold resident.
type Cache struct {
	capacity  int
	entries   map[string]*entry
	lru       *list.List
	mu        sync.Mutex
	hits      uint64
	misses    uint64
	evictions uint64
}

type entry struct {
	key     string
	blob    []byte // snappy-compressed JSON
	element *list.Element
}

// NewCache creates an LRU cache holding at most capacity contexts.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]*entry),
		lru:      list.New(),
	}
}

// Get retrieves and decodes a cached context.
func (c *Cache) Get(key string) (*Context, bool) {
	c.mu.Lock()
	e, exists := c.entries[key]
	if !exists {
		c.misses++
		c.mu.Unlock()
		return nil, false
	}
	c.lru.MoveToFront(e.element)
	c.hits++
	blob := e.blob
	c.mu.Unlock()

	raw, err := snappy.Decode(nil, blob)
	if err != nil {
		return nil, false
	}
	var ctx Context
	if err := json.Unmarshal(raw, &ctx); err != nil {
		return nil, false
	}
	return &ctx, true
}

// Put stores a context, evicting the least recently used entry when
// the cache is at capacity.
func (c *Cache) Put(key string, ctx *Context) error {
	raw, err := json.Marshal(ctx)
	if err != nil {
		return fmt.Errorf("encode family context: %w", err)
	}
	blob := snappy.Encode(nil, raw)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, exists := c.entries[key]; exists {
		e.blob = blob
		c.lru.MoveToFront(e.element)
		return nil
	}

	e := &entry{key: key, blob: blob}
	e.element = c.lru.PushFront(e)
	c.entries[key] = e

	if c.lru.Len() > c.capacity {
		c.evictOldest()
	}
	return nil
}

func (c *Cache) evictOldest() {
	oldest := c.lru.Back()
	if oldest == nil {
		return
	}
	e := oldest.Value.(*entry)
	c.lru.Remove(oldest)
	delete(c.entries, e.key)
	c.evictions++
}

// Clear drops every entry. Statistics are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
	c.lru = list.New()
}

// Size returns the current number of entries.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns hit/miss/eviction counters and the hit rate.
func (c *Cache) Stats() (hits, misses, evictions uint64, hitRate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	return c.hits, c.misses, c.evictions, rate
}

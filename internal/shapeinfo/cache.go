package shapeinfo

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Cache shares descriptors between callers that request equal layouts.
//
// Descriptors are constant, so a cached one can be handed to any number of
// array handles. The encoder's byte counter is charged only when a new
// descriptor is stored, never on a hit.
type Cache struct {
	enc     *Encoder
	mu      sync.RWMutex
	entries map[string]*Descriptor
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewCache creates an empty cache in front of enc.
func NewCache(enc *Encoder) *Cache {
	return &Cache{
		enc:     enc,
		entries: make(map[string]*Descriptor),
	}
}

// Encoder returns the encoder backing the cache.
func (c *Cache) Encoder() *Encoder {
	return c.enc
}

// Encode returns the shared descriptor for l and a decoded copy of its
// words, creating and charging it on first use.
func (c *Cache) Encode(l Layout) (*Descriptor, []int64, error) {
	d, err := c.enc.build(l)
	if err != nil {
		c.enc.logger.Warn("shape descriptor rejected", zap.Int64s("shape", l.Shape), zap.Error(err))
		return nil, nil, err
	}
	key := d.key()

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return cached, cached.Longs(), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.entries[key]; ok {
		c.hits.Add(1)
		return cached, cached.Longs(), nil
	}
	if err := c.enc.charge(d); err != nil {
		return nil, nil, err
	}
	c.entries[key] = d
	c.misses.Add(1)
	return d, d.Longs(), nil
}

// Len returns the number of cached descriptors.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counts.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Purge drops all entries. Descriptors already handed out stay valid, and
// the byte counter is not decreased.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Descriptor)
}

// Source hands out shape descriptors. Both *Encoder and *Cache satisfy it.
type Source interface {
	Encode(l Layout) (*Descriptor, []int64, error)
}

var (
	_ Source = (*Encoder)(nil)
	_ Source = (*Cache)(nil)
)

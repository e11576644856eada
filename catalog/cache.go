package catalog

import (
	"sync"

	"github.com/samber/mo"
	"github.com/tubevault/tubevault/video"
)

// Cache memoizes parsed records for the lifetime of the process. It never evicts.
type Cache struct {
	mu      sync.RWMutex
	records map[string]*video.Record
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{records: make(map[string]*video.Record)}
}

// Get returns a copy of the cached record.
func (c *Cache) Get(id string) mo.Option[*video.Record] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	record, ok := c.records[id]
	if !ok {
		return mo.None[*video.Record]()
	}
	return mo.Some(record.Clone())
}

// Put stores a copy of record under id, replacing any previous value.
func (c *Cache) Put(id string, record *video.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records[id] = record.Clone()
}

// Len returns the number of cached records.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.records)
}

package catalog

import "sync"

// Cache holds the last successfully fetched catalog. It is replaced wholesale on
// every successful fetch, never patched.
type Cache struct {
	mutex   sync.RWMutex
	records []CharacterRecord
	byName  map[string]CharacterRecord
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		byName: make(map[string]CharacterRecord),
	}
}

// defaultCache is the process-wide last-fetched catalog shared by fetchers that
// are not given their own cache.
var defaultCache = NewCache()

// DefaultCache returns the process-wide cache.
func DefaultCache() *Cache {
	return defaultCache
}

// Set replaces the cached catalog.
func (c *Cache) Set(records []CharacterRecord) {
	byName := make(map[string]CharacterRecord, len(records))
	for _, r := range records {
		byName[r.Key()] = r
	}
	cp := make([]CharacterRecord, len(records))
	copy(cp, records)

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.records = cp
	c.byName = byName
}

// Records returns a copy of the cached catalog in server order.
func (c *Cache) Records() []CharacterRecord {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	result := make([]CharacterRecord, len(c.records))
	copy(result, c.records)
	return result
}

// Lookup finds a cached record by identity key.
func (c *Cache) Lookup(key string) (CharacterRecord, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	r, found := c.byName[key]
	return r, found
}

// Len returns the number of cached records.
func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.records)
}

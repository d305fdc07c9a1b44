package scan

import (
	"github.com/johnhelf/folder-insight/pkg/sharded"
)

const cacheShardCount = 64

// Cache memoizes recursive directory aggregates by normalized path. Entries
// are write-once: the scanner never replaces a record, so a cached value is
// stable for the process lifetime regardless of later filesystem changes.
type Cache struct {
	records *sharded.Map[SizeRecord]
}

func NewCache() *Cache {
	return &Cache{records: sharded.NewMap[SizeRecord](cacheShardCount)}
}

// Get returns the cached aggregate for path, if any.
func (c *Cache) Get(path string) (SizeRecord, bool) {
	return c.records.Load(path)
}

// Put stores the aggregate for path. Concurrent writers for the same path
// compute identical records, so last-write-wins is harmless.
func (c *Cache) Put(path string, record SizeRecord) {
	c.records.Store(path, record)
}

// Has reports whether an aggregate for path has been cached.
func (c *Cache) Has(path string) bool {
	return c.records.Has(path)
}

// Len returns the number of cached directories.
func (c *Cache) Len() int {
	return c.records.Count()
}

// Snapshot copies the current cache contents, for export.
func (c *Cache) Snapshot() map[string]SizeRecord {
	return c.records.Items()
}

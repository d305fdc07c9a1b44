package scan

import (
	"github.com/johnhelf/folder-insight/pkg/sharded"
)

const guardShardCount = 32

// Guard admits at most one in-flight background scan per path. A path that
// is already cached, or already being scanned, is not admitted again.
type Guard struct {
	cache    *Cache
	inFlight *sharded.Set
}

func NewGuard(cache *Cache) *Guard {
	return &Guard{
		cache:    cache,
		inFlight: sharded.NewSet(guardShardCount),
	}
}

// TryBegin attempts to claim path for a background scan. The cache check and
// the in-flight insertion happen atomically with respect to other TryBegin
// calls for the same path, so exactly one of any number of concurrent
// callers wins.
func (g *Guard) TryBegin(path string) bool {
	return g.inFlight.StoreIf(path, func() bool {
		return !g.cache.Has(path)
	})
}

// End releases the in-flight claim on path. It must be called exactly once
// for every successful TryBegin, including when the scan faulted.
func (g *Guard) End(path string) {
	g.inFlight.Delete(path)
}

// InFlight reports whether a background scan for path is currently running.
func (g *Guard) InFlight(path string) bool {
	return g.inFlight.Has(path)
}

package sharded

import (
	"sync"
)

type mapShard[V any] struct {
	mu    sync.RWMutex
	items map[string]V
}

// Map is a sharded concurrent map from string keys to values of type V.
// Keys are distributed over shards by FNV-1a hash so that writers for
// different keys rarely contend on the same lock.
type Map[V any] struct {
	shards []*mapShard[V]
}

// NewMap creates a Map with the given number of shards.
// numShards must be a power of 2.
func NewMap[V any](numShards int) *Map[V] {
	if !isPowerOfTwo(numShards) {
		panic("num shards must be a power of 2")
	}
	s := &Map[V]{shards: make([]*mapShard[V], numShards)}
	for i := 0; i < numShards; i++ {
		s.shards[i] = &mapShard[V]{items: make(map[string]V)}
	}
	return s
}

func (s *Map[V]) getShard(key string) *mapShard[V] {
	return s.shards[getShardIndex(key, len(s.shards))]
}

// Store adds a key-value pair to the map.
func (s *Map[V]) Store(key string, value V) {
	shard := s.getShard(key)
	shard.mu.Lock()
	shard.items[key] = value
	shard.mu.Unlock()
}

// Load retrieves the value associated with a key.
// It returns the value and a boolean indicating if the key was present.
func (s *Map[V]) Load(key string) (value V, ok bool) {
	shard := s.getShard(key)
	shard.mu.RLock()
	value, ok = shard.items[key]
	shard.mu.RUnlock()
	return value, ok
}

// Has checks only for the presence of a key.
func (s *Map[V]) Has(key string) bool {
	shard := s.getShard(key)
	shard.mu.RLock()
	_, exists := shard.items[key]
	shard.mu.RUnlock()
	return exists
}

// LoadOrStore returns the existing value for the key if present.
// Otherwise, it stores and returns the given value.
// The loaded result is true if the value was loaded, false if stored.
func (s *Map[V]) LoadOrStore(key string, value V) (actual V, loaded bool) {
	shard := s.getShard(key)
	shard.mu.Lock()
	actual, loaded = shard.items[key]
	if !loaded {
		actual = value
		shard.items[key] = value
	}
	shard.mu.Unlock()
	return actual, loaded
}

func (s *Map[V]) Delete(key string) {
	shard := s.getShard(key)
	shard.mu.Lock()
	delete(shard.items, key)
	shard.mu.Unlock()
}

// Count returns the total number of elements in the map.
func (s *Map[V]) Count() int {
	count := 0
	for _, shard := range s.shards {
		shard.mu.RLock()
		count += len(shard.items)
		shard.mu.RUnlock()
	}
	return count
}

// Keys returns a slice of all keys in the map.
// The order of keys is not guaranteed.
func (s *Map[V]) Keys() []string {
	// Pre-allocate the slice with the total number of elements to avoid re-allocations.
	keys := make([]string, 0, s.Count())
	for _, shard := range s.shards {
		shard.mu.RLock()
		for k := range shard.items {
			keys = append(keys, k)
		}
		shard.mu.RUnlock()
	}
	return keys
}

// Items returns a map containing all key-value pairs.
// This creates a snapshot of the map's data at the time of the call.
func (s *Map[V]) Items() map[string]V {
	items := make(map[string]V, s.Count())
	for _, shard := range s.shards {
		shard.mu.RLock()
		for k, v := range shard.items {
			items[k] = v
		}
		shard.mu.RUnlock()
	}
	return items
}

// Range calls f sequentially for each key and value present in the map.
// If f returns false, range stops the iteration.
//
// The iteration is performed by locking one shard at a time, so it does not
// block the entire map. However, the map should not be modified by the
// callback function f.
func (s *Map[V]) Range(f func(key string, value V) bool) {
	for _, shard := range s.shards {
		shard.mu.RLock()
		for k, v := range shard.items {
			if !f(k, v) {
				shard.mu.RUnlock()
				return
			}
		}
		shard.mu.RUnlock()
	}
}

package sharded

import (
	"sync"
)

type setShard struct {
	mu    sync.Mutex
	items map[string]struct{}
}

// Set is a sharded concurrent string set. Keys are distributed over shards
// by FNV-1a hash, so operations on different keys rarely contend.
type Set struct {
	shards []*setShard
}

// NewSet creates a Set with the given number of shards.
// numShards must be a power of 2.
func NewSet(numShards int) *Set {
	if !isPowerOfTwo(numShards) {
		panic("num shards must be a power of 2")
	}
	s := &Set{shards: make([]*setShard, numShards)}
	for i := 0; i < numShards; i++ {
		s.shards[i] = &setShard{items: make(map[string]struct{})}
	}
	return s
}

func (s *Set) getShard(key string) *setShard {
	return s.shards[getShardIndex(key, len(s.shards))]
}

// Store adds a key to the set.
func (s *Set) Store(key string) {
	shard := s.getShard(key)
	shard.mu.Lock()
	shard.items[key] = struct{}{}
	shard.mu.Unlock()
}

// Has checks only for the presence of a key.
func (s *Set) Has(key string) bool {
	shard := s.getShard(key)
	shard.mu.Lock()
	_, exists := shard.items[key]
	shard.mu.Unlock()
	return exists
}

// LoadOrStore ensures a key is present in the set, returning true if it was already present.
// It returns false if the key was newly stored. This is an atomic operation.
func (s *Set) LoadOrStore(key string) (loaded bool) {
	shard := s.getShard(key)
	shard.mu.Lock()
	_, loaded = shard.items[key]
	if !loaded {
		shard.items[key] = struct{}{}
	}
	shard.mu.Unlock()
	return loaded
}

// StoreIf atomically stores the key when it is absent AND cond() reports true.
// cond is evaluated while the shard lock is held, so the condition check, the
// membership check and the insert form a single critical section per key:
// two concurrent callers for the same key can never both observe a successful
// store. It returns true only when the key was stored by this call.
//
// cond must be fast and must not touch this set, or it will deadlock.
func (s *Set) StoreIf(key string, cond func() bool) bool {
	shard := s.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	if _, exists := shard.items[key]; exists {
		return false
	}
	if cond != nil && !cond() {
		return false
	}
	shard.items[key] = struct{}{}
	return true
}

func (s *Set) Delete(key string) {
	shard := s.getShard(key)
	shard.mu.Lock()
	delete(shard.items, key)
	shard.mu.Unlock()
}

// Count returns the total number of elements in the set.
func (s *Set) Count() int {
	count := 0
	for _, shard := range s.shards {
		shard.mu.Lock()
		count += len(shard.items)
		shard.mu.Unlock()
	}
	return count
}

// Keys returns a slice of all keys in the set.
// The order of keys is not guaranteed.
func (s *Set) Keys() []string {
	keys := make([]string, 0, s.Count())
	for _, shard := range s.shards {
		shard.mu.Lock()
		for k := range shard.items {
			keys = append(keys, k)
		}
		shard.mu.Unlock()
	}
	return keys
}

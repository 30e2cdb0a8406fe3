// SPDX-License-Identifier: MIT
// Copyright (c) 2026 DocForge
// Source: github.com/docforge/mdxdoc

package mdxdoc

import (
	"container/list"
	"sync"
)

// CacheStats is a read-only snapshot of one cache's counters.
type CacheStats struct {
	// Size is the current number of stored entries.
	Size int
	// Capacity is the fixed maximum number of stored entries.
	Capacity int
	// Hits counts lookups that found a stored entry.
	Hits uint64
	// Misses counts lookups that found nothing.
	Misses uint64
	// HitRate is Hits/(Hits+Misses), or 0 when no lookups happened.
	HitRate float64
	// Enabled reports whether the cache stores and serves entries.
	Enabled bool
}

// cacheEntry is one key/value pair stored in recency order.
type cacheEntry struct {
	key   string
	value any
}

// lruCache is a bounded least-recently-used map from string key to value.
//
// A disabled cache always misses and never stores. Access is mutex-guarded
// so one cache may sit behind concurrently rendered documents.
type lruCache struct {
	mu       sync.Mutex
	capacity int
	enabled  bool
	hits     uint64
	misses   uint64
	order    *list.List
	entries  map[string]*list.Element
}

// newLRUCache returns an empty cache with fixed capacity.
func newLRUCache(capacity int, enabled bool) *lruCache {
	if capacity < 1 {
		capacity = 1
	}

	return &lruCache{
		capacity: capacity,
		enabled:  enabled,
		order:    list.New(),
		entries:  make(map[string]*list.Element, capacity),
	}
}

// Get returns the stored value for key and marks the entry most recently used.
func (cache *lruCache) Get(key string) (any, bool) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if !cache.enabled {
		cache.misses++
		return nil, false
	}

	element, ok := cache.entries[key]
	if !ok {
		cache.misses++
		return nil, false
	}

	cache.hits++
	cache.order.MoveToFront(element)
	return element.Value.(*cacheEntry).value, true
}

// Set inserts or overwrites one entry, evicting the least recently used
// entry when a new key arrives at capacity.
func (cache *lruCache) Set(key string, value any) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if !cache.enabled {
		return
	}

	if element, ok := cache.entries[key]; ok {
		element.Value.(*cacheEntry).value = value
		cache.order.MoveToFront(element)
		return
	}

	if cache.order.Len() >= cache.capacity {
		oldest := cache.order.Back()
		if oldest != nil {
			cache.order.Remove(oldest)
			delete(cache.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	cache.entries[key] = cache.order.PushFront(&cacheEntry{key: key, value: value})
}

// Clear empties storage and zeroes hit and miss counters.
func (cache *lruCache) Clear() {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.order.Init()
	cache.entries = make(map[string]*list.Element, cache.capacity)
	cache.hits = 0
	cache.misses = 0
}

// Stats returns a snapshot of the cache counters.
func (cache *lruCache) Stats() CacheStats {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	stats := CacheStats{
		Size:     cache.order.Len(),
		Capacity: cache.capacity,
		Hits:     cache.hits,
		Misses:   cache.misses,
		Enabled:  cache.enabled,
	}

	if total := cache.hits + cache.misses; total > 0 {
		stats.HitRate = float64(cache.hits) / float64(total)
	}

	return stats
}

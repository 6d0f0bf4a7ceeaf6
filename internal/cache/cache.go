// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements a very simple random-replacement cache to memoize
// fallible computations, such as building a named calendar.
package cache

import (
	"sync"
)

// DefaultSize is the default number of elements of a cache.
const DefaultSize = 1 << 8

// Cache is a simple random-replacement cache. Failed computations are not
// cached.
//
// Its zero value is safe to use. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	// MaxSize is the maximum number of elements. If it is zero, DefaultSize
	// is used.
	//
	// MaxSize is not safe to mutate concurrently with calls to Get.
	MaxSize int

	mu sync.RWMutex
	m  map[K]V
}

// Get the element associated with k from the cache, using fill to populate
// missing elements. If fill fails, its error is returned and nothing is
// cached.
func (c *Cache[K, V]) Get(k K, fill func(K) (V, error)) (V, error) {
	c.mu.RLock()
	if v, ok := c.m[k]; ok {
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	nv, err := fill(k)
	if err != nil {
		return nv, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.m[k]; ok {
		// another goroutine filled the cache in the meantime
		return v, nil
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	// Map iteration order is random enough for random replacement.
	for victim := range c.m {
		if len(c.m) < c.maxSize() {
			break
		}
		delete(c.m, victim)
	}
	c.m[k] = nv
	return nv, nil
}

func (c *Cache[K, V]) maxSize() int {
	if c.MaxSize <= 0 {
		return DefaultSize
	}
	return c.MaxSize
}

// Len returns the number of cached elements.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Evict the element for k from the cache. If there is no such element, Evict
// is a no-op.
func (c *Cache[K, V]) Evict(k K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, k)
}

// Flush removes all elements from the cache.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}

// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pubcache holds a node's own recently-published data packets so
// it can answer a fetch interest for one of its own prior items, grounded
// on the original source's fixed-size publication_list (vsync.c):
// _publication_list_init/_search/_insert, a flat array scanned linearly
// rather than indexed by a map, sized for the handful of in-flight items
// a single constrained node needs to keep around.
package pubcache

import (
	"github.com/ndnsync/vectorsync/internal/verrors"
)

// Key identifies a cached item by the same (round, seq) pair its data
// name carries.
type Key struct {
	Round uint32
	Seq   uint8
}

type slot struct {
	key  Key
	data []byte
	used bool
}

// Cache is a fixed-capacity, linear-scan store of (Key -> encoded Data
// TLV). Re-inserting an already-cached key is a no-op success, matching
// the original's assert(publication_list[i].data == data) path for a
// republish of the same item.
type Cache struct {
	slots []slot
}

// New returns an empty Cache holding at most capacity items.
func New(capacity int) *Cache {
	return &Cache{slots: make([]slot, capacity)}
}

// Search returns the cached data for key, if present.
func (c *Cache) Search(key Key) ([]byte, bool) {
	for i := range c.slots {
		if c.slots[i].used && c.slots[i].key == key {
			return c.slots[i].data, true
		}
	}
	return nil, false
}

// Insert stores data under key, reusing the first free slot. If key is
// already cached, Insert is a no-op. Returns verrors.ErrNoSpace if the
// cache is full and key is not already present — the original's "grow
// PUBLICATION_LIST_CAPACITY" escape hatch, surfaced here as an ordinary
// error instead of a compile-time constant bump.
func (c *Cache) Insert(key Key, data []byte) error {
	free := -1
	for i := range c.slots {
		if !c.slots[i].used {
			if free < 0 {
				free = i
			}
			continue
		}
		if c.slots[i].key == key {
			return nil
		}
	}
	if free < 0 {
		return verrors.ErrNoSpace
	}
	c.slots[free] = slot{key: key, data: data, used: true}
	return nil
}

// Len reports how many items are currently cached.
func (c *Cache) Len() int {
	n := 0
	for i := range c.slots {
		if c.slots[i].used {
			n++
		}
	}
	return n
}

// Cap reports the cache's fixed capacity.
func (c *Cache) Cap() int {
	return len(c.slots)
}

// lru.go: LRU replacement policy for the Unicache dictionary
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package unicache

import "container/list"

// lruCache is a Cache backed by a single recency-ordered list. The dictionary
// is index-stable per the package doc: indices are handed out in allocation
// order while below capacity, then reused from the evicted entry when full.
type lruCache struct {
	capacity int
	list     *list.List
	byKey    map[string]*list.Element
	byIndex  []*list.Element
	stats    CacheStats
}

func newLRU(capacity int) *lruCache {
	return &lruCache{
		capacity: capacity,
		list:     list.New(),
		byKey:    make(map[string]*list.Element, capacity),
		byIndex:  make([]*list.Element, capacity),
	}
}

func (c *lruCache) Len() int            { return c.list.Len() }
func (c *lruCache) Capacity() int       { return c.capacity }
func (c *lruCache) Policy() Policy      { return LRU }
func (c *lruCache) Stats() CacheStats   { return c.stats }

func (c *lruCache) Put(value string) {
	c.stats.Puts++
	if elem, ok := c.byKey[value]; ok {
		c.list.MoveToFront(elem)
		return
	}

	var idx Index
	if c.list.Len() < c.capacity {
		idx = Index(c.list.Len())
	} else {
		idx = c.evict()
	}

	node := getLRUNode(value, idx)
	elem := c.list.PushFront(node)
	c.byKey[value] = elem
	c.byIndex[idx] = elem
}

// evict removes the least-recently-used entry and returns its freed index.
func (c *lruCache) evict() Index {
	back := c.list.Back()
	victim := back.Value.(*lruNode)
	idx := victim.index
	c.list.Remove(back)
	delete(c.byKey, victim.key)
	c.byIndex[idx] = nil
	putLRUNode(victim)
	c.stats.Evictions++
	return idx
}

func (c *lruCache) GetEncodedIndex(value string) (Index, bool) {
	elem, ok := c.byKey[value]
	if !ok {
		c.stats.Misses++
		return 0, false
	}
	c.stats.Hits++
	c.list.MoveToFront(elem)
	return elem.Value.(*lruNode).index, true
}

func (c *lruCache) GetWithEncodedIndex(index Index) string {
	elem := c.byIndex[index]
	if elem == nil {
		outOfRangeIndex(index, c.capacity)
	}
	c.list.MoveToFront(elem)
	return elem.Value.(*lruNode).key
}

// pool.go: recency-list node pool shared by the LRU policy
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package unicache

import "sync"

// lruNode is the payload stored in the LRU policy's container/list.Element.
// Pooling these avoids an allocation on every Put/evict cycle under steady
// churn, the same role entrypool.go's object pool played for the teacher's
// generic cache entries.
type lruNode struct {
	key   string
	index Index
}

var lruNodePool = sync.Pool{
	New: func() interface{} { return new(lruNode) },
}

func getLRUNode(key string, index Index) *lruNode {
	n := lruNodePool.Get().(*lruNode)
	n.key = key
	n.index = index
	return n
}

func putLRUNode(n *lruNode) {
	n.key = ""
	n.index = 0
	lruNodePool.Put(n)
}

// logging.go: optional Logger wiring for a Unicache dictionary
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package unicache

// loggingCache wraps a Cache and reports Put/hit/miss/eviction traffic to a
// Logger. It is only constructed when Config.Logger is non-nil, so callers
// who don't configure a Logger pay nothing for it.
type loggingCache struct {
	inner Cache
	log   Logger
}

func newLoggingCache(inner Cache, log Logger) *loggingCache {
	return &loggingCache{inner: inner, log: log}
}

func (c *loggingCache) Put(value string) {
	evictionsBefore := c.Stats().Evictions
	c.inner.Put(value)
	if c.Stats().Evictions > evictionsBefore {
		c.log.Debug("unicache: evicted to admit value", "policy", c.inner.Policy().String(), "capacity", c.inner.Capacity())
	} else {
		c.log.Debug("unicache: admitted value", "policy", c.inner.Policy().String(), "len", c.inner.Len())
	}
}

func (c *loggingCache) GetEncodedIndex(value string) (Index, bool) {
	idx, ok := c.inner.GetEncodedIndex(value)
	if ok {
		c.log.Debug("unicache: dictionary hit", "index", idx)
	} else {
		c.log.Debug("unicache: dictionary miss")
	}
	return idx, ok
}

func (c *loggingCache) GetWithEncodedIndex(index Index) string {
	return c.inner.GetWithEncodedIndex(index)
}

func (c *loggingCache) Len() int       { return c.inner.Len() }
func (c *loggingCache) Capacity() int  { return c.inner.Capacity() }
func (c *loggingCache) Policy() Policy { return c.inner.Policy() }

// Stats forwards to the wrapped Cache when it implements StatsProvider,
// which every concrete policy in this package does.
func (c *loggingCache) Stats() CacheStats {
	if sp, ok := c.inner.(StatsProvider); ok {
		return sp.Stats()
	}
	return CacheStats{}
}

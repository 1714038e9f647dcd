// unicache.go: core dictionary contract for the Unicache library
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package unicache

// Index names a dictionary slot shared by encoder and decoder. Capacity is
// capped at 255 entries so that indices fit in a single byte on the wire.
type Index = uint8

// MaxCapacity is the largest capacity a Cache may be constructed with.
const MaxCapacity = 255

// Policy selects the concrete replacement strategy behind a Cache.
type Policy int

const (
	// LRU evicts the least-recently-used entry.
	LRU Policy = iota
	// LFU evicts the least-frequently-used entry, ties broken FIFO.
	LFU
	// LeCaR adaptively mixes LRU and LFU eviction using ghost histories.
	LeCaR
)

// String renders the policy name used in config files and CLI output.
func (p Policy) String() string {
	switch p {
	case LRU:
		return "lru"
	case LFU:
		return "lfu"
	case LeCaR:
		return "lecar"
	default:
		return "unknown"
	}
}

// ParsePolicy parses the config/CLI spelling of a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "lru", "LRU":
		return LRU, nil
	case "lfu", "LFU":
		return LFU, nil
	case "lecar", "LECAR", "LeCaR":
		return LeCaR, nil
	default:
		return 0, &ConfigError{Field: "policy", Reason: "unrecognized policy " + s}
	}
}

// Cache is the dictionary contract shared by every replacement policy.
//
// Put admits value into the dictionary. If value is already present, its
// policy metadata (recency, frequency, adaptive weights) is refreshed but
// its index does not change and nothing is evicted. If value is absent and
// the dictionary is below capacity, it is inserted and given the next free
// index. If the dictionary is at capacity, the policy selects a victim,
// evicts it, and the freed index becomes value's index.
//
// GetEncodedIndex looks value up without admitting it: a hit promotes the
// entry per policy and returns its index; a miss returns ok=false and
// leaves the dictionary unchanged.
//
// GetWithEncodedIndex resolves index back to content and promotes the
// entry per policy. index must name a live entry; calling it with a
// stale or out-of-range index is a fatal programmer error (it indicates
// the encoder and decoder dictionaries have drifted out of sync) and
// panics rather than returning a zero value.
//
// A Cache is owned by exactly one coder and is not safe for concurrent
// encode/decode from multiple goroutines: every operation can mutate
// recency or frequency state, so callers needing concurrent access should
// synchronize externally rather than expect the cache to do it for them.
type Cache interface {
	Put(value string)
	GetEncodedIndex(value string) (index Index, ok bool)
	GetWithEncodedIndex(index Index) string
	Len() int
	Capacity() int
	Policy() Policy
}

// New constructs an empty Cache with the given capacity (1..=255) and
// replacement policy.
func New(capacity int, policy Policy) (Cache, error) {
	if capacity < 1 || capacity > MaxCapacity {
		return nil, &ConfigError{Field: "capacity", Reason: "must be in range 1..=255"}
	}
	switch policy {
	case LRU:
		return newLRU(capacity), nil
	case LFU:
		return newLFU(capacity), nil
	case LeCaR:
		return newLeCaR(capacity), nil
	default:
		return nil, &ConfigError{Field: "policy", Reason: "unrecognized policy"}
	}
}

// NewWithConfig constructs a Cache from a Config, wiring cfg.Logger in when
// it is non-nil. It is equivalent to New(cfg.Capacity, cfg.Policy) when
// cfg.Logger is nil.
func NewWithConfig(cfg Config) (Cache, error) {
	cache, err := New(cfg.Capacity, cfg.Policy)
	if err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		return cache, nil
	}
	return newLoggingCache(cache, cfg.Logger), nil
}

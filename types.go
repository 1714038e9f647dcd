// types.go: ambient logging and statistics types for Unicache
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package unicache

import "fmt"

// Logger is an optional sink for debug and monitoring output. A nil Logger
// is valid everywhere one is accepted; callers that don't care about
// observability pay nothing for it.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// CacheStats summarizes a dictionary's traffic since construction. Puts
// counts every Put call (admissions and refreshes of an existing value),
// Hits/Misses count GetEncodedIndex lookups, and Evictions counts entries
// displaced to make room for a new one.
type CacheStats struct {
	Puts      int64
	Hits      int64
	Misses    int64
	Evictions int64
}

// HitRate returns Hits / (Hits + Misses), or 0 if there have been no lookups.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

func (s CacheStats) String() string {
	return fmt.Sprintf("puts=%d hits=%d misses=%d evictions=%d hit_rate=%.2f%%",
		s.Puts, s.Hits, s.Misses, s.Evictions, s.HitRate()*100)
}

// StatsProvider is implemented by every concrete policy in this package.
// It's kept separate from Cache because Cache is the wire-level
// synchronization surface between encoder and decoder; stats are a purely
// local, ambient concern layered on top.
type StatsProvider interface {
	Stats() CacheStats
}

// unicache_test.go: contract tests shared by every replacement policy
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package unicache

import (
	"fmt"
	"testing"
)

func allPolicies() []Policy { return []Policy{LRU, LFU, LeCaR} }

func TestNew_RejectsBadCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, 256, 1000} {
		if _, err := New(capacity, LRU); err == nil {
			t.Errorf("New(%d, LRU) expected error, got nil", capacity)
		}
	}
}

func TestNew_RejectsUnknownPolicy(t *testing.T) {
	if _, err := New(4, Policy(99)); err == nil {
		t.Fatal("New with unknown policy should error")
	}
}

func TestNew_AcceptsBoundaryCapacities(t *testing.T) {
	for _, capacity := range []int{1, 255} {
		for _, p := range allPolicies() {
			if _, err := New(capacity, p); err != nil {
				t.Errorf("New(%d, %s) unexpected error: %v", capacity, p, err)
			}
		}
	}
}

func TestParsePolicy(t *testing.T) {
	cases := map[string]Policy{"lru": LRU, "LRU": LRU, "lfu": LFU, "LFU": LFU, "lecar": LeCaR, "LECAR": LeCaR, "LeCaR": LeCaR}
	for in, want := range cases {
		got, err := ParsePolicy(in)
		if err != nil {
			t.Fatalf("ParsePolicy(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParsePolicy("bogus"); err == nil {
		t.Error("ParsePolicy(\"bogus\") should error")
	}
}

func TestPolicyString(t *testing.T) {
	cases := map[Policy]string{LRU: "lru", LFU: "lfu", LeCaR: "lecar", Policy(99): "unknown"}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("Policy(%d).String() = %q, want %q", p, got, want)
		}
	}
}

// invariant 1: round-trip fidelity of the cache contract itself (a value
// admitted resolves back to itself through its assigned index).
func TestCache_RoundTripFidelity(t *testing.T) {
	for _, p := range allPolicies() {
		t.Run(p.String(), func(t *testing.T) {
			c, err := New(4, p)
			if err != nil {
				t.Fatal(err)
			}
			values := []string{"alpha", "bravo", "charlie", "delta"}
			for _, v := range values {
				c.Put(v)
			}
			for _, v := range values {
				idx, ok := c.GetEncodedIndex(v)
				if !ok {
					t.Fatalf("GetEncodedIndex(%q) miss after Put", v)
				}
				if got := c.GetWithEncodedIndex(idx); got != v {
					t.Errorf("GetWithEncodedIndex(%d) = %q, want %q", idx, got, v)
				}
			}
		})
	}
}

// invariant 3: bounded size.
func TestCache_BoundedSize(t *testing.T) {
	for _, p := range allPolicies() {
		t.Run(p.String(), func(t *testing.T) {
			c, err := New(3, p)
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < 50; i++ {
				c.Put(fmt.Sprintf("key-%d", i))
				if c.Len() > c.Capacity() {
					t.Fatalf("Len()=%d exceeds Capacity()=%d after %d puts", c.Len(), c.Capacity(), i+1)
				}
			}
			if c.Len() != 3 {
				t.Errorf("Len() = %d, want 3 (cache should be full)", c.Len())
			}
		})
	}
}

// invariant 5: index uniqueness among live entries.
func TestCache_IndexUniqueness(t *testing.T) {
	for _, p := range allPolicies() {
		t.Run(p.String(), func(t *testing.T) {
			c, err := New(5, p)
			if err != nil {
				t.Fatal(err)
			}
			values := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
			for _, v := range values {
				c.Put(v)
			}
			seen := make(map[Index]string)
			for _, v := range values {
				idx, ok := c.GetEncodedIndex(v)
				if !ok {
					continue
				}
				if owner, exists := seen[idx]; exists && owner != v {
					t.Fatalf("index %d shared by %q and %q", idx, owner, v)
				}
				seen[idx] = v
			}
		})
	}
}

// invariant 4: index stability while live (not evicted between t1 and t2).
func TestCache_IndexStability(t *testing.T) {
	for _, p := range allPolicies() {
		t.Run(p.String(), func(t *testing.T) {
			c, err := New(4, p)
			if err != nil {
				t.Fatal(err)
			}
			c.Put("keep-me")
			idx1, ok := c.GetEncodedIndex("keep-me")
			if !ok {
				t.Fatal("expected hit")
			}
			// Touch other keys below capacity: keep-me is never evicted.
			c.Put("b")
			c.Put("c")
			c.GetEncodedIndex("b")
			idx2, ok := c.GetEncodedIndex("keep-me")
			if !ok {
				t.Fatal("expected hit")
			}
			if idx1 != idx2 {
				t.Errorf("index changed from %d to %d without eviction", idx1, idx2)
			}
		})
	}
}

// capacity = 1: every admission evicts the previous entry.
func TestCache_CapacityOne(t *testing.T) {
	for _, p := range allPolicies() {
		t.Run(p.String(), func(t *testing.T) {
			c, err := New(1, p)
			if err != nil {
				t.Fatal(err)
			}
			c.Put("a")
			c.Put("b")
			if c.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", c.Len())
			}
			if _, ok := c.GetEncodedIndex("a"); ok {
				t.Error("\"a\" should have been evicted")
			}
			idx, ok := c.GetEncodedIndex("b")
			if !ok {
				t.Fatal("\"b\" should be present")
			}
			if idx != 0 {
				t.Errorf("sole entry should hold index 0, got %d", idx)
			}
		})
	}
}

// Repeating the same value N > capacity times: exactly one admission.
func TestCache_RepeatedPutIsIdempotentAdmission(t *testing.T) {
	for _, p := range allPolicies() {
		t.Run(p.String(), func(t *testing.T) {
			c, err := New(4, p)
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < 10; i++ {
				c.Put("repeat")
			}
			if c.Len() != 1 {
				t.Errorf("Len() = %d, want 1 after repeated Put of same value", c.Len())
			}
		})
	}
}

// GetEncodedIndex never admits.
func TestCache_GetEncodedIndexDoesNotAdmit(t *testing.T) {
	for _, p := range allPolicies() {
		t.Run(p.String(), func(t *testing.T) {
			c, err := New(4, p)
			if err != nil {
				t.Fatal(err)
			}
			if _, ok := c.GetEncodedIndex("never-put"); ok {
				t.Fatal("GetEncodedIndex on absent value should miss")
			}
			if c.Len() != 0 {
				t.Errorf("Len() = %d, want 0 (GetEncodedIndex must not admit)", c.Len())
			}
		})
	}
}

func TestCache_GetWithEncodedIndex_OutOfRangePanics(t *testing.T) {
	for _, p := range allPolicies() {
		t.Run(p.String(), func(t *testing.T) {
			c, err := New(2, p)
			if err != nil {
				t.Fatal(err)
			}
			c.Put("only-entry")
			defer func() {
				if recover() == nil {
					t.Error("expected panic on out-of-range decode index")
				}
			}()
			c.GetWithEncodedIndex(1)
		})
	}
}

// Scenario B (spec.md §8): LRU eviction, index reuse.
func TestLRU_ScenarioB_IndexReuse(t *testing.T) {
	c := newLRU(2)
	c.Put("A")
	idxA, _ := c.GetEncodedIndex("A")
	c.Put("B")
	c.Put("C") // A is least-recently-used (last touched before B was admitted), gets evicted
	if _, ok := c.GetEncodedIndex("A"); ok {
		t.Fatal("A should have been evicted")
	}
	idxC, ok := c.GetEncodedIndex("C")
	if !ok {
		t.Fatal("C should be present")
	}
	if idxC != idxA {
		t.Errorf("C should reuse A's freed index %d, got %d", idxA, idxC)
	}
}

func TestStatsProvider_HitRate(t *testing.T) {
	c, err := New(2, LRU)
	if err != nil {
		t.Fatal(err)
	}
	sp := c.(StatsProvider)
	c.Put("a")
	c.GetEncodedIndex("a")
	c.GetEncodedIndex("missing")
	stats := sp.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Fatalf("stats = %+v, want 1 hit, 1 miss", stats)
	}
	if got := stats.HitRate(); got != 0.5 {
		t.Errorf("HitRate() = %v, want 0.5", got)
	}
	if stats.String() == "" {
		t.Error("String() should not be empty")
	}
}

func TestCacheStats_HitRateNoLookups(t *testing.T) {
	var s CacheStats
	if got := s.HitRate(); got != 0 {
		t.Errorf("HitRate() on empty stats = %v, want 0", got)
	}
}

// Dictionary parity (invariant 2): two independently constructed caches fed
// the same operation sequence converge on identical content<->index maps.
func TestCache_DictionaryParity(t *testing.T) {
	for _, p := range allPolicies() {
		t.Run(p.String(), func(t *testing.T) {
			encoder, _ := New(4, p)
			decoder, _ := New(4, p)

			ops := []string{"x", "y", "z", "x", "w", "v", "y", "x", "u", "t"}
			for _, v := range ops {
				idx, ok := encoder.GetEncodedIndex(v)
				if !ok {
					encoder.Put(v)
					decoder.Put(v)
					continue
				}
				if got := decoder.GetWithEncodedIndex(idx); got != v {
					t.Fatalf("parity broken: decoder index %d resolved to %q, want %q", idx, got, v)
				}
			}
			if encoder.Len() != decoder.Len() {
				t.Fatalf("encoder Len()=%d, decoder Len()=%d", encoder.Len(), decoder.Len())
			}
			for _, v := range ops {
				eIdx, eok := encoder.GetEncodedIndex(v)
				dIdx, dok := decoder.GetEncodedIndex(v)
				if eok != dok {
					t.Fatalf("parity broken on presence of %q", v)
				}
				if eok && eIdx != dIdx {
					t.Fatalf("parity broken: %q has index %d on encoder, %d on decoder", v, eIdx, dIdx)
				}
			}
		})
	}
}

// lfu_test.go: unit tests for the LFU replacement policy
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package unicache

import "testing"

// Scenario C (spec.md §8): LFU tie break.
// Stream: put(A); put(B); get(A); put(C). Expected victim: B (freq 1),
// not A (freq 2). C takes B's index.
func TestLFU_ScenarioC_TieBreak(t *testing.T) {
	c := newLFU(2)
	c.Put("A")
	c.Put("B")
	idxB := c.byKey["B"].Value.(*lfuEntry).index // read without promoting B
	c.GetEncodedIndex("A")                       // A now freq 2, B freq 1
	c.Put("C")

	if _, ok := c.GetEncodedIndex("B"); ok {
		t.Fatal("B (lower frequency) should have been evicted")
	}
	if _, ok := c.GetEncodedIndex("A"); !ok {
		t.Fatal("A (higher frequency) should remain")
	}
	idxC, ok := c.GetEncodedIndex("C")
	if !ok {
		t.Fatal("C should be present")
	}
	if idxC != idxB {
		t.Errorf("C should take B's freed index %d, got %d", idxB, idxC)
	}
}

func TestLFU_FIFOTieBreakWithinFrequencyClass(t *testing.T) {
	c := newLFU(3)
	c.Put("first")
	c.Put("second")
	c.Put("third")
	// All at frequency 1; "first" has sat longest (FIFO victim).
	c.Put("fourth")
	if _, ok := c.GetEncodedIndex("first"); ok {
		t.Error("\"first\" should have been evicted (FIFO within freq class)")
	}
	for _, v := range []string{"second", "third", "fourth"} {
		if _, ok := c.GetEncodedIndex(v); !ok {
			t.Errorf("%q should still be present", v)
		}
	}
}

func TestLFU_PutExistingValueIncrementsFrequency(t *testing.T) {
	c := newLFU(2)
	c.Put("a")
	elem := c.byKey["a"]
	if elem.Value.(*lfuEntry).freq != 1 {
		t.Fatalf("initial freq = %d, want 1", elem.Value.(*lfuEntry).freq)
	}
	c.Put("a")
	elem = c.byKey["a"]
	if elem.Value.(*lfuEntry).freq != 2 {
		t.Errorf("freq after repeat Put = %d, want 2", elem.Value.(*lfuEntry).freq)
	}
}

func TestLFU_GetEncodedIndexIncrementsFrequency(t *testing.T) {
	c := newLFU(2)
	c.Put("a")
	c.GetEncodedIndex("a")
	c.GetEncodedIndex("a")
	elem := c.byKey["a"]
	if elem.Value.(*lfuEntry).freq != 3 {
		t.Errorf("freq = %d, want 3 (1 put + 2 gets)", elem.Value.(*lfuEntry).freq)
	}
}

func TestLFU_MinFreqAdvancesWhenBucketEmpties(t *testing.T) {
	c := newLFU(2)
	c.Put("a")
	c.Put("b")
	c.GetEncodedIndex("a")
	c.GetEncodedIndex("b")
	// Both now at freq 2; minFreq should have advanced from 1 to 2.
	if c.minFreq != 2 {
		t.Errorf("minFreq = %d, want 2", c.minFreq)
	}
}

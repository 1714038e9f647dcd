// doc.go: package overview for the Unicache dictionary-replication library
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

// Package unicache implements a bounded, index-stable string dictionary
// used to replicate structured records between a sender and one or more
// receivers. A sender and receiver each own a UniCache constructed with the
// same capacity and policy; as long as both observe the same ordered stream
// of Put / GetEncodedIndex / GetWithEncodedIndex calls, their dictionaries
// assign identical indices to identical content without any synchronization
// message passing between them.
//
// Three replacement policies are provided: LRU (lru.go), LFU (lfu.go), and
// LeCaR, an adaptive mix of the two (lecar.go). All three satisfy the Cache
// interface and share the same index-allocation rule: while the dictionary
// is below capacity, the next admitted entry receives the next free index;
// once full, an evicted entry's index is handed to its replacement. This
// reuse rule is the entire synchronization protocol between encoder and
// decoder — see Cache's doc comment for the contract in full.
//
// The schema-driven record encoder/decoder built on top of this package
// lives in the sibling package unicache/schema.
package unicache

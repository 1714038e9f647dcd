// coder.go: slot-level admission protocol shared by every record schema
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

// Package schema implements OmniCache: schema-driven record encoders and
// decoders built on top of the unicache package. Each file in this package
// is a data-driven description of one record type's cacheable slots, not a
// hand-rolled per-record code path, per spec.md §9's "record decomposition
// as a configuration" design note.
package schema

import (
	"strings"

	"github.com/agilira/unicache"
)

// EncodedField is a slot value after the admission protocol from spec.md
// §4.3: either an index into the slot's dictionary, or the literal string
// carried verbatim because it was too short to admit or this is its first
// sighting.
type EncodedField struct {
	Indexed bool
	Index   unicache.Index
	Literal string
}

func indexed(i unicache.Index) EncodedField { return EncodedField{Indexed: true, Index: i} }
func literal(v string) EncodedField         { return EncodedField{Literal: v} }

// EncodeSlot applies spec.md §4.3's admission protocol to one scalar slot:
// values shorter than minThreshold are never admitted and never consulted;
// a cache hit is re-emitted as an index, a miss is admitted and emitted as
// a literal.
func EncodeSlot(cache unicache.Cache, minThreshold int, value string) EncodedField {
	if len(value) < minThreshold {
		return literal(value)
	}
	if idx, ok := cache.GetEncodedIndex(value); ok {
		return indexed(idx)
	}
	cache.Put(value)
	return literal(value)
}

// DecodeSlot mirrors EncodeSlot: the decoder admits exactly when the
// encoder admitted, which is what keeps the two dictionaries in lock-step.
func DecodeSlot(cache unicache.Cache, minThreshold int, field EncodedField) string {
	if field.Indexed {
		return cache.GetWithEncodedIndex(field.Index)
	}
	if len(field.Literal) >= minThreshold {
		cache.Put(field.Literal)
	}
	return field.Literal
}

// TokenList is spec.md's "maybe-processed field": a whitespace- or
// separator-delimited slot that is either Processed token-by-token, or
// carried as a single Unprocessed string once it exceeds maxThreshold
// (0 disables the ceiling).
type TokenList struct {
	Unprocessed bool
	Raw         string
	Tokens      []EncodedField
}

// EncodeTokenList splits value on sep and encodes each token through cache,
// unless value as a whole exceeds maxThreshold, in which case it is sent
// Unprocessed without touching the cache at all (spec.md §8 Scenario D).
func EncodeTokenList(cache unicache.Cache, minThreshold, maxThreshold int, sep, value string) TokenList {
	if maxThreshold > 0 && len(value) > maxThreshold {
		return TokenList{Unprocessed: true, Raw: value}
	}
	parts := strings.Split(value, sep)
	tokens := make([]EncodedField, len(parts))
	for i, p := range parts {
		tokens[i] = EncodeSlot(cache, minThreshold, p)
	}
	return TokenList{Tokens: tokens}
}

// DecodeTokenList inverts EncodeTokenList, rejoining Processed tokens with
// sep or returning an Unprocessed string verbatim.
func DecodeTokenList(cache unicache.Cache, minThreshold int, sep string, list TokenList) string {
	if list.Unprocessed {
		return list.Raw
	}
	parts := make([]string, len(list.Tokens))
	for i, t := range list.Tokens {
		parts[i] = DecodeSlot(cache, minThreshold, t)
	}
	return strings.Join(parts, sep)
}

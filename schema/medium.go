// medium.go: schema coder for blog post metadata
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package schema

import "github.com/agilira/unicache"

// mediumMinThreshold generalizes the original's ad hoc per-tag len()>2
// checks into one documented constant applied uniformly across every slot.
const mediumMinThreshold = 2

// MediumRecord is the decoded form of one blog post's metadata.
type MediumRecord struct {
	Publication string
	Tags        string // comma-separated
	Author      string
	Title       string // space-separated
}

// EncodedMedium is MediumRecord after the admission protocol. Unlike the
// email and article schemas, every slot here is routed through a single
// shared UniCache (MediumCoder.cache): the original routes every Medium
// slot through one cache instance rather than giving each field its own.
// Author is space-tokenized (src/medium/preprocess.rs splits post_author on
// whitespace the same way it splits post_name).
type EncodedMedium struct {
	Publication EncodedField
	Tags        TokenList
	Author      TokenList
	Title       TokenList
}

// MediumCoder owns exactly one UniCache, shared across all four slots.
type MediumCoder struct {
	cache unicache.Cache
}

func NewMediumCoder(capacity int, policy unicache.Policy) (*MediumCoder, error) {
	cache, err := unicache.New(capacity, policy)
	if err != nil {
		return nil, err
	}
	return &MediumCoder{cache: cache}, nil
}

func (c *MediumCoder) Encode(r MediumRecord) EncodedMedium {
	return EncodedMedium{
		Publication: EncodeSlot(c.cache, mediumMinThreshold, r.Publication),
		Tags:        EncodeTokenList(c.cache, mediumMinThreshold, 0, ",", r.Tags),
		Author:      EncodeTokenList(c.cache, mediumMinThreshold, 0, " ", r.Author),
		Title:       EncodeTokenList(c.cache, mediumMinThreshold, 0, " ", r.Title),
	}
}

func (c *MediumCoder) Decode(e EncodedMedium) MediumRecord {
	return MediumRecord{
		Publication: DecodeSlot(c.cache, mediumMinThreshold, e.Publication),
		Tags:        DecodeTokenList(c.cache, mediumMinThreshold, ",", e.Tags),
		Author:      DecodeTokenList(c.cache, mediumMinThreshold, " ", e.Author),
		Title:       DecodeTokenList(c.cache, mediumMinThreshold, " ", e.Title),
	}
}

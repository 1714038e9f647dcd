// email.go: schema coder for Enron-style email headers
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package schema

import "github.com/agilira/unicache"

// emailMinThreshold and emailMaxThreshold are spec.md §8 Scenario D's own
// numbers. The original preprocess.rs declares a THRESHOLD=0 constant that
// its own slot handlers never consult, so spec.md's worked scenario is the
// more complete source of truth for this schema (see DESIGN.md).
const (
	emailMinThreshold = 3
	emailMaxThreshold = 700
)

// EmailRecord is the decoded form of one email header set.
type EmailRecord struct {
	From      string
	To        string
	Subject   string
	XFrom     string
	XTo       string
	XCc       string
	XBcc      string
	XFolder   string
	XOrigin   string
	XFilename string
}

// EncodedEmail is EmailRecord after the admission protocol. Per
// examples/email/src/preprocess.rs, the recipient-list headers (To, X-To,
// X-Cc, X-Bcc, X-Folder) and Subject are the free-text slots, Processed
// token-by-token (space-separated) unless they exceed emailMaxThreshold;
// From, X-From, X-Origin, and X-Filename are single scalar slots.
type EncodedEmail struct {
	From      EncodedField
	To        TokenList
	Subject   TokenList
	XFrom     EncodedField
	XTo       TokenList
	XCc       TokenList
	XBcc      TokenList
	XFolder   TokenList
	XOrigin   EncodedField
	XFilename EncodedField
}

// EmailCoder owns ten independent UniCache instances, one per header slot,
// per spec.md §4.3 ("one per field or field-group with similar value
// distributions").
type EmailCoder struct {
	from, to, subject                     unicache.Cache
	xFrom, xTo, xCc, xBcc                 unicache.Cache
	xFolder, xOrigin, xFilename           unicache.Cache
}

// NewEmailCoder constructs an EmailCoder whose ten slot caches all share the
// given capacity and policy.
func NewEmailCoder(capacity int, policy unicache.Policy) (*EmailCoder, error) {
	caches := make([]unicache.Cache, 10)
	for i := range caches {
		c, err := unicache.New(capacity, policy)
		if err != nil {
			return nil, err
		}
		caches[i] = c
	}
	return &EmailCoder{
		from: caches[0], to: caches[1], subject: caches[2],
		xFrom: caches[3], xTo: caches[4], xCc: caches[5], xBcc: caches[6],
		xFolder: caches[7], xOrigin: caches[8], xFilename: caches[9],
	}, nil
}

func (c *EmailCoder) Encode(r EmailRecord) EncodedEmail {
	return EncodedEmail{
		From:      EncodeSlot(c.from, emailMinThreshold, r.From),
		To:        EncodeTokenList(c.to, emailMinThreshold, emailMaxThreshold, " ", r.To),
		Subject:   EncodeTokenList(c.subject, emailMinThreshold, emailMaxThreshold, " ", r.Subject),
		XFrom:     EncodeSlot(c.xFrom, emailMinThreshold, r.XFrom),
		XTo:       EncodeTokenList(c.xTo, emailMinThreshold, emailMaxThreshold, " ", r.XTo),
		XCc:       EncodeTokenList(c.xCc, emailMinThreshold, emailMaxThreshold, " ", r.XCc),
		XBcc:      EncodeTokenList(c.xBcc, emailMinThreshold, emailMaxThreshold, " ", r.XBcc),
		XFolder:   EncodeTokenList(c.xFolder, emailMinThreshold, emailMaxThreshold, " ", r.XFolder),
		XOrigin:   EncodeSlot(c.xOrigin, emailMinThreshold, r.XOrigin),
		XFilename: EncodeSlot(c.xFilename, emailMinThreshold, r.XFilename),
	}
}

func (c *EmailCoder) Decode(e EncodedEmail) EmailRecord {
	return EmailRecord{
		From:      DecodeSlot(c.from, emailMinThreshold, e.From),
		To:        DecodeTokenList(c.to, emailMinThreshold, " ", e.To),
		Subject:   DecodeTokenList(c.subject, emailMinThreshold, " ", e.Subject),
		XFrom:     DecodeSlot(c.xFrom, emailMinThreshold, e.XFrom),
		XTo:       DecodeTokenList(c.xTo, emailMinThreshold, " ", e.XTo),
		XCc:       DecodeTokenList(c.xCc, emailMinThreshold, " ", e.XCc),
		XBcc:      DecodeTokenList(c.xBcc, emailMinThreshold, " ", e.XBcc),
		XFolder:   DecodeTokenList(c.xFolder, emailMinThreshold, " ", e.XFolder),
		XOrigin:   DecodeSlot(c.xOrigin, emailMinThreshold, e.XOrigin),
		XFilename: DecodeSlot(c.xFilename, emailMinThreshold, e.XFilename),
	}
}

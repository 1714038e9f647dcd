// email_test.go: unit tests for the email header schema coder
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package schema

import (
	"strings"
	"testing"

	"github.com/agilira/unicache"
)

func sampleEmail() EmailRecord {
	return EmailRecord{
		From:      "alice@example.com",
		To:        "bob@example.com",
		Subject:   "Quarterly results are in, please review before Friday",
		XFrom:     "Alice Smith",
		XTo:       "Bob Jones",
		XCc:       "carol@example.com",
		XBcc:      "",
		XFolder:   "\\Inbox\\Reports",
		XOrigin:   "alice-s",
		XFilename: "alice-s.pst",
	}
}

func TestEmailCoder_RoundTrip(t *testing.T) {
	coder, err := NewEmailCoder(16, unicache.LRU)
	if err != nil {
		t.Fatal(err)
	}
	rec := sampleEmail()
	encoded := coder.Encode(rec)
	decoded := coder.Decode(encoded)
	if decoded != rec {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", decoded, rec)
	}
}

func TestEmailCoder_RepeatedFromBecomesIndexed(t *testing.T) {
	coder, err := NewEmailCoder(16, unicache.LRU)
	if err != nil {
		t.Fatal(err)
	}
	rec := sampleEmail()
	first := coder.Encode(rec)
	if first.From.Indexed {
		t.Fatal("first sighting of From should not be Indexed")
	}
	second := coder.Encode(rec)
	if !second.From.Indexed {
		t.Error("repeat sighting of From should be Indexed")
	}
}

// Scenario D (spec.md §8): a Subject over MAX_THRESHOLD is Unprocessed and
// round-trips verbatim without touching the subject cache; a shorter one is
// Processed token-by-token.
func TestEmailCoder_ScenarioD_ProcessedVsUnprocessed(t *testing.T) {
	coder, err := NewEmailCoder(32, unicache.LRU)
	if err != nil {
		t.Fatal(err)
	}

	rec := sampleEmail()
	rec.Subject = "short subject line here"
	encoded := coder.Encode(rec)
	if encoded.Subject.Unprocessed {
		t.Fatal("short subject should be Processed")
	}
	if len(encoded.Subject.Tokens) == 0 {
		t.Fatal("Processed subject should carry tokens")
	}

	long := strings.Repeat("word ", 500) // far beyond the 700-byte ceiling
	rec2 := sampleEmail()
	rec2.Subject = long
	encoded2 := coder.Encode(rec2)
	if !encoded2.Subject.Unprocessed {
		t.Fatal("2000+ char subject should be Unprocessed")
	}
	if encoded2.Subject.Raw != long {
		t.Error("Unprocessed subject should carry the full string verbatim")
	}
	decoded2 := coder.Decode(encoded2)
	if decoded2.Subject != long {
		t.Error("Unprocessed subject should round-trip verbatim")
	}
}

func TestEmailCoder_ShortHeaderNeverAdmitted(t *testing.T) {
	coder, err := NewEmailCoder(16, unicache.LRU)
	if err != nil {
		t.Fatal(err)
	}
	rec := sampleEmail()
	rec.XBcc = "" // shorter than emailMinThreshold=3
	encoded := coder.Encode(rec)
	for i, tok := range encoded.XBcc.Tokens {
		if tok.Indexed {
			t.Errorf("token %d of empty XBcc should never be Indexed", i)
		}
	}
	decoded := coder.Decode(encoded)
	if decoded.XBcc != "" {
		t.Errorf("XBcc = %q, want empty", decoded.XBcc)
	}
}

func TestEmailCoder_TenIndependentCaches(t *testing.T) {
	coder, err := NewEmailCoder(1, unicache.LRU)
	if err != nil {
		t.Fatal(err)
	}
	// Every slot is independently capacity-1: admitting one slot's value
	// must not evict or interfere with another slot's dictionary.
	rec := EmailRecord{
		From: "same-length-a", To: "same-length-b", Subject: "x y",
		XFrom: "same-length-c", XTo: "same-length-d", XCc: "same-length-e",
		XBcc: "same-length-f", XFolder: "same-length-g", XOrigin: "same-length-h",
		XFilename: "same-length-i",
	}
	e1 := coder.Encode(rec)
	e2 := coder.Encode(rec)
	if !e2.From.Indexed || !e2.XFrom.Indexed {
		t.Error("second encode of identical record should hit every scalar slot's own cache")
	}
	if len(e2.To.Tokens) == 0 || !e2.To.Tokens[0].Indexed {
		t.Error("second encode of identical record should hit the To slot's own cache")
	}
	_ = e1
}

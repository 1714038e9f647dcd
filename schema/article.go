// article.go: schema coder for news articles (URL + metadata)
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package schema

import (
	"strings"

	"github.com/agilira/unicache"
)

// articleMinThreshold matches the original's THRESHOLD=3, which (unlike the
// email schema's dead constant) is actually consulted throughout
// examples/nyt/src/preprocess.rs.
const articleMinThreshold = 3

// ArticleRecord is the decoded form of one news article: its canonical URL,
// an ISO-8601 publish timestamp, and seven metadata fields. PrintHeadline is
// the print edition's headline, distinct from the (usually different) web
// Headline; examples/nyt/src/preprocess.rs caches the two separately.
type ArticleRecord struct {
	URL           string
	PublishedAt   string
	DocType       string
	Desk          string
	Section       string
	Material      string
	Headline      string
	PrintHeadline string
	Byline        string
}

// EncodedArticle is ArticleRecord after decomposition. The URL is split into
// a host, a date component, a path component list, and a hyphen-tokenized
// name (spec.md §8 Scenario E); the timestamp is split into date/time/zone.
// Headline, PrintHeadline, and Byline are free-text slots, space-tokenized
// per examples/nyt/src/preprocess.rs's try_encode_vec calls.
type EncodedArticle struct {
	Host          EncodedField
	URLDate       EncodedField
	Path          TokenList
	Name          TokenList
	PubDate       EncodedField
	PubTime       EncodedField
	PubZone       EncodedField
	DocType       EncodedField
	Desk          EncodedField
	Section       EncodedField
	Material      EncodedField
	Headline      TokenList
	PrintHeadline TokenList
	Byline        TokenList
}

// ArticleCoder owns one UniCache per decomposed slot.
type ArticleCoder struct {
	host, urlDate, path, name        unicache.Cache
	pubDate, pubTime, pubZone        unicache.Cache
	docType, desk, section, material unicache.Cache
	headline, printHeadline, byline  unicache.Cache
}

// NewArticleCoder constructs an ArticleCoder whose slot caches all share the
// given capacity and policy.
func NewArticleCoder(capacity int, policy unicache.Policy) (*ArticleCoder, error) {
	caches := make([]unicache.Cache, 14)
	for i := range caches {
		c, err := unicache.New(capacity, policy)
		if err != nil {
			return nil, err
		}
		caches[i] = c
	}
	return &ArticleCoder{
		host: caches[0], urlDate: caches[1], path: caches[2], name: caches[3],
		pubDate: caches[4], pubTime: caches[5], pubZone: caches[6],
		docType: caches[7], desk: caches[8], section: caches[9],
		material: caches[10], headline: caches[11], printHeadline: caches[12],
		byline: caches[13],
	}, nil
}

// decomposeURL splits a URL of the form scheme://host/YYYY/MM/DD/seg.../last
// into its host, a "YYYY/MM/DD/" date component, the path segments between
// the date and the final segment, and the final segment itself (the coder
// then splits it into hyphen-separated tokens). This is exactly spec.md §8
// Scenario E's worked example.
func decomposeURL(url string) (host, date, path, name string) {
	rest := url
	if i := strings.Index(rest, "://"); i >= 0 {
		host = url[:i+3]
		rest = rest[i+3:]
	}
	if i := strings.Index(rest, "/"); i >= 0 {
		host += rest[:i]
		rest = rest[i+1:]
	} else {
		host += rest
		return host, "", "", ""
	}

	segments := strings.Split(rest, "/")
	if len(segments) < 4 {
		return host, "", "", rest
	}

	date = strings.Join(segments[:3], "/") + "/"
	remaining := segments[3:]
	name = remaining[len(remaining)-1]
	path = strings.Join(remaining[:len(remaining)-1], "/")
	return host, date, path, name
}

func recomposeURL(host, date, path, name string) string {
	var b strings.Builder
	b.WriteString(host)
	b.WriteByte('/')
	b.WriteString(date)
	if path != "" {
		b.WriteString(path)
		b.WriteByte('/')
	}
	b.WriteString(name)
	return b.String()
}

// splitISOTimestamp breaks a timestamp like "2019-12-31T08:00:00+0000" into
// its date, time, and zone components.
func splitISOTimestamp(ts string) (date, t, zone string) {
	parts := strings.SplitN(ts, "T", 2)
	date = parts[0]
	if len(parts) < 2 {
		return date, "", ""
	}
	rest := parts[1]
	for i, r := range rest {
		if i > 0 && (r == '+' || r == '-' || r == 'Z') {
			return date, rest[:i], rest[i:]
		}
	}
	return date, rest, ""
}

func joinISOTimestamp(date, t, zone string) string {
	if t == "" {
		return date
	}
	return date + "T" + t + zone
}

func (c *ArticleCoder) Encode(r ArticleRecord) EncodedArticle {
	host, urlDate, path, name := decomposeURL(r.URL)
	pubDate, pubTime, pubZone := splitISOTimestamp(r.PublishedAt)

	return EncodedArticle{
		Host:          EncodeSlot(c.host, articleMinThreshold, host),
		URLDate:       EncodeSlot(c.urlDate, articleMinThreshold, urlDate),
		Path:          EncodeTokenList(c.path, articleMinThreshold, 0, "/", path),
		Name:          EncodeTokenList(c.name, articleMinThreshold, 0, "-", name),
		PubDate:       EncodeSlot(c.pubDate, articleMinThreshold, pubDate),
		PubTime:       EncodeSlot(c.pubTime, articleMinThreshold, pubTime),
		PubZone:       EncodeSlot(c.pubZone, articleMinThreshold, pubZone),
		DocType:       EncodeSlot(c.docType, articleMinThreshold, r.DocType),
		Desk:          EncodeSlot(c.desk, articleMinThreshold, r.Desk),
		Section:       EncodeSlot(c.section, articleMinThreshold, r.Section),
		Material:      EncodeSlot(c.material, articleMinThreshold, r.Material),
		Headline:      EncodeTokenList(c.headline, articleMinThreshold, 0, " ", r.Headline),
		PrintHeadline: EncodeTokenList(c.printHeadline, articleMinThreshold, 0, " ", r.PrintHeadline),
		Byline:        EncodeTokenList(c.byline, articleMinThreshold, 0, " ", r.Byline),
	}
}

func (c *ArticleCoder) Decode(e EncodedArticle) ArticleRecord {
	host := DecodeSlot(c.host, articleMinThreshold, e.Host)
	urlDate := DecodeSlot(c.urlDate, articleMinThreshold, e.URLDate)
	path := DecodeTokenList(c.path, articleMinThreshold, "/", e.Path)
	name := DecodeTokenList(c.name, articleMinThreshold, "-", e.Name)

	pubDate := DecodeSlot(c.pubDate, articleMinThreshold, e.PubDate)
	pubTime := DecodeSlot(c.pubTime, articleMinThreshold, e.PubTime)
	pubZone := DecodeSlot(c.pubZone, articleMinThreshold, e.PubZone)

	return ArticleRecord{
		URL:           recomposeURL(host, urlDate, path, name),
		PublishedAt:   joinISOTimestamp(pubDate, pubTime, pubZone),
		DocType:       DecodeSlot(c.docType, articleMinThreshold, e.DocType),
		Desk:          DecodeSlot(c.desk, articleMinThreshold, e.Desk),
		Section:       DecodeSlot(c.section, articleMinThreshold, e.Section),
		Material:      DecodeSlot(c.material, articleMinThreshold, e.Material),
		Headline:      DecodeTokenList(c.headline, articleMinThreshold, " ", e.Headline),
		PrintHeadline: DecodeTokenList(c.printHeadline, articleMinThreshold, " ", e.PrintHeadline),
		Byline:        DecodeTokenList(c.byline, articleMinThreshold, " ", e.Byline),
	}
}

// sql.go: template/parameter tokenizer and schema coder for SQL statements
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package schema

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agilira/unicache"
)

// templateSeparator replaces every captured literal span when building a
// query template. spec.md §4.4 requires a character that cannot collide
// with SQL content; '#' is never produced by either capture regex below.
const templateSeparator = "#"

// hashLiteralRe matches single-quoted hash values of the form '<digits>\<tail>'.
// integerRe matches bare integer/decimal literals, excluding ones that are
// actually part of an identifier (preceded by a letter, quote, paren, comma,
// or asterisk) so something like table name "a1" is never captured.
var (
	hashLiteralRe = regexp.MustCompile(`'\d+\\.*?'`)
	integerRe     = regexp.MustCompile(`([^a-zA-Z'(,*])\d+(\.\d+)?`)
	captureRules  = []*regexp.Regexp{hashLiteralRe, integerRe}
)

type capture struct {
	start int
	text  string
}

// splitQuery decomposes a raw SQL statement into a parameterized template
// and its ordered list of captured literal spans, per spec.md §4.4. The two
// regexes run in order; a byte position already claimed by an earlier match
// is never claimed again, so first match wins.
func splitQuery(query string) (template string, parameters []string) {
	claimed := make([]bool, len(query))
	var captures []capture

	for _, re := range captureRules {
		for _, loc := range re.FindAllStringIndex(query, -1) {
			start, end := loc[0], loc[1]
			if claimed[start] {
				continue
			}
			for i := start; i < end; i++ {
				claimed[i] = true
			}
			captures = append(captures, capture{start: start, text: query[start:end]})
		}
	}

	sort.Slice(captures, func(i, j int) bool { return captures[i].start < captures[j].start })
	var b strings.Builder
	prev := 0
	parameters = make([]string, len(captures))
	for i, c := range captures {
		b.WriteString(query[prev:c.start])
		b.WriteString(templateSeparator)
		prev = c.start + len(c.text)
		parameters[i] = c.text
	}
	b.WriteString(query[prev:])
	return b.String(), parameters
}

// mergeQuery inverts splitQuery, rejoining template with parameters. The
// number of separator-delimited gaps must equal the number of parameters;
// a mismatch is an input-shape error (spec.md §4.6, §7 kind 2), not a panic.
func mergeQuery(template string, parameters []string) (string, error) {
	if len(parameters) == 0 {
		return template, nil
	}

	parts := strings.Split(template, templateSeparator)
	if len(parts) != len(parameters)+1 {
		return "", ErrArityMismatch
	}

	var b strings.Builder
	for i, p := range parameters {
		b.WriteString(parts[i])
		b.WriteString(p)
	}
	b.WriteString(parts[len(parameters)])
	return b.String(), nil
}

// sqlMinThreshold is 0: the original never thresholds the template slot,
// and spec.md §8 Scenario A requires the very first template to admit.
const sqlMinThreshold = 0

// SQLRecord is the decoded form of one parameterized SQL statement.
type SQLRecord struct {
	SQL string
}

// EncodedSQL is SQLRecord after template/parameter tokenization and dictionary
// lookup: Template is Indexed if this exact template has been seen before,
// Literal (carrying the template string) otherwise. Parameters always travel
// verbatim; they are never cached.
type EncodedSQL struct {
	Template   EncodedField
	Parameters []string
}

// SQLCoder implements spec.md §8 Scenario A: a single UniCache over query
// templates, encoder and decoder kept in lock-step by the shared admission
// protocol in coder.go.
type SQLCoder struct {
	templates unicache.Cache
}

// NewSQLCoder constructs an SQLCoder backed by a fresh UniCache.
func NewSQLCoder(capacity int, policy unicache.Policy) (*SQLCoder, error) {
	cache, err := unicache.New(capacity, policy)
	if err != nil {
		return nil, err
	}
	return &SQLCoder{templates: cache}, nil
}

// Encode tokenizes record.SQL and looks its template up in the dictionary.
func (c *SQLCoder) Encode(record SQLRecord) EncodedSQL {
	template, parameters := splitQuery(record.SQL)
	return EncodedSQL{
		Template:   EncodeSlot(c.templates, sqlMinThreshold, template),
		Parameters: parameters,
	}
}

// Decode resolves the template (admitting it if this is its first sighting
// on this side) and reassembles the original SQL statement.
func (c *SQLCoder) Decode(encoded EncodedSQL) (SQLRecord, error) {
	template := DecodeSlot(c.templates, sqlMinThreshold, encoded.Template)
	sql, err := mergeQuery(template, encoded.Parameters)
	if err != nil {
		return SQLRecord{}, err
	}
	return SQLRecord{SQL: sql}, nil
}

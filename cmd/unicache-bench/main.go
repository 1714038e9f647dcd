// main.go: unicache-bench replays a dataset through a schema coder and
// reports round-trip fidelity plus encode/decode/compression histograms.
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/agilira/unicache"
	"github.com/agilira/unicache/schema"
	"github.com/maypok86/otter"
)

func main() {
	dataset := flag.String("dataset", "", "path to the dataset file; synthetic SQL data is used if empty")
	format := flag.String("format", "sql", "record format: sql (newline-delimited), email, article, or medium (CSV)")
	policyName := flag.String("policy", "lru", "eviction policy: lru, lfu, or lecar")
	capacity := flag.Int("capacity", unicache.MaxCapacity, "dictionary capacity (1-255)")
	withOtter := flag.Bool("otter", false, "also measure a github.com/maypok86/otter baseline cache over the raw records")
	flag.Parse()

	policy, err := unicache.ParsePolicy(*policyName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unicache-bench:", err)
		os.Exit(1)
	}

	runner, ok := runners[*format]
	if !ok {
		fmt.Fprintf(os.Stderr, "unicache-bench: unknown format %q\n", *format)
		os.Exit(1)
	}

	raw, err := runner.load(*dataset)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unicache-bench:", err)
		os.Exit(1)
	}

	results, err := runner.replay(raw, *capacity, policy)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unicache-bench:", err)
		os.Exit(1)
	}
	fmt.Println(results.String())

	if *withOtter {
		runOtterBaseline(raw, *capacity)
	}
}

// formatRunner ties one schema coder to the dataset loader that feeds it.
type formatRunner struct {
	load   func(path string) ([]string, error)
	replay func(raw []string, capacity int, policy unicache.Policy) (*results, error)
}

var runners = map[string]formatRunner{
	"sql":     {load: loadSQLLines, replay: replaySQL},
	"email":   {load: loadCSVLines, replay: replayEmail},
	"article": {load: loadCSVLines, replay: replayArticle},
	"medium":  {load: loadCSVLines, replay: replayMedium},
}

// loadSQLLines reads one SQL statement per line, or returns a small
// synthetic dataset (repeating templates with varying parameters, mirroring
// spec.md §8 Scenario A) when path is empty.
func loadSQLLines(path string) ([]string, error) {
	if path == "" {
		return syntheticSQL(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func syntheticSQL() []string {
	templates := []string{
		"SELECT * FROM orders WHERE id = %d",
		"UPDATE accounts SET balance = %d WHERE user_id = %d",
		"INSERT INTO events (kind, ts) VALUES ('click', %d)",
	}
	lines := make([]string, 0, 300)
	for i := 0; i < 100; i++ {
		for _, t := range templates {
			args := []interface{}{i, i + 1}
			lines = append(lines, fmt.Sprintf(t, args[:strings.Count(t, "%d")]...))
		}
	}
	return lines
}

// loadCSVLines reads a CSV file and re-serializes each row (including the
// header) back into a single comma-joined string, so formatRunner.replay can
// stay uniform: the per-format replay function re-parses columns by position.
// A CSV file is required for these formats; there is no synthetic fallback.
func loadCSVLines(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("this format requires -dataset to point at a CSV file")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([]string, 0, len(records))
	for _, row := range records {
		var b []byte
		for i, field := range row {
			if i > 0 {
				b = append(b, '\x1f')
			}
			b = append(b, field...)
		}
		rows = append(rows, string(b))
	}
	return rows, nil
}

func splitRow(row string) []string {
	var fields []string
	start := 0
	for i := 0; i < len(row); i++ {
		if row[i] == '\x1f' {
			fields = append(fields, row[start:i])
			start = i + 1
		}
	}
	fields = append(fields, row[start:])
	return fields
}

func replaySQL(raw []string, capacity int, policy unicache.Policy) (*results, error) {
	coder, err := schema.NewSQLCoder(capacity, policy)
	if err != nil {
		return nil, err
	}
	res := newResults(policy)
	for _, line := range raw {
		record := schema.SQLRecord{SQL: line}

		start := time.Now()
		encoded := coder.Encode(record)
		encodeEnd := time.Now()

		decoded, err := coder.Decode(encoded)
		end := time.Now()
		if err != nil {
			fmt.Fprintf(os.Stderr, "unicache-bench: decode error for %q: %v\n", line, err)
			continue
		}
		if decoded.SQL != record.SQL {
			fmt.Fprintf(os.Stderr, "unicache-bench: round-trip mismatch: got %q want %q\n", decoded.SQL, record.SQL)
			continue
		}

		size := 0
		if encoded.Template.Indexed {
			size++
		} else {
			size += len(encoded.Template.Literal)
		}
		for _, p := range encoded.Parameters {
			size += len(p)
		}
		res.update(start, encodeEnd, end, encoded.Template.Indexed, len(record.SQL), size)
	}
	return res, nil
}

func replayEmail(raw []string, capacity int, policy unicache.Policy) (*results, error) {
	coder, err := schema.NewEmailCoder(capacity, policy)
	if err != nil {
		return nil, err
	}
	res := newResults(policy)
	for _, row := range raw[skipHeader(raw):] {
		f := splitRow(row)
		if len(f) < 10 {
			continue
		}
		record := schema.EmailRecord{
			From: f[0], To: f[1], Subject: f[2],
			XFrom: f[3], XTo: f[4], XCc: f[5], XBcc: f[6],
			XFolder: f[7], XOrigin: f[8], XFilename: f[9],
		}

		start := time.Now()
		encoded := coder.Encode(record)
		encodeEnd := time.Now()
		decoded := coder.Decode(encoded)
		end := time.Now()

		hit := decoded == record
		if !hit {
			fmt.Fprintf(os.Stderr, "unicache-bench: round-trip mismatch for email row\n")
			continue
		}
		res.update(start, encodeEnd, end, encoded.From.Indexed, len(row), fieldSize(encoded.From)+tokenSize(encoded.Subject))
	}
	return res, nil
}

func replayArticle(raw []string, capacity int, policy unicache.Policy) (*results, error) {
	coder, err := schema.NewArticleCoder(capacity, policy)
	if err != nil {
		return nil, err
	}
	res := newResults(policy)
	for _, row := range raw[skipHeader(raw):] {
		f := splitRow(row)
		if len(f) < 8 {
			continue
		}
		record := schema.ArticleRecord{
			URL: f[0], PublishedAt: f[1], DocType: f[2], Desk: f[3],
			Section: f[4], Material: f[5], Headline: f[6], Byline: f[7],
		}
		if len(f) >= 9 {
			record.PrintHeadline = f[8]
		}

		start := time.Now()
		encoded := coder.Encode(record)
		encodeEnd := time.Now()
		decoded := coder.Decode(encoded)
		end := time.Now()

		if decoded != record {
			fmt.Fprintf(os.Stderr, "unicache-bench: round-trip mismatch for article row\n")
			continue
		}
		res.update(start, encodeEnd, end, encoded.Host.Indexed, len(row), fieldSize(encoded.Host)+tokenSize(encoded.Headline))
	}
	return res, nil
}

func replayMedium(raw []string, capacity int, policy unicache.Policy) (*results, error) {
	coder, err := schema.NewMediumCoder(capacity, policy)
	if err != nil {
		return nil, err
	}
	res := newResults(policy)
	for _, row := range raw[skipHeader(raw):] {
		f := splitRow(row)
		if len(f) < 4 {
			continue
		}
		record := schema.MediumRecord{
			Publication: f[0], Tags: f[1], Author: f[2], Title: f[3],
		}

		start := time.Now()
		encoded := coder.Encode(record)
		encodeEnd := time.Now()
		decoded := coder.Decode(encoded)
		end := time.Now()

		if decoded != record {
			fmt.Fprintf(os.Stderr, "unicache-bench: round-trip mismatch for medium row\n")
			continue
		}
		res.update(start, encodeEnd, end, encoded.Publication.Indexed, len(row), fieldSize(encoded.Publication)+tokenSize(encoded.Tags))
	}
	return res, nil
}

// skipHeader assumes the first row of a CSV dataset is a header row.
func skipHeader(raw []string) int {
	if len(raw) > 0 {
		return 1
	}
	return 0
}

func fieldSize(f schema.EncodedField) int {
	if f.Indexed {
		return 1
	}
	return len(f.Literal)
}

func tokenSize(t schema.TokenList) int {
	if t.Unprocessed {
		return len(t.Raw)
	}
	size := 0
	for _, tok := range t.Tokens {
		size += fieldSize(tok)
	}
	return size
}

// histogram accumulates samples for percentile/stddev reporting. The corpus
// carries no histogram library for Go, so this is a small stdlib-only
// accumulator (see DESIGN.md).
type histogram struct {
	samples []float64
}

func (h *histogram) record(v float64) { h.samples = append(h.samples, v) }

func (h *histogram) stats() (mean, p50, p95, min, max, stddev float64) {
	n := len(h.samples)
	if n == 0 {
		return 0, 0, 0, 0, 0, 0
	}
	sorted := append([]float64(nil), h.samples...)
	sort.Float64s(sorted)
	min, max = sorted[0], sorted[n-1]

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean = sum / float64(n)

	var variance float64
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	stddev = math.Sqrt(variance / float64(n))

	p50 = sorted[percentileIndex(n, 50)]
	p95 = sorted[percentileIndex(n, 95)]
	return mean, p50, p95, min, max, stddev
}

func percentileIndex(n int, pct float64) int {
	idx := int(float64(n-1) * pct / 100)
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// results tracks encode/decode latency and compression ratio across a run,
// grounded on original_source/src/util.rs's Results/Histogram pair.
type results struct {
	policy      unicache.Policy
	encodeHisto histogram
	decodeHisto histogram
	ratioHisto  histogram
	hits        int
	total       int
}

func newResults(policy unicache.Policy) *results {
	return &results{policy: policy}
}

func (r *results) update(start, encodeEnd, end time.Time, hit bool, rawSize, compressedSize int) {
	r.encodeHisto.record(float64(encodeEnd.Sub(start).Nanoseconds()))
	r.decodeHisto.record(float64(end.Sub(encodeEnd).Nanoseconds()))

	ratio := 100.0
	if rawSize > 0 {
		ratio = float64(compressedSize) / float64(rawSize) * 100
	}
	r.ratioHisto.record(ratio)

	r.total++
	if hit {
		r.hits++
	}
}

func (r *results) String() string {
	em, ep50, ep95, emin, emax, esd := r.encodeHisto.stats()
	dm, dp50, dp95, dmin, dmax, dsd := r.decodeHisto.stats()
	cm, cp50, cp95, cmin, cmax, csd := r.ratioHisto.stats()

	hitRate := 0.0
	if r.total > 0 {
		hitRate = float64(r.hits) / float64(r.total)
	}

	return fmt.Sprintf(
		"--------------------------------\n"+
			"Cache type: %s\n"+
			"Encoding (ns): Avg: %.0f, p50: %.0f, p95: %.0f, Min: %.0f, Max: %.0f, StdDev: %.0f\n"+
			"Decoding (ns): Avg: %.0f, p50: %.0f, p95: %.0f, Min: %.0f, Max: %.0f, StdDev: %.0f\n"+
			"Compression Rate (%%): Avg: %.2f, p50: %.2f, p95: %.2f, Min: %.2f, Max: %.2f, StdDev: %.2f\n"+
			"Hit rate: %.4f\n"+
			"Total: %d",
		r.policy, em, ep50, ep95, emin, emax, esd,
		dm, dp50, dp95, dmin, dmax, dsd,
		cm, cp50, cp95, cmin, cmax, csd,
		hitRate, r.total,
	)
}

// runOtterBaseline drives the same raw records through a
// github.com/maypok86/otter cache keyed by the record's own text, as a point
// of comparison against the dictionary-replication approach above: otter is
// a general-purpose value cache with no index-stability contract, so it
// reports only raw hit rate.
func runOtterBaseline(raw []string, capacity int) {
	cache, err := otter.MustBuilder[string, string](capacity).
		CollectStats().
		Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "unicache-bench: otter baseline:", err)
		return
	}
	defer cache.Close()

	hits := 0
	for _, line := range raw {
		if _, ok := cache.Get(line); ok {
			hits++
		} else {
			cache.Set(line, line)
		}
	}

	total := len(raw)
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	fmt.Printf("--------------------------------\notter baseline: hit rate: %.4f, total: %d\n", hitRate, total)
}

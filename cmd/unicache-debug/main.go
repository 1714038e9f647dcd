// /cmd/unicache-debug/main.go: CLI tool for inspecting a Unicache dictionary
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/agilira/unicache"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		showHelp()
		return
	}

	switch os.Args[1] {
	case "inspect":
		cmdInspect(os.Args[2:])
	case "version":
		cmdVersion()
	case "help", "-h", "--help":
		showHelp()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		showHelp()
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Printf("Unicache Debug CLI v%s\n\n", version)
	fmt.Println("USAGE: unicache-debug <command> [flags]")
	fmt.Println("COMMANDS:")
	fmt.Println("  inspect     Populate a dictionary and report its configuration and hit rate")
	fmt.Println("  version     Show version information")
	fmt.Println("  help        Show this help")
	fmt.Println("\nINSPECT FLAGS:")
	fmt.Println("  -json       Output in JSON format")
	fmt.Println("  -v          Enable verbose output")
	fmt.Println("  -policy     Policy to inspect: lru, lfu, lecar (default lecar)")
	fmt.Println("  -capacity   Dictionary capacity, 1-255 (default 255)")
}

func cmdVersion() {
	fmt.Printf("unicache-debug version %s, Go version: %s\n", version, runtime.Version())
}

func cmdInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	jsonOutput := fs.Bool("json", false, "Output in JSON format")
	verbose := fs.Bool("v", false, "Enable verbose output")
	policyName := fs.String("policy", "lecar", "Policy to inspect")
	capacity := fs.Int("capacity", 255, "Dictionary capacity")

	if err := fs.Parse(args); err != nil {
		return
	}

	policy, err := unicache.ParsePolicy(*policyName)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cache, err := unicache.New(*capacity, policy)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// Drive a synthetic workload so there is something to report: five
	// cyclic sweeps over a key space twice the capacity, admitting every
	// third key and looking up the rest.
	keys := make([]string, (*capacity)*2)
	for i := range keys {
		keys[i] = fmt.Sprintf("slot-%d", i)
	}
	for round := 0; round < 5; round++ {
		for i, key := range keys {
			if i%3 == 0 {
				cache.Put(key)
			} else {
				cache.GetEncodedIndex(key)
			}
		}
	}

	stats, _ := cache.(unicache.StatsProvider)
	report(cache, stats, *jsonOutput, *verbose)
}

func report(cache unicache.Cache, stats unicache.StatsProvider, jsonOutput, verbose bool) {
	var s unicache.CacheStats
	if stats != nil {
		s = stats.Stats()
	}

	if jsonOutput {
		out := map[string]interface{}{
			"policy":    cache.Policy().String(),
			"capacity":  cache.Capacity(),
			"len":       cache.Len(),
			"puts":      s.Puts,
			"hits":      s.Hits,
			"misses":    s.Misses,
			"evictions": s.Evictions,
			"hit_rate":  s.HitRate(),
			"timestamp": time.Now().Format(time.RFC3339),
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Policy:    %s\n", cache.Policy())
	fmt.Printf("Capacity:  %d\n", cache.Capacity())
	fmt.Printf("Entries:   %d\n", cache.Len())
	fmt.Printf("Stats:     %s\n", s)
	if verbose {
		fmt.Printf("Config source: %s\n", unicache.GetConfigSource())
	}
}

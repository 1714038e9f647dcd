// /cmd/unicache-cli/main.go: interactive wizard for generating unicache.json
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/agilira/unicache"
)

// fileConfig mirrors the on-disk schema unicache.LoadConfig expects.
type fileConfig struct {
	Capacity     int    `json:"capacity"`
	Policy       string `json:"policy"`
	MinThreshold int    `json:"min_threshold,omitempty"`
	MaxThreshold int    `json:"max_threshold,omitempty"`
}

func main() {
	fmt.Println("Unicache Configuration Generator")
	fmt.Println("================================")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	var config fileConfig

	fmt.Println("What's your primary use case?")
	fmt.Println("1. Development/Testing (small, LRU)")
	fmt.Println("2. SQL statement replication (LeCaR, no thresholding)")
	fmt.Println("3. Email header archive (LFU, thresholded)")
	fmt.Println("4. Article/news feed (LFU, thresholded)")
	fmt.Println("5. Custom configuration")
	fmt.Println("6. Exit")
	fmt.Print("Choose (1-6): ")

	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)

	switch choice {
	case "1":
		config = fromRecommendation("development")
	case "2":
		config = fromRecommendation("sql-log")
	case "3":
		config = fromRecommendation("email-archive")
	case "4":
		config = fromRecommendation("article-feed")
	case "5":
		config = customConfig(reader)
	case "6":
		fmt.Println("Goodbye!")
		os.Exit(0)
	default:
		fmt.Println("Invalid choice, using development defaults")
		config = fromRecommendation("development")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		fmt.Printf("Error generating config: %v\n", err)
		return
	}

	if err := os.WriteFile("unicache.json", data, 0600); err != nil {
		fmt.Printf("Error writing unicache.json: %v\n", err)
		return
	}

	fmt.Println("\nGenerated unicache.json successfully!")
	fmt.Println("Content:")
	fmt.Println(string(data))
	fmt.Println("\nLoad it with unicache.LoadConfig() and pass the result to unicache.NewWithConfig().")
}

func fromRecommendation(useCase string) fileConfig {
	c := unicache.GetConfigRecommendation(useCase)
	return fileConfig{
		Capacity:     c.Capacity,
		Policy:       c.Policy.String(),
		MinThreshold: c.MinThreshold,
		MaxThreshold: c.MaxThreshold,
	}
}

func customConfig(reader *bufio.Reader) fileConfig {
	var config fileConfig

	fmt.Print("Capacity (1-255): ")
	if sizeStr, _ := reader.ReadString('\n'); sizeStr != "" {
		if size, err := strconv.Atoi(strings.TrimSpace(sizeStr)); err == nil {
			config.Capacity = size
		}
	}

	fmt.Print("Policy (lru, lfu, lecar): ")
	if policy, _ := reader.ReadString('\n'); policy != "" {
		config.Policy = strings.TrimSpace(policy)
	}

	fmt.Print("Min threshold (0 to disable): ")
	if minStr, _ := reader.ReadString('\n'); minStr != "" {
		if min, err := strconv.Atoi(strings.TrimSpace(minStr)); err == nil {
			config.MinThreshold = min
		}
	}

	fmt.Print("Max threshold (0 to disable): ")
	if maxStr, _ := reader.ReadString('\n'); maxStr != "" {
		if max, err := strconv.Atoi(strings.TrimSpace(maxStr)); err == nil {
			config.MaxThreshold = max
		}
	}

	return config
}

// Command samplegen writes the bundled sample analytics database to disk,
// for seeding a fresh deployment or regenerating test fixtures.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"revos/internal/analytics"
	"revos/internal/repository"
)

func main() {
	outDir := flag.String("out", "./data", "Output directory for the analytics database")
	weeks := flag.Int("weeks", 20, "Number of weekly trend points to generate")
	flag.Parse()

	doc := analytics.SampleDocument()
	if *weeks != len(doc.Trend) {
		doc.Trend = analytics.SampleTrend(*weeks)
	}

	path := filepath.Join(*outDir, "analytics-db.json")
	fmt.Printf("Generating sample analytics database (%d trend weeks, %d rows) to %s...\n",
		len(doc.Trend), len(doc.TopProblems), path)

	repo, err := repository.NewJSON(path)
	if err != nil {
		fmt.Printf("Failed to initialize repository: %v\n", err)
		os.Exit(1)
	}
	if err := repo.Save(doc); err != nil {
		fmt.Printf("Failed to save sample database: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}

package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"
)

func main() {
	width := flag.Int("w", 64, "grid width in cells")
	height := flag.Int("h", 64, "grid height in cells")
	steps := flag.Int("steps", 1000, "generation limit per run")
	seeds := flag.Int("seeds", 8, "seeds per density, starting at 1")
	densities := flag.String("densities", "0.01,0.05,0.1,0.2,0.3,0.5", "comma separated starting densities")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if err := checkLimits(*width, *height, *steps, *seeds); err != nil {
		log.Fatal(err)
	}
	ds, err := parseDensities(*densities)
	if err != nil {
		log.Fatal(err)
	}

	jobs := buildJobs(*width, *height, ds, *seeds)
	fmt.Printf("Sweeping %d runs (%d workers, %d steps, %dx%d)\n", len(jobs), *workers, *steps, *width, *height)

	start := time.Now()
	results := sweep(jobs, *steps, *workers)
	elapsed := time.Since(start)

	for _, res := range results {
		fmt.Println(res)
	}
	fmt.Printf("\n%s (elapsed %s)\n", summarize(results), elapsed.Round(time.Millisecond))
}

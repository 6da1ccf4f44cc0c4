package main

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"life-sandbox/pkg/core"
	"life-sandbox/pkg/sims/life"
)

type job struct {
	cfg life.Config
}

type scenarioResult struct {
	density float64
	seed    int64
	run     life.RunResult
	err     error
}

func (r scenarioResult) String() string {
	if r.err != nil {
		return fmt.Sprintf("density=%.3f seed=%d error=%v", r.density, r.seed, r.err)
	}
	return fmt.Sprintf("density=%.3f seed=%d outcome=%s gen=%d live=%d->%d peak=%d",
		r.density, r.seed, r.run.Outcome, r.run.Generation, r.run.InitialLive, r.run.FinalLive, r.run.PeakLive)
}

func checkLimits(w, h, steps, seeds int) error {
	if w <= 0 || h <= 0 || w > core.MaxSize || h > core.MaxSize {
		return fmt.Errorf("grid %dx%d outside 1..%d", w, h, core.MaxSize)
	}
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	if seeds <= 0 {
		return fmt.Errorf("seeds must be positive, got %d", seeds)
	}
	return nil
}

func parseDensities(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		d, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("density %q: %w", field, err)
		}
		if d < 0 || d > 1 {
			return nil, fmt.Errorf("density %v outside [0, 1]", d)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no densities given")
	}
	return out, nil
}

func buildJobs(w, h int, densities []float64, seeds int) []job {
	jobs := make([]job, 0, len(densities)*max(seeds, 0))
	for _, d := range densities {
		for seed := int64(1); seed <= int64(seeds); seed++ {
			jobs = append(jobs, job{cfg: life.Config{
				Width:     w,
				Height:    h,
				Density:   d,
				Seed:      seed,
				Randomize: true,
			}})
		}
	}
	return jobs
}

// sweep runs every job on a pool of workers. Each run owns its session.
// Results are ordered by density, then seed.
func sweep(jobs []job, steps, workers int) []scenarioResult {
	workers = max(workers, 1)
	in := make(chan job)
	out := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range in {
				run, err := life.Run(j.cfg, steps)
				out <- scenarioResult{density: j.cfg.Density, seed: j.cfg.Seed, run: run, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	go func() {
		for _, j := range jobs {
			in <- j
		}
		close(in)
	}()

	all := make([]scenarioResult, 0, len(jobs))
	for res := range out {
		all = append(all, res)
	}
	slices.SortFunc(all, func(a, b scenarioResult) int {
		if c := cmp.Compare(a.density, b.density); c != 0 {
			return c
		}
		return cmp.Compare(a.seed, b.seed)
	})
	return all
}

func summarize(results []scenarioResult) string {
	counts := make(map[life.Outcome]int)
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			continue
		}
		counts[r.run.Outcome]++
	}
	parts := make([]string, 0, 5)
	for _, o := range []life.Outcome{life.OutcomeExtinct, life.OutcomeStill, life.OutcomePeriod2, life.OutcomeUnsettled} {
		parts = append(parts, fmt.Sprintf("%s=%d", o, counts[o]))
	}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("failed=%d", failed))
	}
	return strings.Join(parts, " ")
}

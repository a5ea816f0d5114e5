// Copyright 2025 The nanosort Authors. SPDX-License-Identifier: Apache-2.0

// Package stress is a differential stress driver: many workers generate
// random inputs, sort them with the engine, and compare against the standard
// library. A dedicated mode sorts disjoint segments of one shared slice from
// separate goroutines, which is explicitly supported because the engine
// carries no process-wide state.
package stress

import (
	"fmt"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/zeux/nanosort"
)

// Config controls one stress run.
type Config struct {
	Workers    int
	Iterations int
	Seed       uint64
	MaxLen     int
	Segments   bool
}

// Failure pinpoints one diverging input. Re-running with the same seed
// regenerates it exactly.
type Failure struct {
	Seed  uint64
	N     int
	Index int
}

// Report summarizes a finished run.
type Report struct {
	Iterations int
	Failures   []Failure
}

// Run executes cfg.Iterations independent checks over a worker pool and, if
// requested, the shared-slice segment check. The returned report is complete
// even when failures occurred; the caller decides the exit code.
func Run(cfg Config, log *zap.Logger) (*Report, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.MaxLen <= 0 {
		cfg.MaxLen = 1 << 14
	}

	pool, err := ants.NewPool(cfg.Workers, ants.WithPanicHandler(func(v interface{}) {
		log.Error("stress worker panicked", zap.Any("cause", v))
	}))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	report := &Report{Iterations: cfg.Iterations}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for i := 0; i < cfg.Iterations; i++ {
		seed := cfg.Seed + uint64(i)
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			if f := checkOnce(seed, cfg.MaxLen); f != nil {
				mu.Lock()
				report.Failures = append(report.Failures, *f)
				mu.Unlock()
				log.Error("engine diverged from reference",
					zap.Uint64("seed", f.Seed),
					zap.Int("len", f.N),
					zap.Int("index", f.Index))
			}
		})
		if err != nil {
			wg.Done()
			return nil, fmt.Errorf("submit iteration %d: %w", i, err)
		}
	}
	wg.Wait()

	if cfg.Segments {
		if fs := checkSegments(cfg, pool, log); len(fs) > 0 {
			report.Failures = append(report.Failures, fs...)
		}
	}

	log.Info("stress run finished",
		zap.Int("iterations", report.Iterations),
		zap.Int("failures", len(report.Failures)))
	return report, nil
}

// checkOnce generates one input from seed and compares the engine against
// the standard library. Input shapes rotate between uniform random, a small
// modulus, and presorted runs.
func checkOnce(seed uint64, maxLen int) *Failure {
	rng := rand.New(rand.NewSource(seed))
	n := rng.Intn(maxLen + 1)

	data := make([]uint16, n)
	switch rng.Intn(3) {
	case 0:
		for i := range data {
			data[i] = uint16(rng.Uint32())
		}
	case 1:
		for i := range data {
			data[i] = uint16(rng.Uint32() % 7)
		}
	case 2:
		for i := range data {
			data[i] = uint16(i % 1000)
		}
	}

	want := slices.Clone(data)
	slices.Sort(want)

	got := slices.Clone(data)
	nanosort.Sort(got)

	for i := range got {
		if got[i] != want[i] {
			return &Failure{Seed: seed, N: n, Index: i}
		}
	}
	return nil
}

// checkSegments splits one shared slice into disjoint per-worker segments
// and sorts them concurrently through the pool. Each segment must come back
// sorted and the slice as a whole must remain a permutation.
func checkSegments(cfg Config, pool *ants.Pool, log *zap.Logger) []Failure {
	const segLen = 1 << 12

	rng := rand.New(rand.NewSource(cfg.Seed))
	shared := make([]uint16, cfg.Workers*segLen)
	for i := range shared {
		shared[i] = uint16(rng.Uint32())
	}

	want := slices.Clone(shared)
	slices.Sort(want)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		seg := shared[w*segLen : (w+1)*segLen]
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			nanosort.Sort(seg)
		}); err != nil {
			wg.Done()
			log.Error("submit segment", zap.Error(err))
		}
	}
	wg.Wait()

	var failures []Failure
	for w := 0; w < cfg.Workers; w++ {
		seg := shared[w*segLen : (w+1)*segLen]
		if !nanosort.IsSorted(seg) {
			failures = append(failures, Failure{Seed: cfg.Seed, N: segLen, Index: w * segLen})
			log.Error("segment came back unsorted", zap.Int("segment", w))
		}
	}

	slices.Sort(shared)
	if !slices.Equal(shared, want) {
		failures = append(failures, Failure{Seed: cfg.Seed, N: len(shared), Index: -1})
		log.Error("shared slice lost elements across concurrent sorts")
	}
	return failures
}

// Copyright 2025 nanosort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bench is the measurement harness behind nanosort-bench. Each case
// copies a frozen dataset into a scratch buffer, sorts it repeatedly for a
// fixed wall-clock budget, and keeps the fastest single run; reporting
// divides by N·log2(N) so results are comparable across sizes.
package bench

import (
	"math"
	"time"
)

// Case is one dataset/algorithm pairing, sized and ready to run.
type Case struct {
	Dataset string
	Algo    string
	N       int
	run     func(budget time.Duration) time.Duration
}

// Result carries the timing of one finished case.
type Result struct {
	Dataset string
	Algo    string
	N       int
	NsPerOp float64
	TotalMs float64
}

// Run executes the case within the given wall-clock budget. At least one
// iteration always runs, so a zero budget measures a single pass.
func Run(c Case, budget time.Duration) Result {
	best := c.run(budget)

	divider := float64(c.N) * math.Log2(float64(c.N))
	if c.N < 2 {
		divider = 1
	}

	return Result{
		Dataset: c.Dataset,
		Algo:    c.Algo,
		N:       c.N,
		NsPerOp: float64(best.Nanoseconds()) / divider,
		TotalMs: float64(best.Nanoseconds()) / 1e6,
	}
}

// newCase captures a typed dataset and sorter behind the untyped Case
// surface. The scratch buffer is allocated per run, outside the timed
// region, so the sorters themselves stay allocation-free.
func newCase[T any](dataset, algo string, data []T, sortFn func([]T)) Case {
	return Case{
		Dataset: dataset,
		Algo:    algo,
		N:       len(data),
		run: func(budget time.Duration) time.Duration {
			buf := make([]T, len(data))

			var best time.Duration
			start := time.Now()
			for best == 0 || time.Since(start) < budget {
				copy(buf, data)

				t0 := time.Now()
				sortFn(buf)
				elapsed := time.Since(t0)

				if best == 0 || elapsed < best {
					best = elapsed
				}
			}
			return best
		},
	}
}

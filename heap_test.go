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

package nanosort

import (
	"math/rand"
	"slices"
	"testing"
)

// TestHeapSortSmallLengths walks every length through 33 so the one-child
// case at the last internal node is hit for both parities.
func TestHeapSortSmallLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(50))
	for n := 0; n <= 33; n++ {
		for trial := 0; trial < 50; trial++ {
			orig := make([]int, n)
			for i := range orig {
				orig[i] = rng.Intn(n + 1)
			}
			data := slices.Clone(orig)
			HeapSortFunc(data, intLess)
			if !IsSorted(data) {
				t.Fatalf("HeapSortFunc(n=%d) unsorted: %v from %v", n, data, orig)
			}
			checkPermutation(t, orig, data)
		}
	}
}

func TestHeapSortRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(51))
	data := make([]int32, 10000)
	for i := range data {
		data[i] = rng.Int31()
	}
	want := slices.Clone(data)
	slices.Sort(want)

	HeapSortFunc(data, func(a, b int32) bool { return a < b })
	if !slices.Equal(data, want) {
		t.Errorf("HeapSortFunc diverged from reference")
	}
}

func TestHeapSortPatterns(t *testing.T) {
	const n = 1000
	patterns := map[string]func(i int) int{
		"sorted":   func(i int) int { return i },
		"reversed": func(i int) int { return n - i },
		"allequal": func(i int) int { return 0 },
		"sawtooth": func(i int) int { return i % 7 },
	}
	for name, gen := range patterns {
		orig := make([]int, n)
		for i := range orig {
			orig[i] = gen(i)
		}
		data := slices.Clone(orig)
		HeapSortFunc(data, intLess)
		if !IsSorted(data) {
			t.Errorf("HeapSortFunc(%s) unsorted", name)
		}
		checkPermutation(t, orig, data)
	}
}

// TestHeapSortBackstopEngaged drives the driver into the backstop with a zero
// budget and checks the result is still fully sorted.
func TestHeapSortBackstopEngaged(t *testing.T) {
	rng := rand.New(rand.NewSource(52))
	data := make([]int, 5000)
	for i := range data {
		data[i] = rng.Intn(100)
	}
	sortLoop(data, 0, intLess)
	if !IsSorted(data) {
		t.Errorf("zero-budget sort unsorted")
	}
}

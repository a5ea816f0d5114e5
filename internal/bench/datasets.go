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

package bench

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/exp/rand"

	"github.com/zeux/nanosort"
)

// DefaultSeed matches the reference harness so numbers line up across runs
// and machines.
const DefaultSeed = 42

// Pair is a key/value record ordered by key only, the cheap-comparator
// expensive-move middle ground between plain integers and strings.
type Pair struct {
	Key   uint32
	Value uint32
}

// Datasets returns the known dataset names in reporting order.
func Datasets() []string {
	return []string{
		"random", "sorted", "run100", "reversed", "eq1000",
		"randompair", "randomstr", "randomflt",
	}
}

// Build constructs all cases for one dataset: the engine, the standard
// library, and the heap-sort floor over identical frozen input.
func Build(name string, n int, seed uint64) ([]Case, error) {
	rng := rand.New(rand.NewSource(seed))

	switch name {
	case "random":
		return uint32Cases(name, randomUint32(rng, n)), nil

	case "sorted":
		data := make([]uint32, n)
		for i := range data {
			data[i] = uint32(i)
		}
		return uint32Cases(name, data), nil

	case "run100":
		// Runs of 100 incrementing values with random heads.
		data := make([]uint32, n)
		for i := range data {
			if i%100 == 0 {
				data[i] = rng.Uint32()
			} else {
				data[i] = data[i-1] + 1
			}
		}
		return uint32Cases(name, data), nil

	case "reversed":
		data := make([]uint32, n)
		for i := range data {
			data[i] = uint32(n - i)
		}
		return uint32Cases(name, data), nil

	case "eq1000":
		data := make([]uint32, n)
		for i := range data {
			data[i] = rng.Uint32() % 1000
		}
		return uint32Cases(name, data), nil

	case "randompair":
		data := make([]Pair, n)
		for i := range data {
			data[i] = Pair{Key: rng.Uint32(), Value: uint32(i)}
		}
		pairLess := func(a, b Pair) bool { return a.Key < b.Key }
		return []Case{
			newCase(name, "nanosort", data, func(d []Pair) {
				nanosort.SortFunc(d, pairLess)
			}),
			newCase(name, "stdlib", data, func(d []Pair) {
				slices.SortFunc(d, func(a, b Pair) int { return cmp.Compare(a.Key, b.Key) })
			}),
			newCase(name, "heapsort", data, func(d []Pair) {
				nanosort.HeapSortFunc(d, pairLess)
			}),
		}, nil

	case "randomstr":
		data := make([]string, n)
		for i := range data {
			data[i] = "longprefixtopushtoheap" + strconv.FormatUint(uint64(rng.Uint32()), 10)
		}
		return []Case{
			newCase(name, "nanosort", data, func(d []string) { nanosort.Sort(d) }),
			newCase(name, "stdlib", data, func(d []string) { slices.Sort(d) }),
			newCase(name, "heapsort", data, func(d []string) { nanosort.HeapSort(d) }),
		}, nil

	case "randomflt":
		data := make([]float32, n)
		for i := range data {
			data[i] = float32(rng.Uint32() % uint32(max(n, 1)))
		}
		return []Case{
			newCase(name, "nanosort", data, func(d []float32) { nanosort.Sort(d) }),
			newCase(name, "stdlib", data, func(d []float32) { slices.Sort(d) }),
			newCase(name, "heapsort", data, func(d []float32) { nanosort.HeapSort(d) }),
		}, nil
	}

	return nil, fmt.Errorf("unknown dataset %q", name)
}

func randomUint32(rng *rand.Rand, n int) []uint32 {
	data := make([]uint32, n)
	for i := range data {
		data[i] = rng.Uint32()
	}
	return data
}

func uint32Cases(name string, data []uint32) []Case {
	return []Case{
		newCase(name, "nanosort", data, func(d []uint32) { nanosort.Sort(d) }),
		newCase(name, "stdlib", data, func(d []uint32) { slices.Sort(d) }),
		newCase(name, "heapsort", data, func(d []uint32) { nanosort.HeapSort(d) }),
	}
}

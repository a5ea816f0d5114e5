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

func TestPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(200)
		orig := make([]int, n)
		for i := range orig {
			orig[i] = rng.Intn(20)
		}
		pivot := rng.Intn(20)

		data := slices.Clone(orig)
		mid := partition(data, pivot, intLess)

		for i := 0; i < mid; i++ {
			if data[i] >= pivot {
				t.Fatalf("data[%d]=%d not below pivot %d", i, data[i], pivot)
			}
		}
		for i := mid; i < n; i++ {
			if data[i] < pivot {
				t.Fatalf("data[%d]=%d below pivot %d after mid", i, data[i], pivot)
			}
		}
		checkPermutation(t, orig, data)
	}
}

func TestPartitionRev(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(200)
		orig := make([]int, n)
		for i := range orig {
			orig[i] = rng.Intn(20)
		}
		pivot := rng.Intn(20)

		data := slices.Clone(orig)
		midr := partitionRev(data, pivot, intLess)

		for i := 0; i < midr; i++ {
			if data[i] > pivot {
				t.Fatalf("data[%d]=%d above pivot %d", i, data[i], pivot)
			}
		}
		for i := midr; i < n; i++ {
			if data[i] <= pivot {
				t.Fatalf("data[%d]=%d not above pivot %d after midr", i, data[i], pivot)
			}
		}
		checkPermutation(t, orig, data)
	}
}

// TestPartitionPair applies both primitives with one pivot the way the driver
// does and checks the three-way band that results.
func TestPartitionPair(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	orig := make([]int, 500)
	for i := range orig {
		orig[i] = rng.Intn(10)
	}
	pivot := 5

	data := slices.Clone(orig)
	mid := partition(data, pivot, intLess)
	midr := mid + partitionRev(data[mid:], pivot, intLess)

	for i := 0; i < mid; i++ {
		if data[i] >= pivot {
			t.Fatalf("left band violated at %d", i)
		}
	}
	for i := mid; i < midr; i++ {
		if data[i] != pivot {
			t.Fatalf("equal band violated at %d: %d", i, data[i])
		}
	}
	for i := midr; i < len(data); i++ {
		if data[i] <= pivot {
			t.Fatalf("right band violated at %d", i)
		}
	}
	checkPermutation(t, orig, data)
}

// TestPartitionAllEqual: every comparison is false, so mid lands at first and
// the reverse partition absorbs the whole range.
func TestPartitionAllEqual(t *testing.T) {
	data := make([]int, 64)
	if mid := partition(data, 0, intLess); mid != 0 {
		t.Errorf("partition(all equal) = %d, want 0", mid)
	}
	if midr := partitionRev(data, 0, intLess); midr != len(data) {
		t.Errorf("partitionRev(all equal) = %d, want %d", midr, len(data))
	}
}

func TestPartitionEmpty(t *testing.T) {
	if mid := partition(nil, 0, intLess); mid != 0 {
		t.Errorf("partition(nil) = %d, want 0", mid)
	}
	if midr := partitionRev(nil, 0, intLess); midr != 0 {
		t.Errorf("partitionRev(nil) = %d, want 0", midr)
	}
}

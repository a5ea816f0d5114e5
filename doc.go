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

// Package nanosort provides an in-place, comparison-based sort with the
// throughput of a tuned quicksort and a hard O(n log n) worst case.
//
// # Algorithm
//
// nanosort is built from three pieces that work together:
//   - A branchless Lomuto partition whose inner loop is a load, a compare,
//     an unconditional swap, and a flag-driven cursor increment.
//   - A pivot pipeline: median-of-five sampling, a reverse partition that
//     peels off elements equal to the pivot when a split comes out skewed,
//     and a median-of-medians fallback that guarantees progress.
//   - A driver that recurses into the smaller half, iterates on the larger,
//     finishes ranges of at most 16 elements with a branchless double-bubble
//     pass, and falls back to heap sort when its depth budget runs out.
//
// # Guarantees
//
// The sort is not stable and never allocates; all work happens inside the
// caller's slice. Comparisons and swaps are bounded by O(n log n) regardless
// of input. Inputs with many duplicate keys sort in near-linear time because
// elements equal to the pivot are excluded from further recursion.
//
// # Example Usage
//
//	import "github.com/zeux/nanosort"
//
//	func ProcessData(data []float32) {
//	    nanosort.Sort(data) // in-place ascending sort
//	}
//
//	func ByKey(items []Item) {
//	    nanosort.SortFunc(items, func(a, b Item) bool { return a.Key < b.Key })
//	}
//
// # Comparator Contract
//
// SortFunc and NthElementFunc require less to be a strict weak ordering:
// irreflexive, asymmetric, and transitive over both less and the derived
// equivalence. The comparator must be deterministic; it may be invoked on
// copies of elements held in locals, so it must not observe element identity.
// If the comparator panics, the panic propagates and the slice is left in an
// unspecified order.
package nanosort

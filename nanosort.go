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

import "cmp"

// smallSortThreshold: ranges this long or shorter go to smallSort.
const smallSortThreshold = 16

// Sort sorts data in place in ascending order. The sort is not stable.
func Sort[T cmp.Ordered](data []T) {
	sortLoop(data, len(data), cmp.Less[T])
}

// SortFunc sorts data in place using less as the ordering. less must be a
// strict weak ordering; see the package documentation. The sort is not stable.
func SortFunc[T any](data []T, less func(a, b T) bool) {
	sortLoop(data, len(data), less)
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T cmp.Ordered](data []T) bool {
	return IsSortedFunc(data, cmp.Less[T])
}

// IsSortedFunc reports whether data is ordered under less.
func IsSortedFunc[T any](data []T, less func(a, b T) bool) bool {
	for i := len(data) - 1; i > 0; i-- {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// NthElement rearranges data so that data[k] holds the element that would be
// at index k if data were sorted, with everything before it not greater and
// everything after it not smaller.
func NthElement[T cmp.Ordered](data []T, k int) {
	NthElementFunc(data, k, cmp.Less[T])
}

// NthElementFunc is NthElement with a caller-supplied ordering.
// Out-of-range k leaves data untouched.
func NthElementFunc[T any](data []T, k int, less func(a, b T) bool) {
	if k < 0 || k >= len(data) {
		return
	}
	limit := len(data)
	for {
		n := len(data)
		if n <= smallSortThreshold {
			smallSort(data, less)
			return
		}
		if limit == 0 {
			HeapSortFunc(data, less)
			return
		}

		mid, midr := splitRange(data, &limit, less)
		switch {
		case k < mid:
			data = data[:mid]
		case k >= midr:
			data, k = data[midr:], k-midr
		default:
			// k landed in the equal band; it is already in place.
			return
		}
	}
}

// sortLoop sorts data under less with a depth budget of limit partitioning
// steps. It recurses into the smaller side of each split and loops on the
// larger, so stack depth stays logarithmic while half the recursion overhead
// disappears.
func sortLoop[T any](data []T, limit int, less func(a, b T) bool) {
	for {
		n := len(data)
		if n <= smallSortThreshold {
			smallSort(data, less)
			return
		}

		if limit == 0 {
			HeapSortFunc(data, less)
			return
		}

		mid, midr := splitRange(data, &limit, less)

		if mid <= n-midr {
			sortLoop(data[:mid], limit, less)
			data = data[midr:]
		} else {
			sortLoop(data[midr:], limit, less)
			data = data[:mid]
		}
	}
}

// splitRange picks a pivot, partitions data around it, and decrements the
// depth budget. On return data[:mid] < pivot, data[mid:midr] is equivalent to
// the pivot, and data[midr:] > pivot; the middle band needs no further work.
func splitRange[T any](data []T, limit *int, less func(a, b T) bool) (mid, midr int) {
	n := len(data)

	pivot := median5(data, less)
	mid = partition(data, pivot, less)

	// A left side this thin usually means the range is dominated by elements
	// equal to the pivot. Separate them out so they drop out of recursion.
	midr = mid
	if mid <= n>>3 {
		midr = mid + partitionRev(data[mid:], pivot, less)

		// Still a 1:7 split with a thin equal band: the sample was unlucky.
		// Retry with a median-of-medians pivot, which is not an extreme.
		if midr <= n>>3 {
			pivot = medianOfMedians(data, less)
			mid = partition(data, pivot, less)
			midr = mid + partitionRev(data[mid:], pivot, less)
		}
	}

	// The 3/4 schedule admits roughly 1.5 log2(n) partitioning steps before
	// heap sort takes over.
	*limit = *limit>>1 + *limit>>2

	return mid, midr
}

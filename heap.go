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

// siftHeap pushes the root down through heap[:count]. Internal nodes with two
// children pick the larger one through conditional selects; the last internal
// node may have a single child and is handled after the loop.
func siftHeap[T any](heap []T, count, root int, less func(a, b T) bool) {
	last := (count - 1) >> 1

	for root < last {
		next := root
		if less(heap[next], heap[2*root+1]) {
			next = 2*root + 1
		}
		if less(heap[next], heap[2*root+2]) {
			next = 2*root + 2
		}

		if next == root {
			break
		}
		heap[root], heap[next] = heap[next], heap[root]
		root = next
	}

	if root == last && 2*root+1 < count && less(heap[root], heap[2*root+1]) {
		heap[root], heap[2*root+1] = heap[2*root+1], heap[root]
	}
}

// HeapSort sorts data in place in ascending order with O(n log n)
// comparisons and constant auxiliary space on any input.
//
// This is the engine's backstop when the partitioning budget runs out. It is
// exported so the worst-case bound can be measured and verified in isolation;
// for general use Sort is faster.
func HeapSort[T cmp.Ordered](data []T) {
	HeapSortFunc(data, cmp.Less[T])
}

// HeapSortFunc is HeapSort with a caller-supplied ordering.
func HeapSortFunc[T any](data []T, less func(a, b T) bool) {
	count := len(data)
	if count == 0 {
		return
	}

	// Floyd's bottom-up construction keeps the build phase linear.
	for i := count / 2; i > 0; i-- {
		siftHeap(data, count, i-1, less)
	}

	for i := count - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftHeap(data, i, 0, less)
	}
}

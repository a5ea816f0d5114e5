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

// b2i converts the comparator verdict into a cursor step. The compiler
// materializes the flag into a register, which keeps the partition inner
// loops free of data-dependent branches.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// partition splits data into x < pivot and x >= pivot, returning the index of
// the first element not less than pivot.
//
// This is a branchless Lomuto partition: every element is swapped to the
// write cursor unconditionally and the cursor advances by the comparison
// result. The unconditional swap is deliberate; guarding it would let a
// branch back into the inner loop.
func partition[T any](data []T, pivot T, less func(a, b T) bool) int {
	res := 0
	for i := 0; i < len(data); i++ {
		r := less(data[i], pivot)
		data[res], data[i] = data[i], data[res]
		res += b2i(r)
	}
	return res
}

// partitionRev splits data into x <= pivot and x > pivot, returning the index
// of the first element greater than pivot.
func partitionRev[T any](data []T, pivot T, less func(a, b T) bool) int {
	res := 0
	for i := 0; i < len(data); i++ {
		r := less(pivot, data[i])
		data[res], data[i] = data[i], data[res]
		res += b2i(!r)
	}
	return res
}

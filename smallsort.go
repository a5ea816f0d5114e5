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

// TODO: evaluate insertionSort as the finisher on targets where the selects
// below compile to branches instead of conditional moves.

// smallSort sorts short ranges with a double-bubble pass: each outer
// iteration carries a pair (x, y) with x <= y through the remaining suffix
// and settles both at the end, so the pass count halves to n(n+1)/4 stores.
// The inner loop is two compare/select chains with a latency of two
// conditional moves per element.
func smallSort[T any](data []T, less func(a, b T) bool) {
	for i := len(data); i > 1; i -= 2 {
		x, y := data[0], data[1]
		if less(y, x) {
			x, y = y, x
		}
		for j := 2; j < i; j++ {
			z := data[j]

			smaller := less(z, y)
			w := y
			if smaller {
				w = z
			}
			if !smaller {
				y = z
			}

			smaller = less(z, x)
			out := x
			if smaller {
				out = z
			}
			if !smaller {
				x = w
			}
			data[j-2] = out
		}
		data[i-2], data[i-1] = x, y
	}
}

// insertionSort is the reference finisher. It is correct for any length but
// shifts elements one hole at a time, so it stays off the hot path.
func insertionSort[T any](data []T, less func(a, b T) bool) {
	for i := 1; i < len(data); i++ {
		v := data[i]
		j := i
		for j > 0 && less(v, data[j-1]) {
			data[j] = data[j-1]
			j--
		}
		data[j] = v
	}
}

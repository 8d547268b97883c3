// Copyright 2025 go-quicksorts Authors
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

package quicksorts

// partition rearranges the n >= 2 elements starting at lo around the element
// at index pivot and returns the pivot's final offset k from lo. Afterwards
// no element before lo+k sorts after the pivot and no element after lo+k
// sorts before it.
//
// The pivot is parked at lo for the duration of the scan, so its value stays
// put while everything else moves. Elements equal to the pivot stop both
// scans and get swapped across, which splits runs of equal keys evenly.
func partition[S sequence](s S, lo, n, pivot int) int {
	s.swap(lo, pivot)

	i, j := lo+1, lo+n-1
	for {
		for i <= j && s.less(i, lo) {
			i++
		}
		for i <= j && s.less(lo, j) {
			j--
		}
		if i >= j {
			break
		}
		s.swap(i, j)
		i++
		j--
	}

	// [lo+1, j] holds elements not after the pivot, (j, lo+n) elements not
	// before it.
	s.swap(lo, j)
	return j - lo
}

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

// shellGaps is the Ciura–Dovgopol gap sequence, largest first.
var shellGaps = [...]int{1750, 701, 301, 132, 57, 23, 10, 4, 1}

// insertionSort sorts the n elements starting at lo with binary insertion.
// It is not stable: a descending run at the start is reversed wholesale.
func insertionSort[S sequence](s S, lo, n int) {
	if n <= 1 {
		return
	}
	for i := orderedPrefix(s, lo, n); i != n; i++ {
		pos := insertionPosition(s, lo, i)
		s.rotate(lo+pos, lo+i, 1)
	}
}

// orderedPrefix makes the first two or more elements of the range ordered
// and returns how many there are.
func orderedPrefix[S sequence](s S, lo, n int) int {
	m := 2
	if !s.less(lo+1, lo) {
		for m < n && !s.less(lo+m, lo+m-1) {
			m++
		}
		return m
	}
	for m < n && !s.less(lo+m-1, lo+m) {
		m++
	}
	reverse(s, lo, m)
	return m
}

// insertionPosition returns where element i belongs in the ordered prefix
// [0, i) of the range: after every element it does not sort before.
//
// The search is Bottenbruch's: it keeps j <= k and probes the ceiling of the
// midpoint, so the only equality test is the loop condition.
func insertionPosition[S sequence](s S, lo, i int) int {
	j, k := 0, i-1
	for j != k {
		h := k - (k-j)>>1
		if s.less(lo+i, lo+h) {
			k = h - 1
		} else {
			j = h
		}
	}
	switch {
	case j != 0:
		return j + 1
	case s.less(lo+i, lo):
		return 0
	default:
		return 1
	}
}

// shellSort sorts the n elements starting at lo with gapped insertion
// passes. Gaps at or above smallSize or n are skipped; the final gap-1 pass
// is the binary insertion sort.
func shellSort[S sequence](s S, lo, n, smallSize int) {
	for _, g := range shellGaps {
		if g == 1 {
			break
		}
		if g >= smallSize || g >= n {
			continue
		}
		for i := g; i < n; i++ {
			j := i
			for j >= g && s.less(lo+i, lo+j-g) {
				j -= g
			}
			s.rotate(lo+j, lo+i, g)
		}
	}
	insertionSort(s, lo, n)
}

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

import "math/bits"

// stackCapacity is one entry per bit of an index. Pushing the larger part
// first means each entry above another is at most half its size, so no
// input can need more.
const stackCapacity = bits.UintSize

// span is a range of elements that still has to be sorted.
type span struct {
	lo, n int
}

// spanStack stands in for recursion. It lives in the frame of one sort call.
type spanStack struct {
	entries [stackCapacity]span
	depth   int
	peak    int
}

func (st *spanStack) push(lo, n int) {
	if n < 2 || lo < 0 {
		panic("quicksorts: invalid range pushed on the work stack")
	}
	if st.depth == len(st.entries) {
		panic("quicksorts: work stack overflow")
	}
	st.entries[st.depth] = span{lo: lo, n: n}
	st.depth++
	st.peak = max(st.peak, st.depth)
}

func (st *spanStack) pop() span {
	if st.depth == 0 {
		panic("quicksorts: pop from empty work stack")
	}
	st.depth--
	return st.entries[st.depth]
}

// quicksort sorts the first n elements of s and returns the peak number of
// ranges held on the work stack.
func quicksort[S sequence](s S, n int, c *config) int {
	var st spanStack
	if n >= 2 {
		st.push(0, n)
	}
	for st.depth > 0 {
		r := st.pop()
		if r.n <= c.smallSize {
			sortSmall(s, r.lo, r.n, c)
			continue
		}

		p := selectPivot(s, r.lo, r.n, c.pivot, c.source)
		k := partition(s, r.lo, r.n, p)

		large := span{lo: r.lo, n: k}
		small := span{lo: r.lo + k + 1, n: r.n - 1 - k}
		if large.n < small.n {
			large, small = small, large
		}
		if large.n >= 2 {
			st.push(large.lo, large.n)
		}
		if small.n >= 2 {
			st.push(small.lo, small.n)
		}
	}
	return st.peak
}

func sortSmall[S sequence](s S, lo, n int, c *config) {
	if c.smallSort == ShellSort {
		shellSort(s, lo, n, c.smallSize)
		return
	}
	insertionSort(s, lo, n)
}

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

// sequence is the view the sorting algorithms work on. Indices are absolute
// positions in the caller's array; no method is ever called with an index
// outside the range being sorted.
type sequence interface {
	less(i, j int) bool
	swap(i, j int)

	// rotate moves the element at right to left and shifts the elements at
	// left, left+gap, ..., right-gap up by gap. right-left is a multiple of gap.
	rotate(left, right, gap int)
}

// reverse reverses the n elements starting at lo.
func reverse[S sequence](s S, lo, n int) {
	for i, j := lo, lo+n-1; i < j; i, j = i+1, j-1 {
		s.swap(i, j)
	}
}

// byteSeq is a sequence of fixed-size records in a byte slice. All moves go
// through scratch; records wider than scratch move in scratch-sized blocks.
type byteSeq struct {
	base    []byte
	size    int
	scratch []byte
	lt      func(a, b []byte) bool
}

// at returns record i, capped so the comparator cannot see its neighbours.
func (s byteSeq) at(i int) []byte {
	off := i * s.size
	return s.base[off : off+s.size : off+s.size]
}

func (s byteSeq) less(i, j int) bool { return s.lt(s.at(i), s.at(j)) }

func (s byteSeq) swap(i, j int) { swapBytes(s.at(i), s.at(j), s.scratch) }

func (s byteSeq) rotate(left, right, gap int) {
	subcirculate(s.base, left, right, s.size, gap, s.scratch)
}

// typedSeq is a sequence over a typed slice. Values move directly.
type typedSeq[T any] struct {
	s  []T
	lt func(a, b *T) bool
}

func (s typedSeq[T]) less(i, j int) bool { return s.lt(&s.s[i], &s.s[j]) }

func (s typedSeq[T]) swap(i, j int) { s.s[i], s.s[j] = s.s[j], s.s[i] }

func (s typedSeq[T]) rotate(left, right, gap int) {
	if left == right {
		return
	}
	v := s.s[right]
	if gap == 1 {
		copy(s.s[left+1:right+1], s.s[left:right])
	} else {
		for k := right; k != left; k -= gap {
			s.s[k] = s.s[k-gap]
		}
	}
	s.s[left] = v
}

// swapBytes exchanges a and b, which have equal length, len(scratch) bytes
// at a time.
func swapBytes(a, b, scratch []byte) {
	for len(a) > 0 {
		n := copy(scratch, a)
		copy(a[:n], b[:n])
		copy(b[:n], scratch[:n])
		a, b = a[n:], b[n:]
	}
}

// subcirculate moves record right to slot left, shifting the records at
// left, left+gap, ..., right-gap up by gap.
func subcirculate(base []byte, left, right, size, gap int, scratch []byte) {
	if left == right {
		return
	}
	if gap == 1 && size <= len(scratch) {
		lo, hi := left*size, right*size
		copy(scratch, base[hi:hi+size])
		copy(base[lo+size:hi+size], base[lo:hi])
		copy(base[lo:lo+size], scratch[:size])
		return
	}

	// Move one column of bytes at a time through all the records.
	stride := gap * size
	for off := 0; off < size; {
		n := min(len(scratch), size-off)
		p := right*size + off
		end := left*size + off
		copy(scratch[:n], base[p:p+n])
		for ; p != end; p -= stride {
			copy(base[p:p+n], base[p-stride:p-stride+n])
		}
		copy(base[p:p+n], scratch[:n])
		off += n
	}
}

// Swap exchanges records i and j of base, each size bytes long. A nil or
// empty scratch selects an internal buffer of DefaultScratchSize bytes.
func Swap(base []byte, i, j, size int, scratch []byte) {
	var buf [DefaultScratchSize]byte
	if len(scratch) == 0 {
		scratch = buf[:]
	}
	s := byteSeq{base: base, size: size, scratch: scratch}
	s.swap(i, j)
}

// ReversePrefix reverses the order of the first n records of base.
func ReversePrefix(base []byte, n, size int, scratch []byte) {
	var buf [DefaultScratchSize]byte
	if len(scratch) == 0 {
		scratch = buf[:]
	}
	reverse(byteSeq{base: base, size: size, scratch: scratch}, 0, n)
}

// SubcirculateRight moves record right of base to index left and shifts the
// records at left, left+gap, ..., right-gap up by gap. It is a no-op when
// left == right. right-left must be a non-negative multiple of gap.
func SubcirculateRight(base []byte, left, right, size, gap int, scratch []byte) {
	if gap <= 0 || right < left || (right-left)%gap != 0 {
		panic("quicksorts: SubcirculateRight called with an invalid range")
	}
	var buf [DefaultScratchSize]byte
	if len(scratch) == 0 {
		scratch = buf[:]
	}
	subcirculate(base, left, right, size, gap, scratch)
}

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

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Sort sorts nmemb records of size bytes each, stored contiguously at the
// start of base, in the order defined by compar. compar returns a negative
// value when a sorts before b, as with C qsort. The sort is not stable.
//
// The slices passed to compar alias base and are exactly size bytes long.
func Sort(base []byte, nmemb, size int, compar func(a, b []byte) int) error {
	lt := func(a, b []byte) bool { return compar(a, b) < 0 }
	return sortBytes(base, nmemb, size, lt, &defaultConfig)
}

// SortR is Sort with an environment value that is passed unchanged to every
// call of compar.
func SortR(base []byte, nmemb, size int, compar func(a, b []byte, env any) int, env any) error {
	lt := func(a, b []byte) bool { return compar(a, b, env) < 0 }
	return sortBytes(base, nmemb, size, lt, &defaultConfig)
}

// SortBytes sorts nmemb records of size bytes each with the strict weak
// order lt and the given options.
func SortBytes(base []byte, nmemb, size int, lt func(a, b []byte) bool, opts Options) error {
	c, err := opts.resolve()
	if err != nil {
		return err
	}
	return sortBytes(base, nmemb, size, lt, &c)
}

func sortBytes(base []byte, nmemb, size int, lt func(a, b []byte) bool, c *config) error {
	if size <= 0 {
		return fmt.Errorf("%w: got %d", ErrElementSize, size)
	}
	if nmemb < 0 {
		return fmt.Errorf("%w: got %d", ErrCount, nmemb)
	}
	hi, total := bits.Mul(uint(nmemb), uint(size))
	if hi != 0 || total > uint(len(base)) {
		return fmt.Errorf("%w: %d records of %d bytes, have %d bytes", ErrShortBuffer, nmemb, size, len(base))
	}
	if nmemb < 2 {
		return nil
	}

	scratch, err := allocScratch(min(c.scratch, size))
	if err != nil {
		return err
	}
	s := byteSeq{base: base[:total], size: size, scratch: scratch, lt: lt}
	quicksort(s, nmemb, c)
	return nil
}

// allocScratch allocates the element buffer, reporting failure as ErrAlloc
// instead of crashing.
func allocScratch(n int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %d bytes: %v", ErrAlloc, n, r)
		}
	}()
	return make([]byte, n), nil
}

// SortFunc sorts s in the order defined by lt with the default options.
// lt reports whether *a must sort strictly before *b. The sort is not stable.
func SortFunc[T any](s []T, lt func(a, b *T) bool) {
	quicksort(typedSeq[T]{s: s, lt: lt}, len(s), &defaultConfig)
}

// SortSlice sorts s in the order defined by lt with the given options.
// Options.ScratchSize is ignored: typed elements move directly.
func SortSlice[T any](s []T, lt func(a, b *T) bool, opts Options) error {
	c, err := opts.resolve()
	if err != nil {
		return err
	}
	quicksort(typedSeq[T]{s: s, lt: lt}, len(s), &c)
	return nil
}

// SortOrdered sorts s in ascending order. Floating-point NaNs do not form a
// strict weak order with <; their final positions are unspecified.
func SortOrdered[T constraints.Ordered](s []T) {
	SortFunc(s, func(a, b *T) bool { return *a < *b })
}

// IsSorted reports whether no element of s sorts before its predecessor.
func IsSorted[T any](s []T, lt func(a, b *T) bool) bool {
	for i := len(s) - 1; i > 0; i-- {
		if lt(&s[i], &s[i-1]) {
			return false
		}
	}
	return true
}

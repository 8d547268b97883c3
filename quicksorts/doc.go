// Package quicksorts provides an in-place, unstable quicksort that works on
// arrays of runtime-sized records as well as on typed slices.
//
// # Algorithm
//
// The sort is an iterative quicksort:
//   - An explicit work stack of (offset, length) ranges replaces recursion.
//     The larger partition is pushed first, so the stack never holds more
//     than about log2(n) ranges.
//   - The pivot is the median of three elements by default; a random or
//     middle pivot can be selected instead.
//   - Ranges at or below a small-size threshold are finished by binary
//     insertion sort (default, threshold 80) or by Shell sort with the
//     Ciura gap sequence (threshold 350).
//
// Random pivots come from a Source, a 64-bit linear congruential generator
// guarded by a ticket lock so that concurrent sorts can share it.
//
// The worst case is not guaranteed to be O(n log n), and equal elements may
// be reordered.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-quicksorts/quicksorts"
//
//	// Typed elements move directly.
//	quicksorts.SortOrdered(values)
//	quicksorts.SortFunc(people, func(a, b *Person) bool { return a.Age < b.Age })
//
//	// Records of size bytes, compared like C qsort.
//	err := quicksorts.Sort(buf, n, size, func(a, b []byte) int {
//	    return bytes.Compare(a, b)
//	})
//
// # Configuration
//
// Options selects the pivot policy, the small sort, the small-size threshold
// and the scratch buffer bound. The defaults used by Sort, SortR and SortFunc
// can be overridden at start-up with the QUICKSORTS_PIVOT,
// QUICKSORTS_SMALL_SORT, QUICKSORTS_SMALL_SIZE and QUICKSORTS_SCRATCH_SIZE
// environment variables.
package quicksorts

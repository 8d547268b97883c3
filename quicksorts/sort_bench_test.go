package quicksorts

import (
	"math/rand"
	"slices"
	"testing"
)

func generateInt32(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rand.Int31n(10000) - 5000
	}
	return data
}

// Typed benchmarks
func BenchmarkSort_Typed_1000(b *testing.B) {
	benchmarkSortTyped(b, 1000, Options{})
}

func BenchmarkSort_Typed_100000(b *testing.B) {
	benchmarkSortTyped(b, 100000, Options{})
}

func BenchmarkSort_TypedShellRandom_100000(b *testing.B) {
	benchmarkSortTyped(b, 100000, Options{Pivot: PivotRandom, SmallSort: ShellSort})
}

func benchmarkSortTyped(b *testing.B, n int, opts Options) {
	ref := generateInt32(n)
	data := make([]int32, n)
	lt := func(x, y *int32) bool { return *x < *y }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		if err := SortSlice(data, lt, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// Byte-record benchmarks
func BenchmarkSort_Bytes_1000(b *testing.B) {
	benchmarkSortBytes(b, 1000)
}

func BenchmarkSort_Bytes_100000(b *testing.B) {
	benchmarkSortBytes(b, 100000)
}

func benchmarkSortBytes(b *testing.B, n int) {
	ref := encodeInt32s(generateInt32(n))
	data := make([]byte, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		if err := Sort(data, n, 4, compareInt32); err != nil {
			b.Fatal(err)
		}
	}
}

// Stdlib baseline
func BenchmarkStdlib_Int32_100000(b *testing.B) {
	ref := generateInt32(100000)
	data := make([]int32, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

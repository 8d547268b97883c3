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
	"math/rand"
	"slices"
	"testing"
)

// pair carries a key and the element's original position, to observe how
// equal keys are reordered.
type pair struct {
	key, pos int
}

func pairLess(a, b *pair) bool { return a.key < b.key }

func TestInsertionSort(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n <= 100; n++ {
		data := make([]int, n)
		for i := range data {
			data[i] = r.Intn(20)
		}
		want := slices.Clone(data)
		slices.Sort(want)

		insertionSort(typedSeq[int]{s: data, lt: intLess}, 0, n)
		if !slices.Equal(data, want) {
			t.Fatalf("insertionSort(n=%d) = %v, want %v", n, data, want)
		}
	}
}

func TestInsertionSortSubrange(t *testing.T) {
	data := []int{9, 9, 5, 4, 3, 8, 1, 9, 9}
	insertionSort(typedSeq[int]{s: data, lt: intLess}, 2, 5)
	want := []int{9, 9, 1, 3, 4, 5, 8, 9, 9}
	if !slices.Equal(data, want) {
		t.Errorf("insertionSort(lo=2, n=5) = %v, want %v", data, want)
	}
}

func TestOrderedPrefix(t *testing.T) {
	tests := []struct {
		name    string
		data    []int
		wantLen int
		want    []int
	}{
		{"ascending", []int{1, 2, 2, 3, 0}, 4, []int{1, 2, 2, 3, 0}},
		{"all_ascending", []int{1, 2, 3}, 3, []int{1, 2, 3}},
		{"equal_start", []int{4, 4, 1}, 2, []int{4, 4, 1}},
		{"descending", []int{5, 4, 3, 7}, 3, []int{3, 4, 5, 7}},
		{"descending_with_ties", []int{5, 4, 4, 2, 6}, 4, []int{2, 4, 4, 5, 6}},
		{"all_descending", []int{3, 2, 1}, 3, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := slices.Clone(tt.data)
			got := orderedPrefix(typedSeq[int]{s: data, lt: intLess}, 0, len(data))
			if got != tt.wantLen {
				t.Errorf("orderedPrefix() = %d, want %d", got, tt.wantLen)
			}
			if !slices.Equal(data, tt.want) {
				t.Errorf("after orderedPrefix data = %v, want %v", data, tt.want)
			}
		})
	}
}

func TestInsertionPositionAfterEqualKeys(t *testing.T) {
	tests := []struct {
		prefix []int
		key    int
		want   int
	}{
		{[]int{1, 3}, 0, 0},
		{[]int{1, 3}, 1, 1},
		{[]int{1, 3}, 2, 1},
		{[]int{1, 3}, 3, 2},
		{[]int{1, 3}, 4, 2},
		{[]int{1, 2, 2, 2, 5}, 2, 4},
		{[]int{1, 2, 2, 2, 5}, 6, 5},
		{[]int{2, 2, 2, 2}, 2, 4},
		{[]int{2, 2, 2, 2}, 1, 0},
	}
	for _, tt := range tests {
		data := append(slices.Clone(tt.prefix), tt.key)
		got := insertionPosition(typedSeq[int]{s: data, lt: intLess}, 0, len(tt.prefix))
		if got != tt.want {
			t.Errorf("insertionPosition(%v, %d) = %d, want %d", tt.prefix, tt.key, got, tt.want)
		}
	}
}

func TestInsertionSortKeepsInsertedEqualsInOrder(t *testing.T) {
	// An ascending prefix is never reversed, so equal keys inserted later
	// land after the ones already placed.
	data := []pair{{1, 0}, {2, 1}, {0, 2}, {2, 3}, {1, 4}, {2, 5}}
	insertionSort(typedSeq[pair]{s: data, lt: pairLess}, 0, len(data))
	want := []pair{{0, 2}, {1, 0}, {1, 4}, {2, 1}, {2, 3}, {2, 5}}
	if !slices.Equal(data, want) {
		t.Errorf("insertionSort() = %v, want %v", data, want)
	}
}

func TestShellSort(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, n := range []int{0, 1, 2, 3, 4, 5, 10, 23, 57, 100, 301, 350, 1000, 2000} {
		for _, smallSize := range []int{1, 80, 350, 100000} {
			data := make([]int, n)
			for i := range data {
				data[i] = r.Intn(1000) - 500
			}
			want := slices.Clone(data)
			slices.Sort(want)

			shellSort(typedSeq[int]{s: data, lt: intLess}, 0, n, smallSize)
			if !slices.Equal(data, want) {
				t.Fatalf("shellSort(n=%d, small=%d) produced %v", n, smallSize, data)
			}
		}
	}
}

func TestShellSortBytes(t *testing.T) {
	const size = 3
	input := generate(4, 700, patterns[0].gen)
	buf := make([]byte, 0, len(input)*size)
	for _, v := range input {
		u := uint16(v + 1000)
		buf = append(buf, byte(u>>8), byte(u), byte(v))
	}
	s := byteSeq{
		base:    buf,
		size:    size,
		scratch: make([]byte, 2),
		lt:      func(a, b []byte) bool { return string(a[:2]) < string(b[:2]) },
	}
	shellSort(s, 0, len(input), DefaultShellSmallSize)

	want := slices.Clone(input)
	slices.Sort(want)
	for i, v := range want {
		rec := buf[i*size : (i+1)*size]
		got := int32(uint16(rec[0])<<8|uint16(rec[1])) - 1000
		if got != v || rec[2] != byte(v) {
			t.Fatalf("record %d = %v, want key %d", i, rec, v)
		}
	}
}

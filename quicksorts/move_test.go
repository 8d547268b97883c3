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
	"bytes"
	"testing"
)

// records builds n records of size bytes where every byte of record i is i.
func records(n, size int) []byte {
	buf := make([]byte, n*size)
	for i := range n {
		for j := range size {
			buf[i*size+j] = byte(i)
		}
	}
	return buf
}

// order returns the first byte of each record.
func order(buf []byte, size int) []byte {
	out := make([]byte, len(buf)/size)
	for i := range out {
		rec := buf[i*size : (i+1)*size]
		for _, b := range rec {
			if b != rec[0] {
				return nil
			}
		}
		out[i] = rec[0]
	}
	return out
}

func TestSwap(t *testing.T) {
	for _, size := range []int{1, 4, 127, 128, 129, 300} {
		for _, scratch := range []int{0, 1, 5, 128} {
			buf := records(4, size)
			Swap(buf, 1, 3, size, make([]byte, scratch))
			if got, want := order(buf, size), []byte{0, 3, 2, 1}; !bytes.Equal(got, want) {
				t.Errorf("size=%d scratch=%d: Swap(1, 3) = %v, want %v", size, scratch, got, want)
			}
			Swap(buf, 2, 2, size, make([]byte, scratch))
			if got, want := order(buf, size), []byte{0, 3, 2, 1}; !bytes.Equal(got, want) {
				t.Errorf("size=%d scratch=%d: Swap(2, 2) = %v, want %v", size, scratch, got, want)
			}
		}
	}
}

func TestReversePrefix(t *testing.T) {
	tests := []struct {
		n    int
		want []byte
	}{
		{2, []byte{1, 0, 2, 3, 4, 5}},
		{3, []byte{2, 1, 0, 3, 4, 5}},
		{6, []byte{5, 4, 3, 2, 1, 0}},
	}
	for _, size := range []int{1, 3, 200} {
		for _, tt := range tests {
			buf := records(6, size)
			ReversePrefix(buf, tt.n, size, nil)
			if got := order(buf, size); !bytes.Equal(got, tt.want) {
				t.Errorf("size=%d: ReversePrefix(%d) = %v, want %v", size, tt.n, got, tt.want)
			}
		}
	}
}

func TestSubcirculateRight(t *testing.T) {
	tests := []struct {
		name        string
		left, right int
		gap         int
		want        []byte
	}{
		{"noop", 3, 3, 1, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{"adjacent", 2, 3, 1, []byte{0, 1, 3, 2, 4, 5, 6, 7, 8}},
		{"whole", 0, 8, 1, []byte{8, 0, 1, 2, 3, 4, 5, 6, 7}},
		{"middle", 2, 6, 1, []byte{0, 1, 6, 2, 3, 4, 5, 7, 8}},
		{"gap2", 1, 7, 2, []byte{0, 7, 2, 1, 4, 3, 6, 5, 8}},
		{"gap3", 0, 6, 3, []byte{6, 1, 2, 0, 4, 5, 3, 7, 8}},
		{"gap4_single_step", 4, 8, 4, []byte{0, 1, 2, 3, 8, 5, 6, 7, 4}},
	}
	for _, size := range []int{1, 2, 64, 128, 129, 513} {
		for _, scratch := range []int{0, 1, 3, 1024} {
			for _, tt := range tests {
				buf := records(9, size)
				SubcirculateRight(buf, tt.left, tt.right, size, tt.gap, make([]byte, scratch))
				if got := order(buf, size); !bytes.Equal(got, tt.want) {
					t.Errorf("%s size=%d scratch=%d: got %v, want %v", tt.name, size, scratch, got, tt.want)
				}
			}
		}
	}
}

func TestSubcirculateRightInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SubcirculateRight with a misaligned gap did not panic")
		}
	}()
	SubcirculateRight(records(9, 1), 0, 5, 1, 2, nil)
}

func TestTypedRotate(t *testing.T) {
	s := typedSeq[int]{s: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, lt: intLess}
	s.rotate(1, 7, 3)
	want := []int{0, 7, 2, 3, 1, 5, 6, 4, 8}
	for i := range want {
		if s.s[i] != want[i] {
			t.Fatalf("rotate(1, 7, 3) = %v, want %v", s.s, want)
		}
	}
	s.rotate(0, 8, 1)
	if s.s[0] != 8 || s.s[1] != 0 || s.s[8] != 4 {
		t.Errorf("rotate(0, 8, 1) = %v", s.s)
	}
}

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

import "fmt"

// Pivot selects how the partitioning element of a range is chosen.
type Pivot int

const (
	// PivotMedianOfThree takes the median of the first, middle and last
	// elements. It is the default.
	PivotMedianOfThree Pivot = iota

	// PivotRandom takes a uniformly random element, drawn from the
	// Options.Source or the package default source.
	PivotRandom

	// PivotMiddle takes the middle element without comparing anything.
	PivotMiddle
)

// String returns the name accepted by ParsePivot.
func (p Pivot) String() string {
	switch p {
	case PivotMedianOfThree:
		return "median-of-three"
	case PivotRandom:
		return "random"
	case PivotMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// ParsePivot returns the Pivot with the given name.
func ParsePivot(name string) (Pivot, error) {
	switch name {
	case "median-of-three", "median3":
		return PivotMedianOfThree, nil
	case "random":
		return PivotRandom, nil
	case "middle":
		return PivotMiddle, nil
	}
	return 0, fmt.Errorf("%w: unknown pivot %q", ErrInvalidOptions, name)
}

// selectPivot returns the absolute index of the pivot for the n >= 2
// elements starting at lo.
func selectPivot[S sequence](s S, lo, n int, p Pivot, src *Source) int {
	switch p {
	case PivotRandom:
		return lo + src.Below(n)
	case PivotMiddle:
		return lo + n>>1
	default:
		return lo + medianOfThree(s, lo, n)
	}
}

// medianOfThree returns the offset, relative to lo, of whichever of the
// first, middle and last elements holds the median value.
func medianOfThree[S sequence](s S, lo, n int) int {
	if n <= 2 {
		return 0
	}
	first, middle, last := lo, lo+n>>1, lo+n-1
	middleFirst := s.less(middle, first)
	if middleFirst != s.less(last, first) {
		return 0
	}
	if middleFirst != s.less(middle, last) {
		return n >> 1
	}
	return n - 1
}

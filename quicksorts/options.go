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
	"os"
	"strconv"
)

const (
	// DefaultSmallSize is the range length at or below which the driver
	// hands a range to binary insertion sort.
	DefaultSmallSize = 80

	// DefaultShellSmallSize is the small-size threshold used with ShellSort
	// when Options.SmallSize is zero.
	DefaultShellSmallSize = 350

	// DefaultScratchSize bounds the buffer that holds one element while it
	// is being moved.
	DefaultScratchSize = 128
)

// SmallSort selects the algorithm applied to ranges at or below the
// small-size threshold.
type SmallSort int

const (
	// InsertionSort is binary insertion sort. It is the default.
	InsertionSort SmallSort = iota

	// ShellSort runs gapped insertion passes before a final insertion pass.
	ShellSort
)

// String returns the name accepted by ParseSmallSort.
func (s SmallSort) String() string {
	switch s {
	case InsertionSort:
		return "insertion"
	case ShellSort:
		return "shell"
	default:
		return "unknown"
	}
}

// ParseSmallSort returns the SmallSort with the given name.
func ParseSmallSort(name string) (SmallSort, error) {
	switch name {
	case "insertion":
		return InsertionSort, nil
	case "shell":
		return ShellSort, nil
	}
	return 0, fmt.Errorf("%w: unknown small sort %q", ErrInvalidOptions, name)
}

// Options configures a sort. The zero value selects median-of-three pivots,
// binary insertion sort at or below 80 elements, a 128-byte scratch buffer
// and the package default Source.
type Options struct {
	Pivot     Pivot
	SmallSort SmallSort

	// SmallSize is the small-size threshold. Zero selects DefaultSmallSize,
	// or DefaultShellSmallSize for ShellSort.
	SmallSize int

	// ScratchSize bounds the per-call element buffer used by the byte
	// entry points. Zero selects DefaultScratchSize.
	ScratchSize int

	// Source supplies random pivots. Nil selects DefaultSource().
	Source *Source
}

// config is a validated Options with every default filled in.
type config struct {
	pivot     Pivot
	smallSort SmallSort
	smallSize int
	scratch   int
	source    *Source
}

func (o Options) resolve() (config, error) {
	c := config{
		pivot:     o.Pivot,
		smallSort: o.SmallSort,
		smallSize: o.SmallSize,
		scratch:   o.ScratchSize,
		source:    o.Source,
	}
	switch c.pivot {
	case PivotMedianOfThree, PivotRandom, PivotMiddle:
	default:
		return config{}, fmt.Errorf("%w: pivot %d", ErrInvalidOptions, int(c.pivot))
	}
	switch c.smallSort {
	case InsertionSort, ShellSort:
	default:
		return config{}, fmt.Errorf("%w: small sort %d", ErrInvalidOptions, int(c.smallSort))
	}
	if c.smallSize < 0 {
		return config{}, fmt.Errorf("%w: small size %d", ErrInvalidOptions, c.smallSize)
	}
	if c.scratch < 0 {
		return config{}, fmt.Errorf("%w: scratch size %d", ErrInvalidOptions, c.scratch)
	}
	if c.smallSize == 0 {
		c.smallSize = DefaultSmallSize
		if c.smallSort == ShellSort {
			c.smallSize = DefaultShellSmallSize
		}
	}
	if c.scratch == 0 {
		c.scratch = DefaultScratchSize
	}
	if c.source == nil {
		c.source = defaultSource
	}
	return c, nil
}

// Environment variables consulted once at start-up for DefaultOptions.
const (
	EnvPivot       = "QUICKSORTS_PIVOT"
	EnvSmallSort   = "QUICKSORTS_SMALL_SORT"
	EnvSmallSize   = "QUICKSORTS_SMALL_SIZE"
	EnvScratchSize = "QUICKSORTS_SCRATCH_SIZE"
)

var (
	defaultOptions Options
	defaultConfig  config
)

func init() {
	defaultOptions = optionsFromEnv(os.Getenv)
	c, err := defaultOptions.resolve()
	if err != nil {
		defaultOptions = Options{}
		c, _ = defaultOptions.resolve()
	}
	defaultConfig = c
}

// optionsFromEnv builds Options from the QUICKSORTS_* variables. Values
// that do not parse are ignored.
func optionsFromEnv(getenv func(string) string) Options {
	var o Options
	if v := getenv(EnvPivot); v != "" {
		if p, err := ParsePivot(v); err == nil {
			o.Pivot = p
		}
	}
	if v := getenv(EnvSmallSort); v != "" {
		if s, err := ParseSmallSort(v); err == nil {
			o.SmallSort = s
		}
	}
	if v := getenv(EnvSmallSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			o.SmallSize = n
		}
	}
	if v := getenv(EnvScratchSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			o.ScratchSize = n
		}
	}
	return o
}

// DefaultOptions returns the options used by Sort, SortR and SortFunc.
func DefaultOptions() Options {
	return defaultOptions
}

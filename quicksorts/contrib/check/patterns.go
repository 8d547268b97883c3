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

package check

import (
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
)

// Pattern names a way of filling the input array.
type Pattern string

const (
	Random               Pattern = "random"
	Presorted            Pattern = "presorted"
	Reversed             Pattern = "reversed"
	SignReversalRandom   Pattern = "sign-reversal-random"
	Constant             Pattern = "constant"
	SignReversalConstant Pattern = "sign-reversal-constant"
)

var patternGens = map[Pattern]func(rng *rand.Rand, i int) int32{
	Random:    func(rng *rand.Rand, _ int) int32 { return randomKey(rng) },
	Presorted: func(_ *rand.Rand, i int) int32 { return int32(i) },
	Reversed:  func(_ *rand.Rand, i int) int32 { return -int32(i) },
	SignReversalRandom: func(rng *rand.Rand, i int) int32 {
		return alternate(i, randomKey(rng))
	},
	Constant:             func(*rand.Rand, int) int32 { return 1 },
	SignReversalConstant: func(_ *rand.Rand, i int) int32 { return alternate(i, 1) },
}

var patternHeadings = map[Pattern]string{
	Random:               "Random arrays:",
	Presorted:            "Pre-sorted arrays:",
	Reversed:             "Reverse pre-sorted arrays:",
	SignReversalRandom:   "Sign-reversal random arrays:",
	Constant:             "Constant arrays:",
	SignReversalConstant: "Sign-reversal constant arrays:",
}

// Patterns returns every pattern in the order the reports list them.
func Patterns() []Pattern {
	return []Pattern{Random, Presorted, Reversed, SignReversalRandom, Constant, SignReversalConstant}
}

// ParsePatterns parses a comma-separated list of pattern names. "all"
// selects every pattern.
func ParsePatterns(list string) ([]Pattern, error) {
	names := splitList(list)
	if len(names) == 1 && names[0] == "all" {
		return Patterns(), nil
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty pattern list", ErrUnknownPattern)
	}
	out := make([]Pattern, 0, len(names))
	for _, name := range names {
		p := Pattern(name)
		if _, ok := patternGens[p]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
		}
		out = append(out, p)
	}
	return lo.Uniq(out), nil
}

// Heading returns the line printed above a pattern's results.
func (p Pattern) Heading() string {
	if h, ok := patternHeadings[p]; ok {
		return h
	}
	return string(p) + ":"
}

// Generate returns n keys filled according to p. The same seed always
// yields the same keys.
func Generate(p Pattern, n int, seed uint64) ([]int32, error) {
	gen, ok := patternGens[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, p)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return lo.Times(n, func(i int) int32 { return gen(rng, i) }), nil
}

// Sizes returns 0, 1, 10, 100, ... up to and including limit.
func Sizes(limit int) []int {
	var sizes []int
	for n := 0; n <= limit; n = max(1, 10*n) {
		sizes = append(sizes, n)
		if n > limit/10 {
			break
		}
	}
	return sizes
}

func randomKey(rng *rand.Rand) int32 {
	return int32(rng.IntN(2001)) - 1000
}

func alternate(i int, v int32) int32 {
	if i&1 == 0 {
		return v
	}
	return -v
}

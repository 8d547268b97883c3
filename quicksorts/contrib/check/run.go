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
	"bytes"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/ajroetker/go-quicksorts/quicksorts/contrib/workerpool"
	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"
)

// Case is one cross-validation run.
type Case struct {
	Kind    string  `json:"kind" yaml:"kind"`
	Pattern Pattern `json:"pattern" yaml:"pattern"`
	Size    int     `json:"size" yaml:"size"`
	Seed    uint64  `json:"seed" yaml:"seed"`
}

// Result reports the outcome of a Case. Error is empty when the sort under
// test agreed with the reference.
type Result struct {
	Kind             string  `json:"kind" yaml:"kind"`
	Pattern          Pattern `json:"pattern" yaml:"pattern"`
	Size             int     `json:"size" yaml:"size"`
	Seed             uint64  `json:"seed" yaml:"seed"`
	ReferenceSeconds float64 `json:"reference_seconds" yaml:"reference_seconds"`
	OursSeconds      float64 `json:"ours_seconds" yaml:"ours_seconds"`
	Checksum         uint64  `json:"checksum" yaml:"checksum"`
	Error            string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the case failed.
func (r Result) Failed() bool {
	return r.Error != ""
}

// Checksum returns an order-independent hash of the size-byte records in
// recs: two buffers holding the same records in any order hash equal.
func Checksum(recs []byte, size int) uint64 {
	if size <= 0 {
		return 0
	}
	var sum uint64
	for off := 0; off+size <= len(recs); off += size {
		sum += xxhash.Sum64(recs[off : off+size])
	}
	return sum
}

// Run executes c and reports the result. Failures are recorded in the
// Result, never returned.
func Run(ctx context.Context, c Case) Result {
	r := Result{Kind: c.Kind, Pattern: c.Pattern, Size: c.Size, Seed: c.Seed}
	if err := run(ctx, c, &r); err != nil {
		r.Error = err.Error()
	}
	return r
}

func run(ctx context.Context, c Case, r *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.Size < 0 {
		return fmt.Errorf("%w: size %d", ErrInvalidCase, c.Size)
	}
	k, err := Lookup(c.Kind)
	if err != nil {
		return err
	}
	keys, err := Generate(c.Pattern, c.Size, c.Seed)
	if err != nil {
		return err
	}

	input := k.encode(keys)
	r.Checksum = Checksum(input, k.Size)

	ref, refTime := referenceSort(input, c.Size, k)
	r.ReferenceSeconds = refTime.Seconds()

	ours := slices.Clone(input)
	oursTime, err := k.sort(ours, c.Size)
	r.OursSeconds = oursTime.Seconds()
	if err != nil {
		return err
	}
	return verify(ref, ours, c.Size, k, r.Checksum)
}

// referenceSort sorts a copy of input with slices.SortFunc.
func referenceSort(input []byte, n int, k Kind) ([]byte, time.Duration) {
	views := make([][]byte, n)
	for i := range views {
		views[i] = input[i*k.Size : (i+1)*k.Size]
	}
	start := time.Now()
	slices.SortFunc(views, k.Compare)
	elapsed := time.Since(start)

	out := make([]byte, 0, len(input))
	for _, v := range views {
		out = append(out, v...)
	}
	return out, elapsed
}

func verify(ref, ours []byte, n int, k Kind, checksum uint64) error {
	rec := func(buf []byte, i int) []byte { return buf[i*k.Size : (i+1)*k.Size] }
	for i := 1; i < n; i++ {
		if k.Compare(rec(ours, i-1), rec(ours, i)) > 0 {
			return fmt.Errorf("%w: out of order at %d: %s before %s",
				ErrMismatch, i, k.format(rec(ours, i-1)), k.format(rec(ours, i)))
		}
	}
	for i := range n {
		if !bytes.Equal(rec(ref, i), rec(ours, i)) {
			return fmt.Errorf("%w: record %d: reference %s, ours %s",
				ErrMismatch, i, k.format(rec(ref, i)), k.format(rec(ours, i)))
		}
	}
	if got := Checksum(ours, k.Size); got != checksum {
		return fmt.Errorf("%w: checksum %#x, want %#x", ErrMismatch, got, checksum)
	}
	return nil
}

// Plan lists the cases RunAll runs for one kind: every pattern crossed with
// every size, dropping sizes above the kind's limit. Unknown kinds keep
// every size so that Run reports them.
func Plan(kind string, patterns []Pattern, sizes []int, seed uint64) []Case {
	if k, err := Lookup(kind); err == nil && k.Limit > 0 {
		sizes = lo.Filter(sizes, func(n int, _ int) bool { return n <= k.Limit })
	}
	return lo.FlatMap(patterns, func(p Pattern, _ int) []Case {
		return lo.Map(sizes, func(n int, _ int) Case {
			return Case{Kind: kind, Pattern: p, Size: n, Seed: seed}
		})
	})
}

// RunAll runs every case of Plan on pool and returns the results in plan
// order.
func RunAll(ctx context.Context, pool *workerpool.Pool, kind string, patterns []Pattern, sizes []int, seed uint64) []Result {
	cases := Plan(kind, patterns, sizes, seed)
	results := make([]Result, len(cases))
	pool.ParallelForAtomic(len(cases), func(i int) {
		results[i] = Run(ctx, cases[i])
	})
	return results
}

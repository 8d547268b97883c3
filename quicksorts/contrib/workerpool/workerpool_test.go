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

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	assert.Equal(t, 4, pool.NumWorkers())
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	assert.Equal(t, runtime.GOMAXPROCS(0), pool.NumWorkers())
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 1000
	results := make([]int, n)
	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})

	for i := range n {
		require.Equal(t, i*2, results[i], "results[%d]", i)
	}
}

func TestParallelForAtomicVisitsEachIndexOnce(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var calls atomic.Int64
	seen := make([]atomic.Int32, 500)
	pool.ParallelForAtomic(len(seen), func(i int) {
		calls.Add(1)
		seen[i].Add(1)
	})

	assert.Equal(t, int64(len(seen)), calls.Load())
	for i := range seen {
		assert.Equal(t, int32(1), seen[i].Load(), "index %d", i)
	}
}

func TestParallelForAtomicEmpty(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelForAtomic(0, func(int) { called = true })
	assert.False(t, called)
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	sum := 0
	pool.ParallelForAtomic(10, func(i int) { sum += i })
	assert.Equal(t, 45, sum)
}

func TestPoolReuse(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	for round := range 20 {
		var total atomic.Int64
		pool.ParallelForAtomic(100, func(i int) { total.Add(int64(i)) })
		require.Equal(t, int64(4950), total.Load(), "round %d", round)
	}
}

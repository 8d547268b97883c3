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
	"math/bits"
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// LCG constants. The multiplier is from Steele and Vigna, "Computationally
// easy, spectrally good multipliers for congruential pseudorandom number
// generators". The increment must be odd.
const (
	lcgA uint64 = 0xf1357aea2e62a9c5
	lcgC uint64 = 1
)

// defaultSeed seeds the package-wide source used for random pivots.
const defaultSeed uint64 = 0x2545f4914f6cdd1d

// ticketLock is a FIFO spinlock. Each caller takes a ticket from available
// and proceeds once active reaches it. Both counters wrap around on overflow.
type ticketLock struct {
	active    atomic.Uint64
	_         cpu.CacheLinePad
	available atomic.Uint64
	_         cpu.CacheLinePad
}

func (l *ticketLock) lock() {
	ticket := l.available.Add(1) - 1
	for l.active.Load() != ticket {
		runtime.Gosched()
	}
}

func (l *ticketLock) unlock() {
	l.active.Add(1)
}

// Source is a 64-bit linear congruential generator that is safe for
// concurrent use. Updates of the seed are serialized by a ticket lock, so
// callers are served in arrival order without parking on an OS mutex.
//
// Source implements math/rand/v2.Source. It is meant for pivot selection
// only and must not be used where unpredictability matters.
type Source struct {
	lock ticketLock
	seed uint64
}

// NewSource returns a Source starting from seed.
func NewSource(seed uint64) *Source {
	return &Source{seed: seed}
}

var defaultSource = NewSource(defaultSeed)

// DefaultSource returns the process-wide Source used when Options.Source is nil.
func DefaultSource() *Source {
	return defaultSource
}

// Seed resets the generator state.
func (s *Source) Seed(seed uint64) {
	s.lock.lock()
	s.seed = seed
	s.lock.unlock()
}

// Uint64 advances the generator and returns the byte-reversed previous
// state. The low bits of an LCG are weak (bit 0 simply alternates), so
// reversing the bytes moves the strong high bits to the bottom.
func (s *Source) Uint64() uint64 {
	s.lock.lock()
	old := s.seed
	s.seed = lcgA*old + lcgC
	s.lock.unlock()
	return bits.ReverseBytes64(old)
}

// Below returns a value in [0, n). The result carries modulo bias, which is
// harmless for pivot selection. Below panics if n <= 0.
func (s *Source) Below(n int) int {
	if n <= 0 {
		panic("quicksorts: Source.Below called with n <= 0")
	}
	return int(s.Uint64() % uint64(n))
}

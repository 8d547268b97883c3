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
	"cmp"
	"encoding/binary"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ajroetker/go-quicksorts/quicksorts"
	"github.com/samber/lo"
)

const (
	// IntSize is the record size of the integer kinds: one little-endian
	// int32.
	IntSize = 4

	// BigSize is the record size of the big kinds.
	BigSize = 2048

	// BigLimit is the largest array size the big kinds are run at.
	BigLimit = 10000

	envValue = 1234
)

// Kind is one way of calling the sort under test.
type Kind struct {
	Name string

	// Size is the record size in bytes.
	Size int

	// Limit is the largest array size worth running, or 0 for no cap.
	Limit int

	// Compare orders two records the way the reference sort does.
	Compare func(a, b []byte) int

	encode func(keys []int32) []byte
	format func(rec []byte) string
	sort   func(recs []byte, n int) (time.Duration, error)
}

var kinds = map[string]Kind{}

func register(k Kind) {
	if _, dup := kinds[k.Name]; dup {
		panic("check: duplicate kind " + k.Name)
	}
	kinds[k.Name] = k
}

func init() {
	register(intKind("unstable_qsort", func(recs []byte, n int) (time.Duration, error) {
		return timed(func() error { return quicksorts.Sort(recs, n, IntSize, compareInt32) })
	}))
	register(intKind("unstable_qsort_r", sortWithEnv))
	register(intKind("unstable-insertion-random", bytesWith(IntSize, ltInt32, quicksorts.Options{
		Pivot: quicksorts.PivotRandom, SmallSort: quicksorts.InsertionSort, SmallSize: 80,
	})))
	register(intKind("unstable-shell-random", bytesWith(IntSize, ltInt32, quicksorts.Options{
		Pivot: quicksorts.PivotRandom, SmallSort: quicksorts.ShellSort, SmallSize: 350,
	})))
	register(intKind("unstable-insertion-middle", bytesWith(IntSize, ltInt32, quicksorts.Options{
		Pivot: quicksorts.PivotMiddle, SmallSort: quicksorts.InsertionSort, SmallSize: 80,
	})))
	register(typedIntKind("typed", func(keys []int32) error {
		quicksorts.SortFunc(keys, func(a, b *int32) bool { return *a < *b })
		return nil
	}))
	register(typedIntKind("typed-shell-random", func(keys []int32) error {
		return quicksorts.SortSlice(keys, func(a, b *int32) bool { return *a < *b }, quicksorts.Options{
			Pivot: quicksorts.PivotRandom, SmallSort: quicksorts.ShellSort,
		})
	}))
	register(typedIntKind("ordered", func(keys []int32) error {
		quicksorts.SortOrdered(keys)
		return nil
	}))

	register(bigKind("unstable-random-insertion-big", bytesWith(BigSize, ltCString, quicksorts.Options{
		Pivot: quicksorts.PivotRandom, SmallSort: quicksorts.InsertionSort, SmallSize: 80,
	})))
	register(bigKind("unstable-random-shell-big", bytesWith(BigSize, ltCString, quicksorts.Options{
		Pivot: quicksorts.PivotRandom, SmallSort: quicksorts.ShellSort, SmallSize: 350,
	})))
	register(bigKind("typed-random-shell-big", sortBigRecords))
}

// Kinds returns the names of every registered kind, sorted.
func Kinds() []string {
	names := lo.Keys(kinds)
	slices.Sort(names)
	return names
}

// Lookup returns the kind with the given name.
func Lookup(name string) (Kind, error) {
	k, ok := kinds[name]
	if !ok {
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// ParseKinds parses a comma-separated list of kind names. "all" selects
// every kind.
func ParseKinds(list string) ([]string, error) {
	names := splitList(list)
	if len(names) == 1 && names[0] == "all" {
		return Kinds(), nil
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty kind list", ErrUnknownKind)
	}
	for _, name := range names {
		if _, err := Lookup(name); err != nil {
			return nil, err
		}
	}
	return lo.Uniq(names), nil
}

func splitList(list string) []string {
	return lo.Compact(lo.Map(strings.Split(list, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}

func intKind(name string, sort func(recs []byte, n int) (time.Duration, error)) Kind {
	return Kind{
		Name:    name,
		Size:    IntSize,
		Compare: compareInt32,
		encode:  encodeInt32s,
		format:  func(rec []byte) string { return strconv.Itoa(int(int32(binary.LittleEndian.Uint32(rec)))) },
		sort:    sort,
	}
}

func typedIntKind(name string, sortKeys func(keys []int32) error) Kind {
	return intKind(name, func(recs []byte, n int) (time.Duration, error) {
		keys := decodeInt32s(recs, n)
		d, err := timed(func() error { return sortKeys(keys) })
		copy(recs, encodeInt32s(keys))
		return d, err
	})
}

func bigKind(name string, sort func(recs []byte, n int) (time.Duration, error)) Kind {
	return Kind{
		Name:    name,
		Size:    BigSize,
		Limit:   BigLimit,
		Compare: compareCString,
		encode:  encodeDecimal,
		format:  func(rec []byte) string { return strconv.Quote(string(cString(rec))) },
		sort:    sort,
	}
}

func bytesWith(size int, lt func(a, b []byte) bool, opts quicksorts.Options) func([]byte, int) (time.Duration, error) {
	return func(recs []byte, n int) (time.Duration, error) {
		return timed(func() error { return quicksorts.SortBytes(recs, n, size, lt, opts) })
	}
}

// sortWithEnv checks that SortR hands the caller's environment to every
// comparison unchanged.
func sortWithEnv(recs []byte, n int) (time.Duration, error) {
	env := new(int)
	*env = envValue
	var bad int
	compar := func(a, b []byte, e any) int {
		if p, ok := e.(*int); !ok || p != env || *p != envValue {
			bad++
		}
		return compareInt32(a, b)
	}
	d, err := timed(func() error { return quicksorts.SortR(recs, n, IntSize, compar, env) })
	if err == nil && bad > 0 {
		err = fmt.Errorf("%w: %d comparisons saw a foreign environment", ErrEnvironment, bad)
	}
	return d, err
}

type bigRecord [BigSize]byte

func sortBigRecords(recs []byte, n int) (time.Duration, error) {
	s := make([]bigRecord, n)
	for i := range s {
		copy(s[i][:], recs[i*BigSize:])
	}
	d, err := timed(func() error {
		return quicksorts.SortSlice(s, func(a, b *bigRecord) bool { return compareCString(a[:], b[:]) < 0 },
			quicksorts.Options{Pivot: quicksorts.PivotRandom, SmallSort: quicksorts.ShellSort, SmallSize: 350})
	})
	for i := range s {
		copy(recs[i*BigSize:], s[i][:])
	}
	return d, err
}

func timed(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	return time.Since(start), err
}

func compareInt32(a, b []byte) int {
	return cmp.Compare(int32(binary.LittleEndian.Uint32(a)), int32(binary.LittleEndian.Uint32(b)))
}

func ltInt32(a, b []byte) bool {
	return int32(binary.LittleEndian.Uint32(a)) < int32(binary.LittleEndian.Uint32(b))
}

func encodeInt32s(keys []int32) []byte {
	buf := make([]byte, len(keys)*IntSize)
	for i, k := range keys {
		binary.LittleEndian.PutUint32(buf[i*IntSize:], uint32(k))
	}
	return buf
}

func decodeInt32s(recs []byte, n int) []int32 {
	keys := make([]int32, n)
	for i := range keys {
		keys[i] = int32(binary.LittleEndian.Uint32(recs[i*IntSize:]))
	}
	return keys
}

// cString returns rec up to its first NUL byte.
func cString(rec []byte) []byte {
	if i := bytes.IndexByte(rec, 0); i >= 0 {
		return rec[:i]
	}
	return rec
}

func compareCString(a, b []byte) int {
	return bytes.Compare(cString(a), cString(b))
}

func ltCString(a, b []byte) bool {
	return compareCString(a, b) < 0
}

func encodeDecimal(keys []int32) []byte {
	buf := make([]byte, len(keys)*BigSize)
	for i, k := range keys {
		strconv.AppendInt(buf[i*BigSize:i*BigSize], int64(k), 10)
	}
	return buf
}

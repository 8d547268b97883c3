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

import "errors"

var (
	// ErrElementSize is returned when the element size is not positive.
	ErrElementSize = errors.New("quicksorts: element size must be positive")

	// ErrCount is returned for a negative element count.
	ErrCount = errors.New("quicksorts: element count must not be negative")

	// ErrShortBuffer is returned when the array holds fewer than
	// nmemb*size bytes.
	ErrShortBuffer = errors.New("quicksorts: array shorter than nmemb*size bytes")

	// ErrInvalidOptions is returned for out-of-range Options fields and
	// unknown pivot or small-sort names.
	ErrInvalidOptions = errors.New("quicksorts: invalid options")

	// ErrAlloc is returned when the element scratch buffer cannot be
	// allocated.
	ErrAlloc = errors.New("quicksorts: cannot allocate scratch buffer")
)

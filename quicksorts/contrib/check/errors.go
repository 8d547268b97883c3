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

import "errors"

var (
	// ErrUnknownKind is returned for a kind name that is not registered.
	ErrUnknownKind = errors.New("check: unknown kind")

	// ErrUnknownPattern is returned for an unrecognized pattern name.
	ErrUnknownPattern = errors.New("check: unknown pattern")

	// ErrInvalidCase is returned for a case that cannot be run.
	ErrInvalidCase = errors.New("check: invalid case")

	// ErrMismatch reports that the sort under test disagreed with the
	// reference sort.
	ErrMismatch = errors.New("check: mismatch")

	// ErrEnvironment reports that SortR did not pass the caller's
	// environment through to the comparator.
	ErrEnvironment = errors.New("check: environment not passed through")
)

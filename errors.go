// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arrayvec

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity is matched by every error that reports a container
	// running out of room, including [*CapacityError].
	ErrCapacity = errors.New("arrayvec: insufficient capacity")

	// ErrInvalidUTF8 is matched by [*UTF8Error].
	ErrInvalidUTF8 = errors.New("arrayvec: invalid UTF-8")
)

// CapacityError is returned when an element cannot be added to a container
// because it is full. The container is left unchanged, and the rejected
// element is handed back to the caller.
type CapacityError[T any] struct {
	Element T
}

// Error implements [error].
func (e *CapacityError[T]) Error() string {
	return ErrCapacity.Error()
}

// Is reports whether target is [ErrCapacity].
func (e *CapacityError[T]) Is(target error) bool {
	return target == ErrCapacity
}

// UTF8Error is returned when bytes that are to become the contents of a
// [String] are not valid UTF-8.
type UTF8Error struct {
	// The length of the longest valid UTF-8 prefix of the input.
	ValidUpTo int
}

// Error implements [error].
func (e *UTF8Error) Error() string {
	return fmt.Sprintf("%v after byte %d", ErrInvalidUTF8, e.ValidUpTo)
}

// Is reports whether target is [ErrInvalidUTF8].
func (e *UTF8Error) Is(target error) bool {
	return target == ErrInvalidUTF8
}

// errTooLong is returned by decoders when the input holds more elements than
// the destination can.
func errTooLong(n, capacity int) error {
	return fmt.Errorf("%w: decoded %d elements into capacity %d", ErrCapacity, n, capacity)
}

// panicIndex panics with an index-out-of-range message.
func panicIndex(op string, idx, bound int) {
	panic(fmt.Sprintf("arrayvec: %s: index out of range [%d] with length %d", op, idx, bound))
}

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
	"fmt"

	"github.com/bufbuild/arrayvec/internal/ext/bitsx"
)

//go:generate go run github.com/bufbuild/arrayvec/internal/gencap capacities.yaml

// Len is the set of types a [Vec] or [String] may use as its length counter.
//
// The counter type of a container is not chosen by the user: each capacity
// type picks the narrowest of these that can count up to its capacity. See
// [CounterWidth].
type Len interface {
	~uint8 | ~uint16 | ~uint32
}

// Array is the backing storage of a [Vec] with elements of type T and a length
// counter of type L.
//
// Every Array is a named array type [N]T, where N is the capacity. This
// package defines one such type for each supported capacity, named CapN: for
// example, [Cap4] is [4]T with a uint8 counter, [Cap1000] is [1000]T with a
// uint16 counter, and [Cap100000] is [100000]T with a uint32 counter.
//
// Array cannot be implemented outside of this package. Because the counter
// type is part of each capacity type's method set, instantiating a container
// with the wrong counter type, e.g. Vec[int, Cap1000[int], uint8], is a
// compile-time error.
type Array[T any, L Len] interface {
	// Cap returns the number of elements in this array.
	Cap() int

	storage(T, L)
}

// CounterWidth returns the size in bytes of the length counter used by
// containers with the given capacity: 1 for capacities up to 255, 2 for
// capacities up to 65535, and 4 otherwise.
//
// Panics if capacity is negative or does not fit in a uint32.
func CounterWidth(capacity int) int {
	if capacity < 0 || uint64(capacity) > 1<<32-1 {
		panic(fmt.Sprintf("arrayvec: capacity out of range: %d", capacity))
	}
	return bitsx.ByteWidth(uint64(capacity))
}

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

// package unsafex contains extensions to Go's package unsafe.
//
// Importing this package should be treated as equivalent to importing unsafe.
package unsafex

import (
	"fmt"
	"unsafe"
)

// Layout is the layout of a type.
//
// This is a more convenient abstraction that manipulating the size and
// alignment separately.
type Layout struct {
	Size, Align int
}

// LayoutOf returns the layout of some type.
func LayoutOf[T any]() Layout {
	var v T
	return Layout{
		Size:  int(unsafe.Sizeof(v)),
		Align: int(unsafe.Alignof(v)),
	}
}

// Index is like [unsafe.Add], but it operates on a typed pointer and scales the
// offset by that type's size, similar to pointer arithmetic in Rust or C.
//
// This function has the same safety caveats as [unsafe.Add].
//
//go:nosplit
func Index[T any](p *T, idx int) *T {
	raw := unsafe.Pointer(p)
	raw = unsafe.Add(raw, idx*LayoutOf[T]().Size)
	return (*T)(raw)
}

// Bitcast bit-casts a value of type From to a value of type To.
//
// This operation is very dangerous, because it can be used to break package
// export barriers, read uninitialized memory, and forge pointers in violation
// of [unsafe.Pointer]'s contract, resulting in memory errors in the GC.
//
// Panics if To and From have different sizes.
//
//go:nosplit
func Bitcast[To, From any](v From) To {
	if LayoutOf[To]().Size != LayoutOf[From]().Size {
		// This check will always be inlined away, because Bitcast is
		// manifestly inline-able.
		panic(badBitcast[To, From]{})
	}

	// To avoid an unaligned load below, we copy From into
	// a struct aligned to To.
	aligned := struct {
		_ [0]To
		v From
	}{v: v}

	return *(*To)(unsafe.Pointer(&aligned))
}

type badBitcast[To, From any] struct{}

func (badBitcast[To, From]) Error() string {
	var to To
	var from From
	return fmt.Sprintf(
		"unsafex: %T and %T are of unequal size (%d != %d)",
		to, from,
		LayoutOf[To]().Size, LayoutOf[From]().Size,
	)
}

// ArraySlice reinterprets a pointer to an array type A, whose elements are of
// type E, as a slice of length n.
//
// The caller must guarantee that A's underlying type is [N]E for some N >= n;
// this function has no way to check that.
//
//go:nosplit
func ArraySlice[E, A any](array *A, n int) []E {
	return unsafe.Slice(Bitcast[*E](array), n)
}

// StringAlias returns a string that aliases a slice. This is useful for
// situations where we have a slice that will not be written to while the
// string is alive, and we want to interpret it as a string without a copy.
//
// data must not be written to for the lifetime of the returned string.
//
//go:nosplit
func StringAlias[S ~[]byte](data S) string {
	return unsafe.String(unsafe.SliceData(data), len(data))
}

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
	"cmp"
	"slices"
)

// Equal reports whether two vectors contain the same elements in the same
// order.
func Equal[T comparable, A Array[T, L], L Len](a, b *Vec[T, A, L]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like [Equal], but uses eq to compare elements.
func EqualFunc[T any, A Array[T, L], L Len](a, b *Vec[T, A, L], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare compares the elements of two vectors lexicographically, as if by
// [slices.Compare].
func Compare[T cmp.Ordered, A Array[T, L], L Len](a, b *Vec[T, A, L]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like [Compare], but uses cmp to compare elements.
func CompareFunc[T any, A Array[T, L], L Len](a, b *Vec[T, A, L], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmp)
}

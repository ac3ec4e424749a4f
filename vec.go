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
	"iter"
	"slices"

	"github.com/bufbuild/arrayvec/internal/ext/slicesx"
	"github.com/bufbuild/arrayvec/internal/ext/unsafex"
)

// Vec is a vector with a fixed capacity, whose elements are stored inline in
// the Vec value itself.
//
// A is the backing array, which determines the capacity; L is the type of the
// length counter, which is fixed by A. For example, a vector of up to four
// ints is a Vec[int, Cap4[int], uint8], and is exactly as large as a uint8
// followed by a [4]int.
//
// The zero value is empty and ready to use. Copying a Vec copies its
// elements. Most methods take a pointer receiver, since a Vec may be very
// large; the formatting and marshaling methods take a value receiver so that
// they apply to both Vec and *Vec.
type Vec[T any, A Array[T, L], L Len] struct {
	// Elements in data[len:] are always the zero value.
	len  L
	data A
}

// FromArray returns a full vector containing the elements of array.
func FromArray[T any, A Array[T, L], L Len](array A) Vec[T, A, L] {
	return Vec[T, A, L]{len: L(array.Cap()), data: array}
}

// VecOf returns a vector containing values.
//
// Returns a [*CapacityError] and an empty vector if there are more values than
// the vector can hold.
func VecOf[T any, A Array[T, L], L Len](values ...T) (Vec[T, A, L], error) {
	var v Vec[T, A, L]
	err := v.Append(values...)
	return v, err
}

// Collect collects the values of seq into a new vector.
//
// Returns a [*CapacityError] holding the first value that did not fit if seq
// yields more values than the vector can hold, along with the full vector.
func Collect[T any, A Array[T, L], L Len](seq iter.Seq[T]) (Vec[T, A, L], error) {
	var v Vec[T, A, L]
	err := v.Extend(seq)
	return v, err
}

// Len returns the number of elements in the vector.
func (v *Vec[T, A, L]) Len() int {
	return int(v.len)
}

// Cap returns the capacity of the vector.
func (v *Vec[T, A, L]) Cap() int {
	return v.data.Cap()
}

// Remaining returns the number of elements that can be added before the
// vector is full.
func (v *Vec[T, A, L]) Remaining() int {
	return v.Cap() - v.Len()
}

// IsEmpty returns whether the vector has no elements.
func (v *Vec[T, A, L]) IsEmpty() bool {
	return v.len == 0
}

// IsFull returns whether the vector is filled to capacity.
func (v *Vec[T, A, L]) IsFull() bool {
	return v.Len() == v.Cap()
}

// Slice returns the elements of the vector.
//
// The returned slice aliases the vector's storage, and is only valid until the
// next call to a method that changes the vector's length. Its capacity is
// clipped to its length, so appending to it never writes into the vector.
func (v *Vec[T, A, L]) Slice() []T {
	n := v.Len()
	return v.slots()[:n:n]
}

// At returns the element at index idx.
//
// Panics if the index is out of range.
func (v *Vec[T, A, L]) At(idx int) T {
	if uint(idx) >= uint(v.len) {
		panicIndex("At", idx, v.Len())
	}
	return v.slots()[idx]
}

// Set sets the element at index idx.
//
// Panics if the index is out of range.
func (v *Vec[T, A, L]) Set(idx int, value T) {
	if uint(idx) >= uint(v.len) {
		panicIndex("Set", idx, v.Len())
	}
	v.slots()[idx] = value
}

// Get returns the element at index idx, or false if idx is out of range.
func (v *Vec[T, A, L]) Get(idx int) (T, bool) {
	return slicesx.Get(v.Slice(), idx)
}

// Last returns the last element, or false if the vector is empty.
func (v *Vec[T, A, L]) Last() (T, bool) {
	return slicesx.Last(v.Slice())
}

// Push appends value to the end of the vector.
//
// If the vector is full, returns a [*CapacityError] holding value, and leaves
// the vector unchanged.
func (v *Vec[T, A, L]) Push(value T) error {
	if v.IsFull() {
		return &CapacityError[T]{Element: value}
	}
	v.slots()[v.len] = value
	v.len++
	return nil
}

// Pop removes and returns the last element, or returns false if the vector is
// empty.
func (v *Vec[T, A, L]) Pop() (T, bool) {
	var zero T
	if v.len == 0 {
		return zero, false
	}

	v.len--
	slot := &v.slots()[v.len]
	value := *slot
	*slot = zero
	return value, true
}

// Insert inserts value at index idx, shifting the elements after it up by
// one.
//
// Panics if idx > v.Len(). If the vector is full, returns a [*CapacityError]
// holding value, and leaves the vector unchanged.
func (v *Vec[T, A, L]) Insert(idx int, value T) error {
	n := v.Len()
	if idx < 0 || idx > n {
		panicIndex("Insert", idx, n)
	}
	if n == v.Cap() {
		return &CapacityError[T]{Element: value}
	}

	s := v.slots()[:n+1]
	copy(s[idx+1:], s[idx:n])
	s[idx] = value
	v.len++
	return nil
}

// Remove removes and returns the element at index idx, shifting the elements
// after it down by one.
//
// Panics if the index is out of range.
func (v *Vec[T, A, L]) Remove(idx int) T {
	n := v.Len()
	if uint(idx) >= uint(n) {
		panicIndex("Remove", idx, n)
	}

	s := v.slots()[:n]
	value := s[idx]
	copy(s[idx:], s[idx+1:])
	clear(s[n-1:])
	v.len--
	return value
}

// SwapRemove removes and returns the element at index idx, replacing it with
// the last element. This does not preserve ordering, but is O(1).
//
// Panics if the index is out of range.
func (v *Vec[T, A, L]) SwapRemove(idx int) T {
	n := v.Len()
	if uint(idx) >= uint(n) {
		panicIndex("SwapRemove", idx, n)
	}

	s := v.slots()[:n]
	value := s[idx]
	s[idx] = s[n-1]
	clear(s[n-1:])
	v.len--
	return value
}

// Truncate shortens the vector to n elements, discarding the rest. Does
// nothing if n >= v.Len().
//
// Panics if n is negative.
func (v *Vec[T, A, L]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("arrayvec: Truncate: negative length %d", n))
	}
	if n >= v.Len() {
		return
	}
	clear(v.slots()[n:v.len])
	v.len = L(n)
}

// Clear removes all elements from the vector.
func (v *Vec[T, A, L]) Clear() {
	v.Truncate(0)
}

// Retain removes every element for which keep returns false, preserving the
// order of the remaining elements.
func (v *Vec[T, A, L]) Retain(keep func(T) bool) {
	kept := slices.DeleteFunc(v.Slice(), func(value T) bool { return !keep(value) })
	v.len = L(len(kept))
}

// Append appends values to the end of the vector.
//
// Either all of the values are appended, or, if they do not all fit, none of
// them are, and a [*CapacityError] holding the first value that would not have
// fit is returned.
func (v *Vec[T, A, L]) Append(values ...T) error {
	if rest := v.Remaining(); len(values) > rest {
		return &CapacityError[T]{Element: values[rest]}
	}
	copy(v.slots()[v.len:], values)
	v.len += L(len(values))
	return nil
}

// Extend appends the values of seq to the end of the vector, until either seq
// is exhausted or the vector is full.
//
// If seq yields a value once the vector is full, stops iterating and returns
// a [*CapacityError] holding that value. The values appended before it remain
// in the vector.
func (v *Vec[T, A, L]) Extend(seq iter.Seq[T]) error {
	for value := range seq {
		if err := v.Push(value); err != nil {
			return err
		}
	}
	return nil
}

// Drain removes the elements in the range [start, end) from the vector, and
// returns an iterator over them.
//
// The elements are removed immediately, whether or not the iterator is used.
// The iterator owns the removed elements, and may be iterated more than once.
//
// Panics if the range is out of bounds.
func (v *Vec[T, A, L]) Drain(start, end int) iter.Seq[T] {
	n := v.Len()
	if start < 0 || end < start || end > n {
		panic(fmt.Sprintf("arrayvec: Drain: slice bounds out of range [%d:%d] with length %d", start, end, n))
	}

	s := v.slots()[:n]
	drained := slices.Clone(s[start:end])

	copy(s[start:], s[end:])
	clear(s[n-(end-start):])
	v.len = L(n - (end - start))

	return slices.Values(drained)
}

// Values returns an iterator over the elements of the vector.
func (v *Vec[T, A, L]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(v.slots()[i]) {
				return
			}
		}
	}
}

// All returns an iterator over the indices and elements of the vector.
func (v *Vec[T, A, L]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.slots()[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over the indices and elements of the vector,
// from last to first.
func (v *Vec[T, A, L]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			// The vector may have shrunk while we were yielding.
			i = min(i, v.Len()-1)
			if i < 0 || !yield(i, v.slots()[i]) {
				return
			}
		}
	}
}

// Clone returns a copy of the vector.
//
// This is equivalent to copying the Vec by assignment.
func (v *Vec[T, A, L]) Clone() Vec[T, A, L] {
	return *v
}

// Array returns the backing array, if the vector is full. Otherwise, returns
// false.
func (v *Vec[T, A, L]) Array() (A, bool) {
	if !v.IsFull() {
		var zero A
		return zero, false
	}
	return v.data, true
}

// Format implements [fmt.Formatter]. A Vec is formatted like a slice of its
// elements.
func (v Vec[T, A, L]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.Slice())
}

// slots returns the entire backing array, including the unused suffix.
func (v *Vec[T, A, L]) slots() []T {
	return unsafex.ArraySlice[T](&v.data, v.data.Cap())
}

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
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/arrayvec/internal/ext/unsafex"
)

// String is a UTF-8 string with a fixed capacity in bytes, stored inline in the
// String value itself.
//
// A String is a [Vec] of bytes whose contents are always valid UTF-8. Every
// method that modifies a String checks capacity and encoding before it writes
// anything: an operation that fails leaves the String exactly as it was.
//
// The zero value is the empty string and ready to use.
type String[A Array[byte, L], L Len] struct {
	buf Vec[byte, A, L]
}

// NewString returns a String containing s.
//
// Returns a [*CapacityError] if s does not fit, or a [*UTF8Error] if s is not
// valid UTF-8.
func NewString[A Array[byte, L], L Len](s string) (String[A, L], error) {
	var str String[A, L]
	if n := validUpTo(s); n < len(s) {
		return str, &UTF8Error{ValidUpTo: n}
	}
	if len(s) > str.Cap() {
		return str, &CapacityError[string]{Element: s}
	}
	str.write(0, s)
	return str, nil
}

// StringFromArray returns a String whose contents are the bytes of array. The
// resulting string is always full.
//
// Returns a [*UTF8Error] if array is not valid UTF-8.
func StringFromArray[A Array[byte, L], L Len](array A) (String[A, L], error) {
	str := String[A, L]{buf: FromArray[byte, A, L](array)}
	if n := validUpTo(unsafex.StringAlias(str.buf.Slice())); n < str.Len() {
		return String[A, L]{}, &UTF8Error{ValidUpTo: n}
	}
	return str, nil
}

// StringFromBytes returns a String whose contents are a copy of b.
//
// Returns an error matching [ErrCapacity] if b does not fit, or a [*UTF8Error]
// if b is not valid UTF-8.
func StringFromBytes[A Array[byte, L], L Len](b []byte) (String[A, L], error) {
	var str String[A, L]
	if n := validUpTo(unsafex.StringAlias(b)); n < len(b) {
		return str, &UTF8Error{ValidUpTo: n}
	}
	if len(b) > str.Cap() {
		return str, errTooLong(len(b), str.Cap())
	}
	_ = str.buf.Append(b...)
	return str, nil
}

// Len returns the length of the string in bytes.
func (s *String[A, L]) Len() int {
	return s.buf.Len()
}

// Cap returns the capacity of the string in bytes.
func (s *String[A, L]) Cap() int {
	return s.buf.Cap()
}

// Remaining returns the number of bytes that can be added before the string
// is full.
func (s *String[A, L]) Remaining() int {
	return s.buf.Remaining()
}

// IsEmpty returns whether the string is empty.
func (s *String[A, L]) IsEmpty() bool {
	return s.buf.IsEmpty()
}

// IsFull returns whether the string is filled to capacity.
func (s *String[A, L]) IsFull() bool {
	return s.buf.IsFull()
}

// String returns a copy of the contents of the string.
func (s String[A, L]) String() string {
	return string(s.buf.Slice())
}

// Format implements [fmt.Formatter]. A String is formatted like a string.
func (s String[A, L]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), s.view())
}

// Equal returns whether the contents of the string are equal to other.
func (s *String[A, L]) Equal(other string) bool {
	return s.view() == other
}

// Compare compares the contents of the string with other, as if by
// [strings.Compare].
func (s *String[A, L]) Compare(other string) int {
	return strings.Compare(s.view(), other)
}

// IsRuneBoundary returns whether idx is the index of the start of a rune, or
// the end of the string.
func (s *String[A, L]) IsRuneBoundary(idx int) bool {
	switch n := s.Len(); {
	case idx == 0 || idx == n:
		return true
	case idx < 0 || idx > n:
		return false
	default:
		return utf8.RuneStart(s.buf.slots()[idx])
	}
}

// PushString appends str to the end of the string.
//
// Panics if str is not valid UTF-8. If str does not fit, returns a
// [*CapacityError] holding str, and leaves the string unchanged.
func (s *String[A, L]) PushString(str string) error {
	return s.InsertString(s.Len(), str)
}

// PushRune appends the UTF-8 encoding of r to the end of the string.
//
// Panics if r is not a valid Unicode scalar value. If r does not fit, returns
// a [*CapacityError] holding r, and leaves the string unchanged.
func (s *String[A, L]) PushRune(r rune) error {
	return s.InsertRune(s.Len(), r)
}

// InsertString inserts str at byte index idx.
//
// Panics if idx is not a rune boundary, or if str is not valid UTF-8. If str
// does not fit, returns a [*CapacityError] holding str, and leaves the string
// unchanged.
func (s *String[A, L]) InsertString(idx int, str string) error {
	s.checkBoundary("InsertString", idx)
	if n := validUpTo(str); n < len(str) {
		panic(fmt.Sprintf("arrayvec: InsertString: invalid UTF-8 after byte %d", n))
	}
	if len(str) > s.Remaining() {
		return &CapacityError[string]{Element: str}
	}
	s.write(idx, str)
	return nil
}

// InsertRune inserts the UTF-8 encoding of r at byte index idx.
//
// Panics if idx is not a rune boundary, or if r is not a valid Unicode scalar
// value. If r does not fit, returns a [*CapacityError] holding r, and leaves
// the string unchanged.
func (s *String[A, L]) InsertRune(idx int, r rune) error {
	s.checkBoundary("InsertRune", idx)
	if !utf8.ValidRune(r) {
		panic(fmt.Sprintf("arrayvec: InsertRune: invalid rune %U", r))
	}

	var encoded [utf8.UTFMax]byte
	n := utf8.EncodeRune(encoded[:], r)
	if n > s.Remaining() {
		return &CapacityError[rune]{Element: r}
	}
	s.write(idx, unsafex.StringAlias(encoded[:n]))
	return nil
}

// PopRune removes and returns the last rune of the string, or returns false if
// the string is empty.
func (s *String[A, L]) PopRune() (rune, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(s.view())
	s.buf.Truncate(s.Len() - size)
	return r, true
}

// RemoveRune removes and returns the rune that starts at byte index idx.
//
// Panics if idx is not a rune boundary, or is the end of the string.
func (s *String[A, L]) RemoveRune(idx int) rune {
	if idx == s.Len() {
		panicIndex("RemoveRune", idx, s.Len())
	}
	s.checkBoundary("RemoveRune", idx)

	r, size := utf8.DecodeRuneInString(s.view()[idx:])
	n := s.Len()
	b := s.buf.slots()[:n]
	copy(b[idx:], b[idx+size:])
	s.buf.Truncate(n - size)
	return r
}

// Truncate shortens the string to n bytes. Does nothing if n >= s.Len().
//
// Panics if n is negative, or if n < s.Len() and n is not a rune boundary.
func (s *String[A, L]) Truncate(n int) {
	if n >= s.Len() {
		return
	}
	s.checkBoundary("Truncate", n)
	s.buf.Truncate(n)
}

// Clear empties the string.
func (s *String[A, L]) Clear() {
	s.buf.Clear()
}

// Runes returns an iterator over the byte offsets and runes of the string,
// like ranging over a string.
func (s *String[A, L]) Runes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i := 0; i < s.Len(); {
			r, size := utf8.DecodeRuneInString(s.view()[i:])
			if !yield(i, r) {
				return
			}
			i += size
		}
	}
}

// view returns the contents of the string without copying them.
//
// The returned string MUST NOT outlive the next modification of s, and must
// not escape into public API.
func (s *String[A, L]) view() string {
	return unsafex.StringAlias(s.buf.Slice())
}

// write inserts str, which must be valid UTF-8 and must fit, at byte index idx.
func (s *String[A, L]) write(idx int, str string) {
	n := s.Len()
	b := s.buf.slots()[:n+len(str)]
	copy(b[idx+len(str):], b[idx:n])
	copy(b[idx:], str)
	s.buf.len += L(len(str))
}

// checkBoundary panics if idx is not a rune boundary.
func (s *String[A, L]) checkBoundary(op string, idx int) {
	if idx < 0 || idx > s.Len() {
		panicIndex(op, idx, s.Len())
	}
	if !s.IsRuneBoundary(idx) {
		panic(fmt.Sprintf("arrayvec: %s: byte index %d is not a rune boundary", op, idx))
	}
}

// validUpTo returns the length of the longest valid UTF-8 prefix of s.
func validUpTo(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(s)
}

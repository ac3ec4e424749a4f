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

// Package wire encodes arrayvec containers in a compact binary format built
// from Protobuf wire-format primitives.
//
// Every container is encoded as a single length-delimited record, exactly as a
// packed repeated field or a bytes field would be encoded in a Protobuf
// message, minus the tag:
//
//   - A Vec of integers is a length prefix followed by one varint per element.
//     Signed integers are zig-zag encoded first.
//   - A Vec of bytes and a String are a length prefix followed by the raw
//     bytes.
//
// Decoding rejects records that hold more elements than the destination can,
// and leaves the destination unchanged on any error.
package wire

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bufbuild/arrayvec"
)

// AppendInts appends the encoding of v to b.
func AppendInts[T constraints.Integer, A arrayvec.Array[T, L], L arrayvec.Len](b []byte, v *arrayvec.Vec[T, A, L]) []byte {
	var size int
	for x := range v.Values() {
		size += protowire.SizeVarint(toVarint(x))
	}

	b = protowire.AppendVarint(b, uint64(size))
	for x := range v.Values() {
		b = protowire.AppendVarint(b, toVarint(x))
	}
	return b
}

// ConsumeInts decodes a record produced by [AppendInts] from the start of b
// into v, replacing its contents. Returns the number of bytes consumed.
func ConsumeInts[T constraints.Integer, A arrayvec.Array[T, L], L arrayvec.Len](b []byte, v *arrayvec.Vec[T, A, L]) (int, error) {
	body, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}

	var out arrayvec.Vec[T, A, L]
	for len(body) > 0 {
		x, m := protowire.ConsumeVarint(body)
		if m < 0 {
			return 0, protowire.ParseError(m)
		}
		body = body[m:]

		value, ok := fromVarint[T](x)
		if !ok {
			var decoded any = x
			if isSigned[T]() {
				decoded = protowire.DecodeZigZag(x)
			}
			return 0, fmt.Errorf("wire: value %d overflows %T", decoded, value)
		}
		if out.Push(value) != nil {
			return 0, tooLong(out.Cap())
		}
	}

	*v = out
	return n, nil
}

// AppendBytes appends the encoding of v to b.
func AppendBytes[A arrayvec.Array[byte, L], L arrayvec.Len](b []byte, v *arrayvec.Vec[byte, A, L]) []byte {
	return protowire.AppendBytes(b, v.Slice())
}

// ConsumeBytes decodes a record produced by [AppendBytes] from the start of b
// into v, replacing its contents. Returns the number of bytes consumed.
func ConsumeBytes[A arrayvec.Array[byte, L], L arrayvec.Len](b []byte, v *arrayvec.Vec[byte, A, L]) (int, error) {
	body, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if len(body) > v.Cap() {
		return 0, tooLong(v.Cap())
	}

	v.Clear()
	_ = v.Append(body...)
	return n, nil
}

// AppendString appends the encoding of s to b.
func AppendString[A arrayvec.Array[byte, L], L arrayvec.Len](b []byte, s *arrayvec.String[A, L]) []byte {
	text, _ := s.MarshalText()
	return protowire.AppendBytes(b, text)
}

// ConsumeString decodes a record produced by [AppendString] from the start of
// b into s, replacing its contents. Returns the number of bytes consumed.
//
// Returns a [*arrayvec.UTF8Error] if the record is not valid UTF-8.
func ConsumeString[A arrayvec.Array[byte, L], L arrayvec.Len](b []byte, s *arrayvec.String[A, L]) (int, error) {
	body, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if len(body) > s.Cap() {
		return 0, tooLong(s.Cap())
	}
	if err := s.UnmarshalText(body); err != nil {
		return 0, err
	}
	return n, nil
}

func tooLong(capacity int) error {
	return fmt.Errorf("wire: record does not fit in capacity %d: %w", capacity, arrayvec.ErrCapacity)
}

// isSigned returns whether T is a signed integer type.
func isSigned[T constraints.Integer]() bool {
	var zero T
	return ^zero < 0
}

// toVarint converts x into the value of its varint encoding.
func toVarint[T constraints.Integer](x T) uint64 {
	if isSigned[T]() {
		return protowire.EncodeZigZag(int64(x))
	}
	return uint64(x)
}

// fromVarint converts a decoded varint back into a T, or returns false if it
// does not fit.
func fromVarint[T constraints.Integer](x uint64) (T, bool) {
	if isSigned[T]() {
		i := protowire.DecodeZigZag(x)
		return T(i), int64(T(i)) == i
	}
	return T(x), uint64(T(x)) == x
}

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

// Package arrayvec provides vectors and strings with a fixed capacity, whose
// elements are stored inline in the container value rather than in a
// separately allocated slice.
//
// A container's capacity is part of its type. Go cannot parameterize a type by
// an integer, so the capacity is carried by a capacity type instead: CapN[T]
// is a named [N]T, and this package defines one for each supported N, from
// [Cap0] through [Cap1048576]. Each capacity type also fixes the type of the
// container's length counter, which is the narrowest unsigned integer that can
// count to N. So:
//
//	Vec[int, Cap4[int], uint8]             // up to 4 ints, 1-byte length
//	Vec[byte, Cap1000[byte], uint16]       // up to 1000 bytes, 2-byte length
//	String[Cap100000[byte], uint32]        // up to 100000 bytes of UTF-8
//
// Naming a counter type that does not match the capacity is a compile error.
// Type inference cannot recover the counter type from the capacity type, so
// generic functions in this package are usually instantiated explicitly:
//
//	v, err := arrayvec.VecOf[int, arrayvec.Cap4[int], uint8](1, 2, 3)
//
// # Errors and panics
//
// Operations that add elements report a full container by returning a
// [*CapacityError], which hands the rejected element back to the caller and
// leaves the container unchanged. Using an index that is out of range, or
// that splits a UTF-8 sequence in a [String], is a programming error and
// panics, as it would for a slice or a string.
//
// # Serialization
//
// [Vec] and [String] implement the JSON, YAML and text marshaling interfaces.
// Decoding a value that has more elements than the destination can hold is an
// error matching [ErrCapacity], and never truncates. Package wire provides a
// compact binary encoding.
package arrayvec

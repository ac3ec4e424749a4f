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
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler   = Vec[int, Cap4[int], uint8]{}
	_ json.Unmarshaler = (*Vec[int, Cap4[int], uint8])(nil)
	_ yaml.Marshaler   = Vec[int, Cap4[int], uint8]{}
	_ yaml.Unmarshaler = (*Vec[int, Cap4[int], uint8])(nil)
)

// MarshalJSON implements [json.Marshaler]. A Vec is encoded as a JSON array.
func (v Vec[T, A, L]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Slice())
}

// UnmarshalJSON implements [json.Unmarshaler].
//
// Returns an error matching [ErrCapacity] if the array has more elements than
// the vector can hold. On error, the vector is left unchanged. Like other
// decoders in the standard library, decoding null does nothing.
func (v *Vec[T, A, L]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	return v.replace(values)
}

// MarshalYAML implements [yaml.Marshaler]. A Vec is encoded as a YAML
// sequence.
func (v Vec[T, A, L]) MarshalYAML() (any, error) {
	return v.Slice(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
//
// Returns an error matching [ErrCapacity] if the sequence has more elements
// than the vector can hold. On error, the vector is left unchanged.
func (v *Vec[T, A, L]) UnmarshalYAML(node *yaml.Node) error {
	switch {
	case node.Kind != yaml.SequenceNode:
		return fmt.Errorf("arrayvec: line %d: cannot decode YAML %s into a vector", node.Line, node.ShortTag())
	case len(node.Content) > v.Cap():
		return errTooLong(len(node.Content), v.Cap())
	}

	var values []T
	if err := node.Decode(&values); err != nil {
		return err
	}
	return v.replace(values)
}

// replace replaces the contents of v with values, or returns an error if there
// are too many of them.
func (v *Vec[T, A, L]) replace(values []T) error {
	if len(values) > v.Cap() {
		return errTooLong(len(values), v.Cap())
	}
	v.Clear()
	return v.Append(values...)
}

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
	"encoding"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler   = String[Cap4[byte], uint8]{}
	_ encoding.TextUnmarshaler = (*String[Cap4[byte], uint8])(nil)
	_ yaml.Marshaler           = String[Cap4[byte], uint8]{}
	_ yaml.Unmarshaler         = (*String[Cap4[byte], uint8])(nil)
)

// MarshalText implements [encoding.TextMarshaler].
//
// This also makes a String encode as a JSON string with [encoding/json].
func (s String[A, L]) MarshalText() ([]byte, error) {
	return s.buf.Slice(), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
//
// Returns an error matching [ErrCapacity] if text does not fit, or a
// [*UTF8Error] if it is not valid UTF-8. On error, the string is left
// unchanged.
func (s *String[A, L]) UnmarshalText(text []byte) error {
	str, err := StringFromBytes[A, L](text)
	if err != nil {
		return err
	}
	*s = str
	return nil
}

// MarshalYAML implements [yaml.Marshaler]. A String is encoded as a YAML
// string.
func (s String[A, L]) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
//
// Returns an error matching [ErrCapacity] if the scalar does not fit. On error,
// the string is left unchanged.
func (s *String[A, L]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("arrayvec: line %d: cannot decode YAML %s into a string", node.Line, node.ShortTag())
	}
	return s.UnmarshalText([]byte(node.Value))
}

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
	"iter"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/arrayvec/internal/ext/iterx"
)

// Graphemes returns an iterator over the extended grapheme clusters of the
// string, i.e., what a user would consider to be its characters.
//
// The iterator captures the contents of the string when iteration begins.
func (s *String[A, L]) Graphemes() iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := s.String()
		state := -1
		for rest != "" {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if !yield(cluster) {
				return
			}
		}
	}
}

// GraphemeCount returns the number of extended grapheme clusters in the
// string.
func (s *String[A, L]) GraphemeCount() int {
	return iterx.Count(s.Graphemes())
}

// Width returns the number of monospace terminal cells the string is expected
// to occupy.
func (s *String[A, L]) Width() int {
	return uniseg.StringWidth(s.view())
}

// PopGrapheme removes and returns the last extended grapheme cluster of the
// string, or returns false if the string is empty.
func (s *String[A, L]) PopGrapheme() (string, bool) {
	var last string
	for cluster := range s.Graphemes() {
		last = cluster
	}
	if last == "" {
		return "", false
	}
	s.buf.Truncate(s.Len() - len(last))
	return last, true
}

// TruncateGraphemes shortens the string to its first n extended grapheme
// clusters. Does nothing if the string has n or fewer of them.
//
// Panics if n is negative.
func (s *String[A, L]) TruncateGraphemes(n int) {
	if n < 0 {
		panic("arrayvec: TruncateGraphemes: negative count")
	}

	var size int
	for cluster := range iterx.Limit(uint(n), s.Graphemes()) {
		size += len(cluster)
	}
	s.buf.Truncate(size)
}

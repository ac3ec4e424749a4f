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

package slicesx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/arrayvec/internal/ext/slicesx"
)

func TestGet(t *testing.T) {
	t.Parallel()

	type p struct {
		v  int
		ok bool
	}
	pack := func(v int, ok bool) p { return p{v, ok} }

	s := []int{1, 2, 3}
	assert.Equal(t, p{1, true}, pack(slicesx.Get(s, 0)))
	assert.Equal(t, p{3, true}, pack(slicesx.Get(s, uint8(2))))
	assert.Equal(t, p{0, false}, pack(slicesx.Get(s, 3)))
	assert.Equal(t, p{0, false}, pack(slicesx.Get(s, -1)))
	assert.Equal(t, p{0, false}, pack(slicesx.Get([]int(nil), 0)))

	assert.Equal(t, p{3, true}, pack(slicesx.Last(s)))
	assert.Equal(t, p{0, false}, pack(slicesx.Last(s[:0])))
}

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

package arrayvec_test

import (
	"fmt"
	"runtime"
	"slices"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/arrayvec"
)

type (
	vec0 = arrayvec.Vec[int, arrayvec.Cap0[int], uint8]
	vec4 = arrayvec.Vec[int, arrayvec.Cap4[int], uint8]
	ptrs = arrayvec.Vec[*int, arrayvec.Cap4[*int], uint8]
)

func vecOf(t *testing.T, values ...int) vec4 {
	t.Helper()
	v, err := arrayvec.VecOf[int, arrayvec.Cap4[int], uint8](values...)
	require.NoError(t, err)
	return v
}

func requireCapacityError[T any](t *testing.T, want T, err error) {
	t.Helper()
	var capErr *arrayvec.CapacityError[T]
	require.ErrorAs(t, err, &capErr)
	require.ErrorIs(t, err, arrayvec.ErrCapacity)
	assert.Equal(t, want, capErr.Element)
}

func TestScenario(t *testing.T) {
	t.Parallel()

	var v vec4
	for i := 1; i <= 4; i++ {
		require.NoError(t, v.Push(i))
	}
	assert.Equal(t, 4, v.Len())
	assert.True(t, v.IsFull())

	requireCapacityError(t, 5, v.Push(5))
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())

	last, ok := v.Pop()
	assert.True(t, ok)
	assert.Equal(t, 4, last)
	assert.Equal(t, 3, v.Len())

	require.NoError(t, v.Insert(1, 9))
	assert.Equal(t, []int{1, 9, 2, 3}, v.Slice())
}

func TestCapacity(t *testing.T) {
	t.Parallel()

	var big arrayvec.Vec[int, arrayvec.Cap1000[int], uint16]
	assert.Equal(t, 1000, big.Cap())
	for i := range 1000 {
		require.NoError(t, big.Push(i))
		assert.Equal(t, i+1, big.Len())
		assert.Equal(t, 999-i, big.Remaining())
	}
	requireCapacityError(t, 1000, big.Push(1000))
	assert.Equal(t, 1000, big.Len())
	assert.Equal(t, 999, big.At(999))

	var empty vec0
	assert.True(t, empty.IsEmpty())
	assert.True(t, empty.IsFull())
	assert.Empty(t, empty.Slice())
	requireCapacityError(t, 1, empty.Push(1))
	_, ok := empty.Pop()
	assert.False(t, ok)
}

func TestCounterWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uintptr(1+200), unsafe.Sizeof(arrayvec.Vec[byte, arrayvec.Cap200[byte], uint8]{}))
	assert.Equal(t, uintptr(2+1000), unsafe.Sizeof(arrayvec.Vec[byte, arrayvec.Cap1000[byte], uint16]{}))
	assert.Equal(t, uintptr(4+100000), unsafe.Sizeof(arrayvec.Vec[byte, arrayvec.Cap100000[byte], uint32]{}))
	assert.Equal(t, uintptr(1+255), unsafe.Sizeof(arrayvec.String[arrayvec.Cap255[byte], uint8]{}))
	assert.Equal(t, uintptr(2+256), unsafe.Sizeof(arrayvec.String[arrayvec.Cap256[byte], uint16]{}))

	tests := []struct {
		capacity, width int
	}{
		{0, 1},
		{4, 1},
		{200, 1},
		{255, 1},
		{256, 2},
		{1000, 2},
		{65535, 2},
		{65536, 4},
		{100000, 4},
		{1<<32 - 1, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.width, arrayvec.CounterWidth(tt.capacity), "capacity %d", tt.capacity)
	}
	assert.Panics(t, func() { arrayvec.CounterWidth(-1) })
	assert.Panics(t, func() { arrayvec.CounterWidth(1 << 32) })
}

func TestPushPop(t *testing.T) {
	t.Parallel()

	for n := range 4 {
		v := vecOf(t, []int{1, 2, 3}[:n]...)
		before := v.Clone()

		require.NoError(t, v.Push(42))
		got, ok := v.Pop()
		assert.True(t, ok)
		assert.Equal(t, 42, got)
		assert.True(t, arrayvec.Equal(&before, &v), "len %d", n)
		assert.Equal(t, before, v)
	}
}

func TestInsertRemove(t *testing.T) {
	t.Parallel()

	for n := range 4 {
		for i := 0; i <= n; i++ {
			v := vecOf(t, []int{1, 2, 3}[:n]...)
			before := v.Clone()

			require.NoError(t, v.Insert(i, 42))
			assert.Equal(t, 42, v.At(i))
			assert.Equal(t, n+1, v.Len())
			assert.Equal(t, 42, v.Remove(i))
			assert.Equal(t, before, v, "len %d, index %d", n, i)
		}
	}

	full := vecOf(t, 1, 2, 3, 4)
	requireCapacityError(t, 0, full.Insert(0, 0))
	assert.Equal(t, []int{1, 2, 3, 4}, full.Slice())

	assert.Panics(t, func() { full.Insert(5, 0) })
	assert.Panics(t, func() { full.Insert(-1, 0) })
	assert.Panics(t, func() { full.Remove(4) })
	assert.Panics(t, func() { full.Remove(-1) })
}

func TestSwapRemove(t *testing.T) {
	t.Parallel()

	v := vecOf(t, 1, 2, 3, 4)
	assert.Equal(t, 2, v.SwapRemove(1))
	assert.Equal(t, []int{1, 4, 3}, v.Slice())
	assert.Equal(t, 3, v.SwapRemove(2))
	assert.Equal(t, []int{1, 4}, v.Slice())
	assert.Panics(t, func() { v.SwapRemove(2) })
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	for k := range 6 {
		once := vecOf(t, 1, 2, 3, 4)
		once.Truncate(k)
		twice := once.Clone()
		twice.Truncate(k)
		assert.Equal(t, once, twice, "truncate %d", k)
		assert.Equal(t, min(k, 4), once.Len())
	}

	v := vecOf(t, 1, 2)
	assert.PanicsWithValue(t, "arrayvec: Truncate: negative length -1", func() { v.Truncate(-1) })

	v.Clear()
	assert.True(t, v.IsEmpty())
}

func TestAccess(t *testing.T) {
	t.Parallel()

	v := vecOf(t, 1, 2, 3)
	assert.Equal(t, 2, v.At(1))
	v.Set(1, 20)
	assert.Equal(t, []int{1, 20, 3}, v.Slice())

	got, ok := v.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 3, got)
	_, ok = v.Get(3)
	assert.False(t, ok)

	got, ok = v.Last()
	assert.True(t, ok)
	assert.Equal(t, 3, got)

	assert.PanicsWithValue(t, "arrayvec: At: index out of range [3] with length 3", func() { v.At(3) })
	assert.Panics(t, func() { v.Set(-1, 0) })

	// Appending to the slice never writes into the vector.
	s := append(v.Slice(), 4)
	s[0] = 100
	assert.Equal(t, []int{1, 20, 3}, v.Slice())
	assert.Equal(t, 0, arrayvec.Slots(&v)[3])
}

func TestAppendExtend(t *testing.T) {
	t.Parallel()

	v := vecOf(t, 1, 2)
	requireCapacityError(t, 5, v.Append(3, 4, 5))
	assert.Equal(t, []int{1, 2}, v.Slice())
	require.NoError(t, v.Append(3, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())

	v = vecOf(t, 1, 2)
	requireCapacityError(t, 5, v.Extend(slices.Values([]int{3, 4, 5, 6})))
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())

	collected, err := arrayvec.Collect[int, arrayvec.Cap4[int], uint8](slices.Values([]int{7, 8}))
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8}, collected.Slice())

	_, err = arrayvec.VecOf[int, arrayvec.Cap4[int], uint8](1, 2, 3, 4, 5)
	requireCapacityError(t, 5, err)
}

func TestRetain(t *testing.T) {
	t.Parallel()

	v := vecOf(t, 1, 2, 3, 4)
	v.Retain(func(x int) bool { return x%2 == 0 })
	assert.Equal(t, []int{2, 4}, v.Slice())
	assert.Equal(t, []int{2, 4, 0, 0}, arrayvec.Slots(&v))
}

func TestDrain(t *testing.T) {
	t.Parallel()

	v := vecOf(t, 1, 2, 3, 4)
	drained := v.Drain(1, 3)
	assert.Equal(t, []int{1, 4}, v.Slice())
	assert.Equal(t, []int{1, 4, 0, 0}, arrayvec.Slots(&v))

	// The drained elements are owned by the iterator.
	require.NoError(t, v.Append(5, 6))
	assert.Equal(t, []int{2, 3}, slices.Collect(drained))
	assert.Equal(t, []int{2, 3}, slices.Collect(drained))

	// Dropping the iterator discards the elements.
	v.Drain(0, v.Len())
	assert.True(t, v.IsEmpty())

	assert.Panics(t, func() { v.Drain(0, 1) })
	assert.Panics(t, func() { v.Drain(1, 0) })
}

func TestDrainAllocation(t *testing.T) {
	// Not parallel, since this measures the heap.

	v := new(arrayvec.Vec[int, arrayvec.Cap1048576[int], uint32])
	require.NoError(t, v.Append(1, 2, 3))

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	drained := v.Drain(1, 2)
	runtime.ReadMemStats(&after)

	// Only the drained element is copied, not a whole backing array.
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
	assert.Equal(t, []int{2}, slices.Collect(drained))
	assert.Equal(t, []int{1, 3}, v.Slice())
}

func TestZeroesVacatedSlots(t *testing.T) {
	t.Parallel()

	x := new(int)
	fill := func() ptrs {
		var v ptrs
		for range 4 {
			require.NoError(t, v.Push(x))
		}
		return v
	}
	vacant := func(v *ptrs) {
		t.Helper()
		for i, p := range arrayvec.Slots(v)[v.Len():] {
			assert.Nil(t, p, "slot %d", v.Len()+i)
		}
	}

	v := fill()
	v.Pop()
	vacant(&v)
	v.Remove(0)
	vacant(&v)
	v.SwapRemove(0)
	vacant(&v)

	v = fill()
	v.Truncate(1)
	vacant(&v)

	v = fill()
	v.Retain(func(*int) bool { return false })
	vacant(&v)
}

func TestIterators(t *testing.T) {
	t.Parallel()

	v := vecOf(t, 1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(v.Values()))

	var indices []int
	for i, x := range v.All() {
		assert.Equal(t, i+1, x)
		indices = append(indices, i)
	}
	assert.Equal(t, []int{0, 1, 2}, indices)

	indices = nil
	for i := range v.Backward() {
		indices = append(indices, i)
	}
	assert.Equal(t, []int{2, 1, 0}, indices)

	for x := range v.Values() {
		if x == 2 {
			break
		}
	}

	// Shrinking the vector during backward iteration does not read past its
	// end.
	indices = nil
	for i := range v.Backward() {
		indices = append(indices, i)
		v.Clear()
	}
	assert.Equal(t, []int{2}, indices)
}

func TestClone(t *testing.T) {
	t.Parallel()

	a := vecOf(t, 1, 2, 3)
	b := a.Clone()
	b.Set(0, 100)
	if diff := cmp.Diff([]int{1, 2, 3}, a.Slice()); diff != "" {
		t.Errorf("original changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{100, 2, 3}, b.Slice()); diff != "" {
		t.Errorf("clone mismatch (-want +got):\n%s", diff)
	}
}

func TestArray(t *testing.T) {
	t.Parallel()

	v := arrayvec.FromArray[int, arrayvec.Cap4[int], uint8](arrayvec.Cap4[int]{1, 2, 3, 4})
	assert.True(t, v.IsFull())
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())

	array, ok := v.Array()
	assert.True(t, ok)
	assert.Equal(t, arrayvec.Cap4[int]{1, 2, 3, 4}, array)
	assert.Equal(t, 4, array.Cap())

	v.Pop()
	_, ok = v.Array()
	assert.False(t, ok)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a := vecOf(t, 1, 2)
	b := vecOf(t, 1, 3)
	c := vecOf(t, 1, 2, 0)

	assert.True(t, arrayvec.Equal(&a, &a))
	assert.False(t, arrayvec.Equal(&a, &b))
	assert.False(t, arrayvec.Equal(&a, &c))
	assert.True(t, arrayvec.EqualFunc(&a, &b, func(x, y int) bool { return x <= y }))

	assert.Equal(t, -1, arrayvec.Compare(&a, &b))
	assert.Equal(t, 1, arrayvec.Compare(&b, &c))
	assert.Equal(t, -1, arrayvec.Compare(&a, &c))
	assert.Equal(t, 0, arrayvec.Compare(&a, &a))
	assert.Equal(t, 0, arrayvec.CompareFunc(&a, &b, func(x, y int) int { return 0 }))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	v := vecOf(t, 10, 11)
	assert.Equal(t, "[10 11]", fmt.Sprint(v))
	assert.Equal(t, "[10 11]", fmt.Sprintf("%v", &v))
	assert.Equal(t, "[a b]", fmt.Sprintf("%x", v))
	assert.Equal(t, "[]", fmt.Sprint(vec4{}))
}

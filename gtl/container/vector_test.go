// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package container_test

import (
	"testing"

	"github.com/kevinic/gtl/gtl/container"
	"github.com/kevinic/gtl/gtl/internal/testutils"
	"github.com/kevinic/gtl/gtl/memory"
	"github.com/kevinic/gtl/gtl/ranges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorGrowth(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	v := container.NewVector[int](memory.NewContext(mem))
	defer v.Release()

	var caps []int
	for i := 0; i < 5; i++ {
		require.NoError(t, v.PushBack(i))
		caps = append(caps, v.Cap())
	}
	assert.Equal(t, []int{1, 2, 4, 4, 8}, caps)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, v.Values())

	require.NoError(t, v.Insert(0, 99))
	assert.Equal(t, []int{99, 0, 1, 2, 3, 4}, v.Values())
	assert.Equal(t, 8, v.Cap())
	assert.Equal(t, 99, v.Front())
	assert.Equal(t, 4, v.Back())
	assert.Equal(t, 8*8, mem.CurrentAlloc())
}

func TestVectorInsert(t *testing.T) {
	tests := []struct {
		name string
		op   func(v *container.Vector[int]) error
		exp  []int
	}{
		{"front", func(v *container.Vector[int]) error { return v.Insert(0, 9) }, []int{9, 1, 2, 3}},
		{"middle", func(v *container.Vector[int]) error { return v.Insert(1, 9) }, []int{1, 9, 2, 3}},
		{"end", func(v *container.Vector[int]) error { return v.Insert(3, 9) }, []int{1, 2, 3, 9}},
		{"fill", func(v *container.Vector[int]) error { return v.InsertN(1, 3, 7) }, []int{1, 7, 7, 7, 2, 3}},
		{"fill none", func(v *container.Vector[int]) error { return v.InsertN(1, 0, 7) }, []int{1, 2, 3}},
		{"slice", func(v *container.Vector[int]) error { return v.InsertSlice(2, []int{8, 9}) }, []int{1, 2, 8, 9, 3}},
		{"self", func(v *container.Vector[int]) error { return v.InsertSlice(0, v.Values()) }, []int{1, 2, 3, 1, 2, 3}},
		{"sized range", func(v *container.Vector[int]) error {
			return v.InsertRange(1, ranges.Reversed([]int{4, 5, 6}))
		}, []int{1, 6, 5, 4, 2, 3}},
		{"unsized range", func(v *container.Vector[int]) error {
			return v.InsertRange(3, ranges.Take[int](ranges.Of([]int{4, 5, 6}), 2))
		}, []int{1, 2, 3, 4, 5}},
		{"emplace", func(v *container.Vector[int]) error {
			return v.Emplace(2, func(p *int) error { *p = 42; return nil })
		}, []int{1, 2, 42, 3}},
	}
	for _, test := range tests {
		for _, spare := range []int{0, 8} {
			t.Run(test.name, func(t *testing.T) {
				mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
				defer mem.AssertSize(t, 0)

				v, err := container.NewVectorCap[int](memory.NewContext(mem), 3+spare)
				require.NoError(t, err)
				defer v.Release()
				require.NoError(t, v.AssignSlice([]int{1, 2, 3}))

				require.NoError(t, test.op(v))
				assert.Equal(t, test.exp, v.Values())
			})
		}
	}
}

func TestVectorEmplaceBack(t *testing.T) {
	v := container.NewVector[string](memory.DefaultContext)
	defer v.Release()

	require.NoError(t, v.EmplaceBack(func(p *string) error { *p = "a"; return nil }))
	require.NoError(t, v.PushBack("b"))
	assert.Equal(t, []string{"a", "b"}, v.Values())
}

func TestVectorFixedPushBack(t *testing.T) {
	v, err := container.NewVectorCap[int](memory.DefaultContext, 2)
	require.NoError(t, err)
	defer v.Release()

	require.NoError(t, v.FixedPushBack(1))
	require.NoError(t, v.FixedEmplaceBack(memory.Emplace[int](memory.Trivial[int]{}, 2)))
	assert.Equal(t, []int{1, 2}, v.Values())
	assert.Equal(t, 2, v.Cap())
}

func TestVectorErase(t *testing.T) {
	lc := testutils.NewTracker[string]()
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	v := container.NewVector[string](memory.NewContext(mem), container.WithLifecycle[string](lc))
	require.NoError(t, v.AssignSlice([]string{"a", "b", "c", "d", "e"}))

	v.Erase(1)
	assert.Equal(t, []string{"a", "c", "d", "e"}, v.Values())
	assert.Equal(t, 1, lc.Destructs)

	v.EraseRange(1, 3)
	assert.Equal(t, []string{"a", "e"}, v.Values())
	assert.Equal(t, 3, lc.Destructs)

	v.EraseRange(1, 1)
	v.PopBack()
	assert.Equal(t, []string{"a"}, v.Values())
	assert.Equal(t, lc.Live(), v.Len())

	capBefore := v.Cap()
	v.Clear()
	assert.True(t, v.Empty())
	assert.Equal(t, capBefore, v.Cap())
	assert.Zero(t, lc.Live())

	v.Release()
	assert.Zero(t, v.Cap())
}

func TestVectorAssign(t *testing.T) {
	tests := []struct {
		name    string
		initial []int
		cap     int
		src     []int
	}{
		{"grow storage", []int{1, 2}, 2, []int{5, 6, 7, 8}},
		{"shrink", []int{1, 2, 3, 4}, 4, []int{5, 6}},
		{"same size", []int{1, 2, 3}, 3, []int{4, 5, 6}},
		{"extend in place", []int{1, 2}, 8, []int{5, 6, 7, 8}},
		{"to empty", []int{1, 2}, 2, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lc := testutils.NewTracker[int]()
			mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
			defer mem.AssertSize(t, 0)

			v, err := container.NewVectorCap[int](memory.NewContext(mem), test.cap, container.WithLifecycle[int](lc))
			require.NoError(t, err)
			defer v.Release()
			require.NoError(t, v.AssignSlice(test.initial))

			require.NoError(t, v.Assign(ranges.Of(test.src)))
			assert.Equal(t, len(test.src), v.Len())
			assert.Equal(t, test.src, append([]int(nil), v.Values()...))
			assert.Equal(t, v.Len(), lc.Live())
			assert.GreaterOrEqual(t, v.Cap(), test.cap)
		})
	}
}

func TestVectorCloneAndAssignFrom(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)
	ctx := memory.NewContext(mem)

	v, err := container.NewVectorSize[int](ctx, 3)
	require.NoError(t, err)
	defer v.Release()
	assert.Equal(t, []int{0, 0, 0}, v.Values())
	v.Set(1, 5)
	*v.Ref(2) = 6

	c, err := v.Clone()
	require.NoError(t, err)
	defer c.Release()
	assert.Equal(t, []int{0, 5, 6}, c.Values())
	c.Set(0, 1)
	assert.Equal(t, 0, v.At(0))

	w := container.NewVector[int](ctx)
	defer w.Release()
	require.NoError(t, w.AssignFrom(c))
	assert.Equal(t, []int{1, 5, 6}, w.Values())
	require.NoError(t, w.AssignFrom(w))
	assert.Equal(t, []int{1, 5, 6}, w.Values())
}

func TestVectorResizeReserve(t *testing.T) {
	lc := testutils.NewTracker[int]()
	v := container.NewVector[int](memory.DefaultContext, container.WithLifecycle[int](lc))
	defer v.Release()

	require.NoError(t, v.Reserve(10))
	assert.Equal(t, 10, v.Cap())
	assert.True(t, v.Empty())
	require.NoError(t, v.Reserve(5))
	assert.Equal(t, 10, v.Cap())

	require.NoError(t, v.Resize(3))
	assert.Equal(t, []int{0, 0, 0}, v.Values())
	require.NoError(t, v.ResizeWith(5, 4))
	assert.Equal(t, []int{0, 0, 0, 4, 4}, v.Values())
	require.NoError(t, v.Resize(2))
	assert.Equal(t, []int{0, 0}, v.Values())
	require.NoError(t, v.ResizeWith(1, 9))
	assert.Equal(t, []int{0}, v.Values())
	assert.Equal(t, 1, lc.Live())
	assert.Equal(t, 10, v.Cap())
}

func TestVectorSwap(t *testing.T) {
	a := memory.NewCheckedAllocator(memory.NewGoAllocator())
	b := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer a.AssertSize(t, 0)
	defer b.AssertSize(t, 0)

	v := container.NewVector[int](memory.NewContext(a))
	w := container.NewVector[int](memory.NewContext(b))
	require.NoError(t, v.AssignSlice([]int{1, 2, 3}))
	require.NoError(t, w.PushBack(9))

	v.Swap(w)
	assert.Equal(t, []int{9}, v.Values())
	assert.Equal(t, []int{1, 2, 3}, w.Values())
	assert.Same(t, b, v.Context().Allocator())

	v.Release()
	w.Release()
}

func TestVectorRanges(t *testing.T) {
	v := container.NewVector[int](memory.DefaultContext)
	defer v.Release()
	require.NoError(t, v.AssignSlice([]int{1, 2, 3}))

	for r := v.All(); !r.Empty(); r.Pop() {
		r.Set(r.Get() * 10)
	}
	assert.Equal(t, []int{10, 20, 30}, v.Values())
	assert.Equal(t, 3, ranges.Count[int](v.All()))
}

func TestVectorPointerElements(t *testing.T) {
	type item struct {
		name string
		next *item
	}
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	v := container.NewVector[item](memory.NewContext(mem))
	for i := 0; i < 100; i++ {
		require.NoError(t, v.PushBack(item{name: string(rune('a' + i%26))}))
	}
	assert.Equal(t, "z", v.At(25).name)
	v.Release()
}

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

package memory_test

import (
	"testing"

	"github.com/kevinic/gtl/gtl/internal/testutils"
	"github.com/kevinic/gtl/gtl/memory"
	"github.com/kevinic/gtl/gtl/ranges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructRangeRollback(t *testing.T) {
	tests := []struct {
		name   string
		failAt int
		panic  bool
	}{
		{"first", 0, false},
		{"middle", 3, false},
		{"last", 5, false},
		{"panic first", 0, true},
		{"panic middle", 2, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lc := testutils.NewTracker[int]()
			lc.Panic = test.panic
			lc.FailAfter(test.failAt)

			dst := make([]int, 6)
			for i := range dst {
				dst[i] = -1
			}
			run := func() error { return memory.FillRange[int](lc, dst, 9) }
			if test.panic {
				assert.PanicsWithValue(t, testutils.ErrInjected, func() { run() })
			} else {
				assert.ErrorIs(t, run(), testutils.ErrInjected)
			}

			assert.Equal(t, test.failAt, lc.Copies)
			assert.Equal(t, test.failAt, lc.Destructs)
			assert.Zero(t, lc.Live())
			for i := 0; i <= test.failAt; i++ {
				assert.Zerof(t, dst[i], "slot %d", i)
			}
		})
	}
}

func TestConstructRange(t *testing.T) {
	lc := testutils.NewTracker[int]()
	dst := []int{4, 4, 4}
	require.NoError(t, memory.ConstructRange[int](lc, dst))
	assert.Equal(t, []int{0, 0, 0}, dst)
	assert.Equal(t, 3, lc.Constructs)

	memory.DestructRange[int](lc, dst)
	assert.Zero(t, lc.Live())
}

func TestCopyRange(t *testing.T) {
	lc := testutils.NewTracker[string]()

	dst := make([]string, 4)
	n, err := memory.CopyRange[string](lc, dst, ranges.Of([]string{"a", "b"}))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a", "b", "", ""}, dst)

	dst = make([]string, 2)
	src := ranges.Of([]string{"x", "y", "z"})
	n, err = memory.CopyRange[string](lc, dst, src)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, src.Empty())
	assert.Equal(t, "z", src.Get())

	lc.FailAfter(1)
	dst = make([]string, 3)
	n, err = memory.CopyRange[string](lc, dst, ranges.Of([]string{"x", "y", "z"}))
	assert.ErrorIs(t, err, testutils.ErrInjected)
	assert.Zero(t, n)
	assert.Equal(t, []string{"", "", ""}, dst)
}

func TestCopySliceAndEmplace(t *testing.T) {
	lc := memory.Trivial[int]{}
	dst := make([]int, 5)
	require.NoError(t, memory.CopySlice[int](lc, dst, []int{1, 2, 3}))
	assert.Equal(t, []int{1, 2, 3, 0, 0}, dst)

	require.NoError(t, memory.EmplaceRange[int](lc, dst, memory.Emplace[int](lc, 7)))
	assert.Equal(t, []int{7, 7, 7, 7, 7}, dst)

	require.NoError(t, memory.EmplaceRange[int](lc, dst[:2], memory.EmplaceDefault[int](lc)))
	assert.Equal(t, []int{0, 0, 7, 7, 7}, dst)
}

func TestContext(t *testing.T) {
	a := memory.NewCheckedAllocator(memory.NewGoAllocator())
	b := memory.NewCheckedAllocator(memory.NewGoAllocator())

	c1, c2, c3 := memory.NewContext(a), memory.NewContext(a), memory.NewContext(b)
	assert.True(t, c1.SameAllocator(c1))
	assert.True(t, c1.SameAllocator(c2))
	assert.False(t, c1.SameAllocator(c3))
	assert.Same(t, a, c1.Allocator())

	buf := c1.Allocate(10)
	assert.Equal(t, 10, a.CurrentAlloc())
	c2.Free(buf)
	a.AssertSize(t, 0)
}

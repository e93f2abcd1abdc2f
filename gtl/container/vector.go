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

package container

import (
	"fmt"

	"github.com/JohnCGriffin/overflow"
	"github.com/kevinic/gtl/gtl"
	"github.com/kevinic/gtl/gtl/internal/debug"
	"github.com/kevinic/gtl/gtl/memory"
	"github.com/kevinic/gtl/gtl/ranges"
	"golang.org/x/exp/slices"
)

// Vector is a dynamic array whose buffer is obtained through a
// memory.Context. Elements [0, Len) are live; [Len, Cap) is reserved but
// unconstructed.
//
// Growth always moves to a new buffer, so pointers returned by Ref and
// slices returned by Values are invalidated by any operation that may grow
// the vector.
type Vector[T any] struct {
	ctx *memory.Context
	lc  memory.Lifecycle[T]
	buf memory.Storage[T]
	n   int
}

// NewVector returns an empty vector with no storage.
func NewVector[T any](ctx *memory.Context, opts ...Option[T]) *Vector[T] {
	cfg := newConfig(opts)
	return &Vector[T]{ctx: ctx, lc: cfg.lc}
}

// NewVectorSize returns a vector of n default constructed elements.
func NewVectorSize[T any](ctx *memory.Context, n int, opts ...Option[T]) (*Vector[T], error) {
	v := NewVector[T](ctx, opts...)
	buf, err := v.allocFilled(n, func(dst []T) error {
		return memory.ConstructRange(v.lc, dst)
	})
	if err != nil {
		return nil, gtl.Raise(err)
	}
	v.buf, v.n = buf, n
	return v, nil
}

// NewVectorCap returns an empty vector with room for n elements.
func NewVectorCap[T any](ctx *memory.Context, n int, opts ...Option[T]) (*Vector[T], error) {
	v := NewVector[T](ctx, opts...)
	buf, err := memory.AllocStorage[T](ctx, n)
	if err != nil {
		return nil, gtl.Raise(err)
	}
	v.buf = buf
	return v, nil
}

// Clone returns a copy of v with the same context and lifecycle, and a
// capacity equal to v's length.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{ctx: v.ctx, lc: v.lc}
	buf, err := v.allocFilled(v.n, func(dst []T) error {
		return memory.CopySlice(v.lc, dst, v.Values())
	})
	if err != nil {
		return nil, gtl.Raise(err)
	}
	out.buf, out.n = buf, v.n
	return out, nil
}

func (v *Vector[T]) Context() *memory.Context { return v.ctx }

func (v *Vector[T]) Len() int    { return v.n }
func (v *Vector[T]) Cap() int    { return v.buf.Cap() }
func (v *Vector[T]) Empty() bool { return v.n == 0 }

func (v *Vector[T]) checkIndex(i int) {
	debug.Assert(i >= 0 && i < v.n, func() string {
		return fmt.Sprintf("container: index %d out of range [0:%d]", i, v.n)
	})
}

func (v *Vector[T]) At(i int) T {
	v.checkIndex(i)
	return v.buf.Slice()[i]
}

func (v *Vector[T]) Ref(i int) *T {
	v.checkIndex(i)
	return &v.buf.Slice()[i]
}

// Set overwrites element i. No lifecycle hook runs.
func (v *Vector[T]) Set(i int, x T) {
	v.checkIndex(i)
	v.buf.Slice()[i] = x
}

func (v *Vector[T]) Front() T { return v.At(0) }
func (v *Vector[T]) Back() T  { return v.At(v.n - 1) }

// Values returns the live elements. The slice aliases the vector.
func (v *Vector[T]) Values() []T { return v.buf.Slice()[:v.n] }

// All returns a mutable range over the live elements.
func (v *Vector[T]) All() ranges.MutableRange[T] { return ranges.Of(v.Values()) }

// grownCap returns the capacity used when k elements must be added and the
// current buffer is too small.
func (v *Vector[T]) grownCap(k int) (int, error) {
	if k == 1 {
		if c, ok := overflow.Mul(2, v.Cap()); ok {
			return max(1, c), nil
		}
	} else if c, ok := overflow.Add(v.n, max(v.n, k)); ok {
		return c, nil
	}
	return 0, gtl.Errorf(gtl.ErrSizeOverflow, "container: cannot grow vector of %d by %d", v.n, k)
}

// allocFilled allocates storage for n elements and runs fill over it. The
// storage is freed again if fill fails or panics.
func (v *Vector[T]) allocFilled(n int, fill func(dst []T) error) (memory.Storage[T], error) {
	buf, err := memory.AllocStorage[T](v.ctx, n)
	if err != nil {
		return memory.Storage[T]{}, err
	}
	ok := false
	defer func() {
		if !ok {
			buf.Free(v.ctx)
		}
	}()
	if err := fill(buf.Slice()); err != nil {
		return memory.Storage[T]{}, err
	}
	ok = true
	return buf, nil
}

// relocate moves the live elements into buf, leaving a gap of k slots at
// pos, and makes buf the vector's buffer. Moving never fails.
func (v *Vector[T]) relocate(buf memory.Storage[T], pos, k int) {
	old := v.Values()
	dst := buf.Slice()
	copy(dst, old[:pos])
	copy(dst[pos+k:], old[pos:])
	clear(old)
	v.buf.Free(v.ctx)
	v.buf = buf
}

// insertWith makes room for k elements at pos and runs fill over exactly
// those k slots. If fill fails the vector is unchanged.
func (v *Vector[T]) insertWith(pos, k int, fill func(dst []T) error) error {
	debug.Assert(pos >= 0 && pos <= v.n, func() string {
		return fmt.Sprintf("container: insert position %d out of range [0:%d]", pos, v.n)
	})
	if k == 0 {
		return nil
	}

	if v.Cap()-v.n >= k {
		data := v.buf.Slice()
		if err := fill(data[v.n : v.n+k]); err != nil {
			return gtl.Raise(err)
		}
		rotateRight(data[pos:v.n+k], k)
		v.n += k
		return nil
	}

	newCap, err := v.grownCap(k)
	if err != nil {
		return gtl.Raise(err)
	}
	newCap = max(newCap, v.n+k)
	buf, err := v.allocFilled(newCap, func(dst []T) error {
		return fill(dst[pos : pos+k])
	})
	if err != nil {
		return gtl.Raise(err)
	}
	debug.Log(fmt.Sprintf("container: vector grow %d -> %d (len %d)", v.Cap(), newCap, v.n+k))
	v.relocate(buf, pos, k)
	v.n += k
	return nil
}

func rotateRight[T any](s []T, k int) {
	if k == 0 || k == len(s) {
		return
	}
	slices.Reverse(s)
	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
}

func (v *Vector[T]) PushBack(x T) error { return v.Insert(v.n, x) }

// EmplaceBack appends an element constructed in place by fn.
func (v *Vector[T]) EmplaceBack(fn memory.Emplacer[T]) error { return v.Emplace(v.n, fn) }

// FixedPushBack appends x without ever growing. The vector must have spare
// capacity.
func (v *Vector[T]) FixedPushBack(x T) error {
	return v.FixedEmplaceBack(memory.Emplace(v.lc, x))
}

// FixedEmplaceBack is the in-place form of FixedPushBack.
func (v *Vector[T]) FixedEmplaceBack(fn memory.Emplacer[T]) error {
	debug.Assert(v.n < v.Cap(), "container: fixed push on a full vector")
	if err := memory.EmplaceRange(v.lc, v.buf.Slice()[v.n:v.n+1], fn); err != nil {
		return gtl.Raise(err)
	}
	v.n++
	return nil
}

// Insert inserts a copy of x before position pos.
func (v *Vector[T]) Insert(pos int, x T) error {
	return v.Emplace(pos, memory.Emplace(v.lc, x))
}

// Emplace inserts an element constructed in place by fn before pos.
func (v *Vector[T]) Emplace(pos int, fn memory.Emplacer[T]) error {
	return v.insertWith(pos, 1, func(dst []T) error {
		return memory.EmplaceRange(v.lc, dst, fn)
	})
}

// InsertN inserts k copies of x before pos.
func (v *Vector[T]) InsertN(pos, k int, x T) error {
	debug.Assert(k >= 0, "container: negative insert count")
	return v.insertWith(pos, k, func(dst []T) error {
		return memory.FillRange(v.lc, dst, x)
	})
}

// InsertSlice inserts copies of the elements of s before pos. s may alias
// the vector.
func (v *Vector[T]) InsertSlice(pos int, s []T) error {
	return v.insertWith(pos, len(s), func(dst []T) error {
		return memory.CopySlice(v.lc, dst, s)
	})
}

// InsertRange inserts copies of the elements of r before pos. Ranges that
// do not report their length are drained into a temporary slice first.
func (v *Vector[T]) InsertRange(pos int, r ranges.Range[T]) error {
	switch r := r.(type) {
	case *ranges.SliceRange[T]:
		return v.InsertSlice(pos, r.Slice())
	case ranges.Sized:
		k := r.Len()
		return v.insertWith(pos, k, func(dst []T) error {
			_, err := memory.CopyRange(v.lc, dst, r.(ranges.Range[T]))
			return err
		})
	default:
		return v.InsertSlice(pos, ranges.Collect(r))
	}
}

// AssignSlice replaces the contents of v with copies of s.
func (v *Vector[T]) AssignSlice(s []T) error {
	m := len(s)
	data := v.buf.Slice()
	switch {
	case m > v.Cap():
		buf, err := v.allocFilled(m, func(dst []T) error {
			return memory.CopySlice(v.lc, dst, s)
		})
		if err != nil {
			return gtl.Raise(err)
		}
		memory.DestructRange(v.lc, v.Values())
		v.buf.Free(v.ctx)
		v.buf = buf
	case m <= v.n:
		copy(data, s)
		memory.DestructRange(v.lc, data[m:v.n])
	default:
		if err := memory.CopySlice(v.lc, data[v.n:m], s[v.n:]); err != nil {
			return gtl.Raise(err)
		}
		copy(data, s[:v.n])
	}
	v.n = m
	return nil
}

// Assign replaces the contents of v with copies of the elements of r.
func (v *Vector[T]) Assign(r ranges.Range[T]) error {
	if sr, ok := r.(*ranges.SliceRange[T]); ok {
		return v.AssignSlice(sr.Slice())
	}
	return v.AssignSlice(ranges.Collect(r))
}

// AssignFrom makes v a copy of o.
func (v *Vector[T]) AssignFrom(o *Vector[T]) error {
	if v == o {
		return nil
	}
	return v.AssignSlice(o.Values())
}

// Reserve makes room for at least k elements.
func (v *Vector[T]) Reserve(k int) error {
	if k <= v.Cap() {
		return nil
	}
	buf, err := memory.AllocStorage[T](v.ctx, k)
	if err != nil {
		return gtl.Raise(err)
	}
	v.relocate(buf, v.n, 0)
	return nil
}

// Resize sets the length to k, default constructing new elements or
// destructing surplus ones.
func (v *Vector[T]) Resize(k int) error {
	if k <= v.n {
		v.EraseRange(k, v.n)
		return nil
	}
	return v.insertWith(v.n, k-v.n, func(dst []T) error {
		return memory.ConstructRange(v.lc, dst)
	})
}

// ResizeWith is Resize with new elements copied from x.
func (v *Vector[T]) ResizeWith(k int, x T) error {
	if k <= v.n {
		v.EraseRange(k, v.n)
		return nil
	}
	return v.InsertN(v.n, k-v.n, x)
}

// PopBack destructs the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	debug.Assert(v.n > 0, "container: pop from an empty vector")
	v.n--
	v.lc.Destruct(&v.buf.Slice()[v.n])
}

// Erase removes the element at pos.
func (v *Vector[T]) Erase(pos int) { v.EraseRange(pos, pos+1) }

// EraseRange removes the elements [first, last).
func (v *Vector[T]) EraseRange(first, last int) {
	debug.Assert(first >= 0 && first <= last && last <= v.n, func() string {
		return fmt.Sprintf("container: erase range [%d:%d] out of range [0:%d]", first, last, v.n)
	})
	if first == last {
		return
	}
	data := v.buf.Slice()
	memory.DestructRange(v.lc, data[first:last])
	copy(data[first:], data[last:v.n])
	k := last - first
	clear(data[v.n-k : v.n])
	v.n -= k
}

// Clear destructs every element and keeps the buffer.
func (v *Vector[T]) Clear() {
	memory.DestructRange(v.lc, v.Values())
	v.n = 0
}

// Swap exchanges the contents of v and o, including their contexts.
func (v *Vector[T]) Swap(o *Vector[T]) { *v, *o = *o, *v }

// Release destructs every element and returns the buffer to the allocator.
func (v *Vector[T]) Release() {
	v.Clear()
	v.buf.Free(v.ctx)
}

var _ ranges.Sized = (*Vector[int])(nil)

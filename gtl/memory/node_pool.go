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

package memory

import (
	"unsafe"

	"github.com/kevinic/gtl/gtl/internal/debug"
	"github.com/kevinic/gtl/gtl/ranges"
)

// NodePoolOption configures a NodePool.
type NodePoolOption[T any] func(*NodePool[T])

// WithLifecycle sets the Lifecycle used to construct and destruct pool
// objects. The default is Trivial.
func WithLifecycle[T any](lc Lifecycle[T]) NodePoolOption[T] {
	return func(p *NodePool[T]) { p.lc = lc }
}

// NodePool is a Pool of T that also constructs and destructs the objects it
// hands out and counts how many are live.
type NodePool[T any] struct {
	pool   *Pool
	lc     Lifecycle[T]
	shadow []T
	live   int
}

// NewNodePool creates a pool of count objects of T.
func NewNodePool[T any](ctx *Context, count int, opts ...NodePoolOption[T]) *NodePool[T] {
	var zero T
	p := &NodePool[T]{
		pool: NewPool(ctx, int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)), count),
		lc:   Trivial[T]{},
	}
	for _, o := range opts {
		o(p)
	}
	if hasPointers[T]() {
		p.shadow = make([]T, count)
	}
	return p
}

// Allocate returns uninitialized (zeroed) storage for one T.
func (p *NodePool[T]) Allocate() *T {
	if p.shadow == nil {
		return (*T)(unsafe.Pointer(unsafe.SliceData(p.pool.Allocate())))
	}
	return &p.shadow[p.pool.allocIndex()]
}

// Deallocate returns storage obtained from Allocate without destructing it.
func (p *NodePool[T]) Deallocate(x *T) {
	if p.shadow == nil {
		p.pool.freeIndex(p.pool.indexOf(uintptr(unsafe.Pointer(x))))
		return
	}
	i := p.shadowIndex(x)
	var zero T
	p.shadow[i] = zero
	p.pool.freeIndex(i)
}

func (p *NodePool[T]) shadowIndex(x *T) int {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(p.shadow)))
	addr := uintptr(unsafe.Pointer(x))
	sz := unsafe.Sizeof(*x)
	debug.Assert(len(p.shadow) > 0 && addr >= base && addr < base+uintptr(len(p.shadow))*sz,
		"memory: object does not belong to this pool")
	return int((addr - base) / sz)
}

// OffsetOf returns the zero based slot index of x.
func (p *NodePool[T]) OffsetOf(x *T) int {
	if p.shadow == nil {
		return p.pool.indexOf(uintptr(unsafe.Pointer(x)))
	}
	return p.shadowIndex(x)
}

// Create allocates and default constructs a T.
func (p *NodePool[T]) Create() (*T, error) { return p.CreateWith(p.lc.Construct) }

// CreateCopy allocates a T and copy constructs it from x.
func (p *NodePool[T]) CreateCopy(x T) (*T, error) { return p.CreateWith(Emplace(p.lc, x)) }

// CreateWith allocates a T and constructs it with fn. The slot goes back to
// the pool if fn fails or panics.
func (p *NodePool[T]) CreateWith(fn Emplacer[T]) (*T, error) {
	x := p.Allocate()
	ok := false
	defer func() {
		if !ok {
			p.Deallocate(x)
		}
	}()
	if err := fn(x); err != nil {
		return nil, err
	}
	ok = true
	p.live++
	return x, nil
}

// Destroy destructs x and returns its slot.
func (p *NodePool[T]) Destroy(x *T) {
	p.lc.Destruct(x)
	p.Deallocate(x)
	p.live--
}

// DestroyRange destroys every object produced by r.
func (p *NodePool[T]) DestroyRange(r ranges.Range[*T]) {
	for !r.Empty() {
		x := r.Get()
		r.Pop()
		p.Destroy(x)
	}
}

// Empty reports whether the pool has no free slot left.
func (p *NodePool[T]) Empty() bool { return p.pool.Empty() }

// Outstanding returns the number of constructed objects not yet destroyed.
func (p *NodePool[T]) Outstanding() int { return p.live }

func (p *NodePool[T]) Cap() int { return p.pool.Cap() }

// LinkSize returns the slot stride of the underlying Pool.
func (p *NodePool[T]) LinkSize() int { return p.pool.LinkSize() }

// Release returns the pool memory. Every object must have been destroyed.
func (p *NodePool[T]) Release() {
	debug.Assert(p.live == 0, func() string {
		return "memory: node pool released with live objects"
	})
	p.pool.Release()
	p.shadow = nil
}

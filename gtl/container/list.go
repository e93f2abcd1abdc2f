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
	"github.com/kevinic/gtl/gtl"
	"github.com/kevinic/gtl/gtl/internal/debug"
	"github.com/kevinic/gtl/gtl/memory"
	"github.com/kevinic/gtl/gtl/ranges"
)

// Element is a node of a List. Each element is allocated through the
// list's context.
type Element[T any] struct {
	links[Element[T]]
	box memory.Box[Element[T]]

	Value T
}

func (e *Element[T]) hook() *links[Element[T]] { return &e.links }

// Next returns the following position, which is the list's End after the
// last element.
func (e *Element[T]) Next() *Element[T] { return e.next }

// Prev returns the preceding position, which is the list's End before the
// first element.
func (e *Element[T]) Prev() *Element[T] { return e.prev }

// List is a circular doubly linked list that owns its elements. The zero
// value is not usable; create lists with NewList and do not copy them.
type List[T any] struct {
	ctx  *memory.Context
	lc   memory.Lifecycle[T]
	root Element[T]
}

func NewList[T any](ctx *memory.Context, opts ...Option[T]) *List[T] {
	cfg := newConfig(opts)
	l := &List[T]{ctx: ctx, lc: cfg.lc}
	initRing(&l.root)
	return l
}

func (l *List[T]) Context() *memory.Context { return l.ctx }

func (l *List[T]) Empty() bool { return ringEmpty(&l.root) }

// Len walks the list; it is O(n).
func (l *List[T]) Len() int { return ringLen(&l.root) }

// Begin returns the first element, or End if the list is empty.
func (l *List[T]) Begin() *Element[T] { return l.root.next }

// End returns the sentinel position one past the last element. Its Value
// is meaningless.
func (l *List[T]) End() *Element[T] { return &l.root }

func (l *List[T]) Front() T {
	debug.Assert(!l.Empty(), "container: front of an empty list")
	return l.root.next.Value
}

func (l *List[T]) Back() T {
	debug.Assert(!l.Empty(), "container: back of an empty list")
	return l.root.prev.Value
}

func (l *List[T]) newElement(fn memory.Emplacer[T]) (*Element[T], error) {
	box, err := memory.Create[Element[T]](l.ctx, func(e *Element[T]) error {
		return fn(&e.Value)
	})
	if err != nil {
		return nil, err
	}
	e := box.Ptr()
	e.box = box
	return e, nil
}

func (l *List[T]) freeElement(e *Element[T]) {
	l.lc.Destruct(&e.Value)
	e.next, e.prev = nil, nil
	box := e.box
	e.box = memory.Box[Element[T]]{}
	memory.Dealloc(l.ctx, box)
}

// Emplace inserts an element constructed by fn in front of pos and returns
// it.
func (l *List[T]) Emplace(pos *Element[T], fn memory.Emplacer[T]) (*Element[T], error) {
	e, err := l.newElement(fn)
	if err != nil {
		return nil, gtl.Raise(err)
	}
	linkBefore(pos, e, e)
	return e, nil
}

// Insert inserts a copy of x in front of pos and returns it.
func (l *List[T]) Insert(pos *Element[T], x T) (*Element[T], error) {
	return l.Emplace(pos, memory.Emplace(l.lc, x))
}

func (l *List[T]) PushFront(x T) (*Element[T], error) { return l.Insert(l.Begin(), x) }
func (l *List[T]) PushBack(x T) (*Element[T], error)  { return l.Insert(l.End(), x) }

func (l *List[T]) EmplaceFront(fn memory.Emplacer[T]) (*Element[T], error) {
	return l.Emplace(l.Begin(), fn)
}

func (l *List[T]) EmplaceBack(fn memory.Emplacer[T]) (*Element[T], error) {
	return l.Emplace(l.End(), fn)
}

// InsertRange inserts copies of the elements of r in front of pos and
// returns the first inserted element, or pos if r is empty. The elements
// are built on a detached ring first, so the list is unchanged if a
// construction fails.
func (l *List[T]) InsertRange(pos *Element[T], r ranges.Range[T]) (*Element[T], error) {
	var pending Element[T]
	initRing(&pending)

	ok := false
	defer func() {
		if ok {
			return
		}
		for e := pending.prev; e != &pending; {
			prev := e.prev
			l.freeElement(e)
			e = prev
		}
	}()

	for ; !r.Empty(); r.Pop() {
		e, err := l.newElement(memory.Emplace(l.lc, r.Get()))
		if err != nil {
			return nil, gtl.Raise(err)
		}
		linkBefore(&pending, e, e)
	}
	ok = true

	if ringEmpty(&pending) {
		return pos, nil
	}
	first := pending.next
	transfer(pos, pending.next, &pending)
	return first, nil
}

// Erase removes pos and returns the element that followed it.
func (l *List[T]) Erase(pos *Element[T]) *Element[T] {
	debug.Assert(pos != &l.root, "container: erase of the end position")
	next := pos.next
	unlink(pos, pos)
	l.freeElement(pos)
	return next
}

// EraseRange removes [first, last) and returns last.
func (l *List[T]) EraseRange(first, last *Element[T]) *Element[T] {
	for first != last {
		first = l.Erase(first)
	}
	return last
}

func (l *List[T]) PopFront() {
	debug.Assert(!l.Empty(), "container: pop from an empty list")
	l.Erase(l.root.next)
}

func (l *List[T]) PopBack() {
	debug.Assert(!l.Empty(), "container: pop from an empty list")
	l.Erase(l.root.prev)
}

// Clear destroys every element.
func (l *List[T]) Clear() {
	for e := l.root.next; e != &l.root; {
		next := e.next
		l.freeElement(e)
		e = next
	}
	initRing(&l.root)
}

// Release destroys every element. The list stays usable.
func (l *List[T]) Release() { l.Clear() }

// Swap exchanges the elements of l and o together with their contexts and
// lifecycles.
func (l *List[T]) Swap(o *List[T]) {
	if l == o {
		return
	}
	swapRings(&l.root, &o.root)
	l.ctx, o.ctx = o.ctx, l.ctx
	l.lc, o.lc = o.lc, l.lc
}

func (l *List[T]) checkTransfer(o *List[T]) error {
	if l == o || l.ctx.SameAllocator(o.ctx) {
		return nil
	}
	debug.Log("container: rejected splice between lists with different allocators")
	return gtl.Raise(gtl.Errorf(gtl.ErrForeignAllocator,
		"container: splice from a list bound to %T", o.ctx.Allocator()))
}

// Splice moves every element of o in front of pos. The lists must share an
// allocator.
func (l *List[T]) Splice(pos *Element[T], o *List[T]) error {
	if err := l.checkTransfer(o); err != nil {
		return err
	}
	transfer(pos, o.root.next, &o.root)
	return nil
}

// SpliceOne moves e from o in front of pos.
func (l *List[T]) SpliceOne(pos *Element[T], o *List[T], e *Element[T]) error {
	if err := l.checkTransfer(o); err != nil {
		return err
	}
	if pos == e || pos == e.next {
		return nil
	}
	transfer(pos, e, e.next)
	return nil
}

// SpliceRange moves [first, last) from o in front of pos. pos must not lie
// in [first, last).
func (l *List[T]) SpliceRange(pos *Element[T], o *List[T], first, last *Element[T]) error {
	if err := l.checkTransfer(o); err != nil {
		return err
	}
	transfer(pos, first, last)
	return nil
}

type listRange[T any] struct {
	cur, end *Element[T]
	back     bool
}

func (r *listRange[T]) Empty() bool { return r.cur == r.end }

func (r *listRange[T]) Pop() {
	if r.back {
		r.cur = r.cur.prev
	} else {
		r.cur = r.cur.next
	}
}

func (r *listRange[T]) Get() T  { return r.cur.Value }
func (r *listRange[T]) Set(v T) { r.cur.Value = v }
func (r *listRange[T]) Ref() *T { return &r.cur.Value }

// All returns a mutable range from front to back.
func (l *List[T]) All() ranges.MutableRange[T] {
	return &listRange[T]{cur: l.root.next, end: &l.root}
}

// Reverse returns a mutable range from back to front.
func (l *List[T]) Reverse() ranges.MutableRange[T] {
	return &listRange[T]{cur: l.root.prev, end: &l.root, back: true}
}

// Between returns a mutable range over [first, last).
func (l *List[T]) Between(first, last *Element[T]) ranges.MutableRange[T] {
	return &listRange[T]{cur: first, end: last}
}

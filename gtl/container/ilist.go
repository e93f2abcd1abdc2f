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
	"github.com/kevinic/gtl/gtl/internal/debug"
	"github.com/kevinic/gtl/gtl/ranges"
)

// Hook links a caller owned T into an IList. A T that belongs to several
// lists at once embeds one Hook per list, told apart by Tag.
type Hook[T, Tag any] struct {
	links[Hook[T, Tag]]
	owner *T
}

func (h *Hook[T, Tag]) hook() *links[Hook[T, Tag]] { return &h.links }

func (h *Hook[T, Tag]) Next() *Hook[T, Tag] { return h.next }
func (h *Hook[T, Tag]) Prev() *Hook[T, Tag] { return h.prev }

// Owner returns the object the hook is embedded in, or nil for a list's
// End position.
func (h *Hook[T, Tag]) Owner() *T { return h.owner }

// Linked reports whether the hook is in a list. A hook whose list was
// cleared still reports true until it is inserted again.
func (h *Hook[T, Tag]) Linked() bool { return h.next != nil }

// IList is an intrusive circular doubly linked list. It links objects it
// does not own and never allocates, so splices between any two ILists of
// the same type are always allowed.
type IList[T, Tag any] struct {
	root   Hook[T, Tag]
	hookOf func(*T) *Hook[T, Tag]
}

// NewIList returns an empty list that reaches the hook of an object
// through hookOf.
func NewIList[T, Tag any](hookOf func(*T) *Hook[T, Tag]) *IList[T, Tag] {
	l := &IList[T, Tag]{hookOf: hookOf}
	initRing(&l.root)
	return l
}

func (l *IList[T, Tag]) Empty() bool { return ringEmpty(&l.root) }

// Len walks the list; it is O(n).
func (l *IList[T, Tag]) Len() int { return ringLen(&l.root) }

func (l *IList[T, Tag]) Begin() *Hook[T, Tag] { return l.root.next }
func (l *IList[T, Tag]) End() *Hook[T, Tag]   { return &l.root }

func (l *IList[T, Tag]) Front() *T {
	debug.Assert(!l.Empty(), "container: front of an empty list")
	return l.root.next.owner
}

func (l *IList[T, Tag]) Back() *T {
	debug.Assert(!l.Empty(), "container: back of an empty list")
	return l.root.prev.owner
}

// Iterator returns the position of x in this list's role.
func (l *IList[T, Tag]) Iterator(x *T) *Hook[T, Tag] { return l.hookOf(x) }

// Insert links x in front of pos and returns its position. x must not
// currently be a member of a list in this role.
func (l *IList[T, Tag]) Insert(pos *Hook[T, Tag], x *T) *Hook[T, Tag] {
	h := l.hookOf(x)
	h.owner = x
	linkBefore(pos, h, h)
	return h
}

func (l *IList[T, Tag]) PushFront(x *T) *Hook[T, Tag] { return l.Insert(l.Begin(), x) }
func (l *IList[T, Tag]) PushBack(x *T) *Hook[T, Tag]  { return l.Insert(l.End(), x) }

// Erase unlinks pos and returns the position that followed it.
func (l *IList[T, Tag]) Erase(pos *Hook[T, Tag]) *Hook[T, Tag] {
	debug.Assert(pos != &l.root, "container: erase of the end position")
	next := pos.next
	unlink(pos, pos)
	pos.next, pos.prev = nil, nil
	return next
}

// EraseRange unlinks [first, last) and returns last.
func (l *IList[T, Tag]) EraseRange(first, last *Hook[T, Tag]) *Hook[T, Tag] {
	for first != last {
		first = l.Erase(first)
	}
	return last
}

func (l *IList[T, Tag]) PopFront() *T {
	debug.Assert(!l.Empty(), "container: pop from an empty list")
	x := l.root.next.owner
	l.Erase(l.root.next)
	return x
}

func (l *IList[T, Tag]) PopBack() *T {
	debug.Assert(!l.Empty(), "container: pop from an empty list")
	x := l.root.prev.owner
	l.Erase(l.root.prev)
	return x
}

// Clear forgets every member in O(1). The members' hooks are left as they
// were; see Hook.Linked.
func (l *IList[T, Tag]) Clear() { initRing(&l.root) }

func (l *IList[T, Tag]) Swap(o *IList[T, Tag]) {
	if l == o {
		return
	}
	swapRings(&l.root, &o.root)
}

// Splice moves every member of o in front of pos.
func (l *IList[T, Tag]) Splice(pos *Hook[T, Tag], o *IList[T, Tag]) {
	transfer(pos, o.root.next, &o.root)
}

// SpliceOne moves h from o in front of pos.
func (l *IList[T, Tag]) SpliceOne(pos *Hook[T, Tag], o *IList[T, Tag], h *Hook[T, Tag]) {
	if pos == h || pos == h.next {
		return
	}
	transfer(pos, h, h.next)
}

// SpliceRange moves [first, last) from o in front of pos.
func (l *IList[T, Tag]) SpliceRange(pos *Hook[T, Tag], o *IList[T, Tag], first, last *Hook[T, Tag]) {
	transfer(pos, first, last)
}

type ilistRange[T, Tag any] struct {
	cur, end *Hook[T, Tag]
	back     bool
}

func (r *ilistRange[T, Tag]) Empty() bool { return r.cur == r.end }
func (r *ilistRange[T, Tag]) Get() *T     { return r.cur.owner }

func (r *ilistRange[T, Tag]) Pop() {
	if r.back {
		r.cur = r.cur.prev
	} else {
		r.cur = r.cur.next
	}
}

// All returns the members from front to back.
func (l *IList[T, Tag]) All() ranges.Range[*T] {
	return &ilistRange[T, Tag]{cur: l.root.next, end: &l.root}
}

// Reverse returns the members from back to front.
func (l *IList[T, Tag]) Reverse() ranges.Range[*T] {
	return &ilistRange[T, Tag]{cur: l.root.prev, end: &l.root, back: true}
}

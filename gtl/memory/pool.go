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
	"fmt"
	"unsafe"

	"github.com/JohnCGriffin/overflow"
	"github.com/kevinic/gtl/gtl"
	"github.com/kevinic/gtl/gtl/internal/debug"
)

const (
	ptrSize  = int(unsafe.Sizeof(uintptr(0)))
	ptrAlign = int(unsafe.Alignof(uintptr(0)))

	// noSlot terminates the free list.
	noSlot = -1
)

// Pool hands out fixed-size slots carved from a single block obtained at
// construction. Free slots form an intrusive singly linked list: the first
// bytes of each free slot hold the index of the next one. Pools never grow;
// sizing is the caller's decision.
//
// Allocating from an empty pool, or returning a slot that does not belong
// to the pool, is a programmer error checked only in assert builds.
type Pool struct {
	ctx   *Context
	block []byte
	slots []byte

	elemSize int
	linkSize int
	count    int

	head  int
	nfree int
}

// NewPool creates a pool of count slots, each able to hold elemSize bytes
// aligned to elemAlign. elemAlign must be a power of two.
//
// NewPool panics with ErrSizeOverflow if the pool size does not fit in an
// int.
func NewPool(ctx *Context, elemSize, elemAlign, count int) *Pool {
	debug.Assert(elemSize >= 0 && count >= 0, "memory: negative pool geometry")
	debug.Assert(isPowerOf2(elemAlign), "memory: pool alignment must be a power of two")

	linkAlign := lcm(elemAlign, ptrAlign)
	linkSize := roundUp(max(elemSize, ptrSize), linkAlign)

	p := &Pool{
		ctx:      ctx,
		elemSize: elemSize,
		linkSize: linkSize,
		count:    count,
		head:     noSlot,
	}
	if count == 0 {
		return p
	}

	total, ok := overflow.Mul(linkSize, count)
	slack := 0
	if linkAlign > MaxAlign {
		slack = linkAlign - MaxAlign
	}
	if ok {
		_, ok = overflow.Add(total, slack)
	}
	if !ok {
		panic(gtl.Errorf(gtl.ErrSizeOverflow, "memory: pool of %d slots of %d bytes", count, linkSize))
	}

	p.block = ctx.Allocate(total + slack)
	addr := int(addressOf(p.block))
	off := roundToPowerOf2(addr, linkAlign) - addr
	p.slots = p.block[off : off+total : off+total]
	debug.Assert(isMultipleOfPowerOf2(int(addressOf(p.slots)), linkAlign), "memory: misaligned pool block")

	// pushed high to low so the first Allocate returns slot 0
	for i := count - 1; i >= 0; i-- {
		p.setNext(i, p.head)
		p.head = i
	}
	p.nfree = count

	debug.Log(fmt.Sprintf("memory: pool elem=%d align=%d link=%d count=%d slack=%d", elemSize, elemAlign, linkSize, count, slack))
	return p
}

func (p *Pool) link(i int) *int {
	return (*int)(unsafe.Pointer(&p.slots[i*p.linkSize]))
}

func (p *Pool) setNext(i, next int) { *p.link(i) = next }

func (p *Pool) slotAt(i int) []byte {
	off := i * p.linkSize
	return p.slots[off : off+p.elemSize : off+p.linkSize]
}

func (p *Pool) indexOf(addr uintptr) int {
	base := addressOf(p.slots)
	debug.Assert(len(p.slots) > 0 && addr >= base && addr < base+uintptr(len(p.slots)),
		"memory: address does not belong to this pool")
	diff := int(addr - base)
	debug.Assert(diff%p.linkSize == 0, "memory: address is not slot aligned")
	return diff / p.linkSize
}

func (p *Pool) allocIndex() int {
	debug.Assert(p.head != noSlot, "memory: allocate from an empty pool")
	i := p.head
	p.head = *p.link(i)
	p.nfree--
	return i
}

func (p *Pool) freeIndex(i int) {
	p.setNext(i, p.head)
	p.head = i
	p.nfree++
}

// Allocate pops a slot off the free list. The returned slice has length
// elemSize and zeroed contents. The pool must not be empty.
func (p *Pool) Allocate() []byte {
	i := p.allocIndex()
	off := i * p.linkSize
	clear(p.slots[off : off+p.linkSize])
	return p.slotAt(i)
}

// Deallocate returns a slot obtained from Allocate.
func (p *Pool) Deallocate(b []byte) {
	p.freeIndex(p.indexOf(addressOf(b)))
}

// Empty reports whether every slot is allocated.
func (p *Pool) Empty() bool { return p.head == noSlot }

// OffsetOf returns the zero based slot index of b.
func (p *Pool) OffsetOf(b []byte) int { return p.indexOf(addressOf(b)) }

// Len returns the number of free slots.
func (p *Pool) Len() int { return p.nfree }

func (p *Pool) Cap() int { return p.count }

func (p *Pool) Outstanding() int { return p.count - p.nfree }

// LinkSize returns the stride between slots.
func (p *Pool) LinkSize() int { return p.linkSize }

// Release returns the pool block to its allocator. Outstanding slots become
// invalid.
func (p *Pool) Release() {
	if p.block != nil {
		p.ctx.Free(p.block)
	}
	p.block, p.slots = nil, nil
	p.head, p.nfree, p.count = noSlot, 0, 0
}

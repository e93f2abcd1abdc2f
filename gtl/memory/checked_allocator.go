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
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/kevinic/gtl/gtl/internal/debug"
)

// poison is written over freed blocks so stale reads stand out.
const poison = 0xdd

// CheckedAllocator wraps an Allocator and tracks every live block together
// with the call site that requested it. It is meant for tests: AssertSize
// reports leaked blocks and byte imbalances.
type CheckedAllocator struct {
	mem Allocator
	sz  int64

	nallocs int64
	nfrees  int64

	allocs sync.Map
}

func NewCheckedAllocator(mem Allocator) *CheckedAllocator {
	return &CheckedAllocator{mem: mem}
}

// CurrentAlloc returns the number of bytes currently allocated.
func (a *CheckedAllocator) CurrentAlloc() int { return int(atomic.LoadInt64(&a.sz)) }

// Allocations returns how many blocks have been allocated.
func (a *CheckedAllocator) Allocations() int { return int(atomic.LoadInt64(&a.nallocs)) }

// Frees returns how many blocks have been freed.
func (a *CheckedAllocator) Frees() int { return int(atomic.LoadInt64(&a.nfrees)) }

// Outstanding returns the number of live blocks.
func (a *CheckedAllocator) Outstanding() int { return a.Allocations() - a.Frees() }

func (a *CheckedAllocator) Allocate(size int) []byte {
	atomic.AddInt64(&a.sz, int64(size))
	out := a.mem.Allocate(size)
	if size == 0 {
		return out
	}

	atomic.AddInt64(&a.nallocs, 1)
	ptr := uintptr(unsafe.Pointer(&out[0]))
	if pc, _, l, ok := runtime.Caller(allocFrames); ok {
		a.allocs.Store(ptr, &dalloc{pc: pc, line: l, sz: size})
	} else {
		a.allocs.Store(ptr, &dalloc{sz: size})
	}
	return out
}

func (a *CheckedAllocator) Free(b []byte) {
	atomic.AddInt64(&a.sz, int64(len(b)*-1))
	defer a.mem.Free(b)

	if len(b) == 0 {
		return
	}

	ptr := uintptr(unsafe.Pointer(&b[0]))
	_, known := a.allocs.LoadAndDelete(ptr)
	debug.Assert(known, "memory: free of a block not allocated by this allocator")
	atomic.AddInt64(&a.nfrees, 1)
	Set(b, poison)
}

// the allocations typically happen inside Storage, Box or Pool rather than
// by consumers calling Allocate directly. As a result, we want to skip the
// caller frames of those helpers in order to find the container operation
// that actually triggered the allocation.
const defAllocFrames = 4

// Use the environment variable GTL_CHECKED_ALLOC_FRAMES to control how many
// frames up it checks when storing the caller for allocations when using
// this to find memory leaks.
var allocFrames = defAllocFrames

func init() {
	if val, ok := os.LookupEnv("GTL_CHECKED_ALLOC_FRAMES"); ok {
		if f, err := strconv.Atoi(val); err == nil {
			allocFrames = f
		}
	}
}

type dalloc struct {
	pc   uintptr
	line int
	sz   int
}

type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

// AssertSize checks that exactly sz bytes are allocated. On mismatch every
// live block is reported with the call site that allocated it.
func (a *CheckedAllocator) AssertSize(t TestingT, sz int) {
	cur := int(atomic.LoadInt64(&a.sz))
	if cur == sz {
		return
	}

	t.Helper()
	a.allocs.Range(func(_, value interface{}) bool {
		info := value.(*dalloc)
		name := "unknown"
		if f := runtime.FuncForPC(info.pc); f != nil {
			name = f.Name()
		}
		t.Errorf("LEAK of %d bytes FROM %s line %d\n", info.sz, name, info.line)
		return true
	})
	t.Errorf("invalid memory size exp=%d, got=%d", sz, cur)
}

type CheckedAllocatorScope struct {
	alloc *CheckedAllocator
	sz    int
}

func NewCheckedAllocatorScope(alloc *CheckedAllocator) *CheckedAllocatorScope {
	sz := atomic.LoadInt64(&alloc.sz)
	return &CheckedAllocatorScope{alloc: alloc, sz: int(sz)}
}

func (c *CheckedAllocatorScope) CheckSize(t TestingT) {
	sz := int(atomic.LoadInt64(&c.alloc.sz))
	if c.sz != sz {
		t.Helper()
		t.Errorf("invalid memory size exp=%d, got=%d", c.sz, sz)
	}
}

var (
	_ Allocator = (*CheckedAllocator)(nil)
)

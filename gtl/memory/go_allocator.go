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

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

const defaultAlignment = 64

// alignment is the padding applied by GoAllocator: a cache line, never less
// than 64 bytes.
var alignment = cacheLineAlignment()

// cpuid reports the cache line on x86 and some arm64 systems; elsewhere
// the padding x/sys/cpu uses for the architecture is the best estimate.
func cacheLineAlignment() int {
	cl := cpuid.CPU.CacheLine
	if cl <= 0 {
		cl = int(unsafe.Sizeof(cpu.CacheLinePad{}))
	}
	if cl > defaultAlignment && isPowerOf2(cl) {
		return cl
	}
	return defaultAlignment
}

// GoAllocator allocates from the Go heap. Blocks are aligned to the CPU cache
// line and are reclaimed by the garbage collector, so Free is a no-op.
type GoAllocator struct{}

func NewGoAllocator() *GoAllocator { return &GoAllocator{} }

func (a *GoAllocator) Allocate(size int) []byte {
	buf := make([]byte, size+alignment) // padding for cache line alignment
	addr := int(addressOf(buf))
	next := roundToPowerOf2(addr, alignment)
	if addr != next {
		shift := next - addr
		return buf[shift : size+shift : size+shift]
	}
	return buf[:size:size]
}

func (a *GoAllocator) Free(b []byte) {}

var _ Allocator = (*GoAllocator)(nil)

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

const (
	// MaxAlign is the alignment every Allocator guarantees for the blocks it
	// returns. Larger alignments are the caller's responsibility; Pool pads
	// its block to honour them.
	MaxAlign = 8
)

// Allocator is a stateful source of raw memory.
//
// Free must only be given slices previously returned by Allocate on the same
// instance. Implementations must be comparable, since allocator identity is
// how contexts decide whether memory may move between containers.
type Allocator interface {
	Allocate(size int) []byte
	Free(b []byte)
}

// DefaultAllocator is a default implementation of Allocator and can be used anywhere
// an Allocator is required.
var DefaultAllocator Allocator = NewGoAllocator()

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

import "github.com/kevinic/gtl/gtl/internal/debug"

// Context binds containers to an Allocator. It does not own the allocator;
// the allocator must outlive every container created with the context.
//
// Two contexts are interchangeable when they share an allocator, which is
// what decides whether nodes may move between containers.
type Context struct {
	mem Allocator
}

// NewContext returns a context over mem. mem must not be nil.
func NewContext(mem Allocator) *Context {
	debug.Assert(mem != nil, "memory: nil allocator")
	return &Context{mem: mem}
}

// DefaultContext is a context over DefaultAllocator.
var DefaultContext = NewContext(DefaultAllocator)

func (c *Context) Allocator() Allocator { return c.mem }

func (c *Context) Allocate(size int) []byte { return c.mem.Allocate(size) }

func (c *Context) Free(b []byte) { c.mem.Free(b) }

// SameAllocator reports whether memory obtained through c may be returned
// through o.
func (c *Context) SameAllocator(o *Context) bool {
	return c == o || (c != nil && o != nil && c.mem == o.mem)
}

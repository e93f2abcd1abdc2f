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

/*
Package gtl provides allocator-parameterized memory primitives and containers
for programs that want to control memory policy explicitly.

Basics

Every allocation made by the packages below goes through a memory.Allocator
bound to a memory.Context. A Context is created once per allocator and handed
to every container that should share it:

	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	ctx := memory.NewContext(mem)

	vec := container.NewVector[int](ctx)
	defer vec.Release()

The memory package also provides a fixed-slot Pool with an intrusive free
list and a typed NodePool on top of it. The container package provides a
growable Vector with strong exception safety, an owning doubly linked List
with O(1) splice and an intrusive IList.

Errors

Recoverable failures are returned as errors after being passed through
Raise. Building with the gtl_abort tag turns every raised error into a logged
process exit instead. Programmer errors (pool exhaustion, foreign frees, out
of range access) are assertions, enabled with the assert tag.

Nothing in this module is safe for concurrent use.
*/
package gtl

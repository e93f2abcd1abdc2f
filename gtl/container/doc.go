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

// Package container provides allocator-parameterized containers: Vector, a
// dynamic array with strong failure guarantees, and two circular doubly
// linked lists, the owning List and the intrusive IList.
//
// Every container is bound to a memory.Context at construction. Element
// construction goes through a memory.Lifecycle, and any operation that can
// fail while constructing elements either completes or leaves the container
// exactly as it was. Failures are passed through gtl.Raise, so builds with
// the gtl_abort tag terminate instead of returning them.
//
// Containers are not safe for concurrent use.
package container

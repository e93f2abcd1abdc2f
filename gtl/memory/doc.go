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

// Package memory provides the allocator capability, the Context that binds
// object graphs to one allocator, lifecycle helpers that construct and
// destruct elements in place with rollback on partial failure, and a
// fixed-slot Pool.
//
// Allocators hand out raw bytes. Typed storage is layered on top by Storage
// and Box: element types without Go pointers live directly in allocator
// memory, while element types holding pointers are kept in GC-visible
// memory and the allocator is charged for the same number of bytes. Either
// way every byte a container uses is accounted for by its allocator.
package memory

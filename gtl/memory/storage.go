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
	"reflect"
	"sync"
	"unsafe"

	"github.com/JohnCGriffin/overflow"
	"github.com/kevinic/gtl/gtl"
)

// Storage is a block of n uninitialized T slots obtained through a Context.
//
// Pointer-free element types live directly in the allocator's bytes. Types
// holding Go pointers cannot, since the collector does not scan allocator
// memory; they are kept in a Go slice while the allocator is still charged
// the same number of bytes, so accounting is the same for both.
type Storage[T any] struct {
	raw  []byte
	data []T
}

// AllocStorage reserves n slots of T through ctx.
func AllocStorage[T any](ctx *Context, n int) (Storage[T], error) {
	if n == 0 {
		return Storage[T]{}, nil
	}
	if n < 0 {
		return Storage[T]{}, gtl.Errorf(gtl.ErrInvalid, "memory: negative storage size %d", n)
	}

	sz, ok := overflow.Mul(n, sizeOf[T]())
	if !ok {
		return Storage[T]{}, gtl.Errorf(gtl.ErrSizeOverflow, "memory: %d elements of %d bytes", n, sizeOf[T]())
	}
	if sz == 0 {
		return Storage[T]{data: make([]T, n)}, nil
	}

	raw := ctx.Allocate(sz)
	if hasPointers[T]() {
		return Storage[T]{raw: raw, data: make([]T, n)}, nil
	}
	Set(raw, 0)
	return Storage[T]{raw: raw, data: unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)}, nil
}

// Slice returns every slot, live or not.
func (s Storage[T]) Slice() []T { return s.data }

func (s Storage[T]) Cap() int { return len(s.data) }

// Free returns the block to ctx. Live slots must already be destructed.
func (s *Storage[T]) Free(ctx *Context) {
	if s.raw != nil {
		ctx.Free(s.raw)
	}
	s.raw, s.data = nil, nil
}

func sizeOf[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

var pointerFree sync.Map // reflect.Type -> bool

func hasPointers[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := pointerFree.Load(t); ok {
		return !v.(bool)
	}
	free := !typeHasPointers(t)
	pointerFree.Store(t, free)
	return !free
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// uintptr is included: values of it may be disguised pointers
		// that must not be moved into untracked memory.
		return true
	}
}

// Box holds a single T allocated through a Context.
type Box[T any] struct {
	ptr *T
	raw []byte
}

// Alloc reserves one zeroed T through ctx.
func Alloc[T any](ctx *Context) (Box[T], error) {
	s, err := AllocStorage[T](ctx, 1)
	if err != nil {
		return Box[T]{}, err
	}
	return Box[T]{ptr: &s.data[0], raw: s.raw}, nil
}

func (b Box[T]) Ptr() *T { return b.ptr }

// Bytes returns the allocator block backing the box.
func (b Box[T]) Bytes() []byte { return b.raw }

// Dealloc returns the box memory without destructing.
func Dealloc[T any](ctx *Context, b Box[T]) {
	if b.raw != nil {
		ctx.Free(b.raw)
	}
}

// Create allocates a T through ctx and constructs it with fn. If fn fails
// or panics the memory is released before the failure is passed on.
func Create[T any](ctx *Context, fn Emplacer[T]) (Box[T], error) {
	b, err := Alloc[T](ctx)
	if err != nil {
		return Box[T]{}, err
	}

	ok := false
	defer func() {
		if !ok {
			Dealloc(ctx, b)
		}
	}()
	if err := fn(b.ptr); err != nil {
		return Box[T]{}, err
	}
	ok = true
	return b, nil
}

// Destroy destructs the boxed value with lc and releases its memory.
func Destroy[T any](ctx *Context, lc Lifecycle[T], b Box[T]) {
	lc.Destruct(b.ptr)
	Dealloc(ctx, b)
}

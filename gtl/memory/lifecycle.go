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
	"github.com/kevinic/gtl/gtl/ranges"
)

// Lifecycle describes how values of T come to life and end it inside
// container storage. Construct and CopyConstruct operate on a zeroed slot
// and may fail; Destruct must not.
//
// Moving a live value between slots never calls into the Lifecycle.
type Lifecycle[T any] interface {
	Construct(p *T) error
	CopyConstruct(dst, src *T) error
	Destruct(p *T)
}

// Trivial is the default Lifecycle: the zero value, plain copies, and
// zeroing on destruction so the garbage collector can reclaim referents.
type Trivial[T any] struct{}

func (Trivial[T]) Construct(p *T) error { var zero T; *p = zero; return nil }

func (Trivial[T]) CopyConstruct(dst, src *T) error { *dst = *src; return nil }

func (Trivial[T]) Destruct(p *T) { var zero T; *p = zero }

// Emplacer constructs a value in place.
type Emplacer[T any] func(p *T) error

// Emplace returns an Emplacer that copy constructs v.
func Emplace[T any](lc Lifecycle[T], v T) Emplacer[T] {
	return func(p *T) error { return lc.CopyConstruct(p, &v) }
}

// EmplaceDefault returns an Emplacer that default constructs.
func EmplaceDefault[T any](lc Lifecycle[T]) Emplacer[T] {
	return lc.Construct
}

// build runs fn over the slots of dst in order until fn reports that it
// has nothing more to construct, and returns the number of slots built. If
// fn fails or panics at index i the slots [0, i) are destructed in reverse
// order, slot i is zeroed, and the failure is passed on.
func build[T any](lc Lifecycle[T], dst []T, fn func(i int, p *T) (bool, error)) (n int, err error) {
	ok := false
	defer func() {
		if ok {
			return
		}
		var zero T
		if n < len(dst) {
			dst[n] = zero
		}
		for i := n - 1; i >= 0; i-- {
			lc.Destruct(&dst[i])
		}
		n = 0
	}()

	for n < len(dst) {
		more, err := fn(n, &dst[n])
		if err != nil {
			return n, err
		}
		if !more {
			break
		}
		n++
	}
	ok = true
	return n, nil
}

func buildAll[T any](lc Lifecycle[T], dst []T, fn func(i int, p *T) error) error {
	_, err := build(lc, dst, func(i int, p *T) (bool, error) { return true, fn(i, p) })
	return err
}

// ConstructRange default constructs every slot of dst.
func ConstructRange[T any](lc Lifecycle[T], dst []T) error {
	return buildAll(lc, dst, func(_ int, p *T) error { return lc.Construct(p) })
}

// FillRange copy constructs x into every slot of dst.
func FillRange[T any](lc Lifecycle[T], dst []T, x T) error {
	return buildAll(lc, dst, func(_ int, p *T) error { return lc.CopyConstruct(p, &x) })
}

// CopySlice copy constructs src into the first len(src) slots of dst.
func CopySlice[T any](lc Lifecycle[T], dst, src []T) error {
	return buildAll(lc, dst[:len(src)], func(i int, p *T) error { return lc.CopyConstruct(p, &src[i]) })
}

// CopyRange copy constructs successive elements of src into dst until
// either is exhausted and returns how many slots were constructed. On
// failure nothing is left constructed.
func CopyRange[T any](lc Lifecycle[T], dst []T, src ranges.Range[T]) (int, error) {
	return build(lc, dst, func(_ int, p *T) (bool, error) {
		if src.Empty() {
			return false, nil
		}
		v := src.Get()
		if err := lc.CopyConstruct(p, &v); err != nil {
			return false, err
		}
		src.Pop()
		return true, nil
	})
}

// EmplaceRange runs fn on every slot of dst.
func EmplaceRange[T any](lc Lifecycle[T], dst []T, fn Emplacer[T]) error {
	return buildAll(lc, dst, func(_ int, p *T) error { return fn(p) })
}

// DestructRange destructs every slot of dst in order.
func DestructRange[T any](lc Lifecycle[T], dst []T) {
	for i := range dst {
		lc.Destruct(&dst[i])
	}
}

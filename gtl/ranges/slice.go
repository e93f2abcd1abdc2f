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

package ranges

// SliceRange walks a slice front to back.
type SliceRange[T any] struct {
	s []T
}

// Of returns a range over s. Writes through the range are visible in s.
func Of[T any](s []T) *SliceRange[T] { return &SliceRange[T]{s: s} }

func (r *SliceRange[T]) Empty() bool { return len(r.s) == 0 }
func (r *SliceRange[T]) Pop()        { r.s = r.s[1:] }
func (r *SliceRange[T]) Get() T      { return r.s[0] }
func (r *SliceRange[T]) Set(v T)     { r.s[0] = v }
func (r *SliceRange[T]) Ref() *T     { return &r.s[0] }
func (r *SliceRange[T]) Len() int    { return len(r.s) }

// At returns the i'th remaining element without advancing.
func (r *SliceRange[T]) At(i int) T { return r.s[i] }

// Slice returns the remaining elements.
func (r *SliceRange[T]) Slice() []T { return r.s }

// ReverseRange walks a slice back to front.
type ReverseRange[T any] struct {
	s []T
}

// Reversed returns a range over s starting at its last element.
func Reversed[T any](s []T) *ReverseRange[T] { return &ReverseRange[T]{s: s} }

func (r *ReverseRange[T]) Empty() bool { return len(r.s) == 0 }
func (r *ReverseRange[T]) Pop()        { r.s = r.s[:len(r.s)-1] }
func (r *ReverseRange[T]) Get() T      { return r.s[len(r.s)-1] }
func (r *ReverseRange[T]) Set(v T)     { r.s[len(r.s)-1] = v }
func (r *ReverseRange[T]) Ref() *T     { return &r.s[len(r.s)-1] }
func (r *ReverseRange[T]) Len() int    { return len(r.s) }

// TakeRange yields at most n elements of an underlying range.
type TakeRange[T any] struct {
	r Range[T]
	n int
}

// Take truncates r to its first n elements.
func Take[T any](r Range[T], n int) *TakeRange[T] { return &TakeRange[T]{r: r, n: n} }

func (t *TakeRange[T]) Empty() bool { return t.n <= 0 || t.r.Empty() }
func (t *TakeRange[T]) Get() T      { return t.r.Get() }

func (t *TakeRange[T]) Pop() {
	t.r.Pop()
	t.n--
}

var (
	_ MutableRange[int] = (*SliceRange[int])(nil)
	_ MutableRange[int] = (*ReverseRange[int])(nil)
	_ Sized             = (*SliceRange[int])(nil)
	_ Sized             = (*ReverseRange[int])(nil)
	_ Range[int]        = (*TakeRange[int])(nil)
)

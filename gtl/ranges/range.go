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

// Package ranges defines the forward iteration protocol shared by the
// containers and the bulk construct/destruct helpers, along with adapters
// over plain slices.
//
// A range is consumed as it is walked:
//
//	for r := vec.All(); !r.Empty(); r.Pop() {
//		fmt.Println(r.Get())
//	}
package ranges

// Range is a forward, single pass view over a sequence of values.
type Range[T any] interface {
	// Empty reports whether the range has no current element.
	Empty() bool
	// Pop advances past the current element.
	Pop()
	// Get returns the current element.
	Get() T
}

// MutableRange is a Range whose current element can be written in place.
type MutableRange[T any] interface {
	Range[T]
	// Set overwrites the current element.
	Set(v T)
	// Ref returns a pointer to the current element.
	Ref() *T
}

// Sized is implemented by ranges that know how many elements remain
// without being walked.
type Sized interface {
	Len() int
}

// Collect drains r into a new slice.
func Collect[T any](r Range[T]) []T {
	var out []T
	if s, ok := r.(Sized); ok {
		out = make([]T, 0, s.Len())
	}
	for ; !r.Empty(); r.Pop() {
		out = append(out, r.Get())
	}
	return out
}

// Count drains r and returns the number of elements it held.
func Count[T any](r Range[T]) int {
	if s, ok := r.(Sized); ok {
		return s.Len()
	}
	n := 0
	for ; !r.Empty(); r.Pop() {
		n++
	}
	return n
}

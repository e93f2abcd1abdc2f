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

// Package testutils holds helpers shared by the gtl package tests.
package testutils

import "errors"

var ErrInjected = errors.New("testutils: injected construction failure")

// Tracker is a memory.Lifecycle that counts hook calls and can be armed to
// fail a construction, either by returning ErrInjected or by panicking with
// it.
type Tracker[T any] struct {
	Constructs int
	Copies     int
	Destructs  int

	failAt int
	Panic  bool
}

func NewTracker[T any]() *Tracker[T] { return &Tracker[T]{failAt: -1} }

// FailAfter arms the tracker so that the construction attempted after n
// more successful ones fails. A negative n disarms it.
func (t *Tracker[T]) FailAfter(n int) {
	if n < 0 {
		t.failAt = -1
		return
	}
	t.failAt = t.Built() + n
}

// Built returns the number of successful constructions of any kind.
func (t *Tracker[T]) Built() int { return t.Constructs + t.Copies }

// Live returns constructions minus destructions.
func (t *Tracker[T]) Live() int { return t.Built() - t.Destructs }

func (t *Tracker[T]) attempt() error {
	if t.failAt < 0 || t.Built() < t.failAt {
		return nil
	}
	t.failAt = -1
	if t.Panic {
		panic(ErrInjected)
	}
	return ErrInjected
}

func (t *Tracker[T]) Construct(p *T) error {
	if err := t.attempt(); err != nil {
		return err
	}
	var zero T
	*p = zero
	t.Constructs++
	return nil
}

func (t *Tracker[T]) CopyConstruct(dst, src *T) error {
	if err := t.attempt(); err != nil {
		return err
	}
	*dst = *src
	t.Copies++
	return nil
}

func (t *Tracker[T]) Destruct(p *T) {
	var zero T
	*p = zero
	t.Destructs++
}

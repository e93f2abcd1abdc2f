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

package container

// links is the pair of ring pointers shared by List elements and IList
// hooks. A ring always contains exactly one sentinel.
type links[N any] struct {
	next, prev *N
}

type linked[N any] interface {
	*N
	hook() *links[N]
}

func initRing[N any, P linked[N]](s P) {
	h := s.hook()
	h.next, h.prev = (*N)(s), (*N)(s)
}

func ringEmpty[N any, P linked[N]](s P) bool {
	return s.hook().next == (*N)(s)
}

// ringLen counts the nodes of the ring headed by sentinel s.
func ringLen[N any, P linked[N]](s P) int {
	n := 0
	for x := P(s.hook().next); x != s; x = P(x.hook().next) {
		n++
	}
	return n
}

// linkBefore links the chain first..last, whose inner links are already
// set, in front of pos.
func linkBefore[N any, P linked[N]](pos, first, last P) {
	prev := P(pos.hook().prev)
	prev.hook().next = (*N)(first)
	first.hook().prev = (*N)(prev)
	last.hook().next = (*N)(pos)
	pos.hook().prev = (*N)(last)
}

// unlink detaches the chain first..last from its ring. The chain keeps its
// inner links.
func unlink[N any, P linked[N]](first, last P) {
	prev := P(first.hook().prev)
	next := P(last.hook().next)
	prev.hook().next = (*N)(next)
	next.hook().prev = (*N)(prev)
}

// transfer moves [first, last) in front of pos. pos must not lie in
// [first, last). The rings of source and destination may differ.
func transfer[N any, P linked[N]](pos, first, last P) {
	if first == last || pos == last {
		return
	}
	tail := P(last.hook().prev)
	unlink[N](first, tail)
	linkBefore[N](pos, first, tail)
}

// swapRings exchanges the nodes of the rings headed by a and b.
func swapRings[N any, P linked[N]](a, b P) {
	var tmp N
	t := P(&tmp)
	initRing[N](t)
	transfer[N](t, P(a.hook().next), a)
	transfer[N](a, P(b.hook().next), b)
	transfer[N](b, P(t.hook().next), t)
}

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

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateRight(t *testing.T) {
	tests := []struct {
		in  []int
		k   int
		exp []int
	}{
		{[]int{1, 2, 3, 9}, 1, []int{9, 1, 2, 3}},
		{[]int{1, 2, 8, 9}, 2, []int{8, 9, 1, 2}},
		{[]int{9}, 1, []int{9}},
		{[]int{1, 2, 3}, 0, []int{1, 2, 3}},
		{[]int{1, 2, 3, 4, 5}, 3, []int{3, 4, 5, 1, 2}},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.in, test.k), func(t *testing.T) {
			rotateRight(test.in, test.k)
			assert.Equal(t, test.exp, test.in)
		})
	}
}

type node struct {
	links[node]
	id int
}

func (n *node) hook() *links[node] { return &n.links }

func ids(s *node) []int {
	var out []int
	for x := s.next; x != s; x = x.next {
		out = append(out, x.id)
	}
	return out
}

func ring(s *node, vals ...int) []*node {
	initRing(s)
	var nodes []*node
	for _, v := range vals {
		n := &node{id: v}
		linkBefore(s, n, n)
		nodes = append(nodes, n)
	}
	return nodes
}

func TestRingPrimitives(t *testing.T) {
	var a, b node
	an := ring(&a, 1, 2, 3, 4)
	bn := ring(&b, 10, 20)

	assert.Equal(t, 4, ringLen(&a))
	assert.False(t, ringEmpty(&a))

	// move [2, 4) in front of 20
	transfer(bn[1], an[1], an[3])
	assert.Equal(t, []int{1, 4}, ids(&a))
	assert.Equal(t, []int{10, 2, 3, 20}, ids(&b))

	// whole ring back to the front of a
	transfer(a.next, b.next, &b)
	assert.Equal(t, []int{10, 2, 3, 20, 1, 4}, ids(&a))
	assert.True(t, ringEmpty(&b))
	assert.Same(t, &b, b.prev)

	// no-ops
	transfer(an[0], an[0], an[0])
	transfer(an[0], bn[0], an[0])
	assert.Equal(t, []int{10, 2, 3, 20, 1, 4}, ids(&a))

	unlink(an[3], an[3])
	assert.Equal(t, []int{10, 2, 3, 20, 1}, ids(&a))

	ring(&b, 7)
	swapRings(&a, &b)
	assert.Equal(t, []int{7}, ids(&a))
	assert.Equal(t, []int{10, 2, 3, 20, 1}, ids(&b))
	for x := b.next; x != &b; x = x.next {
		assert.Same(t, x, x.next.prev)
	}
}

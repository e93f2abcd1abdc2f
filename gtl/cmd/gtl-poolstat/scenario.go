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

package main

import (
	"fmt"

	"github.com/kevinic/gtl/gtl"
	"github.com/kevinic/gtl/gtl/container"
	"github.com/kevinic/gtl/gtl/memory"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// record is what the scenarios keep in their node pool.
type record struct {
	ID    uint64
	Score float64
	Hits  [4]int32
}

type opKind int

const (
	opCreate opKind = iota
	opDestroy
	opPush
	opInsert
	opErase
	opListPush
	opListErase
	opSplice
	numOps
)

var opNames = [numOps]string{"create", "destroy", "push", "insert", "erase", "list-push", "list-erase", "splice"}

// Stats summarizes one scenario run.
type Stats struct {
	Scenario    int            `json:"scenario"`
	Seed        uint64         `json:"seed"`
	Ops         map[string]int `json:"ops"`
	PoolCap     int            `json:"pool_cap"`
	PoolPeak    int            `json:"pool_peak"`
	LinkSize    int            `json:"link_size"`
	VectorLen   int            `json:"vector_len"`
	VectorCap   int            `json:"vector_cap"`
	ListLens    [2]int         `json:"list_lens"`
	Allocations int            `json:"allocations"`
	Frees       int            `json:"frees"`
	PeakBytes   int            `json:"peak_bytes"`
	Leaked      int            `json:"leaked_bytes"`
}

type scenario struct {
	id       int
	seed     uint64
	ops      int
	poolSize int
}

// run drives a random sequence of operations against a node pool, a vector
// and a pair of lists sharing one checked allocator, checking each
// container against a plain Go model as it goes.
func (s scenario) run() (*Stats, error) {
	rng := rand.New(rand.NewSource(s.seed))
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	ctx := memory.NewContext(mem)

	st := &Stats{Scenario: s.id, Seed: s.seed, Ops: make(map[string]int)}

	pool := memory.NewNodePool[record](ctx, s.poolSize)
	live := container.NewVector[*record](ctx)
	vec := container.NewVector[int64](ctx)
	lists := [2]*container.List[int64]{container.NewList[int64](ctx), container.NewList[int64](ctx)}

	var (
		vecModel   []int64
		listModels [2][]int64
	)

	err := gtl.Guard(func() error {
		for i := 0; i < s.ops; i++ {
			op := opKind(rng.Intn(int(numOps)))
			st.Ops[opNames[op]]++

			switch op {
			case opCreate:
				if pool.Empty() {
					continue
				}
				r, err := pool.CreateCopy(record{ID: rng.Uint64(), Score: rng.Float64()})
				if err != nil {
					return err
				}
				if err := live.PushBack(r); err != nil {
					return err
				}
				st.PoolPeak = max(st.PoolPeak, pool.Outstanding())
			case opDestroy:
				if live.Empty() {
					continue
				}
				j := rng.Intn(live.Len())
				pool.Destroy(live.At(j))
				live.Erase(j)
			case opPush:
				x := rng.Int63()
				if err := vec.PushBack(x); err != nil {
					return err
				}
				vecModel = append(vecModel, x)
			case opInsert:
				pos := rng.Intn(vec.Len() + 1)
				k := rng.Intn(4)
				x := rng.Int63()
				if err := vec.InsertN(pos, k, x); err != nil {
					return err
				}
				fill := make([]int64, k)
				for j := range fill {
					fill[j] = x
				}
				vecModel = append(vecModel[:pos], append(fill, vecModel[pos:]...)...)
			case opErase:
				if vec.Empty() {
					continue
				}
				first := rng.Intn(vec.Len())
				last := first + rng.Intn(vec.Len()-first+1)
				vec.EraseRange(first, last)
				vecModel = append(vecModel[:first], vecModel[last:]...)
			case opListPush:
				j := rng.Intn(2)
				x := rng.Int63()
				if _, err := lists[j].PushBack(x); err != nil {
					return err
				}
				listModels[j] = append(listModels[j], x)
			case opListErase:
				j := rng.Intn(2)
				if lists[j].Empty() {
					continue
				}
				lists[j].PopFront()
				listModels[j] = listModels[j][1:]
			case opSplice:
				from := rng.Intn(2)
				to := 1 - from
				if err := lists[to].Splice(lists[to].End(), lists[from]); err != nil {
					return err
				}
				listModels[to] = append(listModels[to], listModels[from]...)
				listModels[from] = nil
			}

			st.PeakBytes = max(st.PeakBytes, mem.CurrentAlloc())
		}
		return s.check(vec, vecModel, lists, listModels, pool, live)
	})

	st.PoolCap = pool.Cap()
	st.LinkSize = pool.LinkSize()
	st.VectorLen, st.VectorCap = vec.Len(), vec.Cap()
	st.ListLens = [2]int{lists[0].Len(), lists[1].Len()}

	for _, r := range live.Values() {
		pool.Destroy(r)
	}
	live.Release()
	pool.Release()
	vec.Release()
	lists[0].Release()
	lists[1].Release()

	st.Allocations, st.Frees = mem.Allocations(), mem.Frees()
	st.Leaked = mem.CurrentAlloc()
	if err == nil && st.Leaked != 0 {
		err = fmt.Errorf("scenario %d: %d bytes still allocated after release", s.id, st.Leaked)
	}
	return st, err
}

func (s scenario) check(vec *container.Vector[int64], vecModel []int64, lists [2]*container.List[int64],
	listModels [2][]int64, pool *memory.NodePool[record], live *container.Vector[*record]) error {
	if !slices.Equal(vec.Values(), vecModel) {
		return fmt.Errorf("scenario %d: vector diverged from model (len %d, want %d)", s.id, vec.Len(), len(vecModel))
	}
	for j, l := range lists {
		i := 0
		for r := l.All(); !r.Empty(); r.Pop() {
			if i >= len(listModels[j]) || r.Get() != listModels[j][i] {
				return fmt.Errorf("scenario %d: list %d diverged from model at %d", s.id, j, i)
			}
			i++
		}
		if i != len(listModels[j]) {
			return fmt.Errorf("scenario %d: list %d has %d elements, want %d", s.id, j, i, len(listModels[j]))
		}
	}
	if pool.Outstanding() != live.Len() {
		return fmt.Errorf("scenario %d: pool reports %d live objects, want %d", s.id, pool.Outstanding(), live.Len())
	}
	return nil
}

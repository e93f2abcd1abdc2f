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
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

const usage = `GTL pool statistics.
Drives randomized operation sequences against a node pool, a vector and a
pair of lists, each scenario on its own checked allocator, and reports
allocator statistics.
Usage:
  gtl-poolstat -h | --help
  gtl-poolstat [--scenarios=N] [--ops=N] [--pool-size=N] [--seed=SEED]
               [--parallel=P] [--json]
Options:
  -h --help           Show this screen.
  --scenarios=N       Number of independent scenarios to run. [default: 4]
  --ops=N             Operations per scenario. [default: 10000]
  --pool-size=N       Node pool capacity per scenario. [default: 256]
  --seed=SEED         Seed of the first scenario; scenario i uses SEED+i. [default: 1]
  --parallel=P        Maximum scenarios run at once, 0 for one per CPU. [default: 0]
  --json              Format output as JSON instead of text.`

func main() {
	opts, _ := docopt.ParseDoc(usage)
	var config struct {
		Scenarios int
		Ops       int
		PoolSize  int `docopt:"--pool-size"`
		Seed      int
		Parallel  int
		JSON      bool `docopt:"--json"`
	}
	if err := opts.Bind(&config); err != nil {
		fmt.Fprintln(os.Stderr, "error parsing options:", err)
		os.Exit(1)
	}

	if config.Scenarios <= 0 || config.Ops < 0 || config.PoolSize < 0 {
		fmt.Fprintln(os.Stderr, "error: --scenarios must be positive, --ops and --pool-size non-negative")
		os.Exit(1)
	}
	if config.Parallel <= 0 {
		config.Parallel = runtime.GOMAXPROCS(0)
	}

	stats, err := runAll(config.Scenarios, config.Ops, config.PoolSize, uint64(config.Seed), config.Parallel)
	if config.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(stats); err != nil {
			fmt.Fprintln(os.Stderr, "error encoding report:", err)
			os.Exit(1)
		}
	} else {
		printText(stats)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// runAll runs the scenarios concurrently. Scenarios share nothing, so the
// containers, which are not safe for concurrent use, are never touched by
// more than one goroutine.
func runAll(n, ops, poolSize int, seed uint64, parallel int) ([]*Stats, error) {
	stats := make([]*Stats, n)

	var g errgroup.Group
	g.SetLimit(parallel)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			sc := scenario{id: i, seed: seed + uint64(i), ops: ops, poolSize: poolSize}
			st, err := sc.run()
			stats[i] = st
			return err
		})
	}
	return stats, g.Wait()
}

func printText(stats []*Stats) {
	for _, st := range stats {
		if st == nil {
			continue
		}
		fmt.Println("--- Scenario:", st.Scenario, "seed", st.Seed, "---")
		fmt.Printf("Pool: cap %d, peak %d, link size %d\n", st.PoolCap, st.PoolPeak, st.LinkSize)
		fmt.Printf("Vector: len %d, cap %d\n", st.VectorLen, st.VectorCap)
		fmt.Printf("Lists: %d, %d\n", st.ListLens[0], st.ListLens[1])
		fmt.Printf("Allocator: %d allocations, %d frees, peak %d bytes, leaked %d bytes\n",
			st.Allocations, st.Frees, st.PeakBytes, st.Leaked)

		names := make([]string, 0, len(st.Ops))
		for k := range st.Ops {
			names = append(names, k)
		}
		sort.Strings(names)
		parts := make([]string, len(names))
		for i, k := range names {
			parts[i] = fmt.Sprintf("%s=%d", k, st.Ops[k])
		}
		fmt.Println("Ops:", strings.Join(parts, " "))
	}
}

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

import "github.com/kevinic/gtl/gtl/memory"

type config[T any] struct {
	lc memory.Lifecycle[T]
}

// Option configures a container.
type Option[T any] func(*config[T])

// WithLifecycle sets the Lifecycle used to construct, copy and destruct
// elements. The default is memory.Trivial.
func WithLifecycle[T any](lc memory.Lifecycle[T]) Option[T] {
	return func(c *config[T]) { c.lc = lc }
}

func newConfig[T any](opts []Option[T]) config[T] {
	cfg := config[T]{lc: memory.Trivial[T]{}}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

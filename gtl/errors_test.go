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

package gtl_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/kevinic/gtl/gtl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name  string
		err   *gtl.Error
		exp   string
		cause error
	}{
		{"no cause", gtl.NewError("list: splice", nil), "list: splice", nil},
		{"sentinel", gtl.NewError("list: splice", gtl.ErrForeignAllocator), "list: splice: " + gtl.ErrForeignAllocator.Error(), gtl.ErrForeignAllocator},
		{"formatted", gtl.Errorf(io.EOF, "vector: insert at %d", 3), "vector: insert at 3: EOF", io.EOF},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, test.err.Error())
			if test.cause != nil {
				assert.True(t, errors.Is(test.err, test.cause))
			}
			assert.Equal(t, test.cause, errors.Unwrap(test.err))
		})
	}
}

func TestErrorDetailHasFrame(t *testing.T) {
	err := gtl.NewError("pool: exhausted", nil)
	detail := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(detail, "pool: exhausted"))
	assert.Contains(t, detail, "errors_test.go")
}

func TestRaisePropagates(t *testing.T) {
	if gtl.AbortOnError() {
		t.Skip("built with gtl_abort")
	}
	assert.NoError(t, gtl.Raise(nil))

	err := gtl.NewError("vector: grow", gtl.ErrSizeOverflow)
	got := gtl.Raise(err)
	assert.Same(t, err, got)
	assert.ErrorIs(t, got, gtl.ErrSizeOverflow)
}

func TestGuard(t *testing.T) {
	if gtl.AbortOnError() {
		t.Skip("built with gtl_abort")
	}

	t.Run("ok", func(t *testing.T) {
		assert.NoError(t, gtl.Guard(func() error { return nil }))
	})

	t.Run("error", func(t *testing.T) {
		err := gtl.Guard(func() error { return gtl.ErrInvalid })
		assert.ErrorIs(t, err, gtl.ErrInvalid)
	})

	t.Run("panic error", func(t *testing.T) {
		err := gtl.Guard(func() error { panic(io.ErrUnexpectedEOF) })
		require.Error(t, err)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.Equal(t, "gtl: recovered panic: unexpected EOF", err.Error())
	})

	t.Run("panic value", func(t *testing.T) {
		err := gtl.Guard(func() error { panic(42) })
		require.Error(t, err)
		assert.Equal(t, "gtl: recovered panic: 42", err.Error())
	})
}

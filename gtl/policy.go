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

package gtl

import (
	"fmt"
	"log"
	"os"

	"github.com/kevinic/gtl/internal/utils"
)

var (
	logger = log.New(os.Stderr, "[gtl] ", log.LstdFlags)
	exit   = os.Exit
)

// AbortOnError reports whether the module was built with the gtl_abort tag,
// in which case Raise never returns for a non-nil error.
func AbortOnError() bool { return abortOnError }

// Raise applies the build-time error policy to err.
//
// Under the default policy err is returned unchanged so it propagates to the
// nearest caller that handles it. When built with the gtl_abort tag a
// non-nil err is logged with its frames and the process exits.
func Raise(err error) error {
	if err == nil {
		return nil
	}
	if abortOnError {
		logger.Output(2, fmt.Sprintf("%+v", err))
		exit(1)
	}
	return err
}

// Guard runs fn and passes its error through Raise. A panic escaping fn is
// recovered and raised as an error wrapping the panic value.
//
// Guard is meant for the top level of an embedding application: the
// containers already unwind partially built state before a panic leaves them.
func Guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Raise(utils.FormatRecoveredError("gtl: recovered panic", r))
		}
	}()
	return Raise(fn())
}

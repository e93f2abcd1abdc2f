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

package utils

import (
	"fmt"
)

// FormatRecoveredError is used to properly format the result of a recover()
// call so that a panic can be turned into an error.
//
// If the recovered value is an error, it is wrapped so that errors.Is and
// errors.Unwrap still see it; otherwise the value is formatted with %v.
func FormatRecoveredError(msg string, rec interface{}) error {
	if err, ok := rec.(error); ok {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%s: %v", msg, rec)
}

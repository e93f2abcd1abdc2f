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
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

var (
	// ErrInvalid indicates an invalid argument or state.
	ErrInvalid = errors.New("gtl: invalid")

	// ErrForeignAllocator indicates an attempt to move nodes between
	// containers bound to different allocators.
	ErrForeignAllocator = errors.New("gtl: nodes cannot be transferred between allocators")

	// ErrSizeOverflow indicates that a requested element count does not fit
	// in the address space once multiplied by the element size.
	ErrSizeOverflow = errors.New("gtl: size overflow")
)

// Error is the structured error raised by the containers. It carries a short
// message, the underlying cause and the frame of the call that raised it.
//
// Formatting an Error with %+v prints the frame.
type Error struct {
	msg   string
	err   error
	frame xerrors.Frame
}

// NewError returns an Error with the given message wrapping cause, which may
// be nil.
func NewError(msg string, cause error) *Error {
	return &Error{msg: msg, err: cause, frame: xerrors.Caller(1)}
}

// Errorf is like NewError but builds the message with fmt.Sprintf.
func Errorf(cause error, format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf(format, args...), err: cause, frame: xerrors.Caller(1)}
}

func (e *Error) Error() string { return fmt.Sprint(e) }

// Message returns the message without the cause.
func (e *Error) Message() string { return e.msg }

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *Error) FormatError(p xerrors.Printer) error {
	p.Print(e.msg)
	e.frame.Format(p)
	return e.err
}

var (
	_ error             = (*Error)(nil)
	_ xerrors.Formatter = (*Error)(nil)
)

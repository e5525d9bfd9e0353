// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package taberr

import (
	"fmt"
)

const (
	// Ok is not an error.  IsTabErrCode(nil, Ok) reports true.
	Ok uint16 = 0

	// Group 0: internal errors.  These indicate bugs in the engine,
	// not caller misuse.
	ErrInternal uint16 = 20000

	// Group 1: identity and lookup misuse.
	ErrDuplicateField uint16 = 20100
	ErrUnknownField   uint16 = 20101
	ErrDuplicateName  uint16 = 20102
	ErrNameCollision  uint16 = 20103

	// Group 2: type safety.  A value, cast or join-key pairing disagrees
	// with a declared type tag.
	ErrTypeMismatch uint16 = 20200

	// Group 3: structural invariants, detected at freeze or merge time.
	ErrInconsistentRowCount uint16 = 20300
	ErrRowCountMismatch     uint16 = 20301

	// Group 4: row access.
	ErrIndexOutOfRange uint16 = 20400

	// Group 5: lifecycle and argument misuse.
	ErrInvalidState uint16 = 20500
	ErrInvalidInput uint16 = 20501

	// ErrEnd, the max value of TabErrorCode
	ErrEnd uint16 = 65535
)

type tabErrorMsgItem struct {
	errorMsgOrFormat string
}

var errorMsgRefer = map[uint16]tabErrorMsgItem{
	// Group 0: internal errors
	ErrInternal: {"internal error: %s"},

	// Group 1: identity and lookup misuse
	ErrDuplicateField: {"duplicate field %s"},
	ErrUnknownField:   {"unknown field %s"},
	ErrDuplicateName:  {"duplicate name %s"},
	ErrNameCollision:  {"name collision on %s"},

	// Group 2: type safety
	ErrTypeMismatch: {"type mismatch: %s"},

	// Group 3: structural invariants
	ErrInconsistentRowCount: {"inconsistent row count: column %s has %d rows, expecting %d"},
	ErrRowCountMismatch:     {"row count mismatch: %d vs %d"},

	// Group 4: row access
	ErrIndexOutOfRange: {"index %d out of range, length %d"},

	// Group 5: lifecycle and argument misuse
	ErrInvalidState: {"invalid state %s"},
	ErrInvalidInput: {"invalid input: %s"},

	// Group End: max value of TabErrorCode
	ErrEnd: {"internal error: end of errcode code"},
}

func newError(code uint16, args ...any) *Error {
	item, has := errorMsgRefer[code]
	if !has {
		panic(fmt.Sprintf("not exist TabErrorCode: %d", code))
	}
	if len(args) == 0 {
		return &Error{
			code:    code,
			message: item.errorMsgOrFormat,
		}
	}
	return &Error{
		code:    code,
		message: fmt.Sprintf(item.errorMsgOrFormat, args...),
	}
}

// Error is the single error type produced by the engine.  Every failure
// carries one of the uint16 codes above; callers branch on the code, not
// on the message.
type Error struct {
	code    uint16
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

// IsTabErrCode reports whether e carries the code rc.  A nil error carries Ok.
func IsTabErrCode(e error, rc uint16) bool {
	if e == nil {
		return rc == Ok
	}

	te, ok := e.(*Error)
	if !ok {
		// This is not a taberr
		return false
	}
	return te.code == rc
}

func NewInternalError(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrInternal, xmsg)
}

func NewDuplicateField(ident string) *Error {
	return newError(ErrDuplicateField, ident)
}

func NewUnknownField(ident string) *Error {
	return newError(ErrUnknownField, ident)
}

func NewDuplicateName(name string) *Error {
	return newError(ErrDuplicateName, name)
}

func NewNameCollision(name string) *Error {
	return newError(ErrNameCollision, name)
}

func NewTypeMismatch(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrTypeMismatch, xmsg)
}

func NewInconsistentRowCount(ident string, got, want int) *Error {
	return newError(ErrInconsistentRowCount, ident, got, want)
}

func NewRowCountMismatch(left, right int) *Error {
	return newError(ErrRowCountMismatch, left, right)
}

func NewIndexOutOfRange(index, length int64) *Error {
	return newError(ErrIndexOutOfRange, index, length)
}

func NewInvalidState(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrInvalidState, xmsg)
}

func NewInvalidInput(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrInvalidInput, xmsg)
}

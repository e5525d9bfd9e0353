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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		code    uint16
		message string
	}{
		{
			name:    "duplicate field",
			err:     NewDuplicateField("emp.EmpId"),
			code:    ErrDuplicateField,
			message: "duplicate field emp.EmpId",
		},
		{
			name:    "unknown field",
			err:     NewUnknownField("DeptName"),
			code:    ErrUnknownField,
			message: "unknown field DeptName",
		},
		{
			name:    "duplicate name",
			err:     NewDuplicateName("EmpId"),
			code:    ErrDuplicateName,
			message: "duplicate name EmpId",
		},
		{
			name:    "name collision",
			err:     NewNameCollision("DeptId"),
			code:    ErrNameCollision,
			message: "name collision on DeptId",
		},
		{
			name:    "type mismatch",
			err:     NewTypeMismatch("expecting %s, got %s", "int64", "text"),
			code:    ErrTypeMismatch,
			message: "type mismatch: expecting int64, got text",
		},
		{
			name:    "inconsistent row count",
			err:     NewInconsistentRowCount("emp.EmpName", 6, 7),
			code:    ErrInconsistentRowCount,
			message: "inconsistent row count: column emp.EmpName has 6 rows, expecting 7",
		},
		{
			name:    "row count mismatch",
			err:     NewRowCountMismatch(7, 4),
			code:    ErrRowCountMismatch,
			message: "row count mismatch: 7 vs 4",
		},
		{
			name:    "index out of range",
			err:     NewIndexOutOfRange(9, 7),
			code:    ErrIndexOutOfRange,
			message: "index 9 out of range, length 7",
		},
		{
			name:    "invalid state",
			err:     NewInvalidState("store already frozen"),
			code:    ErrInvalidState,
			message: "invalid state store already frozen",
		},
		{
			name:    "invalid input",
			err:     NewInvalidInput("join requires at least one predicate"),
			code:    ErrInvalidInput,
			message: "invalid input: join requires at least one predicate",
		},
		{
			name:    "internal",
			err:     NewInternalError("unreachable tag %d", 42),
			code:    ErrInternal,
			message: "internal error: unreachable tag 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.err)
			assert.Equal(t, tt.code, tt.err.ErrorCode())
			assert.Equal(t, tt.message, tt.err.Error())
			assert.True(t, IsTabErrCode(tt.err, tt.code))
		})
	}
}

func TestIsTabErrCode(t *testing.T) {
	assert.True(t, IsTabErrCode(nil, Ok))
	assert.False(t, IsTabErrCode(nil, ErrUnknownField))
	assert.False(t, IsTabErrCode(errors.New("plain"), ErrUnknownField))
	assert.False(t, IsTabErrCode(NewUnknownField("x"), ErrDuplicateField))
	assert.True(t, IsTabErrCode(NewUnknownField("x"), ErrUnknownField))
}

func TestNewErrorBadCode(t *testing.T) {
	assert.Panics(t, func() {
		newError(12345)
	})
}

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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTString(t *testing.T) {
	cases := []struct {
		tag  T
		want string
	}{
		{T_any, "ANY"},
		{T_uint64, "UNSIGNED"},
		{T_int64, "SIGNED"},
		{T_float64, "FLOAT"},
		{T_bool, "BOOLEAN"},
		{T_text, "TEXT"},
		{T(200), "unknown type"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.tag.String())
	}
}

func TestTValid(t *testing.T) {
	for _, tag := range AllTypes {
		assert.True(t, tag.Valid(), tag.String())
	}
	assert.False(t, T_any.Valid())
	assert.False(t, T(200).Valid())
}

func TestTIsNumeric(t *testing.T) {
	assert.True(t, T_uint64.IsNumeric())
	assert.True(t, T_int64.IsNumeric())
	assert.True(t, T_float64.IsNumeric())
	assert.False(t, T_bool.IsNumeric())
	assert.False(t, T_text.IsNumeric())
	assert.False(t, T_any.IsNumeric())
}

func TestTagOf(t *testing.T) {
	require.Equal(t, T_uint64, TagOf[uint64]())
	require.Equal(t, T_int64, TagOf[int64]())
	require.Equal(t, T_float64, TagOf[float64]())
	require.Equal(t, T_bool, TagOf[bool]())
	require.Equal(t, T_text, TagOf[string]())
}

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

package apply

import (
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/tabular/pkg/container/types"
	"github.com/matrixorigin/tabular/pkg/testutil"
	"github.com/matrixorigin/tabular/pkg/view"
)

func TestDescribe(t *testing.T) {
	v, err := view.ProjectAll(testutil.EmpTable())
	require.NoError(t, err)

	s, err := Describe(v)
	require.NoError(t, err)
	require.Len(t, s.Fields, 3)

	ids := s.Fields[0]
	assert.Equal(t, "EmpId", ids.Name)
	assert.Equal(t, types.T_uint64, ids.Tag)
	assert.Equal(t, 7, ids.Rows)
	assert.Equal(t, 0, ids.Missing)
	assert.Equal(t, types.NewUint64(0), ids.Min)
	assert.Equal(t, types.NewUint64(10), ids.Max)
	assert.Equal(t, types.NewUint64(40), ids.Sum)
	assert.True(t, ids.Numeric)
	assert.InDelta(t, 40.0/7.0, ids.Mean, 1e-12)

	names := s.Fields[2]
	assert.Equal(t, "EmpName", names.Name)
	assert.False(t, names.Numeric)
	assert.Equal(t, types.NewText("Ann"), names.Min)
	assert.Equal(t, types.NewText("Sally"), names.Max)

	out := s.String()
	assert.Contains(t, out, "EmpId UNSIGNED rows=7 missing=0")
	assert.Contains(t, out, "EmpName TEXT rows=7")
}

func TestDescribeParallelMatchesSerial(t *testing.T) {
	tags := []types.T{
		types.T_uint64, types.T_int64, types.T_float64, types.T_bool, types.T_text,
		types.T_uint64, types.T_int64, types.T_float64, types.T_bool, types.T_text,
	}
	v, err := view.ProjectAll(testutil.NewStore("t", tags, true, 64))
	require.NoError(t, err)

	stub := gostub.Stub(&describeParallelThreshold, 100)
	serial, err := Describe(v)
	require.NoError(t, err)
	stub.Reset()

	stub = gostub.Stub(&describeParallelThreshold, 2)
	defer stub.Reset()
	parallel, err := Describe(v)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

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

package apply_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/tabular/pkg/apply"
	"github.com/matrixorigin/tabular/pkg/common/taberr"
	"github.com/matrixorigin/tabular/pkg/container/field"
	"github.com/matrixorigin/tabular/pkg/container/types"
	"github.com/matrixorigin/tabular/pkg/testutil"
	"github.com/matrixorigin/tabular/pkg/view"
)

func TestMatches(t *testing.T) {
	v, err := view.ProjectAll(testutil.EmpTable())
	require.NoError(t, err)

	ok, err := apply.Matches(v, "EmpName", 1, types.NewText("Jamie"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = apply.Matches(v, "EmpName", 0, types.NewText("Jamie"))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = apply.Matches(v, "EmpName", 9, types.NewText("Jamie"))
	assert.True(t, taberr.IsTabErrCode(err, taberr.ErrIndexOutOfRange))

	_, err = apply.Matches(v, "EmpName", 0, types.NewUint64(2))
	assert.True(t, taberr.IsTabErrCode(err, taberr.ErrTypeMismatch))

	_, err = apply.Matches(v, "Ghost", 0, types.NewText("x"))
	assert.True(t, taberr.IsTabErrCode(err, taberr.ErrUnknownField))
}

func TestMatchesMissingNeverEqual(t *testing.T) {
	id := field.New("t", "score", types.T_int64)
	s := testutil.MustStore(testutil.NewColumn(id, testutil.WithMissing(testutil.Int64s(3, 0, 1), 1)))
	v, err := view.ProjectAll(s)
	require.NoError(t, err)

	ok, err := apply.Matches(v, "score", 1, types.NewInt64(0))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFilterIndices(t *testing.T) {
	v, err := view.ProjectAll(testutil.ExtraEmpTable())
	require.NoError(t, err)

	sels, err := apply.FilterIndices(v, "VacationHrs", func(val types.Value) bool {
		return val.Float64() > 20
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 6}, sels)

	_, err = apply.FilterIndices(v, "Ghost", nil)
	assert.True(t, taberr.IsTabErrCode(err, taberr.ErrUnknownField))
}

func TestFilterIndicesSkipsMissing(t *testing.T) {
	id := field.New("t", "score", types.T_int64)
	s := testutil.MustStore(testutil.NewColumn(id, testutil.WithMissing(testutil.Int64s(3, 0, 1), 1)))
	v, err := view.ProjectAll(s)
	require.NoError(t, err)

	sels, err := apply.FilterIndices(v, "score", func(types.Value) bool { return true })
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2}, sels)
}

func TestFilter(t *testing.T) {
	v, err := view.ProjectAll(testutil.ExtraEmpTable())
	require.NoError(t, err)

	got, err := apply.Filter(v, "DidTraining", func(val types.Value) bool {
		return val.Bool()
	})
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rows())
	assert.Equal(t, v.Names(), got.Names())

	hrs, err := got.Value("VacationHrs", 0)
	require.NoError(t, err)
	assert.Equal(t, 98.3, hrs.Float64())

	// the input is untouched
	assert.Equal(t, 7, v.Rows())
}

func TestUniqueIndices(t *testing.T) {
	id := field.New("t", "k", types.T_uint64)
	s := testutil.MustStore(testutil.NewColumn(id, testutil.Uint64s(1, 2, 1, 3, 2)))
	v, err := view.ProjectAll(s)
	require.NoError(t, err)

	sels, err := apply.UniqueIndices(v)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3}, sels)
}

func TestUniqueMissingIsOneValue(t *testing.T) {
	id := field.New("t", "k", types.T_uint64)
	s := testutil.MustStore(testutil.NewColumn(id,
		testutil.WithMissing(testutil.Uint64s(1, 0, 1, 0), 1, 3)))
	v, err := view.ProjectAll(s)
	require.NoError(t, err)

	sels, err := apply.UniqueIndices(v)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1}, sels)
}

func TestUniqueComposite(t *testing.T) {
	k := field.New("t", "k", types.T_uint64)
	s := field.New("t", "s", types.T_text)
	st := testutil.MustStore(
		testutil.NewColumn(k, testutil.Uint64s(1, 1, 2)),
		testutil.NewColumn(s, testutil.Texts("x", "y", "x")),
	)
	v, err := view.ProjectAll(st)
	require.NoError(t, err)

	sels, err := apply.UniqueIndices(v)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2}, sels)

	sels, err = apply.UniqueIndices(v, "k")
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2}, sels)

	_, err = apply.UniqueIndices(v, "Ghost")
	assert.True(t, taberr.IsTabErrCode(err, taberr.ErrUnknownField))
}

func TestUniqueFloats(t *testing.T) {
	id := field.New("t", "x", types.T_float64)
	s := testutil.MustStore(testutil.NewColumn(id,
		testutil.Float64s(math.NaN(), math.NaN(), 1, 0, math.Copysign(0, -1))))
	v, err := view.ProjectAll(s)
	require.NoError(t, err)

	sels, err := apply.UniqueIndices(v)
	require.NoError(t, err)
	// the NaNs collapse, and so do the signed zeros
	assert.Equal(t, []int64{0, 2, 3}, sels)
}

func TestUniqueTextBoundaries(t *testing.T) {
	a := field.New("t", "a", types.T_text)
	b := field.New("t", "b", types.T_text)
	s := testutil.MustStore(
		testutil.NewColumn(a, testutil.Texts("x|", "x", "x")),
		testutil.NewColumn(b, testutil.Texts("y", "|y", "|y")),
	)
	v, err := view.ProjectAll(s)
	require.NoError(t, err)

	sels, err := apply.UniqueIndices(v)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1}, sels)
}

func TestUnique(t *testing.T) {
	id := field.New("t", "k", types.T_uint64)
	s := testutil.MustStore(testutil.NewColumn(id, testutil.Uint64s(7, 7, 8)))
	v, err := view.ProjectAll(s)
	require.NoError(t, err)

	got, err := apply.Unique(v)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Rows())
	first, err := got.Value("k", 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), first.Uint64())
	second, err := got.Value("k", 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), second.Uint64())
}

func TestUniqueProjectsToNames(t *testing.T) {
	v, err := view.ProjectAll(testutil.EmpTable())
	require.NoError(t, err)

	got, err := apply.Unique(v, "DeptId")
	require.NoError(t, err)
	assert.Equal(t, []string{"DeptId"}, got.Names())
	assert.Equal(t, 4, got.Rows())
}

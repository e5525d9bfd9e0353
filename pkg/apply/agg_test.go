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

func intView(t *testing.T, vals []types.Value) *view.View {
	id := field.New("t", "x", types.T_int64)
	v, err := view.ProjectAll(testutil.MustStore(testutil.NewColumn(id, vals)))
	require.NoError(t, err)
	return v
}

func TestCounts(t *testing.T) {
	v := intView(t, testutil.WithMissing(testutil.Int64s(1, 2, 3, 4, 0), 4))

	present, err := apply.NumPresent(v, "x")
	require.NoError(t, err)
	assert.Equal(t, 4, present)

	missing, err := apply.NumMissing(v, "x")
	require.NoError(t, err)
	assert.Equal(t, 1, missing)

	_, err = apply.NumPresent(v, "Ghost")
	assert.True(t, taberr.IsTabErrCode(err, taberr.ErrUnknownField))
}

func TestSum(t *testing.T) {
	v := intView(t, testutil.WithMissing(testutil.Int64s(1, 2, 3, 4, 99), 4))
	got, err := apply.Sum(v, "x")
	require.NoError(t, err)
	assert.Equal(t, types.NewInt64(10), got)
}

func TestSumBoolCountsTrue(t *testing.T) {
	id := field.New("t", "flag", types.T_bool)
	v, err := view.ProjectAll(testutil.MustStore(
		testutil.NewColumn(id, testutil.Bools(true, false, true))))
	require.NoError(t, err)

	got, err := apply.Sum(v, "flag")
	require.NoError(t, err)
	assert.Equal(t, types.NewUint64(2), got)
}

func TestSumText(t *testing.T) {
	v, err := view.ProjectAll(testutil.EmpTable())
	require.NoError(t, err)
	_, err = apply.Sum(v, "EmpName")
	assert.True(t, taberr.IsTabErrCode(err, taberr.ErrTypeMismatch))
	_, err = apply.Mean(v, "EmpName")
	assert.True(t, taberr.IsTabErrCode(err, taberr.ErrTypeMismatch))
	_, err = apply.Variance(v, "EmpName")
	assert.True(t, taberr.IsTabErrCode(err, taberr.ErrTypeMismatch))
}

func TestMeanVarianceStdev(t *testing.T) {
	v := intView(t, testutil.WithMissing(testutil.Int64s(1, 2, 3, 4, 99), 4))

	mean, err := apply.Mean(v, "x")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, mean, 1e-12)

	va, err := apply.Variance(v, "x")
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3.0, va, 1e-9)

	sd, err := apply.Stdev(v, "x")
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(5.0/3.0), sd, 1e-9)
}

func TestStatsNoPresentRows(t *testing.T) {
	id := field.New("t", "x", types.T_float64)
	v, err := view.ProjectAll(testutil.MustStore(
		testutil.NewColumn(id, testutil.WithMissing(testutil.Float64s(0, 0), 0, 1))))
	require.NoError(t, err)

	got, err := apply.Sum(v, "x")
	require.NoError(t, err)
	assert.Equal(t, types.NewFloat64(0), got)

	mean, err := apply.Mean(v, "x")
	require.NoError(t, err)
	assert.Equal(t, 0.0, mean)

	va, err := apply.Variance(v, "x")
	require.NoError(t, err)
	assert.Equal(t, 0.0, va)

	mn, err := apply.Min(v, "x")
	require.NoError(t, err)
	assert.True(t, mn.IsNull())

	mx, err := apply.Max(v, "x")
	require.NoError(t, err)
	assert.True(t, mx.IsNull())
}

func TestVarianceSingleRow(t *testing.T) {
	v := intView(t, testutil.Int64s(42))
	va, err := apply.Variance(v, "x")
	require.NoError(t, err)
	assert.Equal(t, 0.0, va)
}

func TestMeanBool(t *testing.T) {
	id := field.New("t", "flag", types.T_bool)
	v, err := view.ProjectAll(testutil.MustStore(
		testutil.NewColumn(id, testutil.Bools(true, false, true, false))))
	require.NoError(t, err)

	mean, err := apply.Mean(v, "flag")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mean, 1e-12)
}

func TestMinMax(t *testing.T) {
	v, err := view.ProjectAll(testutil.EmpTable())
	require.NoError(t, err)

	mn, err := apply.Min(v, "EmpName")
	require.NoError(t, err)
	assert.Equal(t, types.NewText("Ann"), mn)

	mx, err := apply.Max(v, "EmpName")
	require.NoError(t, err)
	assert.Equal(t, types.NewText("Sally"), mx)

	mni, err := apply.Min(v, "EmpId")
	require.NoError(t, err)
	assert.Equal(t, types.NewUint64(0), mni)

	mxi, err := apply.Max(v, "EmpId")
	require.NoError(t, err)
	assert.Equal(t, types.NewUint64(10), mxi)
}

func TestMinMaxFloatNaN(t *testing.T) {
	id := field.New("t", "x", types.T_float64)
	v, err := view.ProjectAll(testutil.MustStore(
		testutil.NewColumn(id, testutil.Float64s(2.5, math.NaN(), -1))))
	require.NoError(t, err)

	mn, err := apply.Min(v, "x")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(mn.Float64()))

	mx, err := apply.Max(v, "x")
	require.NoError(t, err)
	assert.Equal(t, 2.5, mx.Float64())
}

func TestMinMaxBool(t *testing.T) {
	id := field.New("t", "flag", types.T_bool)
	v, err := view.ProjectAll(testutil.MustStore(
		testutil.NewColumn(id, testutil.Bools(true, true))))
	require.NoError(t, err)

	mn, err := apply.Min(v, "flag")
	require.NoError(t, err)
	assert.Equal(t, types.NewBool(true), mn)

	mx, err := apply.Max(v, "flag")
	require.NoError(t, err)
	assert.Equal(t, types.NewBool(true), mx)
}

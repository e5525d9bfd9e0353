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
	"fmt"
	"math"

	"github.com/matrixorigin/tabular/pkg/common/taberr"
	"github.com/matrixorigin/tabular/pkg/container/nulls"
	"github.com/matrixorigin/tabular/pkg/container/types"
	"github.com/matrixorigin/tabular/pkg/container/vector"
	"github.com/matrixorigin/tabular/pkg/vectorize/max"
	"github.com/matrixorigin/tabular/pkg/vectorize/min"
	"github.com/matrixorigin/tabular/pkg/vectorize/sum"
	"github.com/matrixorigin/tabular/pkg/view"
)

// NumPresent counts the rows of the named field holding a value.
func NumPresent(v *view.View, name string) (int, error) {
	vec, err := v.Column(name)
	if err != nil {
		return 0, err
	}
	return vec.Length() - nulls.Count(vec.Nulls()), nil
}

// NumMissing counts the missing rows of the named field.
func NumMissing(v *view.View, name string) (int, error) {
	vec, err := v.Column(name)
	if err != nil {
		return 0, err
	}
	return nulls.Count(vec.Nulls()), nil
}

// Sum adds up the present rows of the named field. A bool field sums to
// its count of true rows. A field with no present rows sums to the zero
// of its type.
func Sum(v *view.View, name string) (types.Value, error) {
	vec, err := v.Column(name)
	if err != nil {
		return types.Value{}, err
	}
	sels := presentSels(vec)
	switch vec.Tag() {
	case types.T_uint64:
		return types.NewUint64(sum.SumSels(vector.MustCols[uint64](vec), sels)), nil
	case types.T_int64:
		return types.NewInt64(sum.SumSels(vector.MustCols[int64](vec), sels)), nil
	case types.T_float64:
		return types.NewFloat64(sum.SumSels(vector.MustCols[float64](vec), sels)), nil
	case types.T_bool:
		return types.NewUint64(sum.BoolSumSels(vector.MustCols[bool](vec), sels)), nil
	default:
		return types.Value{}, taberr.NewTypeMismatch("cannot sum %s field %s", vec.Tag(), name)
	}
}

// Mean averages the present rows of the named field, counting bool rows
// as 0 and 1. A field with no present rows averages to 0.
func Mean(v *view.View, name string) (float64, error) {
	vec, err := v.Column(name)
	if err != nil {
		return 0, err
	}
	sels := presentSels(vec)
	total, _, ok := floatSums(vec, sels)
	if !ok {
		return 0, taberr.NewTypeMismatch("cannot average %s field %s", vec.Tag(), name)
	}
	if len(sels) == 0 {
		return 0, nil
	}
	return total / float64(len(sels)), nil
}

// Variance returns the sample variance of the present rows of the named
// field, 0 when fewer than two rows are present.
func Variance(v *view.View, name string) (float64, error) {
	vec, err := v.Column(name)
	if err != nil {
		return 0, err
	}
	sels := presentSels(vec)
	total, squares, ok := floatSums(vec, sels)
	if !ok {
		return 0, taberr.NewTypeMismatch("cannot take the variance of %s field %s", vec.Tag(), name)
	}
	if len(sels) < 2 {
		return 0, nil
	}
	n := float64(len(sels))
	mean := total / n
	return squares/(n-1) - n/(n-1)*mean*mean, nil
}

// Stdev returns the sample standard deviation of the present rows of
// the named field.
func Stdev(v *view.View, name string) (float64, error) {
	va, err := Variance(v, name)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(va), nil
}

// Min returns the smallest present value of the named field, or the
// missing value when no row is present. NaN orders below every number.
func Min(v *view.View, name string) (types.Value, error) {
	vec, err := v.Column(name)
	if err != nil {
		return types.Value{}, err
	}
	sels := presentSels(vec)
	if len(sels) == 0 {
		return types.Null(vec.Tag()), nil
	}
	switch vec.Tag() {
	case types.T_uint64:
		return types.NewUint64(min.MinSels(vector.MustCols[uint64](vec), sels)), nil
	case types.T_int64:
		return types.NewInt64(min.MinSels(vector.MustCols[int64](vec), sels)), nil
	case types.T_float64:
		return types.NewFloat64(min.FloatMinSels(vector.MustCols[float64](vec), sels)), nil
	case types.T_bool:
		return types.NewBool(min.BoolMinSels(vector.MustCols[bool](vec), sels)), nil
	case types.T_text:
		return types.NewText(min.MinSels(vector.MustCols[string](vec), sels)), nil
	default:
		panic(fmt.Sprintf("unexpect type %s for function apply.Min", vec.Tag()))
	}
}

// Max returns the largest present value of the named field, or the
// missing value when no row is present. NaN orders below every number.
func Max(v *view.View, name string) (types.Value, error) {
	vec, err := v.Column(name)
	if err != nil {
		return types.Value{}, err
	}
	sels := presentSels(vec)
	if len(sels) == 0 {
		return types.Null(vec.Tag()), nil
	}
	switch vec.Tag() {
	case types.T_uint64:
		return types.NewUint64(max.MaxSels(vector.MustCols[uint64](vec), sels)), nil
	case types.T_int64:
		return types.NewInt64(max.MaxSels(vector.MustCols[int64](vec), sels)), nil
	case types.T_float64:
		return types.NewFloat64(max.FloatMaxSels(vector.MustCols[float64](vec), sels)), nil
	case types.T_bool:
		return types.NewBool(max.BoolMaxSels(vector.MustCols[bool](vec), sels)), nil
	case types.T_text:
		return types.NewText(max.MaxSels(vector.MustCols[string](vec), sels)), nil
	default:
		panic(fmt.Sprintf("unexpect type %s for function apply.Max", vec.Tag()))
	}
}

// presentSels returns the rows of vec holding a value, in row order.
func presentSels(vec vector.AnyVector) []int64 {
	nsp := vec.Nulls()
	sels := make([]int64, 0, vec.Length())
	for i := 0; i < vec.Length(); i++ {
		if !nulls.Contains(nsp, uint64(i)) {
			sels = append(sels, int64(i))
		}
	}
	return sels
}

// floatSums accumulates the selected rows and their squares in float64.
// The third result is false for a field no arithmetic is defined on.
func floatSums(vec vector.AnyVector, sels []int64) (total, squares float64, ok bool) {
	switch vec.Tag() {
	case types.T_uint64:
		xs := vector.MustCols[uint64](vec)
		return sum.FloatSumSels(xs, sels), sum.FloatSquareSumSels(xs, sels), true
	case types.T_int64:
		xs := vector.MustCols[int64](vec)
		return sum.FloatSumSels(xs, sels), sum.FloatSquareSumSels(xs, sels), true
	case types.T_float64:
		xs := vector.MustCols[float64](vec)
		return sum.FloatSumSels(xs, sels), sum.FloatSquareSumSels(xs, sels), true
	case types.T_bool:
		// ones and zeros square to themselves
		n := float64(sum.BoolSumSels(vector.MustCols[bool](vec), sels))
		return n, n, true
	}
	return 0, 0, false
}

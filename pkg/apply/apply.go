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

// Package apply holds the row level operations over views: filtering,
// deduplication and the field statistics.
package apply

import (
	"math"
	"strconv"
	"strings"

	"github.com/matrixorigin/tabular/pkg/common/taberr"
	"github.com/matrixorigin/tabular/pkg/container/nulls"
	"github.com/matrixorigin/tabular/pkg/container/types"
	"github.com/matrixorigin/tabular/pkg/container/vector"
	"github.com/matrixorigin/tabular/pkg/view"
)

// Pred decides whether a row survives a filter. It only ever sees
// present values.
type Pred func(types.Value) bool

// Matches reports whether the named field equals target at one row.
// A missing value matches nothing, not even another missing value.
func Matches(v *view.View, name string, row int, target types.Value) (bool, error) {
	vec, err := v.Column(name)
	if err != nil {
		return false, err
	}
	if row < 0 || row >= v.Rows() {
		return false, taberr.NewIndexOutOfRange(int64(row), int64(v.Rows()))
	}
	if vec.Tag() != target.Tag() {
		return false, taberr.NewTypeMismatch("expecting %s, got %s", vec.Tag(), target.Tag())
	}
	if nulls.Contains(vec.Nulls(), uint64(row)) {
		return false, nil
	}
	val, err := vec.GetValue(row)
	if err != nil {
		return false, err
	}
	return types.Equal(val, target), nil
}

// FilterIndices returns the rows of the named field whose value
// satisfies pred, in row order. Missing rows never pass.
func FilterIndices(v *view.View, name string, pred Pred) ([]int64, error) {
	vec, err := v.Column(name)
	if err != nil {
		return nil, err
	}
	nsp := vec.Nulls()
	sels := make([]int64, 0, v.Rows())
	for row := 0; row < v.Rows(); row++ {
		if nulls.Contains(nsp, uint64(row)) {
			continue
		}
		val, err := vec.GetValue(row)
		if err != nil {
			return nil, err
		}
		if pred(val) {
			sels = append(sels, int64(row))
		}
	}
	return sels, nil
}

// Filter copies the rows whose value of the named field satisfies pred
// into a fresh store.
func Filter(v *view.View, name string, pred Pred) (*view.View, error) {
	sels, err := FilterIndices(v, name, pred)
	if err != nil {
		return nil, err
	}
	return v.Gather(sels)
}

// UniqueIndices returns the first row of every distinct combination the
// named fields hold, in row order. Without names the whole row is the
// key. Missing counts as one distinct value per field.
func UniqueIndices(v *view.View, names ...string) ([]int64, error) {
	if len(names) == 0 {
		names = v.Names()
	}
	vecs := make([]vector.AnyVector, len(names))
	for i, name := range names {
		vec, err := v.Column(name)
		if err != nil {
			return nil, err
		}
		vecs[i] = vec
	}
	seen := make(map[string]struct{}, v.Rows())
	var sels []int64
	var sb strings.Builder
	for row := 0; row < v.Rows(); row++ {
		sb.Reset()
		for _, vec := range vecs {
			val, err := vec.GetValue(row)
			if err != nil {
				return nil, err
			}
			encodeValue(&sb, val)
		}
		key := sb.String()
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			sels = append(sels, int64(row))
		}
	}
	return sels, nil
}

// Unique copies the first occurrence of every distinct combination into
// a fresh store, projected to the named fields when any are given.
func Unique(v *view.View, names ...string) (*view.View, error) {
	sels, err := UniqueIndices(v, names...)
	if err != nil {
		return nil, err
	}
	if len(names) > 0 {
		if v, err = v.Subview(names...); err != nil {
			return nil, err
		}
	}
	return v.Gather(sels)
}

// encodeValue appends a self delimiting encoding of val. Two values get
// the same encoding exactly when they are equal, with negative zero
// folded into zero.
func encodeValue(sb *strings.Builder, val types.Value) {
	if val.IsNull() {
		sb.WriteByte('n')
		sb.WriteByte('|')
		return
	}
	sb.WriteByte('v')
	switch val.Tag() {
	case types.T_uint64:
		sb.WriteString(strconv.FormatUint(val.Uint64(), 16))
	case types.T_int64:
		sb.WriteString(strconv.FormatInt(val.Int64(), 16))
	case types.T_float64:
		f := val.Float64()
		if f == 0 {
			f = 0
		}
		sb.WriteString(strconv.FormatUint(math.Float64bits(f), 16))
	case types.T_bool:
		if val.Bool() {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	case types.T_text:
		s := val.Text()
		sb.WriteString(strconv.Itoa(len(s)))
		sb.WriteByte(':')
		sb.WriteString(s)
	}
	sb.WriteByte('|')
}

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

// Package sort orders the rows of a view. Order computes a stable
// permutation of the row indices without touching the columns; Sort
// materializes that permutation into a fresh store.
package sort

import (
	"fmt"
	"math"
	stdsort "sort"

	"github.com/matrixorigin/tabular/pkg/common/taberr"
	"github.com/matrixorigin/tabular/pkg/container/nulls"
	"github.com/matrixorigin/tabular/pkg/container/types"
	"github.com/matrixorigin/tabular/pkg/container/vector"
	"github.com/matrixorigin/tabular/pkg/view"
)

// Key names one field to order by. Desc reverses the whole order for
// that field, so missing rows move from first to last.
type Key struct {
	Name string
	Desc bool
}

// By builds an ascending key for name.
func By(name string) Key {
	return Key{Name: name}
}

// ByDesc builds a descending key for name.
func ByDesc(name string) Key {
	return Key{Name: name, Desc: true}
}

// New returns a three way comparison over the rows of vec. Missing rows
// order before every present row, and a float column orders its NaN
// rows after the missing rows but before all numbers.
func New(vec vector.AnyVector, desc bool) func(a, b int64) int {
	var cmp func(a, b int64) int
	nsp := vec.Nulls()
	switch vec.Tag() {
	case types.T_uint64:
		cmp = compareAt(vector.MustCols[uint64](vec), nsp, compareOrdered[uint64])
	case types.T_int64:
		cmp = compareAt(vector.MustCols[int64](vec), nsp, compareOrdered[int64])
	case types.T_float64:
		cmp = compareAt(vector.MustCols[float64](vec), nsp, compareFloat)
	case types.T_bool:
		cmp = compareAt(vector.MustCols[bool](vec), nsp, compareBool)
	case types.T_text:
		cmp = compareAt(vector.MustCols[string](vec), nsp, compareOrdered[string])
	default:
		panic(fmt.Sprintf("unexpect type %s for function sort.New", vec.Tag()))
	}
	if desc {
		return func(a, b int64) int {
			return -cmp(a, b)
		}
	}
	return cmp
}

// NewCross returns a comparison between row a of l and row b of r. The
// two columns must carry the same tag and the compared rows must both
// be present.
func NewCross(l, r vector.AnyVector) func(a, b int64) int {
	switch l.Tag() {
	case types.T_uint64:
		return crossAt(vector.MustCols[uint64](l), vector.MustCols[uint64](r), compareOrdered[uint64])
	case types.T_int64:
		return crossAt(vector.MustCols[int64](l), vector.MustCols[int64](r), compareOrdered[int64])
	case types.T_float64:
		return crossAt(vector.MustCols[float64](l), vector.MustCols[float64](r), compareFloat)
	case types.T_bool:
		return crossAt(vector.MustCols[bool](l), vector.MustCols[bool](r), compareBool)
	case types.T_text:
		return crossAt(vector.MustCols[string](l), vector.MustCols[string](r), compareOrdered[string])
	default:
		panic(fmt.Sprintf("unexpect type %s for function sort.NewCross", l.Tag()))
	}
}

// Order returns a stable permutation of the row indices of v ordered by
// keys. Rows that compare equal on every key keep their original
// relative order.
func Order(v *view.View, keys ...Key) ([]int64, error) {
	if len(keys) == 0 {
		return nil, taberr.NewInvalidInput("sort needs at least one key")
	}
	cmps := make([]func(a, b int64) int, 0, len(keys))
	for _, key := range keys {
		vec, err := v.Column(key.Name)
		if err != nil {
			return nil, err
		}
		cmps = append(cmps, New(vec, key.Desc))
	}
	os := make([]int64, v.Rows())
	for i := range os {
		os[i] = int64(i)
	}
	stdsort.SliceStable(os, func(i, j int) bool {
		for _, cmp := range cmps {
			if r := cmp(os[i], os[j]); r != 0 {
				return r < 0
			}
		}
		return false
	})
	return os, nil
}

// OrderRows stably sorts the row indices in sels by the values the key
// columns hold at those rows, ascending.
func OrderRows(keys []vector.AnyVector, sels []int64) {
	cmps := make([]func(a, b int64) int, len(keys))
	for i, key := range keys {
		cmps[i] = New(key, false)
	}
	stdsort.SliceStable(sels, func(i, j int) bool {
		for _, cmp := range cmps {
			if r := cmp(sels[i], sels[j]); r != 0 {
				return r < 0
			}
		}
		return false
	})
}

// Sort copies the rows of v in key order into a fresh store and returns
// a view over it. The input view and its stores are left untouched.
func Sort(v *view.View, keys ...Key) (*view.View, error) {
	os, err := Order(v, keys...)
	if err != nil {
		return nil, err
	}
	return v.Gather(os)
}

func compareAt[E types.Element](cols []E, nsp *nulls.Nulls, cmp func(a, b E) int) func(a, b int64) int {
	return func(a, b int64) int {
		am := nulls.Contains(nsp, uint64(a))
		bm := nulls.Contains(nsp, uint64(b))
		if am || bm {
			if am && bm {
				return 0
			}
			if am {
				return -1
			}
			return 1
		}
		return cmp(cols[a], cols[b])
	}
}

func crossAt[E types.Element](ls, rs []E, cmp func(a, b E) int) func(a, b int64) int {
	return func(a, b int64) int {
		return cmp(ls[a], rs[b])
	}
}

func compareOrdered[E uint64 | int64 | string](a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	an := math.IsNaN(a)
	bn := math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return -1
	case bn:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareBool(a, b bool) int {
	switch {
	case !a && b:
		return -1
	case a && !b:
		return 1
	}
	return 0
}

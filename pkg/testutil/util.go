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

// Package testutil builds the fixture stores the engine tests share.
package testutil

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/matrixorigin/tabular/pkg/container/field"
	"github.com/matrixorigin/tabular/pkg/container/store"
	"github.com/matrixorigin/tabular/pkg/container/types"
)

// Column pairs a field identity with its values for MustStore.
type Column struct {
	ID   field.Ident
	Vals []types.Value
}

func NewColumn(id field.Ident, vals []types.Value) Column {
	return Column{ID: id, Vals: vals}
}

// MustStore builds a frozen store from the given columns, panicking on
// any builder error.  Fixtures are static, so a failure here is a bug
// in the test itself.
func MustStore(cols ...Column) *store.Store {
	b := store.Build()
	for _, c := range cols {
		if err := b.AddField(c.ID); err != nil {
			panic(err)
		}
	}
	for _, c := range cols {
		for _, v := range c.Vals {
			if err := b.AppendValue(c.ID, v); err != nil {
				panic(err)
			}
		}
	}
	s, err := b.Freeze()
	if err != nil {
		panic(err)
	}
	return s
}

func Uint64s(vs ...uint64) []types.Value {
	vals := make([]types.Value, len(vs))
	for i, v := range vs {
		vals[i] = types.NewUint64(v)
	}
	return vals
}

func Int64s(vs ...int64) []types.Value {
	vals := make([]types.Value, len(vs))
	for i, v := range vs {
		vals[i] = types.NewInt64(v)
	}
	return vals
}

func Float64s(vs ...float64) []types.Value {
	vals := make([]types.Value, len(vs))
	for i, v := range vs {
		vals[i] = types.NewFloat64(v)
	}
	return vals
}

func Bools(vs ...bool) []types.Value {
	vals := make([]types.Value, len(vs))
	for i, v := range vs {
		vals[i] = types.NewBool(v)
	}
	return vals
}

func Texts(vs ...string) []types.Value {
	vals := make([]types.Value, len(vs))
	for i, v := range vs {
		vals[i] = types.NewText(v)
	}
	return vals
}

// WithMissing returns a copy of vals with the given rows replaced by
// missing markers of the same tag.
func WithMissing(vals []types.Value, rows ...int) []types.Value {
	out := make([]types.Value, len(vals))
	copy(out, vals)
	for _, row := range rows {
		out[row] = types.Null(vals[row].Tag())
	}
	return out
}

// Identities of the canonical fixture tables.
var (
	EmpID   = field.New("emp_table", "EmpId", types.T_uint64)
	EmpDept = field.New("emp_table", "DeptId", types.T_uint64)
	EmpName = field.New("emp_table", "EmpName", types.T_text)

	DeptID   = field.New("dept_table", "DeptId", types.T_uint64)
	DeptName = field.New("dept_table", "DeptName", types.T_text)

	SalaryOffset = field.New("extra_emp", "SalaryOffset", types.T_int64)
	DidTraining  = field.New("extra_emp", "DidTraining", types.T_bool)
	VacationHrs  = field.New("extra_emp", "VacationHrs", types.T_float64)
)

// EmpTable is seven employees across four departments.
func EmpTable() *store.Store {
	return MustStore(
		NewColumn(EmpID, Uint64s(0, 2, 5, 6, 8, 9, 10)),
		NewColumn(EmpDept, Uint64s(1, 2, 1, 1, 3, 4, 4)),
		NewColumn(EmpName, Texts("Sally", "Jamie", "Bob", "Cara", "Louis", "Louise", "Ann")),
	)
}

// DeptTable is the four departments the employees belong to.
func DeptTable() *store.Store {
	return MustStore(
		NewColumn(DeptID, Uint64s(1, 2, 3, 4)),
		NewColumn(DeptName, Texts("Marketing", "Sales", "Manufacturing", "R&D")),
	)
}

// ExtraEmpTable carries one row per employee of EmpTable, in the same
// row order.
func ExtraEmpTable() *store.Store {
	return MustStore(
		NewColumn(SalaryOffset, Int64s(-5, 4, 12, -33, 10, 0, -1)),
		NewColumn(DidTraining, Bools(false, false, true, true, true, false, true)),
		NewColumn(VacationHrs, Float64s(47.3, 54.1, 98.3, 12.2, -1.2, 5.4, 22.5)),
	)
}

// NewStore builds a store of n rows over the given tags, sequential or
// random, one column per tag.  Benchmarks size their inputs with it.
func NewStore(table string, tags []types.T, random bool, n int) *store.Store {
	cols := make([]Column, len(tags))
	for i, tag := range tags {
		id := field.New(table, "f"+strconv.Itoa(i), tag)
		cols[i] = NewColumn(id, NewValues(n, tag, random))
	}
	return MustStore(cols...)
}

// NewValues generates n values of one tag, sequential or random.
func NewValues(n int, tag types.T, random bool) []types.Value {
	switch tag {
	case types.T_uint64:
		return newUint64Values(n, random)
	case types.T_int64:
		return newInt64Values(n, random)
	case types.T_float64:
		return newFloat64Values(n, random)
	case types.T_bool:
		return newBoolValues(n)
	case types.T_text:
		return newTextValues(n, random)
	default:
		panic(fmt.Errorf("unsupport value's type '%v'", tag))
	}
}

func newUint64Values(n int, random bool) []types.Value {
	vals := make([]types.Value, n)
	for i := 0; i < n; i++ {
		v := uint64(i)
		if random {
			v = rand.Uint64()
		}
		vals[i] = types.NewUint64(v)
	}
	return vals
}

func newInt64Values(n int, random bool) []types.Value {
	vals := make([]types.Value, n)
	for i := 0; i < n; i++ {
		v := int64(i)
		if random {
			v = rand.Int63()
		}
		vals[i] = types.NewInt64(v)
	}
	return vals
}

func newFloat64Values(n int, random bool) []types.Value {
	vals := make([]types.Value, n)
	for i := 0; i < n; i++ {
		v := float64(i)
		if random {
			v = rand.Float64()
		}
		vals[i] = types.NewFloat64(v)
	}
	return vals
}

func newBoolValues(n int) []types.Value {
	vals := make([]types.Value, n)
	for i := 0; i < n; i++ {
		vals[i] = types.NewBool(i%2 == 0)
	}
	return vals
}

func newTextValues(n int, random bool) []types.Value {
	vals := make([]types.Value, n)
	for i := 0; i < n; i++ {
		v := i
		if random {
			v = rand.Int()
		}
		vals[i] = types.NewText(strconv.Itoa(v))
	}
	return vals
}

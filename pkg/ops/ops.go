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

package ops

import (
	"fmt"

	"github.com/matrixorigin/tabular/pkg/common/taberr"
	"github.com/matrixorigin/tabular/pkg/container/field"
	"github.com/matrixorigin/tabular/pkg/container/store"
	"github.com/matrixorigin/tabular/pkg/container/types"
	"github.com/matrixorigin/tabular/pkg/container/vector"
	"github.com/matrixorigin/tabular/pkg/view"
)

// Eval computes l op r row by row into a fresh column. The columns must
// hold the same number of rows. A row missing on one side takes the
// present side's value; a row missing on both stays missing.
func Eval(op Op, l, r vector.AnyVector) (vector.AnyVector, error) {
	if l.Length() != r.Length() {
		return nil, taberr.NewRowCountMismatch(l.Length(), r.Length())
	}
	tag, err := resultTag(op, l.Tag(), r.Tag())
	if err != nil {
		return nil, err
	}
	out := vector.NewOfTag(tag)
	for i := 0; i < l.Length(); i++ {
		lv, err := l.GetValue(i)
		if err != nil {
			return nil, err
		}
		rv, err := r.GetValue(i)
		if err != nil {
			return nil, err
		}
		var res types.Value
		switch {
		case lv.IsNull() && rv.IsNull():
			res = types.Null(tag)
		case lv.IsNull():
			res = widen(rv, tag)
		case rv.IsNull():
			res = widen(lv, tag)
		default:
			res = compute(op, tag, widen(lv, tag), widen(rv, tag))
		}
		if err := out.AppendValue(res); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// EvalScalar computes l op scalar row by row into a fresh column. A
// missing row or a missing scalar leaves the output row missing.
func EvalScalar(op Op, l vector.AnyVector, scalar types.Value) (vector.AnyVector, error) {
	tag, err := resultTag(op, l.Tag(), scalar.Tag())
	if err != nil {
		return nil, err
	}
	out := vector.NewOfTag(tag)
	for i := 0; i < l.Length(); i++ {
		lv, err := l.GetValue(i)
		if err != nil {
			return nil, err
		}
		if lv.IsNull() || scalar.IsNull() {
			if err := out.AppendValue(types.Null(tag)); err != nil {
				return nil, err
			}
			continue
		}
		res := compute(op, tag, widen(lv, tag), widen(scalar, tag))
		if err := out.AppendValue(res); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FieldOp evaluates left op right over two fields of v. The result is a
// single field view named after the expression, "left op right".
func FieldOp(v *view.View, left string, op Op, right string) (*view.View, error) {
	return FieldOpAs(v, left, op, right, fmt.Sprintf("%s %s %s", left, op, right))
}

// FieldOpAs evaluates left op right and names the result field name.
func FieldOpAs(v *view.View, left string, op Op, right string, name string) (*view.View, error) {
	lvec, err := v.Column(left)
	if err != nil {
		return nil, err
	}
	rvec, err := v.Column(right)
	if err != nil {
		return nil, err
	}
	out, err := Eval(op, lvec, rvec)
	if err != nil {
		return nil, err
	}
	id, err := v.Ident(left)
	if err != nil {
		return nil, err
	}
	return wrap(id.Table, name, out)
}

// ScalarOp evaluates name op scalar over one field of v. The result is
// a single field view keeping the source field's name.
func ScalarOp(v *view.View, name string, op Op, scalar types.Value) (*view.View, error) {
	return ScalarOpAs(v, name, op, scalar, name)
}

// ScalarOpAs evaluates name op scalar and names the result field out.
func ScalarOpAs(v *view.View, name string, op Op, scalar types.Value, out string) (*view.View, error) {
	vec, err := v.Column(name)
	if err != nil {
		return nil, err
	}
	res, err := EvalScalar(op, vec, scalar)
	if err != nil {
		return nil, err
	}
	id, err := v.Ident(name)
	if err != nil {
		return nil, err
	}
	return wrap(id.Table, out, res)
}

func wrap(table, name string, vec vector.AnyVector) (*view.View, error) {
	s, err := store.FromColumns(
		[]field.Ident{field.New(table, name, vec.Tag())},
		[]vector.AnyVector{vec},
	)
	if err != nil {
		return nil, err
	}
	return view.ProjectAll(s)
}

// resultTag widens the two operand types to the type the operation
// computes in. Division always computes in float. A lone bool takes the
// other side's type, counting as 0 and 1, while subtraction of whole
// numbers computes signed.
func resultTag(op Op, l, r types.T) (types.T, error) {
	if l == types.T_text || r == types.T_text || !l.Valid() || !r.Valid() {
		return 0, taberr.NewTypeMismatch("no %s arithmetic between %s and %s", op, l, r)
	}
	if op == Div {
		return types.T_float64, nil
	}
	if l == types.T_bool && r == types.T_bool {
		return types.T_bool, nil
	}
	if l == types.T_bool {
		l = r
	}
	if r == types.T_bool {
		r = l
	}
	if l == types.T_float64 || r == types.T_float64 {
		return types.T_float64, nil
	}
	if op == Sub {
		return types.T_int64, nil
	}
	if l == types.T_int64 || r == types.T_int64 {
		return types.T_int64, nil
	}
	return types.T_uint64, nil
}

// widen converts a present value to the result type. Whole number
// conversions wrap rather than fail.
func widen(val types.Value, to types.T) types.Value {
	if val.Tag() == to {
		return val
	}
	switch to {
	case types.T_uint64:
		switch val.Tag() {
		case types.T_int64:
			return types.NewUint64(uint64(val.Int64()))
		case types.T_bool:
			return types.NewUint64(boolBit(val.Bool()))
		}
	case types.T_int64:
		switch val.Tag() {
		case types.T_uint64:
			return types.NewInt64(int64(val.Uint64()))
		case types.T_bool:
			return types.NewInt64(int64(boolBit(val.Bool())))
		}
	case types.T_float64:
		switch val.Tag() {
		case types.T_uint64:
			return types.NewFloat64(float64(val.Uint64()))
		case types.T_int64:
			return types.NewFloat64(float64(val.Int64()))
		case types.T_bool:
			return types.NewFloat64(float64(boolBit(val.Bool())))
		}
	}
	panic(fmt.Sprintf("unexpect conversion %s to %s for function ops.widen", val.Tag(), to))
}

func compute(op Op, tag types.T, a, b types.Value) types.Value {
	switch tag {
	case types.T_uint64:
		x, y := a.Uint64(), b.Uint64()
		switch op {
		case Add:
			return types.NewUint64(x + y)
		case Sub:
			return types.NewUint64(x - y)
		case Mul:
			return types.NewUint64(x * y)
		}
	case types.T_int64:
		x, y := a.Int64(), b.Int64()
		switch op {
		case Add:
			return types.NewInt64(x + y)
		case Sub:
			return types.NewInt64(x - y)
		case Mul:
			return types.NewInt64(x * y)
		}
	case types.T_float64:
		x, y := a.Float64(), b.Float64()
		switch op {
		case Add:
			return types.NewFloat64(x + y)
		case Sub:
			return types.NewFloat64(x - y)
		case Mul:
			return types.NewFloat64(x * y)
		case Div:
			return types.NewFloat64(x / y)
		}
	case types.T_bool:
		x, y := a.Bool(), b.Bool()
		switch op {
		case Add:
			return types.NewBool(x || y)
		case Sub:
			return types.NewBool(x != y)
		case Mul:
			return types.NewBool(x && y)
		}
	}
	panic(fmt.Sprintf("unexpect type %s for function ops.compute", tag))
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

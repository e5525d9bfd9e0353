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

package vector

import (
	"fmt"

	"github.com/matrixorigin/tabular/pkg/common/taberr"
	"github.com/matrixorigin/tabular/pkg/container/nulls"
	"github.com/matrixorigin/tabular/pkg/container/types"
)

// AnyVector is the type-erased face of a column.  Stores and views hold
// columns behind this interface; code that knows the element type goes
// through the concrete Vector for slice access.
type AnyVector interface {
	Tag() types.T
	Length() int
	Nulls() *nulls.Nulls

	// GetValue returns the row as a tagged value, missing rows as a
	// null of the column's tag.
	GetValue(i int) (types.Value, error)
	// AppendValue appends one tagged value, rejecting values of a
	// different tag.
	AppendValue(val types.Value) error
	// Union appends the selected rows of src.
	Union(src AnyVector, sels []int64) error

	// NewEmpty returns a fresh writable vector of the same element type.
	NewEmpty() AnyVector

	// Freeze makes the vector read-only.  Every append past this point
	// fails with ErrInvalidState.
	Freeze()
	Frozen() bool

	String() string
}

// Vector represents a column: an append-only sequence of elements of one
// concrete type plus the bitmap of its missing rows.  A missing row
// keeps a zero element in col that is not semantically valid.
type Vector[E types.Element] struct {
	tag types.T
	col []E
	nsp *nulls.Nulls

	// read-only after the owning store freezes
	ro bool
}

func New[E types.Element]() *Vector[E] {
	return &Vector[E]{
		tag: types.TagOf[E](),
		nsp: nulls.New(),
	}
}

// NewOfTag builds an empty vector of the given dynamic tag.
func NewOfTag(tag types.T) AnyVector {
	switch tag {
	case types.T_uint64:
		return New[uint64]()
	case types.T_int64:
		return New[int64]()
	case types.T_float64:
		return New[float64]()
	case types.T_bool:
		return New[bool]()
	case types.T_text:
		return New[string]()
	default:
		panic(fmt.Sprintf("unexpect type %s for function vector.NewOfTag", tag))
	}
}

func (v *Vector[E]) Tag() types.T {
	return v.tag
}

func (v *Vector[E]) Length() int {
	return len(v.col)
}

func (v *Vector[E]) Nulls() *nulls.Nulls {
	return v.nsp
}

func (v *Vector[E]) Freeze() {
	v.ro = true
}

func (v *Vector[E]) Frozen() bool {
	return v.ro
}

func (v *Vector[E]) NewEmpty() AnyVector {
	return New[E]()
}

// Append adds one present value.
func (v *Vector[E]) Append(val E) error {
	if v.ro {
		return taberr.NewInvalidState("append to frozen vector")
	}
	v.col = append(v.col, val)
	v.nsp.Push(false)
	return nil
}

// AppendNull adds one missing row.
func (v *Vector[E]) AppendNull() error {
	if v.ro {
		return taberr.NewInvalidState("append to frozen vector")
	}
	var zero E
	v.col = append(v.col, zero)
	v.nsp.Push(true)
	return nil
}

// Get returns the element at row i and whether it is present.
func (v *Vector[E]) Get(i int) (E, bool, error) {
	var zero E
	if i < 0 || i >= len(v.col) {
		return zero, false, taberr.NewIndexOutOfRange(int64(i), int64(len(v.col)))
	}
	if nulls.Contains(v.nsp, uint64(i)) {
		return zero, false, nil
	}
	return v.col[i], true, nil
}

func (v *Vector[E]) GetValue(i int) (types.Value, error) {
	val, ok, err := v.Get(i)
	if err != nil {
		return types.Value{}, err
	}
	if !ok {
		return types.Null(v.tag), nil
	}
	return types.NewValue(val), nil
}

func (v *Vector[E]) AppendValue(val types.Value) error {
	if val.Tag() != v.tag {
		return taberr.NewTypeMismatch("cannot append %s value to %s column", val.Tag(), v.tag)
	}
	if val.IsNull() {
		return v.AppendNull()
	}
	e, _ := types.ValueAs[E](val)
	return v.Append(e)
}

// UnionOne appends row sel of w to v.
func (v *Vector[E]) UnionOne(w *Vector[E], sel int64) error {
	if v.ro {
		return taberr.NewInvalidState("union into frozen vector")
	}
	if sel < 0 || sel >= int64(len(w.col)) {
		return taberr.NewIndexOutOfRange(sel, int64(len(w.col)))
	}
	if nulls.Contains(w.nsp, uint64(sel)) {
		return v.AppendNull()
	}
	return v.Append(w.col[sel])
}

func (v *Vector[E]) Union(src AnyVector, sels []int64) error {
	w, ok := src.(*Vector[E])
	if !ok {
		return taberr.NewTypeMismatch("cannot union %s column into %s column", src.Tag(), v.tag)
	}
	for _, sel := range sels {
		if err := v.UnionOne(w, sel); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a writable copy of v with its own storage.
func (v *Vector[E]) Clone() *Vector[E] {
	w := &Vector[E]{
		tag: v.tag,
		col: make([]E, len(v.col)),
		nsp: v.nsp.Clone(),
	}
	copy(w.col, v.col)
	return w
}

// String function is used to visually display the vector,
// which is used to implement the Printf interface
func (v *Vector[E]) String() string {
	return fmt.Sprintf("%v-%s", v.col, nulls.String(v.nsp))
}

// Map builds a new column applying f to every present value of src.
// Missing rows carry over unchanged and f never sees them.
func Map[E, U types.Element](src *Vector[E], f func(E) U) *Vector[U] {
	out := &Vector[U]{
		tag: types.TagOf[U](),
		col: make([]U, len(src.col)),
		nsp: src.nsp.Clone(),
	}
	for i, e := range src.col {
		if !nulls.Contains(src.nsp, uint64(i)) {
			out.col[i] = f(e)
		}
	}
	return out
}

// MustCols returns the raw element slice of a vector known to hold E.
// It panics when the element type is not E.
func MustCols[E types.Element](v AnyVector) []E {
	return v.(*Vector[E]).col
}

// Values returns a cursor over the rows of v in storage order.
func (v *Vector[E]) Values() *Cursor[E] {
	return &Cursor[E]{vec: v}
}

// Cursor walks one column row by row, in the manner of sql.Rows:
//
//	cur := vec.Values()
//	for cur.Next() {
//		val, ok := cur.Value()
//		...
//	}
//
// Reset rewinds it for another pass.
type Cursor[E types.Element] struct {
	vec *Vector[E]
	i   int
}

// Next advances the cursor.  It returns false after the last row.
func (c *Cursor[E]) Next() bool {
	if c.i >= len(c.vec.col) {
		return false
	}
	c.i++
	return true
}

// Value returns the current row.  ok is false when the row is missing.
func (c *Cursor[E]) Value() (e E, ok bool) {
	i := c.i - 1
	if nulls.Contains(c.vec.nsp, uint64(i)) {
		return
	}
	return c.vec.col[i], true
}

func (c *Cursor[E]) Reset() {
	c.i = 0
}

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

package view

import (
	"fmt"

	"github.com/matrixorigin/tabular/pkg/common/taberr"
	"github.com/matrixorigin/tabular/pkg/container/field"
	"github.com/matrixorigin/tabular/pkg/container/store"
	"github.com/matrixorigin/tabular/pkg/container/types"
	"github.com/matrixorigin/tabular/pkg/container/vector"
)

// Project selects a subset of a store's fields.  Each field comes in
// under its identity's name; two selected identities sharing a name
// fail with DuplicateName.
func Project(s *store.Store, ids ...field.Ident) (*View, error) {
	v := &View{
		index: make(map[string]int, len(ids)),
		rows:  s.Rows(),
	}
	for _, id := range ids {
		vec, err := s.Column(id)
		if err != nil {
			return nil, err
		}
		if _, ok := v.index[id.Name]; ok {
			return nil, taberr.NewDuplicateName(id.Name)
		}
		v.index[id.Name] = len(v.names)
		v.names = append(v.names, id.Name)
		v.cols = append(v.cols, binding{store: s, id: id, vec: vec})
	}
	return v, nil
}

// ProjectAll spans every field of the store.
func ProjectAll(s *store.Store) (*View, error) {
	return Project(s, s.Idents()...)
}

// Merge unions the fields of two views with disjoint logical names and
// equal row counts.  The result references the same stores as the
// inputs; no column is copied.
func Merge(a, b *View) (*View, error) {
	if a.rows != b.rows {
		return nil, taberr.NewRowCountMismatch(a.rows, b.rows)
	}
	v := &View{
		names: make([]string, 0, len(a.names)+len(b.names)),
		cols:  make([]binding, 0, len(a.cols)+len(b.cols)),
		index: make(map[string]int, len(a.names)+len(b.names)),
		rows:  a.rows,
	}
	for i, name := range a.names {
		v.index[name] = len(v.names)
		v.names = append(v.names, name)
		v.cols = append(v.cols, a.cols[i])
	}
	for i, name := range b.names {
		if _, ok := v.index[name]; ok {
			return nil, taberr.NewNameCollision(name)
		}
		v.index[name] = len(v.names)
		v.names = append(v.names, name)
		v.cols = append(v.cols, b.cols[i])
	}
	return v, nil
}

// Rename returns a view with one logical name rewritten.  The field
// identity underneath does not change.
func (v *View) Rename(name, to string) (*View, error) {
	i, ok := v.index[name]
	if !ok {
		return nil, taberr.NewUnknownField(name)
	}
	if _, ok := v.index[to]; ok {
		return nil, taberr.NewDuplicateName(to)
	}
	w := v.clone()
	w.names[i] = to
	delete(w.index, name)
	w.index[to] = i
	return w, nil
}

// Subview narrows the view to the named fields, in the given order.
func (v *View) Subview(names ...string) (*View, error) {
	w := &View{
		names: make([]string, 0, len(names)),
		cols:  make([]binding, 0, len(names)),
		index: make(map[string]int, len(names)),
		rows:  v.rows,
	}
	for _, name := range names {
		i, ok := v.index[name]
		if !ok {
			return nil, taberr.NewUnknownField(name)
		}
		if _, ok := w.index[name]; ok {
			return nil, taberr.NewDuplicateName(name)
		}
		w.index[name] = len(w.names)
		w.names = append(w.names, name)
		w.cols = append(w.cols, v.cols[i])
	}
	return w, nil
}

// Gather copies the rows named by sels, in order, into a fresh store
// and returns a view over it. Row indices may repeat. The new store
// names its fields after the view's logical names, keeping the table of
// each source field.
func (v *View) Gather(sels []int64) (*View, error) {
	for _, sel := range sels {
		if sel < 0 || sel >= int64(v.rows) {
			return nil, taberr.NewIndexOutOfRange(sel, int64(v.rows))
		}
	}
	ids := make([]field.Ident, len(v.names))
	vecs := make([]vector.AnyVector, len(v.names))
	for i, name := range v.names {
		b := v.cols[i]
		dst := b.vec.NewEmpty()
		if err := dst.Union(b.vec, sels); err != nil {
			return nil, err
		}
		ids[i] = field.New(b.id.Table, name, b.vec.Tag())
		vecs[i] = dst
	}
	s, err := store.FromColumns(ids, vecs)
	if err != nil {
		return nil, err
	}
	return ProjectAll(s)
}

// Field returns an iterator over the named logical field.
func (v *View) Field(name string) (*FieldIter, error) {
	i, ok := v.index[name]
	if !ok {
		return nil, taberr.NewUnknownField(name)
	}
	return &FieldIter{vec: v.cols[i].vec, rows: v.rows}, nil
}

// Value reads one cell.
func (v *View) Value(name string, row int) (types.Value, error) {
	i, ok := v.index[name]
	if !ok {
		return types.Value{}, taberr.NewUnknownField(name)
	}
	if row < 0 || row >= v.rows {
		return types.Value{}, taberr.NewIndexOutOfRange(int64(row), int64(v.rows))
	}
	return v.cols[i].vec.GetValue(row)
}

// Column returns the column behind the named logical field.
func (v *View) Column(name string) (vector.AnyVector, error) {
	i, ok := v.index[name]
	if !ok {
		return nil, taberr.NewUnknownField(name)
	}
	return v.cols[i].vec, nil
}

// Ident returns the field identity behind the named logical field.
func (v *View) Ident(name string) (field.Ident, error) {
	i, ok := v.index[name]
	if !ok {
		return field.Ident{}, taberr.NewUnknownField(name)
	}
	return v.cols[i].id, nil
}

// Source returns the store that owns the named logical field.
func (v *View) Source(name string) (*store.Store, error) {
	i, ok := v.index[name]
	if !ok {
		return nil, taberr.NewUnknownField(name)
	}
	return v.cols[i].store, nil
}

// Names returns the logical names in field order.
func (v *View) Names() []string {
	names := make([]string, len(v.names))
	copy(names, v.names)
	return names
}

func (v *View) Rows() int {
	return v.rows
}

func (v *View) String() string {
	return fmt.Sprintf("view{fields: %v, rows: %d}", v.names, v.rows)
}

func (v *View) clone() *View {
	w := &View{
		names: make([]string, len(v.names)),
		cols:  make([]binding, len(v.cols)),
		index: make(map[string]int, len(v.index)),
		rows:  v.rows,
	}
	copy(w.names, v.names)
	copy(w.cols, v.cols)
	for name, i := range v.index {
		w.index[name] = i
	}
	return w
}

// Next returns the next value of the field.  The second result is
// false once the sequence is exhausted.
func (it *FieldIter) Next() (types.Value, bool) {
	if it.i >= it.rows {
		return types.Value{}, false
	}
	// rows never exceeds the column length
	val, err := it.vec.GetValue(it.i)
	if err != nil {
		return types.Value{}, false
	}
	it.i++
	return val, true
}

// Reset rewinds the iterator to the first row.
func (it *FieldIter) Reset() {
	it.i = 0
}

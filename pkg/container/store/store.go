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

package store

import (
	"bytes"
	"fmt"

	"github.com/matrixorigin/tabular/pkg/common/taberr"
	"github.com/matrixorigin/tabular/pkg/container/field"
	"github.com/matrixorigin/tabular/pkg/container/types"
	"github.com/matrixorigin/tabular/pkg/container/vector"
)

// Build starts the build phase of a new store.
func Build() *Builder {
	return &Builder{
		store: &Store{index: make(map[fieldKey]int)},
	}
}

// AddField declares a column.  Fields are declared before any row is
// appended; a second field with the same table and name fails with
// DuplicateField regardless of its tag.
func (b *Builder) AddField(id field.Ident) error {
	if b.done {
		return taberr.NewInvalidState("add field on a spent builder")
	}
	if !id.Typ.Valid() {
		return taberr.NewTypeMismatch("field %s declared with tag %s", id, id.Typ)
	}
	s := b.store
	for _, vec := range s.vecs {
		if vec.Length() > 0 {
			return taberr.NewInvalidState("add field after rows were appended")
		}
	}
	key := fieldKey{table: id.Table, name: id.Name}
	if _, ok := s.index[key]; ok {
		return taberr.NewDuplicateField(id.String())
	}
	s.index[key] = len(s.ids)
	s.ids = append(s.ids, id)
	s.vecs = append(s.vecs, vector.NewOfTag(id.Typ))
	return nil
}

// AppendValue appends one value to a single column.  Columns may grow
// unevenly during the build phase; Freeze rejects the store if they do
// not line up at the end.
func (b *Builder) AppendValue(id field.Ident, val types.Value) error {
	if b.done {
		return taberr.NewInvalidState("append on a spent builder")
	}
	vec, err := b.store.lookup(id)
	if err != nil {
		return err
	}
	return vec.AppendValue(val)
}

// AppendRow appends one value to every declared column.  Declared
// fields absent from the row are appended as missing; rows never pad a
// frozen store.
func (b *Builder) AppendRow(row map[field.Ident]types.Value) error {
	if b.done {
		return taberr.NewInvalidState("append on a spent builder")
	}
	s := b.store
	for id, val := range row {
		i, ok := s.index[fieldKey{table: id.Table, name: id.Name}]
		if !ok {
			return taberr.NewUnknownField(id.String())
		}
		declared := s.ids[i]
		if id.Typ != declared.Typ {
			return taberr.NewTypeMismatch("field %s declared %s, row uses %s",
				declared, declared.Typ, id.Typ)
		}
		if val.Tag() != declared.Typ {
			return taberr.NewTypeMismatch("field %s declared %s, value is %s",
				declared, declared.Typ, val.Tag())
		}
	}
	for i, id := range s.ids {
		val, ok := row[id]
		if !ok {
			val = types.Null(id.Typ)
		}
		if err := s.vecs[i].AppendValue(val); err != nil {
			return err
		}
	}
	return nil
}

// Freeze verifies that every column holds the same number of rows,
// makes the store immutable and hands it over.  The builder is spent
// afterwards.
func (b *Builder) Freeze() (*Store, error) {
	if b.done {
		return nil, taberr.NewInvalidState("freeze on a spent builder")
	}
	s := b.store
	if len(s.vecs) > 0 {
		want := s.vecs[0].Length()
		for i, vec := range s.vecs {
			if vec.Length() != want {
				return nil, taberr.NewInconsistentRowCount(s.ids[i].String(), vec.Length(), want)
			}
		}
		s.rows = want
	}
	for _, vec := range s.vecs {
		vec.Freeze()
	}
	b.done = true
	return s, nil
}

// FromColumns assembles a frozen store directly from prebuilt columns.
// The engine's own operators use it to materialize their results.
func FromColumns(ids []field.Ident, vecs []vector.AnyVector) (*Store, error) {
	if len(ids) != len(vecs) {
		return nil, taberr.NewInvalidInput("%d identities for %d columns", len(ids), len(vecs))
	}
	s := &Store{index: make(map[fieldKey]int, len(ids))}
	for i, id := range ids {
		if id.Typ != vecs[i].Tag() {
			return nil, taberr.NewTypeMismatch("field %s declared %s, column holds %s",
				id, id.Typ, vecs[i].Tag())
		}
		key := fieldKey{table: id.Table, name: id.Name}
		if _, ok := s.index[key]; ok {
			return nil, taberr.NewDuplicateField(id.String())
		}
		s.index[key] = len(s.ids)
		s.ids = append(s.ids, id)
		s.vecs = append(s.vecs, vecs[i])
	}
	if len(s.vecs) > 0 {
		want := s.vecs[0].Length()
		for i, vec := range s.vecs {
			if vec.Length() != want {
				return nil, taberr.NewInconsistentRowCount(s.ids[i].String(), vec.Length(), want)
			}
		}
		s.rows = want
	}
	for _, vec := range s.vecs {
		vec.Freeze()
	}
	return s, nil
}

func (s *Store) lookup(id field.Ident) (vector.AnyVector, error) {
	i, ok := s.index[fieldKey{table: id.Table, name: id.Name}]
	if !ok {
		return nil, taberr.NewUnknownField(id.String())
	}
	if id.Typ != s.ids[i].Typ {
		return nil, taberr.NewTypeMismatch("field %s holds %s, asked for %s",
			s.ids[i], s.ids[i].Typ, id.Typ)
	}
	return s.vecs[i], nil
}

// Column returns the column stored under id.  The tag of id must agree
// with the declared tag.
func (s *Store) Column(id field.Ident) (vector.AnyVector, error) {
	return s.lookup(id)
}

// Field returns the declared identity of the named column.
func (s *Store) Field(table, name string) (field.Ident, error) {
	i, ok := s.index[fieldKey{table: table, name: name}]
	if !ok {
		return field.Ident{}, taberr.NewUnknownField(table + "." + name)
	}
	return s.ids[i], nil
}

// Idents returns the field identities in declaration order.
func (s *Store) Idents() []field.Ident {
	ids := make([]field.Ident, len(s.ids))
	copy(ids, s.ids)
	return ids
}

func (s *Store) Rows() int {
	return s.rows
}

func (s *Store) String() string {
	var buf bytes.Buffer
	for i, vec := range s.vecs {
		buf.WriteString(fmt.Sprintf("%s : %s\n", s.ids[i], vec.String()))
	}
	return buf.String()
}

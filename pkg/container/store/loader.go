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
	"io"

	"github.com/matrixorigin/tabular/pkg/container/field"
	"github.com/matrixorigin/tabular/pkg/container/types"
)

// Row carries one row of loader output keyed by field identity.
// Declared fields left out of a Row load as missing.
type Row map[field.Ident]types.Value

// Loader is any producer that can declare its fields up front and then
// hand rows over one at a time.  Next returns io.EOF after the last
// row.  A CSV reader, a database cursor and an in-memory fixture are
// equally valid implementations; the engine itself ships none.
type Loader interface {
	Fields() []field.Ident
	Next() (Row, error)
}

// Populate drains l into a fresh frozen store.
func Populate(l Loader) (*Store, error) {
	b := Build()
	for _, id := range l.Fields() {
		if err := b.AddField(id); err != nil {
			return nil, err
		}
	}
	for {
		row, err := l.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := b.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return b.Freeze()
}

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
	"github.com/matrixorigin/tabular/pkg/container/field"
	"github.com/matrixorigin/tabular/pkg/container/store"
	"github.com/matrixorigin/tabular/pkg/container/vector"
)

// View maps logical field names onto columns of one or more frozen
// stores
//
//	(names) - logical names in field order
//	(cols)  - where each logical field physically lives
//
// Views never own data.  Projecting, renaming and merging only rewrite
// the mapping, so any number of views share one store's columns.
// Views are immutable; every operation returns a new one.
type View struct {
	names []string
	cols  []binding
	// position of each logical name in names/cols
	index map[string]int
	rows  int
}

// binding points one logical field at its physical column.  vec is the
// column itself, resolved once at construction.
type binding struct {
	store *store.Store
	id    field.Ident
	vec   vector.AnyVector
}

// FieldIter walks one logical field row by row, yielding missing rows
// as null values.  It is finite and restartable.
type FieldIter struct {
	vec  vector.AnyVector
	rows int
	i    int
}

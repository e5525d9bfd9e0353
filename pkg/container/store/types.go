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
	"github.com/matrixorigin/tabular/pkg/container/field"
	"github.com/matrixorigin/tabular/pkg/container/vector"
)

// Store owns an ordered set of columns addressed by field identity
//
//	(ids)  - field identities in declaration order
//	(vecs) - column data, one vector per identity
//
// A store is writable only through its Builder.  Once the builder
// freezes it, the store is immutable and safe for any number of
// concurrent readers.
type Store struct {
	ids  []field.Ident
	vecs []vector.AnyVector
	// position of each (table, name) pair in ids/vecs
	index map[fieldKey]int
	rows  int
}

// Builder accumulates fields and rows for one Store during the build
// phase.  It is single-writer: the store must not be shared before
// Freeze returns.  Every method fails with ErrInvalidState once the
// builder is spent.
type Builder struct {
	store *Store
	done  bool
}

// fields are unique by table and name; the declared tag is carried in
// the Ident and checked on access
type fieldKey struct {
	table string
	name  string
}

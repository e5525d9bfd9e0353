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

// Package field defines the identity by which columns are addressed.
package field

import (
	"github.com/matrixorigin/tabular/pkg/container/types"
)

// Ident identifies one column: the table namespace it was loaded from,
// its name within that table, and its declared type tag.  Idents are
// plain comparable values and key the maps of stores and views.
type Ident struct {
	Table string
	Name  string
	Typ   types.T
}

func New(table, name string, typ types.T) Ident {
	return Ident{Table: table, Name: name, Typ: typ}
}

// Same reports whether the two identities address the same column,
// ignoring the declared tag.
func (id Ident) Same(other Ident) bool {
	return id.Table == other.Table && id.Name == other.Name
}

func (id Ident) String() string {
	if id.Table == "" {
		return id.Name
	}
	return id.Table + "." + id.Name
}

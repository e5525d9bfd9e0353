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

// Package join matches the rows of two views on equal key fields and
// materializes the matching row pairs into a fresh store.
package join

import (
	"github.com/matrixorigin/tabular/pkg/container/store"
	"github.com/matrixorigin/tabular/pkg/view"
)

// Predicate pairs one left key field with one right key field. A row
// pair matches when every predicate of the join compares equal.
type Predicate struct {
	Left  string
	Right string
}

// On builds an equality predicate between a left and a right field.
func On(left, right string) Predicate {
	return Predicate{Left: left, Right: right}
}

// Result is a materialized join output. Store owns the copied columns
// and View presents them under their resolved output names.
type Result struct {
	Store *store.Store
	View  *view.View
}

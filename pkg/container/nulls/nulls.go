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

// Package nulls wraps the manipulation of the bitmap library roaring.
// A column stores all its missing rows in one Nulls.  You can think of
// Nulls as a bitmap with a length.
package nulls

import (
	"fmt"

	roaring "github.com/RoaringBitmap/roaring/roaring64"

	"github.com/matrixorigin/tabular/pkg/common/taberr"
)

// New returns an empty Nulls tracking zero rows.
func New() *Nulls {
	return &Nulls{np: roaring.New()}
}

// Build returns a Nulls tracking length rows with the given rows marked
// missing.
func Build(length int, rows ...uint64) *Nulls {
	nsp := New()
	nsp.rows = uint64(length)
	nsp.np.AddMany(rows)
	return nsp
}

// Push appends one row, missing or present.
func (nsp *Nulls) Push(missing bool) {
	if nsp.np == nil {
		nsp.np = roaring.New()
	}
	if missing {
		nsp.np.Add(nsp.rows)
	}
	nsp.rows++
}

// Set marks an already pushed row as missing.
func (nsp *Nulls) Set(row uint64) error {
	if row >= nsp.rows {
		return taberr.NewIndexOutOfRange(int64(row), int64(nsp.rows))
	}
	if nsp.np == nil {
		nsp.np = roaring.New()
	}
	nsp.np.Add(row)
	return nil
}

// Contains returns true if the row is missing.
func (nsp *Nulls) Contains(row uint64) bool {
	return nsp != nil && nsp.np != nil && nsp.np.Contains(row)
}

// Length returns the total number of rows tracked, present and missing.
func (nsp *Nulls) Length() int {
	if nsp == nil {
		return 0
	}
	return int(nsp.rows)
}

// Count returns the number of missing rows.
func (nsp *Nulls) Count() int {
	if nsp == nil || nsp.np == nil {
		return 0
	}
	return int(nsp.np.GetCardinality())
}

func (nsp *Nulls) Clone() *Nulls {
	if nsp == nil {
		return nil
	}
	m := &Nulls{rows: nsp.rows}
	if nsp.np != nil {
		m.np = nsp.np.Clone()
	}
	return m
}

// ToArray returns the missing row numbers in ascending order.
func (nsp *Nulls) ToArray() []uint64 {
	if nsp == nil || nsp.np == nil {
		return []uint64{}
	}
	return nsp.np.ToArray()
}

// Any returns true if any row in the Nulls is missing, otherwise it
// will return false.
func Any(nsp *Nulls) bool {
	if nsp == nil || nsp.np == nil {
		return false
	}
	return !nsp.np.IsEmpty()
}

// Contains returns true if the row is missing in nsp.
func Contains(nsp *Nulls, row uint64) bool {
	return nsp != nil && nsp.np != nil && nsp.np.Contains(row)
}

// Count returns the number of missing rows in nsp.
func Count(nsp *Nulls) int {
	if nsp == nil {
		return 0
	}
	return nsp.Count()
}

func String(nsp *Nulls) string {
	if nsp == nil || nsp.np == nil {
		return "[]"
	}
	return fmt.Sprintf("%v", nsp.np.ToArray())
}

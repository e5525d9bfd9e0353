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

package nulls

import (
	roaring "github.com/RoaringBitmap/roaring/roaring64"
)

// Nulls records which rows of one column are missing.  The bitmap holds
// the missing row numbers, rows is the total number of rows tracked so
// far.  Rows are only ever appended, so the bitmap never shrinks.
type Nulls struct {
	np   *roaring.Bitmap
	rows uint64
}

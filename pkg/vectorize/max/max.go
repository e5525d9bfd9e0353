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

// Package max holds the maximum kernels. The Sels variants only touch
// the rows named by sels and expect at least one selected row.
package max

import "math"

func MaxSels[E uint64 | int64 | string](xs []E, sels []int64) E {
	res := xs[sels[0]]

	for _, sel := range sels[1:] {
		if xs[sel] > res {
			res = xs[sel]
		}
	}
	return res
}

// FloatMaxSels places NaN below every number, so the result is NaN only
// when every selected row holds NaN.
func FloatMaxSels(xs []float64, sels []int64) float64 {
	res := xs[sels[0]]

	for _, sel := range sels[1:] {
		x := xs[sel]
		if math.IsNaN(res) || x > res {
			res = x
		}
	}
	return res
}

// BoolMaxSels treats true as larger than false.
func BoolMaxSels(xs []bool, sels []int64) bool {
	for _, sel := range sels {
		if xs[sel] {
			return true
		}
	}
	return false
}

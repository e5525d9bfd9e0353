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

// Package sum holds the addition kernels. The Sels variants only touch
// the rows named by sels, which is how callers keep missing rows out of
// an aggregate.
package sum

func Sum[E uint64 | int64 | float64](xs []E) E {
	var res E

	for _, x := range xs {
		res += x
	}
	return res
}

func SumSels[E uint64 | int64 | float64](xs []E, sels []int64) E {
	var res E

	for _, sel := range sels {
		res += xs[sel]
	}
	return res
}

// FloatSumSels accumulates the selected rows in float64 regardless of
// the column type.
func FloatSumSels[E uint64 | int64 | float64](xs []E, sels []int64) float64 {
	var res float64

	for _, sel := range sels {
		res += float64(xs[sel])
	}
	return res
}

// FloatSquareSumSels accumulates the squares of the selected rows in
// float64 regardless of the column type.
func FloatSquareSumSels[E uint64 | int64 | float64](xs []E, sels []int64) float64 {
	var res float64

	for _, sel := range sels {
		x := float64(xs[sel])
		res += x * x
	}
	return res
}

// BoolSumSels counts the selected rows holding true.
func BoolSumSels(xs []bool, sels []int64) uint64 {
	var res uint64

	for _, sel := range sels {
		if xs[sel] {
			res++
		}
	}
	return res
}

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

package vector

import (
	"math"

	"github.com/matrixorigin/tabular/pkg/common/taberr"
	"github.com/matrixorigin/tabular/pkg/container/types"
)

const (
	two63 = 9223372036854775808.0  // 2^63
	two64 = 18446744073709551616.0 // 2^64
)

// Cast converts src into a fresh column of the target tag.  Conversions
// never coerce silently: a value the target type cannot represent fails
// the whole cast with TypeMismatch, and missing rows stay missing.
// Casting to the source tag copies the column.
//
// Supported conversions are the numeric tags among themselves, with
// range and integrality checks, plus BOOLEAN into the numeric tags
// (false as 0, true as 1).  TEXT converts to nothing and nothing
// converts to TEXT or BOOLEAN.
func Cast(src AnyVector, to types.T) (AnyVector, error) {
	if !to.Valid() {
		return nil, taberr.NewTypeMismatch("cannot cast %s column to %s", src.Tag(), to)
	}
	switch v := src.(type) {
	case *Vector[uint64]:
		switch to {
		case types.T_uint64:
			return v.Clone(), nil
		case types.T_int64:
			return castVector(v, to, uint64ToInt64)
		case types.T_float64:
			return castVector(v, to, uint64ToFloat64)
		}
	case *Vector[int64]:
		switch to {
		case types.T_uint64:
			return castVector(v, to, int64ToUint64)
		case types.T_int64:
			return v.Clone(), nil
		case types.T_float64:
			return castVector(v, to, int64ToFloat64)
		}
	case *Vector[float64]:
		switch to {
		case types.T_uint64:
			return castVector(v, to, float64ToUint64)
		case types.T_int64:
			return castVector(v, to, float64ToInt64)
		case types.T_float64:
			return v.Clone(), nil
		}
	case *Vector[bool]:
		switch to {
		case types.T_uint64:
			return castVector(v, to, boolToUint64)
		case types.T_int64:
			return castVector(v, to, boolToInt64)
		case types.T_float64:
			return castVector(v, to, boolToFloat64)
		case types.T_bool:
			return v.Clone(), nil
		}
	case *Vector[string]:
		if to == types.T_text {
			return v.Clone(), nil
		}
	}
	return nil, taberr.NewTypeMismatch("cannot cast %s column to %s", src.Tag(), to)
}

func castVector[S, D types.Element](src *Vector[S], to types.T, conv func(S) (D, bool)) (AnyVector, error) {
	out := New[D]()
	for i, s := range src.col {
		if src.nsp.Contains(uint64(i)) {
			var zero D
			out.col = append(out.col, zero)
			out.nsp.Push(true)
			continue
		}
		d, ok := conv(s)
		if !ok {
			return nil, taberr.NewTypeMismatch(
				"cannot represent %s value %v at row %d as %s", src.tag, s, i, to)
		}
		out.col = append(out.col, d)
		out.nsp.Push(false)
	}
	return out, nil
}

func uint64ToInt64(s uint64) (int64, bool) {
	if s > math.MaxInt64 {
		return 0, false
	}
	return int64(s), true
}

func uint64ToFloat64(s uint64) (float64, bool) {
	return float64(s), true
}

func int64ToUint64(s int64) (uint64, bool) {
	if s < 0 {
		return 0, false
	}
	return uint64(s), true
}

func int64ToFloat64(s int64) (float64, bool) {
	return float64(s), true
}

func float64ToUint64(s float64) (uint64, bool) {
	if math.IsNaN(s) || math.IsInf(s, 0) || math.Trunc(s) != s {
		return 0, false
	}
	if s < 0 || s >= two64 {
		return 0, false
	}
	return uint64(s), true
}

func float64ToInt64(s float64) (int64, bool) {
	if math.IsNaN(s) || math.IsInf(s, 0) || math.Trunc(s) != s {
		return 0, false
	}
	if s < -two63 || s >= two63 {
		return 0, false
	}
	return int64(s), true
}

func boolToUint64(s bool) (uint64, bool) {
	if s {
		return 1, true
	}
	return 0, true
}

func boolToInt64(s bool) (int64, bool) {
	if s {
		return 1, true
	}
	return 0, true
}

func boolToFloat64(s bool) (float64, bool) {
	if s {
		return 1, true
	}
	return 0, true
}

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

package types

import (
	"math"
	"strconv"
)

// Value is a dynamically tagged, possibly missing datum.  It is the
// currency of every type-erased boundary: row append, field iteration,
// join keys, filters and casts.  The payload of a missing Value is the
// zero value of its tag and is not semantically valid.
//
// Present float payloads are canonicalized to a single NaN bit pattern,
// so two NaN Values are equal under Compare.
type Value struct {
	tag  T
	null bool
	u    uint64
	i    int64
	f    float64
	b    bool
	s    string
}

// Null returns the missing Value of the given tag.
func Null(tag T) Value {
	return Value{tag: tag, null: true}
}

func NewUint64(v uint64) Value {
	return Value{tag: T_uint64, u: v}
}

func NewInt64(v int64) Value {
	return Value{tag: T_int64, i: v}
}

func NewFloat64(v float64) Value {
	if math.IsNaN(v) {
		v = math.NaN()
	}
	return Value{tag: T_float64, f: v}
}

func NewBool(v bool) Value {
	return Value{tag: T_bool, b: v}
}

func NewText(v string) Value {
	return Value{tag: T_text, s: v}
}

// NewValue builds a present Value from a concrete element.
func NewValue[E Element](v E) Value {
	switch x := any(v).(type) {
	case uint64:
		return NewUint64(x)
	case int64:
		return NewInt64(x)
	case float64:
		return NewFloat64(x)
	case bool:
		return NewBool(x)
	case string:
		return NewText(x)
	}
	// unreachable, Element is closed
	return Value{}
}

// ValueAs extracts the element of type E from v.  The second result is
// false when v is missing or its tag does not match E.
func ValueAs[E Element](v Value) (E, bool) {
	var zero E
	if v.null || v.tag != TagOf[E]() {
		return zero, false
	}
	switch any(zero).(type) {
	case uint64:
		return any(v.u).(E), true
	case int64:
		return any(v.i).(E), true
	case float64:
		return any(v.f).(E), true
	case bool:
		return any(v.b).(E), true
	case string:
		return any(v.s).(E), true
	}
	return zero, false
}

func (v Value) Tag() T {
	return v.tag
}

func (v Value) IsNull() bool {
	return v.null
}

// Uint64 returns the payload of an unsigned Value.  The result is the
// zero value unless the Value is a present T_uint64.
func (v Value) Uint64() uint64 { return v.u }

func (v Value) Int64() int64 { return v.i }

func (v Value) Float64() float64 { return v.f }

func (v Value) Bool() bool { return v.b }

func (v Value) Text() string { return v.s }

func (v Value) String() string {
	if v.null {
		return "null"
	}
	switch v.tag {
	case T_uint64:
		return strconv.FormatUint(v.u, 10)
	case T_int64:
		return strconv.FormatInt(v.i, 10)
	case T_float64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case T_bool:
		return strconv.FormatBool(v.b)
	case T_text:
		return v.s
	}
	return "-"
}

// Compare imposes the engine-wide total order on two same-tagged Values:
// missing sorts before every present value, NaN sorts before every other
// float and equals itself, then the natural order of the tag (numeric
// ascending, false before true, lexicographic for text).  Callers verify
// the tags agree before comparing.
func Compare(a, b Value) int {
	if a.null || b.null {
		if a.null && b.null {
			return 0
		}
		if a.null {
			return -1
		}
		return 1
	}
	switch a.tag {
	case T_uint64:
		return compareOrdered(a.u, b.u)
	case T_int64:
		return compareOrdered(a.i, b.i)
	case T_float64:
		return compareFloat(a.f, b.f)
	case T_bool:
		return compareBool(a.b, b.b)
	case T_text:
		return compareOrdered(a.s, b.s)
	}
	return 0
}

// Equal reports whether a and b carry the same tag and compare equal.
// Two missing Values of one tag are equal; a missing Value never equals
// a present one.
func Equal(a, b Value) bool {
	return a.tag == b.tag && Compare(a, b) == 0
}

type ordered interface {
	uint64 | int64 | string
}

func compareOrdered[E ordered](a, b E) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	if aNaN || bNaN {
		if aNaN && bNaN {
			return 0
		}
		if aNaN {
			return -1
		}
		return 1
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

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

// T is the type tag of a column.  The tag set is closed: adding a kind
// is an engine-level change, never a loader-level one.
type T uint8

const (
	// T_any is the zero value of T.  It never names a column.
	T_any T = iota

	// T_uint64, unsigned 64 bit integer
	T_uint64
	// T_int64, signed 64 bit integer
	T_int64
	// T_float64, 64 bit double precision float
	T_float64
	// T_bool, true or false
	T_bool
	// T_text, utf-8 string
	T_text
)

// AllTypes lists every legal column tag in declaration order.
var AllTypes = []T{T_uint64, T_int64, T_float64, T_bool, T_text}

// Element enumerates the concrete Go types a column may hold, one per
// legal tag.
type Element interface {
	uint64 | int64 | float64 | bool | string
}

// TagOf returns the tag matching the element type E.
func TagOf[E Element]() T {
	var zero E
	switch any(zero).(type) {
	case uint64:
		return T_uint64
	case int64:
		return T_int64
	case float64:
		return T_float64
	case bool:
		return T_bool
	case string:
		return T_text
	}
	// unreachable, Element is closed
	return T_any
}

func (t T) String() string {
	switch t {
	case T_any:
		return "ANY"
	case T_uint64:
		return "UNSIGNED"
	case T_int64:
		return "SIGNED"
	case T_float64:
		return "FLOAT"
	case T_bool:
		return "BOOLEAN"
	case T_text:
		return "TEXT"
	}
	return "unknown type"
}

// Valid reports whether t is a legal column tag.
func (t T) Valid() bool {
	return t >= T_uint64 && t <= T_text
}

// IsNumeric reports whether t takes part in numeric arithmetic without
// coercion.  Booleans do not; they are coerced explicitly where allowed.
func (t T) IsNumeric() bool {
	return t == T_uint64 || t == T_int64 || t == T_float64
}

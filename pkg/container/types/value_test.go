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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueConstructors(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		tag  T
		str  string
	}{
		{"uint64", NewUint64(42), T_uint64, "42"},
		{"int64", NewInt64(-7), T_int64, "-7"},
		{"float64", NewFloat64(1.5), T_float64, "1.5"},
		{"bool", NewBool(true), T_bool, "true"},
		{"text", NewText("hi"), T_text, "hi"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.tag, c.v.Tag())
			require.False(t, c.v.IsNull())
			assert.Equal(t, c.str, c.v.String())
		})
	}
}

func TestNullValue(t *testing.T) {
	for _, tag := range AllTypes {
		v := Null(tag)
		require.Equal(t, tag, v.Tag())
		require.True(t, v.IsNull())
		assert.Equal(t, "null", v.String())
	}
}

func TestValueAccessors(t *testing.T) {
	assert.Equal(t, uint64(3), NewUint64(3).Uint64())
	assert.Equal(t, int64(-3), NewInt64(-3).Int64())
	assert.Equal(t, 2.5, NewFloat64(2.5).Float64())
	assert.Equal(t, true, NewBool(true).Bool())
	assert.Equal(t, "abc", NewText("abc").Text())
}

func TestNewValueGeneric(t *testing.T) {
	assert.Equal(t, NewUint64(9), NewValue(uint64(9)))
	assert.Equal(t, NewInt64(-9), NewValue(int64(-9)))
	assert.Equal(t, NewFloat64(0.5), NewValue(0.5))
	assert.Equal(t, NewBool(false), NewValue(false))
	assert.Equal(t, NewText("xyz"), NewValue("xyz"))
}

func TestValueAs(t *testing.T) {
	u, ok := ValueAs[uint64](NewUint64(11))
	require.True(t, ok)
	assert.Equal(t, uint64(11), u)

	s, ok := ValueAs[string](NewText("row"))
	require.True(t, ok)
	assert.Equal(t, "row", s)

	// tag mismatch
	_, ok = ValueAs[int64](NewUint64(11))
	assert.False(t, ok)

	// missing value
	_, ok = ValueAs[float64](Null(T_float64))
	assert.False(t, ok)
}

func TestNaNCanonical(t *testing.T) {
	// an arbitrary non-canonical NaN payload
	weird := math.Float64frombits(0x7ff8000000000042)
	require.True(t, math.IsNaN(weird))

	a := NewFloat64(weird)
	b := NewFloat64(math.NaN())
	assert.Equal(t, math.Float64bits(b.Float64()), math.Float64bits(a.Float64()))
	assert.True(t, Equal(a, b))
}

func TestCompareMissingFirst(t *testing.T) {
	for _, tag := range AllTypes {
		null := Null(tag)
		assert.Equal(t, 0, Compare(null, Null(tag)))
	}
	assert.Equal(t, -1, Compare(Null(T_int64), NewInt64(math.MinInt64)))
	assert.Equal(t, 1, Compare(NewInt64(math.MinInt64), Null(T_int64)))
	assert.Equal(t, -1, Compare(Null(T_float64), NewFloat64(math.NaN())))
	assert.Equal(t, -1, Compare(Null(T_text), NewText("")))
}

func TestCompareFloatOrder(t *testing.T) {
	// null < NaN < -Inf < -1 < 0 < 1 < +Inf
	ordered := []Value{
		Null(T_float64),
		NewFloat64(math.NaN()),
		NewFloat64(math.Inf(-1)),
		NewFloat64(-1),
		NewFloat64(0),
		NewFloat64(1),
		NewFloat64(math.Inf(1)),
	}
	for i := 0; i < len(ordered); i++ {
		for j := 0; j < len(ordered); j++ {
			got := Compare(ordered[i], ordered[j])
			switch {
			case i < j:
				assert.Equal(t, -1, got, "%v vs %v", ordered[i], ordered[j])
			case i > j:
				assert.Equal(t, 1, got, "%v vs %v", ordered[i], ordered[j])
			default:
				assert.Equal(t, 0, got, "%v vs %v", ordered[i], ordered[j])
			}
		}
	}
}

func TestCompareScalars(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want int
	}{
		{"uint lt", NewUint64(1), NewUint64(2), -1},
		{"uint eq", NewUint64(2), NewUint64(2), 0},
		{"uint gt", NewUint64(3), NewUint64(2), 1},
		{"int lt", NewInt64(-5), NewInt64(5), -1},
		{"bool false first", NewBool(false), NewBool(true), -1},
		{"bool eq", NewBool(true), NewBool(true), 0},
		{"text lt", NewText("a"), NewText("b"), -1},
		{"text eq", NewText("b"), NewText("b"), 0},
		{"text gt", NewText("c"), NewText("b"), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Compare(c.a, c.b))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(NewInt64(4), NewInt64(4)))
	assert.False(t, Equal(NewInt64(4), NewInt64(5)))
	assert.False(t, Equal(NewInt64(4), Null(T_int64)))
	assert.True(t, Equal(Null(T_text), Null(T_text)))
	// tag mismatch is never equal, even for missing values
	assert.False(t, Equal(Null(T_text), Null(T_int64)))
	assert.False(t, Equal(NewUint64(4), NewInt64(4)))
}

func TestValueStringFloats(t *testing.T) {
	assert.Equal(t, "NaN", NewFloat64(math.NaN()).String())
	assert.Equal(t, "+Inf", NewFloat64(math.Inf(1)).String())
	assert.Equal(t, "-1.25", NewFloat64(-1.25).String())
}

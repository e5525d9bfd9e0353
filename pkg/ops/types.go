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

// Package ops evaluates element wise arithmetic between fields and
// scalars, widening the operand types to a common result type.
package ops

// Op names one of the four arithmetic operations. On bool operands Add
// is or, Mul is and, and Sub is exclusive or.
type Op uint8

const (
	Add Op = iota
	Sub
	Mul
	Div
)

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return "?"
}

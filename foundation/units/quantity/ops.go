// File: ops.go
// Title: Binary Operators Between Quantities
// Description: Free functions combining two quantities. Same-dimension
//              operators take both operands with one dimension tag, so a
//              dimension mismatch does not compile; the operands may differ
//              in unit and, for comparisons, in representation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package quantity

import (
	"github.com/msto63/unitx/foundation/units/unit"
)

// Add returns a+b in the common unit of U1 and U2
func Add[D Dim, U1 Unit[D], U2 Unit[D], R Number](a Quantity[D, U1, R], b Quantity[D, U2, R]) Value[R] {
	x, y, u := align(a.count, a.Unit(), b.count, b.Unit())
	return Value[R]{count: x + y, unit: u}
}

// Sub returns a-b in the common unit of U1 and U2
func Sub[D Dim, U1 Unit[D], U2 Unit[D], R Number](a Quantity[D, U1, R], b Quantity[D, U2, R]) Value[R] {
	x, y, u := align(a.count, a.Unit(), b.count, b.Unit())
	return Value[R]{count: x - y, unit: u}
}

// Rem returns a modulo b after aligning both to their common unit:
// 7 km % 2000 m is 1000 m.
func Rem[D Dim, U1 Unit[D], U2 Unit[D], R Number](a Quantity[D, U1, R], b Quantity[D, U2, R]) Value[R] {
	x, y, u := align(a.count, a.Unit(), b.count, b.Unit())
	return Value[R]{count: rem(x, y), unit: u}
}

// Quo returns the dimensionless ratio a/b, computed in the common unit
func Quo[D Dim, U1 Unit[D], U2 Unit[D], R Number](a Quantity[D, U1, R], b Quantity[D, U2, R]) R {
	x, y, _ := align(a.count, a.Unit(), b.count, b.Unit())
	return x / y
}

// Scale returns r·q
func Scale[D Dim, U Unit[D], R Number](r R, q Quantity[D, U, R]) Quantity[D, U, R] {
	return Quantity[D, U, R]{count: r * q.count}
}

// Mul returns a·b, a quantity of the product dimension. Integral
// representations require an integral product unit ratio.
func Mul[D1 Dim, U1 Unit[D1], D2 Dim, U2 Unit[D2], R Number](a Quantity[D1, U1, R], b Quantity[D2, U2, R]) (Value[R], error) {
	return a.Value().Mul(b.Value())
}

// Div returns a/b, a quantity of the quotient dimension. Integral
// representations require an integral quotient unit ratio.
func Div[D1 Dim, U1 Unit[D1], D2 Dim, U2 Unit[D2], R Number](a Quantity[D1, U1, R], b Quantity[D2, U2, R]) (Value[R], error) {
	return a.Value().Div(b.Value())
}

// Reciprocal returns r/q, a quantity of the inverse dimension in the
// reciprocal unit: 10 / 5 s is 2 /s.
func Reciprocal[D Dim, U Unit[D], R Number](r R, q Quantity[D, U, R]) Value[R] {
	return Value[R]{count: r / q.count, unit: unit.Inverse(q.Unit())}
}

// Equal reports whether a and b denote the same amount: 1000 m equals 1 km
func Equal[D Dim, U1 Unit[D], U2 Unit[D], R1 Number, R2 Number](a Quantity[D, U1, R1], b Quantity[D, U2, R2]) bool {
	c, ordered := compareAligned(a.count, a.Unit(), b.count, b.Unit())
	return ordered && c == 0
}

// NotEqual reports whether a and b denote different amounts
func NotEqual[D Dim, U1 Unit[D], U2 Unit[D], R1 Number, R2 Number](a Quantity[D, U1, R1], b Quantity[D, U2, R2]) bool {
	return !Equal(a, b)
}

// Less reports whether a < b
func Less[D Dim, U1 Unit[D], U2 Unit[D], R1 Number, R2 Number](a Quantity[D, U1, R1], b Quantity[D, U2, R2]) bool {
	c, ordered := compareAligned(a.count, a.Unit(), b.count, b.Unit())
	return ordered && c < 0
}

// LessEqual reports whether a <= b
func LessEqual[D Dim, U1 Unit[D], U2 Unit[D], R1 Number, R2 Number](a Quantity[D, U1, R1], b Quantity[D, U2, R2]) bool {
	c, ordered := compareAligned(a.count, a.Unit(), b.count, b.Unit())
	return ordered && c <= 0
}

// Greater reports whether a > b
func Greater[D Dim, U1 Unit[D], U2 Unit[D], R1 Number, R2 Number](a Quantity[D, U1, R1], b Quantity[D, U2, R2]) bool {
	c, ordered := compareAligned(a.count, a.Unit(), b.count, b.Unit())
	return ordered && c > 0
}

// GreaterEqual reports whether a >= b
func GreaterEqual[D Dim, U1 Unit[D], U2 Unit[D], R1 Number, R2 Number](a Quantity[D, U1, R1], b Quantity[D, U2, R2]) bool {
	c, ordered := compareAligned(a.count, a.Unit(), b.count, b.Unit())
	return ordered && c >= 0
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater
// than b. It returns 0 if either count is NaN.
func Compare[D Dim, U1 Unit[D], U2 Unit[D], R1 Number, R2 Number](a Quantity[D, U1, R1], b Quantity[D, U2, R2]) int {
	c, _ := compareAligned(a.count, a.Unit(), b.count, b.Unit())
	return c
}

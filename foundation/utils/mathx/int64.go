// File: int64.go
// Title: Checked int64 Helpers
// Description: Greatest common divisor, least common multiple and
//              overflow-checked multiplication/addition on int64, the
//              primitives the fixed-width ratio algebra is built on.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package mathx

import (
	"math"

	"github.com/msto63/unitx/foundation/core/errors"
)

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the non-negative least common multiple of a and b.
// It panics with an overflow error if the result does not fit in int64.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	l, ok := MulInt64(abs64(a)/GCD(a, b), abs64(b))
	if !ok {
		panic(errors.MathxOverflow("mathx.LCM", a, b))
	}
	return l
}

// MulInt64 returns a*b and whether the product fits in int64
func MulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return 0, false
	}
	return c, true
}

// AddInt64 returns a+b and whether the sum fits in int64
func AddInt64(a, b int64) (int64, bool) {
	c := a + b
	if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
		return 0, false
	}
	return c, true
}

func abs64(v int64) int64 {
	if v < 0 {
		if v == math.MinInt64 {
			panic(errors.MathxOverflow("mathx.abs", v))
		}
		return -v
	}
	return v
}

// File: ratio.go
// Title: Fixed-Width Rational Ratios
// Description: Implements Ratio, an exact num/den scale factor on int64 kept
//              in lowest terms. Units express their size relative to the
//              coherent unit as a Ratio; conversions multiply and divide
//              these ratios, and CommonRatio finds the finest scale two
//              units can both be expressed in without fractions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation replacing the decimal type

package mathx

import (
	"fmt"
	"math"
	"math/big"

	"github.com/msto63/unitx/foundation/core/errors"
)

// Ratio is an exact rational number num/den with den > 0, always in lowest
// terms. The zero value is 0/1.
type Ratio struct {
	num int64
	den int64
}

// RatioOne is the ratio 1/1
var RatioOne = Ratio{num: 1, den: 1}

// NewRatio creates a ratio from a numerator and a denominator, normalising
// the sign onto the numerator and reducing by the gcd
func NewRatio(num, den int64) (Ratio, error) {
	if den == 0 {
		return Ratio{}, errors.MathxDivisionByZero("mathx.NewRatio")
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		return Ratio{}, errors.MathxOverflow("mathx.NewRatio", num, den)
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := GCD(num, den)
	return Ratio{num: num / g, den: den / g}, nil
}

// MustNewRatio creates a ratio, panicking on a zero denominator.
// Use this for constant unit definitions.
func MustNewRatio(num, den int64) Ratio {
	r, err := NewRatio(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// RatioOf returns the integral ratio n/1
func RatioOf(n int64) Ratio {
	return Ratio{num: n, den: 1}
}

// Num returns the numerator
func (r Ratio) Num() int64 {
	return r.num
}

// Den returns the denominator, always positive
func (r Ratio) Den() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// IsOne reports whether r == 1
func (r Ratio) IsOne() bool {
	return r.num == 1 && r.Den() == 1
}

// IsInteger reports whether the denominator is 1
func (r Ratio) IsInteger() bool {
	return r.Den() == 1
}

// Sign returns -1, 0 or +1
func (r Ratio) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// IsPositive reports whether r > 0
func (r Ratio) IsPositive() bool {
	return r.num > 0
}

// Mul returns r*o. It panics with an overflow error if the reduced result
// does not fit in int64.
func (r Ratio) Mul(o Ratio) Ratio {
	// cross-reduce first so that reduced inputs give a reduced product
	g1 := GCD(r.num, o.Den())
	g2 := GCD(o.num, r.Den())

	num, ok := MulInt64(r.num/g1, o.num/g2)
	if !ok {
		panic(errors.MathxOverflow("mathx.Ratio.Mul", r.String(), o.String()))
	}
	den, ok := MulInt64(r.Den()/g2, o.Den()/g1)
	if !ok {
		panic(errors.MathxOverflow("mathx.Ratio.Mul", r.String(), o.String()))
	}
	if num == 0 {
		return Ratio{num: 0, den: 1}
	}
	return Ratio{num: num, den: den}
}

// Div returns r/o. It panics if o is zero.
func (r Ratio) Div(o Ratio) Ratio {
	return r.Mul(o.Inverse())
}

// Inverse returns 1/r. It panics if r is zero.
func (r Ratio) Inverse() Ratio {
	switch {
	case r.num == 0:
		panic(errors.MathxDivisionByZero("mathx.Ratio.Inverse"))
	case r.num < 0:
		return Ratio{num: -r.Den(), den: -r.num}
	default:
		return Ratio{num: r.Den(), den: r.num}
	}
}

// Pow returns r raised to an integer power
func (r Ratio) Pow(n int) Ratio {
	if n < 0 {
		return r.Inverse().Pow(-n)
	}
	result := RatioOne
	for i := 0; i < n; i++ {
		result = result.Mul(r)
	}
	return result
}

// CommonRatio returns gcd(a.num, b.num) / lcm(a.den, b.den), the largest
// ratio that divides both a and b into integers
func CommonRatio(a, b Ratio) Ratio {
	return MustNewRatio(GCD(a.num, b.num), LCM(a.Den(), b.Den()))
}

// Compare returns -1 if a < b, 0 if a == b, +1 if a > b
func Compare(a, b Ratio) int {
	return a.rat().Cmp(b.rat())
}

// Equal reports whether two ratios are the same number
func (r Ratio) Equal(o Ratio) bool {
	return r.num == o.num && r.Den() == o.Den()
}

// Float64 returns the nearest float64 value
func (r Ratio) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// String returns "num/den", or just "num" for integral ratios
func (r Ratio) String() string {
	if r.IsInteger() {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.Den())
}

func (r Ratio) rat() *big.Rat {
	return big.NewRat(r.num, r.Den())
}

// File: cast.go
// Title: Cast and Common-Type Engine
// Description: Converts counts between units and representations. The
//              conversion ratio is split by whether its numerator and
//              denominator are one so that no needless multiplication or
//              division touches the value. Also resolves the common unit of
//              two same-dimension units and aligns counts to it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package quantity

import (
	"cmp"
	"fmt"
	"math"

	"github.com/msto63/unitx/foundation/core/errors"
	"github.com/msto63/unitx/foundation/units/unit"
	"github.com/msto63/unitx/foundation/utils/mathx"
)

// Convert converts q to unit U2 and representation R2 if that cannot lose
// precision: R2 is floating-point-like, or the conversion ratio is an
// integer and R1 is not floating-point-like.
//
//	m, err := quantity.Convert[Metre, int64](km)
func Convert[U2 Unit[D], R2 Number, D Dim, U1 Unit[D], R1 Number](q Quantity[D, U1, R1]) (Quantity[D, U2, R2], error) {
	var to U2
	cr := unit.ConversionRatio(q.Unit(), to.Def())
	if !lossless[R1, R2](cr) {
		return Quantity[D, U2, R2]{}, errors.QuantityLossyConversion("quantity.Convert", q.Unit(), to.Def(), cr)
	}
	return Quantity[D, U2, R2]{count: scale[R1, R2](q.count, cr)}, nil
}

// MustConvert is like Convert but panics if the conversion could lose
// precision
func MustConvert[U2 Unit[D], R2 Number, D Dim, U1 Unit[D], R1 Number](q Quantity[D, U1, R1]) Quantity[D, U2, R2] {
	out, err := Convert[U2, R2](q)
	if err != nil {
		panic(err)
	}
	return out
}

// Cast converts q to unit U2 and representation R2 unconditionally.
// Integral results are truncated toward zero.
func Cast[U2 Unit[D], R2 Number, D Dim, U1 Unit[D], R1 Number](q Quantity[D, U1, R1]) Quantity[D, U2, R2] {
	var to U2
	return Quantity[D, U2, R2]{count: scale[R1, R2](q.count, unit.ConversionRatio(q.Unit(), to.Def()))}
}

// CastUnit converts q to unit U2 keeping its representation
func CastUnit[U2 Unit[D], D Dim, U1 Unit[D], R Number](q Quantity[D, U1, R]) Quantity[D, U2, R] {
	return Cast[U2, R](q)
}

// CastRep converts q to representation R2 keeping its unit
func CastRep[R2 Number, D Dim, U Unit[D], R1 Number](q Quantity[D, U, R1]) Quantity[D, U, R2] {
	return Quantity[D, U, R2]{count: R2(q.count)}
}

// lossless reports whether a count of R1 converts to R2 by ratio cr
// without rounding
func lossless[R1, R2 Number](cr mathx.Ratio) bool {
	return IsFloatingPoint[R2]() || (cr.IsInteger() && !IsFloatingPoint[R1]())
}

// scale multiplies v by cr. The arithmetic runs in float64 if either
// representation is a float and in int64 otherwise.
func scale[R1, R2 Number](v R1, cr mathx.Ratio) R2 {
	num, den := cr.Num(), cr.Den()
	if num == 1 && den == 1 {
		return R2(v)
	}

	if nativeFloat[R1]() || nativeFloat[R2]() {
		f := float64(v)
		switch {
		case num == 1:
			return R2(f / float64(den))
		case den == 1:
			return R2(f * float64(num))
		default:
			return R2(f * float64(num) / float64(den))
		}
	}

	i := int64(v)
	switch {
	case num == 1:
		return R2(i / den)
	case den == 1:
		return R2(i * num)
	default:
		return R2(i * num / den)
	}
}

// commonUnit returns the common unit of two units of the same dimension.
// Unit tags that pass Validate always share a dimension here.
func commonUnit(a, b unit.Unit) unit.Unit {
	c, err := unit.Common(a, b)
	if err != nil {
		panic(err)
	}
	return c
}

// align converts two counts of the same representation to their common
// unit. Conversions into the common unit have integral ratios, so integral
// counts are exact.
func align[R Number](a R, au unit.Unit, b R, bu unit.Unit) (R, R, unit.Unit) {
	c := commonUnit(au, bu)
	return scale[R, R](a, unit.ConversionRatio(au, c)), scale[R, R](b, unit.ConversionRatio(bu, c)), c
}

// compareAligned compares two counts of possibly different units and
// representations in their common unit. ordered is false if either count
// is NaN.
func compareAligned[R1, R2 Number](a R1, au unit.Unit, b R2, bu unit.Unit) (c int, ordered bool) {
	cu := commonUnit(au, bu)
	if nativeFloat[R1]() || nativeFloat[R2]() {
		x := scale[R1, float64](a, unit.ConversionRatio(au, cu))
		y := scale[R2, float64](b, unit.ConversionRatio(bu, cu))
		if math.IsNaN(x) || math.IsNaN(y) {
			return 0, false
		}
		return cmp.Compare(x, y), true
	}
	x := scale[R1, int64](a, unit.ConversionRatio(au, cu))
	y := scale[R2, int64](b, unit.ConversionRatio(bu, cu))
	return cmp.Compare(x, y), true
}

// rem returns a modulo b. Floats use math.Mod, so the result has the sign
// of a like the integer remainder.
func rem[R Number](a, b R) R {
	if nativeFloat[R]() {
		return R(math.Mod(float64(a), float64(b)))
	}
	return R(int64(a) % int64(b))
}

func typeName[R Number]() string {
	var r R
	return fmt.Sprintf("%T", r)
}

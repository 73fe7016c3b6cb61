// File: traits.go
// Title: Representation Traits
// Description: Trait points a representation type can implement to be
//              treated as floating-point-like or to supply its own zero,
//              minimum and maximum. Native numeric types fall back to their
//              own properties.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package quantity

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is the set of representation types. Unsigned integers are
// excluded because negation and subtraction must stay in range.
type Number interface {
	constraints.Signed | constraints.Float
}

// FloatingPoint is implemented by representation types that want the
// relaxed conversion rules of floating-point numbers
type FloatingPoint interface {
	TreatAsFloatingPoint() bool
}

// Values is implemented by representation types that supply their own
// zero, minimum and maximum
type Values[R Number] interface {
	Zero() R
	Min() R
	Max() R
}

// IsFloatingPoint reports whether R is floating-point-like: the value of
// TreatAsFloatingPoint if R implements FloatingPoint, otherwise whether R
// is a float type
func IsFloatingPoint[R Number]() bool {
	var r R
	if fp, ok := any(r).(FloatingPoint); ok {
		return fp.TreatAsFloatingPoint()
	}
	return nativeFloat[R]()
}

// ZeroOf returns the zero of R
func ZeroOf[R Number]() R {
	var r R
	if v, ok := any(r).(Values[R]); ok {
		return v.Zero()
	}
	return r
}

// MinOf returns the lowest finite value of R
func MinOf[R Number]() R {
	var r R
	if v, ok := any(r).(Values[R]); ok {
		return v.Min()
	}
	return -nativeMax[R]() - nativeMinOffset[R]()
}

// MaxOf returns the largest finite value of R
func MaxOf[R Number]() R {
	var r R
	if v, ok := any(r).(Values[R]); ok {
		return v.Max()
	}
	return nativeMax[R]()
}

// nativeFloat reports whether the underlying type of R is a float
func nativeFloat[R Number]() bool {
	var one R = 1
	return one/2 != 0
}

func nativeMax[R Number]() R {
	var r R
	bits := unsafe.Sizeof(r) * 8
	if nativeFloat[R]() {
		f := math.MaxFloat64
		if bits == 32 {
			f = math.MaxFloat32
		}
		return R(f)
	}
	var m int64 = math.MaxInt64
	m >>= 64 - bits
	return R(m)
}

// nativeMinOffset is 1 for two's complement integers and 0 for floats
func nativeMinOffset[R Number]() R {
	if nativeFloat[R]() {
		return 0
	}
	return 1
}

// File: doc.go
// Title: Package Documentation for unit
// Description: Package unit describes named measurement scales with an
//              exact ratio to the coherent unit of their dimension.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package unit describes units of measurement.
//
// A Unit is a named scale for one dimension. Its ratio is the size of the
// unit in coherent (SI) units of that dimension: the metre has ratio 1,
// the kilometre 1000 and the kilometre per hour 5/18. Ratios are always
// strictly positive.
//
// Derived units come from three places:
//
//	km := unit.MustPrefixed(unit.Kilo, metre)      // prefix a coherent unit
//	h := unit.Scaled("hour", "h", second, mathx.RatioOf(3600))
//	kmh := unit.Divide(km, h)                     // compose across dimensions
//
// Common picks the unit two units of the same dimension can both be
// converted to without a fractional scale factor. When neither operand has
// that ratio the result is an anonymous unit, rendered as "[ratio] dim".
package unit

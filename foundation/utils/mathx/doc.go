// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the exact integer and rational
//              arithmetic the units-of-measure packages build on.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-18 v0.3.0: Replaced decimal/currency types with fixed-width ratios

// Package mathx provides exact rational scale factors on int64.
//
// Overview
//
// A Ratio is num/den in lowest terms with a positive denominator. Unit
// definitions express their size relative to the coherent unit of their
// dimension as a Ratio (a kilometre is 1000/1 metre, a kilometre per hour
// is 5/18 metre per second), and every unit conversion reduces to ratio
// multiplication and division.
//
//	km := mathx.RatioOf(1000)
//	mm := mathx.MustNewRatio(1, 1000)
//
//	km.Div(mm)                 // 1000000: kilometres to millimetres
//	mathx.CommonRatio(km, mm)  // 1/1000: both are integral multiples of a millimetre
//
// Error Handling
//
// Constructors return coded errors from the foundation error package.
// Arithmetic on ratios panics when the result does not fit in int64; unit
// ratios are fixed at definition time, so an overflow there is a
// programming error in a unit definition rather than a runtime condition.
//
// Thread Safety
//
// Ratio is an immutable value type and safe for concurrent use.
package mathx

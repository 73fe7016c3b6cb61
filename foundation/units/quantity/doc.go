// File: doc.go
// Title: Package Documentation for quantity
// Description: Package quantity implements type-safe physical quantities
//              with exact unit conversion.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package quantity implements physical quantities whose dimension and unit
// are part of the type.
//
// Overview
//
// A Quantity[D, U, R] stores a single count of type R meaning "count many
// U of dimension D". D and U are zero-size tag types: D names a dimension,
// U names a unit of that dimension and must implement Unit[D], so a unit
// of the wrong dimension does not compile:
//
//	type Length struct{}
//	func (Length) Dimension() dimension.Dimension { return dimension.Of(dimension.Length) }
//
//	type Metre struct{}
//	func (Metre) Dim() Length       { return Length{} }
//	func (Metre) Def() unit.Unit    { return metre }
//
//	d := quantity.New[Length, Metre](int64(1000))
//
// Static and Dynamic Results
//
// Operations whose result type follows from the operand types stay
// static: same-type arithmetic, comparisons across units, conversions and
// casts. Operations whose result unit has to be computed (adding metres to
// kilometres, dividing a length by a time, 1/time) return a Value[R],
// which carries its unit and dimension at run time. In and As bind a
// Value back to a static type:
//
//	v, err := quantity.Div(quantity.New[Length, Metre](int64(10)), quantity.New[Time, Second](int64(5)))
//	speed, err := quantity.In[Velocity, MetrePerSecond](v) // 2 m/s
//
// Conversion Rules
//
// Implicit (checked) conversions never lose precision for integral
// representations:
//
//   - From accepts a raw value unless it would store a floating value in an
//     integral representation
//   - Convert and In accept a unit change if the target representation is
//     floating-point-like, or if the conversion ratio is an integer and the
//     source representation is not floating-point-like
//   - Mul and Div on integral representations require the resulting unit
//     ratio to be an integer
//
// Violations are reported as coded errors from the foundation error
// package. Cast, CastUnit, CastRep and As perform the conversion anyway.
//
// Representation Traits
//
// A representation type may implement FloatingPoint to be treated as
// floating-point-like, and Values to supply its own zero, minimum and
// maximum.
//
// Thread Safety
//
// Quantity and Value are plain value types without shared state.
package quantity

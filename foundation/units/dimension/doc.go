// File: doc.go
// Title: Package Documentation for dimension
// Description: Package dimension models physical dimensions as ordered
//              lists of SI base-quantity exponents.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package dimension models physical dimensions.
//
// A Dimension is a product of powers of the seven SI base quantities,
// stored as an ordered list of (Base, Power) pairs. Velocity is
// Length¹·Time⁻¹, frequency is Time⁻¹ and a pure number is the empty list.
//
// Invariants
//
//   - every base appears at most once
//   - zero powers are never stored
//   - exponents are kept in canonical base order (L, M, T, I, Θ, N, J)
//
// Because of these invariants two dimensions describe the same physical
// kind exactly when their exponent lists are identical, which is what
// Equal checks.
//
//	velocity := dimension.Divide(dimension.Of(dimension.Length), dimension.Of(dimension.Time))
//	fmt.Println(velocity) // L·T⁻¹
//
// Dimension values are immutable and safe for concurrent use.
package dimension

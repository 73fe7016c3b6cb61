// File: time.go
// Title: Bridges to the time Package
// Description: Conversions between time.Duration and time quantities, and
//              physical constants.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package si

import (
	"time"

	"github.com/msto63/unitx/foundation/units/quantity"
)

// FromDuration returns d as a count of nanoseconds
func FromDuration(d time.Duration) quantity.Quantity[Time, Nanosecond, int64] {
	return Nanoseconds(int64(d))
}

// ToDuration converts a time quantity to a time.Duration, truncating to
// whole nanoseconds
func ToDuration[U quantity.Unit[Time], R quantity.Number](q quantity.Quantity[Time, U, R]) time.Duration {
	return time.Duration(quantity.Cast[Nanosecond, int64](q).Count())
}

// StandardGravity returns the standard acceleration of gravity, 9.80665 m/s²
func StandardGravity() quantity.Quantity[Acceleration, MetrePerSecondSquared, float64] {
	return MetresPerSecondSquaredF(9.80665)
}

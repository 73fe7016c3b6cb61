// File: helpers_test.go
// Title: Test Tags and Representations
// Description: Dimension and unit tags plus custom representation types
//              shared by the package tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package quantity

import (
	"github.com/msto63/unitx/foundation/units/dimension"
	"github.com/msto63/unitx/foundation/units/unit"
	"github.com/msto63/unitx/foundation/utils/mathx"
)

var (
	tMetre      = unit.Coherent("metre", "m", dimension.Of(dimension.Length))
	tKilometre  = unit.MustPrefixed(unit.Kilo, tMetre)
	tMillimetre = unit.MustPrefixed(unit.Milli, tMetre)
	tSecond     = unit.Coherent("second", "s", dimension.Of(dimension.Time))
	tHour       = unit.Scaled("hour", "h", tSecond, mathx.RatioOf(3600))
	tKmh        = unit.Divide(tKilometre, tHour)
	tMps        = unit.Divide(tMetre, tSecond)
)

type length struct{}

func (length) Dimension() dimension.Dimension { return dimension.Of(dimension.Length) }

type duration struct{}

func (duration) Dimension() dimension.Dimension { return dimension.Of(dimension.Time) }

type velocity struct{}

func (velocity) Dimension() dimension.Dimension {
	return dimension.Divide(dimension.Of(dimension.Length), dimension.Of(dimension.Time))
}

type metre struct{}

func (metre) Dim() length    { return length{} }
func (metre) Def() unit.Unit { return tMetre }

type kilometre struct{}

func (kilometre) Dim() length    { return length{} }
func (kilometre) Def() unit.Unit { return tKilometre }

type millimetre struct{}

func (millimetre) Dim() length    { return length{} }
func (millimetre) Def() unit.Unit { return tMillimetre }

type second struct{}

func (second) Dim() duration  { return duration{} }
func (second) Def() unit.Unit { return tSecond }

type hour struct{}

func (hour) Dim() duration  { return duration{} }
func (hour) Def() unit.Unit { return tHour }

type kmh struct{}

func (kmh) Dim() velocity  { return velocity{} }
func (kmh) Def() unit.Unit { return tKmh }

type mps struct{}

func (mps) Dim() velocity  { return velocity{} }
func (mps) Def() unit.Unit { return tMps }

// misdefined claims to be a length but is defined as a second
type misdefined struct{}

func (misdefined) Dim() length    { return length{} }
func (misdefined) Def() unit.Unit { return tSecond }

// fixed is an integer representation that asks for floating-point rules
type fixed int64

func (fixed) TreatAsFloatingPoint() bool { return true }

// bounded supplies its own limits
type bounded int32

func (bounded) Zero() bounded { return 0 }
func (bounded) Min() bounded  { return -100 }
func (bounded) Max() bounded  { return 100 }

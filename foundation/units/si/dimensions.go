// File: dimensions.go
// Title: SI Dimension Tags
// Description: Zero-size dimension tag types for the quantity kinds
//              defined in this package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package si

import (
	"github.com/msto63/unitx/foundation/units/dimension"
)

func dim(exps ...dimension.Exponent) dimension.Dimension {
	return dimension.MustNew(exps...)
}

var (
	dimLength       = dimension.Of(dimension.Length)
	dimMass         = dimension.Of(dimension.Mass)
	dimTime         = dimension.Of(dimension.Time)
	dimCurrent      = dimension.Of(dimension.Current)
	dimSubstance    = dimension.Of(dimension.Substance)
	dimVelocity     = dimension.Divide(dimLength, dimTime)
	dimAcceleration = dimension.Divide(dimVelocity, dimTime)
	dimArea         = dimLength.Pow(2)
	dimVolume       = dimLength.Pow(3)
	dimDensity      = dimension.Divide(dimMass, dimVolume)
	dimForce        = dimension.Multiply(dimMass, dimAcceleration)
	dimFrequency    = dimTime.Invert()
	dimVoltage      = dim(
		dimension.Exponent{Base: dimension.Length, Power: 2},
		dimension.Exponent{Base: dimension.Mass, Power: 1},
		dimension.Exponent{Base: dimension.Time, Power: -3},
		dimension.Exponent{Base: dimension.Current, Power: -1},
	)
	dimResistance  = dimension.Divide(dimVoltage, dimCurrent)
	dimCapacitance = dimension.Divide(dimension.Multiply(dimCurrent, dimTime), dimVoltage)
)

// Length is the dimension L
type Length struct{}

func (Length) Dimension() dimension.Dimension { return dimLength }

// Mass is the dimension M
type Mass struct{}

func (Mass) Dimension() dimension.Dimension { return dimMass }

// Time is the dimension T
type Time struct{}

func (Time) Dimension() dimension.Dimension { return dimTime }

// Current is the dimension I
type Current struct{}

func (Current) Dimension() dimension.Dimension { return dimCurrent }

// Substance is the dimension N
type Substance struct{}

func (Substance) Dimension() dimension.Dimension { return dimSubstance }

// Velocity is the dimension L·T⁻¹
type Velocity struct{}

func (Velocity) Dimension() dimension.Dimension { return dimVelocity }

// Acceleration is the dimension L·T⁻²
type Acceleration struct{}

func (Acceleration) Dimension() dimension.Dimension { return dimAcceleration }

// Area is the dimension L²
type Area struct{}

func (Area) Dimension() dimension.Dimension { return dimArea }

// Volume is the dimension L³
type Volume struct{}

func (Volume) Dimension() dimension.Dimension { return dimVolume }

// Density is the dimension L⁻³·M
type Density struct{}

func (Density) Dimension() dimension.Dimension { return dimDensity }

// Force is the dimension L·M·T⁻²
type Force struct{}

func (Force) Dimension() dimension.Dimension { return dimForce }

// Frequency is the dimension T⁻¹
type Frequency struct{}

func (Frequency) Dimension() dimension.Dimension { return dimFrequency }

// Voltage is the dimension L²·M·T⁻³·I⁻¹
type Voltage struct{}

func (Voltage) Dimension() dimension.Dimension { return dimVoltage }

// Resistance is the dimension L²·M·T⁻³·I⁻²
type Resistance struct{}

func (Resistance) Dimension() dimension.Dimension { return dimResistance }

// Capacitance is the dimension L⁻²·M⁻¹·T⁴·I²
type Capacitance struct{}

func (Capacitance) Dimension() dimension.Dimension { return dimCapacitance }

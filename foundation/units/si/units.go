// File: units.go
// Title: SI Unit Definitions and Tags
// Description: Unit definitions and the zero-size unit tag types binding them to
//              their dimension tags.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package si

import (
	"github.com/msto63/unitx/foundation/units/unit"
	"github.com/msto63/unitx/foundation/utils/mathx"
)

var (
	metre                 = unit.Coherent("metre", "m", dimLength)
	kilometre             = unit.MustPrefixed(unit.Kilo, metre)
	centimetre            = unit.MustPrefixed(unit.Centi, metre)
	millimetre            = unit.MustPrefixed(unit.Milli, metre)
	mile                  = unit.Scaled("mile", "mi", metre, mathx.MustNewRatio(1_609_344, 1000))
	kilogram              = unit.MustNew("kilogram", "kg", dimMass, mathx.RatioOne)
	gram                  = unit.Scaled("gram", "g", kilogram, mathx.MustNewRatio(1, 1000))
	second                = unit.Coherent("second", "s", dimTime)
	millisecond           = unit.MustPrefixed(unit.Milli, second)
	microsecond           = unit.MustPrefixed(unit.Micro, second)
	nanosecond            = unit.MustPrefixed(unit.Nano, second)
	minute                = unit.Scaled("minute", "min", second, mathx.RatioOf(60))
	hour                  = unit.Scaled("hour", "h", second, mathx.RatioOf(3600))
	ampere                = unit.Coherent("ampere", "A", dimCurrent)
	mole                  = unit.Coherent("mole", "mol", dimSubstance)
	millimole             = unit.MustPrefixed(unit.Milli, mole)
	kilomole              = unit.MustPrefixed(unit.Kilo, mole)
	metrePerSecond        = unit.Divide(metre, second)
	kilometrePerHour      = unit.Divide(kilometre, hour)
	milePerHour           = unit.Divide(mile, hour)
	metrePerSecondSquared = unit.MustNew("metre per second squared", "m/s²", dimAcceleration, mathx.RatioOne)
	squareMetre           = unit.MustNew("square metre", "m²", dimArea, mathx.RatioOne)
	cubicMetre            = unit.MustNew("cubic metre", "m³", dimVolume, mathx.RatioOne)
	litre                 = unit.MustNew("litre", "l", dimVolume, mathx.MustNewRatio(1, 1000))
	kilogramPerCubicMetre = unit.MustNew("kilogram per cubic metre", "kg/m³", dimDensity, mathx.RatioOne)
	newton                = unit.Coherent("newton", "N", dimForce)
	hertz                 = unit.Coherent("hertz", "Hz", dimFrequency)
	volt                  = unit.Coherent("volt", "V", dimVoltage)
	millivolt             = unit.MustPrefixed(unit.Milli, volt)
	microvolt             = unit.MustPrefixed(unit.Micro, volt)
	nanovolt              = unit.MustPrefixed(unit.Nano, volt)
	picovolt              = unit.MustPrefixed(unit.Pico, volt)
	ohm                   = unit.Coherent("ohm", "Ω", dimResistance)
	kiloohm               = unit.MustPrefixed(unit.Kilo, ohm)
	farad                 = unit.Coherent("farad", "F", dimCapacitance)
	microfarad            = unit.MustPrefixed(unit.Micro, farad)
)

// Metre is the unit tag for the metre
type Metre struct{}

func (Metre) Dim() Length    { return Length{} }
func (Metre) Def() unit.Unit { return metre }

// Kilometre is the unit tag for the kilometre
type Kilometre struct{}

func (Kilometre) Dim() Length    { return Length{} }
func (Kilometre) Def() unit.Unit { return kilometre }

// Centimetre is the unit tag for the centimetre
type Centimetre struct{}

func (Centimetre) Dim() Length    { return Length{} }
func (Centimetre) Def() unit.Unit { return centimetre }

// Millimetre is the unit tag for the millimetre
type Millimetre struct{}

func (Millimetre) Dim() Length    { return Length{} }
func (Millimetre) Def() unit.Unit { return millimetre }

// Mile is the unit tag for the mile
type Mile struct{}

func (Mile) Dim() Length    { return Length{} }
func (Mile) Def() unit.Unit { return mile }

// Kilogram is the unit tag for the kilogram
type Kilogram struct{}

func (Kilogram) Dim() Mass      { return Mass{} }
func (Kilogram) Def() unit.Unit { return kilogram }

// Gram is the unit tag for the gram
type Gram struct{}

func (Gram) Dim() Mass      { return Mass{} }
func (Gram) Def() unit.Unit { return gram }

// Second is the unit tag for the second
type Second struct{}

func (Second) Dim() Time      { return Time{} }
func (Second) Def() unit.Unit { return second }

// Millisecond is the unit tag for the millisecond
type Millisecond struct{}

func (Millisecond) Dim() Time      { return Time{} }
func (Millisecond) Def() unit.Unit { return millisecond }

// Microsecond is the unit tag for the microsecond
type Microsecond struct{}

func (Microsecond) Dim() Time      { return Time{} }
func (Microsecond) Def() unit.Unit { return microsecond }

// Nanosecond is the unit tag for the nanosecond
type Nanosecond struct{}

func (Nanosecond) Dim() Time      { return Time{} }
func (Nanosecond) Def() unit.Unit { return nanosecond }

// Minute is the unit tag for the minute
type Minute struct{}

func (Minute) Dim() Time      { return Time{} }
func (Minute) Def() unit.Unit { return minute }

// Hour is the unit tag for the hour
type Hour struct{}

func (Hour) Dim() Time      { return Time{} }
func (Hour) Def() unit.Unit { return hour }

// Ampere is the unit tag for the ampere
type Ampere struct{}

func (Ampere) Dim() Current   { return Current{} }
func (Ampere) Def() unit.Unit { return ampere }

// Mole is the unit tag for the mole
type Mole struct{}

func (Mole) Dim() Substance { return Substance{} }
func (Mole) Def() unit.Unit { return mole }

// Millimole is the unit tag for the millimole
type Millimole struct{}

func (Millimole) Dim() Substance { return Substance{} }
func (Millimole) Def() unit.Unit { return millimole }

// Kilomole is the unit tag for the kilomole
type Kilomole struct{}

func (Kilomole) Dim() Substance { return Substance{} }
func (Kilomole) Def() unit.Unit { return kilomole }

// MetrePerSecond is the unit tag for the metre per second
type MetrePerSecond struct{}

func (MetrePerSecond) Dim() Velocity  { return Velocity{} }
func (MetrePerSecond) Def() unit.Unit { return metrePerSecond }

// KilometrePerHour is the unit tag for the kilometre per hour
type KilometrePerHour struct{}

func (KilometrePerHour) Dim() Velocity  { return Velocity{} }
func (KilometrePerHour) Def() unit.Unit { return kilometrePerHour }

// MilePerHour is the unit tag for the mile per hour
type MilePerHour struct{}

func (MilePerHour) Dim() Velocity  { return Velocity{} }
func (MilePerHour) Def() unit.Unit { return milePerHour }

// MetrePerSecondSquared is the unit tag for the metre per second squared
type MetrePerSecondSquared struct{}

func (MetrePerSecondSquared) Dim() Acceleration { return Acceleration{} }
func (MetrePerSecondSquared) Def() unit.Unit    { return metrePerSecondSquared }

// SquareMetre is the unit tag for the square metre
type SquareMetre struct{}

func (SquareMetre) Dim() Area      { return Area{} }
func (SquareMetre) Def() unit.Unit { return squareMetre }

// CubicMetre is the unit tag for the cubic metre
type CubicMetre struct{}

func (CubicMetre) Dim() Volume    { return Volume{} }
func (CubicMetre) Def() unit.Unit { return cubicMetre }

// Litre is the unit tag for the litre
type Litre struct{}

func (Litre) Dim() Volume    { return Volume{} }
func (Litre) Def() unit.Unit { return litre }

// KilogramPerCubicMetre is the unit tag for the kilogram per cubic metre
type KilogramPerCubicMetre struct{}

func (KilogramPerCubicMetre) Dim() Density   { return Density{} }
func (KilogramPerCubicMetre) Def() unit.Unit { return kilogramPerCubicMetre }

// Newton is the unit tag for the newton
type Newton struct{}

func (Newton) Dim() Force     { return Force{} }
func (Newton) Def() unit.Unit { return newton }

// Hertz is the unit tag for the hertz
type Hertz struct{}

func (Hertz) Dim() Frequency { return Frequency{} }
func (Hertz) Def() unit.Unit { return hertz }

// Volt is the unit tag for the volt
type Volt struct{}

func (Volt) Dim() Voltage   { return Voltage{} }
func (Volt) Def() unit.Unit { return volt }

// Millivolt is the unit tag for the millivolt
type Millivolt struct{}

func (Millivolt) Dim() Voltage   { return Voltage{} }
func (Millivolt) Def() unit.Unit { return millivolt }

// Microvolt is the unit tag for the microvolt
type Microvolt struct{}

func (Microvolt) Dim() Voltage   { return Voltage{} }
func (Microvolt) Def() unit.Unit { return microvolt }

// Nanovolt is the unit tag for the nanovolt
type Nanovolt struct{}

func (Nanovolt) Dim() Voltage   { return Voltage{} }
func (Nanovolt) Def() unit.Unit { return nanovolt }

// Picovolt is the unit tag for the picovolt
type Picovolt struct{}

func (Picovolt) Dim() Voltage   { return Voltage{} }
func (Picovolt) Def() unit.Unit { return picovolt }

// Ohm is the unit tag for the ohm
type Ohm struct{}

func (Ohm) Dim() Resistance { return Resistance{} }
func (Ohm) Def() unit.Unit  { return ohm }

// Kiloohm is the unit tag for the kiloohm
type Kiloohm struct{}

func (Kiloohm) Dim() Resistance { return Resistance{} }
func (Kiloohm) Def() unit.Unit  { return kiloohm }

// Farad is the unit tag for the farad
type Farad struct{}

func (Farad) Dim() Capacitance { return Capacitance{} }
func (Farad) Def() unit.Unit   { return farad }

// Microfarad is the unit tag for the microfarad
type Microfarad struct{}

func (Microfarad) Dim() Capacitance { return Capacitance{} }
func (Microfarad) Def() unit.Unit   { return microfarad }

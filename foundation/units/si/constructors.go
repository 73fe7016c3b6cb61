// File: constructors.go
// Title: Quantity Constructors
// Description: Constructors for every unit in the canonical integral (int64) and
//              floating (float64) representations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package si

import (
	"github.com/msto63/unitx/foundation/units/quantity"
)

// Metres returns v metres as int64
func Metres(v int64) quantity.Quantity[Length, Metre, int64] {
	return quantity.New[Length, Metre](v)
}

// MetresF returns v metres as float64
func MetresF(v float64) quantity.Quantity[Length, Metre, float64] {
	return quantity.New[Length, Metre](v)
}

// Kilometres returns v kilometres as int64
func Kilometres(v int64) quantity.Quantity[Length, Kilometre, int64] {
	return quantity.New[Length, Kilometre](v)
}

// KilometresF returns v kilometres as float64
func KilometresF(v float64) quantity.Quantity[Length, Kilometre, float64] {
	return quantity.New[Length, Kilometre](v)
}

// Centimetres returns v centimetres as int64
func Centimetres(v int64) quantity.Quantity[Length, Centimetre, int64] {
	return quantity.New[Length, Centimetre](v)
}

// CentimetresF returns v centimetres as float64
func CentimetresF(v float64) quantity.Quantity[Length, Centimetre, float64] {
	return quantity.New[Length, Centimetre](v)
}

// Millimetres returns v millimetres as int64
func Millimetres(v int64) quantity.Quantity[Length, Millimetre, int64] {
	return quantity.New[Length, Millimetre](v)
}

// MillimetresF returns v millimetres as float64
func MillimetresF(v float64) quantity.Quantity[Length, Millimetre, float64] {
	return quantity.New[Length, Millimetre](v)
}

// Miles returns v miles as int64
func Miles(v int64) quantity.Quantity[Length, Mile, int64] {
	return quantity.New[Length, Mile](v)
}

// MilesF returns v miles as float64
func MilesF(v float64) quantity.Quantity[Length, Mile, float64] {
	return quantity.New[Length, Mile](v)
}

// Kilograms returns v kilograms as int64
func Kilograms(v int64) quantity.Quantity[Mass, Kilogram, int64] {
	return quantity.New[Mass, Kilogram](v)
}

// KilogramsF returns v kilograms as float64
func KilogramsF(v float64) quantity.Quantity[Mass, Kilogram, float64] {
	return quantity.New[Mass, Kilogram](v)
}

// Grams returns v grams as int64
func Grams(v int64) quantity.Quantity[Mass, Gram, int64] {
	return quantity.New[Mass, Gram](v)
}

// GramsF returns v grams as float64
func GramsF(v float64) quantity.Quantity[Mass, Gram, float64] {
	return quantity.New[Mass, Gram](v)
}

// Seconds returns v seconds as int64
func Seconds(v int64) quantity.Quantity[Time, Second, int64] {
	return quantity.New[Time, Second](v)
}

// SecondsF returns v seconds as float64
func SecondsF(v float64) quantity.Quantity[Time, Second, float64] {
	return quantity.New[Time, Second](v)
}

// Milliseconds returns v milliseconds as int64
func Milliseconds(v int64) quantity.Quantity[Time, Millisecond, int64] {
	return quantity.New[Time, Millisecond](v)
}

// MillisecondsF returns v milliseconds as float64
func MillisecondsF(v float64) quantity.Quantity[Time, Millisecond, float64] {
	return quantity.New[Time, Millisecond](v)
}

// Microseconds returns v microseconds as int64
func Microseconds(v int64) quantity.Quantity[Time, Microsecond, int64] {
	return quantity.New[Time, Microsecond](v)
}

// MicrosecondsF returns v microseconds as float64
func MicrosecondsF(v float64) quantity.Quantity[Time, Microsecond, float64] {
	return quantity.New[Time, Microsecond](v)
}

// Nanoseconds returns v nanoseconds as int64
func Nanoseconds(v int64) quantity.Quantity[Time, Nanosecond, int64] {
	return quantity.New[Time, Nanosecond](v)
}

// NanosecondsF returns v nanoseconds as float64
func NanosecondsF(v float64) quantity.Quantity[Time, Nanosecond, float64] {
	return quantity.New[Time, Nanosecond](v)
}

// Minutes returns v minutes as int64
func Minutes(v int64) quantity.Quantity[Time, Minute, int64] {
	return quantity.New[Time, Minute](v)
}

// MinutesF returns v minutes as float64
func MinutesF(v float64) quantity.Quantity[Time, Minute, float64] {
	return quantity.New[Time, Minute](v)
}

// Hours returns v hours as int64
func Hours(v int64) quantity.Quantity[Time, Hour, int64] {
	return quantity.New[Time, Hour](v)
}

// HoursF returns v hours as float64
func HoursF(v float64) quantity.Quantity[Time, Hour, float64] {
	return quantity.New[Time, Hour](v)
}

// Amperes returns v amperes as int64
func Amperes(v int64) quantity.Quantity[Current, Ampere, int64] {
	return quantity.New[Current, Ampere](v)
}

// AmperesF returns v amperes as float64
func AmperesF(v float64) quantity.Quantity[Current, Ampere, float64] {
	return quantity.New[Current, Ampere](v)
}

// Moles returns v moles as int64
func Moles(v int64) quantity.Quantity[Substance, Mole, int64] {
	return quantity.New[Substance, Mole](v)
}

// MolesF returns v moles as float64
func MolesF(v float64) quantity.Quantity[Substance, Mole, float64] {
	return quantity.New[Substance, Mole](v)
}

// Millimoles returns v millimoles as int64
func Millimoles(v int64) quantity.Quantity[Substance, Millimole, int64] {
	return quantity.New[Substance, Millimole](v)
}

// MillimolesF returns v millimoles as float64
func MillimolesF(v float64) quantity.Quantity[Substance, Millimole, float64] {
	return quantity.New[Substance, Millimole](v)
}

// Kilomoles returns v kilomoles as int64
func Kilomoles(v int64) quantity.Quantity[Substance, Kilomole, int64] {
	return quantity.New[Substance, Kilomole](v)
}

// KilomolesF returns v kilomoles as float64
func KilomolesF(v float64) quantity.Quantity[Substance, Kilomole, float64] {
	return quantity.New[Substance, Kilomole](v)
}

// MetresPerSecond returns v metres per second as int64
func MetresPerSecond(v int64) quantity.Quantity[Velocity, MetrePerSecond, int64] {
	return quantity.New[Velocity, MetrePerSecond](v)
}

// MetresPerSecondF returns v metres per second as float64
func MetresPerSecondF(v float64) quantity.Quantity[Velocity, MetrePerSecond, float64] {
	return quantity.New[Velocity, MetrePerSecond](v)
}

// KilometresPerHour returns v kilometres per hour as int64
func KilometresPerHour(v int64) quantity.Quantity[Velocity, KilometrePerHour, int64] {
	return quantity.New[Velocity, KilometrePerHour](v)
}

// KilometresPerHourF returns v kilometres per hour as float64
func KilometresPerHourF(v float64) quantity.Quantity[Velocity, KilometrePerHour, float64] {
	return quantity.New[Velocity, KilometrePerHour](v)
}

// MilesPerHour returns v miles per hour as int64
func MilesPerHour(v int64) quantity.Quantity[Velocity, MilePerHour, int64] {
	return quantity.New[Velocity, MilePerHour](v)
}

// MilesPerHourF returns v miles per hour as float64
func MilesPerHourF(v float64) quantity.Quantity[Velocity, MilePerHour, float64] {
	return quantity.New[Velocity, MilePerHour](v)
}

// MetresPerSecondSquared returns v metres per second squared as int64
func MetresPerSecondSquared(v int64) quantity.Quantity[Acceleration, MetrePerSecondSquared, int64] {
	return quantity.New[Acceleration, MetrePerSecondSquared](v)
}

// MetresPerSecondSquaredF returns v metres per second squared as float64
func MetresPerSecondSquaredF(v float64) quantity.Quantity[Acceleration, MetrePerSecondSquared, float64] {
	return quantity.New[Acceleration, MetrePerSecondSquared](v)
}

// SquareMetres returns v square metres as int64
func SquareMetres(v int64) quantity.Quantity[Area, SquareMetre, int64] {
	return quantity.New[Area, SquareMetre](v)
}

// SquareMetresF returns v square metres as float64
func SquareMetresF(v float64) quantity.Quantity[Area, SquareMetre, float64] {
	return quantity.New[Area, SquareMetre](v)
}

// CubicMetres returns v cubic metres as int64
func CubicMetres(v int64) quantity.Quantity[Volume, CubicMetre, int64] {
	return quantity.New[Volume, CubicMetre](v)
}

// CubicMetresF returns v cubic metres as float64
func CubicMetresF(v float64) quantity.Quantity[Volume, CubicMetre, float64] {
	return quantity.New[Volume, CubicMetre](v)
}

// Litres returns v litres as int64
func Litres(v int64) quantity.Quantity[Volume, Litre, int64] {
	return quantity.New[Volume, Litre](v)
}

// LitresF returns v litres as float64
func LitresF(v float64) quantity.Quantity[Volume, Litre, float64] {
	return quantity.New[Volume, Litre](v)
}

// KilogramsPerCubicMetre returns v kilograms per cubic metre as int64
func KilogramsPerCubicMetre(v int64) quantity.Quantity[Density, KilogramPerCubicMetre, int64] {
	return quantity.New[Density, KilogramPerCubicMetre](v)
}

// KilogramsPerCubicMetreF returns v kilograms per cubic metre as float64
func KilogramsPerCubicMetreF(v float64) quantity.Quantity[Density, KilogramPerCubicMetre, float64] {
	return quantity.New[Density, KilogramPerCubicMetre](v)
}

// Newtons returns v newtons as int64
func Newtons(v int64) quantity.Quantity[Force, Newton, int64] {
	return quantity.New[Force, Newton](v)
}

// NewtonsF returns v newtons as float64
func NewtonsF(v float64) quantity.Quantity[Force, Newton, float64] {
	return quantity.New[Force, Newton](v)
}

// InHertz returns v hertz as int64
func InHertz(v int64) quantity.Quantity[Frequency, Hertz, int64] {
	return quantity.New[Frequency, Hertz](v)
}

// InHertzF returns v hertz as float64
func InHertzF(v float64) quantity.Quantity[Frequency, Hertz, float64] {
	return quantity.New[Frequency, Hertz](v)
}

// Volts returns v volts as int64
func Volts(v int64) quantity.Quantity[Voltage, Volt, int64] {
	return quantity.New[Voltage, Volt](v)
}

// VoltsF returns v volts as float64
func VoltsF(v float64) quantity.Quantity[Voltage, Volt, float64] {
	return quantity.New[Voltage, Volt](v)
}

// Millivolts returns v millivolts as int64
func Millivolts(v int64) quantity.Quantity[Voltage, Millivolt, int64] {
	return quantity.New[Voltage, Millivolt](v)
}

// MillivoltsF returns v millivolts as float64
func MillivoltsF(v float64) quantity.Quantity[Voltage, Millivolt, float64] {
	return quantity.New[Voltage, Millivolt](v)
}

// Microvolts returns v microvolts as int64
func Microvolts(v int64) quantity.Quantity[Voltage, Microvolt, int64] {
	return quantity.New[Voltage, Microvolt](v)
}

// MicrovoltsF returns v microvolts as float64
func MicrovoltsF(v float64) quantity.Quantity[Voltage, Microvolt, float64] {
	return quantity.New[Voltage, Microvolt](v)
}

// Nanovolts returns v nanovolts as int64
func Nanovolts(v int64) quantity.Quantity[Voltage, Nanovolt, int64] {
	return quantity.New[Voltage, Nanovolt](v)
}

// NanovoltsF returns v nanovolts as float64
func NanovoltsF(v float64) quantity.Quantity[Voltage, Nanovolt, float64] {
	return quantity.New[Voltage, Nanovolt](v)
}

// Picovolts returns v picovolts as int64
func Picovolts(v int64) quantity.Quantity[Voltage, Picovolt, int64] {
	return quantity.New[Voltage, Picovolt](v)
}

// PicovoltsF returns v picovolts as float64
func PicovoltsF(v float64) quantity.Quantity[Voltage, Picovolt, float64] {
	return quantity.New[Voltage, Picovolt](v)
}

// Ohms returns v ohms as int64
func Ohms(v int64) quantity.Quantity[Resistance, Ohm, int64] {
	return quantity.New[Resistance, Ohm](v)
}

// OhmsF returns v ohms as float64
func OhmsF(v float64) quantity.Quantity[Resistance, Ohm, float64] {
	return quantity.New[Resistance, Ohm](v)
}

// Kiloohms returns v kiloohms as int64
func Kiloohms(v int64) quantity.Quantity[Resistance, Kiloohm, int64] {
	return quantity.New[Resistance, Kiloohm](v)
}

// KiloohmsF returns v kiloohms as float64
func KiloohmsF(v float64) quantity.Quantity[Resistance, Kiloohm, float64] {
	return quantity.New[Resistance, Kiloohm](v)
}

// Farads returns v farads as int64
func Farads(v int64) quantity.Quantity[Capacitance, Farad, int64] {
	return quantity.New[Capacitance, Farad](v)
}

// FaradsF returns v farads as float64
func FaradsF(v float64) quantity.Quantity[Capacitance, Farad, float64] {
	return quantity.New[Capacitance, Farad](v)
}

// Microfarads returns v microfarads as int64
func Microfarads(v int64) quantity.Quantity[Capacitance, Microfarad, int64] {
	return quantity.New[Capacitance, Microfarad](v)
}

// MicrofaradsF returns v microfarads as float64
func MicrofaradsF(v float64) quantity.Quantity[Capacitance, Microfarad, float64] {
	return quantity.New[Capacitance, Microfarad](v)
}

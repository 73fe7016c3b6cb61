// File: catalog.go
// Title: SI Unit Catalog
// Description: Lists every unit defined in this package together with its
//              quantity kind, for display and for consistency checks of the
//              unit tags.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package si

import (
	"strings"

	"github.com/msto63/unitx/foundation/units/quantity"
	"github.com/msto63/unitx/foundation/units/unit"
)

// Entry describes one unit of the catalog
type Entry struct {
	Kind     string
	Unit     unit.Unit
	validate func() error
}

// Validate checks that the unit tag and the dimension tag agree
func (e Entry) Validate() error {
	return e.validate()
}

var catalog = []Entry{
	{Kind: "length", Unit: metre, validate: quantity.Validate[Length, Metre]},
	{Kind: "length", Unit: kilometre, validate: quantity.Validate[Length, Kilometre]},
	{Kind: "length", Unit: centimetre, validate: quantity.Validate[Length, Centimetre]},
	{Kind: "length", Unit: millimetre, validate: quantity.Validate[Length, Millimetre]},
	{Kind: "length", Unit: mile, validate: quantity.Validate[Length, Mile]},
	{Kind: "mass", Unit: kilogram, validate: quantity.Validate[Mass, Kilogram]},
	{Kind: "mass", Unit: gram, validate: quantity.Validate[Mass, Gram]},
	{Kind: "time", Unit: second, validate: quantity.Validate[Time, Second]},
	{Kind: "time", Unit: millisecond, validate: quantity.Validate[Time, Millisecond]},
	{Kind: "time", Unit: microsecond, validate: quantity.Validate[Time, Microsecond]},
	{Kind: "time", Unit: nanosecond, validate: quantity.Validate[Time, Nanosecond]},
	{Kind: "time", Unit: minute, validate: quantity.Validate[Time, Minute]},
	{Kind: "time", Unit: hour, validate: quantity.Validate[Time, Hour]},
	{Kind: "current", Unit: ampere, validate: quantity.Validate[Current, Ampere]},
	{Kind: "substance", Unit: mole, validate: quantity.Validate[Substance, Mole]},
	{Kind: "substance", Unit: millimole, validate: quantity.Validate[Substance, Millimole]},
	{Kind: "substance", Unit: kilomole, validate: quantity.Validate[Substance, Kilomole]},
	{Kind: "velocity", Unit: metrePerSecond, validate: quantity.Validate[Velocity, MetrePerSecond]},
	{Kind: "velocity", Unit: kilometrePerHour, validate: quantity.Validate[Velocity, KilometrePerHour]},
	{Kind: "velocity", Unit: milePerHour, validate: quantity.Validate[Velocity, MilePerHour]},
	{Kind: "acceleration", Unit: metrePerSecondSquared, validate: quantity.Validate[Acceleration, MetrePerSecondSquared]},
	{Kind: "area", Unit: squareMetre, validate: quantity.Validate[Area, SquareMetre]},
	{Kind: "volume", Unit: cubicMetre, validate: quantity.Validate[Volume, CubicMetre]},
	{Kind: "volume", Unit: litre, validate: quantity.Validate[Volume, Litre]},
	{Kind: "density", Unit: kilogramPerCubicMetre, validate: quantity.Validate[Density, KilogramPerCubicMetre]},
	{Kind: "force", Unit: newton, validate: quantity.Validate[Force, Newton]},
	{Kind: "frequency", Unit: hertz, validate: quantity.Validate[Frequency, Hertz]},
	{Kind: "voltage", Unit: volt, validate: quantity.Validate[Voltage, Volt]},
	{Kind: "voltage", Unit: millivolt, validate: quantity.Validate[Voltage, Millivolt]},
	{Kind: "voltage", Unit: microvolt, validate: quantity.Validate[Voltage, Microvolt]},
	{Kind: "voltage", Unit: nanovolt, validate: quantity.Validate[Voltage, Nanovolt]},
	{Kind: "voltage", Unit: picovolt, validate: quantity.Validate[Voltage, Picovolt]},
	{Kind: "resistance", Unit: ohm, validate: quantity.Validate[Resistance, Ohm]},
	{Kind: "resistance", Unit: kiloohm, validate: quantity.Validate[Resistance, Kiloohm]},
	{Kind: "capacitance", Unit: farad, validate: quantity.Validate[Capacitance, Farad]},
	{Kind: "capacitance", Unit: microfarad, validate: quantity.Validate[Capacitance, Microfarad]},
}

// Catalog returns all units in definition order
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Kinds returns the distinct quantity kinds in definition order
func Kinds() []string {
	var kinds []string
	seen := make(map[string]bool)
	for _, e := range catalog {
		if !seen[e.Kind] {
			seen[e.Kind] = true
			kinds = append(kinds, e.Kind)
		}
	}
	return kinds
}

// ByKind returns the units of one quantity kind, matched case-insensitively
func ByKind(kind string) []Entry {
	var out []Entry
	for _, e := range catalog {
		if strings.EqualFold(e.Kind, kind) {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds a unit by symbol or name
func Lookup(s string) (unit.Unit, bool) {
	for _, e := range catalog {
		if e.Unit.Symbol() == s || e.Unit.Name() == s {
			return e.Unit, true
		}
	}
	return unit.Unit{}, false
}

// File: base.go
// Title: SI Base Quantities
// Description: Defines the seven SI base quantities in canonical order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package dimension

// Base identifies one of the seven SI base quantities. The numeric order
// is the canonical order of exponents within a Dimension.
type Base int

const (
	Length Base = iota
	Mass
	Time
	Current
	Temperature
	Substance
	Luminosity
)

var baseNames = [...]string{
	Length:      "length",
	Mass:        "mass",
	Time:        "time",
	Current:     "current",
	Temperature: "temperature",
	Substance:   "substance",
	Luminosity:  "luminosity",
}

var baseSymbols = [...]string{
	Length:      "L",
	Mass:        "M",
	Time:        "T",
	Current:     "I",
	Temperature: "Θ",
	Substance:   "N",
	Luminosity:  "J",
}

// Bases returns all base quantities in canonical order
func Bases() []Base {
	return []Base{Length, Mass, Time, Current, Temperature, Substance, Luminosity}
}

// IsValid reports whether b is one of the seven base quantities
func (b Base) IsValid() bool {
	return b >= Length && b <= Luminosity
}

// String returns the lower-case name of the base quantity
func (b Base) String() string {
	if !b.IsValid() {
		return "unknown"
	}
	return baseNames[b]
}

// Symbol returns the conventional dimension symbol
func (b Base) Symbol() string {
	if !b.IsValid() {
		return "?"
	}
	return baseSymbols[b]
}

// ParseBase looks a base quantity up by name or symbol
func ParseBase(s string) (Base, bool) {
	for _, b := range Bases() {
		if s == b.String() || s == b.Symbol() {
			return b, true
		}
	}
	return 0, false
}

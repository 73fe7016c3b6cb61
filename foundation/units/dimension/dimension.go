// File: dimension.go
// Title: Dimension Type and Composition Rules
// Description: Implements Dimension, an ordered list of base exponents,
//              together with multiplication, division, inversion and
//              integer powers. Cancelled exponents are removed so that
//              equal physical kinds always have identical lists.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package dimension

import (
	"sort"
	"strconv"
	"strings"

	"github.com/msto63/unitx/foundation/core/errors"
)

// Exponent is one base quantity raised to a non-zero integer power
type Exponent struct {
	Base  Base
	Power int
}

// Dimension is a product of base-quantity powers. The zero value is the
// dimensionless dimension.
type Dimension struct {
	exps []Exponent
}

// New creates a dimension from exponents. Each base may be listed once;
// zero powers are dropped and the result is sorted into canonical order.
func New(exps ...Exponent) (Dimension, error) {
	seen := make(map[Base]bool, len(exps))
	out := make([]Exponent, 0, len(exps))
	for _, e := range exps {
		if !e.Base.IsValid() {
			return Dimension{}, errors.InvalidInput(errors.ModuleDimension, "New", e.Base, "SI base quantity")
		}
		if seen[e.Base] {
			return Dimension{}, errors.DimensionDuplicateBase(e.Base)
		}
		seen[e.Base] = true
		if e.Power != 0 {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Base < out[j].Base })
	return Dimension{exps: out}, nil
}

// MustNew is like New but panics on invalid input.
// Use this for package-level dimension definitions.
func MustNew(exps ...Exponent) Dimension {
	d, err := New(exps...)
	if err != nil {
		panic(err)
	}
	return d
}

// Of returns the dimension of a single base quantity to the first power
func Of(b Base) Dimension {
	return MustNew(Exponent{Base: b, Power: 1})
}

// Dimensionless returns the dimension of pure numbers
func Dimensionless() Dimension {
	return Dimension{}
}

// Multiply returns a·b: powers of matching bases are added
func Multiply(a, b Dimension) Dimension {
	return combine(a, b, 1)
}

// Divide returns a/b: powers of matching bases are subtracted
func Divide(a, b Dimension) Dimension {
	return combine(a, b, -1)
}

// combine merges two sorted exponent lists, adding sign*b's powers to a's
func combine(a, b Dimension, sign int) Dimension {
	out := make([]Exponent, 0, len(a.exps)+len(b.exps))
	i, j := 0, 0
	for i < len(a.exps) || j < len(b.exps) {
		switch {
		case j >= len(b.exps) || (i < len(a.exps) && a.exps[i].Base < b.exps[j].Base):
			out = append(out, a.exps[i])
			i++
		case i >= len(a.exps) || b.exps[j].Base < a.exps[i].Base:
			out = append(out, Exponent{Base: b.exps[j].Base, Power: sign * b.exps[j].Power})
			j++
		default:
			if p := a.exps[i].Power + sign*b.exps[j].Power; p != 0 {
				out = append(out, Exponent{Base: a.exps[i].Base, Power: p})
			}
			i++
			j++
		}
	}
	return Dimension{exps: out}
}

// Invert returns 1/d, every power negated
func (d Dimension) Invert() Dimension {
	return d.Pow(-1)
}

// Pow returns d raised to an integer power. Pow(0) is dimensionless.
func (d Dimension) Pow(n int) Dimension {
	if n == 0 {
		return Dimension{}
	}
	out := make([]Exponent, len(d.exps))
	for i, e := range d.exps {
		out[i] = Exponent{Base: e.Base, Power: e.Power * n}
	}
	return Dimension{exps: out}
}

// Power returns the exponent of b in d, 0 if absent
func (d Dimension) Power(b Base) int {
	for _, e := range d.exps {
		if e.Base == b {
			return e.Power
		}
	}
	return 0
}

// Exponents returns a copy of the exponent list in canonical order
func (d Dimension) Exponents() []Exponent {
	out := make([]Exponent, len(d.exps))
	copy(out, d.exps)
	return out
}

// IsDimensionless reports whether d has no exponents
func (d Dimension) IsDimensionless() bool {
	return len(d.exps) == 0
}

// Equal reports whether two dimensions have identical exponent lists
func (d Dimension) Equal(o Dimension) bool {
	if len(d.exps) != len(o.exps) {
		return false
	}
	for i := range d.exps {
		if d.exps[i] != o.exps[i] {
			return false
		}
	}
	return true
}

// Key returns a compact string usable as a map key, e.g. "L1T-1"
func (d Dimension) Key() string {
	var sb strings.Builder
	for _, e := range d.exps {
		sb.WriteString(e.Base.Symbol())
		sb.WriteString(strconv.Itoa(e.Power))
	}
	return sb.String()
}

// String returns the conventional notation, e.g. "L·T⁻¹", or "1" for
// dimensionless
func (d Dimension) String() string {
	if len(d.exps) == 0 {
		return "1"
	}
	parts := make([]string, len(d.exps))
	for i, e := range d.exps {
		parts[i] = e.Base.Symbol()
		if e.Power != 1 {
			parts[i] += superscript(e.Power)
		}
	}
	return strings.Join(parts, "·")
}

var superscripts = map[rune]rune{
	'-': '⁻', '0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

func superscript(n int) string {
	var sb strings.Builder
	for _, r := range strconv.Itoa(n) {
		sb.WriteRune(superscripts[r])
	}
	return sb.String()
}

// File: unit.go
// Title: Unit Type and Composition
// Description: Implements Unit, a named scale factor attached to a
//              dimension, with constructors, composition across dimensions,
//              the common unit of two same-dimension units and conversion
//              ratios.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package unit

import (
	"fmt"

	"github.com/msto63/unitx/foundation/core/errors"
	"github.com/msto63/unitx/foundation/units/dimension"
	"github.com/msto63/unitx/foundation/utils/mathx"
)

// Unit is an immutable measurement scale. The zero value is the anonymous
// dimensionless unit with ratio 1.
type Unit struct {
	name       string
	symbol     string
	dim        dimension.Dimension
	ratio      mathx.Ratio
	prefixable bool
}

// New creates a unit with the given ratio to the coherent unit of dim.
// The ratio must be strictly positive.
func New(name, symbol string, dim dimension.Dimension, ratio mathx.Ratio) (Unit, error) {
	if !ratio.IsPositive() {
		return Unit{}, errors.UnitInvalidRatio(name, ratio)
	}
	return Unit{name: name, symbol: symbol, dim: dim, ratio: ratio}, nil
}

// MustNew is like New but panics on a non-positive ratio
func MustNew(name, symbol string, dim dimension.Dimension, ratio mathx.Ratio) Unit {
	u, err := New(name, symbol, dim, ratio)
	if err != nil {
		panic(err)
	}
	return u
}

// Coherent creates the reference unit of dim: ratio 1 and eligible for SI
// prefixes
func Coherent(name, symbol string, dim dimension.Dimension) Unit {
	return Unit{name: name, symbol: symbol, dim: dim, ratio: mathx.RatioOne, prefixable: true}
}

// Scaled creates a unit that is factor times base, e.g. an hour is 3600
// seconds. Scaled units do not accept prefixes.
func Scaled(name, symbol string, base Unit, factor mathx.Ratio) Unit {
	return MustNew(name, symbol, base.dim, base.Ratio().Mul(factor))
}

// Dimensionless returns the coherent unit of pure numbers
func Dimensionless() Unit {
	return Unit{ratio: mathx.RatioOne}
}

// Name returns the unit name, empty for anonymous units
func (u Unit) Name() string { return u.name }

// Symbol returns the unit symbol, empty for anonymous units
func (u Unit) Symbol() string { return u.symbol }

// Dimension returns the dimension measured by u
func (u Unit) Dimension() dimension.Dimension { return u.dim }

// Prefixable reports whether SI prefixes may be applied
func (u Unit) Prefixable() bool { return u.prefixable }

// Ratio returns the size of u in coherent units
func (u Unit) Ratio() mathx.Ratio {
	if u.ratio.Num() == 0 {
		return mathx.RatioOne
	}
	return u.ratio
}

// IsCoherent reports whether u has ratio 1
func (u Unit) IsCoherent() bool {
	return u.Ratio().IsOne()
}

// IsAnonymous reports whether u has neither a name nor a symbol
func (u Unit) IsAnonymous() bool {
	return u.name == "" && u.symbol == ""
}

// Multiply returns the product unit a·b
func Multiply(a, b Unit) Unit {
	switch {
	case isOne(a):
		return b
	case isOne(b):
		return a
	}
	return Unit{
		name:   joinName(a.name, "-", b.name),
		symbol: joinSymbol(a.symbol, "·", b.symbol),
		dim:    dimension.Multiply(a.dim, b.dim),
		ratio:  a.Ratio().Mul(b.Ratio()),
	}
}

// Divide returns the quotient unit a/b
func Divide(a, b Unit) Unit {
	switch {
	case isOne(b):
		return a
	case isOne(a):
		return Inverse(b)
	}
	return Unit{
		name:   joinName(a.name, " per ", b.name),
		symbol: joinSymbol(a.symbol, "/", b.symbol),
		dim:    dimension.Divide(a.dim, b.dim),
		ratio:  a.Ratio().Div(b.Ratio()),
	}
}

// Inverse returns the reciprocal unit 1/u
func Inverse(u Unit) Unit {
	inv := Unit{
		dim:   u.dim.Invert(),
		ratio: u.Ratio().Inverse(),
	}
	if u.name != "" {
		inv.name = "per " + u.name
	}
	if u.symbol != "" {
		inv.symbol = "1/" + u.symbol
	}
	return inv
}

// Common returns the coarsest unit that both a and b are integral
// multiples of. If a or b already has that ratio it is returned as is,
// otherwise the result is anonymous.
func Common(a, b Unit) (Unit, error) {
	if !a.dim.Equal(b.dim) {
		return Unit{}, errors.UnitDimensionMismatch("unit.Common", a.dim, b.dim)
	}
	r := mathx.CommonRatio(a.Ratio(), b.Ratio())
	switch {
	case a.Ratio().Equal(r):
		return a, nil
	case b.Ratio().Equal(r):
		return b, nil
	}
	return Unit{dim: a.dim, ratio: r}, nil
}

// ConversionRatio returns the factor that turns a count of from into a
// count of to
func ConversionRatio(from, to Unit) mathx.Ratio {
	return from.Ratio().Div(to.Ratio())
}

// SameScale reports whether a and b measure the same dimension with the
// same ratio, regardless of naming
func SameScale(a, b Unit) bool {
	return a.dim.Equal(b.dim) && a.Ratio().Equal(b.Ratio())
}

// Equal reports whether a and b are the same unit including naming
func Equal(a, b Unit) bool {
	return SameScale(a, b) && a.name == b.name && a.symbol == b.symbol && a.prefixable == b.prefixable
}

// Equal reports whether u and o are the same unit including naming
func (u Unit) Equal(o Unit) bool {
	return Equal(u, o)
}

// String returns the symbol, or "[ratio] dimension" for anonymous units
func (u Unit) String() string {
	if u.symbol != "" {
		return u.symbol
	}
	if u.name != "" {
		return u.name
	}
	if u.dim.IsDimensionless() && u.IsCoherent() {
		return ""
	}
	return fmt.Sprintf("[%s] %s", u.Ratio(), u.dim)
}

func joinName(a, sep, b string) string {
	if a == "" || b == "" {
		return ""
	}
	return a + sep + b
}

func joinSymbol(a, sep, b string) string {
	if a == "" || b == "" {
		return ""
	}
	return a + sep + b
}

func isOne(u Unit) bool {
	return u.IsAnonymous() && u.dim.IsDimensionless() && u.IsCoherent()
}

// File: prefix.go
// Title: SI Prefixes
// Description: Defines the decimal SI prefixes from atto to exa and derives
//              prefixed units from prefix-eligible coherent units.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package unit

import (
	"github.com/msto63/unitx/foundation/core/errors"
	"github.com/msto63/unitx/foundation/utils/mathx"
)

// Prefix is a decimal scale applied to a unit's name and symbol
type Prefix struct {
	Name   string
	Symbol string
	Ratio  mathx.Ratio
}

// SI prefixes. Ratios beyond exa do not fit in int64.
var (
	Atto  = Prefix{"atto", "a", mathx.MustNewRatio(1, 1_000_000_000_000_000_000)}
	Femto = Prefix{"femto", "f", mathx.MustNewRatio(1, 1_000_000_000_000_000)}
	Pico  = Prefix{"pico", "p", mathx.MustNewRatio(1, 1_000_000_000_000)}
	Nano  = Prefix{"nano", "n", mathx.MustNewRatio(1, 1_000_000_000)}
	Micro = Prefix{"micro", "µ", mathx.MustNewRatio(1, 1_000_000)}
	Milli = Prefix{"milli", "m", mathx.MustNewRatio(1, 1000)}
	Centi = Prefix{"centi", "c", mathx.MustNewRatio(1, 100)}
	Deci  = Prefix{"deci", "d", mathx.MustNewRatio(1, 10)}
	Deca  = Prefix{"deca", "da", mathx.RatioOf(10)}
	Hecto = Prefix{"hecto", "h", mathx.RatioOf(100)}
	Kilo  = Prefix{"kilo", "k", mathx.RatioOf(1000)}
	Mega  = Prefix{"mega", "M", mathx.RatioOf(1_000_000)}
	Giga  = Prefix{"giga", "G", mathx.RatioOf(1_000_000_000)}
	Tera  = Prefix{"tera", "T", mathx.RatioOf(1_000_000_000_000)}
	Peta  = Prefix{"peta", "P", mathx.RatioOf(1_000_000_000_000_000)}
	Exa   = Prefix{"exa", "E", mathx.RatioOf(1_000_000_000_000_000_000)}
)

// Prefixes returns all SI prefixes from smallest to largest
func Prefixes() []Prefix {
	return []Prefix{Atto, Femto, Pico, Nano, Micro, Milli, Centi, Deci, Deca, Hecto, Kilo, Mega, Giga, Tera, Peta, Exa}
}

// WithPrefix derives the prefixed unit p·u. Only prefix-eligible units
// accept a prefix; the derived unit itself does not.
func WithPrefix(p Prefix, u Unit) (Unit, error) {
	if !u.prefixable {
		return Unit{}, errors.UnitNotPrefixable(u.String(), p.Name)
	}
	return Unit{
		name:   p.Name + u.name,
		symbol: p.Symbol + u.symbol,
		dim:    u.dim,
		ratio:  u.Ratio().Mul(p.Ratio),
	}, nil
}

// MustPrefixed is like WithPrefix but panics if u is not prefix-eligible
func MustPrefixed(p Prefix, u Unit) Unit {
	pu, err := WithPrefix(p, u)
	if err != nil {
		panic(err)
	}
	return pu
}

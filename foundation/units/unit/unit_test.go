// File: unit_test.go
// Title: Unit Tests for Unit Definitions
// Description: Tests for unit construction, prefixes, composition, the
//              common unit and conversion ratios.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package unit

import (
	"testing"

	mdwerror "github.com/msto63/unitx/foundation/core/error"
	"github.com/msto63/unitx/foundation/units/dimension"
	"github.com/msto63/unitx/foundation/utils/mathx"
)

var (
	metre      = Coherent("metre", "m", dimension.Of(dimension.Length))
	kilometre  = MustPrefixed(Kilo, metre)
	millimetre = MustPrefixed(Milli, metre)
	second     = Coherent("second", "s", dimension.Of(dimension.Time))
	minute     = Scaled("minute", "min", second, mathx.RatioOf(60))
	hour       = Scaled("hour", "h", second, mathx.RatioOf(3600))
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		ratio   mathx.Ratio
		wantErr bool
	}{
		{"positive", mathx.RatioOf(3), false},
		{"fraction", mathx.MustNewRatio(5, 18), false},
		{"zero", mathx.RatioOf(0), true},
		{"negative", mathx.RatioOf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := New("x", "x", dimension.Of(dimension.Length), tt.ratio)
			if tt.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidRatio) {
					t.Fatalf("New() error = %v, want %s", err, mdwerror.CodeInvalidRatio)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if !u.Ratio().Equal(tt.ratio) {
				t.Errorf("Ratio() = %s, want %s", u.Ratio(), tt.ratio)
			}
		})
	}
}

func TestPrefixes(t *testing.T) {
	if kilometre.Symbol() != "km" || kilometre.Name() != "kilometre" {
		t.Errorf("kilometre = %q/%q", kilometre.Name(), kilometre.Symbol())
	}
	if !kilometre.Ratio().Equal(mathx.RatioOf(1000)) {
		t.Errorf("km ratio = %s", kilometre.Ratio())
	}
	if !millimetre.Ratio().Equal(mathx.MustNewRatio(1, 1000)) {
		t.Errorf("mm ratio = %s", millimetre.Ratio())
	}
	if kilometre.Prefixable() {
		t.Error("prefixed units must not accept a second prefix")
	}

	if _, err := WithPrefix(Kilo, hour); !mdwerror.HasCode(err, mdwerror.CodeNotPrefixable) {
		t.Errorf("WithPrefix(kilo, hour) error = %v", err)
	}
	if _, err := WithPrefix(Mega, kilometre); !mdwerror.HasCode(err, mdwerror.CodeNotPrefixable) {
		t.Errorf("WithPrefix(mega, km) error = %v", err)
	}

	prev := mathx.RatioOf(0)
	for _, p := range Prefixes() {
		if mathx.Compare(p.Ratio, prev) <= 0 {
			t.Errorf("prefix %s out of order", p.Name)
		}
		prev = p.Ratio
	}
}

func TestComposition(t *testing.T) {
	kmh := Divide(kilometre, hour)
	if kmh.Symbol() != "km/h" || kmh.Name() != "kilometre per hour" {
		t.Errorf("km/h = %q/%q", kmh.Name(), kmh.Symbol())
	}
	if !kmh.Ratio().Equal(mathx.MustNewRatio(5, 18)) {
		t.Errorf("km/h ratio = %s, want 5/18", kmh.Ratio())
	}
	if got := kmh.Dimension().String(); got != "L·T⁻¹" {
		t.Errorf("km/h dimension = %s", got)
	}

	back := Multiply(kmh, hour)
	if !SameScale(back, kilometre) {
		t.Errorf("km/h · h = %s, want the scale of km", back)
	}

	hz := Inverse(second)
	if hz.Symbol() != "1/s" || !hz.Dimension().Equal(dimension.Of(dimension.Time).Invert()) {
		t.Errorf("1/s = %s (%s)", hz, hz.Dimension())
	}
	if !Inverse(minute).Ratio().Equal(mathx.MustNewRatio(1, 60)) {
		t.Errorf("1/min ratio = %s", Inverse(minute).Ratio())
	}

	if !Equal(Multiply(Dimensionless(), metre), metre) || !Equal(Divide(metre, Dimensionless()), metre) {
		t.Error("dimensionless unit should be neutral")
	}
	if !SameScale(Divide(Dimensionless(), second), hz) {
		t.Error("1 / s should be the reciprocal of the second")
	}
}

func TestCommon(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Unit
		wantRatio  mathx.Ratio
		wantString string
	}{
		{"metre and kilometre", metre, kilometre, mathx.RatioOne, "m"},
		{"kilometre and metre", kilometre, metre, mathx.RatioOne, "m"},
		{"kilometre and millimetre", kilometre, millimetre, mathx.MustNewRatio(1, 1000), "mm"},
		{"minute and hour", minute, hour, mathx.RatioOf(60), "min"},
		{
			"anonymous",
			Scaled("two", "2m", metre, mathx.RatioOf(2)),
			Scaled("three", "3m", metre, mathx.RatioOf(3)),
			mathx.RatioOne,
			"[1] L",
		},
		{
			"anonymous fraction",
			Scaled("third", "m/3", metre, mathx.MustNewRatio(1, 3)),
			Scaled("half", "m/2", metre, mathx.MustNewRatio(1, 2)),
			mathx.MustNewRatio(1, 6),
			"[1/6] L",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Common(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Common() unexpected error: %v", err)
			}
			if !c.Ratio().Equal(tt.wantRatio) {
				t.Errorf("Common() ratio = %s, want %s", c.Ratio(), tt.wantRatio)
			}
			if c.String() != tt.wantString {
				t.Errorf("Common() = %q, want %q", c.String(), tt.wantString)
			}
			if !ConversionRatio(tt.a, c).IsInteger() || !ConversionRatio(tt.b, c).IsInteger() {
				t.Error("both operands must convert to the common unit without fractions")
			}
		})
	}

	if _, err := Common(metre, second); !mdwerror.HasCode(err, mdwerror.CodeUnitMismatch) {
		t.Errorf("Common(m, s) error = %v, want %s", err, mdwerror.CodeUnitMismatch)
	}
}

func TestConversionRatio(t *testing.T) {
	if r := ConversionRatio(kilometre, metre); !r.Equal(mathx.RatioOf(1000)) {
		t.Errorf("km -> m = %s", r)
	}
	if r := ConversionRatio(metre, kilometre); !r.Equal(mathx.MustNewRatio(1, 1000)) {
		t.Errorf("m -> km = %s", r)
	}
	if r := ConversionRatio(hour, minute); !r.Equal(mathx.RatioOf(60)) {
		t.Errorf("h -> min = %s", r)
	}
}

func TestEquality(t *testing.T) {
	alias := MustNew("kilometer", "km", metre.Dimension(), mathx.RatioOf(1000))
	if !SameScale(alias, kilometre) {
		t.Error("same dimension and ratio should be the same scale")
	}
	if Equal(alias, kilometre) || alias.Equal(kilometre) {
		t.Error("differently named units should not be equal")
	}
	if !kilometre.Equal(MustPrefixed(Kilo, metre)) {
		t.Error("identical definitions should be equal")
	}

	var zero Unit
	if !zero.IsCoherent() || zero.String() != "" || !zero.IsAnonymous() {
		t.Errorf("zero Unit = %q", zero.String())
	}
}

// File: cast_test.go
// Title: Unit Tests for Conversion and Casting
// Description: Tests for the checked conversion rules, explicit casts and
//              the ratio dispatch of the scaling step.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package quantity

import (
	"testing"

	mdwerror "github.com/msto63/unitx/foundation/core/error"
	"github.com/msto63/unitx/foundation/utils/mathx"
)

func TestConvert(t *testing.T) {
	t.Run("integral ratio into integral", func(t *testing.T) {
		m, err := Convert[metre, int64](New[length, kilometre](int64(3)))
		if err != nil || m.Count() != 3000 {
			t.Fatalf("3 km -> m = %v, %v", m, err)
		}
	})

	t.Run("fractional ratio into integral", func(t *testing.T) {
		_, err := Convert[kilometre, int64](New[length, metre](int64(1500)))
		if !mdwerror.HasCode(err, mdwerror.CodeLossyConversion) {
			t.Fatalf("1500 m -> km error = %v, want %s", err, mdwerror.CodeLossyConversion)
		}
	})

	t.Run("fractional ratio into float", func(t *testing.T) {
		km, err := Convert[kilometre, float64](New[length, metre](int64(1500)))
		if err != nil || km.Count() != 1.5 {
			t.Fatalf("1500 m -> km = %v, %v", km, err)
		}
	})

	t.Run("float source into integral", func(t *testing.T) {
		_, err := Convert[metre, int64](New[length, kilometre](2.0))
		if !mdwerror.HasCode(err, mdwerror.CodeLossyConversion) {
			t.Fatalf("float km -> int m error = %v", err)
		}
	})

	t.Run("representation only", func(t *testing.T) {
		m, err := Convert[metre, int32](New[length, metre](int64(42)))
		if err != nil || m.Count() != 42 {
			t.Fatalf("int64 -> int32 = %v, %v", m, err)
		}
	})

	t.Run("floating-point-like target", func(t *testing.T) {
		if _, err := Convert[kilometre, fixed](New[length, metre](int64(1500))); err != nil {
			t.Fatalf("m -> km into fixed: %v", err)
		}
	})

	t.Run("compound units", func(t *testing.T) {
		v, err := Convert[mps, float64](New[velocity, kmh](int64(36)))
		if err != nil || v.Count() != 10 {
			t.Fatalf("36 km/h -> m/s = %v, %v", v, err)
		}
		if _, err := Convert[mps, int64](New[velocity, kmh](int64(36))); err == nil {
			t.Fatal("km/h -> m/s into int64 should be rejected")
		}
	})
}

func TestMustConvertPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("MustConvert should panic on a lossy conversion")
		}
	}()
	MustConvert[kilometre, int64](New[length, metre](int64(1)))
}

func TestCast(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"km to m", float64(Cast[metre, int64](New[length, kilometre](int64(3))).Count()), 3000},
		{"m to km truncates", float64(Cast[kilometre, int64](New[length, metre](int64(1500))).Count()), 1},
		{"negative truncates toward zero", float64(Cast[kilometre, int64](New[length, metre](int64(-1500))).Count()), -1},
		{"m to km float", Cast[kilometre, float64](New[length, metre](int64(1500))).Count(), 1.5},
		{"km/h to m/s integral", float64(Cast[mps, int64](New[velocity, kmh](int64(36))).Count()), 10},
		{"km/h to m/s float", Cast[mps, float64](New[velocity, kmh](9.0)).Count(), 2.5},
		{"rep only", float64(CastRep[int64](New[length, metre](2.9)).Count()), 2},
		{"unit only", CastUnit[millimetre](New[length, metre](0.25)).Count(), 250},
		{"identity", float64(Cast[metre, int64](New[length, metre](int64(42))).Count()), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestScaleDispatch(t *testing.T) {
	tests := []struct {
		name string
		cr   mathx.Ratio
		in   int64
		want int64
	}{
		{"one", mathx.RatioOne, 7, 7},
		{"divide only", mathx.MustNewRatio(1, 1000), 4500, 4},
		{"multiply only", mathx.RatioOf(60), 3, 180},
		{"general", mathx.MustNewRatio(5, 18), 36, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scale[int64, int64](tt.in, tt.cr); got != tt.want {
				t.Errorf("scale(%d, %s) = %d, want %d", tt.in, tt.cr, got, tt.want)
			}
		})
	}

	// a ratio of one leaves the value untouched
	if got := scale[float64, float64](0.1, mathx.MustNewRatio(1, 1)); got != 0.1 {
		t.Errorf("unit ratio changed the value: %v", got)
	}
	if got := scale[float32, int8](float32(3.9), mathx.RatioOne); got != 3 {
		t.Errorf("float32 -> int8 = %d", got)
	}
}

// File: ratio_test.go
// Title: Unit Tests for Ratio Arithmetic
// Description: Tests for ratio normalisation, arithmetic, the common ratio
//              and overflow behaviour.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package mathx

import (
	"math"
	"testing"

	mdwerror "github.com/msto63/unitx/foundation/core/error"
)

func TestNewRatio(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		wantNum  int64
		wantDen  int64
		wantCode mdwerror.Code
	}{
		{"already reduced", 3, 2, 3, 2, ""},
		{"reduces", 1000, 3600, 5, 18, ""},
		{"negative denominator", 1, -2, -1, 2, ""},
		{"both negative", -4, -6, 2, 3, ""},
		{"zero numerator", 0, 7, 0, 1, ""},
		{"zero denominator", 1, 0, 0, 0, mdwerror.CodeDivisionByZero},
		{"min int64", math.MinInt64, 1, 0, 0, mdwerror.CodeOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRatio(tt.num, tt.den)
			if tt.wantCode != "" {
				if !mdwerror.HasCode(err, tt.wantCode) {
					t.Fatalf("NewRatio(%d, %d) error = %v, want code %s", tt.num, tt.den, err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRatio(%d, %d) unexpected error: %v", tt.num, tt.den, err)
			}
			if r.Num() != tt.wantNum || r.Den() != tt.wantDen {
				t.Errorf("NewRatio(%d, %d) = %s, want %d/%d", tt.num, tt.den, r, tt.wantNum, tt.wantDen)
			}
		})
	}
}

func TestZeroValueRatio(t *testing.T) {
	var r Ratio
	if r.Den() != 1 || r.Num() != 0 {
		t.Errorf("zero value = %d/%d, want 0/1", r.Num(), r.Den())
	}
	if !r.Equal(MustNewRatio(0, 5)) {
		t.Error("zero value should equal 0/5")
	}
	if got := r.Mul(RatioOf(7)); !got.Equal(Ratio{}) {
		t.Errorf("0 * 7 = %s", got)
	}
}

func TestRatioArithmetic(t *testing.T) {
	km := RatioOf(1000)
	hour := RatioOf(3600)
	mm := MustNewRatio(1, 1000)

	tests := []struct {
		name string
		got  Ratio
		want Ratio
	}{
		{"km/h", km.Div(hour), MustNewRatio(5, 18)},
		{"km/h * h", km.Div(hour).Mul(hour), km},
		{"km / km/h", km.Div(km.Div(hour)), hour},
		{"mm * km", mm.Mul(km), RatioOne},
		{"inverse", mm.Inverse(), km},
		{"negative inverse", MustNewRatio(-3, 4).Inverse(), MustNewRatio(-4, 3)},
		{"square", km.Pow(2), RatioOf(1000000)},
		{"negative power", km.Pow(-1), mm},
		{"zero power", km.Pow(0), RatioOne},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestCommonRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b Ratio
		want Ratio
	}{
		{"metre and kilometre", RatioOne, RatioOf(1000), RatioOne},
		{"kilometre and millimetre", RatioOf(1000), MustNewRatio(1, 1000), MustNewRatio(1, 1000)},
		{"second and hour", RatioOne, RatioOf(3600), RatioOne},
		{"minute and hour", RatioOf(60), RatioOf(3600), RatioOf(60)},
		{"thirds and halves", MustNewRatio(1, 3), MustNewRatio(1, 2), MustNewRatio(1, 6)},
		{"same", MustNewRatio(5, 18), MustNewRatio(5, 18), MustNewRatio(5, 18)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommonRatio(tt.a, tt.b)
			if !got.Equal(tt.want) {
				t.Errorf("CommonRatio(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
			if !tt.a.Div(got).IsInteger() || !tt.b.Div(got).IsInteger() {
				t.Errorf("common ratio %s must divide %s and %s evenly", got, tt.a, tt.b)
			}
			if !CommonRatio(tt.b, tt.a).Equal(got) {
				t.Error("CommonRatio should be symmetric")
			}
		})
	}
}

func TestRatioPredicates(t *testing.T) {
	if !RatioOne.IsOne() || RatioOf(2).IsOne() {
		t.Error("IsOne")
	}
	if !RatioOf(3).IsInteger() || MustNewRatio(1, 3).IsInteger() {
		t.Error("IsInteger")
	}
	if MustNewRatio(-1, 2).Sign() != -1 || RatioOf(0).Sign() != 0 || RatioOne.Sign() != 1 {
		t.Error("Sign")
	}
	if MustNewRatio(-1, 2).IsPositive() || !RatioOne.IsPositive() {
		t.Error("IsPositive")
	}
	if Compare(MustNewRatio(1, 3), MustNewRatio(1, 2)) != -1 || Compare(RatioOf(2), MustNewRatio(4, 2)) != 0 {
		t.Error("Compare")
	}
	if got := MustNewRatio(5, 18).Float64(); math.Abs(got-0.2777777777777778) > 1e-15 {
		t.Errorf("Float64() = %v", got)
	}
	if RatioOf(1000).String() != "1000" || MustNewRatio(5, 18).String() != "5/18" {
		t.Error("String")
	}
}

func TestRatioPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		code mdwerror.Code
	}{
		{"inverse of zero", func() { RatioOf(0).Inverse() }, mdwerror.CodeDivisionByZero},
		{"division by zero", func() { RatioOne.Div(RatioOf(0)) }, mdwerror.CodeDivisionByZero},
		{"overflow", func() { RatioOf(math.MaxInt64).Mul(RatioOf(2)) }, mdwerror.CodeOverflow},
		{"must zero den", func() { MustNewRatio(1, 0) }, mdwerror.CodeDivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("expected a panic with an error, got %v", r)
				}
				if !mdwerror.HasCode(err, tt.code) {
					t.Errorf("panic error = %v, want code %s", err, tt.code)
				}
			}()
			tt.fn()
		})
	}
}

func TestCheckedInt64(t *testing.T) {
	if _, ok := MulInt64(math.MaxInt64, 2); ok {
		t.Error("MaxInt64*2 should overflow")
	}
	if _, ok := MulInt64(-1, math.MinInt64); ok {
		t.Error("-1*MinInt64 should overflow")
	}
	if v, ok := MulInt64(-3, 7); !ok || v != -21 {
		t.Errorf("MulInt64(-3, 7) = %d, %v", v, ok)
	}
	if _, ok := AddInt64(math.MaxInt64, 1); ok {
		t.Error("MaxInt64+1 should overflow")
	}
	if v, ok := AddInt64(-5, 3); !ok || v != -2 {
		t.Errorf("AddInt64(-5, 3) = %d, %v", v, ok)
	}
	if GCD(0, 0) != 0 || GCD(-12, 18) != 6 || LCM(4, 6) != 12 || LCM(0, 5) != 0 {
		t.Error("GCD/LCM")
	}
}

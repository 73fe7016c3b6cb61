// File: benchmark_test.go
// Title: Performance Benchmarks for Quantities
// Description: Benchmarks for casts, mixed-unit addition and comparisons.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package quantity_test

import (
	"testing"

	"github.com/msto63/unitx/foundation/units/quantity"
	"github.com/msto63/unitx/foundation/units/si"
)

func BenchmarkCast(b *testing.B) {
	q := si.KilometresPerHour(90)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = quantity.Cast[si.MetrePerSecond, float64](q)
	}
}

func BenchmarkMixedAdd(b *testing.B) {
	km, m := si.Kilometres(2), si.Metres(300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = quantity.Add(km, m)
	}
}

func BenchmarkSameTypeAdd(b *testing.B) {
	x, y := si.Metres(2), si.Metres(300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Add(y)
	}
}

func BenchmarkEqual(b *testing.B) {
	km, m := si.Kilometres(1), si.Metres(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = quantity.Equal(m, km)
	}
}

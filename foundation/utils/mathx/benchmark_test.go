// File: benchmark_test.go
// Title: Performance Benchmarks for Ratio Arithmetic
// Description: Benchmarks for the ratio operations on the conversion path.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18

package mathx

import (
	"testing"
)

func BenchmarkRatioMul(b *testing.B) {
	r1 := MustNewRatio(1000, 3600)
	r2 := RatioOf(3600)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r1.Mul(r2)
	}
}

func BenchmarkCommonRatio(b *testing.B) {
	r1 := RatioOf(1000)
	r2 := MustNewRatio(1, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CommonRatio(r1, r2)
	}
}

// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the unitx foundation. Codes
//              classify every rejected conversion, construction and ratio
//              operation so callers can branch on them without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Replaced platform codes with units-of-measure codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"

	// Ratio arithmetic
	CodeDivisionByZero Code = "MATHX_DIVISION_BY_ZERO"
	CodeOverflow       Code = "MATHX_OVERFLOW"

	// Dimensions and units
	CodeDuplicateBase Code = "DIMENSION_DUPLICATE_BASE"
	CodeInvalidRatio  Code = "UNIT_INVALID_RATIO"
	CodeNotPrefixable Code = "UNIT_NOT_PREFIXABLE"
	CodeUnitMismatch  Code = "UNIT_DIMENSION_MISMATCH"

	// Quantities
	CodeDimensionMismatch Code = "QUANTITY_DIMENSION_MISMATCH"
	CodeNarrowing         Code = "QUANTITY_NARROWING"
	CodeLossyConversion   Code = "QUANTITY_LOSSY_CONVERSION"
	CodeFractionalScale   Code = "QUANTITY_FRACTIONAL_SCALE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeNotFound,
		CodeDivisionByZero, CodeOverflow,
		CodeDuplicateBase, CodeInvalidRatio, CodeNotPrefixable, CodeUnitMismatch,
		CodeDimensionMismatch, CodeNarrowing, CodeLossyConversion, CodeFractionalScale,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDivisionByZero, CodeOverflow:
		return "arithmetic"
	case CodeDuplicateBase, CodeInvalidRatio, CodeNotPrefixable, CodeUnitMismatch:
		return "definition"
	case CodeDimensionMismatch, CodeNarrowing, CodeLossyConversion, CodeFractionalScale:
		return "conversion"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

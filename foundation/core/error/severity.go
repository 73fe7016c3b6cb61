// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Definition errors (bad
//              ratios, duplicate bases) are programming mistakes and rank
//              higher than rejected conversions, which callers routinely
//              handle by falling back to an explicit cast.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-18 v0.2.0: Severity mapping for units-of-measure codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a rejected operation the caller can recover from,
	// e.g. an implicit conversion that would lose precision
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a broken definition or an arithmetic overflow
	SeverityHigh

	// SeverityCritical indicates an internal invariant violation
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeOverflow, CodeDivisionByZero, CodeDuplicateBase, CodeInvalidRatio,
		CodeNotPrefixable, CodeInvalidConfig, CodeConfigError:
		return SeverityHigh

	case CodeDimensionMismatch, CodeUnitMismatch, CodeNarrowing,
		CodeLossyConversion, CodeFractionalScale, CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}

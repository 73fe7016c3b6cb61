// File: standards.go
// Title: Error Standards for the unitx Foundation
// Description: Module identifiers, the ErrorBuilder and the constructors for
//              every error the units-of-measure packages can report.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-18 v0.2.0: Units-of-measure constructors replace the utils modules

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/unitx/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMathx     = "mathx"
	ModuleDimension = "dimension"
	ModuleUnit      = "unit"
	ModuleQuantity  = "quantity"
	ModuleConfig    = "config"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
		code:    mdwerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	message := eb.message
	if message == "" {
		message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, message)
	} else {
		err = mdwerror.New(message)
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}
	return err.WithCode(eb.code).WithOperation(eb.operation).WithDetails(eb.details)
}

// InvalidInput creates a standardized input validation error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeInvalidInput).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// MathxDivisionByZero reports a ratio with a zero denominator or an inverse of zero
func MathxDivisionByZero(operation string) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Code(mdwerror.CodeDivisionByZero).
		Messagef("division by zero in %s", operation).
		Build()
}

// MathxOverflow reports ratio arithmetic that does not fit in int64
func MathxOverflow(operation string, operands ...interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Code(mdwerror.CodeOverflow).
		Messagef("int64 overflow in %s", operation).
		Detail("operands", operands).
		Build()
}

// DimensionDuplicateBase reports a dimension listing the same base twice
func DimensionDuplicateBase(base interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleDimension).
		Operation("dimension.New").
		Code(mdwerror.CodeDuplicateBase).
		Messagef("base %v appears more than once", base).
		Detail("base", base).
		Build()
}

// UnitInvalidRatio reports a unit defined with a non-positive scale ratio
func UnitInvalidRatio(name string, ratio interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleUnit).
		Operation("unit.New").
		Code(mdwerror.CodeInvalidRatio).
		Messagef("unit %q: ratio %v must be strictly positive", name, ratio).
		Detail("unit", name).
		Detail("ratio", ratio).
		Build()
}

// UnitNotPrefixable reports a prefix applied to a unit that does not accept one
func UnitNotPrefixable(name, prefix string) *mdwerror.Error {
	return NewErrorBuilder(ModuleUnit).
		Operation("unit.WithPrefix").
		Code(mdwerror.CodeNotPrefixable).
		Messagef("unit %q does not accept the prefix %q", name, prefix).
		Detail("unit", name).
		Detail("prefix", prefix).
		Build()
}

// UnitDimensionMismatch reports two units that do not measure the same dimension
func UnitDimensionMismatch(operation string, a, b interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleUnit).
		Operation(operation).
		Code(mdwerror.CodeUnitMismatch).
		Messagef("units %v and %v measure different dimensions", a, b).
		Detail("lhs", a).
		Detail("rhs", b).
		Build()
}

// QuantityDimensionMismatch reports an operation between incompatible dimensions
func QuantityDimensionMismatch(operation string, want, got interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleQuantity).
		Operation(operation).
		Code(mdwerror.CodeDimensionMismatch).
		Messagef("dimension mismatch: want %v, got %v", want, got).
		Detail("want", want).
		Detail("got", got).
		Build()
}

// QuantityNarrowing reports a floating-point value stored in an integral representation
func QuantityNarrowing(operation string, from, to interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleQuantity).
		Operation(operation).
		Code(mdwerror.CodeNarrowing).
		Messagef("cannot store %v in %v without truncation", from, to).
		Detail("from", from).
		Detail("to", to).
		Build()
}

// QuantityLossyConversion reports an implicit unit conversion that would round
func QuantityLossyConversion(operation string, from, to, ratio interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleQuantity).
		Operation(operation).
		Code(mdwerror.CodeLossyConversion).
		Messagef("converting %v to %v (ratio %v) loses precision; use an explicit cast", from, to, ratio).
		Detail("from", from).
		Detail("to", to).
		Detail("ratio", ratio).
		Build()
}

// QuantityFractionalScale reports a product or quotient whose unit ratio is
// not integral while the representation is
func QuantityFractionalScale(operation string, ratio interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleQuantity).
		Operation(operation).
		Code(mdwerror.CodeFractionalScale).
		Messagef("resulting unit ratio %v is fractional for an integral representation", ratio).
		Detail("ratio", ratio).
		Build()
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	return detailString(err, "module")
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	return detailString(err, "operation")
}

func detailString(err error, key string) string {
	e, ok := err.(*mdwerror.Error)
	if !ok {
		return ""
	}
	if v, ok := e.Details()[key].(string); ok {
		return v
	}
	return ""
}

// Package errors provides the module-level error constructors of the unitx foundation.
//
// Package: errors
// Title: Standardized Error Constructors
// Description: Every foundation package reports rejected operations through
//              the constructors in this package so that module, operation and
//              the values involved are attached uniformly as error details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-18 v0.2.0: Constructors for ratio, dimension, unit and quantity errors
//
// Usage:
//
//	err := errors.QuantityLossyConversion("quantity.Convert", "km", "m")
//	if errors.IsModuleError(err, errors.ModuleQuantity) {
//		// ...
//	}
package errors

// Package error provides the structured error type used across the unitx foundation.
//
// Package: error
// Title: unitx Error Handling Framework
// Description: Errors carry a Code classifying the rejected operation, a
//              Severity, the failing operation name and details such as the
//              units or dimensions involved.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Units-of-measure codes
//
// Usage:
//
//	import mdwerror "github.com/msto63/unitx/foundation/core/error"
//
//	err := mdwerror.New("cannot convert km to m without loss").
//		WithCode(mdwerror.CodeLossyConversion).
//		WithOperation("quantity.Convert").
//		WithDetail("from", "km")
//
//	if mdwerror.HasCode(err, mdwerror.CodeLossyConversion) {
//		// fall back to an explicit cast
//	}
package error

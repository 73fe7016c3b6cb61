// Package log provides structured logging for the unitx command line tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with JSON, text and console
//              formats, named child loggers, persistent fields, timers and
//              integration with the foundation error codes. Library
//              packages never log; only the command line and the example
//              runners do.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Trimmed to synchronous logging for command line use
//
// Usage:
//
//	import mdwlog "github.com/msto63/unitx/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelInfo,
//		Format: mdwlog.FormatText,
//		Output: os.Stderr,
//		Name:   "unitx",
//	})
//
//	logger.Info("example finished", mdwlog.Fields{"example": "box"})
//
//	timer := logger.StartTimer("examples.capacitor")
//	// ... run the sweep
//	timer.Stop()
//
//	// Coded errors are logged with their code, severity and details
//	logger.LogError(err)
package log

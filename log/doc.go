// File: doc.go
// Title: Log Package Documentation
// Description: Documents the structured logging package used across the
//              paramdex library. Provides leveled, field-based logging to
//              an arbitrary writer with a process-wide default logger.
// Author: soulskit
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-14 v0.1.0: Initial logging implementation

/*
Package log provides structured, leveled logging for the paramdex library.

Loggers carry persistent context fields and write one line per entry to a
configurable io.Writer. The package keeps a process-wide default logger
(GetDefault/SetDefault) so library components log sensibly without any
setup, while embedders can hand their own configured logger to components
that accept one.

	logger := log.NewWithConfig(log.Config{
		Level:  log.LevelDebug,
		Output: os.Stderr,
		Name:   "paramdex",
	})
	logger.Info("paramdef loaded", log.Fields{"fields": 12})

Derivation methods (WithField, WithFields, WithName, WithLevel) return
clones, so a shared logger is never mutated behind a caller's back.
*/
package log

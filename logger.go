// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggstage

import (
	"log/slog"

	"github.com/gogpu/ggstage/backend"
	"github.com/gogpu/ggstage/internal/logging"
)

// logSlot stores the active logger.
var logSlot logging.Slot

// SetLogger configures the logger for ggstage and all its sub-packages.
// By default, ggstage produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by ggstage:
//   - [slog.LevelDebug]: per-resize and per-layer diagnostics
//   - [slog.LevelInfo]: lifecycle events (backend selected, loop started/stopped)
//   - [slog.LevelWarn]: non-fatal issues (paint errors in the loop, failed
//     fullscreen requests, unknown default layer)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	ggstage.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	ggstage.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logSlot.Store(l)
	backend.SetLogger(l)
}

// Logger returns the current logger used by ggstage.
// Host packages call this to share the same logger configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logSlot.Load()
}

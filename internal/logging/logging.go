// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package logging holds the silent-by-default logger slots shared by
// ggstage and its sub-packages.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nop = slog.New(nopHandler{})

// Nop returns a logger that silently discards all output.
func Nop() *slog.Logger { return nop }

// Slot stores a logger. The zero value is ready to use and yields the
// silent logger. Accessed atomically so that Store can be called
// concurrently with logging from any goroutine.
type Slot struct {
	p atomic.Pointer[slog.Logger]
}

// Store replaces the logger. nil restores silence.
func (s *Slot) Store(l *slog.Logger) {
	if l == nil {
		l = nop
	}
	s.p.Store(l)
}

// Load returns the current logger.
func (s *Slot) Load() *slog.Logger {
	if l := s.p.Load(); l != nil {
		return l
	}
	return nop
}

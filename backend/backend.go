// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/ggstage/internal/logging"
	"github.com/gogpu/ggstage/render"
	"github.com/gogpu/ggstage/scene"
	"github.com/gogpu/ggstage/surface"
)

// Backend name constants.
const (
	// BackendGPU is the name of the GPU presentation backend.
	BackendGPU = "gpu"
	// BackendSoftware is the name of the CPU backend.
	BackendSoftware = "software"
)

// Common backend errors.
var (
	// ErrRendererUnavailable is returned when neither the requested nor a
	// fallback backend could be constructed.
	ErrRendererUnavailable = errors.New("backend: renderer unavailable")

	// ErrClosed is returned when a closed renderer is used.
	ErrClosed = errors.New("backend: renderer closed")

	// ErrNilSurface is returned when Options carry no surface.
	ErrNilSurface = errors.New("backend: nil surface")
)

// NotFoundError indicates a named backend is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "backend: not found: " + e.Name
}

// Unwrap makes NotFoundError match ErrRendererUnavailable.
func (e *NotFoundError) Unwrap() error { return ErrRendererUnavailable }

// UnavailableError indicates a backend exists but is not available.
type UnavailableError struct {
	Name string
}

func (e *UnavailableError) Error() string {
	return "backend: unavailable: " + e.Name
}

// Unwrap makes UnavailableError match ErrRendererUnavailable.
func (e *UnavailableError) Unwrap() error { return ErrRendererUnavailable }

// Mode selects how Open picks a backend.
type Mode uint8

const (
	// ModeAuto picks the best available backend.
	ModeAuto Mode = iota
	// ModePrimary requires the highest-priority backend.
	ModePrimary
	// ModeFallback requires the lowest-priority backend.
	ModeFallback
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModePrimary:
		return "primary"
	case ModeFallback:
		return "fallback"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// ParseMode parses "auto", "primary" or "fallback". The backend names
// "gpu" and "software" are accepted as aliases for primary and fallback.
// The empty string is ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "primary", BackendGPU:
		return ModePrimary, nil
	case "fallback", BackendSoftware:
		return ModeFallback, nil
	default:
		return ModeAuto, fmt.Errorf("backend: unknown mode %q", s)
	}
}

// Options configures renderer construction.
type Options struct {
	// Surface is the element the renderer owns and presents to.
	Surface surface.Surface

	// Size is the logical size. The surface is resized to match.
	Size surface.Size

	// Settings is the paint configuration.
	Settings render.Settings
}

// Renderer owns a surface and paints scene graphs into it.
//
// Renderers are NOT thread-safe.
type Renderer interface {
	// Name returns the backend name.
	Name() string

	// Surface returns the owned surface.
	Surface() surface.Surface

	// Size returns the logical dimensions last set.
	Size() surface.Size

	// Settings returns the paint configuration.
	Settings() render.Settings

	// Resize changes renderer and surface dimensions.
	// Resizing to the current size is a no-op.
	Resize(width, height int) error

	// Render paints stage once and presents the frame.
	Render(stage *scene.Node) error

	// Frames returns the number of frames presented.
	Frames() uint64

	// Close releases the renderer and its surface. Close is idempotent.
	Close() error
}

var logSlot logging.Slot

// SetLogger configures the backend logger. nil disables logging.
// ggstage.SetLogger propagates here.
func SetLogger(l *slog.Logger) { logSlot.Store(l) }

// Logger returns the backend logger.
func Logger() *slog.Logger { return logSlot.Load() }

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"
)

// Errors returned by surfaces.
var (
	// ErrClosed is returned when a closed surface is used.
	ErrClosed = errors.New("surface: closed")

	// ErrInvalidSize is returned for non-positive dimensions.
	ErrInvalidSize = errors.New("surface: invalid size")
)

// Size is a width/height pair in logical pixels.
type Size struct {
	Width  int
	Height int
}

// Sz creates a Size.
func Sz(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// String implements fmt.Stringer.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Validate returns ErrInvalidSize wrapped with the offending dimensions.
func (s Size) Validate() error {
	if !s.Valid() {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, s.Width, s.Height)
	}
	return nil
}

// Surface is the drawable element a renderer presents frames to.
type Surface interface {
	// Size returns the current logical dimensions.
	Size() Size

	// Resize changes the logical dimensions.
	// Existing content may be discarded.
	Resize(width, height int) error

	// Present shows a finished frame. The frame has the surface's size;
	// implementations must not retain it after returning.
	Present(frame *image.RGBA) error

	// Close releases the surface. Close is idempotent.
	Close() error
}

// Positioner is implemented by surfaces placed inside a larger display,
// such as a canvas element absolutely positioned in a document.
type Positioner interface {
	SetPosition(x, y int)
	Position() image.Point
}

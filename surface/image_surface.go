// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/draw"
)

// ImageSurface is an in-memory surface.
//
// It keeps a copy of the last presented frame, which makes it the surface
// of choice for headless rendering and tests.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	// ... renderer presents frames ...
//	img := s.Snapshot()
type ImageSurface struct {
	img      *image.RGBA
	pos      image.Point
	presents int
	closed   bool
}

// NewImageSurface creates an in-memory surface with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Size returns the surface dimensions.
func (s *ImageSurface) Size() Size {
	b := s.img.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}
}

// Resize reallocates the backing image. Contents are not preserved.
func (s *ImageSurface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if err := Sz(width, height).Validate(); err != nil {
		return err
	}
	if s.Size() == Sz(width, height) {
		return nil
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Present copies frame into the surface.
func (s *ImageSurface) Present(frame *image.RGBA) error {
	if s.closed {
		return ErrClosed
	}
	draw.Draw(s.img, s.img.Bounds(), frame, frame.Bounds().Min, draw.Src)
	s.presents++
	return nil
}

// Presents returns how many frames have been presented.
func (s *ImageSurface) Presents() int {
	return s.presents
}

// Snapshot returns a copy of the last presented frame.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// SetPosition records where the surface sits on its display.
func (s *ImageSurface) SetPosition(x, y int) {
	s.pos = image.Pt(x, y)
}

// Position returns the recorded placement.
func (s *ImageSurface) Position() image.Point {
	return s.pos
}

// Close marks the surface closed. Close is idempotent.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (s *ImageSurface) Closed() bool {
	return s.closed
}

var (
	_ Surface    = (*ImageSurface)(nil)
	_ Positioner = (*ImageSurface)(nil)
)

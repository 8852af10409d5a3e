// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image/color"

// Settings configures how a renderer paints.
type Settings struct {
	// Antialias enables anti-aliased edges.
	Antialias bool

	// Transparent keeps the background alpha. When false the background
	// is forced opaque.
	Transparent bool

	// ImageSmoothing selects bilinear instead of nearest-neighbor scaling
	// for sprites drawn at a non-native size.
	ImageSmoothing bool

	// Resolution is the device pixel ratio. Only 1 is supported.
	Resolution float64

	// Background is the clear color.
	Background color.Color

	// AutoResize lets a renderer follow its surface size on its own.
	// ggstage always drives resizes explicitly.
	AutoResize bool
}

// DefaultSettings returns the fixed compositor configuration: no
// antialiasing, opaque, no image smoothing, resolution 1, black background,
// manual resize.
func DefaultSettings() Settings {
	return Settings{
		Antialias:      false,
		Transparent:    false,
		ImageSmoothing: false,
		Resolution:     1,
		Background:     color.Black,
		AutoResize:     false,
	}
}

// ClearColor returns the background as RGBA, forced opaque unless the
// settings allow transparency.
func (s Settings) ClearColor() color.RGBA {
	c := s.Background
	if c == nil {
		c = color.Black
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if !s.Transparent {
		rgba.A = 0xFF
	}
	return rgba
}

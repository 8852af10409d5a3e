// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggstage

import "github.com/gogpu/ggstage/surface"

// FrameScheduler runs callbacks once per display refresh.
type FrameScheduler interface {
	// RequestFrame schedules fn to run at the next frame. Each request
	// runs at most once.
	RequestFrame(fn func())
}

// Host is the platform a canvas lives in: a browser page, a terminal, or
// an offscreen test harness.
type Host interface {
	FrameScheduler

	// Viewport returns the current host viewport size.
	Viewport() surface.Size

	// NewSurface creates a drawable element at (x, y) with the given size.
	NewSurface(x, y int, size surface.Size) (surface.Surface, error)

	// Resizes delivers viewport size changes in the order they happen.
	// A nil channel means the viewport never changes.
	Resizes() <-chan surface.Size

	// FullscreenCapabilities lists the fullscreen mechanisms available
	// for s in preference order.
	FullscreenCapabilities(s surface.Surface) []FullscreenCapability
}

// FullscreenCapability is one way to enter and leave fullscreen.
// A nil Enter or Exit means that direction is not supported.
type FullscreenCapability struct {
	Name  string
	Enter func() error
	Exit  func() error
}

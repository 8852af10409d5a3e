// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"image"
	"testing"

	"github.com/gogpu/ggstage/surface"
)

func TestTickRunsOnlyQueuedCallbacks(t *testing.T) {
	h := New(surface.Sz(10, 10))

	var ran int
	var again func()
	again = func() {
		ran++
		h.RequestFrame(again)
	}
	h.RequestFrame(again)

	if n := h.Tick(); n != 1 {
		t.Fatalf("Tick() = %d, want 1", n)
	}
	if ran != 1 {
		t.Errorf("ran = %d, want 1", ran)
	}
	if h.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", h.Pending())
	}
	h.Tick()
	if ran != 2 {
		t.Errorf("ran = %d after second tick, want 2", ran)
	}
}

func TestResizeUpdatesViewportAndEmits(t *testing.T) {
	h := New(surface.Sz(800, 600))
	h.Resize(1024, 768)

	if got := h.Viewport(); got != surface.Sz(1024, 768) {
		t.Errorf("Viewport() = %v, want 1024x768", got)
	}
	select {
	case got := <-h.Resizes():
		if got != surface.Sz(1024, 768) {
			t.Errorf("event = %v, want 1024x768", got)
		}
	default:
		t.Fatal("no resize event emitted")
	}
}

func TestSetViewportDoesNotEmit(t *testing.T) {
	h := New(surface.Sz(800, 600))
	h.SetViewport(640, 480)
	select {
	case got := <-h.Resizes():
		t.Errorf("unexpected event %v", got)
	default:
	}
	if got := h.Viewport(); got != surface.Sz(640, 480) {
		t.Errorf("Viewport() = %v, want 640x480", got)
	}
}

func TestNewSurface(t *testing.T) {
	h := New(surface.Sz(800, 600))

	s, err := h.NewSurface(5, 7, surface.Sz(32, 16))
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if got := s.Size(); got != surface.Sz(32, 16) {
		t.Errorf("Size() = %v, want 32x16", got)
	}
	p, ok := s.(surface.Positioner)
	if !ok {
		t.Fatal("surface does not implement Positioner")
	}
	if got := p.Position(); got != image.Pt(5, 7) {
		t.Errorf("Position() = %v, want (5,7)", got)
	}
	if len(h.Surfaces()) != 1 {
		t.Errorf("Surfaces() len = %d, want 1", len(h.Surfaces()))
	}

	if _, err := h.NewSurface(0, 0, surface.Sz(0, 10)); err == nil {
		t.Error("NewSurface(0x10) should fail")
	}
}

func TestNoFullscreenByDefault(t *testing.T) {
	h := New(surface.Sz(1, 1))
	if caps := h.FullscreenCapabilities(nil); len(caps) != 0 {
		t.Errorf("FullscreenCapabilities() = %d entries, want 0", len(caps))
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless provides an offscreen ggstage.Host.
//
// Frames advance only when Tick is called and the viewport changes only
// when Resize is called, which makes canvases fully deterministic in tests
// and batch renders.
package headless

import (
	"sync"

	"github.com/gogpu/ggstage"
	"github.com/gogpu/ggstage/surface"
)

// DefaultResizeBuffer is the resize channel capacity used by New.
const DefaultResizeBuffer = 64

// Host is an offscreen host backed by image surfaces.
type Host struct {
	mu         sync.Mutex
	viewport   surface.Size
	pending    []func()
	surfaces   []*surface.ImageSurface
	fullscreen []ggstage.FullscreenCapability
	resizes    chan surface.Size
}

// Option configures a Host.
type Option func(*Host)

// WithResizeBuffer sets the resize channel capacity.
func WithResizeBuffer(n int) Option {
	return func(h *Host) {
		h.resizes = make(chan surface.Size, max(n, 0))
	}
}

// WithFullscreen sets the capabilities returned by FullscreenCapabilities.
func WithFullscreen(caps ...ggstage.FullscreenCapability) Option {
	return func(h *Host) {
		h.fullscreen = caps
	}
}

// New returns a host with the given viewport.
func New(viewport surface.Size, opts ...Option) *Host {
	h := &Host{
		viewport: viewport,
		resizes:  make(chan surface.Size, DefaultResizeBuffer),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Viewport returns the current viewport size.
func (h *Host) Viewport() surface.Size {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.viewport
}

// SetViewport changes the viewport without emitting a resize event.
func (h *Host) SetViewport(width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.viewport = surface.Sz(width, height)
}

// Resize changes the viewport and emits a resize event. It blocks while the
// resize channel is full.
func (h *Host) Resize(width, height int) {
	size := surface.Sz(width, height)
	h.mu.Lock()
	h.viewport = size
	h.mu.Unlock()
	h.resizes <- size
}

// Resizes returns the resize event channel.
func (h *Host) Resizes() <-chan surface.Size {
	return h.resizes
}

// NewSurface returns an image surface positioned at (x, y).
func (h *Host) NewSurface(x, y int, size surface.Size) (surface.Surface, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	s := surface.NewImageSurface(size.Width, size.Height)
	s.SetPosition(x, y)

	h.mu.Lock()
	h.surfaces = append(h.surfaces, s)
	h.mu.Unlock()
	return s, nil
}

// Surfaces returns every surface created so far, oldest first.
func (h *Host) Surfaces() []*surface.ImageSurface {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*surface.ImageSurface, len(h.surfaces))
	copy(out, h.surfaces)
	return out
}

// RequestFrame queues fn for the next Tick.
func (h *Host) RequestFrame(fn func()) {
	h.mu.Lock()
	h.pending = append(h.pending, fn)
	h.mu.Unlock()
}

// Pending returns the number of queued frame callbacks.
func (h *Host) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

// Tick runs the callbacks queued before the call and returns how many ran.
// Callbacks requested during the tick wait for the next one.
func (h *Host) Tick() int {
	h.mu.Lock()
	batch := h.pending
	h.pending = nil
	h.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// FullscreenCapabilities returns the capabilities set with WithFullscreen.
func (h *Host) FullscreenCapabilities(surface.Surface) []ggstage.FullscreenCapability {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fullscreen
}

var _ ggstage.Host = (*Host)(nil)

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package term runs a ggstage canvas in a terminal through tcell.
//
// Every terminal cell shows two vertically stacked pixels using the upper
// half block glyph: the foreground color is the top pixel and the
// background color the bottom one. A W x H cell terminal is therefore a
// W x 2H pixel viewport.
package term

import (
	"image"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/ggstage"
	"github.com/gogpu/ggstage/surface"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// Host is a terminal host.
type Host struct {
	screen   tcell.Screen
	interval time.Duration

	resizes chan surface.Size
	quit    chan struct{}

	quitOnce  sync.Once
	closeOnce sync.Once
	closed    chan struct{}
}

// Option configures a Host.
type Option func(*Host)

// WithFPS sets the frame rate. Non-positive values keep DefaultFPS.
func WithFPS(fps int) Option {
	return func(h *Host) {
		if fps > 0 {
			h.interval = time.Second / time.Duration(fps)
		}
	}
}

// Open creates and initializes a terminal screen and wraps it in a Host.
func Open(opts ...Option) (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return New(screen, opts...), nil
}

// New wraps an initialized screen and starts polling its events.
func New(screen tcell.Screen, opts ...Option) *Host {
	h := &Host{
		screen:   screen,
		interval: time.Second / DefaultFPS,
		resizes:  make(chan surface.Size, 64),
		quit:     make(chan struct{}),
		closed:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	go h.poll()
	return h
}

// poll forwards resizes and watches for the quit keys until the screen
// is finalized.
func (h *Host) poll() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			h.screen.Sync()
			select {
			case h.resizes <- h.Viewport():
			case <-h.closed:
				return
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEsc || ev.Key() == tcell.KeyCtrlC {
				h.requestQuit()
			}
		}
	}
}

func (h *Host) requestQuit() {
	h.quitOnce.Do(func() {
		ggstage.Logger().Info("term: quit requested")
		close(h.quit)
	})
}

// Done is closed when the user presses Esc or Ctrl-C.
func (h *Host) Done() <-chan struct{} {
	return h.quit
}

// Screen returns the underlying tcell screen.
func (h *Host) Screen() tcell.Screen {
	return h.screen
}

// Viewport returns the terminal size in pixels.
func (h *Host) Viewport() surface.Size {
	w, rows := h.screen.Size()
	return surface.Sz(w, rows*2)
}

// Resizes delivers terminal resizes in pixels.
func (h *Host) Resizes() <-chan surface.Size {
	return h.resizes
}

// RequestFrame runs fn after one frame interval. Requests made after
// Close are dropped.
func (h *Host) RequestFrame(fn func()) {
	time.AfterFunc(h.interval, func() {
		select {
		case <-h.closed:
		default:
			fn()
		}
	})
}

// NewSurface returns a surface drawing at pixel (x, y). y is rounded down
// to a whole cell.
func (h *Host) NewSurface(x, y int, size surface.Size) (surface.Surface, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	return &Surface{screen: h.screen, pos: image.Pt(x, y), size: size}, nil
}

// FullscreenCapabilities returns nil. A terminal canvas already owns the
// whole screen.
func (h *Host) FullscreenCapabilities(surface.Surface) []ggstage.FullscreenCapability {
	return nil
}

// Close restores the terminal. Close is idempotent.
func (h *Host) Close() error {
	h.closeOnce.Do(func() {
		close(h.closed)
		h.screen.Fini()
	})
	return nil
}

var _ ggstage.Host = (*Host)(nil)

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

// Package dom runs a ggstage canvas in a web page.
//
// Surfaces are <canvas> elements appended to the document body. Frames
// follow requestAnimationFrame and resizes come from the window "resize"
// event.
package dom

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"syscall/js"

	"github.com/gogpu/ggstage"
	"github.com/gogpu/ggstage/surface"
)

// Host is a browser host.
type Host struct {
	window   js.Value
	document js.Value

	onResize js.Func
	resizes  chan surface.Size

	mu      sync.Mutex
	queue   []surface.Size
	notify  chan struct{}
	closed  chan struct{}
	closeMu sync.Once
}

// New installs the window resize listener and returns a host.
func New() *Host {
	return newHost(js.Global(), js.Global().Get("document"))
}

func newHost(window, document js.Value) *Host {
	h := &Host{
		window:   window,
		document: document,
		resizes:  make(chan surface.Size),
		notify:   make(chan struct{}, 1),
		closed:   make(chan struct{}),
	}
	h.onResize = js.FuncOf(func(this js.Value, args []js.Value) any {
		h.enqueue(h.Viewport())
		return nil
	})
	h.window.Call("addEventListener", "resize", h.onResize)
	go h.forward()
	return h
}

// enqueue records a resize without blocking the JavaScript event loop.
func (h *Host) enqueue(size surface.Size) {
	h.mu.Lock()
	h.queue = append(h.queue, size)
	h.mu.Unlock()
	select {
	case h.notify <- struct{}{}:
	default:
	}
}

// forward delivers queued resizes in arrival order.
func (h *Host) forward() {
	for {
		h.mu.Lock()
		batch := h.queue
		h.queue = nil
		h.mu.Unlock()

		for _, size := range batch {
			select {
			case h.resizes <- size:
			case <-h.closed:
				return
			}
		}

		select {
		case <-h.notify:
		case <-h.closed:
			return
		}
	}
}

// Viewport returns the window inner size in CSS pixels.
func (h *Host) Viewport() surface.Size {
	return surface.Sz(h.window.Get("innerWidth").Int(), h.window.Get("innerHeight").Int())
}

// Resizes delivers window resizes in arrival order.
func (h *Host) Resizes() <-chan surface.Size {
	return h.resizes
}

// RequestFrame runs fn on the next animation frame.
func (h *Host) RequestFrame(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		// Frame work may block and must stay off the event loop.
		go fn()
		return nil
	})
	h.window.Call("requestAnimationFrame", cb)
}

// NewSurface creates a <canvas> element at (x, y) and appends it to the
// document body. The element is removed again when setup fails.
func (h *Host) NewSurface(x, y int, size surface.Size) (surface.Surface, error) {
	body := h.document.Get("body")
	if !body.Truthy() {
		return nil, errors.New("dom: document has no body")
	}
	el := h.document.Call("createElement", "canvas")
	style := el.Get("style")
	style.Set("position", "absolute")
	style.Set("display", "block")
	body.Call("appendChild", el)

	ctx := el.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		el.Call("remove")
		return nil, fmt.Errorf("dom: 2d context unavailable")
	}
	s := &Surface{element: el, ctx: ctx}
	s.SetPosition(x, y)
	if err := s.Resize(size.Width, size.Height); err != nil {
		el.Call("remove")
		return nil, err
	}
	return s, nil
}

// Close removes the resize listener. Close is idempotent.
func (h *Host) Close() error {
	h.closeMu.Do(func() {
		close(h.closed)
		h.window.Call("removeEventListener", "resize", h.onResize)
		h.onResize.Release()
	})
	return nil
}

// Surface is a <canvas> element.
type Surface struct {
	mu      sync.Mutex
	element js.Value
	ctx     js.Value
	size    surface.Size
	pos     image.Point
	buf     js.Value
	closed  bool
}

// Element returns the <canvas> element.
func (s *Surface) Element() js.Value {
	return s.element
}

// Size returns the canvas size in pixels.
func (s *Surface) Size() surface.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Resize sets the canvas width and height attributes.
func (s *Surface) Resize(width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return surface.ErrClosed
	}
	next := surface.Sz(width, height)
	if err := next.Validate(); err != nil {
		return err
	}
	if next == s.size {
		return nil
	}
	s.size = next
	s.element.Set("width", width)
	s.element.Set("height", height)
	s.buf = js.Global().Get("Uint8ClampedArray").New(width * height * 4)
	return nil
}

// Present copies frame into the canvas.
func (s *Surface) Present(frame *image.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return surface.ErrClosed
	}
	w, h := frame.Bounds().Dx(), frame.Bounds().Dy()
	if w != s.size.Width || h != s.size.Height {
		return fmt.Errorf("dom: frame %dx%d does not match canvas %s", w, h, s.size)
	}
	js.CopyBytesToJS(s.buf, frame.Pix[:w*h*4])
	data := js.Global().Get("ImageData").New(s.buf, w, h)
	s.ctx.Call("putImageData", data, 0, 0)
	return nil
}

// SetPosition moves the element to (x, y) CSS pixels.
func (s *Surface) SetPosition(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = image.Pt(x, y)
	style := s.element.Get("style")
	style.Set("left", fmt.Sprintf("%dpx", x))
	style.Set("top", fmt.Sprintf("%dpx", y))
}

// Position returns the element position.
func (s *Surface) Position() image.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// Close removes the element from the document. Close is idempotent.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.element.Call("remove")
	return nil
}

var (
	_ ggstage.Host       = (*Host)(nil)
	_ surface.Surface    = (*Surface)(nil)
	_ surface.Positioner = (*Surface)(nil)
)

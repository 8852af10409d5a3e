// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package dom

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/gogpu/ggstage"
	"github.com/gogpu/ggstage/surface"
)

// vendor pairs an element enter method with its document exit method.
type vendor struct {
	name  string
	enter string
	exit  string
}

var vendors = []vendor{
	{"standard", "requestFullscreen", "exitFullscreen"},
	{"webkit", "webkitRequestFullscreen", "webkitExitFullscreen"},
	{"moz", "mozRequestFullScreen", "mozCancelFullScreen"},
	{"ms", "msRequestFullscreen", "msExitFullscreen"},
}

// FullscreenCapabilities probes the vendor fullscreen APIs on the surface
// element and the document, in preference order.
func (h *Host) FullscreenCapabilities(s surface.Surface) []ggstage.FullscreenCapability {
	var el js.Value
	if ds, ok := s.(*Surface); ok {
		el = ds.Element()
	}

	var caps []ggstage.FullscreenCapability
	for _, v := range vendors {
		c := ggstage.FullscreenCapability{Name: v.name}
		if el.Truthy() && isFunc(el.Get(v.enter)) {
			c.Enter = invoker(el, v.enter)
		}
		if isFunc(h.document.Get(v.exit)) {
			c.Exit = invoker(h.document, v.exit)
		}
		if c.Enter != nil || c.Exit != nil {
			caps = append(caps, c)
		}
	}
	return caps
}

func isFunc(v js.Value) bool {
	return v.Type() == js.TypeFunction
}

// invoker calls method on target, converting JavaScript exceptions to
// errors. The returned promise is not awaited.
func invoker(target js.Value, method string) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				if jsErr, ok := r.(js.Error); ok {
					err = fmt.Errorf("dom: %s: %w", method, jsErr)
					return
				}
				err = fmt.Errorf("dom: %s: %v", method, r)
			}
		}()
		target.Call(method)
		return nil
	}
}

// Fullscreener is implemented by *ggstage.Canvas.
type Fullscreener interface {
	Fullscreen(enable bool) error
}

// AddFullscreenButton appends a button to the document body that takes c
// fullscreen when clicked. Browsers only honour fullscreen requests made
// from a user gesture, so this is usually the only way to enter it.
// The returned release function removes the button.
func (h *Host) AddFullscreenButton(c Fullscreener, label string) (release func(), err error) {
	body := h.document.Get("body")
	if !body.Truthy() {
		return nil, errors.New("dom: document has no body")
	}
	btn := h.document.Call("createElement", "button")
	btn.Set("textContent", label)
	style := btn.Get("style")
	style.Set("position", "absolute")
	style.Set("right", "8px")
	style.Set("bottom", "8px")
	style.Set("zIndex", "10")

	onClick := js.FuncOf(func(this js.Value, args []js.Value) any {
		// Must stay synchronous to keep the user gesture.
		if err := c.Fullscreen(true); err != nil {
			ggstage.Logger().Warn("dom: fullscreen button", "err", err)
		}
		return nil
	})
	btn.Call("addEventListener", "click", onClick)
	body.Call("appendChild", btn)

	return func() {
		btn.Call("removeEventListener", "click", onClick)
		btn.Call("remove")
		onClick.Release()
	}, nil
}

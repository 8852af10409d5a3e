// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggstage

import (
	"context"
	"sync"

	"github.com/gogpu/ggstage/scene"
)

// Registry remembers one canvas and the name of one of its layers.
// The last Set wins. The zero value is empty and ready to use.
type Registry struct {
	mu     sync.RWMutex
	canvas *Canvas
	layer  string
}

// Defaults is the process-wide registry canvases join when built with
// WithDefault(true).
var Defaults = &Registry{}

// Set records c and its layer, replacing any earlier entry.
func (r *Registry) Set(c *Canvas, layer string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.canvas = c
	r.layer = layer
}

// Canvas returns the registered canvas, or nil.
func (r *Registry) Canvas() *Canvas {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.canvas
}

// LayerName returns the registered layer name.
func (r *Registry) LayerName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.layer
}

// Layer returns the registered layer node, or nil.
func (r *Registry) Layer() *scene.Node {
	r.mu.RLock()
	c, name := r.canvas, r.layer
	r.mu.RUnlock()
	if c == nil {
		return nil
	}
	node, _ := c.Layer(name)
	return node
}

// Reset empties the registry.
func (r *Registry) Reset() {
	r.Set(nil, "")
}

// clear empties the registry only if it still holds c.
func (r *Registry) clear(c *Canvas) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.canvas == c {
		r.canvas = nil
		r.layer = ""
	}
}

// DefaultCanvas returns the canvas registered in Defaults, or nil.
func DefaultCanvas() *Canvas {
	return Defaults.Canvas()
}

// DefaultLayer returns the layer registered in Defaults, or nil.
func DefaultLayer() *scene.Node {
	return Defaults.Layer()
}

type contextKey struct{}

// Current is a canvas and layer carried in a context.
type Current struct {
	Canvas *Canvas
	Layer  string
}

// NewContext returns a copy of ctx carrying c and its layer.
func NewContext(ctx context.Context, c *Canvas, layer string) context.Context {
	return context.WithValue(ctx, contextKey{}, Current{Canvas: c, Layer: layer})
}

// FromContext returns the canvas and layer stored by NewContext.
func FromContext(ctx context.Context) (Current, bool) {
	cur, ok := ctx.Value(contextKey{}).(Current)
	return cur, ok && cur.Canvas != nil
}

// CurrentCanvas returns the canvas in ctx, falling back to Defaults.
func CurrentCanvas(ctx context.Context) *Canvas {
	if cur, ok := FromContext(ctx); ok {
		return cur.Canvas
	}
	return Defaults.Canvas()
}

// CurrentLayer returns the layer in ctx, falling back to Defaults.
func CurrentLayer(ctx context.Context) *scene.Node {
	if cur, ok := FromContext(ctx); ok {
		name := cur.Layer
		if name == "" {
			name = cur.Canvas.DefaultLayerName()
		}
		node, _ := cur.Canvas.Layer(name)
		return node
	}
	return Defaults.Layer()
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggstage

import (
	"image/color"
	"maps"
	"slices"

	"github.com/gogpu/ggstage/backend"
	"github.com/gogpu/ggstage/surface"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultLayers is the layer stack used when none is configured, bottom
// to top.
var DefaultLayers = []string{"backdrop", "below", "world", "above", "ui", "effect"}

// Default surface dimensions when expand is off and none are given.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Config holds everything New needs to build a Canvas.
type Config struct {
	// Expand sizes the surface to the host viewport at (0, 0) and follows
	// viewport resizes.
	Expand bool

	// X and Y place the surface. Ignored when Expand is set.
	X, Y int

	// Width and Height are the surface size. Ignored when Expand is set.
	Width, Height int

	// Backend selects the renderer backend.
	Backend backend.Mode

	// Background is the clear color. nil means black.
	Background color.Color

	// Surface is a caller-supplied surface. When nil the host creates one.
	Surface surface.Surface

	// Layers is the ordered layer stack, bottom first. Duplicate names
	// after the first are ignored. Empty means DefaultLayers.
	Layers []string

	// Origins maps layer names to anchors. Missing layers use AnchorCenter.
	Origins map[string]Anchor

	// Translate maps layer names to anchor offsets. Missing layers use (0, 0).
	Translate map[string]r2.Vec

	// Default registers the canvas and its default layer in Registry.
	Default bool

	// DefaultLayer names the registered layer. Empty means the topmost layer.
	DefaultLayer string

	// Registry receives the canvas when Default is set. nil means Defaults.
	Registry *Registry

	// Backends resolves Backend. nil means backend.Default().
	Backends *backend.Registry
}

// DefaultConfig returns the configuration used by New before options apply.
func DefaultConfig() Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Backend: backend.ModeAuto,
		Default: true,
	}
}

// layerNames returns the configured stack with duplicates removed.
func (c Config) layerNames() []string {
	src := c.Layers
	if len(src) == 0 {
		src = DefaultLayers
	}
	names := make([]string, 0, len(src))
	seen := make(map[string]struct{}, len(src))
	for _, name := range src {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Option configures a Canvas.
type Option func(*Config)

// WithExpand makes the canvas fill the host viewport and follow its resizes.
func WithExpand() Option {
	return func(c *Config) {
		c.Expand = true
	}
}

// WithPosition places the surface at (x, y).
func WithPosition(x, y int) Option {
	return func(c *Config) {
		c.X, c.Y = x, y
	}
}

// WithSize sets the surface size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width, c.Height = width, height
	}
}

// WithBackend selects the renderer backend.
func WithBackend(m backend.Mode) Option {
	return func(c *Config) {
		c.Backend = m
	}
}

// WithBackground sets the clear color.
func WithBackground(bg color.Color) Option {
	return func(c *Config) {
		c.Background = bg
	}
}

// WithSurface supplies an existing surface instead of asking the host.
func WithSurface(s surface.Surface) Option {
	return func(c *Config) {
		c.Surface = s
	}
}

// WithLayers replaces the layer stack, bottom first.
func WithLayers(names ...string) Option {
	return func(c *Config) {
		c.Layers = slices.Clone(names)
	}
}

// WithOrigin anchors a layer.
func WithOrigin(layer string, a Anchor) Option {
	return func(c *Config) {
		if c.Origins == nil {
			c.Origins = make(map[string]Anchor)
		}
		c.Origins[layer] = a
	}
}

// WithOrigins merges a set of layer anchors.
func WithOrigins(origins map[string]Anchor) Option {
	return func(c *Config) {
		if c.Origins == nil {
			c.Origins = make(map[string]Anchor, len(origins))
		}
		maps.Copy(c.Origins, origins)
	}
}

// WithTranslate offsets a layer from its anchor.
func WithTranslate(layer string, dx, dy float64) Option {
	return func(c *Config) {
		if c.Translate == nil {
			c.Translate = make(map[string]r2.Vec)
		}
		c.Translate[layer] = r2.Vec{X: dx, Y: dy}
	}
}

// WithDefault controls registration in the default registry.
func WithDefault(enabled bool) Option {
	return func(c *Config) {
		c.Default = enabled
	}
}

// WithDefaultLayer names the layer registered as the default layer.
func WithDefaultLayer(name string) Option {
	return func(c *Config) {
		c.DefaultLayer = name
	}
}

// WithRegistry registers the canvas in r instead of Defaults.
func WithRegistry(r *Registry) Option {
	return func(c *Config) {
		c.Registry = r
	}
}

// WithBackends resolves the backend from r instead of backend.Default().
func WithBackends(r *backend.Registry) Option {
	return func(c *Config) {
		c.Backends = r
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggstage

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/ggstage/backend"
	"github.com/gogpu/ggstage/scene"
	"github.com/gogpu/ggstage/surface"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"
)

// Canvas is a renderer, its surface and an ordered stack of anchored
// layers under one stage node.
//
// Canvas methods are safe for concurrent use. Resizes and paints are
// serialized, so a paint never observes a half-applied resize. The scene
// graph under each layer is not locked; callers that mutate it from other
// goroutines must coordinate with the render loop themselves.
type Canvas struct {
	host         Host
	expand       bool
	registry     *Registry
	defaultLayer string
	isDefault    bool
	fullscreen   *FullscreenController
	loop         *Loop
	reactor      *Reactor

	mu       sync.Mutex
	renderer backend.Renderer
	layers   *layerStack
	started  bool
	closed   bool
	cancel   context.CancelFunc
}

// New builds a canvas on h. Options apply over DefaultConfig.
//
// New creates the surface and renderer, builds and positions the layers,
// registers the canvas when WithDefault is on, and paints once. Nothing
// animates after that: frames are painted only once Run or Loop().Start is
// called.
func New(h Host, opts ...Option) (*Canvas, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewFromConfig(h, cfg)
}

// NewFromConfig builds a canvas on h from cfg.
func NewFromConfig(h Host, cfg Config) (*Canvas, error) {
	if h == nil {
		return nil, ErrNilHost
	}

	r, err := openRenderer(h, cfg)
	if err != nil {
		return nil, err
	}

	c := &Canvas{
		host:     h,
		expand:   cfg.Expand,
		renderer: r,
		layers:   buildLayers(cfg),
	}
	c.fullscreen = NewFullscreenController(func() []FullscreenCapability {
		return h.FullscreenCapabilities(r.Surface())
	})
	c.loop = NewLoop(h, c.Render)
	if cfg.Expand {
		c.reactor = NewReactor(h.Resizes(), c.applyResize)
	}

	c.layers.attach()
	c.Relayout()

	top := c.layers.names[len(c.layers.names)-1]
	c.defaultLayer = cfg.DefaultLayer
	if c.defaultLayer == "" {
		c.defaultLayer = top
	} else if _, ok := c.layers.nodes[c.defaultLayer]; !ok {
		Logger().Warn("ggstage: default layer not in stack, using top layer",
			"layer", c.defaultLayer, "top", top)
		c.defaultLayer = top
	}
	if cfg.Default {
		c.registry = cfg.Registry
		if c.registry == nil {
			c.registry = Defaults
		}
		c.registry.Set(c, c.defaultLayer)
		c.isDefault = true
	}

	if err := c.Render(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ggstage: first paint: %w", err)
	}
	return c, nil
}

// Render paints the stage once.
func (c *Canvas) Render() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return c.renderer.Render(c.layers.stage)
}

// Resize resizes the renderer and repositions every layer. It does not
// paint.
func (c *Canvas) Resize(width, height int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resizeLocked(width, height)
}

func (c *Canvas) resizeLocked(width, height int) error {
	if c.closed {
		return ErrClosed
	}
	if err := surface.Sz(width, height).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDimensions, err)
	}
	if err := c.renderer.Resize(width, height); err != nil {
		return err
	}
	c.layers.layout(float64(width), float64(height))
	Logger().Debug("ggstage: resized", "width", width, "height", height)
	return nil
}

// applyResize resizes, repositions and paints exactly once, all under
// one lock acquisition.
func (c *Canvas) applyResize(size surface.Size) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.resizeLocked(size.Width, size.Height); err != nil {
		return err
	}
	return c.renderer.Render(c.layers.stage)
}

// HandleResize applies one viewport resize the way the resize reactor does:
// resize, reposition every layer, then paint once.
func (c *Canvas) HandleResize(width, height int) error {
	return c.applyResize(surface.Sz(width, height))
}

// Expand resizes the canvas to the current host viewport.
func (c *Canvas) Expand() error {
	v := c.host.Viewport()
	return c.Resize(v.Width, v.Height)
}

// Fullscreen enters or leaves fullscreen using the first mechanism the host
// offers. It does nothing when the host offers none.
func (c *Canvas) Fullscreen(enable bool) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}
	return c.fullscreen.Toggle(enable)
}

// FullscreenSupported reports whether the host can take this canvas
// fullscreen.
func (c *Canvas) FullscreenSupported() bool {
	return c.fullscreen.Supported()
}

// Relayout repositions every layer against the current renderer size.
func (c *Canvas) Relayout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	size := c.renderer.Size()
	c.layers.layout(float64(size.Width), float64(size.Height))
}

// Layer returns the node for a layer name.
func (c *Canvas) Layer(name string) (*scene.Node, bool) {
	node, ok := c.layers.nodes[name]
	return node, ok
}

// Layers returns the layer names, bottom first.
func (c *Canvas) Layers() []string {
	return slices.Clone(c.layers.names)
}

// Origin returns the anchor of a layer.
func (c *Canvas) Origin(name string) Anchor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layers.origins[name]
}

// Translate returns the anchor offset of a layer.
func (c *Canvas) Translate(name string) r2.Vec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layers.translate[name]
}

// SetOrigin re-anchors a layer and repositions it.
func (c *Canvas) SetOrigin(name string, a Anchor) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.layers.nodes[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}
	c.layers.origins[name] = a
	c.placeLocked(name)
	return nil
}

// SetTranslate changes a layer's anchor offset and repositions it.
func (c *Canvas) SetTranslate(name string, dx, dy float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.layers.nodes[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}
	c.layers.translate[name] = r2.Vec{X: dx, Y: dy}
	c.placeLocked(name)
	return nil
}

func (c *Canvas) placeLocked(name string) {
	size := c.renderer.Size()
	c.layers.place(name, float64(size.Width), float64(size.Height))
}

// Size returns the logical surface size.
func (c *Canvas) Size() surface.Size {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderer.Size()
}

// Renderer returns the renderer. It stays owned by the canvas.
func (c *Canvas) Renderer() backend.Renderer {
	return c.renderer
}

// Stage returns the root node.
func (c *Canvas) Stage() *scene.Node {
	return c.layers.stage
}

// DefaultLayerName returns the layer registered with the canvas.
func (c *Canvas) DefaultLayerName() string {
	return c.defaultLayer
}

// IsDefault reports whether the canvas was registered at construction.
func (c *Canvas) IsDefault() bool {
	return c.isDefault
}

// Loop returns the render loop.
func (c *Canvas) Loop() *Loop {
	return c.loop
}

// Run starts the render loop and, in expand mode, the resize reactor, then
// blocks until Stop is called or ctx is done. A canvas runs at most once,
// and Run after Stop returns ErrLoopStarted.
// Run returns ctx.Err() when ctx ended the run and nil after Stop.
func (c *Canvas) Run(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.started {
		c.mu.Unlock()
		return ErrLoopStarted
	}
	c.started = true
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		defer cancel()
		return c.loop.Run(gctx)
	})
	if c.reactor != nil {
		g.Go(func() error {
			return c.reactor.Run(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Stop ends the render loop and the resize reactor. Stop is idempotent.
func (c *Canvas) Stop() {
	c.loop.Stop()
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Close stops the canvas, releases the renderer and its surface, and
// removes the canvas from its registry if it is still registered there.
// Close is idempotent.
func (c *Canvas) Close() error {
	c.Stop()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	if c.registry != nil {
		c.registry.clear(c)
	}
	return c.renderer.Close()
}

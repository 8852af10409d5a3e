// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"image"

	"github.com/gogpu/ggstage/render"
	"github.com/gogpu/ggstage/scene"
	"github.com/gogpu/ggstage/surface"
)

// compositor paints a scene into a CPU pixmap sized to the renderer.
type compositor struct {
	surface  surface.Surface
	settings render.Settings
	target   *render.PixmapTarget
	painter  *render.SoftwareRenderer
	size     surface.Size
	frames   uint64
	closed   bool
}

func newCompositor(opts Options) (compositor, error) {
	if opts.Surface == nil {
		return compositor{}, ErrNilSurface
	}
	if err := opts.Size.Validate(); err != nil {
		return compositor{}, err
	}
	if err := opts.Surface.Resize(opts.Size.Width, opts.Size.Height); err != nil {
		return compositor{}, err
	}
	return compositor{
		surface:  opts.Surface,
		settings: opts.Settings,
		target:   render.NewPixmapTarget(opts.Size.Width, opts.Size.Height),
		painter:  render.NewSoftwareRenderer(opts.Settings),
		size:     opts.Size,
	}, nil
}

func (c *compositor) Surface() surface.Surface  { return c.surface }
func (c *compositor) Size() surface.Size        { return c.size }
func (c *compositor) Settings() render.Settings { return c.settings }
func (c *compositor) Frames() uint64            { return c.frames }

// resize reports whether the dimensions changed.
func (c *compositor) resize(width, height int) (bool, error) {
	if c.closed {
		return false, ErrClosed
	}
	next := surface.Sz(width, height)
	if err := next.Validate(); err != nil {
		return false, err
	}
	if next == c.size {
		return false, nil
	}
	if err := c.surface.Resize(width, height); err != nil {
		return false, err
	}
	c.target.Resize(width, height)
	c.size = next
	return true, nil
}

func (c *compositor) compose(stage *scene.Node) error {
	if c.closed {
		return ErrClosed
	}
	return c.painter.Render(c.target, stage)
}

func (c *compositor) close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.surface.Close()
}

// SoftwareRenderer presents CPU-composed frames to its surface.
type SoftwareRenderer struct {
	compositor
}

func newSoftwareRenderer(opts Options) (Renderer, error) {
	return NewSoftwareRenderer(opts)
}

// NewSoftwareRenderer creates a CPU renderer that owns opts.Surface.
func NewSoftwareRenderer(opts Options) (*SoftwareRenderer, error) {
	c, err := newCompositor(opts)
	if err != nil {
		return nil, err
	}
	return &SoftwareRenderer{compositor: c}, nil
}

// Name returns the backend identifier.
func (r *SoftwareRenderer) Name() string {
	return BackendSoftware
}

// Resize changes the pixmap and surface dimensions.
func (r *SoftwareRenderer) Resize(width, height int) error {
	_, err := r.resize(width, height)
	return err
}

// Render paints stage and presents the frame.
func (r *SoftwareRenderer) Render(stage *scene.Node) error {
	if err := r.compose(stage); err != nil {
		return err
	}
	if err := r.surface.Present(r.target.Image()); err != nil {
		return err
	}
	r.frames++
	return nil
}

// Image returns the last composed frame. It is reused by the next Render.
func (r *SoftwareRenderer) Image() *image.RGBA {
	return r.target.Image()
}

// Close releases the renderer and its surface.
func (r *SoftwareRenderer) Close() error {
	return r.close()
}

var _ Renderer = (*SoftwareRenderer)(nil)

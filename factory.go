// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggstage

import (
	"fmt"

	"github.com/gogpu/ggstage/backend"
	"github.com/gogpu/ggstage/render"
	"github.com/gogpu/ggstage/surface"
)

// surfaceBounds resolves where the surface goes and how big it is.
// Expand mode uses the host viewport at the origin.
func surfaceBounds(h Host, cfg Config) (x, y int, size surface.Size, err error) {
	if cfg.Expand {
		size = h.Viewport()
	} else {
		x, y = cfg.X, cfg.Y
		size = surface.Sz(cfg.Width, cfg.Height)
	}
	if err := size.Validate(); err != nil {
		return 0, 0, surface.Size{}, fmt.Errorf("%w: %w", ErrInvalidDimensions, err)
	}
	return x, y, size, nil
}

// openRenderer creates the surface (unless one is supplied) and a renderer
// that owns it.
func openRenderer(h Host, cfg Config) (backend.Renderer, error) {
	x, y, size, err := surfaceBounds(h, cfg)
	if err != nil {
		return nil, err
	}

	s := cfg.Surface
	if s == nil {
		s, err = h.NewSurface(x, y, size)
		if err != nil {
			return nil, fmt.Errorf("ggstage: create surface: %w", err)
		}
	} else if p, ok := s.(surface.Positioner); ok {
		p.SetPosition(x, y)
	}

	settings := render.DefaultSettings()
	if cfg.Background != nil {
		settings.Background = cfg.Background
	}

	reg := cfg.Backends
	if reg == nil {
		reg = backend.Default()
	}
	r, err := reg.Open(cfg.Backend, backend.Options{
		Surface:  s,
		Size:     size,
		Settings: settings,
	})
	if err != nil {
		if cfg.Surface == nil {
			_ = s.Close()
		}
		return nil, err
	}

	Logger().Info("ggstage: renderer ready",
		"backend", r.Name(), "mode", cfg.Backend.String(), "size", size.String())
	return r, nil
}

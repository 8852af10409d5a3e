// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gogpu/ggstage/scene"
)

// Rendering errors.
var (
	// ErrNilTarget is returned when Render is called without a target.
	ErrNilTarget = errors.New("render: nil target")

	// ErrNotCPUTarget is returned for targets without pixel access.
	ErrNotCPUTarget = errors.New("render: target does not support CPU rendering")
)

// SoftwareRenderer is a CPU renderer for scene graphs.
//
// Example:
//
//	renderer := render.NewSoftwareRenderer(render.DefaultSettings())
//	target := render.NewPixmapTarget(800, 600)
//	renderer.Render(target, stage)
type SoftwareRenderer struct {
	settings Settings
}

// NewSoftwareRenderer creates a CPU renderer with the given settings.
func NewSoftwareRenderer(settings Settings) *SoftwareRenderer {
	return &SoftwareRenderer{settings: settings}
}

// Settings returns the renderer configuration.
func (r *SoftwareRenderer) Settings() Settings {
	return r.settings
}

// Render clears target and paints root into it.
//
// Returns an error if the target is GPU-only (no Pixels() support).
func (r *SoftwareRenderer) Render(target RenderTarget, root *scene.Node) error {
	if target == nil {
		return ErrNilTarget
	}
	pixels := target.Pixels()
	if pixels == nil {
		return ErrNotCPUTarget
	}

	dst := &image.RGBA{
		Pix:    pixels,
		Stride: target.Stride(),
		Rect:   image.Rect(0, 0, target.Width(), target.Height()),
	}
	NewPixmapTargetFromImage(dst).Clear(r.settings.ClearColor())

	if root == nil {
		return nil
	}

	smooth := r.settings.ImageSmoothing
	root.Walk(func(n *scene.Node, at r2.Vec) {
		if d := n.Drawable(); d != nil {
			d.Draw(dst, at, smooth)
		}
	})
	return nil
}

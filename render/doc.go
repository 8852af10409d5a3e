// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render paints a scene graph into CPU render targets.
//
// # Core Types
//
//   - RenderTarget: where rendering output goes
//   - PixmapTarget: CPU-backed *image.RGBA target
//   - SoftwareRenderer: CPU implementation built on golang.org/x/image/draw
//   - Settings: the fixed renderer configuration (antialiasing,
//     transparency, image smoothing, resolution, background)
//
// # Usage
//
//	target := render.NewPixmapTarget(800, 600)
//	r := render.NewSoftwareRenderer(render.DefaultSettings())
//
//	if err := r.Render(target, stage); err != nil {
//	    log.Printf("render failed: %v", err)
//	}
//	img := target.Image()
//
// # Paint Order
//
// The root is cleared to the background color, then visible nodes are
// painted depth-first: a node's drawable first, then its children in
// insertion order. Later siblings therefore appear on top.
//
// # Thread Safety
//
// Renderers are NOT thread-safe. Each renderer should be used from a single
// goroutine, or external synchronization must be used.
package render

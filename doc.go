// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggstage is a layered 2D scene compositor.
//
// A Canvas owns a renderer and its surface, a root scene node (the stage)
// and an ordered stack of named layer nodes under it. Every layer is
// placed relative to one of nine anchor points on the surface bounds plus
// an offset, and is re-placed whenever the surface is resized.
//
// # Quick Start
//
//	h := headless.New(surface.Sz(1024, 768))
//	c, err := ggstage.New(h,
//	    ggstage.WithExpand(),
//	    ggstage.WithOrigin("ui", ggstage.AnchorTopRight),
//	    ggstage.WithTranslate("ui", -10, 5),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	ui, _ := c.Layer("ui")
//	ui.AddChild(scene.NewNode("logo").SetDrawable(scene.NewSprite(img)))
//
//	// Paint every frame and follow viewport resizes until Stop or ctx ends.
//	if err := c.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Layers
//
// Without WithLayers the stack is, bottom to top:
//
//	backdrop, below, world, above, ui, effect
//
// Layer nodes are created once and never replaced; resizes move them in
// place.
//
// # Anchors
//
//	top-left     top     top-right
//	left        center       right
//	bottom-left bottom bottom-right
//
// Unknown anchors fall back to center. Missing offsets are (0, 0).
//
// # Lifecycle
//
// New builds the canvas, lays out every layer and paints once. Nothing
// animates until Run (or Loop().Start) is called. Run starts
// the render loop (one paint per display frame) and, in expand mode, the
// resize reactor. Stop is the only transition to the stopped state.
//
// # Defaults
//
// Canvases built with WithDefault(true) (the default) register themselves
// and their default layer in a Registry. A default layer name that is not
// in the stack falls back to the top layer. Code that cannot receive a canvas
// explicitly can read it back with DefaultCanvas, or thread one through a
// context.Context with NewContext and CurrentCanvas.
//
// # Logging
//
// ggstage is silent by default. SetLogger enables log/slog output for the
// package and its sub-packages.
package ggstage

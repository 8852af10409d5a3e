// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene provides the retained-mode scene graph painted by ggstage
// renderers.
//
// A Node is a container with a position and an ordered list of children.
// Children paint in insertion order, so later children appear on top of
// earlier ones. A node may carry a Drawable (a Sprite or a Rect) that is
// painted at the node's accumulated position before its children.
//
// Example:
//
//	stage := scene.NewNode("stage")
//	ui := scene.NewNode("ui")
//	stage.AddChild(ui)
//	ui.SetPosition(790, 5)
//
//	logo := scene.NewSprite(img)
//	logo.SetPivot(1, 0)
//	ui.AddChild(scene.NewNode("logo").SetDrawable(logo))
//
// Nodes are NOT thread-safe. The canvas that owns a graph serializes
// mutations with paints; callers that touch nodes from other goroutines
// must coordinate with it.
package scene

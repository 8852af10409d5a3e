// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"image/color"

	"github.com/gogpu/ggstage"
	"github.com/gogpu/ggstage/scene"
	"github.com/lucasb-eyer/go-colorful"
)

// Marker size in pixels.
const (
	markerW = 16
	markerH = 8
)

// populate puts one colored marker on every layer, spread horizontally
// around the layer origin so overlapping layers stay distinguishable.
func populate(c *ggstage.Canvas) {
	names := c.Layers()
	for i, name := range names {
		layer, _ := c.Layer(name)
		hue := float64(i) * 360 / float64(len(names))
		r, g, b := colorful.Hsl(hue, 0.7, 0.55).RGB255()

		marker := scene.NewNode(name + "-marker").
			SetDrawable(scene.NewRect(markerW, markerH, color.RGBA{R: r, G: g, B: b, A: 0xff}))
		offset := float64(i) - float64(len(names)-1)/2
		marker.SetPosition(offset*(markerW+4)-markerW/2, -markerH/2)
		layer.AddChild(marker)
	}
}

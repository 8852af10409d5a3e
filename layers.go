// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggstage

import (
	"maps"

	"github.com/gogpu/ggstage/scene"
	"gonum.org/v1/gonum/spatial/r2"
)

// StageName is the name of the root node every canvas creates.
const StageName = "stage"

// layerStack is the stage, its layer nodes and their placement rules.
type layerStack struct {
	stage     *scene.Node
	names     []string
	nodes     map[string]*scene.Node
	origins   map[string]Anchor
	translate map[string]r2.Vec
}

// buildLayers creates one node per configured layer name, bottom first.
// Nodes are not attached to the stage until attach runs.
func buildLayers(cfg Config) *layerStack {
	names := cfg.layerNames()
	ls := &layerStack{
		stage:     scene.NewNode(StageName),
		names:     names,
		nodes:     make(map[string]*scene.Node, len(names)),
		origins:   make(map[string]Anchor, len(cfg.Origins)),
		translate: make(map[string]r2.Vec, len(cfg.Translate)),
	}
	for _, name := range names {
		ls.nodes[name] = scene.NewNode(name)
	}
	maps.Copy(ls.origins, cfg.Origins)
	maps.Copy(ls.translate, cfg.Translate)
	return ls
}

// attach adds every layer to the stage in stack order so that later
// layers paint over earlier ones.
func (ls *layerStack) attach() {
	for _, name := range ls.names {
		ls.stage.AddChild(ls.nodes[name])
	}
}

// place positions one layer for a width x height surface.
func (ls *layerStack) place(name string, width, height float64) {
	node, ok := ls.nodes[name]
	if !ok {
		return
	}
	node.SetPositionVec(Position(width, height, ls.origins[name], ls.translate[name]))
}

// layout positions every layer for a width x height surface.
func (ls *layerStack) layout(width, height float64) {
	for _, name := range ls.names {
		ls.place(name, width, height)
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// Node is a scene graph container.
type Node struct {
	name     string
	pos      r2.Vec
	visible  bool
	parent   *Node
	children []*Node
	drawable Drawable
}

// NewNode creates a visible node at the origin.
func NewNode(name string) *Node {
	return &Node{name: name, visible: true}
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// SetPosition moves the node relative to its parent.
func (n *Node) SetPosition(x, y float64) {
	n.pos = r2.Vec{X: x, Y: y}
}

// SetPositionVec is SetPosition for a vector.
func (n *Node) SetPositionVec(p r2.Vec) {
	n.pos = p
}

// Position returns the node position relative to its parent.
func (n *Node) Position() r2.Vec {
	return n.pos
}

// GlobalPosition returns the position accumulated from the root.
func (n *Node) GlobalPosition() r2.Vec {
	p := n.pos
	for a := n.parent; a != nil; a = a.parent {
		p = r2.Add(p, a.pos)
	}
	return p
}

// SetVisible shows or hides the node and its subtree.
func (n *Node) SetVisible(visible bool) {
	n.visible = visible
}

// Visible reports whether the node paints.
func (n *Node) Visible() bool {
	return n.visible
}

// SetDrawable attaches content to the node. It returns n for chaining.
func (n *Node) SetDrawable(d Drawable) *Node {
	n.drawable = d
	return n
}

// Drawable returns the attached content, or nil.
func (n *Node) Drawable() Drawable {
	return n.drawable
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// AddChild appends child on top of the existing children.
// A child that already has a parent is moved.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child. It reports whether child was found.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	return true
}

// Children returns the children in paint order.
// The returned slice is a copy.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// ChildIndex returns the paint index of child, or -1.
func (n *Node) ChildIndex(child *Node) int {
	return slices.Index(n.children, child)
}

// Walk visits visible nodes depth-first in paint order with their
// accumulated positions. Hidden subtrees are skipped.
func (n *Node) Walk(fn func(node *Node, at r2.Vec)) {
	n.walk(r2.Vec{}, fn)
}

func (n *Node) walk(origin r2.Vec, fn func(*Node, r2.Vec)) {
	if !n.visible {
		return
	}
	at := r2.Add(origin, n.pos)
	fn(n, at)
	for _, c := range n.children {
		c.walk(at, fn)
	}
}

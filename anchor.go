// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggstage

import (
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Anchor names one of nine reference points on a rectangle.
type Anchor uint8

// Anchor values. The zero value is AnchorCenter.
const (
	AnchorCenter Anchor = iota
	AnchorTop
	AnchorBottom
	AnchorLeft
	AnchorRight
	AnchorTopLeft
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
)

var anchorNames = [...]string{
	AnchorCenter:      "center",
	AnchorTop:         "top",
	AnchorBottom:      "bottom",
	AnchorLeft:        "left",
	AnchorRight:       "right",
	AnchorTopLeft:     "top-left",
	AnchorTopRight:    "top-right",
	AnchorBottomLeft:  "bottom-left",
	AnchorBottomRight: "bottom-right",
}

// String returns the anchor name. Out-of-range values print as "center".
func (a Anchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return anchorNames[AnchorCenter]
}

// MarshalText implements encoding.TextMarshaler.
func (a Anchor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown names decode to AnchorCenter.
func (a *Anchor) UnmarshalText(text []byte) error {
	*a = ParseAnchor(string(text))
	return nil
}

// LookupAnchor parses an anchor name and reports whether it was recognized.
// Matching ignores case, surrounding space and a leading ':', and accepts
// ':' or '_' in place of '-' (":top-left", "top:left", "TOP_LEFT").
func LookupAnchor(s string) (Anchor, bool) {
	key := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ":")
	key = strings.NewReplacer(":", "-", "_", "-").Replace(key)
	for i, name := range anchorNames {
		if name == key {
			return Anchor(i), true
		}
	}
	return AnchorCenter, false
}

// ParseAnchor parses an anchor name. Unknown names yield AnchorCenter.
func ParseAnchor(s string) Anchor {
	a, _ := LookupAnchor(s)
	return a
}

// Position returns where an anchor lands on a width x height rectangle,
// displaced by offset. Unknown anchors behave as AnchorCenter.
func Position(width, height float64, a Anchor, offset r2.Vec) r2.Vec {
	var p r2.Vec
	switch a {
	case AnchorTop:
		p = r2.Vec{X: width / 2, Y: 0}
	case AnchorBottom:
		p = r2.Vec{X: width / 2, Y: height}
	case AnchorLeft:
		p = r2.Vec{X: 0, Y: height / 2}
	case AnchorRight:
		p = r2.Vec{X: width, Y: height / 2}
	case AnchorTopLeft:
		p = r2.Vec{X: 0, Y: 0}
	case AnchorTopRight:
		p = r2.Vec{X: width, Y: 0}
	case AnchorBottomLeft:
		p = r2.Vec{X: 0, Y: height}
	case AnchorBottomRight:
		p = r2.Vec{X: width, Y: height}
	default:
		p = r2.Vec{X: width / 2, Y: height / 2}
	}
	return r2.Add(p, offset)
}

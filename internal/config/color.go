// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or an SVG color name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	low := strings.ToLower(s)
	if low == "transparent" {
		return color.RGBA{}, nil
	}
	c, ok := colornames.Map[low]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color name %q", s)
	}
	return c, nil
}

func parseHex(x string) (color.RGBA, error) {
	orig := "#" + x
	switch len(x) {
	case 3:
		x = string([]byte{x[0], x[0], x[1], x[1], x[2], x[2]}) + "ff"
	case 6:
		x += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("bad hex color %q", orig)
	}
	v, err := strconv.ParseUint(x, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", orig)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"image"
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/ggstage/surface"
)

// HalfBlock is the glyph used to show two pixels in one cell.
const HalfBlock = '▀'

// Surface presents frames as half-block cells on a tcell screen.
type Surface struct {
	mu     sync.Mutex
	screen tcell.Screen
	pos    image.Point
	size   surface.Size
	closed bool
}

// Size returns the surface size in pixels.
func (s *Surface) Size() surface.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Resize changes the surface size.
func (s *Surface) Resize(width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return surface.ErrClosed
	}
	next := surface.Sz(width, height)
	if err := next.Validate(); err != nil {
		return err
	}
	if next != s.size {
		s.size = next
		s.screen.Clear()
	}
	return nil
}

// Present draws frame and shows the screen.
func (s *Surface) Present(frame *image.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return surface.ErrClosed
	}
	Blit(s.screen, frame, s.pos)
	s.screen.Show()
	return nil
}

// SetPosition moves the surface to pixel (x, y).
func (s *Surface) SetPosition(x, y int) {
	s.mu.Lock()
	s.pos = image.Pt(x, y)
	s.mu.Unlock()
}

// Position returns the pixel position.
func (s *Surface) Position() image.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// Close stops further presents. Close is idempotent.
func (s *Surface) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

// Blit writes img onto screen with its top-left pixel at at. Pixel rows
// are paired into cells; a trailing odd row leaves the lower half at the
// default background.
func Blit(screen tcell.Screen, img *image.RGBA, at image.Point) {
	b := img.Bounds()
	col0, row0 := at.X, at.Y/2
	for cy := 0; cy*2 < b.Dy(); cy++ {
		y := b.Min.Y + cy*2
		for x := 0; x < b.Dx(); x++ {
			top := img.RGBAAt(b.Min.X+x, y)
			style := tcell.StyleDefault.Foreground(cellColor(top))
			if y+1 < b.Max.Y {
				style = style.Background(cellColor(img.RGBAAt(b.Min.X+x, y+1)))
			}
			screen.SetContent(col0+x, row0+cy, HalfBlock, nil, style)
		}
	}
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"image"
	"image/color"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestSpriteBoundsPivot(t *testing.T) {
	s := NewSprite(solid(10, 4, color.RGBA{A: 255}))

	tests := []struct {
		name   string
		px, py float64
		want   image.Rectangle
	}{
		{"top-left", 0, 0, image.Rect(100, 50, 110, 54)},
		{"center", 0.5, 0.5, image.Rect(95, 48, 105, 52)},
		{"bottom-right", 1, 1, image.Rect(90, 46, 100, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetPivot(tt.px, tt.py)
			if got := s.Bounds(r2.Vec{X: 100, Y: 50}); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpriteDraw(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	s := NewSprite(solid(2, 2, red))
	s.Draw(dst, r2.Vec{X: 3, Y: 4}, false)

	if got := dst.RGBAAt(3, 4); got != red {
		t.Errorf("pixel (3,4) = %v, want %v", got, red)
	}
	if got := dst.RGBAAt(5, 4); got != (color.RGBA{}) {
		t.Errorf("pixel (5,4) = %v, want transparent", got)
	}
}

func TestSpriteDrawScaled(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	s := NewSprite(solid(2, 2, red))
	s.SetSize(8, 8)
	if s.Size() != (r2.Vec{X: 8, Y: 8}) {
		t.Fatalf("Size() = %v, want 8x8", s.Size())
	}
	s.Draw(dst, r2.Vec{}, false)

	if got := dst.RGBAAt(7, 7); got != red {
		t.Errorf("pixel (7,7) = %v, want %v", got, red)
	}
	if got := dst.RGBAAt(8, 8); got != (color.RGBA{}) {
		t.Errorf("pixel (8,8) = %v, want transparent", got)
	}
}

func TestSpriteSetSizeKeepsNatural(t *testing.T) {
	s := NewSprite(solid(3, 5, color.RGBA{A: 255}))
	s.SetSize(0, -1)
	if s.Size() != (r2.Vec{X: 3, Y: 5}) {
		t.Errorf("Size() = %v, want natural 3x5", s.Size())
	}
}

func TestSpriteZeroAlphaSkipped(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	s := NewSprite(solid(4, 4, color.RGBA{255, 255, 255, 255}))
	s.SetAlpha(0)
	s.Draw(dst, r2.Vec{}, false)
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("pixel = %v, want untouched", got)
	}
}

func TestRectDraw(t *testing.T) {
	blue := color.RGBA{0, 0, 255, 255}
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	NewRect(3, 2, blue).Draw(dst, r2.Vec{X: 1, Y: 1}, false)

	if got := dst.RGBAAt(3, 2); got != blue {
		t.Errorf("pixel (3,2) = %v, want %v", got, blue)
	}
	if got := dst.RGBAAt(4, 1); got != (color.RGBA{}) {
		t.Errorf("pixel (4,1) = %v, want transparent", got)
	}
}

func TestSpriteCachesScaledCopies(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	src := solid(2, 2, red)
	s := NewSprite(src)
	s.SetSize(4, 4)
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))

	s.Draw(dst, r2.Vec{}, false)
	s.Draw(dst, r2.Vec{X: 2}, false)
	if got := s.CachedScales(); got != 1 {
		t.Fatalf("CachedScales() = %d after repeated draws, want 1", got)
	}
	s.Draw(dst, r2.Vec{}, true)
	if got := s.CachedScales(); got != 2 {
		t.Errorf("CachedScales() = %d after smooth draw, want 2", got)
	}

	blue := color.RGBA{0, 0, 255, 255}
	for i := 0; i < len(src.Pix); i += 4 {
		copy(src.Pix[i:], []byte{blue.R, blue.G, blue.B, blue.A})
	}
	s.Invalidate()
	if s.CachedScales() != 0 {
		t.Fatal("Invalidate kept cached copies")
	}
	s.Draw(dst, r2.Vec{}, false)
	if got := dst.RGBAAt(3, 3); got != blue {
		t.Errorf("pixel after Invalidate = %v, want %v", got, blue)
	}
}

func TestSpriteAlphaBlends(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	s := NewSprite(solid(2, 2, color.RGBA{255, 255, 255, 255}))
	s.SetAlpha(0.5)
	s.Draw(dst, r2.Vec{}, false)
	got := dst.RGBAAt(0, 0)
	if got.A < 120 || got.A > 135 {
		t.Errorf("alpha = %d, want about 128", got.A)
	}
}

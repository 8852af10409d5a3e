// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/ggstage/internal/cache"
	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/spatial/r2"
)

// Drawable is content painted at a node position.
type Drawable interface {
	// Draw paints onto dst with the node origin at `at`.
	// smooth selects bilinear instead of nearest-neighbor scaling.
	Draw(dst draw.Image, at r2.Vec, smooth bool)
}

// scaledCacheSize is how many scaled copies a sprite keeps.
const scaledCacheSize = 4

type scaleKey struct {
	w, h   int
	smooth bool
}

// Sprite draws an image, optionally scaled, around a pivot.
//
// Scaled copies of the image are cached. Call Invalidate after modifying
// the source image in place.
type Sprite struct {
	img    image.Image
	size   r2.Vec
	pivot  r2.Vec
	alpha  float64
	scaled *cache.LRU[scaleKey, *image.RGBA]
}

// NewSprite creates a sprite at the image's natural size with its top-left
// corner on the node origin.
func NewSprite(img image.Image) *Sprite {
	b := img.Bounds()
	return &Sprite{
		img:    img,
		size:   r2.Vec{X: float64(b.Dx()), Y: float64(b.Dy())},
		alpha:  1,
		scaled: cache.New[scaleKey, *image.RGBA](scaledCacheSize),
	}
}

// Invalidate drops cached scaled copies of the image.
func (s *Sprite) Invalidate() {
	s.scaled.Clear()
}

// CachedScales returns the number of scaled copies held.
func (s *Sprite) CachedScales() int {
	return s.scaled.Len()
}

func (s *Sprite) scaledImage(w, h int, smooth bool) *image.RGBA {
	return s.scaled.GetOrCreate(scaleKey{w, h, smooth}, func() *image.RGBA {
		out := image.NewRGBA(image.Rect(0, 0, w, h))
		var scaler draw.Scaler = draw.NearestNeighbor
		if smooth {
			scaler = draw.ApproxBiLinear
		}
		scaler.Scale(out, out.Bounds(), s.img, s.img.Bounds(), draw.Src, nil)
		return out
	})
}

// SetSize sets the display size. Non-positive values keep the natural size.
func (s *Sprite) SetSize(width, height float64) {
	b := s.img.Bounds()
	if width <= 0 {
		width = float64(b.Dx())
	}
	if height <= 0 {
		height = float64(b.Dy())
	}
	s.size = r2.Vec{X: width, Y: height}
}

// Size returns the display size.
func (s *Sprite) Size() r2.Vec {
	return s.size
}

// SetPivot sets the fractional point of the sprite that sits on the node
// origin: (0,0) is the top-left corner, (0.5,0.5) the center, (1,1) the
// bottom-right corner.
func (s *Sprite) SetPivot(px, py float64) {
	s.pivot = r2.Vec{X: px, Y: py}
}

// SetAlpha sets opacity in [0,1].
func (s *Sprite) SetAlpha(a float64) {
	s.alpha = min(max(a, 0), 1)
}

// Bounds returns the destination rectangle for a node origin.
func (s *Sprite) Bounds(at r2.Vec) image.Rectangle {
	tl := r2.Sub(at, r2.Vec{X: s.pivot.X * s.size.X, Y: s.pivot.Y * s.size.Y})
	x0 := int(math.Round(tl.X))
	y0 := int(math.Round(tl.Y))
	return image.Rect(x0, y0, x0+int(math.Round(s.size.X)), y0+int(math.Round(s.size.Y)))
}

// Draw implements Drawable.
func (s *Sprite) Draw(dst draw.Image, at r2.Vec, smooth bool) {
	if s.alpha == 0 {
		return
	}
	dr := s.Bounds(at)
	sr := s.img.Bounds()
	if dr.Empty() || !dr.Overlaps(dst.Bounds()) {
		return
	}

	var mask image.Image
	if s.alpha < 1 {
		mask = image.NewUniform(color.Alpha{A: uint8(math.Round(s.alpha * 255))})
	}

	src, sp := s.img, sr.Min
	if dr.Size() != sr.Size() {
		src, sp = s.scaledImage(dr.Dx(), dr.Dy(), smooth), image.Point{}
	}
	draw.DrawMask(dst, dr, src, sp, mask, image.Point{}, draw.Over)
}

// Rect draws a solid rectangle with its top-left corner on the node origin.
type Rect struct {
	Width  float64
	Height float64
	Color  color.Color
}

// NewRect creates a solid rectangle drawable.
func NewRect(width, height float64, c color.Color) *Rect {
	return &Rect{Width: width, Height: height, Color: c}
}

// Draw implements Drawable.
func (r *Rect) Draw(dst draw.Image, at r2.Vec, _ bool) {
	x0 := int(math.Round(at.X))
	y0 := int(math.Round(at.Y))
	dr := image.Rect(x0, y0, x0+int(math.Round(r.Width)), y0+int(math.Round(r.Height)))
	draw.Draw(dst, dr, image.NewUniform(r.Color), image.Point{}, draw.Over)
}

var (
	_ Drawable = (*Sprite)(nil)
	_ Drawable = (*Rect)(nil)
)

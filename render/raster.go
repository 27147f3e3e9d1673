// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Raster is a Surface backed by an in-memory RGBA image. Shapes are
// anti-aliased. Text is drawn in a fixed 7x13 bitmap face regardless
// of the requested size.
type Raster struct {
	Image *image.RGBA
}

// NewRaster returns a width x height Raster with a white background.
func NewRaster(width, height int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &Raster{img}
}

// EncodePNG writes the image to w in PNG format.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.Image)
}

func (r *Raster) Bounds() Rect {
	b := r.Image.Bounds()
	return R(float64(b.Min.X), float64(b.Min.Y), float64(b.Max.X), float64(b.Max.Y))
}

// fill rasterizes the path traced by trace with color c.
func (r *Raster) fill(c color.Color, trace func(z *vector.Rasterizer)) {
	b := r.Image.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	trace(z)
	z.Draw(r.Image, b, image.NewUniform(c), image.Point{})
}

func (r *Raster) Polygon(rings [][]Point, st Style) {
	if st.Fill != nil {
		r.fill(st.Fill, func(z *vector.Rasterizer) {
			for _, ring := range rings {
				if len(ring) < 3 {
					continue
				}
				z.MoveTo(float32(ring[0].X), float32(ring[0].Y))
				for _, p := range ring[1:] {
					z.LineTo(float32(p.X), float32(p.Y))
				}
				z.ClosePath()
			}
		})
	}
	if st.Stroke != nil && st.StrokeWidth > 0 {
		for _, ring := range rings {
			r.polyline(ring, true, st.Stroke, st.StrokeWidth)
		}
	}
}

func (r *Raster) Rect(rect Rect, st Style) {
	corners := []Point{rect.Min, {rect.Max.X, rect.Min.Y}, rect.Max, {rect.Min.X, rect.Max.Y}}
	r.Polygon([][]Point{corners}, st)
}

func (r *Raster) Line(a, b Point, stroke color.Color, width float64) {
	r.polyline([]Point{a, b}, false, stroke, width)
}

// polyline strokes the segments of pts, closing the loop if closed.
// Each segment is filled as a quadrilateral of the given width.
func (r *Raster) polyline(pts []Point, closed bool, c color.Color, width float64) {
	if len(pts) < 2 {
		return
	}
	hw := width / 2
	r.fill(c, func(z *vector.Rasterizer) {
		n := len(pts) - 1
		if closed {
			n++
		}
		for i := 0; i < n; i++ {
			a, b := pts[i], pts[(i+1)%len(pts)]
			dx, dy := b.X-a.X, b.Y-a.Y
			l := math.Hypot(dx, dy)
			if l == 0 {
				continue
			}
			// Unit normal scaled to half the stroke width.
			nx, ny := -dy/l*hw, dx/l*hw
			z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
			z.LineTo(float32(b.X+nx), float32(b.Y+ny))
			z.LineTo(float32(b.X-nx), float32(b.Y-ny))
			z.LineTo(float32(a.X-nx), float32(a.Y-ny))
			z.ClosePath()
		}
	})
}

func (r *Raster) Text(p Point, s string, ts TextStyle) {
	face := basicfont.Face7x13
	x := p.X
	switch w := float64(font.MeasureString(face, s).Round()); ts.Anchor {
	case AnchorMiddle:
		x -= w / 2
	case AnchorEnd:
		x -= w
	}
	d := font.Drawer{
		Dst:  r.Image,
		Src:  image.NewUniform(textColor(ts)),
		Face: face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(p.Y))),
	}
	d.DrawString(s)
}

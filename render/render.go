// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides drawing surfaces for maps and legends.
//
// All surfaces use the same coordinate system: the origin is the top
// left corner, x grows to the right and y grows down. Units are
// pixels for SVG and Raster and character cells for Terminal.
package render

import (
	"image/color"
	"math"
)

// A Point is a position on a surface.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// A Rect is an axis-aligned rectangle. Min is the top left corner.
type Rect struct {
	Min, Max Point
}

// R returns the rectangle with corners (x0, y0) and (x1, y1),
// normalized so Min is the top left.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Point{math.Min(x0, x1), math.Min(y0, y1)},
		Point{math.Max(x0, x1), math.Max(y0, y1)},
	}
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Dx() <= 0 || r.Dy() <= 0
}

// Inset returns r shrunk by d on every side.
func (r Rect) Inset(d float64) Rect {
	return R(r.Min.X+d, r.Min.Y+d, r.Max.X-d, r.Max.Y-d)
}

// Style describes how to paint a shape. A nil Fill or Stroke is not
// painted.
type Style struct {
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64
}

// Anchor is the horizontal alignment of text relative to its
// position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// TextStyle describes how to draw a string. The text baseline sits on
// the given position.
type TextStyle struct {
	Size   float64
	Color  color.Color
	Anchor Anchor
}

// A Surface is something maps and legends can be drawn on.
type Surface interface {
	// Bounds returns the drawable area of the surface.
	Bounds() Rect

	// Polygon fills and strokes a polygon made of one or more
	// closed rings. Holes are rings with the opposite winding of
	// their enclosing ring.
	Polygon(rings [][]Point, st Style)

	// Rect fills and strokes a rectangle.
	Rect(r Rect, st Style)

	// Line draws a line segment.
	Line(a, b Point, stroke color.Color, width float64)

	// Text draws s at p.
	Text(p Point, s string, ts TextStyle)
}

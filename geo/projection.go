// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/aclements/go-moremath/scale"

	"github.com/torontoviz/go-toronto/render"
)

// Bounds is a longitude/latitude box.
type Bounds struct {
	Min, Max LonLat
}

// TorontoBounds covers the City of Toronto.
var TorontoBounds = Bounds{
	Min: LonLat{Lon: -79.75, Lat: 43.40},
	Max: LonLat{Lon: -79.10, Lat: 43.95},
}

// Contains reports whether p is inside b.
func (b Bounds) Contains(p LonLat) bool {
	return b.Min.Lon <= p.Lon && p.Lon <= b.Max.Lon && b.Min.Lat <= p.Lat && p.Lat <= b.Max.Lat
}

// A Projection maps longitude and latitude linearly onto a frame on a
// surface (the equidistant cylindrical projection). One degree of
// longitude and one degree of latitude have the same length on the
// surface, and the bounds are centered in the frame.
type Projection struct {
	Bounds Bounds
	Frame  render.Rect

	lon, lat scale.Linear
	area     render.Rect
}

// NewProjection returns a projection of b onto frame.
func NewProjection(b Bounds, frame render.Rect) *Projection {
	// Normalize so Min is the south-west corner.
	if b.Min.Lon > b.Max.Lon {
		b.Min.Lon, b.Max.Lon = b.Max.Lon, b.Min.Lon
	}
	if b.Min.Lat > b.Max.Lat {
		b.Min.Lat, b.Max.Lat = b.Max.Lat, b.Min.Lat
	}
	dLon, dLat := b.Max.Lon-b.Min.Lon, b.Max.Lat-b.Min.Lat
	w, h := frame.Dx(), frame.Dy()
	if dLon > 0 && dLat > 0 {
		if px := math.Min(w/dLon, h/dLat); px > 0 {
			w, h = dLon*px, dLat*px
		}
	}
	x0 := frame.Min.X + (frame.Dx()-w)/2
	y0 := frame.Min.Y + (frame.Dy()-h)/2
	return &Projection{
		Bounds: b,
		Frame:  frame,
		lon:    scale.Linear{Min: b.Min.Lon, Max: b.Max.Lon},
		lat:    scale.Linear{Min: b.Min.Lat, Max: b.Max.Lat},
		area:   render.R(x0, y0, x0+w, y0+h),
	}
}

// Area returns the part of the frame covered by the bounds.
func (p *Projection) Area() render.Rect {
	return p.area
}

// Project returns the surface position of ll.
func (p *Projection) Project(ll LonLat) render.Point {
	return render.Pt(
		p.area.Min.X+p.lon.Map(ll.Lon)*p.area.Dx(),
		p.area.Max.Y-p.lat.Map(ll.Lat)*p.area.Dy(),
	)
}

// Rings projects every ring of f.
func (p *Projection) Rings(f Feature) [][]render.Point {
	out := make([][]render.Point, len(f.Rings))
	for i, ring := range f.Rings {
		pts := make([]render.Point, len(ring))
		for j, ll := range ring {
			pts[j] = p.Project(ll)
		}
		out[i] = pts
	}
	return out
}

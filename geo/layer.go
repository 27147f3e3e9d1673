// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo reads geographic layers from ESRI shapefiles and
// projects them onto drawing surfaces.
package geo

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/jonas-p/go-shp"
)

// LonLat is a WGS84 position in degrees.
type LonLat struct {
	Lon, Lat float64
}

// A Feature is one shape of a layer together with its attribute
// record.
type Feature struct {
	// Rings are the closed rings of a polygon, or the parts of a
	// polyline.
	Rings [][]LonLat

	// Attrs maps field names to the feature's attribute values,
	// with surrounding blanks removed.
	Attrs map[string]string
}

// A Layer is the contents of one shapefile.
type Layer struct {
	Name     string
	Fields   []string
	Features []Feature
}

// LoadLayer reads the shapefile at path. The ".shp" extension may be
// omitted, in which case it is added; the ".shx" and ".dbf" files must
// sit next to the ".shp" file.
//
// Polygon and polyline shapes are supported. Other shape types are
// loaded as features with no rings.
func LoadLayer(path string) (*Layer, error) {
	if filepath.Ext(path) != ".shp" {
		path += ".shp"
	}
	// go-shp reads a layer without attributes when the .dbf is
	// missing.
	base := strings.TrimSuffix(path, ".shp")
	for _, ext := range []string{".shx", ".dbf"} {
		if _, err := os.Stat(base + ext); err != nil {
			return nil, fmt.Errorf("opening shapefile %s: %w", path, err)
		}
	}
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile %s: %w", path, err)
	}
	defer r.Close()

	l := &Layer{Name: strings.TrimSuffix(filepath.Base(path), ".shp")}
	fields := r.Fields()
	for _, f := range fields {
		l.Fields = append(l.Fields, f.String())
	}
	for r.Next() {
		n, s := r.Shape()
		feat := Feature{
			Rings: rings(s),
			Attrs: make(map[string]string, len(fields)),
		}
		for i, name := range l.Fields {
			feat.Attrs[name] = strings.TrimSpace(r.ReadAttribute(n, i))
		}
		l.Features = append(l.Features, feat)
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading shapefile %s: %w", path, err)
	}
	return l, nil
}

// rings splits the points of a multi-part shape into its parts.
func rings(s shp.Shape) [][]LonLat {
	var parts []int32
	var points []shp.Point
	switch s := s.(type) {
	case *shp.Polygon:
		parts, points = s.Parts, s.Points
	case *shp.PolyLine:
		parts, points = s.Parts, s.Points
	default:
		return nil
	}
	out := make([][]LonLat, 0, len(parts))
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		ring := make([]LonLat, 0, end-start)
		for _, p := range points[start:end] {
			ring = append(ring, LonLat{p.X, p.Y})
		}
		out = append(out, ring)
	}
	return out
}

// Float parses field as a number for every feature, in feature order.
// Blank values are NaN.
func (l *Layer) Float(field string) ([]float64, error) {
	if !l.HasField(field) {
		return nil, fmt.Errorf("layer %s has no field %q", l.Name, field)
	}
	out := make([]float64, len(l.Features))
	for i, f := range l.Features {
		v := f.Attrs[field]
		if v == "" {
			out[i] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("layer %s feature %d field %s: %w", l.Name, i, field, err)
		}
		out[i] = x
	}
	return out, nil
}

// HasField reports whether the layer has an attribute named field.
func (l *Layer) HasField(field string) bool {
	for _, f := range l.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Bounds returns the smallest box containing every ring of the layer.
func (l *Layer) Bounds() Bounds {
	var lons, lats []float64
	for _, f := range l.Features {
		for _, ring := range f.Rings {
			for _, p := range ring {
				lons = append(lons, p.Lon)
				lats = append(lats, p.Lat)
			}
		}
	}
	if len(lons) == 0 {
		return Bounds{}
	}
	minLon, maxLon := stats.Bounds(lons)
	minLat, maxLat := stats.Bounds(lats)
	return Bounds{LonLat{minLon, minLat}, LonLat{maxLon, maxLat}}
}

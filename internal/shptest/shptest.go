// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shptest writes small polygon shapefiles for tests.
package shptest

import (
	"os"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
)

// A Square is an axis-aligned square polygon with its attribute
// values, one per field.
type Square struct {
	X, Y  float64 // lower left corner
	Size  float64
	Attrs []any
}

// WriteSquares writes squares as a polygon shapefile at path, which
// must end in ".shp", with the given attribute fields.
func WriteSquares(t testing.TB, path string, fields []shp.Field, squares []Square) {
	t.Helper()
	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		t.Fatal(err)
	}
	w.SetFields(fields)
	for _, sq := range squares {
		x, y, d := sq.X, sq.Y, sq.Size
		pl := shp.NewPolyLine([][]shp.Point{{
			{X: x, Y: y},
			{X: x, Y: y + d},
			{X: x + d, Y: y + d},
			{X: x + d, Y: y},
			{X: x, Y: y},
		}})
		poly := shp.Polygon(*pl)
		n := int(w.Write(&poly))
		for i, v := range sq.Attrs {
			if err := w.WriteAttribute(n, i, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	w.Close()
	fixDBFName(t, path)
}

// fixDBFName renames the attribute file go-shp v0.1.1 writes as
// "<name>dbf" to "<name>.dbf", where its reader looks for it.
func fixDBFName(t testing.TB, path string) {
	t.Helper()
	base := strings.TrimSuffix(path, ".shp")
	if _, err := os.Stat(base + ".dbf"); err == nil {
		return
	}
	if err := os.Rename(base+"dbf", base+".dbf"); err != nil {
		t.Fatal(err)
	}
}

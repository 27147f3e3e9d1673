// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = [][]Point{{{10, 10}, {30, 10}, {30, 30}, {10, 30}}}

func TestRect(t *testing.T) {
	r := R(5, 8, 1, 2)
	assert.Equal(t, Rect{Pt(1, 2), Pt(5, 8)}, r)
	assert.Equal(t, 4.0, r.Dx())
	assert.Equal(t, 6.0, r.Dy())
	assert.False(t, r.Empty())
	assert.True(t, r.Inset(3).Empty())
	assert.Equal(t, R(2, 3, 4, 7), r.Inset(1))
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 200, 100)
	s.Polygon(square, Style{Fill: color.RGBA{0xfb, 0x6a, 0x4a, 0xff}, Stroke: color.Black, StrokeWidth: 1})
	s.Rect(R(0, 0, 10, 10), Style{Fill: color.White})
	s.Line(Pt(0, 0), Pt(10, 10), color.Black, 2)
	s.Text(Pt(50, 50), "Ward 12", TextStyle{Anchor: AnchorMiddle})
	require.NoError(t, s.Close())

	out := buf.String()
	assert.Equal(t, R(0, 0, 200, 100), s.Bounds())
	for _, want := range []string{`width="200"`, `height="100"`, "#fb6a4a", "#000000", "evenodd", "Ward 12", "middle", "</svg>"} {
		assert.Contains(t, out, want)
	}
}

func TestRaster(t *testing.T) {
	r := NewRaster(40, 40)
	red := color.RGBA{0xff, 0, 0, 0xff}
	r.Polygon(square, Style{Fill: red})

	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, r.Image.RGBAAt(2, 2), "background")
	assert.Equal(t, red, r.Image.RGBAAt(20, 20), "polygon interior")

	r.Rect(R(0, 0, 5, 5), Style{Fill: color.Black})
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, r.Image.RGBAAt(2, 2), "rect interior")

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
}

func TestRasterText(t *testing.T) {
	r := NewRaster(60, 20)
	r.Text(Pt(2, 15), "0", TextStyle{Color: color.Black})
	dark := false
	b := r.Image.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := r.Image.RGBAAt(x, y); c.R < 0x80 {
				dark = true
			}
		}
	}
	assert.True(t, dark, "text drew no dark pixels")
}

func TestTerminal(t *testing.T) {
	term := NewTerminal(10, 3)
	term.Rect(R(0, 0, 4, 1), Style{Fill: color.Black})
	term.Text(Pt(0, 1.5), "low", TextStyle{})
	term.Text(Pt(10, 2.5), "high", TextStyle{Anchor: AnchorEnd})
	term.Text(Pt(0, 7), "clipped", TextStyle{})

	assert.Equal(t, "\nlow\n      high\n", term.Plain())
	assert.Equal(t, color.Black, term.bg[0][3])
	assert.Nil(t, term.bg[0][4])
	assert.Equal(t, 3, strings.Count(term.String(), "\n"))
}

func TestEvenOdd(t *testing.T) {
	// A square with a square hole.
	rings := [][]Point{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		{{3, 3}, {7, 3}, {7, 7}, {3, 7}},
	}
	for _, test := range []struct {
		p    Point
		want bool
	}{
		{Pt(1, 1), true},
		{Pt(5, 5), false},
		{Pt(8, 5), true},
		{Pt(11, 5), false},
	} {
		assert.Equal(t, test.want, evenOdd(rings, test.p), "evenOdd(%v)", test.p)
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal is a Surface made of character cells, for previewing
// legends and small maps in a terminal. One unit is one cell. Shapes
// paint the background of every cell whose center they cover; lines
// are not drawn.
type Terminal struct {
	cols, rows int
	bg         [][]color.Color
	fg         [][]color.Color
	text       [][]rune
}

// NewTerminal returns an empty cols x rows Terminal.
func NewTerminal(cols, rows int) *Terminal {
	t := &Terminal{cols: cols, rows: rows}
	t.bg = make([][]color.Color, rows)
	t.fg = make([][]color.Color, rows)
	t.text = make([][]rune, rows)
	for y := 0; y < rows; y++ {
		t.bg[y] = make([]color.Color, cols)
		t.fg[y] = make([]color.Color, cols)
		t.text[y] = []rune(strings.Repeat(" ", cols))
	}
	return t
}

func (t *Terminal) Bounds() Rect {
	return R(0, 0, float64(t.cols), float64(t.rows))
}

func (t *Terminal) Polygon(rings [][]Point, st Style) {
	if st.Fill == nil {
		return
	}
	for y := 0; y < t.rows; y++ {
		for x := 0; x < t.cols; x++ {
			if evenOdd(rings, Point{float64(x) + 0.5, float64(y) + 0.5}) {
				t.bg[y][x] = st.Fill
			}
		}
	}
}

func (t *Terminal) Rect(r Rect, st Style) {
	if st.Fill == nil {
		return
	}
	for y := 0; y < t.rows; y++ {
		cy := float64(y) + 0.5
		if cy < r.Min.Y || cy >= r.Max.Y {
			continue
		}
		for x := 0; x < t.cols; x++ {
			cx := float64(x) + 0.5
			if cx >= r.Min.X && cx < r.Max.X {
				t.bg[y][x] = st.Fill
			}
		}
	}
}

func (t *Terminal) Line(a, b Point, stroke color.Color, width float64) {}

// Text writes s into the row containing p, clipped to the surface.
func (t *Terminal) Text(p Point, s string, ts TextStyle) {
	y := int(math.Floor(p.Y))
	if y < 0 || y >= t.rows {
		return
	}
	rs := []rune(s)
	x := int(math.Round(p.X))
	switch ts.Anchor {
	case AnchorMiddle:
		x -= len(rs) / 2
	case AnchorEnd:
		x -= len(rs)
	}
	for i, r := range rs {
		if cx := x + i; cx >= 0 && cx < t.cols {
			t.text[y][cx] = r
			t.fg[y][cx] = ts.Color
		}
	}
}

// String renders the cells as lines of text with ANSI colors, as far
// as the output supports them.
func (t *Terminal) String() string {
	var b strings.Builder
	for y := 0; y < t.rows; y++ {
		line := make([]string, t.cols)
		for x := 0; x < t.cols; x++ {
			st := lipgloss.NewStyle()
			if c := t.bg[y][x]; c != nil {
				st = st.Background(lipgloss.Color(svgColor(c)))
			}
			if c := t.fg[y][x]; c != nil {
				st = st.Foreground(lipgloss.Color(svgColor(c)))
			}
			line[x] = st.Render(string(t.text[y][x]))
		}
		b.WriteString(strings.TrimRight(strings.Join(line, ""), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Plain returns the text content of the cells without colors.
func (t *Terminal) Plain() string {
	var b strings.Builder
	for y := 0; y < t.rows; y++ {
		b.WriteString(strings.TrimRight(string(t.text[y]), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// evenOdd reports whether p is inside rings under the even-odd rule.
func evenOdd(rings [][]Point, p Point) bool {
	in := false
	for _, ring := range rings {
		for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
			a, b := ring[i], ring[j]
			if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
				in = !in
			}
		}
	}
	return in
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "image/color"

// Recorder is a Surface that records drawing operations instead of
// painting them. It is useful for inspecting what a map or legend
// would draw.
type Recorder struct {
	Size Rect
	Ops  []Op
}

// An Op is one recorded drawing operation. Kind is "polygon", "rect",
// "line" or "text"; the remaining fields are set as appropriate.
type Op struct {
	Kind   string
	Rings  [][]Point
	Rect   Rect
	Style  Style
	Text   string
	At     Point
	TStyle TextStyle
}

// NewRecorder returns a Recorder with the given bounds.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Size: R(0, 0, width, height)}
}

func (r *Recorder) Bounds() Rect { return r.Size }

func (r *Recorder) Polygon(rings [][]Point, st Style) {
	r.Ops = append(r.Ops, Op{Kind: "polygon", Rings: rings, Style: st})
}

func (r *Recorder) Rect(rect Rect, st Style) {
	r.Ops = append(r.Ops, Op{Kind: "rect", Rect: rect, Style: st})
}

func (r *Recorder) Line(a, b Point, stroke color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: "line", Rings: [][]Point{{a, b}}, Style: Style{Stroke: stroke, StrokeWidth: width}})
}

func (r *Recorder) Text(p Point, s string, ts TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: "text", Text: s, At: p, TStyle: ts})
}

// Filter returns the recorded operations of the given kind.
func (r *Recorder) Filter(kind string) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/ajstarks/svgo"
)

// SVG is a Surface that writes an SVG document.
type SVG struct {
	canvas *svg.SVG
	w, h   int
}

// NewSVG starts a width x height SVG document on w. The document is
// complete once Close is called.
func NewSVG(w io.Writer, width, height int) *SVG {
	canvas := svg.New(w)
	canvas.Start(width, height, `font-family="Helvetica,Arial,sans-serif"`)
	return &SVG{canvas, width, height}
}

// Close finishes the document.
func (s *SVG) Close() error {
	s.canvas.End()
	return nil
}

func (s *SVG) Bounds() Rect {
	return R(0, 0, float64(s.w), float64(s.h))
}

func (s *SVG) Polygon(rings [][]Point, st Style) {
	var d strings.Builder
	for _, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		for i, p := range ring {
			if i == 0 {
				fmt.Fprintf(&d, "M%.6g %.6g", p.X, p.Y)
			} else {
				fmt.Fprintf(&d, "L%.6g %.6g", p.X, p.Y)
			}
		}
		d.WriteString("Z")
	}
	if d.Len() == 0 {
		return
	}
	s.canvas.Path(d.String(), svgStyle(st)+";fill-rule:evenodd")
}

func (s *SVG) Rect(r Rect, st Style) {
	d := fmt.Sprintf("M%.6g %.6gH%.6gV%.6gH%.6gZ", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, r.Min.X)
	s.canvas.Path(d, svgStyle(st))
}

func (s *SVG) Line(a, b Point, stroke color.Color, width float64) {
	d := fmt.Sprintf("M%.6g %.6gL%.6g %.6g", a.X, a.Y, b.X, b.Y)
	s.canvas.Path(d, svgStyle(Style{Stroke: stroke, StrokeWidth: width}))
}

func (s *SVG) Text(p Point, str string, ts TextStyle) {
	anchor := "start"
	switch ts.Anchor {
	case AnchorMiddle:
		anchor = "middle"
	case AnchorEnd:
		anchor = "end"
	}
	style := fmt.Sprintf("font-size:%.6gpx;text-anchor:%s;fill:%s", textSize(ts), anchor, svgColor(textColor(ts)))
	s.canvas.Text(int(math.Round(p.X)), int(math.Round(p.Y)), str, style)
}

func svgStyle(st Style) string {
	var parts []string
	if st.Fill == nil {
		parts = append(parts, "fill:none")
	} else {
		parts = append(parts, "fill:"+svgColor(st.Fill))
		if a := alpha(st.Fill); a < 1 {
			parts = append(parts, fmt.Sprintf("fill-opacity:%.3g", a))
		}
	}
	if st.Stroke != nil && st.StrokeWidth > 0 {
		parts = append(parts, "stroke:"+svgColor(st.Stroke), fmt.Sprintf("stroke-width:%.3g", st.StrokeWidth))
	}
	return strings.Join(parts, ";")
}

func svgColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func alpha(c color.Color) float64 {
	_, _, _, a := c.RGBA()
	return float64(a) / 0xffff
}

func textSize(ts TextStyle) float64 {
	if ts.Size <= 0 {
		return 10
	}
	return ts.Size
}

func textColor(ts TextStyle) color.Color {
	if ts.Color == nil {
		return color.Black
	}
	return ts.Color
}

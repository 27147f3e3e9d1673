// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/scale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/torontoviz/go-toronto/render"
)

// Placement is the side of the legend frame the colorbar is drawn
// against.
type Placement int

const (
	Right Placement = iota
	Left
	Top
	Bottom
)

var placementNames = []string{"right", "left", "top", "bottom"}

func (p Placement) String() string {
	if p < 0 || int(p) >= len(placementNames) {
		return fmt.Sprintf("Placement(%d)", int(p))
	}
	return placementNames[p]
}

// ParsePlacement parses "right", "left", "top" or "bottom".
func ParsePlacement(s string) (Placement, error) {
	for i, name := range placementNames {
		if strings.EqualFold(s, name) {
			return Placement(i), nil
		}
	}
	return 0, fmt.Errorf("cmap: unknown placement %q: %w", s, ErrInvalidArgument)
}

func (p Placement) vertical() bool {
	return p == Right || p == Left
}

// LegendOptions controls how a colorbar legend is laid out.
type LegendOptions struct {
	// Frame is the region the legend is drawn in. The zero Rect
	// means the whole surface.
	Frame render.Rect

	// Placement selects the orientation of the bar and which side
	// of it the labels go on. Right and Left give a vertical bar
	// with labels on that side; Top and Bottom a horizontal one.
	Placement Placement

	// Shrink scales the length of the bar relative to the frame.
	// It must be in (0, 1]; 0 means 1.
	Shrink float64

	// Format is the number format of the default tick labels,
	// which are the bin indices. The empty string prints plain
	// integers.
	Format string

	// FontSize is the tick label size. 0 means 10.
	FontSize float64

	// Title is drawn beside the bar if non-empty.
	Title string
}

// DefaultFormat is the number format used by FormatLabels when none is
// given.
const DefaultFormat = "%.1f"

// FormatLabels formats values for use as legend labels. Numbers are
// formatted for English with digit grouping, so 1234567 with "%.0f"
// becomes "1,234,567".
func FormatLabels(values []float64, format string) []string {
	if format == "" {
		format = DefaultFormat
	}
	p := message.NewPrinter(language.English)
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = p.Sprintf(format, v)
	}
	return labels
}

// A Colorbar is a legend for a discretized gradient. It has one tick
// per bin.
//
// The bar spans values [VMin, VMax] = [-0.5, n+0.5] and the n ticks
// sit at n evenly spaced values from 0 to n, which keeps every tick
// inside its bin.
type Colorbar struct {
	Gradient   *Stepped
	VMin, VMax float64
	Ticks      []float64
	TickLabels []string

	// Bar is the rectangle of the bar itself, set by Draw.
	Bar render.Rect

	opts LegendOptions
}

// NewColorbar prepares a colorbar for g discretized into n bins,
// without drawing it.
//
// If labels is nil the ticks are labeled 0 through n-1, formatted with
// opts.Format. Otherwise labels must have exactly n elements, which
// label the bins in order.
func NewColorbar(n int, g palette.Continuous, labels []string, opts LegendOptions) (*Colorbar, error) {
	st, err := Discretize(g, n)
	if err != nil {
		return nil, err
	}
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
		if opts.Format != "" {
			idx := make([]float64, n)
			for i := range idx {
				idx[i] = float64(i)
			}
			labels = FormatLabels(idx, opts.Format)
		}
	} else if len(labels) != n {
		return nil, fmt.Errorf("cmap: %d labels for %d bins: %w", len(labels), n, ErrInvalidArgument)
	} else {
		labels = append([]string(nil), labels...)
	}
	if opts.Shrink == 0 {
		opts.Shrink = 1
	} else if opts.Shrink < 0 || opts.Shrink > 1 {
		return nil, fmt.Errorf("cmap: shrink %g not in (0, 1]: %w", opts.Shrink, ErrInvalidArgument)
	}
	if opts.Placement < Right || opts.Placement > Bottom {
		return nil, fmt.Errorf("cmap: %v: %w", opts.Placement, ErrInvalidArgument)
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 10
	}
	return &Colorbar{
		Gradient:   st,
		VMin:       -0.5,
		VMax:       float64(n) + 0.5,
		Ticks:      linspace(0, float64(n), n),
		TickLabels: labels,
		opts:       opts,
	}, nil
}

// RenderLegend draws a colorbar legend for g discretized into n bins
// on s and returns it. See NewColorbar for the meaning of labels.
//
// On error nothing is drawn.
func RenderLegend(s render.Surface, n int, g palette.Continuous, labels []string, opts LegendOptions) (*Colorbar, error) {
	cb, err := NewColorbar(n, g, labels, opts)
	if err != nil {
		return nil, err
	}
	cb.Draw(s)
	return cb, nil
}

// SetTickLabelSize changes the tick label font size for subsequent
// calls to Draw.
func (cb *Colorbar) SetTickLabelSize(size float64) {
	if size > 0 {
		cb.opts.FontSize = size
	}
}

// SetTitle changes the title for subsequent calls to Draw.
func (cb *Colorbar) SetTitle(title string) {
	cb.opts.Title = title
}

// Options returns the layout options of cb, with defaults filled in.
func (cb *Colorbar) Options() LegendOptions {
	return cb.opts
}

// frac returns the position of value v along the bar, from 0 at VMin
// to 1 at VMax.
func (cb *Colorbar) frac(v float64) float64 {
	return scale.Linear{Min: cb.VMin, Max: cb.VMax}.Map(v)
}

// layout computes the bar rectangle within frame.
func (cb *Colorbar) layout(frame render.Rect) render.Rect {
	o := cb.opts
	if o.Placement.vertical() {
		length := frame.Dy() * o.Shrink
		thick := length / 20
		y0 := frame.Min.Y + (frame.Dy()-length)/2
		x0 := frame.Min.X + thick
		if o.Placement == Left {
			x0 = frame.Max.X - 2*thick
		}
		return render.R(x0, y0, x0+thick, y0+length)
	}
	length := frame.Dx() * o.Shrink
	thick := length / 20
	x0 := frame.Min.X + (frame.Dx()-length)/2
	y0 := frame.Min.Y + thick
	if o.Placement == Top {
		y0 = frame.Max.Y - 2*thick
	}
	return render.R(x0, y0, x0+length, y0+thick)
}

// along returns the rectangle covering bar fractions [lo, hi].
func (cb *Colorbar) along(lo, hi float64) render.Rect {
	b := cb.Bar
	if cb.opts.Placement.vertical() {
		// Values increase upward.
		return render.R(b.Min.X, b.Max.Y-hi*b.Dy(), b.Max.X, b.Max.Y-lo*b.Dy())
	}
	return render.R(b.Min.X+lo*b.Dx(), b.Min.Y, b.Min.X+hi*b.Dx(), b.Max.Y)
}

// Draw draws the colorbar on s.
func (cb *Colorbar) Draw(s render.Surface) {
	frame := cb.opts.Frame
	if frame.Empty() {
		frame = s.Bounds()
	}
	cb.Bar = cb.layout(frame)
	b := cb.Bar

	for _, run := range cb.Gradient.Runs() {
		s.Rect(cb.along(run.Lo, run.Hi), render.Style{Fill: run.Color})
	}
	s.Rect(b, render.Style{Stroke: color.Black, StrokeWidth: 1})

	size := cb.opts.FontSize
	tick := size / 2
	ts := render.TextStyle{Size: size, Color: color.Black}
	for i, v := range cb.Ticks {
		f := cb.frac(v)
		var from, to, at render.Point
		switch cb.opts.Placement {
		case Right:
			y := b.Max.Y - f*b.Dy()
			from, to = render.Pt(b.Max.X, y), render.Pt(b.Max.X+tick, y)
			at = render.Pt(b.Max.X+tick*1.5, y+size*0.35)
			ts.Anchor = render.AnchorStart
		case Left:
			y := b.Max.Y - f*b.Dy()
			from, to = render.Pt(b.Min.X, y), render.Pt(b.Min.X-tick, y)
			at = render.Pt(b.Min.X-tick*1.5, y+size*0.35)
			ts.Anchor = render.AnchorEnd
		case Top:
			x := b.Min.X + f*b.Dx()
			from, to = render.Pt(x, b.Min.Y), render.Pt(x, b.Min.Y-tick)
			at = render.Pt(x, b.Min.Y-tick*1.5)
			ts.Anchor = render.AnchorMiddle
		case Bottom:
			x := b.Min.X + f*b.Dx()
			from, to = render.Pt(x, b.Max.Y), render.Pt(x, b.Max.Y+tick)
			at = render.Pt(x, b.Max.Y+tick*1.5+size)
			ts.Anchor = render.AnchorMiddle
		}
		s.Line(from, to, color.Black, 1)
		s.Text(at, cb.TickLabels[i], ts)
	}

	if cb.opts.Title == "" {
		return
	}
	title := render.TextStyle{Size: size * 1.2, Color: color.Black, Anchor: render.AnchorMiddle}
	if cb.opts.Placement.vertical() {
		s.Text(render.Pt((b.Min.X+b.Max.X)/2, b.Min.Y-size), cb.opts.Title, title)
	} else if cb.opts.Placement == Top {
		s.Text(render.Pt((b.Min.X+b.Max.X)/2, b.Max.Y+size*1.5), cb.opts.Title, title)
	} else {
		s.Text(render.Pt((b.Min.X+b.Max.X)/2, b.Min.Y-size/2), cb.opts.Title, title)
	}
}

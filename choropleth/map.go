// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package choropleth composes geographic layers into a map figure.
//
// A map has outline layers, whose shapes are drawn as borders, fill
// layers, whose shapes are painted one color, and value layers, whose
// shapes are shaded by a numeric attribute through a color gradient.
// A value layer with a bin count also gets a colorbar legend.
package choropleth

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
	"go.uber.org/zap"

	"github.com/torontoviz/go-toronto/cmap"
	"github.com/torontoviz/go-toronto/geo"
	"github.com/torontoviz/go-toronto/render"
)

// Map is a map figure under construction.
type Map struct {
	Title  string
	Bounds geo.Bounds
	Layers []*Layer

	// Logger receives progress and data warnings. New sets it to
	// a no-op logger.
	Logger *zap.Logger
}

// A Layer is a geo.Layer with its drawing style resolved.
type Layer struct {
	Spec LayerSpec
	Data *geo.Layer

	fill, edge color.Color

	// Value layers only.
	values     []float64
	vmin, vmax float64
	gradient   palette.Continuous
	stepped    *cmap.Stepped
}

// New returns an empty map of the area b.
func New(title string, b geo.Bounds) *Map {
	return &Map{Title: title, Bounds: b, Logger: zap.NewNop()}
}

// Load builds the map described by cfg, reading shapefiles relative to
// dir.
func Load(cfg *Config, dir string, logger *zap.Logger) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, _ := cfg.GeoBounds()
	m := New(cfg.Title, b)
	if logger != nil {
		m.Logger = logger
	}
	for _, spec := range cfg.Layers {
		path := spec.Shapefile
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		data, err := geo.LoadLayer(path)
		if err != nil {
			return nil, err
		}
		m.Logger.Info("loaded layer", zap.String("layer", spec.Name), zap.String("path", path), zap.Int("features", len(data.Features)))
		if _, err := m.Add(spec, data); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Add adds a layer drawn from data in the style of spec.
func (m *Map) Add(spec LayerSpec, data *geo.Layer) (*Layer, error) {
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("layer %q: %w", spec.Name, err)
	}
	l := &Layer{Spec: spec, Data: data}
	l.fill, _ = ParseColor(spec.Color)
	l.edge, _ = ParseColor(spec.EdgeColor)
	if spec.Kind == Outline {
		l.edge, l.fill = l.fill, nil
		if l.edge == nil {
			l.edge = color.Black
		}
	}
	if spec.Kind == Values {
		if err := l.setValues(m.Logger); err != nil {
			return nil, fmt.Errorf("layer %q: %w", spec.Name, err)
		}
	}
	m.Layers = append(m.Layers, l)
	return l, nil
}

func (l *Layer) setValues(logger *zap.Logger) error {
	vals, err := l.Data.Float(l.Spec.Field)
	if err != nil {
		return err
	}
	name := l.Spec.Cmap
	if name == "" {
		name = cmap.Reds.String()
	}
	if l.gradient, err = cmap.Lookup(name); err != nil {
		return err
	}
	if l.Spec.Bins > 0 {
		if l.stepped, err = cmap.Discretize(l.gradient, l.Spec.Bins); err != nil {
			return err
		}
	}

	var finite []float64
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if missing := len(vals) - len(finite); missing > 0 {
		logger.Warn("features without a value", zap.String("layer", l.Spec.Name), zap.String("field", l.Spec.Field), zap.Int("count", missing))
	}
	if len(finite) > 0 {
		l.vmin, l.vmax = stats.Bounds(finite)
	}
	l.values = vals
	return nil
}

// Range returns the smallest and largest value of a value layer.
func (l *Layer) Range() (lo, hi float64) {
	return l.vmin, l.vmax
}

// Norm maps v to [0, 1] relative to the layer's range. If every value
// is the same, Norm returns 0, the low end of the gradient.
func (l *Layer) Norm(v float64) float64 {
	if l.vmin == l.vmax {
		return 0
	}
	return scale.Linear{Min: l.vmin, Max: l.vmax}.Map(v)
}

// FeatureColor returns the fill color of feature i, or nil if it is
// not filled.
func (l *Layer) FeatureColor(i int) color.Color {
	if l.Spec.Kind != Values {
		return l.fill
	}
	v := l.values[i]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	x := l.Norm(v)
	if l.stepped != nil {
		return l.stepped.Map(x)
	}
	return l.gradient.Map(x)
}

// LegendLabels returns the lower edge of each bin of a binned value
// layer, formatted for the legend.
func (l *Layer) LegendLabels() []string {
	n := l.Spec.Bins
	if n <= 0 {
		return nil
	}
	edges := make([]float64, n)
	for i := range edges {
		edges[i] = l.vmin + float64(i)*(l.vmax-l.vmin)/float64(n)
	}
	return cmap.FormatLabels(edges, l.Spec.Format)
}

// legend returns the first binned value layer, if any.
func (m *Map) legend() *Layer {
	for _, l := range m.Layers {
		if l.Spec.Kind == Values && l.Spec.Bins > 0 {
			return l
		}
	}
	return nil
}

// sorted returns the layers in drawing order.
func (m *Map) sorted() []*Layer {
	ls := append([]*Layer(nil), m.Layers...)
	sort.SliceStable(ls, func(i, j int) bool {
		return ls[i].Spec.ZOrder < ls[j].Spec.ZOrder
	})
	return ls
}

const titleSize = 13

// Draw draws the map on s, filling its bounds.
func (m *Map) Draw(s render.Surface) error {
	frame := s.Bounds()
	if frame.Empty() {
		return fmt.Errorf("empty surface")
	}
	s.Rect(frame, render.Style{Fill: color.White})

	top := frame.Min.Y + 5
	if m.Title != "" {
		ts := render.TextStyle{Size: titleSize, Color: color.Black, Anchor: render.AnchorMiddle}
		cx := (frame.Min.X + frame.Max.X) / 2
		for _, line := range strings.Split(m.Title, "\n") {
			top += titleSize * 1.4
			s.Text(render.Pt(cx, top), line, ts)
		}
		top += titleSize
	}
	mapFrame := render.R(frame.Min.X+5, top, frame.Max.X-5, frame.Max.Y-5)

	leg := m.legend()
	var legendFrame render.Rect
	if leg != nil {
		w := math.Min(120, mapFrame.Dx()*0.2)
		legendFrame = render.R(mapFrame.Max.X-w, mapFrame.Min.Y, mapFrame.Max.X, mapFrame.Max.Y)
		mapFrame.Max.X -= w
	}

	proj := geo.NewProjection(m.Bounds, mapFrame)
	s.Rect(proj.Area(), render.Style{Fill: color.White, Stroke: color.Black, StrokeWidth: 1})

	for _, l := range m.sorted() {
		m.Logger.Debug("drawing layer", zap.String("layer", l.Spec.Name), zap.Int("zorder", l.Spec.ZOrder))
		for i, f := range l.Data.Features {
			if len(f.Rings) == 0 {
				continue
			}
			st := render.Style{Fill: l.FeatureColor(i), Stroke: l.edge, StrokeWidth: l.Spec.LineWidth}
			if st.Stroke != nil && st.StrokeWidth <= 0 {
				st.StrokeWidth = 1
			}
			if st.Fill == nil && st.Stroke == nil {
				continue
			}
			s.Polygon(proj.Rings(f), st)
		}
	}

	if leg != nil {
		opts := cmap.LegendOptions{Frame: legendFrame, Shrink: 0.8, Title: leg.Spec.Field}
		if _, err := cmap.RenderLegend(s, leg.Spec.Bins, leg.gradient, leg.LegendLabels(), opts); err != nil {
			return fmt.Errorf("legend for %q: %w", leg.Spec.Name, err)
		}
	}
	return nil
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package budget

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/torontoviz/go-toronto/choropleth"
	"github.com/torontoviz/go-toronto/geo"
)

// Table returns the yearly budgets of every ward with a valid total as
// a table with columns "ward", "name", "year" and "budget".
func (f *Forecast) Table() *table.Table {
	var (
		wards  []int
		names  []string
		years  []int
		budget []float64
	)
	for _, w := range f.Wards() {
		for _, y := range f.Years() {
			v, ok := f.Budget[y][w]
			if !ok {
				continue
			}
			wards = append(wards, w)
			names = append(names, fmt.Sprintf("%d %s", w, f.Names[w]))
			years = append(years, y)
			budget = append(budget, v)
		}
	}
	return table.NewBuilder(nil).
		Add("ward", wards).
		Add("name", names).
		Add("year", years).
		Add("budget", budget).
		Done()
}

// WriteTable prints the yearly budgets of every ward to w.
func (f *Forecast) WriteTable(w io.Writer) {
	table.Fprint(w, f.Table())
}

// WriteChart writes an SVG line chart of the yearly budget of each
// ward to w.
func (f *Forecast) WriteChart(w io.Writer, width, height int) error {
	if len(f.Total) == 0 {
		return fmt.Errorf("no ward totals to chart")
	}
	p := gg.NewPlot(f.Table())
	p.Add(gg.LayerLines{X: "year", Y: "budget", Color: "name"})
	p.Add(gg.Title(fmt.Sprintf("Capital budget forecast per ward, %d-%d", FirstYear, LastYear)))
	return p.WriteSVG(w, width, height)
}

// TotalField is the attribute Plot adds to ward features for their
// ten-year budget.
const TotalField = "budget_tot"

// PlotOptions configures Plot.
type PlotOptions struct {
	// WardField is the ward layer attribute holding the ward
	// number.
	WardField string

	// Cmap is the gradient name and Bins the number of legend
	// bins.
	Cmap string
	Bins int

	// Bounds is the map extent.
	Bounds geo.Bounds
}

// Plot returns a map of wards shaded by ten-year budget. wards is the
// city ward layer; features are matched to budgets through
// opts.WardField. Wards without a budget are outlined only.
func (f *Forecast) Plot(wards *geo.Layer, opts PlotOptions) (*choropleth.Map, error) {
	if !wards.HasField(opts.WardField) {
		return nil, fmt.Errorf("ward layer %s has no field %q", wards.Name, opts.WardField)
	}
	shaded := &geo.Layer{
		Name:     wards.Name,
		Fields:   append(append([]string(nil), wards.Fields...), TotalField),
		Features: make([]geo.Feature, len(wards.Features)),
	}
	matched := 0
	for i, feat := range wards.Features {
		attrs := make(map[string]string, len(feat.Attrs)+1)
		for k, v := range feat.Attrs {
			attrs[k] = v
		}
		attrs[TotalField] = ""
		if n, err := strconv.Atoi(feat.Attrs[opts.WardField]); err == nil {
			if total, ok := f.Total[n]; ok {
				attrs[TotalField] = strconv.FormatFloat(total, 'g', -1, 64)
				matched++
			}
		}
		shaded.Features[i] = geo.Feature{Rings: feat.Rings, Attrs: attrs}
	}
	if matched == 0 {
		return nil, fmt.Errorf("no ward in %s has a budget total", wards.Name)
	}

	m := choropleth.New(fmt.Sprintf("City of Toronto capital budget per ward, %d-%d", FirstYear, LastYear), opts.Bounds)
	m.Logger = f.Logger
	if _, err := m.Add(choropleth.LayerSpec{
		Name:      "ward_budget",
		Kind:      choropleth.Values,
		Field:     TotalField,
		Cmap:      opts.Cmap,
		Bins:      opts.Bins,
		Format:    "%.0f",
		EdgeColor: "k",
		LineWidth: 0.5,
	}, shaded); err != nil {
		return nil, err
	}
	if _, err := m.Add(choropleth.LayerSpec{
		Name:      "city_wards",
		Kind:      choropleth.Outline,
		Color:     "green",
		LineWidth: 0.5,
		ZOrder:    1,
	}, wards); err != nil {
		return nil, err
	}
	return m, nil
}

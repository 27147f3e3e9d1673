// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package budget extracts the City of Toronto ten-year capital budget
// forecast per city ward from the city's budget spreadsheet.
//
// The spreadsheet lists budgets per project, grouped by ward. Each
// ward ends with a total row whose first cell reads
// "<ward name>-<ward number> Total", followed by empty project and
// sub-project cells, one budget per year and a ten-year total:
//
//	col 0      ward label, e.g. "Etobicoke North-1 Total"
//	col 1, 2   project and sub-project name, empty
//	col 3-7    budgets for 2015 through 2019
//	col 8      five-year subtotal, ignored
//	col 9-     budgets for 2020 onwards
//	last col   ten-year total
//
// Only ward total rows are extracted; every other row is ignored.
package budget

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// FirstYear is the year of the first budget column.
	FirstYear = 2015
	// LastYear is the last year of the forecast.
	LastYear = 2025
)

const (
	firstYearCol = 3
	subtotalCol  = firstYearCol + 5
	minRowLen    = subtotalCol + 2
)

var wardTotal = regexp.MustCompile(`^(?P<ward_name>.*)-(?P<ward_number>[0-9][0-9]*) Total$`)

// Forecast is the budget forecast per ward.
type Forecast struct {
	// Budget[year][ward] is the budget of ward for year.
	Budget map[int]map[int]float64

	// Total[ward] is the ten-year budget of ward. Wards whose
	// total row did not add up are missing.
	Total map[int]float64

	// Names[ward] is the ward name.
	Names map[int]string

	// Logger receives progress and data warnings. NewForecast sets
	// it to a no-op logger.
	Logger *zap.Logger
}

// NewForecast returns an empty forecast.
func NewForecast() *Forecast {
	f := &Forecast{
		Budget: make(map[int]map[int]float64),
		Total:  make(map[int]float64),
		Names:  make(map[int]string),
		Logger: zap.NewNop(),
	}
	for year := FirstYear; year <= LastYear; year++ {
		f.Budget[year] = make(map[int]float64)
	}
	return f
}

// ParseRows extracts the ward totals from the cell text of a sheet.
// Rows shorter than the longest row are padded with empty cells.
func (f *Forecast) ParseRows(rows [][]string) {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range rows {
		if len(row) < width {
			row = append(row[:len(row):len(row)], make([]string, width-len(row))...)
		}
		f.parseRow(i, row)
	}
}

func (f *Forecast) parseRow(i int, row []string) {
	if len(row) == 0 {
		return
	}
	m := wardTotal.FindStringSubmatch(row[0])
	if m == nil {
		return
	}
	name := m[wardTotal.SubexpIndex("ward_name")]
	ward, err := strconv.Atoi(m[wardTotal.SubexpIndex("ward_number")])
	if err != nil {
		f.Logger.Warn("bad ward number", zap.Int("row", i+1), zap.Error(err))
		return
	}
	log := f.Logger.With(zap.Int("row", i+1), zap.Int("ward", ward), zap.String("name", name))
	if len(row) < minRowLen {
		log.Warn("ward total row is too short", zap.Int("cells", len(row)))
		return
	}
	if project, sub := row[1], row[2]; project != "" || sub != "" {
		log.Warn("ward total row has project names", zap.String("project", project), zap.String("subproject", sub))
		return
	}
	log.Info("processing budget totals")
	f.Names[ward] = name

	last := len(row) - 1
	year := FirstYear
	sum := 0.0
	for col := firstYearCol; col < last; col++ {
		if col == subtotalCol {
			continue
		}
		v := cellValue(row[col])
		if f.Budget[year] == nil {
			f.Budget[year] = make(map[int]float64)
		}
		f.Budget[year][ward] = v
		sum += v
		year++
	}

	total := cellValue(row[last])
	if !closeEnough(total, sum) {
		log.Warn("ward total does not match the yearly budgets",
			zap.Float64("total", total), zap.Float64("sum", sum), zap.Float64("diff", total-sum))
		return
	}
	f.Total[ward] = sum
}

// cellValue returns the number in a cell, or 0 if it does not hold a
// number.
func cellValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// closeEnough reports whether an explicit total and a computed sum
// agree up to floating-point rounding of the sum.
func closeEnough(total, sum float64) bool {
	return math.Abs(total-sum) <= 1e-9*math.Max(1, math.Abs(total))
}

// Wards returns the wards with a valid total, in increasing order.
func (f *Forecast) Wards() []int {
	wards := make([]int, 0, len(f.Total))
	for w := range f.Total {
		wards = append(wards, w)
	}
	sort.Ints(wards)
	return wards
}

// Years returns the years of the forecast, in increasing order.
func (f *Forecast) Years() []int {
	years := make([]int, 0, len(f.Budget))
	for y := range f.Budget {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

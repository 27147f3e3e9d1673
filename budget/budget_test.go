// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package budget

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/torontoviz/go-toronto/geo"
	"github.com/torontoviz/go-toronto/render"
)

// totalRow returns a ward total row with budgets 1 through 11 for
// 2015 through 2025 and the given ten-year total.
func totalRow(label, project string, total string) []string {
	row := []string{label, project, ""}
	for y := 1; y <= 5; y++ {
		row = append(row, strconv.Itoa(y))
	}
	row = append(row, "15")
	for y := 6; y <= 11; y++ {
		row = append(row, strconv.Itoa(y))
	}
	return append(row, total)
}

func testRows() [][]string {
	nonNumeric := totalRow("York South-Weston-4 Total", "", "60")
	nonNumeric[8] = "n/a" // subtotal, ignored
	nonNumeric[9] = "TBD" // 2020, counts as 0
	return [][]string{
		{"Ward", "Project Name", "Sub-project Name", "2015"},
		{"Etobicoke North-1 Total extra"},
		totalRow("Bridge rehab", "Roads", "66"),
		totalRow("Etobicoke North-1 Total", "", "66"),
		totalRow("Etobicoke Centre-2 Total", "Park X", "66"),
		totalRow("Etobicoke-Lakeshore-3 Total", "", "100"),
		nonNumeric,
		{"Scarborough East-5 Total", "", "", "0"},
	}
}

func TestParseRows(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	f := NewForecast()
	f.Logger = zap.New(core)
	f.ParseRows(testRows())

	want := map[int]float64{1: 66, 4: 60, 5: 0}
	if diff := cmp.Diff(want, f.Total); diff != "" {
		t.Errorf("totals (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{1, 4, 5}, f.Wards())

	assert.Equal(t, 1.0, f.Budget[2015][1])
	assert.Equal(t, 5.0, f.Budget[2019][1])
	assert.Equal(t, 6.0, f.Budget[2020][1], "subtotal column is skipped")
	assert.Equal(t, 11.0, f.Budget[2025][1])
	assert.Equal(t, 0.0, f.Budget[2020][4])

	// A mismatched total drops the ward from Total but keeps its
	// yearly budgets.
	assert.Equal(t, 1.0, f.Budget[2015][3])

	// Rows with project names are not processed at all.
	_, ok := f.Budget[2015][2]
	assert.False(t, ok)
	_, ok = f.Names[2]
	assert.False(t, ok)

	assert.Equal(t, "Etobicoke North", f.Names[1])
	assert.Equal(t, "Etobicoke-Lakeshore", f.Names[3])

	years := f.Years()
	assert.Equal(t, FirstYear, years[0])
	assert.Equal(t, LastYear, years[len(years)-1])

	assert.Equal(t, 1, logs.FilterMessage("ward total row has project names").Len())
	assert.Equal(t, 1, logs.FilterMessage("ward total does not match the yearly budgets").Len())
	assert.Equal(t, 4, logs.FilterMessage("processing budget totals").Len())
}

func TestParseRowsShort(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	f := NewForecast()
	f.Logger = zap.New(core)
	f.ParseRows([][]string{{"Davenport-18 Total", "", "", "1", "2"}})
	assert.Empty(t, f.Total)
	assert.Equal(t, 1, logs.FilterMessage("ward total row is too short").Len())
}

func TestParseRowsWhitespace(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	f := NewForecast()
	f.Logger = zap.New(core)
	f.ParseRows([][]string{
		// Labels are matched exactly.
		totalRow("Davenport-18 Total ", "", "66"),
		// A blank-looking project cell still names a project.
		totalRow("Spadina-Fort York-20 Total", " ", "66"),
	})
	assert.Empty(t, f.Total)
	assert.Empty(t, f.Names)
	assert.Equal(t, 1, logs.FilterMessage("ward total row has project names").Len())
}

func TestCellValue(t *testing.T) {
	for _, test := range []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{" 7 ", 7},
		{"", 0},
		{"n/a", 0},
		{"NaN", 0},
		{"1e3", 1000},
	} {
		if got := cellValue(test.in); got != test.want {
			t.Errorf("cellValue(%q) = %g, want %g", test.in, got, test.want)
		}
	}
}

func TestCloseEnough(t *testing.T) {
	assert.True(t, closeEnough(0.3, 0.1+0.2))
	assert.True(t, closeEnough(66, 66))
	assert.False(t, closeEnough(66, 65.99))
	assert.False(t, closeEnough(1e9, 1e9+10))
}

// writeWorkbook writes rows to the first sheet of a new workbook.
// Cells that parse as numbers are stored as numbers.
func writeWorkbook(t *testing.T, path string, rows [][]string) {
	t.Helper()
	wb := excelize.NewFile()
	defer wb.Close()
	sheet := wb.GetSheetList()[0]
	for r, row := range rows {
		cells := make([]interface{}, len(row))
		for i, s := range row {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				cells[i] = v
			} else {
				cells[i] = s
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow(sheet, cell, &cells))
	}
	require.NoError(t, wb.SaveAs(path))
}

func TestReadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget_per_city_ward.xlsx")
	writeWorkbook(t, path, testRows())

	f := NewForecast()
	require.NoError(t, f.ReadWorkbook(path))
	want := map[int]float64{1: 66, 4: 60, 5: 0}
	if diff := cmp.Diff(want, f.Total); diff != "" {
		t.Errorf("totals (-want +got):\n%s", diff)
	}
	assert.Equal(t, 11.0, f.Budget[2025][1])

	assert.Error(t, f.ReadWorkbook(filepath.Join(t.TempDir(), "missing.xlsx")))
}

func TestTable(t *testing.T) {
	f := NewForecast()
	f.ParseRows(testRows())
	tab := f.Table()
	// Eleven years for each of the three wards with totals.
	require.Equal(t, 33, tab.Len())
	assert.Equal(t, 2015, tab.MustColumn("year").([]int)[0])
	assert.Equal(t, "1 Etobicoke North", tab.MustColumn("name").([]string)[0])

	var buf bytes.Buffer
	f.WriteTable(&buf)
	out := buf.String()
	for _, want := range []string{"ward", "budget", "Etobicoke North", "York South-Weston"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Etobicoke Centre")
}

func TestWriteChart(t *testing.T) {
	f := NewForecast()
	assert.Error(t, f.WriteChart(&bytes.Buffer{}, 400, 300))

	f.ParseRows(testRows())
	var buf bytes.Buffer
	require.NoError(t, f.WriteChart(&buf, 400, 300))
	assert.True(t, strings.Contains(buf.String(), "<svg"))
}

func wardLayer() *geo.Layer {
	l := &geo.Layer{Name: "icitw_wgs84", Fields: []string{"SCODE_NAME", "NAME"}}
	for i, ward := range []string{"1", "4", "7"} {
		x := -79.5 + 0.1*float64(i)
		l.Features = append(l.Features, geo.Feature{
			Rings: [][]geo.LonLat{{{Lon: x, Lat: 43.7}, {Lon: x + 0.1, Lat: 43.7}, {Lon: x + 0.1, Lat: 43.8}, {Lon: x, Lat: 43.8}}},
			Attrs: map[string]string{"SCODE_NAME": ward, "NAME": "Ward " + ward},
		})
	}
	return l
}

func TestPlot(t *testing.T) {
	f := NewForecast()
	f.ParseRows(testRows())
	wards := wardLayer()

	m, err := f.Plot(wards, PlotOptions{WardField: "SCODE_NAME", Cmap: "Blues", Bins: 3, Bounds: geo.TorontoBounds})
	require.NoError(t, err)
	require.Len(t, m.Layers, 2)

	shaded := m.Layers[0]
	lo, hi := shaded.Range()
	assert.Equal(t, 60.0, lo)
	assert.Equal(t, 66.0, hi)
	assert.NotNil(t, shaded.FeatureColor(0))
	assert.NotNil(t, shaded.FeatureColor(1))
	assert.Nil(t, shaded.FeatureColor(2), "ward 7 has no budget")
	assert.Equal(t, []string{"60", "62", "64"}, shaded.LegendLabels())

	// The input layer is not modified.
	_, ok := wards.Features[0].Attrs[TotalField]
	assert.False(t, ok)

	rec := render.NewRecorder(500, 400)
	require.NoError(t, m.Draw(rec))
	assert.Len(t, rec.Filter("polygon"), 6)

	_, err = f.Plot(wards, PlotOptions{WardField: "WARD"})
	assert.Error(t, err)
	_, err = NewForecast().Plot(wards, PlotOptions{WardField: "SCODE_NAME"})
	assert.Error(t, err)
}

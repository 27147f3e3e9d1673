// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/torontoviz/go-toronto/budget"
	"github.com/torontoviz/go-toronto/geo"
	"github.com/torontoviz/go-toronto/render"
)

var cmdBudgetFlags = flag.NewFlagSet(os.Args[0]+" budget", flag.ExitOnError)

var (
	budgetShp       string
	budgetWards     string
	budgetWardField string
	budgetCmap      string
	budgetBins      int
	budgetOut       string
	budgetTable     bool
	budgetChart     bool
)

func init() {
	f := cmdBudgetFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s budget [flags] workbook.xlsx\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&budgetShp, "shp", "shp_dir", "read shapefiles from `dir`")
	f.StringVar(&budgetWards, "wards", "icitw_wgs84", "city ward `shapefile`, relative to -shp")
	f.StringVar(&budgetWardField, "ward-field", "SCODE_NAME", "ward number `attribute` of the ward shapefile")
	f.StringVar(&budgetCmap, "cmap", "YlOrRd", "gradient `name`")
	f.IntVar(&budgetBins, "bins", 6, "number of legend bins")
	f.StringVar(&budgetOut, "o", "", "write output to `file` (default: stdout)")
	f.BoolVar(&budgetTable, "table", false, "print the yearly budgets as a table instead of a map")
	f.BoolVar(&budgetChart, "chart", false, "draw an SVG chart of the yearly budgets instead of a map")
	registerSubcommand("budget", "[flags] workbook.xlsx - map the capital budget per ward", cmdBudget, f)
}

func cmdBudget() {
	if cmdBudgetFlags.NArg() != 1 || budgetTable && budgetChart {
		cmdBudgetFlags.Usage()
		os.Exit(2)
	}

	fc := budget.NewForecast()
	fc.Logger = logger
	if err := fc.ReadWorkbook(cmdBudgetFlags.Arg(0)); err != nil {
		log.Fatal(err)
	}
	if len(fc.Total) == 0 {
		log.Fatal("no ward totals found in ", cmdBudgetFlags.Arg(0))
	}

	if budgetTable || budgetChart {
		f := os.Stdout
		if budgetOut != "" {
			var err error
			f, err = os.Create(budgetOut)
			if err != nil {
				log.Fatal(err)
			}
			defer f.Close()
		}
		if budgetTable {
			fc.WriteTable(f)
			return
		}
		if err := fc.WriteChart(f, 800, 500); err != nil {
			log.Fatal(err)
		}
		return
	}

	path := budgetWards
	if !filepath.IsAbs(path) {
		path = filepath.Join(budgetShp, path)
	}
	wards, err := geo.LoadLayer(path)
	if err != nil {
		log.Fatal(err)
	}
	m, err := fc.Plot(wards, budget.PlotOptions{
		WardField: budgetWardField,
		Cmap:      budgetCmap,
		Bins:      budgetBins,
		Bounds:    geo.TorontoBounds,
	})
	if err != nil {
		log.Fatal(err)
	}
	err = writeFigure(budgetOut, 800, 700, func(s render.Surface) error {
		return m.Draw(s)
	})
	if err != nil {
		log.Fatal(err)
	}
}

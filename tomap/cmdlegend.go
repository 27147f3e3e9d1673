// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/torontoviz/go-toronto/cmap"
	"github.com/torontoviz/go-toronto/render"
)

var cmdLegendFlags = flag.NewFlagSet(os.Args[0]+" legend", flag.ExitOnError)

var (
	legendN         int
	legendCmap      string
	legendLabels    string
	legendValues    string
	legendFormat    string
	legendPlacement string
	legendShrink    float64
	legendTitle     string
	legendOut       string
	legendTerm      bool
)

func init() {
	f := cmdLegendFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s legend [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.IntVar(&legendN, "n", 6, "number of bins")
	f.StringVar(&legendCmap, "cmap", "Reds", "gradient `name` ("+strings.Join(cmap.Names(), ", ")+")")
	f.StringVar(&legendLabels, "labels", "", "comma-separated tick `labels` (default: bin indices)")
	f.StringVar(&legendValues, "values", "", "comma-separated tick `numbers`, formatted with -format")
	f.StringVar(&legendFormat, "format", "", "number `format` of tick labels")
	f.StringVar(&legendPlacement, "placement", "right", "bar `side`: right, left, top or bottom")
	f.Float64Var(&legendShrink, "shrink", 0.9, "bar length as a `fraction` of the figure")
	f.StringVar(&legendTitle, "title", "", "legend `title`")
	f.StringVar(&legendOut, "o", "", "write output to `file` (default: SVG on stdout)")
	f.BoolVar(&legendTerm, "term", false, "draw the legend in the terminal")
	registerSubcommand("legend", "[flags] - draw a discretized colorbar", cmdLegend, f)
}

func cmdLegend() {
	f := cmdLegendFlags
	if f.NArg() != 0 || legendLabels != "" && legendValues != "" {
		f.Usage()
		os.Exit(2)
	}

	g, err := cmap.Lookup(legendCmap)
	if err != nil {
		log.Fatal(err)
	}
	placement, err := cmap.ParsePlacement(legendPlacement)
	if err != nil {
		log.Fatal(err)
	}

	var labels []string
	switch {
	case legendLabels != "":
		labels = strings.Split(legendLabels, ",")
	case legendValues != "":
		var vals []float64
		for _, s := range strings.Split(legendValues, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				log.Fatal(err)
			}
			vals = append(vals, v)
		}
		labels = cmap.FormatLabels(vals, legendFormat)
	}
	opts := cmap.LegendOptions{
		Placement: placement,
		Shrink:    legendShrink,
		Format:    legendFormat,
		Title:     legendTitle,
	}
	logger.Debug("drawing legend")

	if legendTerm {
		// Cells are the unit, so the bar runs along the terminal
		// and labels are one cell high.
		opts.Placement = cmap.Bottom
		opts.FontSize = 1
		widest := 1
		for _, l := range labels {
			widest = max(widest, utf8.RuneCountInString(l))
		}
		cols := max(60, legendN*(widest+2))
		thick := float64(cols) * legendShrink / 20
		rows := int(math.Ceil(2*thick + 3))
		t := render.NewTerminal(cols, rows)
		if _, err := cmap.RenderLegend(t, legendN, g, labels, opts); err != nil {
			log.Fatal(err)
		}
		fmt.Print(t.String())
		return
	}

	w, h := 200, 500
	if placement == cmap.Top || placement == cmap.Bottom {
		w, h = h, w
	}
	err = writeFigure(legendOut, w, h, func(s render.Surface) error {
		_, err := cmap.RenderLegend(s, legendN, g, labels, opts)
		return err
	})
	if err != nil {
		log.Fatal(err)
	}
}

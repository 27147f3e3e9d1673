// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/torontoviz/go-toronto/choropleth"
	"github.com/torontoviz/go-toronto/render"
)

var cmdInvestmentFlags = flag.NewFlagSet(os.Args[0]+" investment", flag.ExitOnError)

var (
	investmentConfig string
	investmentShp    string
	investmentOut    string
)

func init() {
	f := cmdInvestmentFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s investment [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&investmentConfig, "config", "", "read the map description from YAML `file` (default: built-in investment map)")
	f.StringVar(&investmentShp, "shp", "shp_dir", "read shapefiles from `dir`")
	f.StringVar(&investmentOut, "o", "", "write output to `file` (default: SVG on stdout)")
	registerSubcommand("investment", "[flags] - map investment areas and tax impact", cmdInvestment, f)
}

func cmdInvestment() {
	if cmdInvestmentFlags.NArg() != 0 {
		cmdInvestmentFlags.Usage()
		os.Exit(2)
	}

	cfg := choropleth.DefaultConfig()
	if investmentConfig != "" {
		var err error
		cfg, err = choropleth.LoadConfig(investmentConfig)
		if err != nil {
			log.Fatal(err)
		}
	}

	m, err := choropleth.Load(cfg, investmentShp, logger)
	if err != nil {
		log.Fatal(err)
	}
	err = writeFigure(investmentOut, cfg.Width, cfg.Height, func(s render.Surface) error {
		return m.Draw(s)
	})
	if err != nil {
		log.Fatal(err)
	}
}

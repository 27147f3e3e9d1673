// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tomap draws maps of Toronto from the City of Toronto's open
// data.
//
// Usage:
//
//	tomap [-v] investment [-config map.yaml] [-shp dir] [-o out.svg|out.png]
//	tomap [-v] budget [-shp dir] [-ward-field F] [-bins N] [-table|-chart] [-o out] workbook.xlsx
//	tomap [-v] legend [-n N] [-cmap name] [-labels a,b,c] [-format f] [-o out | -term]
//
// The investment subcommand draws the city wards, the priority
// investment neighbourhoods, the business improvement areas and the
// 2011 current value assessment tax impact on residential properties
// from the city's shapefiles. A YAML file may describe a different
// set of layers.
//
// The budget subcommand extracts the ten-year capital budget of each
// ward from the city's budget spreadsheet and shades the wards by
// their total, or prints the yearly budgets as a table or chart.
//
// The legend subcommand draws a colorbar for a gradient discretized
// into N bins, which is useful for checking gradients and labels.
//
// Output is SVG on standard output unless -o names a file; a ".png"
// extension selects PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var verbose = flag.Bool("v", false, "log progress and data warnings in detail")

// logger is set up by main before a subcommand runs.
var logger = zap.NewNop()

type subcommand struct {
	desc  string
	run   func()
	flags *flag.FlagSet
}

var subcommands = map[string]*subcommand{}

func registerSubcommand(name, desc string, run func(), flags *flag.FlagSet) {
	subcommands[name] = &subcommand{desc, run, flags}
}

func main() {
	log.SetPrefix("tomap: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <subcommand> [subcommand flags] [args...]\n\nSubcommands:\n", os.Args[0])
		names := make([]string, 0, len(subcommands))
		for name := range subcommands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(os.Stderr, "  %s %s\n", name, subcommands[name].desc)
		}
		fmt.Fprintf(os.Stderr, "\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	cmd, ok := subcommands[flag.Arg(0)]
	if !ok {
		flag.Usage()
		os.Exit(2)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if *verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		log.Fatal(err)
	}
	logger = l
	defer logger.Sync()

	cmd.flags.Parse(flag.Args()[1:])
	cmd.run()
}

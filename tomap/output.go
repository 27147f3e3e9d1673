// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/torontoviz/go-toronto/render"
)

// writeFigure draws a width x height figure with draw and writes it to
// path, or to stdout if path is "". The format is PNG if path ends in
// ".png" and SVG otherwise.
func writeFigure(path string, width, height int, draw func(render.Surface) error) error {
	if path == "" {
		return encodeFigure(os.Stdout, path, width, height, draw)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeFigure(f, path, width, height, draw); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeFigure(w io.Writer, path string, width, height int, draw func(render.Surface) error) error {
	bw := bufio.NewWriter(w)
	if strings.EqualFold(filepath.Ext(path), ".png") {
		r := render.NewRaster(width, height)
		if err := draw(r); err != nil {
			return err
		}
		if err := r.EncodePNG(bw); err != nil {
			return err
		}
	} else {
		s := render.NewSVG(bw, width, height)
		if err := draw(s); err != nil {
			return err
		}
		if err := s.Close(); err != nil {
			return err
		}
	}
	return bw.Flush()
}

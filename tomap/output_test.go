// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/torontoviz/go-toronto/cmap"
	"github.com/torontoviz/go-toronto/render"
)

func drawLegend(s render.Surface) error {
	_, err := cmap.RenderLegend(s, 4, cmap.Blues.Gradient(), []string{"a", "b", "c", "d"}, cmap.LegendOptions{})
	return err
}

func TestWriteFigureSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legend.svg")
	if err := writeFigure(path, 200, 500, drawLegend); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("<?xml")) || !bytes.Contains(data, []byte("</svg>")) {
		t.Errorf("not a complete SVG document:\n%s", data)
	}
}

func TestWriteFigurePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legend.PNG")
	if err := writeFigure(path, 200, 500, drawLegend); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 500 {
		t.Errorf("image is %dx%d, want 200x500", b.Dx(), b.Dy())
	}
}

func TestWriteFigureError(t *testing.T) {
	want := errors.New("boom")
	err := writeFigure(filepath.Join(t.TempDir(), "x.svg"), 10, 10, func(render.Surface) error { return want })
	if !errors.Is(err, want) {
		t.Errorf("writeFigure error = %v, want %v", err, want)
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choropleth

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Single-letter color codes, as accepted by matplotlib.
var letterColors = map[string]color.Color{
	"b": colorful.Color{R: 0, G: 0, B: 1},
	"g": colorful.Color{R: 0, G: 0.5, B: 0},
	"r": colorful.Color{R: 1, G: 0, B: 0},
	"c": colorful.Color{R: 0, G: 0.75, B: 0.75},
	"m": colorful.Color{R: 0.75, G: 0, B: 0.75},
	"y": colorful.Color{R: 0.75, G: 0.75, B: 0},
	"k": colorful.Color{R: 0, G: 0, B: 0},
	"w": colorful.Color{R: 1, G: 1, B: 1},
}

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"magenta": "#ff00ff",
	"cyan":    "#00ffff",
	"yellow":  "#ffff00",
	"gray":    "#808080",
	"grey":    "#808080",
	"orange":  "#ffa500",
	"purple":  "#800080",
}

// ParseColor parses a color given as a single-letter code ("g", "m",
// "k", ...), a basic color name, or a "#rgb" or "#rrggbb" hex string.
// "" and "none" parse as nil, meaning nothing is painted.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return nil, nil
	}
	if c, ok := letterColors[s]; ok {
		return c, nil
	}
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("bad color %q", s)
	}
	return c, nil
}

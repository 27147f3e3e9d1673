// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/aclements/go-gg/palette"
)

// Linear is a continuous gradient that interpolates linearly, channel
// by channel, between evenly spaced colors. Linear(0) is the first
// color and Linear(1) is the last.
type Linear []RGBA

// NewLinear returns a Linear gradient through cs.
func NewLinear(cs ...color.Color) Linear {
	g := make(Linear, len(cs))
	for i, c := range cs {
		g[i] = RGBAOf(c)
	}
	return g
}

// Map returns the color at x. Values outside [0, 1] are clamped.
func (g Linear) Map(x float64) color.Color {
	switch len(g) {
	case 0:
		return RGBA{}
	case 1:
		return g[0]
	}
	if math.IsNaN(x) {
		return RGBA{}
	}
	x = clamp01(x)
	pos := x * float64(len(g)-1)
	i := int(pos)
	if i >= len(g)-1 {
		return g[len(g)-1]
	}
	fr := pos - float64(i)
	a, b := g[i], g[i+1]
	lerp := func(a, b float64) float64 { return a + (b-a)*fr }
	return RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}

// Name identifies one of the built-in gradients.
type Name int

const (
	Reds Name = iota
	Blues
	Greens
	Greys
	Oranges
	Purples
	YlOrRd
	Viridis

	numNames
)

var names = [numNames]string{
	Reds:    "Reds",
	Blues:   "Blues",
	Greens:  "Greens",
	Greys:   "Greys",
	Oranges: "Oranges",
	Purples: "Purples",
	YlOrRd:  "YlOrRd",
	Viridis: "viridis",
}

func (n Name) String() string {
	if n < 0 || n >= numNames {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return names[n]
}

// Names returns the names of all built-in gradients.
func Names() []string {
	return append([]string(nil), names[:]...)
}

// Sequential ColorBrewer schemes (9 classes), by Cynthia Brewer,
// Mark Harrower and The Pennsylvania State University.
var brewer9 = map[Name][9]uint32{
	Reds:    {0xfff5f0, 0xfee0d2, 0xfcbba1, 0xfc9272, 0xfb6a4a, 0xef3b2c, 0xcb181d, 0xa50f15, 0x67000d},
	Blues:   {0xf7fbff, 0xdeebf7, 0xc6dbef, 0x9ecae1, 0x6baed6, 0x4292c6, 0x2171b5, 0x08519c, 0x08306b},
	Greens:  {0xf7fcf5, 0xe5f5e0, 0xc7e9c0, 0xa1d99b, 0x74c476, 0x41ab5d, 0x238b45, 0x006d2c, 0x00441b},
	Greys:   {0xffffff, 0xf0f0f0, 0xd9d9d9, 0xbdbdbd, 0x969696, 0x737373, 0x525252, 0x252525, 0x000000},
	Oranges: {0xfff5eb, 0xfee6ce, 0xfdd0a2, 0xfdae6b, 0xfd8d3c, 0xf16913, 0xd94801, 0xa63603, 0x7f2704},
	Purples: {0xfcfbfd, 0xefedf5, 0xdadaeb, 0xbcbddc, 0x9e9ac8, 0x807dba, 0x6a51a3, 0x54278f, 0x3f007d},
	YlOrRd:  {0xffffcc, 0xffeda0, 0xfed976, 0xfeb24c, 0xfd8d3c, 0xfc4e2a, 0xe31a1c, 0xbd0026, 0x800026},
}

// Gradient returns the built-in gradient n. It panics if n is not a
// valid Name.
func (n Name) Gradient() palette.Continuous {
	if n == Viridis {
		return palette.Viridis
	}
	hex, ok := brewer9[n]
	if !ok {
		panic("cmap: unknown gradient " + n.String())
	}
	g := make(Linear, len(hex))
	for i, h := range hex {
		g[i] = RGBA{
			R: float64(h>>16&0xff) / 255,
			G: float64(h>>8&0xff) / 255,
			B: float64(h&0xff) / 255,
			A: 1,
		}
	}
	return g
}

// Lookup resolves a gradient by name. Names are matched without
// regard to case. An unknown name yields an error wrapping
// ErrInvalidArgument.
func Lookup(name string) (palette.Continuous, error) {
	for n, s := range names {
		if strings.EqualFold(s, name) {
			return Name(n).Gradient(), nil
		}
	}
	return nil, fmt.Errorf("cmap: unknown gradient %q: %w", name, ErrInvalidArgument)
}

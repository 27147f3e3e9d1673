// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmap provides color gradients for choropleth maps and a way
// to reduce a continuous gradient to a fixed number of constant-color
// bins, together with a colorbar legend that labels each bin.
//
// Gradients follow the palette.Continuous contract from go-gg: a
// gradient maps a normalized value in [0, 1] to a color. Any
// palette.Continuous can be discretized, including the built-in
// gradients returned by Lookup.
package cmap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidArgument is returned (wrapped) for bin counts below one,
// label sequences whose length does not match the bin count, and
// gradient names that do not resolve.
var ErrInvalidArgument = errors.New("invalid argument")

// RGBA is a non-premultiplied color with components in [0, 1].
//
// RGBA implements color.Color.
type RGBA struct {
	R, G, B, A float64
}

// RGBA returns the alpha-premultiplied 16-bit components of c.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	al := clamp01(c.A)
	conv := func(v float64) uint32 {
		return uint32(clamp01(v)*al*0xffff + 0.5)
	}
	return conv(c.R), conv(c.G), conv(c.B), uint32(al*0xffff + 0.5)
}

// Opaque returns c with alpha 1.
func (c RGBA) Opaque() RGBA {
	c.A = 1
	return c
}

// channel returns the i'th component of c, in R, G, B, A order.
func (c RGBA) channel(i int) float64 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	}
	return c.A
}

// RGBAOf converts an arbitrary color to a non-premultiplied RGBA.
func RGBAOf(c color.Color) RGBA {
	if c, ok := c.(RGBA); ok {
		return c
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// Hex returns c as a "#rrggbb" string, ignoring alpha.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func clamp01(x float64) float64 {
	if x <= 0 || math.IsNaN(x) {
		return 0
	} else if x >= 1 {
		return 1
	}
	return x
}

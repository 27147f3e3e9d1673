// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/vec"
)

// LUTSize is the number of entries in the lookup table of a Stepped
// gradient.
const LUTSize = 1024

// A Stepped gradient is a continuous gradient reduced to a fixed
// number of constant-color bins. It is built by Discretize.
//
// Stepped implements palette.Continuous. Map never blends between
// bins: every value in [0, 1] maps to one of Bins() colors.
type Stepped struct {
	// Colors holds the color of each bin, in increasing order of
	// the normalized value. Colors are opaque.
	Colors []RGBA

	lut [LUTSize]RGBA
	bin [LUTSize]int
}

// segment is one row of a per-channel segment table. At boundary x,
// the channel takes value in when approached from the left and out
// when leaving to the right.
type segment struct {
	x, in, out float64
}

// Discretize reduces g to n bins.
//
// g is sampled at n evenly spaced points on [0, 1], and a transparent
// sentinel is appended to the samples. Bin i spans the i'th of n equal
// segments of [0, 1] and takes the color of sample i, that is, the
// color of g at the start of the segment's share of the samples. Only
// the red, green and blue channels are discretized. The resulting
// colors are always opaque.
//
// Values are looked up in a table of LUTSize entries, so the n samples
// land in n different bins only for n <= 38. From n = 39 on, some
// samples share a table entry and map to the same color.
//
// Discretize returns an error wrapping ErrInvalidArgument if n < 1 or
// g is nil.
func Discretize(g palette.Continuous, n int) (*Stepped, error) {
	if n < 1 {
		return nil, fmt.Errorf("cmap: cannot discretize into %d bins: %w", n, ErrInvalidArgument)
	}
	if g == nil {
		return nil, fmt.Errorf("cmap: nil gradient: %w", ErrInvalidArgument)
	}

	// n samples plus the zero RGBA as a sentinel.
	samples := make([]RGBA, n+1)
	for i, x := range linspace(0, 1, n) {
		samples[i] = RGBAOf(g.Map(x))
	}
	bounds := linspace(0, 1, n+1)

	s := &Stepped{Colors: make([]RGBA, n)}
	for i := range s.Colors {
		s.Colors[i] = samples[i].Opaque()
	}

	var tabs [3][]float64
	for ch := range tabs {
		segs := make([]segment, n+1)
		for i := range segs {
			// Row 0 reads the sample before the first one,
			// which wraps around to the sentinel.
			prev := i - 1
			if prev < 0 {
				prev += len(samples)
			}
			segs[i] = segment{bounds[i], samples[prev].channel(ch), samples[i].channel(ch)}
		}
		tabs[ch] = lookupTable(segs)
	}
	for k := range s.lut {
		s.lut[k] = RGBA{tabs[0][k], tabs[1][k], tabs[2][k], 1}
	}
	s.bin = binTable(bounds)
	return s, nil
}

// lookupTable evaluates a segment table at LUTSize evenly spaced
// points on [0, 1]. Between boundaries x[i-1] and x[i] the value runs
// linearly from out[i-1] to in[i]. The first entry is out[0] and the
// last is in[n].
func lookupTable(segs []segment) []float64 {
	xs := make([]float64, len(segs))
	for i, s := range segs {
		xs[i] = s.x
	}
	lut := make([]float64, LUTSize)
	lut[0] = segs[0].out
	lut[LUTSize-1] = segs[len(segs)-1].in
	for k := 1; k < LUTSize-1; k++ {
		x := float64(k) / (LUTSize - 1)
		i := tableIndex(xs, x)
		lo, hi := segs[i-1], segs[i]
		d := (x - lo.x) / (hi.x - lo.x)
		lut[k] = clamp01(lo.out + d*(hi.in-lo.out))
	}
	return lut
}

// binTable returns, for each lookup table entry, the index of the bin
// whose color that entry holds.
func binTable(bounds []float64) [LUTSize]int {
	var bin [LUTSize]int
	last := len(bounds) - 2
	for k := 1; k < LUTSize; k++ {
		i := tableIndex(bounds, float64(k)/(LUTSize-1))
		bin[k] = i - 1
	}
	bin[LUTSize-1] = last
	return bin
}

// tableIndex returns the smallest i >= 1 with xs[i] >= x, limited to
// the last index of xs.
func tableIndex(xs []float64, x float64) int {
	i := sort.SearchFloat64s(xs, x)
	if i < 1 {
		i = 1
	} else if i > len(xs)-1 {
		i = len(xs) - 1
	}
	return i
}

// Bins returns the number of bins in s.
func (s *Stepped) Bins() int {
	return len(s.Colors)
}

// index returns the lookup table entry for x.
func index(x float64) int {
	if x <= 0 {
		return 0
	} else if x >= 1 {
		return LUTSize - 1
	}
	return int(x * LUTSize)
}

// Map returns the color of the bin containing x. Values below 0 map
// to the first bin, values above 1 to the last, and NaN to the
// transparent zero color.
func (s *Stepped) Map(x float64) color.Color {
	if math.IsNaN(x) {
		return RGBA{}
	}
	return s.lut[index(x)]
}

// Bin returns the index of the bin containing x, or -1 if x is NaN.
func (s *Stepped) Bin(x float64) int {
	if math.IsNaN(x) {
		return -1
	}
	return s.bin[index(x)]
}

// A Run is a maximal interval [Lo, Hi) of normalized values that map
// to the same bin.
type Run struct {
	Lo, Hi float64
	Bin    int
	Color  RGBA
}

// Runs returns the intervals of [0, 1] covered by each bin, in
// increasing order. The last run ends at 1.
func (s *Stepped) Runs() []Run {
	var runs []Run
	start := 0
	for k := 1; k <= LUTSize; k++ {
		if k < LUTSize && s.bin[k] == s.bin[start] {
			continue
		}
		runs = append(runs, Run{
			Lo:    float64(start) / LUTSize,
			Hi:    float64(k) / LUTSize,
			Bin:   s.bin[start],
			Color: s.lut[start],
		})
		start = k
	}
	runs[len(runs)-1].Hi = 1
	return runs
}

// linspace returns num evenly spaced values from lo to hi inclusive.
// A single value is lo.
func linspace(lo, hi float64, num int) []float64 {
	if num == 1 {
		return []float64{lo}
	}
	return vec.Linspace(lo, hi, num)
}

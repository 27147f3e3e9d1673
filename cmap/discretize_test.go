// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiscretizeDistinctBins(t *testing.T) {
	for _, name := range []Name{Reds, Blues, Greys, YlOrRd} {
		for _, n := range []int{1, 2, 3, 5, 6, 9, 12, 20, 32, 38} {
			s, err := Discretize(name.Gradient(), n)
			if err != nil {
				t.Fatalf("Discretize(%v, %d): %v", name, n, err)
			}
			if s.Bins() != n {
				t.Errorf("Discretize(%v, %d) has %d bins", name, n, s.Bins())
			}

			seen := make(map[RGBA]bool)
			for j, x := range linspace(0, 1, n) {
				c := s.Map(x).(RGBA)
				if c != s.Colors[j] {
					t.Errorf("%v/%d: Map(%g) = %v, want bin %d color %v", name, n, x, c, j, s.Colors[j])
				}
				if got := s.Bin(x); got != j {
					t.Errorf("%v/%d: Bin(%g) = %d, want %d", name, n, x, got, j)
				}
				seen[c] = true
			}
			if len(seen) != n {
				t.Errorf("%v/%d: %d distinct colors at %d samples", name, n, len(seen), n)
			}
		}
	}
}

func TestDiscretizeTableLimit(t *testing.T) {
	// 39 samples no longer fall in 39 different table entries.
	s, err := Discretize(Reds.Gradient(), 39)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[int]bool)
	for _, x := range linspace(0, 1, 39) {
		seen[s.Bin(x)] = true
	}
	if len(seen) >= 39 {
		t.Errorf("39 samples hit %d bins, want fewer than 39", len(seen))
	}
}

func TestDiscretizeConstantRuns(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 16} {
		s, err := Discretize(Reds.Gradient(), n)
		if err != nil {
			t.Fatal(err)
		}
		runs := s.Runs()
		if len(runs) != n {
			t.Fatalf("n=%d: got %d runs", n, len(runs))
		}
		if runs[0].Lo != 0 || runs[n-1].Hi != 1 {
			t.Errorf("n=%d: runs cover [%g, %g], want [0, 1]", n, runs[0].Lo, runs[n-1].Hi)
		}
		for i, r := range runs {
			if r.Bin != i {
				t.Errorf("n=%d: run %d has bin %d", n, i, r.Bin)
			}
			if i > 0 && runs[i-1].Hi != r.Lo {
				t.Errorf("n=%d: gap between runs %d and %d", n, i-1, i)
			}
			// Every value in the run maps to the same color.
			for k := 0; k < 10; k++ {
				x := r.Lo + (r.Hi-r.Lo)*float64(k)/10
				if got := s.Map(x).(RGBA); got != r.Color {
					t.Errorf("n=%d: Map(%g) = %v, want %v", n, x, got, r.Color)
				}
			}
			if r.Color != s.Colors[i] {
				t.Errorf("n=%d: run %d color %v, want %v", n, i, r.Color, s.Colors[i])
			}
		}
	}
}

func TestDiscretizeReds3(t *testing.T) {
	s, err := Discretize(Reds.Gradient(), 3)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, x := range []float64{0, 0.5, 1} {
		got = append(got, Hex(s.Map(x)))
	}
	want := []string{"#fff5f0", "#fb6a4a", "#67000d"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Discretize(Reds, 3) samples (-want +got):\n%s", diff)
	}

	// Just inside the first bin boundary there is no blending.
	if c := s.Map(0.33); c != s.Colors[0] {
		t.Errorf("Map(0.33) = %v, want first bin %v", c, s.Colors[0])
	}
	if c := s.Map(0.34); c != s.Colors[1] {
		t.Errorf("Map(0.34) = %v, want second bin %v", c, s.Colors[1])
	}
}

func TestDiscretizeOutOfRange(t *testing.T) {
	s, err := Discretize(Blues.Gradient(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if c := s.Map(-3); c != s.Colors[0] {
		t.Errorf("Map(-3) = %v, want %v", c, s.Colors[0])
	}
	if c := s.Map(7); c != s.Colors[3] {
		t.Errorf("Map(7) = %v, want %v", c, s.Colors[3])
	}
	if c := s.Map(math.NaN()); c != (RGBA{}) {
		t.Errorf("Map(NaN) = %v, want transparent", c)
	}
	if b := s.Bin(math.NaN()); b != -1 {
		t.Errorf("Bin(NaN) = %d, want -1", b)
	}
}

func TestDiscretizeOpaque(t *testing.T) {
	g := NewLinear(color.NRGBA{255, 0, 0, 64}, color.NRGBA{0, 0, 255, 128})
	s, err := Discretize(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []float64{0, 0.25, 0.75, 1} {
		if a := s.Map(x).(RGBA).A; a != 1 {
			t.Errorf("Map(%g) alpha = %g, want 1", x, a)
		}
	}
	if got := Hex(s.Colors[1]); got != "#0000ff" {
		t.Errorf("second bin = %s, want #0000ff", got)
	}
}

func TestDiscretizeInvalid(t *testing.T) {
	for _, test := range []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"negative", -2},
	} {
		if _, err := Discretize(Reds.Gradient(), test.n); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: Discretize(Reds, %d) error = %v, want ErrInvalidArgument", test.name, test.n, err)
		}
	}
	if _, err := Discretize(nil, 3); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Discretize(nil, 3) error = %v, want ErrInvalidArgument", err)
	}
}

func TestLookupTableSentinel(t *testing.T) {
	// The first row of each channel table enters from the
	// transparent sentinel; only the leaving value is visible.
	segs := []segment{{0, 0, 0.25}, {0.5, 0.25, 0.75}, {1, 0.75, 0}}
	lut := lookupTable(segs)
	if lut[0] != 0.25 {
		t.Errorf("lut[0] = %g, want 0.25", lut[0])
	}
	if lut[LUTSize-1] != 0.75 {
		t.Errorf("lut[last] = %g, want 0.75", lut[LUTSize-1])
	}
	if lut[LUTSize/2-1] != 0.25 || lut[LUTSize/2+1] != 0.75 {
		t.Errorf("lut around midpoint = %g, %g; want 0.25, 0.75", lut[LUTSize/2-1], lut[LUTSize/2+1])
	}
}

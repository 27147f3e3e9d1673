// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choropleth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/torontoviz/go-toronto/geo"
)

// Kind is how a layer is drawn.
type Kind string

const (
	// Outline draws only the borders of the layer's shapes.
	Outline Kind = "outline"
	// Fill paints every shape of the layer the same color.
	Fill Kind = "fill"
	// Values shades each shape by a numeric attribute.
	Values Kind = "values"
)

// LayerSpec describes one layer of a map.
type LayerSpec struct {
	Name string `yaml:"name"`

	// Shapefile is the shapefile path, without extension. Relative
	// paths are resolved against the shapefile directory given to
	// Load.
	Shapefile string `yaml:"shapefile"`

	Kind Kind `yaml:"kind"`

	// Color is the border color of Outline layers and the fill
	// color of Fill layers.
	Color     string  `yaml:"color,omitempty"`
	EdgeColor string  `yaml:"edge_color,omitempty"`
	LineWidth float64 `yaml:"line_width,omitempty"`

	// ZOrder orders drawing. Layers with a higher ZOrder are drawn
	// on top; ties are drawn in the order they are listed.
	ZOrder int `yaml:"zorder,omitempty"`

	// Field, Cmap, Bins and Format apply to Values layers. Field
	// is the numeric attribute to shade by, Cmap the gradient
	// name. If Bins is positive the gradient is discretized into
	// that many bins and a legend is drawn, labeled with each
	// bin's lower edge in Format.
	Field  string `yaml:"field,omitempty"`
	Cmap   string `yaml:"cmap,omitempty"`
	Bins   int    `yaml:"bins,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Config describes a map figure.
type Config struct {
	Title string `yaml:"title"`

	// Bounds is the map extent as [min lon, min lat, max lon, max
	// lat]. If empty, geo.TorontoBounds is used.
	Bounds []float64 `yaml:"bounds,omitempty"`

	// Width and Height are the figure size in pixels.
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`

	Layers []LayerSpec `yaml:"layers"`
}

const (
	defaultWidth  = 800
	defaultHeight = 700
)

// DefaultConfig returns the investment map: city wards, priority
// investment neighbourhoods, business improvement areas and the 2011
// current value assessment tax impact on residential properties.
func DefaultConfig() *Config {
	return &Config{
		Title:  "Toronto Neighborhoods: Priority Investment, Business Improvement Areas,\nand Current Value Assessment of Tax Impact on Residential Properties",
		Width:  defaultWidth,
		Height: defaultHeight,
		Layers: []LayerSpec{
			{Name: "city_wards", Shapefile: "icitw_wgs84", Kind: Outline, Color: "green", LineWidth: 0.5, ZOrder: 2},
			{Name: "prio_investm", Shapefile: "TO_priority_inv_neighb", Kind: Fill, Color: "m", EdgeColor: "k", LineWidth: 1, ZOrder: 3},
			{Name: "busin_improv", Shapefile: "TO_busin_improv_area", Kind: Fill, Color: "g", EdgeColor: "k", LineWidth: 1, ZOrder: 2},
			{Name: "tax_assesm_impact", Shapefile: "CVA_2011_Tax_Impact_WGS84", Kind: Values, Field: "avgtaximpa", Cmap: "Reds", ZOrder: 1},
		},
	}
}

// LoadConfig reads a YAML map description from path. Missing sizes
// get the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Width == 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = defaultHeight
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that c describes a drawable map.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("bad size %dx%d", c.Width, c.Height)
	}
	if _, err := c.GeoBounds(); err != nil {
		return err
	}
	seen := make(map[string]bool)
	for i, l := range c.Layers {
		if l.Name == "" {
			return fmt.Errorf("layer %d has no name", i)
		}
		if seen[l.Name] {
			return fmt.Errorf("duplicate layer %q", l.Name)
		}
		seen[l.Name] = true
		if err := l.validate(); err != nil {
			return fmt.Errorf("layer %q: %w", l.Name, err)
		}
	}
	return nil
}

func (l *LayerSpec) validate() error {
	switch l.Kind {
	case Outline, Fill:
	case Values:
		if l.Field == "" {
			return fmt.Errorf("values layer needs a field")
		}
		if l.Bins < 0 {
			return fmt.Errorf("negative bin count %d", l.Bins)
		}
	default:
		return fmt.Errorf("unknown kind %q", l.Kind)
	}
	for _, c := range []string{l.Color, l.EdgeColor} {
		if _, err := ParseColor(c); err != nil {
			return err
		}
	}
	return nil
}

// GeoBounds returns the map extent.
func (c *Config) GeoBounds() (geo.Bounds, error) {
	switch len(c.Bounds) {
	case 0:
		return geo.TorontoBounds, nil
	case 4:
		b := c.Bounds
		if b[0] == b[2] || b[1] == b[3] {
			return geo.Bounds{}, fmt.Errorf("empty bounds %v", b)
		}
		return geo.Bounds{Min: geo.LonLat{Lon: b[0], Lat: b[1]}, Max: geo.LonLat{Lon: b[2], Lat: b[3]}}, nil
	}
	return geo.Bounds{}, fmt.Errorf("bounds must have 4 values, got %d", len(c.Bounds))
}

// SPDX-License-Identifier: Unlicense OR MIT

/*
Package config reads focus ring styles from YAML.

A style file looks like

	color: "#ff0000"
	width: 2
	corner_radius: 8
	padding:
	  top: 4
	  bottom: 4
	  start: 6
	  end: 6
	unfocus_keeps_ring: false

Colors are hex triplets (#rgb, #rrggbb, #rrggbbaa) or SVG color names
such as "red". Lengths are in dp. Padding may be a single number that
applies to every edge. Omitted color and width are left unspecified.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"gioui.org/unit"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/composables/focusring/focusring"
)

// Config is a parsed style file.
type Config struct {
	Style focusring.Style
	// UnfocusKeepsRing keeps the ring visible after the element loses
	// focus.
	UnfocusKeepsRing bool
}

type file struct {
	Color            string  `yaml:"color"`
	Width            float32 `yaml:"width"`
	CornerRadius     float32 `yaml:"corner_radius"`
	Padding          padding `yaml:"padding"`
	UnfocusKeepsRing bool    `yaml:"unfocus_keeps_ring"`
}

type padding struct {
	Top    float32 `yaml:"top"`
	Bottom float32 `yaml:"bottom"`
	Start  float32 `yaml:"start"`
	End    float32 `yaml:"end"`
}

func (p *padding) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		var v float32
		if err := n.Decode(&v); err != nil {
			return err
		}
		*p = padding{Top: v, Bottom: v, Start: v, End: v}
		return nil
	}
	type edges padding
	return n.Decode((*edges)(p))
}

// Load reads the style file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse parses a style file. Unknown keys are errors.
func Parse(data []byte) (Config, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	var c color.NRGBA
	if f.Color != "" {
		var err error
		c, err = ParseColor(f.Color)
		if err != nil {
			return Config{}, fmt.Errorf("config: color: %w", err)
		}
	}
	return Config{
		Style: focusring.Style{
			Color:        c,
			Width:        unit.Dp(f.Width),
			CornerRadius: unit.Dp(f.CornerRadius),
			Padding: focusring.Padding{
				Top:    unit.Dp(f.Padding.Top),
				Bottom: unit.Dp(f.Padding.Bottom),
				Start:  unit.Dp(f.Padding.Start),
				End:    unit.Dp(f.Padding.End),
			},
		},
		UnfocusKeepsRing: f.UnfocusKeepsRing,
	}, nil
}

// Options returns the indication options c implies.
func (c Config) Options() []focusring.Option {
	if !c.UnfocusKeepsRing {
		return nil
	}
	return []focusring.Option{focusring.WithUnfocusTransition(true)}
}

// ParseColor parses a hex color or an SVG color name.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

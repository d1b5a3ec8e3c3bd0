// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/composables/focusring/focusring"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
color: red
width: 2
corner_radius: 8
padding:
  top: 1
  bottom: 2
  start: 3
  end: 4
`))
	if err != nil {
		t.Fatal(err)
	}
	want := focusring.Style{
		Color:        color.NRGBA{R: 0xff, A: 0xff},
		Width:        2,
		CornerRadius: 8,
		Padding:      focusring.Padding{Top: 1, Bottom: 2, Start: 3, End: 4},
	}
	if c.Style != want {
		t.Errorf("got style %+v, want %+v", c.Style, want)
	}
	if c.UnfocusKeepsRing {
		t.Error("unfocus_keeps_ring defaulted to true")
	}
	if opts := c.Options(); len(opts) != 0 {
		t.Errorf("got %d options, want none", len(opts))
	}
}

func TestParseUniformPadding(t *testing.T) {
	c, err := Parse([]byte("padding: 4\ncorner_radius: 8\nunfocus_keeps_ring: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Style.Padding != focusring.UniformPadding(4) {
		t.Errorf("got padding %+v", c.Style.Padding)
	}
	if c.Style.Color != (color.NRGBA{}) || c.Style.Width != 0 {
		t.Error("omitted color and width are not unspecified")
	}
	if !c.UnfocusKeepsRing || len(c.Options()) != 1 {
		t.Error("unfocus_keeps_ring was not applied")
	}
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if c != (Config{}) {
		t.Errorf("empty file parsed to %+v", c)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"color: notacolor\n",
		"colour: red\n",
		"width: wide\n",
		"padding: [1, 2]\n",
	} {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Parse(%q) succeeded", in)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#f00", color.NRGBA{R: 0xff, A: 0xff}},
		{"#3f51b5", color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff}},
		{"#3f51b580", color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0x80}},
		{"CornflowerBlue", color.NRGBA{R: 0x64, G: 0x95, B: 0xed, A: 0xff}},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	for _, in := range []string{"#ff", "#gggggg", "nope"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded", in)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.yaml")
	if err := os.WriteFile(path, []byte("corner_radius: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Style.CornerRadius != 6 {
		t.Errorf("got corner radius %v, want 6", c.Style.CornerRadius)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("loading a missing file succeeded")
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package focusring

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/io/system"
	"gioui.org/unit"
)

// Style describes the appearance of a focus ring.
type Style struct {
	// Color of the ring. The zero value is unspecified and replaced by
	// Defaults.Color, so a fully transparent ring must be requested
	// through Defaults or a transparent color with non-zero RGB.
	Color color.NRGBA
	// Width of the ring stroke. Zero is unspecified and replaced by
	// Defaults.Width. To hide the ring, use a negative width; painters
	// do not draw rings with non-positive width.
	Width unit.Dp
	// Padding between the element and the ring.
	Padding Padding
	// CornerRadius of the ring.
	CornerRadius unit.Dp
}

// Padding insets the ring from the edges of an element. Start and End
// follow the layout direction: Start is the left edge for left-to-right
// text and the right edge for right-to-left text.
type Padding struct {
	Top, Bottom, Start, End unit.Dp
}

// Defaults are substituted for unspecified Style values.
type Defaults struct {
	Color color.NRGBA
	Width unit.Dp
}

// Geometry is a ring in pixels, relative to the element origin.
type Geometry struct {
	Min, Max     f32.Point
	CornerRadius float32
	Width        float32
	Color        color.NRGBA
}

// UniformPadding returns a Padding with every edge set to v.
func UniformPadding(v unit.Dp) Padding {
	return Padding{Top: v, Bottom: v, Start: v, End: v}
}

// Resolve returns the physical left and right insets for the layout
// direction.
func (p Padding) Resolve(dir system.TextDirection) (left, right unit.Dp) {
	if dir.Progression() == system.TowardOrigin {
		return p.End, p.Start
	}
	return p.Start, p.End
}

// Ring computes the ring around an element of the given size.
func (s Style) Ring(size image.Point, m unit.Metric, dir system.TextDirection, d Defaults) Geometry {
	pxPerDp := m.PxPerDp
	if pxPerDp == 0 {
		pxPerDp = 1
	}
	px := func(v unit.Dp) float32 {
		return float32(v) * pxPerDp
	}
	left, right := s.Padding.Resolve(dir)
	g := Geometry{
		Min: f32.Point{
			X: -px(left),
			Y: -px(s.Padding.Top),
		},
		Max: f32.Point{
			X: float32(size.X) + px(right),
			Y: float32(size.Y) + px(s.Padding.Bottom),
		},
		CornerRadius: px(s.CornerRadius),
		Width:        px(s.Width),
		Color:        s.Color,
	}
	if s.Width == 0 {
		g.Width = px(d.Width)
	}
	if s.Color == (color.NRGBA{}) {
		g.Color = d.Color
	}
	return g
}

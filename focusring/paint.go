// SPDX-License-Identifier: Unlicense OR MIT

package focusring

import (
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// Painter strokes rings.
type Painter interface {
	StrokeRing(ops *op.Ops, g Geometry)
}

// GioPainter strokes rings with clip and paint operations. Corner
// radii are clamped to half the shorter side of the ring, and rings
// with non-positive width are not drawn.
type GioPainter struct{}

func (GioPainter) StrokeRing(ops *op.Ops, g Geometry) {
	if g.Width <= 0 {
		return
	}
	paint.FillShape(ops, g.Color, clip.Stroke{
		Path:  roundedRect(ops, g.Min, g.Max, g.CornerRadius),
		Width: g.Width,
	}.Op())
}

// roundedRect returns the outline of a rectangle with circular
// corners of radius r.
func roundedRect(ops *op.Ops, min, max f32.Point, r float32) clip.PathSpec {
	r = min32(r, (max.X-min.X)/2, (max.Y-min.Y)/2)
	r = float32(math.Max(float64(r), 0))

	// https://pomax.github.io/bezierinfo/#circles_cubic.
	const q = 4 * (math.Sqrt2 - 1) / 3
	const iq = 1 - q
	w, n, e, s := min.X, min.Y, max.X, max.Y

	var p clip.Path
	p.Begin(ops)
	p.MoveTo(f32.Point{X: w + r, Y: n})
	p.LineTo(f32.Point{X: e - r, Y: n})
	p.CubeTo(
		f32.Point{X: e - r*iq, Y: n},
		f32.Point{X: e, Y: n + r*iq},
		f32.Point{X: e, Y: n + r})
	p.LineTo(f32.Point{X: e, Y: s - r})
	p.CubeTo(
		f32.Point{X: e, Y: s - r*iq},
		f32.Point{X: e - r*iq, Y: s},
		f32.Point{X: e - r, Y: s})
	p.LineTo(f32.Point{X: w + r, Y: s})
	p.CubeTo(
		f32.Point{X: w + r*iq, Y: s},
		f32.Point{X: w, Y: s - r*iq},
		f32.Point{X: w, Y: s - r})
	p.LineTo(f32.Point{X: w, Y: n + r})
	p.CubeTo(
		f32.Point{X: w, Y: n + r*iq},
		f32.Point{X: w + r*iq, Y: n},
		f32.Point{X: w + r, Y: n})
	p.Close()
	return p.End()
}

func min32(v float32, vs ...float32) float32 {
	for _, x := range vs {
		if x < v {
			v = x
		}
	}
	return v
}

// SPDX-License-Identifier: Unlicense OR MIT

// Package material takes focus ring defaults from a material theme.
package material

import (
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/composables/focusring/focusring"
)

// Defaults returns the ring color and width used by th.
func Defaults(th *material.Theme) focusring.Defaults {
	return focusring.Defaults{
		Color: th.Palette.ContrastBg,
		Width: unit.Dp(2),
	}
}

// FocusRing returns a focus ring indication for s, with unspecified
// values taken from th.
func FocusRing(th *material.Theme, s focusring.Style, opts ...focusring.Option) *focusring.Indication {
	opts = append([]focusring.Option{focusring.WithDefaults(Defaults(th))}, opts...)
	return focusring.New(s, opts...)
}

// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/composables/focusring/config"
	"github.com/composables/focusring/focusring"
	"github.com/composables/focusring/indication"
	ringmaterial "github.com/composables/focusring/material"
)

var defaultConfig = config.Config{
	Style: focusring.Style{
		Padding:      focusring.UniformPadding(4),
		CornerRadius: 8,
	},
}

type row struct {
	focusable indication.Focusable
	label     string
}

type ui struct {
	th   *material.Theme
	ring *focusring.Indication
	icon *widget.Icon
	rows []*row
}

func run(opts options) error {
	cfg := defaultConfig
	if opts.config != "" {
		var err error
		if cfg, err = config.Load(opts.config); err != nil {
			return err
		}
	}
	if opts.sticky {
		cfg.UnfocusKeepsRing = true
	}

	w := new(app.Window)
	w.Option(app.Title("Focus ring"), app.Size(unit.Dp(400), unit.Dp(320)))
	u, err := newUI(cfg, w)
	if err != nil {
		return err
	}
	defer u.Close()

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			if opts.rtl {
				gtx.Locale.Direction = system.RTL
			}
			u.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func newUI(cfg config.Config, inv indication.Invalidator) (*ui, error) {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	ic, err := widget.NewIcon(icons.ActionCheckCircle)
	if err != nil {
		return nil, err
	}
	u := &ui{
		th:   th,
		ring: ringmaterial.FocusRing(th, cfg.Style, cfg.Options()...),
		icon: ic,
	}
	for i := 1; i <= 4; i++ {
		r := &row{label: fmt.Sprintf("Row %d", i)}
		r.focusable.Invalidator = inv
		u.rows = append(u.rows, r)
	}
	return u, nil
}

func (u *ui) Layout(gtx layout.Context) layout.Dimensions {
	children := make([]layout.FlexChild, 0, len(u.rows)+1)
	for _, r := range u.rows {
		r := r
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return r.focusable.Layout(gtx, u.ring, func(gtx layout.Context) layout.Dimensions {
					return u.layoutRow(gtx, r)
				})
			})
		}))
	}
	children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(12)).Layout(gtx, material.Caption(u.th, u.status()).Layout)
	}))
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (u *ui) layoutRow(gtx layout.Context, r *row) layout.Dimensions {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Dp(24)
			return u.icon.Layout(gtx, u.th.Palette.Fg)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(material.Body1(u.th, r.label).Layout),
	)
}

func (u *ui) status() string {
	for _, r := range u.rows {
		if r.focusable.Focused() {
			return r.label + " has focus"
		}
	}
	return "Press Tab to focus a row"
}

// Close detaches the rings of every row.
func (u *ui) Close() {
	for _, r := range u.rows {
		r.focusable.Close()
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package indication

import (
	"image"

	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"

	"github.com/composables/focusring/interaction"
)

// Focusable is a focusable area decorated by an Indication. Focus and
// pointer presses on the area are published as interactions to the
// Indication's Node.
type Focusable struct {
	// Invalidator is passed to the nodes Focusable attaches.
	Invalidator Invalidator

	click   gesture.Click
	source  interaction.MutableSource
	focused bool
	focus   *interaction.Focus
	press   *interaction.Press

	ind  Indication
	node Node
}

// Layout lays out w inside the focusable area and decorates it with
// ind. A nil ind draws w undecorated.
func (f *Focusable) Layout(gtx layout.Context, ind Indication, w layout.Widget) layout.Dimensions {
	f.Update(gtx)
	f.bind(ind)
	area := func(gtx layout.Context) layout.Dimensions {
		m := op.Record(gtx.Ops)
		dims := w(gtx)
		c := m.Stop()
		defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
		f.click.Add(gtx.Ops)
		event.Op(gtx.Ops, f)
		c.Add(gtx.Ops)
		return dims
	}
	if f.node == nil {
		return area(gtx)
	}
	return f.node.Draw(gtx, area)
}

// Update processes pending focus and pointer events.
func (f *Focusable) Update(gtx layout.Context) {
	for {
		e, ok := f.click.Update(gtx.Source)
		if !ok {
			break
		}
		switch e.Kind {
		case gesture.KindPress:
			gtx.Execute(key.FocusCmd{Tag: f})
			f.press = new(interaction.Press)
			f.source.Emit(f.press)
		case gesture.KindClick, gesture.KindCancel:
			if f.press != nil {
				f.source.Emit(interaction.Release{Press: f.press})
				f.press = nil
			}
		}
	}
	for {
		e, ok := gtx.Event(key.FocusFilter{Target: f})
		if !ok {
			break
		}
		if e, ok := e.(key.FocusEvent); ok {
			f.setFocused(e.Focus)
		}
	}
}

func (f *Focusable) setFocused(focused bool) {
	if focused == f.focused {
		return
	}
	f.focused = focused
	if focused {
		f.focus = new(interaction.Focus)
		f.source.Emit(f.focus)
		return
	}
	f.source.Emit(interaction.Unfocus{Focus: f.focus})
	f.focus = nil
}

// bind makes sure the current node was created by ind.
func (f *Focusable) bind(ind Indication) {
	if ind == f.ind {
		return
	}
	f.Close()
	f.ind = ind
	if ind == nil {
		return
	}
	f.node = ind.Create(&f.source)
	f.node.Attach(f.Invalidator)
	// A new node starts unfocused and only sees focus transitions.
	if f.focused {
		f.source.Emit(f.focus)
	}
}

// Focused reports whether the area has focus.
func (f *Focusable) Focused() bool {
	return f.focused
}

// Focus requests the input focus for the area.
func (f *Focusable) Focus(gtx layout.Context) {
	gtx.Execute(key.FocusCmd{Tag: f})
}

// Node returns the current node, or nil.
func (f *Focusable) Node() Node {
	return f.node
}

// Close detaches the current node. A later Layout creates a new one.
func (f *Focusable) Close() {
	if f.node != nil {
		f.node.Detach()
	}
	f.ind, f.node = nil, nil
}

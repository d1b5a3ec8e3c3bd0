// SPDX-License-Identifier: Unlicense OR MIT

/*
Package focusring implements an indication that draws a rounded ring
around an element while it has focus.

An Indication is created once with New and kept for as long as its
style is in use:

	ring := focusring.New(focusring.Style{
		CornerRadius: 8,
		Padding:      focusring.UniformPadding(4),
	})

	func (w *ui) Layout(gtx layout.Context) layout.Dimensions {
		return w.focusable.Layout(gtx, ring, w.content)
	}

Indications are compared by identity. Hosts such as
indication.Focusable create a new Node whenever they are given a
different *Indication, even if its style is equal to the previous one.
*/
package focusring

import (
	"github.com/composables/focusring/indication"
	"github.com/composables/focusring/interaction"
)

// Indication creates focus ring Nodes.
type Indication struct {
	style    Style
	defaults Defaults
	painter  Painter
	// unfocused is the focus state an Unfocus interaction leaves
	// behind.
	unfocused bool
}

// Option configures an Indication.
type Option func(ind *Indication)

// WithDefaults sets the values used in place of an unspecified ring
// color and width.
func WithDefaults(d Defaults) Option {
	return func(ind *Indication) {
		ind.defaults = d
	}
}

// WithPainter replaces the GioPainter used to draw rings.
func WithPainter(p Painter) Option {
	return func(ind *Indication) {
		ind.painter = p
	}
}

// WithUnfocusTransition sets the focus state that an Unfocus
// interaction leaves behind. The default, false, removes the ring when
// the element loses focus. Passing true keeps the ring visible once
// the element has been focused.
func WithUnfocusTransition(focused bool) Option {
	return func(ind *Indication) {
		ind.unfocused = focused
	}
}

// New returns an Indication drawing rings in style s. The style is not
// validated.
func New(s Style, opts ...Option) *Indication {
	ind := &Indication{
		style:   s,
		painter: GioPainter{},
	}
	for _, o := range opts {
		o(ind)
	}
	return ind
}

// Style returns the style of ind.
func (ind *Indication) Style() Style {
	return ind.style
}

// Create implements indication.Indication.
func (ind *Indication) Create(src interaction.Source) indication.Node {
	return ind.NewNode(src)
}

// NewNode returns a detached Node bound to src.
func (ind *Indication) NewNode(src interaction.Source) *Node {
	return &Node{
		src:       src,
		style:     ind.style,
		defaults:  ind.defaults,
		painter:   ind.painter,
		unfocused: ind.unfocused,
	}
}

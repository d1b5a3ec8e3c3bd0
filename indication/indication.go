// SPDX-License-Identifier: Unlicense OR MIT

// Package indication defines decorations that visualize the
// interaction state of an element, and a widget that hosts them.
package indication

import (
	"gioui.org/layout"

	"github.com/composables/focusring/interaction"
)

// Invalidator schedules a redraw. *app.Window implements Invalidator.
// It must be safe to call from any goroutine.
type Invalidator interface {
	Invalidate()
}

// Indication produces a Node for every element it decorates.
//
// Hosts compare Indications with == to decide whether an element's
// Node is still valid, so implementations must be comparable. Pointer
// implementations are compared by identity.
type Indication interface {
	Create(src interaction.Source) Node
}

// Node is the per-element state of an Indication.
type Node interface {
	// Attach is called when the node joins a live element. The node
	// may call inv.Invalidate when its appearance changes; inv may be
	// nil.
	Attach(inv Invalidator)
	// Detach is called when the node leaves its element. The node
	// must not change state after Detach returns.
	Detach()
	// Draw lays out w and decorates it.
	Draw(gtx layout.Context, w layout.Widget) layout.Dimensions
}

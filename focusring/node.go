// SPDX-License-Identifier: Unlicense OR MIT

package focusring

import (
	"context"
	"sync"
	"sync/atomic"

	"gioui.org/layout"
	"golang.org/x/sync/errgroup"

	"github.com/composables/focusring/indication"
	"github.com/composables/focusring/interaction"
)

// Node draws the focus ring of one element.
type Node struct {
	src       interaction.Source
	style     Style
	defaults  Defaults
	painter   Painter
	unfocused bool

	focused atomic.Bool

	// mu guards the attachment below.
	mu      sync.Mutex
	inv     indication.Invalidator
	cancel  context.CancelFunc
	group   *errgroup.Group
	mailbox *interaction.Mailbox
}

// Attach subscribes n to its interactions. Attaching an attached node
// has no effect.
func (n *Node) Attach(inv indication.Invalidator) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	mb := n.src.Subscribe()
	n.inv, n.cancel, n.group, n.mailbox = inv, cancel, g, mb
	g.Go(func() error {
		n.collect(ctx, mb)
		return nil
	})
}

// Detach unsubscribes n and waits for pending interactions to be
// abandoned. The ring is hidden until n is attached and focused again.
func (n *Node) Detach() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cancel == nil {
		return
	}
	n.cancel()
	n.group.Wait()
	n.src.Unsubscribe(n.mailbox)
	n.focused.Store(false)
	n.inv, n.cancel, n.group, n.mailbox = nil, nil, nil, nil
}

// collect handles the latest interaction in mb until ctx is done.
func (n *Node) collect(ctx context.Context, mb *interaction.Mailbox) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-mb.Ready():
			if ctx.Err() != nil {
				return
			}
			if i, ok := mb.Take(); ok {
				n.handle(i)
			}
		}
	}
}

func (n *Node) handle(i interaction.Interaction) {
	switch i.(type) {
	case interaction.Focus, *interaction.Focus:
		n.setFocused(true)
	case interaction.Unfocus, *interaction.Unfocus:
		n.setFocused(n.unfocused)
	}
}

// setFocused stores the focus state and schedules a redraw if it
// changed. Only the collect goroutine calls setFocused, so n.inv is
// stable.
func (n *Node) setFocused(focused bool) {
	if n.focused.Swap(focused) == focused {
		return
	}
	if n.inv != nil {
		n.inv.Invalidate()
	}
}

// Focused reports whether the ring is shown.
func (n *Node) Focused() bool {
	return n.focused.Load()
}

// Draw lays out w and strokes the ring around it if the element is
// focused. The ring does not change the dimensions of w.
func (n *Node) Draw(gtx layout.Context, w layout.Widget) layout.Dimensions {
	dims := w(gtx)
	if !n.focused.Load() {
		return dims
	}
	g := n.style.Ring(dims.Size, gtx.Metric, gtx.Locale.Direction, n.defaults)
	n.painter.StrokeRing(gtx.Ops, g)
	return dims
}

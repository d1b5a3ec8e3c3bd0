// SPDX-License-Identifier: Unlicense OR MIT

package interaction

import "sync"

// Mailbox is a single slot buffer of interactions. Putting a value
// into a full Mailbox replaces the pending value.
type Mailbox struct {
	mu         sync.Mutex
	pending    Interaction
	full       bool
	superseded int
	// ready has capacity 1 and holds a token while a value is pending.
	ready chan struct{}
}

func newMailbox() *Mailbox {
	return &Mailbox{ready: make(chan struct{}, 1)}
}

func (m *Mailbox) put(i Interaction) {
	m.mu.Lock()
	if m.full {
		m.superseded++
	}
	m.pending = i
	m.full = true
	m.mu.Unlock()
	select {
	case m.ready <- struct{}{}:
	default:
	}
}

// Ready returns a channel that receives a value when an interaction
// may be available from Take.
func (m *Mailbox) Ready() <-chan struct{} {
	return m.ready
}

// Take removes and returns the pending interaction, if any.
func (m *Mailbox) Take() (Interaction, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.full {
		return nil, false
	}
	i := m.pending
	m.pending = nil
	m.full = false
	return i, true
}

// Superseded returns the number of interactions that were replaced
// before they were taken.
func (m *Mailbox) Superseded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.superseded
}

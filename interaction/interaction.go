// SPDX-License-Identifier: Unlicense OR MIT

/*
Package interaction implements streams of user interactions for a single
element.

An element publishes its interactions, such as focus changes and
pointer presses, through a MutableSource. Decorations subscribe to the
source and receive interactions through a Mailbox.

A Mailbox holds at most one pending interaction. Emitting a new
interaction to a subscriber that has not yet taken the previous one
replaces it, so slow subscribers only ever see the latest state of the
element.
*/
package interaction

import "sync"

// Interaction is the marker interface for interactions.
type Interaction interface {
	ImplementsInteraction()
}

// Focus is emitted when an element gains focus.
type Focus struct{}

// Unfocus is emitted when an element loses focus.
type Unfocus struct {
	// Focus is the interaction that gained the focus now lost.
	Focus *Focus
}

// Press is emitted when a pointer presses an element.
type Press struct{}

// Release is emitted when a press ends.
type Release struct {
	Press *Press
}

// Source is a stream of interactions.
type Source interface {
	// Subscribe returns a Mailbox that receives every interaction
	// emitted after the call.
	Subscribe() *Mailbox
	// Unsubscribe stops delivery to m.
	Unsubscribe(m *Mailbox)
}

// MutableSource is a Source interactions can be emitted to. The zero
// value is ready to use. It is safe for concurrent use.
type MutableSource struct {
	mu   sync.Mutex
	subs map[*Mailbox]struct{}
}

// Subscribe implements Source.
func (s *MutableSource) Subscribe() *Mailbox {
	m := newMailbox()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs == nil {
		s.subs = make(map[*Mailbox]struct{})
	}
	s.subs[m] = struct{}{}
	return m
}

// Unsubscribe implements Source.
func (s *MutableSource) Unsubscribe(m *Mailbox) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, m)
}

// Emit delivers i to every subscriber. It never blocks on a
// subscriber.
func (s *MutableSource) Emit(i Interaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for m := range s.subs {
		m.put(i)
	}
}

// Subscribers returns the number of current subscribers.
func (s *MutableSource) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (Focus) ImplementsInteraction()   {}
func (Unfocus) ImplementsInteraction() {}
func (Press) ImplementsInteraction()   {}
func (Release) ImplementsInteraction() {}

// SPDX-License-Identifier: Unlicense OR MIT

package interaction

import (
	"sync"
	"testing"
)

func TestMailboxLatestWins(t *testing.T) {
	var src MutableSource
	m := src.Subscribe()
	if _, ok := m.Take(); ok {
		t.Fatal("new mailbox is not empty")
	}
	f := new(Focus)
	src.Emit(f)
	src.Emit(Unfocus{Focus: f})
	src.Emit(Press{})
	select {
	case <-m.Ready():
	default:
		t.Fatal("mailbox not ready after emit")
	}
	i, ok := m.Take()
	if !ok {
		t.Fatal("no pending interaction")
	}
	if _, isPress := i.(Press); !isPress {
		t.Errorf("took %T, want Press", i)
	}
	if got := m.Superseded(); got != 2 {
		t.Errorf("superseded %d interactions, want 2", got)
	}
	if _, ok := m.Take(); ok {
		t.Error("mailbox still holds an interaction after Take")
	}
}

func TestSubscribeOnlySeesLaterInteractions(t *testing.T) {
	var src MutableSource
	src.Emit(Focus{})
	m := src.Subscribe()
	if _, ok := m.Take(); ok {
		t.Error("subscriber received an interaction emitted before it subscribed")
	}
	src.Emit(Focus{})
	if _, ok := m.Take(); !ok {
		t.Error("subscriber missed an interaction")
	}
}

func TestUnsubscribe(t *testing.T) {
	var src MutableSource
	m1, m2 := src.Subscribe(), src.Subscribe()
	if n := src.Subscribers(); n != 2 {
		t.Fatalf("got %d subscribers, want 2", n)
	}
	src.Unsubscribe(m1)
	src.Emit(Focus{})
	if _, ok := m1.Take(); ok {
		t.Error("unsubscribed mailbox received an interaction")
	}
	if _, ok := m2.Take(); !ok {
		t.Error("subscribed mailbox missed an interaction")
	}
}

func TestEmitConcurrent(t *testing.T) {
	var src MutableSource
	m := src.Subscribe()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				src.Emit(Focus{})
			}
		}()
	}
	wg.Wait()
	if _, ok := m.Take(); !ok {
		t.Fatal("lost the last interaction")
	}
	if got := m.Superseded(); got != 799 {
		t.Errorf("superseded %d interactions, want 799", got)
	}
}

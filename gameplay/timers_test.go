package gameplay

import (
	"testing"
	"time"
)

func TestClockIgnoresNonPositiveDelta(t *testing.T) {
	var c Clock
	c.Advance(time.Second)
	c.Advance(0)
	c.Advance(-time.Second)
	if c.Now() != time.Second {
		t.Fatalf("Now() = %v, want 1s", c.Now())
	}
}

func TestTimerBankNeverStarted(t *testing.T) {
	b := NewTimerBank(&Clock{})
	key := TimerKey{Kind: TimerBoost}
	if _, ok := b.Elapsed(key); ok {
		t.Fatalf("expected unstarted timer")
	}
	if b.Expired(key, 0) {
		t.Fatalf("unstarted timer must not be expired")
	}
	if b.Active(key, time.Hour) {
		t.Fatalf("unstarted timer must not be active")
	}
}

func TestTimerBankExpiry(t *testing.T) {
	clock := &Clock{}
	b := NewTimerBank(clock)
	key := TimerKey{Kind: TimerInvulnerable}

	b.Start(key)
	clock.Advance(2*time.Second - time.Millisecond)
	if !b.Active(key, 2*time.Second) || b.Expired(key, 2*time.Second) {
		t.Fatalf("timer should still be active just before 2s")
	}
	clock.Advance(time.Millisecond)
	if b.Active(key, 2*time.Second) || !b.Expired(key, 2*time.Second) {
		t.Fatalf("timer should expire at exactly 2s")
	}

	b.Start(key)
	if d, _ := b.Elapsed(key); d != 0 {
		t.Fatalf("restart should reset elapsed, got %v", d)
	}
}

func TestTimerBankStartOnceKeepsFirst(t *testing.T) {
	clock := &Clock{}
	b := NewTimerBank(clock)
	key := TimerKey{Kind: TimerCollapse, Index: 4}

	if !b.StartOnce(key) {
		t.Fatalf("first StartOnce should record")
	}
	clock.Advance(time.Second)
	if b.StartOnce(key) {
		t.Fatalf("second StartOnce should not record")
	}
	if d, _ := b.Elapsed(key); d != time.Second {
		t.Fatalf("elapsed = %v, want 1s from first contact", d)
	}

	other := TimerKey{Kind: TimerCollapse, Index: 5}
	b.Start(other)
	b.ClearKind(TimerCollapse)
	if _, ok := b.Elapsed(key); ok {
		t.Fatalf("ClearKind should drop index 4")
	}
	if _, ok := b.Elapsed(other); ok {
		t.Fatalf("ClearKind should drop index 5")
	}
}

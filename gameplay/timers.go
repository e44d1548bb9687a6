package gameplay

import "time"

// TimerKind names a family of timers.
type TimerKind int

const (
	TimerInvulnerable TimerKind = iota
	TimerBoost
	TimerCollapse
)

func (k TimerKind) String() string {
	switch k {
	case TimerInvulnerable:
		return "invulnerable"
	case TimerBoost:
		return "boost"
	case TimerCollapse:
		return "collapse"
	}
	return "unknown"
}

// TimerKey identifies one timer. Index separates per-object timers of the same
// kind, such as one collapse timer per failing platform.
type TimerKey struct {
	Kind  TimerKind
	Index int
}

// TimerBank records start times against a Clock. Timers never reset on their
// own; a caller restarts them with Start.
type TimerBank struct {
	clock  *Clock
	starts map[TimerKey]time.Duration
}

// NewTimerBank returns an empty bank reading from clock.
func NewTimerBank(clock *Clock) *TimerBank {
	return &TimerBank{
		clock:  clock,
		starts: make(map[TimerKey]time.Duration),
	}
}

// Start records the current time for key, replacing any earlier start.
func (b *TimerBank) Start(key TimerKey) {
	b.starts[key] = b.clock.Now()
}

// StartOnce records the current time for key only if key was never started.
// It reports whether it recorded.
func (b *TimerBank) StartOnce(key TimerKey) bool {
	if _, ok := b.starts[key]; ok {
		return false
	}
	b.starts[key] = b.clock.Now()
	return true
}

// Elapsed returns the time since key was started. ok is false when the key was
// never started.
func (b *TimerBank) Elapsed(key TimerKey) (d time.Duration, ok bool) {
	start, ok := b.starts[key]
	if !ok {
		return 0, false
	}
	return b.clock.Now() - start, true
}

// Expired reports whether key was started at least d ago.
func (b *TimerBank) Expired(key TimerKey, d time.Duration) bool {
	elapsed, ok := b.Elapsed(key)
	return ok && elapsed >= d
}

// Active reports whether key was started less than d ago.
func (b *TimerBank) Active(key TimerKey, d time.Duration) bool {
	elapsed, ok := b.Elapsed(key)
	return ok && elapsed < d
}

// Clear forgets key.
func (b *TimerBank) Clear(key TimerKey) {
	delete(b.starts, key)
}

// ClearKind forgets every timer of kind k.
func (b *TimerBank) ClearKind(k TimerKind) {
	for key := range b.starts {
		if key.Kind == k {
			delete(b.starts, key)
		}
	}
}

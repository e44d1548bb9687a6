package gameplay

import "time"

// Clock is the game's monotonic time source. It only moves when the host
// advances it, so tests drive time explicitly.
type Clock struct {
	now time.Duration
}

// Advance moves the clock forward by dt. Non-positive deltas are ignored.
func (c *Clock) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	c.now += dt
}

// Now returns the time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

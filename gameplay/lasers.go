package gameplay

import "time"

// LaserController fires one bullet from every emitter, then waits a fixed
// number of frames before the next volley. The wait counts ticks, so it
// follows the frame rate rather than wall-clock time.
type LaserController struct {
	session  *Session
	cooldown int
	canShoot bool
	counter  int
}

// NewLaserController binds to the emitters of s. The first volley fires on
// the first frame.
func NewLaserController(s *Session) *LaserController {
	return &LaserController{
		session:  s,
		cooldown: s.rules.Hazard.LaserCooldownTicks,
		canShoot: true,
	}
}

// CanShoot reports whether the next Update fires a volley.
func (c *LaserController) CanShoot() bool {
	return c.canShoot
}

// Counter returns the ticks counted since the last volley.
func (c *LaserController) Counter() int {
	return c.counter
}

// Integrate moves bullets and drops those that left the map.
func (c *LaserController) Integrate(time.Duration) {
	s := c.session
	for _, b := range s.Bullets {
		move(b.Object, b.Object.X+b.SpeedX, b.Object.Y)
	}
	s.removeBullets(func(b *Bullet) bool {
		return b.Object.X < 0 || b.Object.X > s.EndOfMapX
	})
}

// Update fires or counts down.
func (c *LaserController) Update(*FrameContext) {
	if c.canShoot {
		speed := -c.session.rules.Hazard.BulletSpeed
		for _, e := range c.session.Emitters {
			c.session.spawnBullet(e.Object.X, e.Object.Y, speed)
		}
		c.canShoot = false
		c.counter = 0
		return
	}

	c.counter++
	if c.counter >= c.cooldown {
		c.canShoot = true
		c.counter = 0
	}
}

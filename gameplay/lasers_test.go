package gameplay

import (
	"testing"

	"github.com/automoto/platformer/shared/gameconfig"
	"github.com/automoto/platformer/shared/leveldata"
	"pgregory.net/rapid"
)

func laserSession(t *testing.T, emitters ...leveldata.Object) (*Session, *LaserController) {
	t.Helper()
	lvl := flatLevel(t, 1, string(KindLasers))
	setGroup(t, lvl, leveldata.LayerLasers, emitters...)
	s, err := NewSession(lvl, gameconfig.Current(), NewTimerBank(&Clock{}), DefaultRegistry())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s, s.controllers[0].(*LaserController)
}

func TestLaserFiresOnFirstFrame(t *testing.T) {
	s, c := laserSession(t, box(900, 540, 18, 18), box(900, 480, 18, 18))
	if !c.CanShoot() {
		t.Fatalf("a new session should be ready to shoot")
	}
	c.Update(&FrameContext{})
	if len(s.Bullets) != 2 {
		t.Fatalf("bullets = %d, want one per emitter", len(s.Bullets))
	}
	if c.CanShoot() || c.Counter() != 0 {
		t.Fatalf("after a volley canShoot=%v counter=%d", c.CanShoot(), c.Counter())
	}
	b := s.Bullets[0]
	if b.Object.X != 900 || b.SpeedX != -gameconfig.Hazard.BulletSpeed {
		t.Fatalf("bullet at x=%v speed=%v", b.Object.X, b.SpeedX)
	}
}

func TestLaserCadence(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		_, c := laserSession(t, box(900, 540, 18, 18))
		frames := rapid.IntRange(1, 1000).Draw(rt, "frames")

		volleys := 0
		for i := 0; i < frames; i++ {
			ready := c.CanShoot()
			c.Update(&FrameContext{})
			if ready {
				volleys++
			}
			if n := c.Counter(); n < 0 || n > gameconfig.Hazard.LaserCooldownTicks {
				rt.Fatalf("counter %d out of range", n)
			}
		}
		period := gameconfig.Hazard.LaserCooldownTicks + 1
		if want := 1 + (frames-1)/period; volleys != want {
			rt.Fatalf("%d frames: %d volleys, want %d", frames, volleys, want)
		}
	})
}

func TestBulletsLeaveTheMap(t *testing.T) {
	s, c := laserSession(t, box(20, 300, 18, 18))
	c.Update(&FrameContext{})
	if len(s.Bullets) != 1 {
		t.Fatalf("expected one bullet")
	}
	for i := 0; i < 4; i++ {
		c.Integrate(frame)
	}
	if b := s.Bullets[0]; b.Object.X != 0 {
		t.Fatalf("bullet x=%v, want 0", b.Object.X)
	}
	c.Integrate(frame)
	if len(s.Bullets) != 0 {
		t.Fatalf("bullet past the left edge should be removed")
	}
}

func TestBulletIgnoresInvulnerability(t *testing.T) {
	lvl := flatLevel(t, 1, string(KindLasers))
	setGroup(t, lvl, leveldata.LayerLasers, box(110, 540, 18, 6))
	g := newTestGame(t, lvl)
	g.Timers.Start(TimerKey{Kind: TimerInvulnerable})

	for i := 0; i < 40; i++ {
		r := step(t, g, Input{})
		if r.Damage == 0 {
			continue
		}
		if g.Player.Health != g.Player.MaxHealth-1 {
			t.Fatalf("health = %d after one bullet", g.Player.Health)
		}
		if len(g.Session().Bullets) != 0 {
			t.Fatalf("the bullet that hit should be removed")
		}
		return
	}
	t.Fatalf("bullet never hit the player")
}

package gameplay

import (
	"testing"

	"github.com/automoto/platformer/shared/gameconfig"
	"github.com/automoto/platformer/shared/leveldata"
	"pgregory.net/rapid"
)

func movingTrap(top, bottom, speed float64) leveldata.Object {
	o := box(600, bottom, 54, 18)
	o.BoundaryTop = floatPtr(top)
	o.BoundaryBottom = floatPtr(bottom)
	o.ActivatedByButton = true
	o.Speed = speed
	return o
}

func trapSession(t *testing.T, start float64) (*Session, *TrapController) {
	t.Helper()
	lvl := flatLevel(t, 1, string(KindMovingTraps))
	trap := movingTrap(300, 540, 4)
	trap.Y = start
	setGroup(t, lvl, leveldata.LayerTraps, trap)
	s, err := NewSession(lvl, gameconfig.Current(), NewTimerBank(&Clock{}), DefaultRegistry())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s, s.controllers[0].(*TrapController)
}

func TestTrapDirection(t *testing.T) {
	top, bottom := 300.0, 540.0
	tests := []struct {
		name      string
		y         float64
		held      bool
		unbounded bool
		want      int
	}{
		{"held below top rises", 400, true, false, 1},
		{"held at top rests", 300, true, false, 0},
		{"released above bottom sinks", 400, false, false, -1},
		{"released at bottom rests", 540, false, false, 0},
		{"unbounded held rises", 300, true, true, 1},
		{"unbounded released sinks", 540, false, true, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := trapSession(t, tt.y)
			trap := &s.Traps[0]
			trap.BoundaryTop, trap.BoundaryBottom = &top, &bottom
			if tt.unbounded {
				trap.BoundaryTop, trap.BoundaryBottom = nil, nil
			}
			if got := trapDirection(trap, tt.held); got != tt.want {
				t.Fatalf("direction = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStaticTrapNotDriven(t *testing.T) {
	lvl := flatLevel(t, 1, string(KindMovingTraps))
	setGroup(t, lvl, leveldata.LayerTraps, box(600, 558, 54, 18))
	s, err := NewSession(lvl, gameconfig.Current(), NewTimerBank(&Clock{}), DefaultRegistry())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	c := s.controllers[0].(*TrapController)
	if len(c.traps) != 0 {
		t.Fatalf("static trap should not be driven")
	}
}

func TestUnboundedButtonTrapKeepsMoving(t *testing.T) {
	lvl := flatLevel(t, 1, string(KindMovingTraps))
	trap := box(600, 400, 54, 18)
	trap.ActivatedByButton = true
	setGroup(t, lvl, leveldata.LayerTraps, trap)
	s, err := NewSession(lvl, gameconfig.Current(), NewTimerBank(&Clock{}), DefaultRegistry())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	c := s.controllers[0].(*TrapController)
	if len(c.traps) != 1 {
		t.Fatalf("button trap without bounds should be driven")
	}

	for i := 0; i < 5; i++ {
		c.Update(&FrameContext{})
		c.Integrate(frame)
	}
	want := 400 + 5*gameconfig.Hazard.TrapSpeed
	if got := s.Traps[0]; got.Dir != -1 || got.Object.Y != want {
		t.Fatalf("trap y=%v dir=%d, want y=%v dir=-1", got.Object.Y, got.Dir, want)
	}
}

func TestTrapStaysWithinBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s, c := trapSession(t, 540)
		trap := &s.Traps[0]
		held := rapid.SliceOfN(rapid.Bool(), 1, 300).Draw(rt, "held")

		for i, h := range held {
			ctx := &FrameContext{}
			if h {
				ctx.Buttons = []int{0}
			}
			c.Update(ctx)
			c.Integrate(frame)
			if y := trap.Object.Y; y < *trap.BoundaryTop || y > *trap.BoundaryBottom {
				rt.Fatalf("frame %d: trap y=%v outside [%v, %v]", i, y, *trap.BoundaryTop, *trap.BoundaryBottom)
			}
		}
	})
}

func TestTrapReachesTopWhileHeld(t *testing.T) {
	s, c := trapSession(t, 540)
	trap := &s.Traps[0]
	held := &FrameContext{Buttons: []int{0}}

	for i := 0; i < 100; i++ {
		c.Update(held)
		c.Integrate(frame)
	}
	if trap.Object.Y != 300 || trapDirection(trap, true) != 0 {
		t.Fatalf("trap y=%v dir=%d, want resting at top", trap.Object.Y, trap.Dir)
	}

	for i := 0; i < 100; i++ {
		c.Update(&FrameContext{})
		c.Integrate(frame)
	}
	if trap.Object.Y != 540 {
		t.Fatalf("trap y=%v, want back at bottom", trap.Object.Y)
	}
}

func TestButtonRaisesTrapInGame(t *testing.T) {
	lvl := flatLevel(t, 1, string(KindMovingTraps))
	setGroup(t, lvl, leveldata.LayerButtons, box(50, 558, 54, 18))
	setGroup(t, lvl, leveldata.LayerTraps, movingTrap(400, 540, 2))
	g := newTestGame(t, lvl)

	step(t, g, Input{}) // button seen, direction chosen
	step(t, g, Input{}) // trap moves
	if y := g.Session().Traps[0].Object.Y; y != 538 {
		t.Fatalf("trap y=%v, want 538 after one step up", y)
	}
}

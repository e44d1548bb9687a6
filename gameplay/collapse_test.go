package gameplay

import (
	"testing"
	"time"

	"github.com/automoto/platformer/shared/leveldata"
)

// collapseLevel puts the player on a failing platform at spawn, above the
// floor.
func collapseLevel(t *testing.T) *leveldata.Level {
	t.Helper()
	lvl := flatLevel(t, 1, string(KindCollapsingPlatforms))
	lvl.Respawn = leveldata.Point{X: 60, Y: 400}
	fp := box(40, 448, 90, 18)
	fp.Number = 7
	setGroup(t, lvl, leveldata.LayerFailingPlatforms, fp)
	return lvl
}

func TestCollapseAfterDelay(t *testing.T) {
	g := newTestGame(t, collapseLevel(t))
	fp := &g.Session().Failing[0]
	key := TimerKey{Kind: TimerCollapse, Index: 0}

	step(t, g, Input{})
	start, ok := g.Timers.Elapsed(key)
	if !ok || start != 0 {
		t.Fatalf("first contact should be recorded this frame, elapsed=%v ok=%v", start, ok)
	}

	// Contact at 100ms; 3s later is frame 31, removal needs strictly more.
	for i := 2; i <= 31; i++ {
		step(t, g, Input{})
	}
	if fp.Removed {
		t.Fatalf("platform removed at exactly 3s")
	}
	if d, _ := g.Timers.Elapsed(key); d != 3*time.Second {
		t.Fatalf("first contact overwritten, elapsed=%v", d)
	}

	step(t, g, Input{})
	if !fp.Removed {
		t.Fatalf("platform should be removed after 3s")
	}
	if fp.Object.Space != nil {
		t.Fatalf("removed platform still in the collision space")
	}

	for i := 0; i < 30; i++ {
		step(t, g, Input{})
	}
	if !fp.Removed {
		t.Fatalf("removal must be permanent")
	}
	if y := g.Player.Body.Object.Y; y != 528 {
		t.Fatalf("player y=%v, want fallen to the floor", y)
	}
}

func TestCollapseNeedsContact(t *testing.T) {
	lvl := flatLevel(t, 1, string(KindCollapsingPlatforms))
	setGroup(t, lvl, leveldata.LayerFailingPlatforms, box(600, 448, 90, 18))
	g := newTestGame(t, lvl)

	for i := 0; i < 50; i++ {
		step(t, g, Input{})
	}
	if g.Session().Failing[0].Removed {
		t.Fatalf("untouched platform should stay")
	}
	if _, ok := g.Timers.Elapsed(TimerKey{Kind: TimerCollapse, Index: 0}); ok {
		t.Fatalf("untouched platform should have no timer")
	}
}

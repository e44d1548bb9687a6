package gameplay

import (
	"testing"

	"github.com/automoto/platformer/shared/leveldata"
)

func TestMoverOscillates(t *testing.T) {
	lvl := flatLevel(t, 1, string(KindMovers))
	p := box(400, 400, 90, 18)
	p.MoveY = -100
	p.MoveDuration = 1
	setGroup(t, lvl, leveldata.LayerPlatforms, p, box(700, 400, 90, 18))
	g := newTestGame(t, lvl)
	plat := g.Session().Platforms[0].Object

	for i := 0; i < 5; i++ {
		step(t, g, Input{})
	}
	if !near(plat.Y, 350) {
		t.Fatalf("after 0.5s y=%v, want 350", plat.Y)
	}
	for i := 0; i < 5; i++ {
		step(t, g, Input{})
	}
	if !near(plat.Y, 300) {
		t.Fatalf("after 1s y=%v, want 300", plat.Y)
	}
	for i := 0; i < 10; i++ {
		step(t, g, Input{})
	}
	if !near(plat.Y, 400) {
		t.Fatalf("after 2s y=%v, want back at 400", plat.Y)
	}
	if still := g.Session().Platforms[1].Object; still.Y != 400 {
		t.Fatalf("platform without travel moved to %v", still.Y)
	}
}

func TestMoverCarriesPlayer(t *testing.T) {
	lvl := flatLevel(t, 1, string(KindMovers))
	lvl.Respawn = leveldata.Point{X: 60, Y: 400}
	p := box(40, 448, 90, 18)
	p.MoveX = 100
	p.MoveDuration = 1
	setGroup(t, lvl, leveldata.LayerPlatforms, p)
	g := newTestGame(t, lvl)

	for i := 0; i < 5; i++ {
		step(t, g, Input{})
	}
	if x := g.Player.Body.Object.X; !near(x, 110) {
		t.Fatalf("player x=%v, want carried to 110", x)
	}
}

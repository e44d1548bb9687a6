package gameplay

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/automoto/platformer/shared/gameconfig"
	"github.com/automoto/platformer/shared/leveldata"
)

const frame = 100 * time.Millisecond

// levelSet is an in-memory LevelSource.
type levelSet struct {
	levels map[int]*leveldata.Level
	fail   map[int]bool
}

func (ls *levelSet) Load(id int) (*leveldata.Level, error) {
	if ls.fail[id] {
		return nil, errors.New("disk on fire")
	}
	lvl, ok := ls.levels[id]
	if !ok {
		return nil, fmt.Errorf("no level %d", id)
	}
	return lvl, nil
}

func (ls *levelSet) Count() int {
	return len(ls.levels)
}

func box(x, y, w, h float64) leveldata.Object {
	return leveldata.Object{Rect: leveldata.Rect{X: x, Y: y, W: w, H: h}}
}

func floatPtr(v float64) *float64 {
	return &v
}

// flatLevel is 60x34 tiles with a floor at y=576 and the player resting on it
// at x=60 when spawned.
func flatLevel(t *testing.T, id int, controllers ...string) *leveldata.Level {
	t.Helper()
	lvl := leveldata.NewLevel(id, fmt.Sprintf("test%d", id), 60, 34, 18)
	lvl.Respawn = leveldata.Point{X: 60, Y: 528}
	lvl.Controllers = controllers
	setGroup(t, lvl, leveldata.LayerGround, box(0, 576, 1080, 36))
	return lvl
}

func setGroup(t *testing.T, lvl *leveldata.Level, layer string, objs ...leveldata.Object) {
	t.Helper()
	if err := lvl.SetGroup(layer, objs); err != nil {
		t.Fatalf("set %s: %v", layer, err)
	}
}

func newTestGame(t *testing.T, levels ...*leveldata.Level) *Game {
	t.Helper()
	ls := &levelSet{levels: make(map[int]*leveldata.Level), fail: make(map[int]bool)}
	for _, l := range levels {
		ls.levels[l.ID] = l
	}
	g, err := NewGame(ls, gameconfig.Current(), DefaultRegistry(), 1)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func step(t *testing.T, g *Game, in Input) FrameReport {
	t.Helper()
	r, err := g.Update(in, frame)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	return r
}

// near compares positions driven by float32 tweens.
func near(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

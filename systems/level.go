package systems

import (
	"image/color"
	"log"
	"time"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/gameplay"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevel advances the rules engine by the real time since the last frame.
func UpdateLevel(ecs *ecs.ECS) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	if level.Err != nil {
		return
	}
	input := components.Input.Get(entry)

	now := time.Now()
	dt := time.Second / time.Duration(ebiten.TPS())
	if !level.LastUpdate.IsZero() {
		dt = now.Sub(level.LastUpdate)
	}
	level.LastUpdate = now

	report, err := level.Game.Update(Intent(input), dt)
	level.Report = report
	if err != nil {
		level.Err = err
		log.Printf("[level] update failed: %v", err)
	}
}

// LevelError returns the error that stopped the rules engine, if any.
func LevelError(ecs *ecs.ECS) error {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).Err
}

// DrawLevel fills the background and draws every live level object as a box.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	game := components.Level.Get(levelEntry).Game
	s := game.Session()
	screen.Fill(s.Background)

	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	box := func(obj *resolv.Object, c color.Color) {
		vector.FillRect(screen,
			float32(obj.X+camX), float32(obj.Y+camY),
			float32(obj.W), float32(obj.H), c, false)
	}

	for _, g := range s.Ground {
		box(g.Object, cfg.Colors.Ground)
	}
	for _, p := range s.Platforms {
		box(p.Object, cfg.Colors.Platform)
	}
	for _, fp := range s.Failing {
		if !fp.Removed {
			box(fp.Object, cfg.Colors.FailingPlatform)
		}
	}
	for _, b := range s.Buttons {
		box(b.Object, cfg.Colors.Button)
	}
	for _, p := range s.Portals {
		box(p.Object, cfg.Colors.Portal)
	}
	for _, c := range s.Coins {
		if !c.Collected {
			box(c.Object, cfg.Colors.Coin)
		}
	}
	for _, b := range s.Boosts {
		if !b.Collected {
			box(b.Object, cfg.Colors.Boost)
		}
	}
	for _, t := range s.Traps {
		box(t.Object, cfg.Colors.Trap)
	}
	for _, e := range s.Emitters {
		box(e.Object, cfg.Colors.Emitter)
	}
	for _, b := range s.Bullets {
		box(b.Object, cfg.Colors.Bullet)
	}

	playerColor := cfg.Colors.Player
	if game.Timers.Active(gameplay.TimerKey{Kind: gameplay.TimerInvulnerable}, game.Rules().Player.InvulnerableFor) {
		playerColor = cfg.Colors.PlayerHurt
	}
	box(game.Player.Body.Object, playerColor)
}

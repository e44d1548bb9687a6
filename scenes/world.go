package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/gameplay"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs   *ecs.ECS
	game  *gameplay.Game
	debug bool
	once  sync.Once
}

// NewPlatformerScene creates the play scene around an already loaded game.
func NewPlatformerScene(game *gameplay.Game, debug bool) *PlatformerScene {
	return &PlatformerScene{game: game, debug: debug}
}

// Update runs one frame. An engine error ends the run loop.
func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
	return systems.LevelError(ps.ecs)
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateLevel)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	ps.ecs = ecs

	factory.CreateLevel(ps.ecs, ps.game)
	factory.CreateCamera(ps.ecs)
	factory.CreateSettings(ps.ecs, ps.debug)
}

package systems

import (
	"math"

	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	game := components.Level.Get(levelEntry).Game
	s := game.Session()
	obj := game.Player.Body.Object

	target := dmath.NewVec2(obj.X+obj.W/2, obj.Y+obj.H/2)

	// Camera bounds: ensure the level always fills the screen
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	target.X = clampCamera(target.X, screenWidth, s.EndOfMapX)
	target.Y = clampCamera(target.Y, screenHeight, s.FloorY)

	// A new session snaps the camera instead of sweeping across the level.
	if camera.Following != s {
		camera.Position = target
		camera.Following = s
		return
	}
	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

func clampCamera(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}

// cameraOffset returns the translation from world to screen coordinates.
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (x, y float64, ok bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

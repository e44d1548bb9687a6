package systems

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/gameplay"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the hitbox overlay. While it is on, R reloads the
// current level.
func UpdateDebug(ecs *ecs.ECS) {
	settings := getSettings(ecs)
	levelEntry, ok := components.Level.First(ecs.World)
	if settings == nil || !ok {
		return
	}
	input := components.Input.Get(levelEntry)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}

	if settings.Debug && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		level := components.Level.Get(levelEntry)
		id := level.Game.Session().LevelIndex
		if err := level.Game.LoadLevel(id); err != nil {
			log.Printf("[debug] reload level %d: %v", id, err)
		}
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := getSettings(ecs)
	if settings == nil || !settings.Debug {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	for _, obj := range level.Game.Session().World.Space.Objects() {
		x := obj.X + camX
		y := obj.Y + camY
		// Cull objects outside viewport
		if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
			continue
		}

		c := cfg.Cyan
		switch {
		case obj.HasTags(gameplay.TagSolid):
			c = color.RGBA{100, 100, 100, 255} // Grey
		case obj.HasTags(gameplay.TagPlayer):
			c = color.RGBA{0, 0, 255, 255} // Blue
		case obj.HasTags(gameplay.TagTrap), obj.HasTags(gameplay.TagBullet):
			c = color.RGBA{255, 0, 0, 255} // Red
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), cfg.Debug.HitboxWidth, c, false)
	}

	r := level.Report
	line := fmt.Sprintf("%s  motion=%s  dmg=%d  bullets=%d  t=%s",
		r.Outcome, level.Game.Player.Motion(), r.Damage, len(level.Game.Session().Bullets), level.Game.Clock.Now().Truncate(100*time.Millisecond))
	text.Draw(screen, line, fonts.Small.Get(), cfg.UI.Margin, screen.Bounds().Dy()-cfg.UI.Margin, cfg.UI.TextColor)
}

func getSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Settings.Get(entry)
}

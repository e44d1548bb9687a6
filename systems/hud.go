package systems

import (
	"fmt"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders score, health and level in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	p := level.Game.Player
	face := fonts.HUD.Get()

	x := cfg.UI.Margin
	y := cfg.UI.Margin + cfg.UI.LineHeight
	text.Draw(screen, fmt.Sprintf("Score: %d", p.Score), face, x, y, cfg.UI.TextColor)
	y += cfg.UI.LineHeight
	text.Draw(screen, fmt.Sprintf("Health: %d/%d", p.Health, p.MaxHealth), face, x, y, cfg.UI.TextColor)
	y += cfg.UI.LineHeight
	text.Draw(screen, fmt.Sprintf("Level: %d/%d", level.Game.Session().LevelIndex, level.Game.LevelCount()), face, x, y, cfg.UI.TextColor)

	if level.Err != nil {
		y += cfg.UI.LineHeight
		text.Draw(screen, level.Err.Error(), fonts.Small.Get(), x, y, cfg.UI.ErrorColor)
	}
}

package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/gameplay"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the entity that carries the rules engine.
func CreateLevel(ecs *ecs.ECS, game *gameplay.Game) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{Game: game})
	return level
}

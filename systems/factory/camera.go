package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}

func CreateSettings(ecs *ecs.ECS, debug bool) {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.Set(settings, &components.SettingsData{Debug: debug})
}

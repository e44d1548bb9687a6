package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Debug bool // Hitbox overlay
}

var Settings = donburi.NewComponentType[SettingsData]()

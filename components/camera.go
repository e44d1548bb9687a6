package components

import (
	"github.com/automoto/platformer/gameplay"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position  math.Vec2         // World point at the centre of the screen
	Following *gameplay.Session // A different session snaps the camera instead of easing
}

var Camera = donburi.NewComponentType[CameraData]()

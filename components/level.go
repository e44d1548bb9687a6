package components

import (
	"time"

	"github.com/automoto/platformer/gameplay"
	"github.com/yohamta/donburi"
)

// LevelData holds the rules engine and what the last frame reported.
type LevelData struct {
	Game       *gameplay.Game
	LastUpdate time.Time // Zero until the first frame
	Report     gameplay.FrameReport
	Err        error // Set when the engine fails; stops the run loop
}

var Level = donburi.NewComponentType[LevelData]()

package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// ColorConfig contains the fill colours for each kind of level object
type ColorConfig struct {
	Ground          color.RGBA
	Platform        color.RGBA
	FailingPlatform color.RGBA
	Coin            color.RGBA
	Boost           color.RGBA
	Trap            color.RGBA
	Button          color.RGBA
	Portal          color.RGBA
	Emitter         color.RGBA
	Bullet          color.RGBA
	Player          color.RGBA
	PlayerHurt      color.RGBA // Player colour while invulnerable
}

// UIConfig contains HUD layout values
type UIConfig struct {
	Margin     int
	LineHeight int
	FontSize   float64
	TextColor  color.RGBA
	ErrorColor color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Hitboxes    bool // Draw collision boxes on start
	StartLevel  int  // Level to start on
	HitboxWidth float32
}

// Global configuration instances
var C *Config
var Colors ColorConfig
var UI UIConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green    = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Purple   = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Orange   = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Grey     = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Brown    = color.RGBA{R: 120, G: 80, B: 40, A: 255}
	Cyan     = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Platformer",
	}

	Colors = ColorConfig{
		Ground:          Brown,
		Platform:        Grey,
		FailingPlatform: color.RGBA{R: 170, G: 120, B: 60, A: 255},
		Coin:            Yellow,
		Boost:           Green,
		Trap:            Red,
		Button:          Orange,
		Portal:          Purple,
		Emitter:         color.RGBA{R: 60, G: 60, B: 60, A: 255},
		Bullet:          LightRed,
		Player:          White,
		PlayerHurt:      color.RGBA{R: 255, G: 255, B: 255, A: 120},
	}

	UI = UIConfig{
		Margin:     10,
		LineHeight: 20,
		FontSize:   16,
		TextColor:  White,
		ErrorColor: Red,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.2,
	}

	Debug = DebugConfig{
		Hitboxes:    false,
		StartLevel:  1,
		HitboxWidth: 1,
	}
}

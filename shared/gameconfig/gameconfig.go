// Package gameconfig holds the gameplay tuning shared by the headless rules
// engine and the client. It must not import ebiten or any graphics library so
// the rules stay testable without a display.
package gameconfig

import "time"

// PlayerRules contains player movement and survivability values.
type PlayerRules struct {
	MovementSpeed   float64 // Horizontal speed while a direction is held
	JumpSpeed       float64 // Base upward speed on jump
	BoostMultiplier float64 // Jump speed multiplier while boosted
	JumpTolerance   float64 // Max distance to ground that still allows a jump

	MaxHealth int

	InvulnerableFor time.Duration // Window after trap damage
	BoostFor        time.Duration // Window after collecting a boost pickup

	Width  float64
	Height float64
}

// PhysicsRules contains the kinematics integrator values.
type PhysicsRules struct {
	Gravity            float64 // Added to vertical speed each tick (y-down)
	VerticalSpeedClamp float64 // Max magnitude of vertical movement per tick
	GroundProbe        float64 // Downward probe used for platform contact
}

// HazardRules contains hazard controller values.
type HazardRules struct {
	TrapSpeed float64 // Default moving-trap speed when a trap has none

	CollapseDelay time.Duration

	LaserCooldownTicks int // Ticks between volleys; counts frames, not time
	BulletSpeed        float64
	BulletWidth        float64
	BulletHeight       float64

	MoverDuration time.Duration // Default one-way duration for moving platforms
}

// WorldRules contains level geometry values.
type WorldRules struct {
	GridPixelSize int // Tile size used to derive the end of the map
	CellSize      int // Broad-phase cell size for the collision space
	FirstLevel    int
}

// Rules bundles every rule table so a session can carry its own copy.
type Rules struct {
	Player  PlayerRules
	Physics PhysicsRules
	Hazard  HazardRules
	World   WorldRules
}

// Global rule instances
var Player PlayerRules
var Physics PhysicsRules
var Hazard HazardRules
var World WorldRules

func init() {
	Player = PlayerRules{
		MovementSpeed:   5,
		JumpSpeed:       15,
		BoostMultiplier: 2,
		JumpTolerance:   10,

		MaxHealth: 3,

		InvulnerableFor: 2 * time.Second,
		BoostFor:        3 * time.Second,

		Width:  32,
		Height: 48,
	}

	Physics = PhysicsRules{
		Gravity:            1,
		VerticalSpeedClamp: 16,
		GroundProbe:        1,
	}

	Hazard = HazardRules{
		TrapSpeed: 2,

		CollapseDelay: 3 * time.Second,

		LaserCooldownTicks: 100,
		BulletSpeed:        5,
		BulletWidth:        18,
		BulletHeight:       6,

		MoverDuration: 2 * time.Second,
	}

	World = WorldRules{
		GridPixelSize: 18,
		CellSize:      18,
		FirstLevel:    1,
	}
}

// Current returns a snapshot of the global rule tables.
func Current() Rules {
	return Rules{
		Player:  Player,
		Physics: Physics,
		Hazard:  Hazard,
		World:   World,
	}
}

package gameplay

import (
	"github.com/automoto/platformer/shared/gameconfig"
	"github.com/automoto/platformer/shared/gamemath"
)

// Facing is the direction the player sprite looks.
type Facing int

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// Motion is the derived movement state used for drawing.
type Motion int

const (
	Idle Motion = iota
	Moving
	Airborne
)

func (m Motion) String() string {
	switch m {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case Airborne:
		return "airborne"
	}
	return "unknown"
}

// Input is the player's intent for one frame.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	Down  bool
}

// Player is the state that survives level transitions. Its Body is rebuilt
// in every session.
type Player struct {
	Body      Body
	Health    int
	MaxHealth int
	Score     int
	Facing    Facing
	JumpArmed bool
}

// NewPlayer returns a player at full health with no score.
func NewPlayer(rules gameconfig.PlayerRules) *Player {
	return &Player{
		Health:    rules.MaxHealth,
		MaxHealth: rules.MaxHealth,
		Facing:    FacingRight,
	}
}

// Reset restores the player to its starting values after a death.
func (p *Player) Reset() {
	p.Health = p.MaxHealth
	p.Score = 0
	p.Facing = FacingRight
	p.JumpArmed = false
	p.Body.SpeedX = 0
	p.Body.SpeedY = 0
}

// Damage removes one hit-point, never going below zero.
func (p *Player) Damage() {
	p.Health = gamemath.ClampInt(p.Health-1, 0, p.MaxHealth)
}

// Dead reports whether the player has no health left.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// Motion derives the movement state from the body.
func (p *Player) Motion() Motion {
	if !p.Body.OnGround {
		return Airborne
	}
	if p.Body.SpeedX != 0 {
		return Moving
	}
	return Idle
}

// applyIntent sets horizontal speed and starts a jump when allowed. jumpSpeed
// already includes any boost.
func (p *Player) applyIntent(in Input, speed, jumpSpeed float64, canJump bool) {
	dir := gamemath.HorizontalIntent(in.Left, in.Right)
	p.Body.SpeedX = float64(dir) * speed
	if dir != 0 {
		p.Facing = Facing(dir)
	}

	if !in.Jump {
		p.JumpArmed = false
		return
	}
	if in.Down || p.JumpArmed || !canJump {
		return
	}
	p.Body.SpeedY = -jumpSpeed
	p.Body.OnGround = false
	p.JumpArmed = true
}

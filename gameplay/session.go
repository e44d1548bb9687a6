package gameplay

import (
	"fmt"
	"image/color"

	"github.com/automoto/platformer/shared/gameconfig"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Fixture is a static object the player can overlap: a button or a portal.
type Fixture struct {
	Object *resolv.Object
}

// Pickup is a coin or a boost. Collected pickups leave the space for good.
type Pickup struct {
	Object    *resolv.Object
	Collected bool
}

// Trap hurts on contact. A trap with ActivatedByButton rises while a button is
// held and sinks otherwise, stopping only at the bounds it has. Dir is +1
// toward BoundaryTop (smaller Y), -1 toward BoundaryBottom, 0 at rest.
type Trap struct {
	Object            *resolv.Object
	Dir               int
	Speed             float64
	BoundaryTop       *float64
	BoundaryBottom    *float64
	ActivatedByButton bool
}

// Emitter is a laser turret position.
type Emitter struct {
	Object *resolv.Object
}

// Bullet is a laser shot travelling left.
type Bullet struct {
	Object *resolv.Object
	SpeedX float64
}

// FailingPlatform is a solid platform that disappears a fixed time after the
// player first touches it.
type FailingPlatform struct {
	Object  *resolv.Object
	Number  int
	Removed bool
}

// Platform is a solid platform. Platforms with travel configured are moved by
// the mover controller.
type Platform struct {
	Object *resolv.Object
	Origin leveldata.Point
	MoveX  float64
	MoveY  float64
	Period float64 // seconds, one way
}

// Moves reports whether the platform has travel configured.
func (p *Platform) Moves() bool {
	return p.MoveX != 0 || p.MoveY != 0
}

// Session is the state of the level being played. It is rebuilt from static
// level data on every load; only the Player outlives it.
type Session struct {
	LevelIndex int
	Respawn    leveldata.Point
	EndOfMapX  float64
	FloorY     float64
	Background color.RGBA

	World      *World
	Kinematics *Kinematics

	Ground    []Fixture
	Platforms []Platform
	Failing   []FailingPlatform
	Coins     []Pickup
	Boosts    []Pickup
	Traps     []Trap
	Buttons   []Fixture
	Portals   []Fixture
	Emitters  []Emitter
	Bullets   []*Bullet

	controllers []Controller
	kinds       []ControllerKind

	rules  gameconfig.Rules
	timers *TimerBank
}

// NewSession builds a session for level. The player is not attached; the
// caller attaches it once the build has succeeded.
func NewSession(level *leveldata.Level, rules gameconfig.Rules, timers *TimerBank, registry *Registry) (*Session, error) {
	s := &Session{
		LevelIndex: level.ID,
		Respawn:    level.Respawn,
		EndOfMapX:  float64(level.Width * rules.World.GridPixelSize),
		FloorY:     float64(level.PixelHeight()),
		Background: level.Background,
		World:      NewWorld(level.PixelWidth(), level.PixelHeight(), rules.World.CellSize),
		rules:      rules,
		timers:     timers,
	}
	s.Kinematics = NewKinematics(s.World, rules.Physics)

	if err := s.populate(level); err != nil {
		return nil, fmt.Errorf("level %d: %w", level.ID, err)
	}
	if err := s.checkRespawn(); err != nil {
		return nil, fmt.Errorf("level %d: %w", level.ID, err)
	}

	for _, name := range level.Controllers {
		kind := ControllerKind(name)
		c, err := registry.Build(kind, s)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", level.ID, err)
		}
		s.controllers = append(s.controllers, c)
		s.kinds = append(s.kinds, kind)
	}

	return s, nil
}

func (s *Session) populate(level *leveldata.Level) error {
	groups := make(map[string][]leveldata.Object)
	for _, name := range []string{
		leveldata.LayerGround, leveldata.LayerPlatforms, leveldata.LayerFailingPlatforms,
		leveldata.LayerCoins, leveldata.LayerBoost, leveldata.LayerTraps,
		leveldata.LayerButtons, leveldata.LayerPortals, leveldata.LayerLasers,
	} {
		objs, err := level.Group(name)
		if err != nil {
			return fmt.Errorf("layer %s: %w", name, err)
		}
		groups[name] = objs
	}

	for i, o := range groups[leveldata.LayerGround] {
		s.Ground = append(s.Ground, Fixture{Object: s.World.NewBox(o.X, o.Y, o.W, o.H, i, TagSolid, TagGround)})
	}
	for i, o := range groups[leveldata.LayerPlatforms] {
		p := Platform{
			Object: s.World.NewBox(o.X, o.Y, o.W, o.H, i, TagSolid, TagPlatform),
			Origin: leveldata.Point{X: o.X, Y: o.Y},
			MoveX:  o.MoveX,
			MoveY:  o.MoveY,
			Period: o.MoveDuration,
		}
		s.Platforms = append(s.Platforms, p)
	}
	for i, o := range groups[leveldata.LayerFailingPlatforms] {
		s.Failing = append(s.Failing, FailingPlatform{
			Object: s.World.NewBox(o.X, o.Y, o.W, o.H, i, TagSolid, TagFailing),
			Number: o.Number,
		})
	}
	for i, o := range groups[leveldata.LayerCoins] {
		s.Coins = append(s.Coins, Pickup{Object: s.World.NewBox(o.X, o.Y, o.W, o.H, i, TagCoin)})
	}
	for i, o := range groups[leveldata.LayerBoost] {
		s.Boosts = append(s.Boosts, Pickup{Object: s.World.NewBox(o.X, o.Y, o.W, o.H, i, TagBoost)})
	}
	for i, o := range groups[leveldata.LayerTraps] {
		speed := o.Speed
		if speed == 0 {
			speed = s.rules.Hazard.TrapSpeed
		}
		s.Traps = append(s.Traps, Trap{
			Object:            s.World.NewBox(o.X, o.Y, o.W, o.H, i, TagTrap),
			Speed:             speed,
			BoundaryTop:       o.BoundaryTop,
			BoundaryBottom:    o.BoundaryBottom,
			ActivatedByButton: o.ActivatedByButton,
		})
	}
	for i, o := range groups[leveldata.LayerButtons] {
		s.Buttons = append(s.Buttons, Fixture{Object: s.World.NewBox(o.X, o.Y, o.W, o.H, i, TagButton)})
	}
	for i, o := range groups[leveldata.LayerPortals] {
		s.Portals = append(s.Portals, Fixture{Object: s.World.NewBox(o.X, o.Y, o.W, o.H, i, TagPortal)})
	}
	for i, o := range groups[leveldata.LayerLasers] {
		s.Emitters = append(s.Emitters, Emitter{Object: s.World.NewBox(o.X, o.Y, o.W, o.H, i, TagEmitter)})
	}
	return nil
}

func (s *Session) checkRespawn() error {
	pr := s.rules.Player
	for _, p := range s.Portals {
		o := p.Object
		if boxesOverlap(s.Respawn.X, s.Respawn.Y, pr.Width, pr.Height, o.X, o.Y, o.W, o.H) {
			return fmt.Errorf("%w: (%.0f, %.0f)", ErrRespawnOnPortal, s.Respawn.X, s.Respawn.Y)
		}
	}
	return nil
}

// attach places the player's body at the respawn point in this session. The
// jump latch carries over so a held key does not fire again after a reload.
func (s *Session) attach(p *Player) {
	pr := s.rules.Player
	p.Body = Body{
		Object: s.World.NewBox(s.Respawn.X, s.Respawn.Y, pr.Width, pr.Height, p, TagPlayer),
	}
}

// Controllers returns the kinds of hazard controllers this session runs.
func (s *Session) Controllers() []ControllerKind {
	return s.kinds
}

// spawnBullet adds a bullet at (x, y) travelling at speedX.
func (s *Session) spawnBullet(x, y, speedX float64) *Bullet {
	hz := s.rules.Hazard
	b := &Bullet{SpeedX: speedX}
	b.Object = s.World.NewBox(x, y, hz.BulletWidth, hz.BulletHeight, b, TagBullet)
	s.Bullets = append(s.Bullets, b)
	return b
}

// removeBullets drops every bullet for which drop returns true.
func (s *Session) removeBullets(drop func(*Bullet) bool) int {
	kept := s.Bullets[:0]
	removed := 0
	for _, b := range s.Bullets {
		if drop(b) {
			s.World.Remove(b.Object)
			removed++
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(s.Bullets); i++ {
		s.Bullets[i] = nil
	}
	s.Bullets = kept
	return removed
}

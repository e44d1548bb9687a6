// Package gameplay is the per-frame rules engine: player state, hazard
// controllers and level sessions. It has no graphics dependency.
package gameplay

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/platformer/shared/gameconfig"
	"github.com/automoto/platformer/shared/leveldata"
)

// LevelSource supplies static level data by 1-based id.
type LevelSource interface {
	Load(id int) (*leveldata.Level, error)
	Count() int
}

// Outcome is what the frame decided about the session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeRespawn
	OutcomeAdvance
	OutcomeDied
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeRespawn:
		return "respawn"
	case OutcomeAdvance:
		return "advance"
	case OutcomeDied:
		return "died"
	}
	return "unknown"
}

// FrameReport summarises one Update for the host.
type FrameReport struct {
	Outcome Outcome
	Level   int // level being played after the update
	Coins   int // coins collected this frame
	Damage  int // hit-points lost this frame
}

// Game owns everything that outlives a level: the player, the clock and the
// timer bank. It replaces its session wholesale on every reload.
type Game struct {
	Player *Player
	Clock  *Clock
	Timers *TimerBank

	levels   LevelSource
	rules    gameconfig.Rules
	registry *Registry
	session  *Session
}

// NewGame loads startLevel and places a fresh player in it.
func NewGame(levels LevelSource, rules gameconfig.Rules, registry *Registry, startLevel int) (*Game, error) {
	clock := &Clock{}
	g := &Game{
		Player:   NewPlayer(rules.Player),
		Clock:    clock,
		Timers:   NewTimerBank(clock),
		levels:   levels,
		rules:    rules,
		registry: registry,
	}
	s, err := g.build(startLevel)
	if err != nil {
		return nil, err
	}
	g.swap(s)
	return g, nil
}

// Session returns the active session.
func (g *Game) Session() *Session {
	return g.session
}

// Update runs one frame: intent, kinematics, one collision snapshot, the
// clock, hazard controllers and finally the player rules. If the rules
// ask for a reload and it fails, the error is returned and the previous
// session stays active.
func (g *Game) Update(in Input, dt time.Duration) (FrameReport, error) {
	s := g.session
	p := g.Player
	pr := g.rules.Player

	jumpSpeed := pr.JumpSpeed
	if g.Timers.Active(TimerKey{Kind: TimerBoost}, pr.BoostFor) {
		jumpSpeed *= pr.BoostMultiplier
	}
	p.applyIntent(in, pr.MovementSpeed, jumpSpeed, s.Kinematics.CanJump(&p.Body, pr.JumpTolerance))

	s.Kinematics.Advance(&p.Body)
	for _, c := range s.controllers {
		if i, ok := c.(Integrator); ok {
			i.Integrate(dt)
		}
	}

	ctx := s.snapshot(p, dt)
	g.Clock.Advance(dt)

	for _, c := range s.controllers {
		c.Update(ctx)
	}

	report := g.applyRules(ctx)
	if err := g.resolve(&report); err != nil {
		return report, err
	}
	return report, nil
}

func (g *Game) applyRules(ctx *FrameContext) FrameReport {
	s := g.session
	p := g.Player
	pr := g.rules.Player
	report := FrameReport{Level: s.LevelIndex}

	for _, i := range ctx.Coins {
		if collect(s, &s.Coins[i]) {
			p.Score++
			report.Coins++
		}
	}
	for _, i := range ctx.Boosts {
		if collect(s, &s.Boosts[i]) {
			g.Timers.Start(TimerKey{Kind: TimerBoost})
		}
	}

	invulnerable := TimerKey{Kind: TimerInvulnerable}
	if len(ctx.Traps) > 0 && !g.Timers.Active(invulnerable, pr.InvulnerableFor) {
		p.Damage()
		g.Timers.Start(invulnerable)
		report.Damage++
	}

	// Bullets bypass invulnerability.
	if len(ctx.Bullets) > 0 {
		hit := make(map[*Bullet]bool, len(ctx.Bullets))
		for _, b := range ctx.Bullets {
			hit[b] = true
		}
		s.removeBullets(func(b *Bullet) bool { return hit[b] })
		p.Damage()
		report.Damage++
	}

	switch {
	case p.Dead():
		report.Outcome = OutcomeDied
	case len(ctx.Portals) > 0:
		report.Outcome = OutcomeAdvance
	case s.outOfBounds(&p.Body):
		report.Outcome = OutcomeRespawn
	}
	return report
}

func collect(s *Session, pk *Pickup) bool {
	if pk.Collected {
		return false
	}
	pk.Collected = true
	s.World.Remove(pk.Object)
	return true
}

func (s *Session) outOfBounds(b *Body) bool {
	cx := b.CenterX()
	return cx <= 0 || cx >= s.EndOfMapX || b.Object.Y > s.FloorY
}

// resolve performs the reload the report asks for and updates report.Level.
func (g *Game) resolve(report *FrameReport) error {
	var next int
	switch report.Outcome {
	case OutcomeNone:
		return nil
	case OutcomeDied:
		next = g.rules.World.FirstLevel
	case OutcomeAdvance:
		next = g.session.LevelIndex + 1
		if next > g.levels.Count() {
			next = g.rules.World.FirstLevel
		}
	case OutcomeRespawn:
		next = g.session.LevelIndex
	}

	s, err := g.build(next)
	if err != nil {
		return fmt.Errorf("%s: %w", report.Outcome, err)
	}
	if report.Outcome == OutcomeDied {
		g.Player.Reset()
		g.Timers.Clear(TimerKey{Kind: TimerInvulnerable})
		g.Timers.Clear(TimerKey{Kind: TimerBoost})
	}
	g.swap(s)
	report.Level = s.LevelIndex
	log.Printf("[game] %s: now on level %d (score %d, health %d)",
		report.Outcome, s.LevelIndex, g.Player.Score, g.Player.Health)
	return nil
}

// LoadLevel replaces the session with a fresh copy of level id. Score and
// health are kept.
func (g *Game) LoadLevel(id int) error {
	s, err := g.build(id)
	if err != nil {
		return err
	}
	g.swap(s)
	return nil
}

func (g *Game) build(id int) (*Session, error) {
	level, err := g.levels.Load(id)
	if err != nil {
		return nil, fmt.Errorf("%w %d: %w", ErrLevelNotFound, id, err)
	}
	return NewSession(level, g.rules, g.Timers, g.registry)
}

func (g *Game) swap(s *Session) {
	g.Timers.ClearKind(TimerCollapse)
	s.attach(g.Player)
	g.session = s
}

// Rules returns the rule tables the game runs with.
func (g *Game) Rules() gameconfig.Rules {
	return g.rules
}

// LevelCount returns the number of playable levels.
func (g *Game) LevelCount() int {
	return g.levels.Count()
}

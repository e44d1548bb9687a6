package gameplay

import (
	"time"

	"github.com/solarlune/resolv"
)

// FrameContext is the single collision snapshot of a frame. Controllers and
// player rules act on it; nobody queries the space again until the next frame.
type FrameContext struct {
	Delta  time.Duration
	Player *Player

	Coins    []int     // indexes into Session.Coins
	Boosts   []int     // indexes into Session.Boosts
	Traps    []int     // indexes into Session.Traps
	Buttons  []int     // indexes into Session.Buttons
	Portals  []int     // indexes into Session.Portals
	Failing  []int     // failing platforms the player stands on or touches
	Standing []int     // platforms the player stands on
	Bullets  []*Bullet // bullets touching the player
}

// ButtonHeld reports whether the player is on any button this frame.
func (c *FrameContext) ButtonHeld() bool {
	return len(c.Buttons) > 0
}

// snapshot records every pairing the frame needs in one pass.
func (s *Session) snapshot(p *Player, dt time.Duration) *FrameContext {
	obj := p.Body.Object
	probe := s.rules.Physics.GroundProbe
	w := s.World

	ctx := &FrameContext{
		Delta:    dt,
		Player:   p,
		Coins:    indexes(w.Overlaps(obj, 0, 0, TagCoin)),
		Boosts:   indexes(w.Overlaps(obj, 0, 0, TagBoost)),
		Traps:    indexes(w.Overlaps(obj, 0, 0, TagTrap)),
		Buttons:  indexes(w.Overlaps(obj, 0, 0, TagButton)),
		Portals:  indexes(w.Overlaps(obj, 0, 0, TagPortal)),
		Failing:  indexes(w.Overlaps(obj, 0, probe, TagFailing)),
		Standing: indexes(w.Overlaps(obj, 0, probe, TagPlatform)),
	}
	for _, hit := range w.Overlaps(obj, 0, 0, TagBullet) {
		if b, ok := hit.Data.(*Bullet); ok {
			ctx.Bullets = append(ctx.Bullets, b)
		}
	}
	return ctx
}

// indexes maps overlapping arena boxes back to their slots. populate stores
// each slot as the box's Data; anything else is not an arena box.
func indexes(objs []*resolv.Object) []int {
	var out []int
	for _, o := range objs {
		if i, ok := o.Data.(int); ok {
			out = append(out, i)
		}
	}
	return out
}

package gameplay

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type mover struct {
	index    int
	tween    *gween.Sequence
	progress float32
	carryX   float64
}

// MoverController slides platforms back and forth between their origin and
// origin plus their configured travel. A player standing on a platform is
// carried horizontally with it.
type MoverController struct {
	session *Session
	movers  []*mover
}

// NewMoverController binds to the platforms of s that have travel set.
func NewMoverController(s *Session) *MoverController {
	c := &MoverController{session: s}
	fallback := float32(s.rules.Hazard.MoverDuration.Seconds())
	for i := range s.Platforms {
		p := &s.Platforms[i]
		if !p.Moves() {
			continue
		}
		period := float32(p.Period)
		if period <= 0 {
			period = fallback
		}
		tw := gween.NewSequence()
		tw.Add(
			gween.New(0, 1, period, ease.Linear),
			gween.New(1, 0, period, ease.Linear),
		)
		c.movers = append(c.movers, &mover{index: i, tween: tw})
	}
	return c
}

// Integrate advances every platform along its path by dt.
func (c *MoverController) Integrate(dt time.Duration) {
	for _, m := range c.movers {
		p := &c.session.Platforms[m.index]
		progress, _, finished := m.tween.Update(float32(dt.Seconds()))
		if finished {
			m.tween.Reset()
		}
		m.progress = progress

		x := p.Origin.X + p.MoveX*float64(progress)
		y := p.Origin.Y + p.MoveY*float64(progress)
		m.carryX = x - p.Object.X
		move(p.Object, x, y)
	}
}

// Update carries a standing player along with the platform under them.
func (c *MoverController) Update(ctx *FrameContext) {
	if len(ctx.Standing) == 0 || ctx.Player == nil {
		return
	}
	for _, m := range c.movers {
		for _, i := range ctx.Standing {
			if i != m.index || m.carryX == 0 {
				continue
			}
			obj := ctx.Player.Body.Object
			move(obj, obj.X+m.carryX, obj.Y)
			return
		}
	}
}

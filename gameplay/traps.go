package gameplay

import (
	"time"

	"github.com/automoto/platformer/shared/gamemath"
)

// TrapController moves button-activated traps. While the player holds a
// button the traps rise toward their top bound; otherwise they sink back.
type TrapController struct {
	session *Session
	traps   []int
}

// NewTrapController binds to the moving traps of s.
func NewTrapController(s *Session) *TrapController {
	c := &TrapController{session: s}
	for i := range s.Traps {
		if s.Traps[i].ActivatedByButton {
			c.traps = append(c.traps, i)
		}
	}
	return c
}

// Integrate moves each trap one step in its current direction, stopping at
// the bound it travels toward when it has one.
func (c *TrapController) Integrate(time.Duration) {
	for _, i := range c.traps {
		t := &c.session.Traps[i]
		if t.Dir == 0 {
			continue
		}
		limit := t.BoundaryBottom
		if t.Dir > 0 {
			limit = t.BoundaryTop
		}
		// Dir +1 is up the screen, which is decreasing Y.
		y := gamemath.StepToward(t.Object.Y, t.Speed, -t.Dir, limit)
		move(t.Object, t.Object.X, y)
	}
}

// Update picks each trap's direction from the button state of this frame.
func (c *TrapController) Update(ctx *FrameContext) {
	held := ctx.ButtonHeld()
	for _, i := range c.traps {
		t := &c.session.Traps[i]
		t.Dir = trapDirection(t, held)
	}
}

func trapDirection(t *Trap, held bool) int {
	y := t.Object.Y
	if held {
		if t.BoundaryTop != nil && y <= *t.BoundaryTop {
			return 0
		}
		return 1
	}
	if t.BoundaryBottom != nil && y >= *t.BoundaryBottom {
		return 0
	}
	return -1
}

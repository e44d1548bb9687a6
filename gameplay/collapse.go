package gameplay

import "log"

// CollapseController removes failing platforms a fixed delay after the player
// first touches them.
type CollapseController struct {
	session *Session
}

// NewCollapseController binds to the failing platforms of s.
func NewCollapseController(s *Session) *CollapseController {
	return &CollapseController{session: s}
}

func (c *CollapseController) Update(ctx *FrameContext) {
	s := c.session
	for _, i := range ctx.Failing {
		if !s.Failing[i].Removed {
			s.timers.StartOnce(TimerKey{Kind: TimerCollapse, Index: i})
		}
	}

	delay := s.rules.Hazard.CollapseDelay
	for i := range s.Failing {
		fp := &s.Failing[i]
		if fp.Removed {
			continue
		}
		elapsed, ok := s.timers.Elapsed(TimerKey{Kind: TimerCollapse, Index: i})
		if !ok || elapsed <= delay {
			continue
		}
		s.World.Remove(fp.Object)
		fp.Removed = true
		log.Printf("[collapse] level %d platform %d removed", s.LevelIndex, fp.Number)
	}
}

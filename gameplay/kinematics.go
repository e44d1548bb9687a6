package gameplay

import (
	"math"

	"github.com/automoto/platformer/shared/gameconfig"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Body is a moving box in the collision space.
type Body struct {
	Object *resolv.Object
	SpeedX float64
	SpeedY float64

	OnGround bool
}

// CenterX returns the horizontal centre of the body.
func (b *Body) CenterX() float64 {
	return b.Object.X + b.Object.W/2
}

// Kinematics integrates bodies under gravity against the solid walls of a
// world.
type Kinematics struct {
	world *World
	rules gameconfig.PhysicsRules
}

// NewKinematics returns an integrator for w.
func NewKinematics(w *World, rules gameconfig.PhysicsRules) *Kinematics {
	return &Kinematics{world: w, rules: rules}
}

// Advance applies gravity and moves b one tick, stopping it at walls.
func (k *Kinematics) Advance(b *Body) {
	obj := b.Object

	// --- Horizontal ---
	if dx := b.SpeedX; dx != 0 {
		x := obj.X + dx
		for _, wall := range k.world.Overlaps(obj, dx, 0, TagSolid) {
			if dx > 0 && wall.X >= obj.X+obj.W {
				x = math.Min(x, wall.X-obj.W)
			}
			if dx < 0 && wall.X+wall.W <= obj.X {
				x = math.Max(x, wall.X+wall.W)
			}
		}
		move(obj, x, obj.Y)
	}

	// --- Vertical ---
	b.SpeedY += k.rules.Gravity
	dy := gamemath.ClampSpeed(b.SpeedY, k.rules.VerticalSpeedClamp)

	probe := dy
	if dy >= 0 {
		probe += k.rules.GroundProbe
	}
	walls := k.world.Overlaps(obj, 0, probe, TagSolid)

	if dy >= 0 {
		// Landing: rest on the highest wall top below the body's top edge.
		top, found := math.Inf(1), false
		for _, wall := range walls {
			if wall.Y > obj.Y && wall.Y < top {
				top, found = wall.Y, true
			}
		}
		if found {
			move(obj, obj.X, top-obj.H)
			b.SpeedY = 0
			b.OnGround = true
			return
		}
	} else {
		// Ceiling: stop under the lowest wall bottom above the body's feet.
		bottom, found := math.Inf(-1), false
		for _, wall := range walls {
			if wb := wall.Y + wall.H; wb < obj.Y+obj.H && wb > bottom {
				bottom, found = wb, true
			}
		}
		if found {
			move(obj, obj.X, math.Min(bottom, obj.Y))
			b.SpeedY = 0
			b.OnGround = false
			return
		}
	}

	b.OnGround = false
	move(obj, obj.X, obj.Y+dy)
}

// CanJump reports whether a solid wall lies within tolerance pixels below b.
func (k *Kinematics) CanJump(b *Body, tolerance float64) bool {
	return len(k.world.Overlaps(b.Object, 0, tolerance, TagSolid)) > 0
}

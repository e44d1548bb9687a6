package gameplay

import (
	"sort"

	"github.com/solarlune/resolv"
)

// Resolv tags for the collision space.
const (
	TagSolid    = "solid"
	TagPlayer   = "player"
	TagCoin     = "coin"
	TagBoost    = "boost"
	TagTrap     = "trap"
	TagButton   = "button"
	TagPortal   = "portal"
	TagBullet   = "bullet"
	TagFailing  = "failing"
	TagPlatform = "platform"
	TagGround   = "ground"
	TagEmitter  = "emitter"
)

// World wraps a resolv space. resolv's Check only answers "shares a cell"; the
// world narrows that to real box overlap.
type World struct {
	Space *resolv.Space
}

// NewWorld returns a world covering width x height pixels.
func NewWorld(width, height, cellSize int) *World {
	if width < cellSize {
		width = cellSize
	}
	if height < cellSize {
		height = cellSize
	}
	return &World{Space: resolv.NewSpace(width, height, cellSize, cellSize)}
}

// NewBox creates a rectangular object and adds it to the space.
func (w *World) NewBox(x, y, width, height float64, data interface{}, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, width, height, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = data
	w.Space.Add(obj)
	return obj
}

// Remove takes obj out of the space. Removing an object twice is a no-op.
func (w *World) Remove(obj *resolv.Object) {
	if obj == nil || obj.Space == nil {
		return
	}
	w.Space.Remove(obj)
}

// Overlaps returns the objects carrying tag whose boxes strictly overlap obj's
// box shifted by (dx, dy). Touching edges do not count. Results are ordered
// left to right, then top to bottom, so callers see a stable order.
func (w *World) Overlaps(obj *resolv.Object, dx, dy float64, tag string) []*resolv.Object {
	if obj == nil || obj.Space == nil {
		return nil
	}
	check := obj.Check(dx, dy, tag)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	for _, other := range check.ObjectsByTags(tag) {
		if other == obj {
			continue
		}
		if boxesOverlap(obj.X+dx, obj.Y+dy, obj.W, obj.H, other.X, other.Y, other.W, other.H) {
			hits = append(hits, other)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].X != hits[j].X {
			return hits[i].X < hits[j].X
		}
		return hits[i].Y < hits[j].Y
	})
	return hits
}

func boxesOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}

// move sets an object's position and refreshes its cells.
func move(obj *resolv.Object, x, y float64) {
	obj.X = x
	obj.Y = y
	obj.Update()
}

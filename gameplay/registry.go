package gameplay

import (
	"fmt"
	"log"
	"sort"
	"time"
)

// ControllerKind names a hazard controller in the level manifest.
type ControllerKind string

const (
	KindMovingTraps         ControllerKind = "moving_traps"
	KindLasers              ControllerKind = "lasers"
	KindCollapsingPlatforms ControllerKind = "collapsing_platforms"
	KindMovers              ControllerKind = "movers"
)

// Controller advances one family of hazards for a frame. It may only act on
// the collisions recorded in ctx.
type Controller interface {
	Update(ctx *FrameContext)
}

// Integrator is implemented by controllers whose objects move during the
// kinematics phase, before the collision snapshot is taken.
type Integrator interface {
	Integrate(dt time.Duration)
}

// ControllerFactory builds a controller bound to a session.
type ControllerFactory func(s *Session) Controller

// Registry maps controller kinds to factories.
type Registry struct {
	factories map[ControllerKind]ControllerFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[ControllerKind]ControllerFactory)}
}

// DefaultRegistry returns a registry holding every built-in controller.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(KindMovingTraps, func(s *Session) Controller { return NewTrapController(s) })
	r.Register(KindLasers, func(s *Session) Controller { return NewLaserController(s) })
	r.Register(KindCollapsingPlatforms, func(s *Session) Controller { return NewCollapseController(s) })
	r.Register(KindMovers, func(s *Session) Controller { return NewMoverController(s) })
	return r
}

// Register adds or replaces the factory for kind.
func (r *Registry) Register(kind ControllerKind, f ControllerFactory) {
	if _, ok := r.factories[kind]; ok {
		log.Printf("[registry] replacing controller %q", kind)
	}
	r.factories[kind] = f
}

// Build creates the controller for kind bound to s.
func (r *Registry) Build(kind ControllerKind, s *Session) (Controller, error) {
	f, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownController, kind)
	}
	return f(s), nil
}

// Kinds lists the registered kinds in sorted order.
func (r *Registry) Kinds() []ControllerKind {
	kinds := make([]ControllerKind, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

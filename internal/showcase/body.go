package showcase

import (
	"sort"

	"github.com/golang/geo/r2"
)

// Body is one bouncing sprite bound to a contributor name.
type Body struct {
	Position        r2.Point // World-space centre, y up
	Velocity        r2.Point // World units per second
	Rotation        float64  // Radians
	AngularVelocity float64  // Radians per second
	Depth           float64  // Draw order, raised while selected
	Hue             float64  // Fixed at creation, [0,360]
	FlipX           bool     // Cosmetic horizontal mirroring
	Color           HSLA     // Current render colour
}

// BodyID is a stable index into a Store.
type BodyID int

// Store holds every Body. It never grows or shrinks once the showcase is built.
type Store struct {
	bodies []Body
}

func newStore(capacity int) *Store {
	return &Store{bodies: make([]Body, 0, capacity)}
}

// add appends a body and returns its id. Only the initializer calls it.
func (s *Store) add(b Body) BodyID {
	s.bodies = append(s.bodies, b)
	return BodyID(len(s.bodies) - 1)
}

// Len returns the number of bodies
func (s *Store) Len() int {
	return len(s.bodies)
}

// Get returns the body for id, or false if id does not resolve.
func (s *Store) Get(id BodyID) (*Body, bool) {
	if id < 0 || int(id) >= len(s.bodies) {
		return nil, false
	}
	return &s.bodies[id], true
}

// Each calls fn for every body in creation order.
func (s *Store) Each(fn func(id BodyID, b *Body)) {
	for i := range s.bodies {
		fn(BodyID(i), &s.bodies[i])
	}
}

// DrawOrder returns body ids sorted by ascending depth, so the selected body
// comes last. Ties keep creation order.
func (s *Store) DrawOrder() []BodyID {
	ids := make([]BodyID, len(s.bodies))
	for i := range ids {
		ids[i] = BodyID(i)
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return s.bodies[ids[i]].Depth < s.bodies[ids[j]].Depth
	})
	return ids
}

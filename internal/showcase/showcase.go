// Package showcase simulates a box of bouncing contributor sprites and
// cycles a highlight through them on a timer.
//
// World coordinates are centred on the viewport with y pointing up. Each
// Tick runs the integrator, then the boundary resolver, then the selection
// scheduler, each to completion.
package showcase

import (
	"errors"
	"sort"

	"github.com/golang/geo/r2"
)

// Default tuning values
const (
	Gravity           = -9.821 * 100.0
	SpriteSize        = 75.0
	ImpulseMin        = 700.0
	ImpulseMax        = 1000.0
	ShowcaseTimerSecs = 3.0
)

// Spawn ranges
const (
	spawnHalfWidth = 400.0
	spawnHeight    = 400.0
	launchSpeed    = 500.0
	launchSpin     = 5.0
)

// ErrNoNames is returned when the name list is empty after deduplication.
var ErrNoNames = errors.New("showcase: no names")

// Rand is the single random source behind spawn, bounce and shuffle.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// Tuning holds the physical and timing parameters.
type Tuning struct {
	Gravity    float64
	SpriteSize float64
	ImpulseMin float64
	ImpulseMax float64
	Interval   float64 // Seconds between selections
}

// DefaultTuning returns the stock parameters.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:    Gravity,
		SpriteSize: SpriteSize,
		ImpulseMin: ImpulseMin,
		ImpulseMax: ImpulseMax,
		Interval:   ShowcaseTimerSecs,
	}
}

// Showcase owns the bodies, the roster and the scheduler.
type Showcase struct {
	Store     *Store
	Roster    Roster
	Scheduler Scheduler

	tuning Tuning
	rng    Rand
}

// New deduplicates names, spawns one body per name with random kinematics
// and hue, then shuffles the roster.
func New(names []string, rng Rand, t Tuning) (*Showcase, error) {
	unique := UniqueNames(names)
	if len(unique) == 0 {
		return nil, ErrNoNames
	}

	s := &Showcase{
		Store:     newStore(len(unique)),
		Roster:    make(Roster, 0, len(unique)),
		Scheduler: NewScheduler(t.Interval),
		tuning:    t,
		rng:       rng,
	}

	for _, name := range unique {
		pos := r2.Point{
			X: rng.Float64()*2*spawnHalfWidth - spawnHalfWidth,
			Y: rng.Float64() * spawnHeight,
		}
		dir := rng.Float64()*2 - 1
		hue := rng.Float64() * 360

		// some sprites are mirrored
		flipped := rng.Float64() < 0.5

		id := s.Store.add(Body{
			Position:        pos,
			Velocity:        r2.Point{X: dir * launchSpeed},
			AngularVelocity: -dir * launchSpin,
			Depth:           DepthDeselected,
			Hue:             hue,
			FlipX:           flipped,
			Color:           DeselectedColor(hue),
		})
		s.Roster = append(s.Roster, Entry{Name: name, Body: id})
	}

	rng.Shuffle(len(s.Roster), func(i, j int) {
		s.Roster[i], s.Roster[j] = s.Roster[j], s.Roster[i]
	})

	return s, nil
}

// UniqueNames returns names with duplicates and empty strings removed,
// in sorted order.
func UniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Tick runs one simulation step. bounds is read fresh every call.
func (s *Showcase) Tick(dt float64, bounds Bounds) {
	Integrate(s.Store, s.tuning.Gravity, dt)
	ResolveBounds(s.Store, bounds, s.tuning, s.rng)
	s.Scheduler.Update(dt, s.Store, s.Roster)
}

// Skip advances the selection now and restarts the timer.
func (s *Showcase) Skip() {
	s.Scheduler.Timer.Elapsed = 0
	s.Scheduler.Advance(s.Store, s.Roster)
}

// Selected returns the highlighted entry, or false before the first selection.
func (s *Showcase) Selected() (Entry, bool) {
	return s.Scheduler.Selected()
}

// Label returns the current caption.
func (s *Showcase) Label() Label {
	return s.Scheduler.Label
}

// Tuning returns the parameters the showcase was built with.
func (s *Showcase) Tuning() Tuning {
	return s.tuning
}

package showcase

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
)

const eps = 1e-9

func storeWith(bodies ...Body) *Store {
	s := newStore(len(bodies))
	for _, b := range bodies {
		s.add(b)
	}
	return s
}

func TestIntegrateAppliesGravityThenVelocity(t *testing.T) {
	store := storeWith(Body{Velocity: r2.Point{X: 10}, AngularVelocity: 2})

	Integrate(store, Gravity, 0.5)

	b, _ := store.Get(0)
	if math.Abs(b.Velocity.Y-(-491.05)) > eps {
		t.Errorf("vy = %f, want -491.05", b.Velocity.Y)
	}
	if math.Abs(b.Position.X-5) > eps {
		t.Errorf("x = %f, want 5", b.Position.X)
	}
	if math.Abs(b.Position.Y-(-245.525)) > eps {
		t.Errorf("y = %f, want -245.525", b.Position.Y)
	}
	if math.Abs(b.Rotation-1) > eps {
		t.Errorf("rotation = %f, want 1", b.Rotation)
	}
}

func TestIntegrateZeroDtIsNoop(t *testing.T) {
	orig := Body{
		Position:        r2.Point{X: 3, Y: 4},
		Velocity:        r2.Point{X: -120, Y: 55},
		Rotation:        0.7,
		AngularVelocity: -1.2,
	}
	store := storeWith(orig)

	for i := 0; i < 50; i++ {
		Integrate(store, Gravity, 0)
	}

	if b, _ := store.Get(0); *b != orig {
		t.Errorf("body = %+v, want unchanged %+v", *b, orig)
	}
}

func TestResolveBounds(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600}
	tuning := DefaultTuning()

	tests := []struct {
		name  string
		in    Body
		check func(t *testing.T, b Body)
	}{
		{
			name: "below floor bounces with random impulse",
			in:   Body{Position: r2.Point{Y: -310}, Velocity: r2.Point{Y: -400}},
			check: func(t *testing.T, b Body) {
				if b.Position.Y != -300+37.5 {
					t.Errorf("y = %f, want %f", b.Position.Y, -300+37.5)
				}
				if b.Velocity.Y < 700 || b.Velocity.Y >= 1000 {
					t.Errorf("vy = %f, want [700,1000)", b.Velocity.Y)
				}
			},
		},
		{
			name: "above ceiling clamps without bounce",
			in:   Body{Position: r2.Point{Y: 290}, Velocity: r2.Point{Y: 120}},
			check: func(t *testing.T, b Body) {
				if b.Position.Y != 300-37.5 {
					t.Errorf("y = %f, want %f", b.Position.Y, 300-37.5)
				}
				if b.Velocity.Y != 120 {
					t.Errorf("vy = %f, want 120", b.Velocity.Y)
				}
			},
		},
		{
			name: "right wall mirrors horizontal and angular velocity",
			in:   Body{Position: r2.Point{X: 400}, Velocity: r2.Point{X: 200}, AngularVelocity: 3},
			check: func(t *testing.T, b Body) {
				if b.Position.X != 400-37.5 {
					t.Errorf("x = %f, want %f", b.Position.X, 400-37.5)
				}
				if b.Velocity.X != -200 {
					t.Errorf("vx = %f, want -200", b.Velocity.X)
				}
				if b.AngularVelocity != -3 {
					t.Errorf("angular velocity = %f, want -3", b.AngularVelocity)
				}
			},
		},
		{
			name: "left wall mirrors horizontal and angular velocity",
			in:   Body{Position: r2.Point{X: -390}, Velocity: r2.Point{X: -80}, AngularVelocity: -0.4},
			check: func(t *testing.T, b Body) {
				if b.Position.X != -400+37.5 {
					t.Errorf("x = %f, want %f", b.Position.X, -400+37.5)
				}
				if b.Velocity.X != 80 {
					t.Errorf("vx = %f, want 80", b.Velocity.X)
				}
				if b.AngularVelocity != 0.4 {
					t.Errorf("angular velocity = %f, want 0.4", b.AngularVelocity)
				}
			},
		},
		{
			name: "corner gets both corrections",
			in:   Body{Position: r2.Point{X: -420, Y: -320}, Velocity: r2.Point{X: -50, Y: -50}, AngularVelocity: 1},
			check: func(t *testing.T, b Body) {
				if b.Position.X != -400+37.5 || b.Position.Y != -300+37.5 {
					t.Errorf("position = %v, want (-362.5,-262.5)", b.Position)
				}
				if b.Velocity.X != 50 {
					t.Errorf("vx = %f, want 50", b.Velocity.X)
				}
				if b.Velocity.Y < 700 || b.Velocity.Y >= 1000 {
					t.Errorf("vy = %f, want [700,1000)", b.Velocity.Y)
				}
				if b.AngularVelocity != -1 {
					t.Errorf("angular velocity = %f, want -1", b.AngularVelocity)
				}
			},
		},
		{
			name: "inside untouched",
			in:   Body{Position: r2.Point{X: 10, Y: 10}, Velocity: r2.Point{X: 5, Y: 5}, AngularVelocity: 1},
			check: func(t *testing.T, b Body) {
				want := Body{Position: r2.Point{X: 10, Y: 10}, Velocity: r2.Point{X: 5, Y: 5}, AngularVelocity: 1}
				if b != want {
					t.Errorf("body = %+v, want %+v", b, want)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storeWith(tt.in)
			ResolveBounds(store, bounds, tuning, rand.New(rand.NewSource(1)))
			b, _ := store.Get(0)
			tt.check(t, *b)
		})
	}
}

func TestFloorImpulseUsesRandomSource(t *testing.T) {
	store := storeWith(Body{Position: r2.Point{Y: -500}})
	ResolveBounds(store, Bounds{Width: 800, Height: 600}, DefaultTuning(), &fixedRand{vals: []float64{0.5}})

	if b, _ := store.Get(0); b.Velocity.Y != 850 {
		t.Errorf("vy = %f, want 850", b.Velocity.Y)
	}
}

func TestDegenerateViewportPinsBody(t *testing.T) {
	store := storeWith(Body{Position: r2.Point{X: 5, Y: 5}, Velocity: r2.Point{X: 10}})
	ResolveBounds(store, Bounds{Width: 20, Height: 20}, DefaultTuning(), rand.New(rand.NewSource(1)))

	b, _ := store.Get(0)
	// floor then ceiling, left then right: the later clamp wins
	if b.Position.Y != 10-37.5 || b.Position.X != 10-37.5 {
		t.Errorf("position = %v, want (-27.5,-27.5)", b.Position)
	}
}

func TestBodiesStayInsideResizingViewport(t *testing.T) {
	names := make([]string, 60)
	for i := range names {
		names[i] = fmt.Sprintf("body-%d", i)
	}
	rng := rand.New(rand.NewSource(11))
	s := newTestShowcase(t, names, rng)

	sizes := []Bounds{
		{Width: 1280, Height: 720},
		{Width: 800, Height: 600},
		{Width: 200, Height: 900},
		{Width: 1600, Height: 100},
	}
	driver := rand.New(rand.NewSource(12))

	for tick := 0; tick < 2000; tick++ {
		bounds := sizes[(tick/250)%len(sizes)]
		dt := driver.Float64() * 0.25
		if tick%97 == 0 {
			dt = 5 // large step overshoots far past the walls
		}
		s.Tick(dt, bounds)

		half := bounds.Half()
		ext := SpriteSize / 2
		s.Store.Each(func(id BodyID, b *Body) {
			if b.Position.X-ext < -half.X-eps || b.Position.X+ext > half.X+eps ||
				b.Position.Y-ext < -half.Y-eps || b.Position.Y+ext > half.Y+eps {
				t.Fatalf("tick %d: body %d at %v escapes %+v", tick, id, b.Position, bounds)
			}
		})
	}
}

package showcase

import "github.com/golang/geo/r2"

// Integrate applies gravity to every body's velocity, then advances
// position and rotation by velocity. dt is in seconds and is not clamped.
func Integrate(store *Store, gravity, dt float64) {
	if dt == 0 {
		return
	}
	store.Each(func(_ BodyID, b *Body) {
		b.Velocity.Y += gravity * dt
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
		b.Rotation += b.AngularVelocity * dt
	})
}

// Bounds is the viewport size in world units, centred on the origin.
type Bounds struct {
	Width, Height float64
}

// Half returns the half extents.
func (v Bounds) Half() r2.Point {
	return r2.Point{X: v.Width / 2, Y: v.Height / 2}
}

// ResolveBounds clamps every body back inside the viewport. The floor
// launches the body with a random upward impulse, the side walls mirror
// horizontal and angular velocity, the ceiling only clamps.
func ResolveBounds(store *Store, bounds Bounds, t Tuning, rng Rand) {
	store.Each(func(_ BodyID, b *Body) {
		resolveBody(b, bounds, t, rng)
	})
}

func resolveBody(b *Body, bounds Bounds, t Tuning, rng Rand) {
	half := bounds.Half()
	ext := t.SpriteSize / 2

	ceiling, ground := half.Y, -half.Y
	wallLeft, wallRight := -half.X, half.X

	left := b.Position.X - ext
	right := b.Position.X + ext
	top := b.Position.Y + ext
	bottom := b.Position.Y - ext

	if bottom < ground {
		b.Position.Y = ground + ext
		b.Velocity.Y = t.ImpulseMin + rng.Float64()*(t.ImpulseMax-t.ImpulseMin)
	}
	if top > ceiling {
		b.Position.Y = ceiling - ext
	}
	if left < wallLeft {
		b.Position.X = wallLeft + ext
		b.Velocity.X = -b.Velocity.X
		b.AngularVelocity = -b.AngularVelocity
	}
	if right > wallRight {
		b.Position.X = wallRight - ext
		b.Velocity.X = -b.Velocity.X
		b.AngularVelocity = -b.AngularVelocity
	}
}

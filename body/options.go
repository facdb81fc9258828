package body

import "github.com/enkisim/enki2d/shape"

// Option configures a PhysicalObject at construction, in the manner of the
// teacher's config.go functional options (vu.Attr, vu.Title(...)). Each
// Option wraps one of the Set* mutators below; New applies them in order.
type Option func(*PhysicalObject)

// New returns a body with every opt applied in order. A body with no shape
// option is an empty, immovable placeholder — callers are expected to pass
// exactly one of Cylindric/Rectangular/CustomHull.
func New(opts ...Option) *PhysicalObject {
	b := &PhysicalObject{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Cylindric gives the body a circular shape of the given radius, height and
// mass. See SetCylindric.
func Cylindric(radius, height, mass float64) Option {
	return func(b *PhysicalObject) { b.SetCylindric(radius, height, mass) }
}

// Rectangular gives the body a single rectangular part, l1 x l2, of the
// given height and mass. See SetRectangular.
func Rectangular(l1, l2, height, mass float64) Option {
	return func(b *PhysicalObject) { b.SetRectangular(l1, l2, height, mass) }
}

// CustomHull gives the body the given hull, recentered on its centroid. See
// SetCustomHull.
func CustomHull(h shape.Hull, mass float64) Option {
	return func(b *PhysicalObject) { b.SetCustomHull(h, mass) }
}

// WithColor sets the body's uniform fallback color. See SetColor.
func WithColor(c shape.Color) Option {
	return func(b *PhysicalObject) { b.SetColor(c) }
}

// Material sets the body's collision elasticity and friction coefficients
// directly; there is no teacher-style mutator for these scalar fields, so
// the option assigns them itself.
func Material(elasticity, dryFriction, viscousLinear, viscousAngular float64) Option {
	return func(b *PhysicalObject) {
		b.CollisionElasticity = elasticity
		b.DryFriction = dryFriction
		b.ViscousLinearFriction = viscousLinear
		b.ViscousAngularFriction = viscousAngular
	}
}

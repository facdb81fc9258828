// Package body provides PhysicalObject, the central rigid-body entity of the
// simulation kernel: pose, twist, mass/inertia, shape (circle or hull), and
// the friction/elasticity material used by the collision resolver.
//
// Grounded on the teacher's physics/body.go, translated from its 3D
// quaternion pose to the kernel's 2D (position, scalar angle) pose and from
// its narrow Body interface to an exported data struct, following the
// design notes' call to replace the source engine's virtual body hierarchy
// with a tagged variant over a fixed set of shape kinds.
package body

import (
	"log/slog"

	"github.com/enkisim/enki2d/geom"
	"github.com/enkisim/enki2d/shape"
)

// ShapeKind tags which of the two supported shape representations a body
// currently has.
type ShapeKind int

const (
	// Circle bodies carry only a radius; Hull is unused.
	Circle ShapeKind = iota
	// HullShape bodies are a union of convex polygon parts.
	HullShape
)

// Color is a plain RGBA swatch, used when no per-part texture applies.
type Color = shape.Color

// PhysicalObject is a single rigid body in the simulation: a pose, a twist,
// mass/inertia, a shape, and the material properties the collision resolver
// needs. mass < 0 marks an infinite-mass (static) body — walls and fixtures.
type PhysicalObject struct {
	// identity, preserved across snapshot/restore by the world's id allocator.
	ID uint32

	// pose
	Pos   geom.Point
	Angle float64 // radians, kept in (-pi, pi] by the integrator.

	// twist
	Speed    geom.Vector
	AngSpeed float64

	// mass and material
	Mass                   float64 // <0 means infinite mass / static.
	MomentOfInertia         float64
	CollisionElasticity     float64 // [0,1]; a pair's combined elasticity is the product.
	DryFriction             float64
	ViscousLinearFriction   float64
	ViscousAngularFriction  float64

	// shape
	Kind   ShapeKind
	Radius float64 // circle radius, or hull bounding radius once centered.
	Height float64 // occlusion height; circle height, or max part height for a hull.
	Hull   shape.Hull

	Color Color

	// posBeforeCollision is the pose snapshotted after the current physics
	// sub-step's integration, just before collision resolution; valid only
	// between InitPhysics and FinalizePhysics of the same sub-step. Used to
	// measure interlaced distance.
	posBeforeCollision  geom.Point
	inSubStep           bool
	InterlacedDistance  float64

	// UserData is an arbitrary application payload. OwnsUserData marks
	// whether the world should treat UserData as owned and eligible for
	// disposal when the body is removed (it never inspects or frees it
	// itself; the flag is a signal for an external collaborator).
	UserData     any
	OwnsUserData bool

	// OnCollision, if set, is invoked by the collision resolver once per
	// contact this body participates in. other is nil for a wall contact.
	OnCollision func(other *PhysicalObject)
}

// Collided invokes OnCollision if set; a no-op otherwise. other is nil for a
// wall contact.
func (b *PhysicalObject) Collided(other *PhysicalObject) {
	if b.OnCollision != nil {
		b.OnCollision(other)
	}
}

// NewCircle returns a movable circular body of the given radius, height and
// mass, with unit elasticity and zero friction — callers set other material
// properties on the returned body's fields, or build it with New and the
// Material option.
func NewCircle(radius, height, mass float64) *PhysicalObject {
	b := &PhysicalObject{Mass: mass, CollisionElasticity: 1}
	b.SetCylindric(radius, height, mass)
	return b
}

// NewRectangular returns a movable single-part rectangular body centered on
// the origin, with dimensions l1 x l2 and the given height and mass.
func NewRectangular(l1, l2, height, mass float64) *PhysicalObject {
	b := &PhysicalObject{}
	b.SetRectangular(l1, l2, height, mass)
	return b
}

// SetCylindric replaces the body's shape with a circle, emptying any hull
// and recomputing the moment of inertia (½·m·r² for a uniform disk).
func (b *PhysicalObject) SetCylindric(radius, height, mass float64) {
	if radius <= 0 {
		slog.Error("body.SetCylindric: non-positive radius, ignoring", "radius", radius)
		return
	}
	b.Kind = Circle
	b.Hull = shape.Hull{}
	b.Radius = radius
	b.Height = height
	b.Mass = mass
	if mass > 0 {
		b.MomentOfInertia = 0.5 * mass * radius * radius
	} else {
		b.MomentOfInertia = 0
	}
}

// SetRectangular replaces the body's shape with a single rectangular part
// centered on the origin, l1 x l2, and recomputes the moment of inertia.
func (b *PhysicalObject) SetRectangular(l1, l2, height, mass float64) {
	if l1 <= 0 || l2 <= 0 {
		slog.Error("body.SetRectangular: non-positive dimension, ignoring", "l1", l1, "l2", l2)
		return
	}
	part := shape.NewPart([]geom.Vector{
		{X: -l1 / 2, Y: -l2 / 2},
		{X: l1 / 2, Y: -l2 / 2},
		{X: l1 / 2, Y: l2 / 2},
		{X: -l1 / 2, Y: l2 / 2},
	}, height, nil)
	b.setHull(shape.NewHull([]shape.Part{part}), mass, height)
}

// SetCustomHull replaces the body's shape with the given hull, recentering
// it on its area-weighted centroid, and recomputes radius and moment of
// inertia. A hull with zero total area (e.g. degenerate or empty parts) is
// rejected and the body keeps its previous shape.
func (b *PhysicalObject) SetCustomHull(h shape.Hull, mass float64) {
	_, area := h.CentroidArea()
	if area < geom.Epsilon {
		slog.Error("body.SetCustomHull: zero-area hull, ignoring")
		return
	}
	b.setHull(h.Recenter(), mass, h.MaxHeight())
}

func (b *PhysicalObject) setHull(h shape.Hull, mass, height float64) {
	b.Kind = HullShape
	b.Hull = h
	b.Radius = h.BoundingRadius()
	b.Height = height
	b.Mass = mass
	if mass > 0 {
		b.MomentOfInertia = h.MomentOfInertia(mass)
	} else {
		b.MomentOfInertia = 0
	}
}

// SetColor sets the uniform body color used when no per-part texture applies.
func (b *PhysicalObject) SetColor(c Color) { b.Color = c }

// Movable reports whether the body has finite, positive mass.
func (b *PhysicalObject) Movable() bool { return b.Mass > 0 }

// InverseMass returns 1/mass for movable bodies, 0 for static/infinite-mass
// bodies (mass <= 0).
func (b *PhysicalObject) InverseMass() float64 {
	if !b.Movable() {
		return 0
	}
	return 1 / b.Mass
}

// InverseInertia returns 1/I for movable bodies with nonzero inertia, 0
// otherwise (a point-mass circle at the origin has I=0 only in the
// degenerate zero-radius case, which SetCylindric already rejects).
func (b *PhysicalObject) InverseInertia() float64 {
	if !b.Movable() || b.MomentOfInertia < geom.Epsilon {
		return 0
	}
	return 1 / b.MomentOfInertia
}

// Rotation returns the body's current rotation matrix.
func (b *PhysicalObject) Rotation() geom.Matrix22 { return geom.NewMatrix22(b.Angle) }

// VelocityAt returns the linear velocity of the material point at world
// position p: v = Speed + AngSpeed x (p - Pos).
func (b *PhysicalObject) VelocityAt(p geom.Point) geom.Vector {
	r := p.Sub(b.Pos)
	return b.Speed.Add(geom.CrossScalar(b.AngSpeed, r))
}

// StartSubStep snapshots the current pose as posBeforeCollision. The motion
// integrator calls it after integrating the sub-step's pose, so the snapshot
// is the pose collision resolution starts from.
func (b *PhysicalObject) StartSubStep() {
	b.posBeforeCollision = b.Pos
	b.inSubStep = true
}

// AccumulateInterlacedDistance adds |Pos - posBeforeCollision| to the
// running interlaced-distance diagnostic. Valid only when called between
// StartSubStep and the next StartSubStep/reset; panics-free no-op otherwise.
func (b *PhysicalObject) AccumulateInterlacedDistance() {
	if !b.inSubStep {
		return
	}
	b.InterlacedDistance += b.Pos.Sub(b.posBeforeCollision).Norm()
	b.inSubStep = false
}

// ResetInterlacedDistance zeroes the diagnostic, called once per control tick.
func (b *PhysicalObject) ResetInterlacedDistance() { b.InterlacedDistance = 0 }

// NormalizeAngle wraps Angle into (-pi, pi], the invariant the integrator
// enforces after every finalize.
func (b *PhysicalObject) NormalizeAngle() { b.Angle = geom.NormalizeAngle(b.Angle) }

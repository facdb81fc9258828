// Package motion provides the per-substep friction + Euler integrator and
// the differential-drive motion model that feeds it.
//
// Grounded on the teacher's move/move.go predictBodyLocations /
// updateBodyLocations split (apply forces, integrate, damp, snapshot) and
// physics/physics.go's top-level Simulate shape.
package motion

import (
	"math"

	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/geom"
)

// Gravity is the fixed constant used by the dry-friction model, matching
// the source simulator's g = 9.81 m/s^2.
const Gravity = 9.81

// InitPhysics applies dry and viscous friction as forces, Euler-integrates
// the body's pose by dt, recomputes its world-space hull (for hull bodies),
// and snapshots the resulting pose as posBeforeCollision. Static bodies
// (Mass <= 0) keep their pose and twist; only a static hull body's
// world-space hull is recomputed.
func InitPhysics(b *body.PhysicalObject, dt float64) {
	if !b.Movable() {
		if b.Kind == body.HullShape {
			b.Hull.TransformAll(b.Rotation(), b.Pos)
		}
		return
	}
	applyFriction(b, dt)
	b.Pos = b.Pos.Add(b.Speed.Scale(dt))
	b.Angle += b.AngSpeed * dt
	if b.Kind == body.HullShape {
		b.Hull.TransformAll(b.Rotation(), b.Pos)
	}
	b.StartSubStep()
}

// FinalizePhysics accumulates the interlaced-distance diagnostic and
// renormalizes the body's angle into (-pi, pi]. This is the sole place
// either happens, per spec §5.
func FinalizePhysics(b *body.PhysicalObject) {
	b.AccumulateInterlacedDistance()
	b.NormalizeAngle()
}

// applyFriction computes dry (Coulomb) and viscous linear/angular friction
// as decelerations and Euler-integrates them into Speed/AngSpeed.
func applyFriction(b *body.PhysicalObject, dt float64) {
	// dry linear friction: decelerate towards zero at g*mu, clamped so it
	// cannot reverse the direction of travel within one step.
	if speed := b.Speed.Norm(); speed > geom.Epsilon {
		dryAccel := Gravity * b.DryFriction
		if dryAccel*dt > speed {
			b.Speed = geom.Vector{}
		} else {
			b.Speed = b.Speed.Sub(b.Speed.Unitary().Scale(dryAccel * dt))
		}
	}
	// dry angular friction: same clamp, signed towards zero.
	if math.Abs(b.AngSpeed) > geom.Epsilon {
		dryAlpha := Gravity * b.DryFriction
		if dryAlpha*dt > math.Abs(b.AngSpeed) {
			b.AngSpeed = 0
		} else {
			b.AngSpeed -= math.Copysign(dryAlpha*dt, b.AngSpeed)
		}
	}
	// viscous friction: proportional drag, applied directly as a velocity decay.
	b.Speed = b.Speed.Sub(b.Speed.Scale(b.ViscousLinearFriction * dt))
	b.AngSpeed -= b.AngSpeed * b.ViscousAngularFriction * dt
}

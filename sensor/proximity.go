// Package sensor implements the raycast proximity sensor and the 1-D
// angular camera: the two observers the kernel evaluates against the
// scene every control tick.
//
// Grounded on the teacher's physics/caster.go ray-vs-shape cast routines
// (ray/circle and ray/polygon intersection, closest-hit bookkeeping) and
// camera.go's per-frame init/update/finalize shape, narrowed here from a
// 3D perspective camera to a 1-D angular scan.
package sensor

import (
	"math"

	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/geom"
	"github.com/enkisim/enki2d/interaction"
)

// ray index constants for the three-ray fan.
const (
	rayLeft = iota
	rayCenter
	rayRight
	rayCount
)

// Proximity is a three-ray-fan raycast distance sensor mounted at a fixed
// body-local offset and orientation. It implements
// interaction.LocalInteraction.
type Proximity struct {
	// Owner is the body the sensor is mounted on; its pose each tick
	// determines the sensor's absolute position and heading. Set at
	// construction — a sensor is always attached to exactly one robot.
	Owner *body.PhysicalObject

	Offset       geom.Vector // body-local mount offset.
	OrientRel    float64     // body-local mount orientation, radians.
	RangeMax     float64     // R.
	HalfAperture float64     // α, radians (~15°).
	Height       float64     // sensor height; targets no taller than this are ignored.

	// response curve parameters: rho(d) = m*(c - x0^2) / (d^2 - 2*x0*d + c).
	M, X0, C float64

	NoiseSigma float64

	// per-tick scratch state, valid between Init and Finalize.
	pos     geom.Point
	angle   float64
	dist    [rayCount]float64
	smart   float64 // smart radius: enclosing sphere of the ray fan, computed once.
	reading float64 // final recovered distance, after Finalize.
}

// NewProximity returns a three-ray proximity sensor mounted on owner at the
// given body-local offset/orientation, with the given range, half-aperture,
// response-curve parameters and noise standard deviation.
func NewProximity(owner *body.PhysicalObject, offset geom.Vector, orientRel, rangeMax, halfAperture, m, x0, c, noiseSigma float64) *Proximity {
	return &Proximity{
		Owner: owner, Offset: offset, OrientRel: orientRel, RangeMax: rangeMax,
		HalfAperture: halfAperture, M: m, X0: x0, C: c, NoiseSigma: noiseSigma,
	}
}

// Range returns the sensor's enclosing-sphere radius used by the
// local-interaction host's early-out scan: the mount's distance from the
// body center plus the full sensing range.
func (p *Proximity) Range() float64 { return p.Offset.Norm() + p.RangeMax }

// smartRadius is the radius of the sphere, centered at the sensor's
// absolute position, that encloses all three rays out to RangeMax — any
// body whose bounding circle does not reach this sphere cannot intersect
// any ray. Since the rays fan out from a single point, the full range IS
// the enclosing radius; cached once to match the spec's "computed once at
// construction" wording for a fixed aperture.
func (p *Proximity) smartRadius() float64 {
	if p.smart == 0 {
		p.smart = p.RangeMax
	}
	return p.smart
}

// Init computes the sensor's absolute pose from its owning body's current
// pose (spec §4.6 step 1: "absolute pose = body pose ⊕ (p, θ_rel)") and
// resets the per-ray running distance to max range.
func (p *Proximity) Init(dt float64, w interaction.World) {
	p.pos = p.Owner.Pos.Add(p.Offset.Rotate(p.Owner.Angle))
	p.angle = p.Owner.Angle + p.OrientRel
	for i := range p.dist {
		p.dist[i] = p.RangeMax
	}
}

// rayAngles returns the three rays' absolute headings, left/center/right.
func (p *Proximity) rayAngles() [rayCount]float64 {
	return [rayCount]float64{
		p.angle - p.HalfAperture,
		p.angle,
		p.angle + p.HalfAperture,
	}
}

// ObjectStep updates the running per-ray minimum distance against a single
// other body, per spec §4.6 step 2.
func (p *Proximity) ObjectStep(dt float64, w interaction.World, other *body.PhysicalObject) {
	if other.Height <= p.Height {
		return
	}
	if other.Pos.Sub(p.pos).Norm() > p.smartRadius()+other.Radius {
		return
	}
	angles := p.rayAngles()
	for i, a := range angles {
		dir := geom.Vector{X: math.Cos(a), Y: math.Sin(a)}
		var t float64
		var hit bool
		switch other.Kind {
		case body.Circle:
			t, hit = rayCircleHit(p.pos, dir, other.Pos, other.Radius, p.dist[i])
		case body.HullShape:
			t, hit = rayHullHit(p.pos, dir, other, p.dist[i])
		}
		if hit && t < p.dist[i] {
			p.dist[i] = t
		}
	}
}

// rayCircleHit returns the closest positive intersection of the ray
// (origin, dir, unit dir) with a circle of the given radius, clipped to
// [0, dMax], per spec §4.6: entry = sqrt(dCenter^2 - dPerp^2) - sqrt(r^2 -
// dPerp^2) when dPerp^2 <= r^2.
func rayCircleHit(origin, dir, center geom.Vector, radius, dMax float64) (float64, bool) {
	toCenter := center.Sub(origin)
	dCenter2 := toCenter.Norm2()
	along := toCenter.Dot(dir)
	if along < 0 {
		return 0, false
	}
	perp2 := dCenter2 - along*along
	if perp2 > radius*radius {
		return 0, false
	}
	entry := along - math.Sqrt(radius*radius-perp2)
	if entry < 0 || entry > dMax {
		return 0, false
	}
	return entry, true
}

// rayHullHit returns the closest positive intersection of the ray with any
// world-space convex part of other, via geom.Polygon.ClipRay (Cyrus-Beck),
// clipped to [0, dMax]. Every part is tested: part heights are not compared
// with the sensor's height (ObjectStep compares only the whole body's height).
func rayHullHit(origin, dir geom.Vector, other *body.PhysicalObject, dMax float64) (float64, bool) {
	best := dMax
	found := false
	for _, part := range other.Hull.Parts {
		if t, ok := part.World().ClipRay(origin, dir, best); ok && t < best {
			best = t
			found = true
		}
	}
	return best, found
}

// WallsStep intersects the three rays with the arena boundary: rectangular
// walls as four axis-aligned plane intersections, circular walls via the
// ray-circle quadratic from a point strictly inside, per spec §4.6 step 3.
func (p *Proximity) WallsStep(dt float64, w interaction.World) {
	walls := w.Walls()
	angles := p.rayAngles()
	for i, a := range angles {
		dir := geom.Vector{X: math.Cos(a), Y: math.Sin(a)}
		if t, ok := wallRayHit(walls, p.pos, dir, p.dist[i]); ok && t < p.dist[i] {
			p.dist[i] = t
		}
	}
}

// Finalize combines the three per-ray distances into a single response
// reading, per spec §4.6 step 4.
func (p *Proximity) Finalize(dt float64, w interaction.World) {
	alphaSecant := 1 / math.Cos(p.HalfAperture)
	v := p.responseOf(p.dist[rayLeft]) + p.responseOf(p.dist[rayCenter]) + p.responseOf(p.dist[rayRight]) -
		2*p.responseOf(p.dist[rayCenter]*alphaSecant)
	if p.NoiseSigma > 0 {
		if rnd := w.Random(); rnd != nil {
			v = rnd.Normal(v, p.NoiseSigma)
		}
	}
	v = clamp(v, 0, p.M)
	p.reading = p.invertResponse(v)
}

// Reading returns the sensor's final recovered distance for this tick,
// valid after Finalize has run.
func (p *Proximity) Reading() float64 { return p.reading }

// responseOf evaluates the response curve rho(d) = m*(c - x0^2) / (d^2 -
// 2*x0*d + c), clamped to [0, m]: rho = m for d < x0, 0 for d > R.
func (p *Proximity) responseOf(d float64) float64 {
	if d < p.X0 {
		return p.M
	}
	if d > p.RangeMax {
		return 0
	}
	denom := d*d - 2*p.X0*d + p.C
	if math.Abs(denom) < geom.Epsilon {
		return p.M
	}
	return clamp(p.M*(p.C-p.X0*p.X0)/denom, 0, p.M)
}

// invertResponse recovers the distance implied by a combined response
// value, per spec §4.6 step 4's closed-form inverse: d = x0 +
// sqrt((x0^2-c)*(1-m/v)), clamped to [0,R]; v=0 => d=R, v=m => d=x0/2.
func (p *Proximity) invertResponse(v float64) float64 {
	if v <= 0 {
		return p.RangeMax
	}
	if v >= p.M {
		return p.X0 / 2
	}
	radicand := (p.X0*p.X0 - p.C) * (1 - p.M/v)
	if radicand < 0 {
		radicand = 0
	}
	return clamp(p.X0+math.Sqrt(radicand), 0, p.RangeMax)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

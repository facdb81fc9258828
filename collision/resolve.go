package collision

import (
	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/geom"
)

// Resolve applies impulse-based collision response to a and b given their
// contact (Normal points from b to a), then linearly depenetrates both
// bodies by their mass-weighted share of Depth. Both bodies receive their
// OnCollision callback with a pointer to the other. Two infinite-mass
// bodies do nothing, per spec §4.8.
func Resolve(a, b *body.PhysicalObject, c Contact) {
	if !a.Movable() && !b.Movable() {
		return
	}
	n := c.Normal
	imA, imB := a.InverseMass(), b.InverseMass()
	iiA, iiB := a.InverseInertia(), b.InverseInertia()

	rA := c.Point.Sub(a.Pos)
	rB := c.Point.Sub(b.Pos)
	vA := a.VelocityAt(c.Point)
	vB := b.VelocityAt(c.Point)
	relVel := vA.Sub(vB)
	relSpeed := relVel.Dot(n)

	e := a.CollisionElasticity * b.CollisionElasticity
	rAxnA := rA.Cross(n)
	rBxnB := rB.Cross(n)
	denom := imA + imB + rAxnA*rAxnA*iiA + rBxnB*rBxnB*iiB
	if denom > geom.Epsilon {
		j := -(1 + e) * relSpeed / denom
		impulse := n.Scale(j)
		if a.Movable() {
			a.Speed = a.Speed.Add(impulse.Scale(imA))
			a.AngSpeed += iiA * rA.Cross(impulse)
		}
		if b.Movable() {
			b.Speed = b.Speed.Sub(impulse.Scale(imB))
			b.AngSpeed -= iiB * rB.Cross(impulse)
		}
	}

	depenetrate(a, b, n, c.Depth, imA, imB)

	a.Collided(b)
	b.Collided(a)
}

// depenetrate linearly separates a and b along n (pointing towards a) by
// depth, split by each body's mass-weighted share. A body with infinite
// mass does not move; the other receives the full depth.
func depenetrate(a, b *body.PhysicalObject, n geom.Vector, depth float64, imA, imB float64) {
	if depth <= 0 {
		return
	}
	total := imA + imB
	if total < geom.Epsilon {
		return
	}
	if a.Movable() {
		a.Pos = a.Pos.Add(n.Scale(depth * imA / total))
	}
	if b.Movable() {
		b.Pos = b.Pos.Sub(n.Scale(depth * imB / total))
	}
}

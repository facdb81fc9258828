package collision

import (
	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/geom"
)

// ResolveWall applies impulse-based response between b and an infinitely
// massive wall, then depenetrates b entirely along the contact normal.
// Walls are fully elastic (per the original simulator), but that only
// means the wall's own elasticity term is 1 in the combined-elasticity
// product spec §4.1 defines for a pair — the response still uses b's own
// CollisionElasticity, which the product reduces to. b's OnCollision
// callback is invoked with a nil other, per spec.
func ResolveWall(b *body.PhysicalObject, c Contact) {
	if !b.Movable() {
		return
	}
	n := c.Normal
	im := b.InverseMass()
	ii := b.InverseInertia()

	r := c.Point.Sub(b.Pos)
	v := b.VelocityAt(c.Point)
	relSpeed := v.Dot(n)

	rxn := r.Cross(n)
	denom := im + rxn*rxn*ii
	if denom > geom.Epsilon {
		e := b.CollisionElasticity
		j := -(1 + e) * relSpeed / denom
		impulse := n.Scale(j)
		b.Speed = b.Speed.Add(impulse.Scale(im))
		b.AngSpeed += ii * r.Cross(impulse)
	}

	if c.Depth > 0 {
		b.Pos = b.Pos.Add(n.Scale(c.Depth))
	}
	b.Collided(nil)
}

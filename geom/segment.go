package geom

import "math"

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B Vector
}

// Degenerate reports whether the segment's endpoints coincide.
func (s Segment) Degenerate() bool { return s.A.Aeq(s.B) }

// Vector returns B - A.
func (s Segment) Vector() Vector { return s.B.Sub(s.A) }

// Unitary returns the unit vector from A to B. Degenerate segments return
// the zero vector.
func (s Segment) Unitary() Vector { return s.Vector().Unitary() }

// LeftNormal returns the unit vector perpendicular to the segment, rotated
// CCW from A->B. Walking a CCW polygon boundary, this points into the
// polygon's interior — the sign convention spec §3 calls "the inside side".
func (s Segment) LeftNormal() Vector { return s.Unitary().Perp() }

// SignedDistance returns the signed distance from p to the infinite line
// through the segment, using the left-perpendicular convention: positive is
// the side the left normal points to.
func (s Segment) SignedDistance(p Vector) float64 {
	if s.Degenerate() {
		return p.Sub(s.A).Norm()
	}
	return p.Sub(s.A).Dot(s.LeftNormal())
}

// Project returns the scalar position of p's projection onto the segment,
// in [0,1] when the projection falls between A and B.
func (s Segment) Project(p Vector) float64 {
	v := s.Vector()
	n2 := v.Norm2()
	if n2 < Epsilon {
		return 0
	}
	return p.Sub(s.A).Dot(v) / n2
}

// ClosestPoint returns the point on the segment (clamped to [A,B]) nearest p.
func (s Segment) ClosestPoint(p Vector) Vector {
	t := s.Project(p)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return s.A.Add(s.Vector().Scale(t))
}

// Intersect computes the parametric intersection of this segment with
// other, returning the (t, u) parameters such that
// s.A + t*(s.B-s.A) == other.A + u*(other.B-other.A). ok is false when the
// segments are parallel (including either being degenerate).
func (s Segment) Intersect(other Segment) (t, u float64, ok bool) {
	d1 := s.Vector()
	d2 := other.Vector()
	denom := d1.Cross(d2)
	if math.Abs(denom) < Epsilon {
		return 0, 0, false
	}
	diff := other.A.Sub(s.A)
	t = diff.Cross(d2) / denom
	u = diff.Cross(d1) / denom
	return t, u, true
}

// IntersectInBounds reports whether the two segments cross within both of
// their [0,1] parameter ranges, and returns the crossing point.
func (s Segment) IntersectInBounds(other Segment) (p Vector, hit bool) {
	t, u, ok := s.Intersect(other)
	if !ok || t < 0 || t > 1 || u < 0 || u > 1 {
		return Vector{}, false
	}
	return s.A.Add(s.Vector().Scale(t)), true
}

// Transform applies rotation then translation to both endpoints, returning
// a new segment in the transformed frame.
func (s Segment) Transform(rot Matrix22, translate Vector) Segment {
	return Segment{A: rot.Apply(s.A).Add(translate), B: rot.Apply(s.B).Add(translate)}
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 { return s.Vector().Norm() }

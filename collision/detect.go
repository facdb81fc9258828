package collision

import (
	"math"

	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/geom"
)

// Broad reports whether a and b are broad-phase candidates: their centers
// are within the sum of their bounding radii. No bounding-volume hierarchy
// is used; this is an O(1) check invoked once per candidate pair from the
// world's O(n^2) pair loop.
func Broad(a, b *body.PhysicalObject) bool {
	d := a.Pos.Sub(b.Pos)
	rsum := a.Radius + b.Radius
	return d.Norm2() <= rsum*rsum
}

// Detect runs narrow-phase contact detection between a and b, dispatching
// on shape kind. The returned Contact's Normal points from b towards a.
func Detect(a, b *body.PhysicalObject) (Contact, bool) {
	switch {
	case a.Kind == body.Circle && b.Kind == body.Circle:
		return circleCircle(a, b)
	case a.Kind == body.Circle && b.Kind == body.HullShape:
		c, ok := circleHull(a, b)
		return c, ok
	case a.Kind == body.HullShape && b.Kind == body.Circle:
		c, ok := circleHull(b, a)
		if ok {
			c.Normal = c.Normal.Neg()
		}
		return c, ok
	default:
		return hullHull(a, b)
	}
}

// circleCircle: contact lies along the center-to-center unit vector, depth
// is the shell overlap, contact point on b's circumference.
func circleCircle(a, b *body.PhysicalObject) (Contact, bool) {
	diff := a.Pos.Sub(b.Pos)
	dist := diff.Norm()
	rsum := a.Radius + b.Radius
	if dist >= rsum {
		return Contact{}, false
	}
	if dist < geom.Epsilon {
		// concentric circles: degenerate, no well-defined normal, no-op per spec §4.8.
		return Contact{}, false
	}
	normal := diff.Scale(1 / dist)
	return Contact{
		Normal: normal,
		Depth:  rsum - dist,
		Point:  b.Pos.Add(normal.Scale(b.Radius)),
	}, true
}

// circleHull tests the circle body c against the hull body h, returning a
// contact whose Normal points from h towards c.
func circleHull(c, h *body.PhysicalObject) (Contact, bool) {
	center := c.Pos
	r := c.Radius
	for _, part := range h.Hull.Parts {
		poly := part.World()
		n := poly.NumEdges()
		for i := 0; i < n; i++ {
			seg := poly.Edge(i)
			if seg.Degenerate() {
				continue
			}
			u := seg.LeftNormal() // inward unit perpendicular for a CCW polygon.
			d := center.Sub(seg.A).Dot(u)
			if d >= 0 || -d >= r {
				continue // circle center is inside this edge's half-plane, or too far outside.
			}
			t := seg.Project(center)
			if t < 0 || t > 1 {
				continue // projection falls outside the edge span.
			}
			depth := r + d
			proj := center.Sub(u.Scale(d))
			return Contact{
				Normal: u.Neg(), // outward: points from the hull towards the circle.
				Depth:  depth,
				Point:  proj.Add(u.Scale(depth)),
			}, true
		}
	}
	// fallback: vertex inside circle.
	bestDist2 := math.MaxFloat64
	var bestVertex geom.Vector
	found := false
	for _, part := range h.Hull.Parts {
		for _, v := range part.World().Vertices {
			d2 := v.Sub(center).Norm2()
			if d2 < r*r && d2 < bestDist2 {
				bestDist2 = d2
				bestVertex = v
				found = true
			}
		}
	}
	if !found {
		return Contact{}, false
	}
	toVertex := bestVertex.Sub(center)
	dist := math.Sqrt(bestDist2)
	if dist < geom.Epsilon {
		return Contact{}, false
	}
	normal := toVertex.Scale(1 / dist).Neg() // points from hull towards circle.
	return Contact{
		Normal: normal,
		Depth:  r - dist,
		Point:  bestVertex,
	}, true
}

// hullHull tests every ordered pair of parts between a and b for "vertex of
// one hull inside the other", keeping the globally smallest-depth contact
// across both directions and all part pairs. Returns false if no vertex of
// either hull lies inside any part of the other.
func hullHull(a, b *body.PhysicalObject) (Contact, bool) {
	best, ok := Contact{Depth: math.MaxFloat64}, false
	for _, pa := range a.Hull.Parts {
		for _, pb := range b.Hull.Parts {
			if c, found := vertexInsidePart(pa.World(), pb.World()); found && c.Depth < best.Depth {
				best, ok = c, true
			}
		}
	}
	for _, pb := range b.Hull.Parts {
		for _, pa := range a.Hull.Parts {
			if c, found := vertexInsidePart(pb.World(), pa.World()); found {
				c.Normal = c.Normal.Neg() // flip: the returned normal points from a towards b; Contact wants b towards a.
				if c.Depth < best.Depth {
					best, ok = c, true
				}
			}
		}
	}
	return best, ok
}

// vertexInsidePart tests each vertex of subject against every edge of
// target. A vertex is "inside" target when every edge yields a
// non-negative signed distance; the MTV candidate for that vertex is the
// smallest such distance, along that edge's outward normal. Returns the
// globally shallowest (smallest-depth) contact across subject's vertices.
// The returned Normal points from target towards subject (pushing subject
// out of target).
func vertexInsidePart(subject, target geom.Polygon) (Contact, bool) {
	best, found := Contact{Depth: math.MaxFloat64}, false
	nEdges := target.NumEdges()
	for _, v := range subject.Vertices {
		minDepth := math.MaxFloat64
		minEdge := -1
		inside := true
		for i := 0; i < nEdges; i++ {
			d := target.Edge(i).SignedDistance(v)
			if d < 0 {
				inside = false
				break
			}
			if d < minDepth {
				minDepth = d
				minEdge = i
			}
		}
		if !inside || minEdge < 0 {
			continue
		}
		if minDepth < best.Depth {
			normal := target.Edge(minEdge).LeftNormal().Neg() // outward normal of target at that edge.
			best = Contact{Normal: normal, Depth: minDepth, Point: v}
			found = true
		}
	}
	return best, found
}

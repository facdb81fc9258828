package geom

import "math"

// Polygon is an ordered, CCW-oriented, closed, convex sequence of vertices.
// Convexity is never checked at runtime; violating it yields undefined
// results from IsPointInside and the SAT intersection routines.
type Polygon struct {
	Vertices []Vector
}

// NewPolygon builds a polygon from the given CCW vertex list. The slice is
// copied so later mutation of vs does not alias the polygon.
func NewPolygon(vs []Vector) Polygon {
	cp := make([]Vector, len(vs))
	copy(cp, vs)
	return Polygon{Vertices: cp}
}

// Edge returns the i'th segment of the polygon boundary, wrapping around.
func (p Polygon) Edge(i int) Segment {
	n := len(p.Vertices)
	return Segment{A: p.Vertices[i], B: p.Vertices[(i+1)%n]}
}

// NumEdges returns the number of edges (equal to the number of vertices).
func (p Polygon) NumEdges() int { return len(p.Vertices) }

// IsPointInside reports whether p is inside the convex polygon. Requires at
// least 3 vertices; fewer always returns false.
func (p Polygon) IsPointInside(pt Vector) bool {
	if len(p.Vertices) < 3 {
		return false
	}
	for i := 0; i < p.NumEdges(); i++ {
		if p.Edge(i).SignedDistance(pt) < 0 {
			return false
		}
	}
	return true
}

// Aabb returns the axis aligned bounding box as (min, max).
func (p Polygon) Aabb() (min, max Vector) {
	if len(p.Vertices) == 0 {
		return Vector{}, Vector{}
	}
	min, max = p.Vertices[0], p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		min.X, max.X = math.Min(min.X, v.X), math.Max(max.X, v.X)
		min.Y, max.Y = math.Min(min.Y, v.Y), math.Max(max.Y, v.Y)
	}
	return min, max
}

// BoundingRadius returns the maximum vertex distance from the given center.
func (p Polygon) BoundingRadius(center Vector) float64 {
	r := 0.0
	for _, v := range p.Vertices {
		if d := v.Sub(center).Norm(); d > r {
			r = d
		}
	}
	return r
}

// Centroid and Area are computed together via the shoelace formula. Area is
// signed: positive for CCW polygons.
func (p Polygon) CentroidArea() (centroid Vector, area float64) {
	n := len(p.Vertices)
	if n < 3 {
		if n > 0 {
			return p.Vertices[0], 0
		}
		return Vector{}, 0
	}
	var cx, cy, a float64
	for i := 0; i < n; i++ {
		v0 := p.Vertices[i]
		v1 := p.Vertices[(i+1)%n]
		cross := v0.X*v1.Y - v1.X*v0.Y
		a += cross
		cx += (v0.X + v1.X) * cross
		cy += (v0.Y + v1.Y) * cross
	}
	area = a / 2
	if math.Abs(area) < Epsilon {
		return p.Vertices[0], area
	}
	centroid = Vector{X: cx / (6 * area), Y: cy / (6 * area)}
	return centroid, area
}

// Transform returns the polygon rotated then translated into world space.
func (p Polygon) Transform(rot Matrix22, translate Vector) Polygon {
	out := make([]Vector, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = rot.Apply(v).Add(translate)
	}
	return Polygon{Vertices: out}
}

// FlipHorizontal mirrors the polygon across the vertical (Y) axis, reversing
// vertex order to preserve the CCW winding invariant.
func (p Polygon) FlipHorizontal() Polygon {
	return p.flip(func(v Vector) Vector { return Vector{X: -v.X, Y: v.Y} })
}

// FlipVertical mirrors the polygon across the horizontal (X) axis, reversing
// vertex order to preserve the CCW winding invariant.
func (p Polygon) FlipVertical() Polygon {
	return p.flip(func(v Vector) Vector { return Vector{X: v.X, Y: -v.Y} })
}

func (p Polygon) flip(f func(Vector) Vector) Polygon {
	n := len(p.Vertices)
	out := make([]Vector, n)
	for i, v := range p.Vertices {
		out[n-1-i] = f(v)
	}
	return Polygon{Vertices: out}
}

// axes returns the outward edge normals used as SAT candidate separating
// axes; for a convex CCW polygon these are each edge's left normal negated
// (i.e. the outward normal).
func (p Polygon) axes() []Vector {
	n := p.NumEdges()
	out := make([]Vector, n)
	for i := 0; i < n; i++ {
		out[i] = p.Edge(i).LeftNormal().Neg()
	}
	return out
}

func projectPolygon(axis Vector, verts []Vector) (min, max float64) {
	min = axis.Dot(verts[0])
	max = min
	for _, v := range verts[1:] {
		d := axis.Dot(v)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// IntersectPolygon performs SAT intersection of p against other, both
// assumed convex and CCW. found is false if a separating axis exists among
// either polygon's edge normals. When found, mtv is the minimum translation
// vector that separates p from other (pointing away from other), and
// contact is the deepest-penetrating vertex plus half the MTV, a reasonable
// single contact point for two convex shapes.
func (p Polygon) IntersectPolygon(other Polygon) (found bool, mtv Vector, contact Vector) {
	if len(p.Vertices) < 3 || len(other.Vertices) < 3 {
		return false, Vector{}, Vector{}
	}
	axes := append(p.axes(), other.axes()...)
	best := math.MaxFloat64
	var bestAxis Vector
	for _, axis := range axes {
		aMin, aMax := projectPolygon(axis, p.Vertices)
		bMin, bMax := projectPolygon(axis, other.Vertices)
		overlap := math.Min(aMax, bMax) - math.Max(aMin, bMin)
		if overlap <= 0 {
			return false, Vector{}, Vector{}
		}
		if overlap < best {
			best = overlap
			bestAxis = axis
			// orient the axis so it points from other towards p.
			centerDiff := func() Vector {
				ca, _ := p.CentroidArea()
				cb, _ := other.CentroidArea()
				return ca.Sub(cb)
			}()
			if bestAxis.Dot(centerDiff) < 0 {
				bestAxis = bestAxis.Neg()
			}
		}
	}
	mtv = bestAxis.Scale(best)
	contact = deepestVertex(other, p, bestAxis.Neg()).Add(mtv.Scale(0.5))
	return true, mtv, contact
}

// deepestVertex returns the vertex of a that penetrates furthest into b
// along axis.
func deepestVertex(a, b Polygon, axis Vector) Vector {
	best := math.Inf(-1)
	var bestV Vector
	for _, v := range a.Vertices {
		d := axis.Dot(v)
		if d > best {
			best = d
			bestV = v
		}
	}
	_ = b
	return bestV
}

// IntersectCircle performs SAT intersection of p against a circle centered
// at center with the given radius, using p's edge normals plus the axis
// towards the circle's closest vertex as candidate separating axes.
func (p Polygon) IntersectCircle(center Vector, radius float64) (found bool, mtv Vector, contact Vector) {
	if len(p.Vertices) < 3 {
		return false, Vector{}, Vector{}
	}
	axes := p.axes()
	closest := p.Vertices[0]
	bestD := math.MaxFloat64
	for _, v := range p.Vertices {
		if d := v.Sub(center).Norm2(); d < bestD {
			bestD = d
			closest = v
		}
	}
	closestAxis := center.Sub(closest).Unitary()
	if !closestAxis.AeqZero() {
		axes = append(axes, closestAxis.Neg())
	}
	best := math.MaxFloat64
	var bestAxis Vector
	for _, axis := range axes {
		aMin, aMax := projectPolygon(axis, p.Vertices)
		cProj := axis.Dot(center)
		bMin, bMax := cProj-radius, cProj+radius
		overlap := math.Min(aMax, bMax) - math.Max(aMin, bMin)
		if overlap <= 0 {
			return false, Vector{}, Vector{}
		}
		if overlap < best {
			best = overlap
			bestAxis = axis
			pc, _ := p.CentroidArea()
			if bestAxis.Dot(pc.Sub(center)) < 0 {
				bestAxis = bestAxis.Neg()
			}
		}
	}
	mtv = bestAxis.Scale(best)
	contact = center.Sub(bestAxis.Scale(radius))
	return true, mtv, contact
}

// ClipRay intersects the ray origin+t*dir, t in [0,tMax], against the
// convex CCW polygon using the Cyrus-Beck line-clipping algorithm: each
// edge's outward normal defines a half-plane, and the ray's surviving
// parameter range is the intersection of all half-plane constraints.
// Returns the smallest t at which the ray enters the polygon, and whether
// such an entry exists within [0,tMax].
func (p Polygon) ClipRay(origin, dir Vector, tMax float64) (tEnter float64, ok bool) {
	if len(p.Vertices) < 3 {
		return 0, false
	}
	tEnter, tExit := 0.0, tMax
	for i := 0; i < p.NumEdges(); i++ {
		edge := p.Edge(i)
		outward := edge.LeftNormal().Neg()
		numerator := outward.Dot(edge.A.Sub(origin))
		denominator := outward.Dot(dir)
		if math.Abs(denominator) < Epsilon {
			if numerator < 0 {
				return 0, false // ray parallel to and outside this edge.
			}
			continue
		}
		t := numerator / denominator
		if denominator < 0 {
			if t > tEnter {
				tEnter = t
			}
		} else {
			if t < tExit {
				tExit = t
			}
		}
		if tEnter > tExit {
			return 0, false
		}
	}
	if tEnter > tExit || tEnter > tMax || tEnter < 0 {
		return 0, false
	}
	return tEnter, true
}

// GiftWrap computes the convex hull of an arbitrary point set using the
// gift-wrapping (Jarvis march) algorithm, returning a CCW polygon. Used to
// compute the convex hull of a hull-of-hulls on demand.
func GiftWrap(points []Vector) Polygon {
	n := len(points)
	if n < 3 {
		return Polygon{Vertices: append([]Vector(nil), points...)}
	}
	// start from the lowest-Y (then lowest-X) point, guaranteed on the hull.
	start := 0
	for i, p := range points {
		if p.Y < points[start].Y || (p.Y == points[start].Y && p.X < points[start].X) {
			start = i
		}
	}
	hull := []Vector{}
	current := start
	for {
		hull = append(hull, points[current])
		next := (current + 1) % n
		for i := 0; i < n; i++ {
			if i == current {
				continue
			}
			cross := points[next].Sub(points[current]).Cross(points[i].Sub(points[current]))
			if cross < 0 {
				next = i
			}
		}
		current = next
		if current == start {
			break
		}
		if len(hull) > n {
			break // degenerate input guard
		}
	}
	return Polygon{Vertices: hull}
}

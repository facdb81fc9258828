package shape

import "github.com/enkisim/enki2d/geom"

// MomentOfInertia returns the scalar moment of inertia of the hull about its
// own centroid, for the given total mass distributed uniformly over its
// area. Uses the closed-form polygon integral
//
//	I = (density/12) * sum |v_i x v_{i+1}| * (v_i.v_i + v_i.v_{i+1} + v_{i+1}.v_{i+1})
//
// per part, summed, rather than the source engine's 50x50 grid-rasterization
// estimate (design notes accept the closed form as equivalent to that
// reference oracle). Assumes the hull has already been recentered so its
// area-weighted centroid is the origin; otherwise the result is the moment
// about the body-local origin, not the centroid.
func (h Hull) MomentOfInertia(mass float64) float64 {
	_, totalArea := h.CentroidArea()
	if totalArea < geom.Epsilon {
		return 0
	}
	density := mass / totalArea
	var sum float64
	for _, part := range h.Parts {
		verts := part.Local.Vertices
		n := len(verts)
		for i := 0; i < n; i++ {
			v0 := verts[i]
			v1 := verts[(i+1)%n]
			cross := v0.Cross(v1)
			if cross < 0 {
				cross = -cross
			}
			sum += cross * (v0.Dot(v0) + v0.Dot(v1) + v1.Dot(v1))
		}
	}
	return (density / 12) * sum
}

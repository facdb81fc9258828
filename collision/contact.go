// Package collision implements the pairwise contact detection (broad phase
// by bounding radius, narrow phase by shape kind), impulse-based response,
// and world-boundary collisions described by the simulation kernel.
//
// Grounded on the teacher's move/move.go — an older, simpler impulse-based
// engine (broadphase/narrowphase/solver) that is structurally closer to the
// spec than the teacher's newer PBD-based physics package — generalized from
// 3D boxes/spheres to 2D circles and convex hulls, and from AABB broadphase
// to bounding-radius broadphase (the kernel has no bounding-volume
// hierarchy; broadphase is a single O(1) radius check per candidate pair).
package collision

import "github.com/enkisim/enki2d/geom"

// Contact describes a single contact point between two shapes. By
// convention Normal points from the second shape towards the first (the
// direction the first shape should be pushed to depenetrate).
type Contact struct {
	Normal geom.Vector // unit vector, points from the second shape towards the first.
	Depth  float64     // penetration depth along Normal.
	Point  geom.Point  // world-space contact point.
}

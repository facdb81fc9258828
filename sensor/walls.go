package sensor

import (
	"math"

	"github.com/enkisim/enki2d/collision"
	"github.com/enkisim/enki2d/geom"
)

// wallRayHit intersects a ray from a point known to lie inside the arena
// with the arena boundary, returning the distance to the boundary clipped
// to [0, dMax]. Rectangular walls are solved by the standard slab method
// (the ray exits through the nearest of the per-axis exit planes);
// circular walls, by the ray/circle quadratic's positive root.
func wallRayHit(w collision.Walls, origin, dir geom.Vector, dMax float64) (float64, bool) {
	switch w.Kind {
	case collision.SquareWalls:
		return rayBoxExit(origin, dir, w.W, w.H, dMax)
	case collision.CircleWalls:
		return rayCircleExit(origin, dir, w.R, dMax)
	default:
		return 0, false
	}
}

func rayBoxExit(origin, dir geom.Vector, width, height, dMax float64) (float64, bool) {
	tEnter, tExit := 0.0, dMax
	axes := [2]struct{ o, d, extent float64 }{
		{origin.X, dir.X, width},
		{origin.Y, dir.Y, height},
	}
	for _, ax := range axes {
		if math.Abs(ax.d) < geom.Epsilon {
			if ax.o < 0 || ax.o > ax.extent {
				return 0, false
			}
			continue
		}
		t1 := (0 - ax.o) / ax.d
		t2 := (ax.extent - ax.o) / ax.d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tEnter {
			tEnter = t1
		}
		if t2 < tExit {
			tExit = t2
		}
		if tEnter > tExit {
			return 0, false
		}
	}
	if tExit < 0 || tExit > dMax {
		return 0, false
	}
	return tExit, true
}

func rayCircleExit(origin, dir geom.Vector, radius, dMax float64) (float64, bool) {
	b := 2 * dir.Dot(origin)
	c := origin.Norm2() - radius*radius
	disc := b*b - 4*c
	if disc < 0 {
		return 0, false
	}
	t := (-b + math.Sqrt(disc)) / 2
	if t < 0 || t > dMax {
		return 0, false
	}
	return t, true
}

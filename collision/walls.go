package collision

import (
	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/geom"
)

// WallKind selects the arena boundary shape.
type WallKind int

const (
	// NoWalls means an open, unbounded arena; bodies drift indefinitely.
	NoWalls WallKind = iota
	// SquareWalls bounds the arena to a W x H rectangle spanning [0,W] x [0,H].
	SquareWalls
	// CircleWalls bounds the arena to a disk of radius R centered on the origin.
	CircleWalls
)

// Walls describes the world boundary.
type Walls struct {
	Kind WallKind
	W, H float64 // SquareWalls extents.
	R    float64 // CircleWalls radius.
}

// Contacts returns the wall contacts (zero, one, or up to two for a circle
// body pinned in a corner) for body b against the given walls. As with
// Detect, Normal points from the wall towards b.
func (w Walls) Contacts(b *body.PhysicalObject) []Contact {
	switch w.Kind {
	case SquareWalls:
		return w.squareContacts(b)
	case CircleWalls:
		if c, ok := w.circleContact(b); ok {
			return []Contact{c}
		}
		return nil
	default:
		return nil
	}
}

// InteriorMargin reports whether pos is farther than margin from every
// wall: for SquareWalls, strictly inside [margin, W-margin] x [margin,
// H-margin]; for CircleWalls, within radius R-margin of the origin;
// NoWalls is always interior. Used by the local-interaction host's wall
// early-out (§4.5): once a sensor's range can no longer reach any wall,
// shorter-range interactions (sorted after it) cannot either.
func (w Walls) InteriorMargin(pos geom.Point, margin float64) bool {
	switch w.Kind {
	case SquareWalls:
		return pos.X > margin && pos.X < w.W-margin && pos.Y > margin && pos.Y < w.H-margin
	case CircleWalls:
		return pos.Norm() < w.R-margin
	default:
		return true
	}
}

func (w Walls) squareContacts(b *body.PhysicalObject) []Contact {
	var out []Contact
	switch b.Kind {
	case body.Circle:
		r := b.Radius
		if d := b.Pos.X - r; d < 0 {
			out = append(out, Contact{Normal: geom.Vector{X: 1}, Depth: -d, Point: geom.Vector{X: 0, Y: b.Pos.Y}})
		}
		if d := w.W - (b.Pos.X + r); d < 0 {
			out = append(out, Contact{Normal: geom.Vector{X: -1}, Depth: -d, Point: geom.Vector{X: w.W, Y: b.Pos.Y}})
		}
		if d := b.Pos.Y - r; d < 0 {
			out = append(out, Contact{Normal: geom.Vector{Y: 1}, Depth: -d, Point: geom.Vector{X: b.Pos.X, Y: 0}})
		}
		if d := w.H - (b.Pos.Y + r); d < 0 {
			out = append(out, Contact{Normal: geom.Vector{Y: -1}, Depth: -d, Point: geom.Vector{X: b.Pos.X, Y: w.H}})
		}
	case body.HullShape:
		out = append(out, w.squareHullContacts(b)...)
	}
	return out
}

// squareHullContacts iterates transformed vertices and keeps the deepest
// excursion per axis/side, generating at most one contact per breached
// axis, per spec §4.1.
func (w Walls) squareHullContacts(b *body.PhysicalObject) []Contact {
	var minX, minY, maxX, maxY float64
	var atMinX, atMinY, atMaxX, atMaxY geom.Vector
	init := false
	for _, part := range b.Hull.Parts {
		for _, v := range part.World().Vertices {
			if !init {
				minX, maxX, minY, maxY = v.X, v.X, v.Y, v.Y
				atMinX, atMaxX, atMinY, atMaxY = v, v, v, v
				init = true
				continue
			}
			if v.X < minX {
				minX, atMinX = v.X, v
			}
			if v.X > maxX {
				maxX, atMaxX = v.X, v
			}
			if v.Y < minY {
				minY, atMinY = v.Y, v
			}
			if v.Y > maxY {
				maxY, atMaxY = v.Y, v
			}
		}
	}
	if !init {
		return nil
	}
	var out []Contact
	if minX < 0 {
		out = append(out, Contact{Normal: geom.Vector{X: 1}, Depth: -minX, Point: geom.Vector{X: 0, Y: atMinX.Y}})
	}
	if maxX > w.W {
		out = append(out, Contact{Normal: geom.Vector{X: -1}, Depth: maxX - w.W, Point: geom.Vector{X: w.W, Y: atMaxX.Y}})
	}
	if minY < 0 {
		out = append(out, Contact{Normal: geom.Vector{Y: 1}, Depth: -minY, Point: geom.Vector{X: atMinY.X, Y: 0}})
	}
	if maxY > w.H {
		out = append(out, Contact{Normal: geom.Vector{Y: -1}, Depth: maxY - w.H, Point: geom.Vector{X: atMaxY.X, Y: w.H}})
	}
	return out
}

func (w Walls) circleContact(b *body.PhysicalObject) (Contact, bool) {
	switch b.Kind {
	case body.Circle:
		dist := b.Pos.Norm()
		depth := (dist + b.Radius) - w.R
		if depth <= 0 {
			return Contact{}, false
		}
		if dist < geom.Epsilon {
			return Contact{Normal: geom.Vector{X: 1}, Depth: depth, Point: geom.Vector{X: w.R}}, true
		}
		outward := b.Pos.Scale(1 / dist)
		return Contact{Normal: outward.Neg(), Depth: depth, Point: outward.Scale(w.R)}, true
	case body.HullShape:
		best := 0.0
		var bestV geom.Vector
		found := false
		for _, part := range b.Hull.Parts {
			for _, v := range part.World().Vertices {
				if d := v.Norm() - w.R; d > best {
					best = d
					bestV = v
					found = true
				}
			}
		}
		if !found {
			return Contact{}, false
		}
		dist := bestV.Norm()
		if dist < geom.Epsilon {
			return Contact{}, false
		}
		outward := bestV.Scale(1 / dist)
		return Contact{Normal: outward.Neg(), Depth: best, Point: outward.Scale(w.R)}, true
	}
	return Contact{}, false
}

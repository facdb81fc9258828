// Package shape provides the convex-polygon "hull" body shape: an ordered
// union of convex parts, each with a cached world-space transform, a
// centroid/area, an occlusion height, and an optional per-edge texture.
//
// Grounded on the teacher's collider_Convex_Hull (physics/collider.go) and
// its face/vertex bookkeeping, generalized from a single 3D convex mesh to
// an ordered list of 2D convex parts.
package shape

import (
	"log/slog"

	"github.com/enkisim/enki2d/geom"
)

// Part is one convex polygon of a Hull, in body-local coordinates, plus the
// bookkeeping the rest of the kernel needs each physics step.
type Part struct {
	Local     geom.Polygon // body-local, CCW, convex.
	world     geom.Polygon // cached world-space transform, recomputed each physics step.
	Height    float64      // occlusion height; sensors compare against observer height.
	Texture   []Color      // per-edge color; textured iff non-empty and len == NumEdges().
	worldDone bool
}

// Color is a simple RGBA color, 0-255 per channel. Kept separate from
// image.RGBA's premultiplied-alpha semantics since part textures and body
// colors here are plain, non-premultiplied swatches.
type Color struct {
	R, G, B, A uint8
}

// NewPart builds a part from body-local vertices. A texture, if supplied,
// must have exactly one color per edge; a mismatched texture is discarded
// and logged rather than causing a panic, per the kernel's no-exceptions
// error model.
func NewPart(vertices []geom.Vector, height float64, texture []Color) Part {
	local := geom.NewPolygon(vertices)
	if len(texture) > 0 && len(texture) != local.NumEdges() {
		slog.Error("shape.NewPart: texture length does not match edge count, discarding",
			"texture_len", len(texture), "edges", local.NumEdges())
		texture = nil
	}
	return Part{Local: local, Height: height, Texture: texture}
}

// Textured reports whether this part has a per-edge texture.
func (p Part) Textured() bool { return len(p.Texture) > 0 && len(p.Texture) == p.Local.NumEdges() }

// World returns the cached world-space polygon. Valid only after Transform
// has been called for the current physics step.
func (p Part) World() geom.Polygon { return p.world }

// Transform recomputes the cached world-space polygon from the body pose.
func (p *Part) Transform(rot geom.Matrix22, translate geom.Vector) {
	p.world = p.Local.Transform(rot, translate)
	p.worldDone = true
}

// CentroidArea returns the body-local centroid and signed area (positive
// for CCW) via the shoelace formula.
func (p Part) CentroidArea() (geom.Vector, float64) { return p.Local.CentroidArea() }

// Hull is an ordered list of convex polygon parts forming one body's shape.
type Hull struct {
	Parts []Part
}

// NewHull builds a hull from a set of parts, as given (no recentering: that
// is the caller's — typically body.SetCustomHull's — responsibility since it
// must also recompute radius and moment of inertia consistently).
func NewHull(parts []Part) Hull { return Hull{Parts: append([]Part(nil), parts...)} }

// CentroidArea returns the area-weighted centroid over all parts, and the
// summed absolute area. A hull with zero total area returns the origin.
func (h Hull) CentroidArea() (geom.Vector, float64) {
	var cx, cy, totalArea float64
	for _, part := range h.Parts {
		c, a := part.CentroidArea()
		wa := a
		if wa < 0 {
			wa = -wa
		}
		cx += c.X * wa
		cy += c.Y * wa
		totalArea += wa
	}
	if totalArea < geom.Epsilon {
		return geom.Vector{}, 0
	}
	return geom.Vector{X: cx / totalArea, Y: cy / totalArea}, totalArea
}

// Recenter translates every part so that the hull's area-weighted centroid
// becomes the origin, matching the body invariant that a hull body's
// body-local centroid is the origin after construction.
func (h Hull) Recenter() Hull {
	centroid, _ := h.CentroidArea()
	if centroid.AeqZero() {
		return h
	}
	out := make([]Part, len(h.Parts))
	for i, part := range h.Parts {
		verts := make([]geom.Vector, len(part.Local.Vertices))
		for j, v := range part.Local.Vertices {
			verts[j] = v.Sub(centroid)
		}
		out[i] = Part{Local: geom.NewPolygon(verts), Height: part.Height, Texture: part.Texture}
	}
	return Hull{Parts: out}
}

// BoundingRadius returns the maximum body-local vertex norm across all
// parts, i.e. the radius of the smallest circle centered at the origin that
// encloses the hull. Call after Recenter so the origin is the centroid.
func (h Hull) BoundingRadius() float64 {
	r := 0.0
	for _, part := range h.Parts {
		if pr := part.Local.BoundingRadius(geom.Vector{}); pr > r {
			r = pr
		}
	}
	return r
}

// MaxHeight returns the tallest occlusion height across all parts.
func (h Hull) MaxHeight() float64 {
	r := 0.0
	for _, part := range h.Parts {
		if part.Height > r {
			r = part.Height
		}
	}
	return r
}

// TransformAll recomputes every part's cached world-space polygon from the
// given body pose. Called once per physics step.
func (h *Hull) TransformAll(rot geom.Matrix22, translate geom.Vector) {
	for i := range h.Parts {
		h.Parts[i].Transform(rot, translate)
	}
}

// ConvexHull computes the convex hull of a hull-of-hulls on demand via
// gift-wrapping over every part's world-space vertices.
func (h Hull) ConvexHull() geom.Polygon {
	var pts []geom.Vector
	for _, part := range h.Parts {
		pts = append(pts, part.world.Vertices...)
	}
	return geom.GiftWrap(pts)
}

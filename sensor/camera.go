package sensor

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/collision"
	"github.com/enkisim/enki2d/geom"
	"github.com/enkisim/enki2d/interaction"
	"github.com/enkisim/enki2d/shape"
)

// Camera is a 1-D angular frame buffer: N pixels covering [-FOV, FOV],
// each storing squared depth and a color, rasterized from the scene each
// tick. It implements interaction.LocalInteraction, generalized from the
// teacher's camera.go perspective camera down to a single angular sweep.
type Camera struct {
	Owner     *body.PhysicalObject
	Offset    geom.Vector
	OrientRel float64
	FOV       float64 // half the angular field of view, radians.
	N         int     // pixel count.
	Height    float64 // occlusion height; bodies no taller than this are invisible.
	FarClip   float64 // visibility range, used only for the interaction host's early-out.

	Background shape.Color
	WallColor  shape.Color

	FogDensity     float64 // 0 disables fog.
	LightThreshold uint8   // channels below this are zeroed after fog.

	Depth2 []float64
	Pixels []shape.Color

	pos   geom.Point
	angle float64
}

// NewCamera returns a Camera mounted on owner with N pixels across the
// given half field of view.
func NewCamera(owner *body.PhysicalObject, offset geom.Vector, orientRel, fov float64, n int, background shape.Color, farClip float64) *Camera {
	return &Camera{
		Owner: owner, Offset: offset, OrientRel: orientRel, FOV: fov, N: n,
		Background: background, FarClip: farClip,
		Depth2: make([]float64, n), Pixels: make([]shape.Color, n),
	}
}

// Range satisfies interaction.LocalInteraction; bodies farther than
// FarClip cannot appear in frame.
func (c *Camera) Range() float64 { return c.FarClip }

// Init computes the camera's absolute pose and resets every pixel to
// infinite depth and the background color, per spec §4.7 step 1.
func (c *Camera) Init(dt float64, w interaction.World) {
	c.pos = c.Owner.Pos.Add(c.Offset.Rotate(c.Owner.Angle))
	c.angle = c.Owner.Angle + c.OrientRel
	for i := range c.Depth2 {
		c.Depth2[i] = math.Inf(1)
		c.Pixels[i] = c.Background
	}
}

// toLocal transforms a world point into the camera's local frame (camera
// at the origin, looking along +x).
func (c *Camera) toLocal(p geom.Point) geom.Vector {
	return geom.NewMatrix22(-c.angle).Apply(p.Sub(c.pos))
}

// indexToAngle maps a pixel index in [0,N-1] to its angle in [-FOV,FOV].
func (c *Camera) indexToAngle(i int) float64 {
	if c.N <= 1 {
		return 0
	}
	return -c.FOV + float64(i)*(2*c.FOV)/float64(c.N-1)
}

// angleToIndex maps an angle in [-FOV,FOV] to a (fractional) pixel index,
// per spec §4.7's angle_to_index = ((angle+fov)/fov)*((N-1)/2) — equivalent
// to ((angle+fov)/(2*fov))*(N-1), the form used here.
func (c *Camera) angleToIndex(angle float64) float64 {
	return (angle + c.FOV) / (2 * c.FOV) * float64(c.N-1)
}

// indexBounds rounds the fractional pixel indices spanning [lo,hi] (an
// angular interval already clamped to the frame's aperture) to the
// enclosing integer pixel range, clipped to [0,N-1]. Rounding goes through
// fixed.Int26_6 rather than math.Ceil/math.Floor on the raw float64 so that
// pixel alignment is governed by the same fixed-point unit the teacher's
// text rasterizer uses for sub-pixel placement, rather than ad hoc float
// comparisons.
func (c *Camera) indexBounds(lo, hi float64) (int, int) {
	loFixed := fixed.Int26_6(math.Round(c.angleToIndex(lo) * 64))
	hiFixed := fixed.Int26_6(math.Round(c.angleToIndex(hi) * 64))
	iLo, iHi := loFixed.Ceil(), hiFixed.Floor()
	if iLo < 0 {
		iLo = 0
	}
	if iHi > c.N-1 {
		iHi = c.N - 1
	}
	return iLo, iHi
}

// merge applies the default pixel-merge functor: a depth² z-test.
func (c *Camera) merge(i int, depth2 float64, color shape.Color) {
	if i < 0 || i >= c.N {
		return
	}
	if depth2 < c.Depth2[i] {
		c.Depth2[i] = depth2
		c.Pixels[i] = color
	}
}

// ObjectStep rasterizes a single other body into the frame, per spec §4.7
// step 2: circles as an angular arc of constant depth/color, hulls as their
// world-space edges via drawTexturedLine.
func (c *Camera) ObjectStep(dt float64, w interaction.World, other *body.PhysicalObject) {
	if other.Height <= c.Height {
		return
	}
	switch other.Kind {
	case body.Circle:
		c.rasterizeCircle(other)
	case body.HullShape:
		for _, part := range other.Hull.Parts {
			if part.Height <= c.Height {
				continue
			}
			c.rasterizePart(part, other.Color)
		}
	}
}

func (c *Camera) rasterizeCircle(other *body.PhysicalObject) {
	local := c.toLocal(other.Pos)
	dist := local.Norm()
	if dist < geom.Epsilon || dist <= other.Radius {
		return // sensor is inside or at the target's center; degenerate, skip.
	}
	centerAngle := local.Angle()
	halfSpan := math.Atan2(other.Radius, dist)
	lo, hi := centerAngle-halfSpan, centerAngle+halfSpan
	if lo > c.FOV || hi < -c.FOV {
		return
	}
	lo, hi = math.Max(lo, -c.FOV), math.Min(hi, c.FOV)
	iLo, iHi := c.indexBounds(lo, hi)
	depth2 := dist*dist - other.Radius*other.Radius
	for i := iLo; i <= iHi; i++ {
		c.merge(i, depth2, other.Color)
	}
}

func (c *Camera) rasterizePart(part shape.Part, color shape.Color) {
	poly := part.World()
	texture := part.Texture
	for i := 0; i < poly.NumEdges(); i++ {
		edge := poly.Edge(i)
		edgeColor := texture
		if !part.Textured() {
			edgeColor = []shape.Color{color}
		}
		c.drawTexturedLine(edge.A, edge.B, edgeColor)
	}
}

// drawTexturedLine rasterizes the world-space segment p0->p1 into the
// camera frame, per spec §4.7: endpoints are transformed into the camera
// frame and ordered by angular position; segments wholly outside the
// aperture, or whose angular span exceeds pi (passing behind the camera),
// are rejected; surviving pixels are found by intersecting each pixel's
// viewing ray with the segment and merged by the depth² z-test.
//
// Departs from the spec's incremental tangent recurrence for stepping
// between pixel angles: at the kernel's pixel counts (tens to low
// hundreds) recomputing each pixel's angle directly from its index is not
// a measurable cost, and avoids the recurrence's drift over a long scan —
// see DESIGN.md.
func (c *Camera) drawTexturedLine(p0, p1 geom.Vector, texture []shape.Color) {
	if len(texture) == 0 {
		return
	}
	lp0, lp1 := c.toLocal(p0), c.toLocal(p1)
	if lp0.AeqZero() || lp1.AeqZero() {
		return
	}
	a0, a1 := lp0.Angle(), lp1.Angle()
	lo, hi := a0, a1
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo > math.Pi {
		return // segment passes behind the camera; not handled.
	}
	if hi < -c.FOV || lo > c.FOV {
		return
	}
	lo, hi = math.Max(lo, -c.FOV), math.Min(hi, c.FOV)
	iLo, iHi := c.indexBounds(lo, hi)
	seg := geom.Segment{A: lp0, B: lp1}
	for i := iLo; i <= iHi; i++ {
		angle := c.indexToAngle(i)
		ray := geom.Segment{A: geom.Vector{}, B: geom.Vector{X: math.Cos(angle), Y: math.Sin(angle)}}
		t, u, ok := ray.Intersect(seg)
		if !ok || t < 0 {
			continue
		}
		lambda := clamp(u, 0, 1)
		texIdx := int(lambda * float64(len(texture)))
		if texIdx >= len(texture) {
			texIdx = len(texture) - 1
		}
		c.merge(i, t*t, texture[texIdx])
	}
}

// WallsStep rasterizes the arena boundary: square walls as four textured
// lines, circular walls tessellated into segments proportional to
// perimeter, per spec §4.7 step 3.
func (c *Camera) WallsStep(dt float64, w interaction.World) {
	walls := w.Walls()
	one := []shape.Color{c.WallColor}
	switch walls.Kind {
	case collision.SquareWalls:
		corners := [4]geom.Vector{{}, {X: walls.W}, {X: walls.W, Y: walls.H}, {Y: walls.H}}
		for i := 0; i < 4; i++ {
			c.drawTexturedLine(corners[i], corners[(i+1)%4], one)
		}
	case collision.CircleWalls:
		const segLen = 2.0
		n := int(2 * math.Pi * walls.R / segLen)
		if n < 8 {
			n = 8
		}
		prev := geom.Vector{X: walls.R}
		for i := 1; i <= n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			cur := geom.Vector{X: walls.R * math.Cos(theta), Y: walls.R * math.Sin(theta)}
			c.drawTexturedLine(prev, cur, one)
			prev = cur
		}
	}
}

// Finalize applies fog (if FogDensity > 0) then the light threshold, per
// spec §4.7 step 4: color[i] *= 1/(1+density*sqrt(depth2[i])), then
// channels below LightThreshold are zeroed.
func (c *Camera) Finalize(dt float64, w interaction.World) {
	for i := range c.Pixels {
		col := c.Pixels[i]
		if c.FogDensity > 0 && !math.IsInf(c.Depth2[i], 1) {
			atten := 1 / (1 + c.FogDensity*math.Sqrt(c.Depth2[i]))
			col = shape.Color{
				R: uint8(float64(col.R) * atten),
				G: uint8(float64(col.G) * atten),
				B: uint8(float64(col.B) * atten),
				A: col.A,
			}
		}
		if c.LightThreshold > 0 {
			if col.R < c.LightThreshold {
				col.R = 0
			}
			if col.G < c.LightThreshold {
				col.G = 0
			}
			if col.B < c.LightThreshold {
				col.B = 0
			}
		}
		c.Pixels[i] = col
	}
}

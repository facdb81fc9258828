package sensor

import (
	"math"

	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/geom"
	"github.com/enkisim/enki2d/interaction"
	"github.com/enkisim/enki2d/shape"
)

// Camera360 is a full 360-degree frame buffer built from two back-to-back
// half-aperture Cameras: Front looks along the owner's heading, Back is
// mounted with the mirrored orientation offset of pi so the pair's combined
// field of view wraps all the way around. After a tick finalizes, the two
// halves' depth and color arrays are concatenated into Depth2 and Pixels,
// front half first, so a caller sees one continuous ring buffer rather than
// two independent frames.
type Camera360 struct {
	Front *Camera
	Back  *Camera

	Depth2 []float64
	Pixels []shape.Color
}

// NewCamera360 returns a Camera360 mounted on owner with n pixels spread
// evenly across the two halves (n/2 each). FOV for each half is fixed at
// pi/2 so their union covers the full circle with no gap or overlap.
func NewCamera360(owner *body.PhysicalObject, offset geom.Vector, n int, background shape.Color, farClip float64) *Camera360 {
	half := n / 2
	front := NewCamera(owner, offset, 0, math.Pi/2, half, background, farClip)
	back := NewCamera(owner, offset, math.Pi, math.Pi/2, n-half, background, farClip)
	return &Camera360{
		Front: front, Back: back,
		Depth2: make([]float64, half+(n-half)),
		Pixels: make([]shape.Color, half+(n-half)),
	}
}

// Range satisfies interaction.LocalInteraction; both halves share the same
// FarClip, so either's range applies to the composed camera.
func (c *Camera360) Range() float64 { return c.Front.Range() }

// Init resets both halves.
func (c *Camera360) Init(dt float64, w interaction.World) {
	c.Front.Init(dt, w)
	c.Back.Init(dt, w)
}

// ObjectStep rasterizes other into both halves; a body straddling the
// front/back boundary is correctly split between the two since each half
// independently clips to its own aperture.
func (c *Camera360) ObjectStep(dt float64, w interaction.World, other *body.PhysicalObject) {
	c.Front.ObjectStep(dt, w, other)
	c.Back.ObjectStep(dt, w, other)
}

// WallsStep rasterizes the arena boundary into both halves.
func (c *Camera360) WallsStep(dt float64, w interaction.World) {
	c.Front.WallsStep(dt, w)
	c.Back.WallsStep(dt, w)
}

// Finalize applies each half's own fog/threshold pass, then concatenates
// the front and back pixel and depth arrays into c.Depth2 and c.Pixels,
// front half first.
func (c *Camera360) Finalize(dt float64, w interaction.World) {
	c.Front.Finalize(dt, w)
	c.Back.Finalize(dt, w)
	n := copy(c.Depth2, c.Front.Depth2)
	copy(c.Depth2[n:], c.Back.Depth2)
	n = copy(c.Pixels, c.Front.Pixels)
	copy(c.Pixels[n:], c.Back.Pixels)
}

package world

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/collision"
	"github.com/enkisim/enki2d/geom"
)

// GroundTexture is the optional ground-texture buffer of spec §6: a
// width x height scanline of ARGB pixel values, sampled by World's
// GroundColor. Backed by image.RGBA, matching the teacher's own texture
// representation in load/png.go and texture.go.
type GroundTexture struct {
	Img *image.RGBA
}

// NewGroundTexture returns a blank, fully-transparent ground buffer of the
// given pixel dimensions.
func NewGroundTexture(width, height int) *GroundTexture {
	return &GroundTexture{Img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Blit resamples src into the ground buffer at its existing dimensions,
// via golang.org/x/image/draw's bilinear scaler — the same resampling
// family the teacher reaches for (x/image/draw) rather than a hand-rolled
// nearest-neighbor loop.
func (g *GroundTexture) Blit(src image.Image) {
	draw.BiLinear.Scale(g.Img, g.Img.Bounds(), src, src.Bounds(), draw.Over, nil)
}

// LoadGroundTexture decodes a PNG from r and resamples it into a ground
// buffer of the given pixel dimensions. This is the kernel's one
// error-returning entry point, per spec §6/§7: malformed external image
// data is reported to the caller rather than logged and discarded, mirroring
// the teacher's load/png.go Png(r, d) loader.
func LoadGroundTexture(r io.Reader, width, height int) (*GroundTexture, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	g := NewGroundTexture(width, height)
	g.Blit(src)
	return g, nil
}

// At returns the raw pixel color at the given pixel coordinates, clamped
// to the buffer's bounds.
func (g *GroundTexture) At(x, y int) body.Color {
	bounds := g.Img.Bounds()
	x = min(max(x, bounds.Min.X), bounds.Max.X-1)
	y = min(max(y, bounds.Min.Y), bounds.Max.Y-1)
	r, gr, b, a := g.Img.At(x, y).RGBA()
	return body.Color{R: uint8(r >> 8), G: uint8(gr >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// GroundColor samples the world's ground texture at the given world-space
// point, per spec §6: square arenas map [0,W] x [0,H] linearly onto the
// texture's pixel grid; circular arenas map [-R,R]^2 onto [0,width) x
// [0,height). Points outside both the arena and the texture return
// WallColor, and a world with no ground texture always returns WallColor.
func (w *World) GroundColor(p geom.Point) body.Color {
	if w.Ground == nil {
		return w.WallColor
	}
	bounds := w.Ground.Img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	var u, v float64
	switch w.walls.Kind {
	case collision.CircleWalls:
		if w.walls.R <= 0 {
			return w.WallColor
		}
		u = (p.X + w.walls.R) / (2 * w.walls.R)
		v = (p.Y + w.walls.R) / (2 * w.walls.R)
	default:
		if w.walls.W <= 0 || w.walls.H <= 0 {
			return w.WallColor
		}
		u = p.X / w.walls.W
		v = p.Y / w.walls.H
	}
	if u < 0 || u >= 1 || v < 0 || v >= 1 {
		return w.WallColor
	}
	x := int(u * float64(width))
	y := int(v * float64(height))
	return w.Ground.At(x, y)
}

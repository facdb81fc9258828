package sensor

import (
	"math"
	"testing"

	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/geom"
)

func TestCamera360ConcatenatesFrontAndBackHalves(t *testing.T) {
	owner := body.NewCircle(1, 1, -1)
	cam := NewCamera360(owner, geom.Vector{}, 10, white, 1000) // 5 pixels per half, so N/2 is the pixel at angle 0.

	ahead := body.NewCircle(1, 1, 1)
	ahead.Pos = geom.Vector{X: 10}
	ahead.Color = black

	behind := body.NewCircle(1, 1, 1)
	behind.Pos = geom.Vector{X: -10}
	behind.Color = black

	cam.Init(0.1, fakeWorld{})
	cam.ObjectStep(0.1, fakeWorld{}, ahead)
	cam.ObjectStep(0.1, fakeWorld{}, behind)
	cam.Finalize(0.1, fakeWorld{})

	if len(cam.Depth2) != 10 || len(cam.Pixels) != 10 {
		t.Fatalf("expected 10 concatenated pixels, got depth2=%d pixels=%d", len(cam.Depth2), len(cam.Pixels))
	}

	frontCenter := cam.Front.N / 2
	if cam.Pixels[frontCenter] != black {
		t.Errorf("expected the front half's center pixel to show the ahead target, got %+v", cam.Pixels[frontCenter])
	}

	backCenter := len(cam.Front.Pixels) + cam.Back.N/2
	if cam.Pixels[backCenter] != black {
		t.Errorf("expected the back half's center pixel to show the behind target, got %+v", cam.Pixels[backCenter])
	}
}

func TestCamera360HalvesCoverOppositeDirections(t *testing.T) {
	owner := body.NewCircle(1, 1, -1)
	cam := NewCamera360(owner, geom.Vector{}, 4, white, 100)
	if cam.Front.OrientRel != 0 {
		t.Errorf("expected the front half to face the owner's heading, got offset %v", cam.Front.OrientRel)
	}
	if !geom.Aeq(cam.Back.OrientRel, math.Pi) {
		t.Errorf("expected the back half to be mirrored by pi, got offset %v", cam.Back.OrientRel)
	}
}

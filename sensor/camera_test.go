package sensor

import (
	"math"
	"testing"

	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/geom"
	"github.com/enkisim/enki2d/shape"
)

var white = shape.Color{R: 255, G: 255, B: 255, A: 255}
var black = shape.Color{A: 255}

// TestCameraCircleOccludesWithinAngularExtent exercises spec scenario S5:
// camera at origin, heading +x, 128 pixels across [-pi/2,+pi/2], background
// white. Target circle r=2 at (10,0), color black. Pixels within
// +-arctan(2/10) of the center should be black with depth^2 ~= 96; the rest
// stay the white background.
func TestCameraCircleOccludesWithinAngularExtent(t *testing.T) {
	owner := body.NewCircle(1, 1, -1)
	cam := NewCamera(owner, geom.Vector{}, 0, math.Pi/2, 128, white, 1000)
	target := body.NewCircle(2, 1, 1)
	target.Pos = geom.Vector{X: 10}
	target.Color = black

	cam.Init(0.1, fakeWorld{})
	cam.ObjectStep(0.1, fakeWorld{}, target)
	cam.Finalize(0.1, fakeWorld{})

	centerIdx := cam.N / 2
	if cam.Pixels[centerIdx] != black {
		t.Fatalf("expected the center pixel to show the black target, got %+v", cam.Pixels[centerIdx])
	}
	if math.Abs(cam.Depth2[centerIdx]-96) > 0.5 {
		t.Errorf("expected depth^2 ~= 96 at the center pixel, got %v", cam.Depth2[centerIdx])
	}
	if cam.Pixels[0] != white {
		t.Errorf("expected an edge pixel outside the target's angular extent to remain background, got %+v", cam.Pixels[0])
	}

	halfSpan := math.Atan2(2, 10) // spec's angular-extent model: atan(r/d), not the exact tangent angle.
	edgeAngle := halfSpan + 0.05  // just outside the target's extent.
	outsideIdx := int(cam.angleToIndex(edgeAngle))
	if outsideIdx >= 0 && outsideIdx < cam.N && cam.Pixels[outsideIdx] != white {
		t.Errorf("expected pixel just outside the target's extent to remain background, got %+v", cam.Pixels[outsideIdx])
	}
}

func TestCameraResetsOnInit(t *testing.T) {
	owner := body.NewCircle(1, 1, -1)
	cam := NewCamera(owner, geom.Vector{}, 0, math.Pi/4, 16, white, 100)
	cam.Pixels[0] = black
	cam.Depth2[0] = 1
	cam.Init(0.1, fakeWorld{})
	if cam.Pixels[0] != white {
		t.Errorf("expected Init to reset pixels to the background color")
	}
	if !math.IsInf(cam.Depth2[0], 1) {
		t.Errorf("expected Init to reset depth to +Inf")
	}
}

func TestCameraFogAttenuatesDistantPixels(t *testing.T) {
	owner := body.NewCircle(1, 1, -1)
	cam := NewCamera(owner, geom.Vector{}, 0, math.Pi/4, 4, white, 100)
	cam.FogDensity = 1
	cam.Init(0.1, fakeWorld{})
	cam.Depth2[0] = 100 // pretend something painted this pixel at distance 10.
	cam.Pixels[0] = white
	cam.Finalize(0.1, fakeWorld{})
	if cam.Pixels[0].R >= white.R {
		t.Errorf("expected fog to attenuate a distant pixel's color, got %+v", cam.Pixels[0])
	}
}

func TestCameraIndexAngleRoundTrip(t *testing.T) {
	owner := body.NewCircle(1, 1, -1)
	cam := NewCamera(owner, geom.Vector{}, 0, math.Pi/2, 128, white, 100)
	for i := 0; i < cam.N; i++ {
		a := cam.indexToAngle(i)
		if got := cam.angleToIndex(a); math.Abs(got-float64(i)) > 1e-9 {
			t.Errorf("index %d round-tripped to %v", i, got)
		}
	}
}

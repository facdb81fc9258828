package body

import (
	"math"
	"testing"

	"github.com/enkisim/enki2d/geom"
	"github.com/enkisim/enki2d/shape"
)

func TestCircleMomentOfInertia(t *testing.T) {
	b := NewCircle(2, 1, 8)
	want := 0.5 * 8 * 2 * 2
	if math.Abs(b.MomentOfInertia-want) > 1e-9 {
		t.Errorf("expected moment %v, got %v", want, b.MomentOfInertia)
	}
}

func TestStaticBodyHasZeroInverseMass(t *testing.T) {
	b := NewCircle(1, 1, -1)
	if b.Movable() {
		t.Errorf("expected negative-mass body to be immovable")
	}
	if b.InverseMass() != 0 {
		t.Errorf("expected zero inverse mass for static body")
	}
}

func TestSetCustomHullRoundTripsModuloCentroid(t *testing.T) {
	b := &PhysicalObject{}
	verts := []geom.Vector{{X: 10, Y: 10}, {X: 12, Y: 10}, {X: 12, Y: 12}, {X: 10, Y: 12}}
	part := shape.NewPart(verts, 1, nil)
	b.SetCustomHull(shape.NewHull([]shape.Part{part}), 1)
	centroid, _ := b.Hull.CentroidArea()
	if !centroid.Aeq(geom.Vector{}) {
		t.Errorf("expected recentered hull centroid at origin, got %v", centroid)
	}
	shift := geom.Vector{X: 11, Y: 11} // centroid of the input square.
	for i, v := range b.Hull.Parts[0].Local.Vertices {
		if want := verts[i].Sub(shift); !v.Aeq(want) {
			t.Errorf("vertex %d: expected %v (input minus centroid), got %v", i, want, v)
		}
	}
}

func TestVelocityAtIncludesAngularTerm(t *testing.T) {
	b := &PhysicalObject{Pos: geom.Vector{}, Speed: geom.Vector{}, AngSpeed: 1}
	v := b.VelocityAt(geom.Vector{X: 1})
	if !v.Aeq(geom.Vector{X: 0, Y: 1}) {
		t.Errorf("expected angular-only velocity at (1,0) to be (0,1), got %v", v)
	}
}

func TestInterlacedDistanceAccumulates(t *testing.T) {
	b := &PhysicalObject{Pos: geom.Vector{}}
	b.ResetInterlacedDistance()
	b.StartSubStep()
	b.Pos = geom.Vector{X: 3, Y: 4}
	b.AccumulateInterlacedDistance()
	if math.Abs(b.InterlacedDistance-5) > 1e-9 {
		t.Errorf("expected interlaced distance 5, got %v", b.InterlacedDistance)
	}
}

func TestNormalizeAngleInvariant(t *testing.T) {
	b := &PhysicalObject{Angle: 4 * math.Pi}
	b.NormalizeAngle()
	if b.Angle <= -math.Pi || b.Angle > math.Pi {
		t.Errorf("expected angle in (-pi, pi], got %v", b.Angle)
	}
}

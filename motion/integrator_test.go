package motion

import (
	"math"
	"testing"

	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/geom"
)

func TestInitPhysicsIntegratesPose(t *testing.T) {
	b := body.NewCircle(1, 1, 2)
	b.Speed = geom.Vector{X: 3}
	b.AngSpeed = 1
	InitPhysics(b, 0.1)
	if !geom.Aeq(b.Pos.X, 0.3) {
		t.Errorf("expected pos.x ~= 0.3, got %v", b.Pos.X)
	}
	if !geom.Aeq(b.Angle, 0.1) {
		t.Errorf("expected angle ~= 0.1, got %v", b.Angle)
	}
}

func TestInitPhysicsStaticBodyUnaffected(t *testing.T) {
	b := body.NewCircle(1, 1, -1)
	b.Speed = geom.Vector{X: 5}
	InitPhysics(b, 1)
	if !b.Pos.Aeq(geom.Vector{}) {
		t.Errorf("expected static body to stay put, got %v", b.Pos)
	}
}

func TestDryFrictionClampsToZero(t *testing.T) {
	b := body.NewCircle(1, 1, 1)
	b.DryFriction = 10
	b.Speed = geom.Vector{X: 0.01}
	InitPhysics(b, 1)
	if !b.Speed.Aeq(geom.Vector{}) {
		t.Errorf("expected dry friction to fully arrest a slow body, got %v", b.Speed)
	}
}

func TestViscousFrictionDecaysSpeed(t *testing.T) {
	b := body.NewCircle(1, 1, 1)
	b.ViscousLinearFriction = 1
	b.Speed = geom.Vector{X: 10}
	InitPhysics(b, 0.1)
	if b.Speed.X >= 10 || b.Speed.X <= 8 {
		t.Errorf("expected viscous friction to attenuate speed some but not all, got %v", b.Speed.X)
	}
}

func TestFinalizePhysicsAccumulatesAndNormalizes(t *testing.T) {
	b := body.NewCircle(1, 1, 1)
	b.Angle = math.Pi + 0.5
	b.StartSubStep()
	b.Pos = geom.Vector{X: 3, Y: 4}
	FinalizePhysics(b)
	if !geom.Aeq(b.InterlacedDistance, 5) {
		t.Errorf("expected interlaced distance 5, got %v", b.InterlacedDistance)
	}
	if b.Angle > math.Pi || b.Angle <= -math.Pi {
		t.Errorf("expected angle normalized into (-pi,pi], got %v", b.Angle)
	}
}

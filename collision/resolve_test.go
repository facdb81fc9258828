package collision

import (
	"math"
	"testing"

	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/geom"
)

func kineticEnergy(b *body.PhysicalObject) float64 {
	return 0.5*b.Mass*b.Speed.Norm2() + 0.5*b.MomentOfInertia*b.AngSpeed*b.AngSpeed
}

// TestElasticHeadOnCollision exercises spec scenario S1: two equal-mass,
// perfectly elastic circles meeting head-on should fully exchange velocity
// and conserve both momentum and kinetic energy.
func TestElasticHeadOnCollision(t *testing.T) {
	a := body.NewCircle(1, 1, 1)
	b := body.NewCircle(1, 1, 1)
	a.CollisionElasticity, b.CollisionElasticity = 1, 1
	a.Pos, b.Pos = geom.Vector{X: 50, Y: 50}, geom.Vector{X: 51.5, Y: 50}
	a.Speed, b.Speed = geom.Vector{X: 10}, geom.Vector{X: -10}

	beforeEnergy := kineticEnergy(a) + kineticEnergy(b)
	beforeMomentum := a.Speed.Scale(a.Mass).Add(b.Speed.Scale(b.Mass))

	c, ok := Detect(a, b)
	if !ok {
		t.Fatalf("expected overlapping circles to collide")
	}
	Resolve(a, b, c)

	afterEnergy := kineticEnergy(a) + kineticEnergy(b)
	afterMomentum := a.Speed.Scale(a.Mass).Add(b.Speed.Scale(b.Mass))

	if math.Abs(afterEnergy-beforeEnergy) > 1e-6*beforeEnergy {
		t.Errorf("expected energy to be conserved, before=%v after=%v", beforeEnergy, afterEnergy)
	}
	if !afterMomentum.Aeq(beforeMomentum) {
		t.Errorf("expected momentum to be conserved, before=%v after=%v", beforeMomentum, afterMomentum)
	}
	if !a.Speed.Aeq(geom.Vector{X: -10}) {
		t.Errorf("expected a to reverse to (-10,0), got %v", a.Speed)
	}
	if !b.Speed.Aeq(geom.Vector{X: 10}) {
		t.Errorf("expected b to reverse to (10,0), got %v", b.Speed)
	}
}

func TestInfiniteMassBodyUnaffected(t *testing.T) {
	wall := body.NewCircle(5, 1, -1)
	wall.CollisionElasticity = 1
	ball := body.NewCircle(1, 1, 1)
	ball.CollisionElasticity = 1
	wall.Pos = geom.Vector{}
	ball.Pos = geom.Vector{X: 5}
	ball.Speed = geom.Vector{X: -1}

	c, ok := Detect(ball, wall)
	if !ok {
		t.Fatalf("expected overlap")
	}
	Resolve(ball, wall, c)
	if !wall.Speed.Aeq(geom.Vector{}) {
		t.Errorf("expected infinite-mass body to stay at rest, got %v", wall.Speed)
	}
}

func TestTwoStaticBodiesNoOp(t *testing.T) {
	a := body.NewCircle(1, 1, -1)
	b := body.NewCircle(1, 1, -1)
	a.Pos, b.Pos = geom.Vector{}, geom.Vector{X: 1}
	aPos, bPos := a.Pos, b.Pos
	if c, ok := Detect(a, b); ok {
		Resolve(a, b, c)
	}
	if a.Pos != aPos || b.Pos != bPos {
		t.Errorf("expected two infinite-mass bodies colliding to do nothing")
	}
}

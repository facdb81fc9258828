package motion

import (
	"testing"

	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/geom"
)

// TestDifferentialDriveStraight exercises spec scenario S4: wheelbase 5,
// zero noise, zero deadband, equal wheel speeds of 10. After step(1.0) the
// body should displace 10 along its initial heading.
func TestDifferentialDriveStraight(t *testing.T) {
	b := body.NewCircle(1, 1, 1)
	d := &Drive{Wheelbase: 5}
	d.Command(b, 10, 10, 1.0, nil)
	InitPhysics(b, 1.0)
	if !b.Pos.Aeq(geom.Vector{X: 10}) {
		t.Errorf("expected displacement of 10 along +x, got %v", b.Pos)
	}
	if !geom.Aeq(b.AngSpeed, 0) {
		t.Errorf("expected zero angular speed for equal wheel speeds, got %v", b.AngSpeed)
	}
}

func TestDifferentialDriveTurns(t *testing.T) {
	b := body.NewCircle(1, 1, 1)
	d := &Drive{Wheelbase: 2}
	d.Command(b, 0, 2, 0.1, nil)
	if !geom.Aeq(b.AngSpeed, 1) {
		t.Errorf("expected angular speed (2-0)/2=1, got %v", b.AngSpeed)
	}
}

func TestDifferentialDriveDeadband(t *testing.T) {
	b := body.NewCircle(1, 1, 1)
	d := &Drive{Wheelbase: 5, Deadband: 1}
	d.Command(b, 0.5, 0.5, 1, nil)
	if !b.Speed.Aeq(geom.Vector{}) {
		t.Errorf("expected sub-deadband commands to be forced to zero, got %v", b.Speed)
	}
}

func TestDifferentialDriveOdometryAccumulates(t *testing.T) {
	b := body.NewCircle(1, 1, 1)
	d := &Drive{Wheelbase: 5}
	d.Command(b, 1, 2, 1, nil)
	d.Command(b, 1, 2, 1, nil)
	if !geom.Aeq(d.LeftOdometer, 2) || !geom.Aeq(d.RightOdometer, 4) {
		t.Errorf("expected odometry to accumulate across commands, got left=%v right=%v", d.LeftOdometer, d.RightOdometer)
	}
	if !geom.Aeq(d.LeftEncoder, 1) || !geom.Aeq(d.RightEncoder, 2) {
		t.Errorf("expected encoders to hold the most recent reading, got left=%v right=%v", d.LeftEncoder, d.RightEncoder)
	}
}

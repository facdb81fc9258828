package motion

import (
	"math"

	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/geom"
	"github.com/enkisim/enki2d/random"
)

// Drive is the differential-drive motion model for a single robot: it
// converts a commanded (left, right) wheel speed pair into the body's
// linear and angular twist, and accumulates odometry. A Drive fully
// determines its body's twist each call — it does not accumulate angular
// velocity across commands, since a differentially-steered robot's motion
// is a function of its current wheel command, not of momentum carried from
// the previous control tick. See DESIGN.md for the grounding of this
// reading of the "ω += (right−left)/L" formula.
type Drive struct {
	Wheelbase    float64 // L, distance between the two wheel contact points.
	NoiseEpsilon float64 // wheel speed multiplicative noise is drawn from [1-ε,1+ε].
	Deadband     float64 // commanded speeds with |speed| below this are forced to zero.

	// LeftOdometer and RightOdometer accumulate the travelled arc length of
	// each wheel across every Command call.
	LeftOdometer  float64
	RightOdometer float64

	// LeftEncoder and RightEncoder hold the most recent per-wheel encoder
	// reading: the post-noise, post-deadband wheel speed times dt.
	LeftEncoder  float64
	RightEncoder float64
}

// Command applies a (left, right) wheel speed command to b over dt,
// applying the deadband to the raw commanded speeds first and only then
// injecting multiplicative wheel noise drawn from src into whichever
// speeds survive it, and updating odometry. src may be nil to skip noise
// injection (e.g. for the noise-free scenarios in tests).
func (d *Drive) Command(b *body.PhysicalObject, left, right, dt float64, src *random.Source) {
	if math.Abs(left) < d.Deadband {
		left = 0
	}
	if math.Abs(right) < d.Deadband {
		right = 0
	}
	if src != nil && d.NoiseEpsilon > 0 {
		left *= src.Uniform(1-d.NoiseEpsilon, 1+d.NoiseEpsilon)
		right *= src.Uniform(1-d.NoiseEpsilon, 1+d.NoiseEpsilon)
	}

	forward := (left + right) / 2
	angSpeed := 0.0
	if d.Wheelbase > 0 {
		angSpeed = (right - left) / d.Wheelbase
	}
	heading := b.Angle + 0.5*angSpeed*dt

	b.AngSpeed = angSpeed
	b.Speed = geom.Vector{X: forward * math.Cos(heading), Y: forward * math.Sin(heading)}

	d.LeftEncoder = left * dt
	d.RightEncoder = right * dt
	d.LeftOdometer += d.LeftEncoder
	d.RightOdometer += d.RightEncoder
}

// Package world ties every other package together into the simulation
// kernel's top-level entry point: the body/robot registry, the id
// allocator, the arena boundary, the optional ground texture, and the
// per-tick Step loop that runs the physics oversampling sub-loop followed
// by the once-per-tick interaction sweep.
//
// Grounded on the teacher's eng.go/app.go Engine/application split (one
// top-level owner of every component manager, a fixed-timestep update
// entry point) and scene.go's ownership-of-entities pattern, narrowed here
// from a 3D rendering engine to the 2D physics/interaction kernel.
package world

import (
	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/collision"
	"github.com/enkisim/enki2d/interaction"
	"github.com/enkisim/enki2d/random"
)

// Coordinator is the optional once-per-tick world controller hook — the
// shape the original simulator's Bluetooth/radio-link coordinator plugs
// into, kept here as an interface with no concrete implementation, per
// spec §1/§9.
type Coordinator interface {
	Step(dt float64)
}

// World owns every body and robot in the simulation, the arena boundary,
// the shared random source, and the optional ground texture and
// coordinator. It implements interaction.World.
type World struct {
	Bodies    []*body.PhysicalObject // insertion order, preserved across Add/Remove.
	WallColor body.Color

	Ground *GroundTexture // nil disables ground-color queries.

	// ControlStep, if set, is invoked once per tick after every robot's
	// interactions and per-robot control step have run, per spec §4.4 step 7.
	ControlStep func(dt float64)

	// Coordinator, if set, runs once per tick after ControlStep, per spec
	// §4.4 step 8.
	Coordinator Coordinator

	robots []*interaction.Robot
	walls  collision.Walls
	rnd    *random.Source
	nextID uint32
}

// Option configures a World at construction, in the manner of the
// teacher's config.go functional options.
type Option func(*World)

// Walls sets the arena boundary.
func Walls(w collision.Walls) Option {
	return func(wd *World) { wd.walls = w }
}

// Seed sets the world's deterministic random source.
func Seed(seed int64) Option {
	return func(wd *World) { wd.rnd = random.NewSource(seed) }
}

// Ground sets the world's ground texture.
func Ground(g *GroundTexture) Option {
	return func(wd *World) { wd.Ground = g }
}

// New returns a World with every opt applied. A world with no Seed option
// gets a zero-seeded random source, since every sensor/drive component
// that consults interaction.World.Random expects a non-nil source.
func New(opts ...Option) *World {
	w := &World{}
	for _, opt := range opts {
		opt(w)
	}
	if w.rnd == nil {
		w.rnd = random.NewSource(0)
	}
	return w
}

// Walls satisfies interaction.World.
func (w *World) Walls() collision.Walls { return w.walls }

// SetWalls replaces the arena boundary after construction.
func (w *World) SetWalls(walls collision.Walls) { w.walls = walls }

// Random satisfies interaction.World.
func (w *World) Random() *random.Source { return w.rnd }

// Robots returns the world's registered robots, in registration order.
func (w *World) Robots() []*interaction.Robot { return w.robots }

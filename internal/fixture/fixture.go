// Package fixture loads declarative YAML scenario descriptions for
// table-driven collision and world tests: a wall layout, a random seed,
// and a list of bodies. It is test-support code, imported only from
// _test.go files, and is not part of the simulation kernel's public API.
//
// Grounded on the teacher's load/shd.go, which unmarshals a YAML
// configuration into an intermediate struct and then validates/converts
// each field into the package's real types, reporting the first invalid
// field as an error rather than panicking.
package fixture

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/collision"
	"github.com/enkisim/enki2d/geom"
	"github.com/enkisim/enki2d/world"
)

// Scenario is a fully resolved test fixture: a world boundary, a random
// seed, and the bodies to populate a world with.
type Scenario struct {
	Seed   int64
	Walls  collision.Walls
	Bodies []*body.PhysicalObject
}

// config mirrors the YAML document shape; Load converts it into a Scenario.
type config struct {
	Seed  int64 `yaml:"seed"`
	Walls struct {
		Kind string  `yaml:"kind"` // "none", "square", "circle"
		W    float64 `yaml:"w"`
		H    float64 `yaml:"h"`
		R    float64 `yaml:"r"`
	} `yaml:"walls"`
	Bodies []struct {
		Kind   string  `yaml:"kind"` // "circle" or "rectangle"
		X      float64 `yaml:"x"`
		Y      float64 `yaml:"y"`
		Angle  float64 `yaml:"angle"`
		Mass   float64 `yaml:"mass"`
		Height float64 `yaml:"height"`
		Radius float64 `yaml:"radius"` // circle only.
		L1     float64 `yaml:"l1"`     // rectangle only.
		L2     float64 `yaml:"l2"`     // rectangle only.
	} `yaml:"bodies"`
}

var wallKinds = map[string]collision.WallKind{
	"none":   collision.NoWalls,
	"square": collision.SquareWalls,
	"circle": collision.CircleWalls,
}

var bodyKinds = map[string]bool{"circle": true, "rectangle": true}

// Load parses a YAML scenario document into a Scenario. Unknown wall or
// body kinds are reported as an error rather than silently defaulting,
// since a mistyped fixture should fail the test that loads it, not produce
// a scenario the author didn't intend.
func Load(data []byte) (*Scenario, error) {
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("fixture: yaml %w", err)
	}

	kind, ok := wallKinds[cfg.Walls.Kind]
	if cfg.Walls.Kind != "" && !ok {
		return nil, fmt.Errorf("fixture: unsupported wall kind %q", cfg.Walls.Kind)
	}
	s := &Scenario{
		Seed:  cfg.Seed,
		Walls: collision.Walls{Kind: kind, W: cfg.Walls.W, H: cfg.Walls.H, R: cfg.Walls.R},
	}

	for i, bc := range cfg.Bodies {
		if !bodyKinds[bc.Kind] {
			return nil, fmt.Errorf("fixture: body %d: unsupported kind %q", i, bc.Kind)
		}
		var b *body.PhysicalObject
		switch bc.Kind {
		case "circle":
			b = body.NewCircle(bc.Radius, bc.Height, bc.Mass)
		case "rectangle":
			b = body.NewRectangular(bc.L1, bc.L2, bc.Height, bc.Mass)
		}
		b.Pos = geom.Vector{X: bc.X, Y: bc.Y}
		b.Angle = bc.Angle
		s.Bodies = append(s.Bodies, b)
	}
	return s, nil
}

// NewWorld builds a world.World from the scenario: seeded, walled, and
// populated with the scenario's bodies via World.AddBody.
func (s *Scenario) NewWorld() *world.World {
	w := world.New(world.Seed(s.Seed), world.Walls(s.Walls))
	for _, b := range s.Bodies {
		w.AddBody(b)
	}
	return w
}

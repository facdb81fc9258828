// Package interaction provides the robot-side local/global interaction host:
// the per-robot ordered interaction lists and the sorted-by-range early-out
// scan that keeps the O(n^2) body-pair sweep cheap in practice.
//
// Grounded on the teacher's move/move.go event-fan-out loop (an ordered list
// of callbacks invoked per moving body, with an early-reject test before the
// expensive per-pair work) generalized to the kernel's range-sorted, early-
// terminating scan.
package interaction

import (
	"sort"

	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/collision"
	"github.com/enkisim/enki2d/random"
)

// World is the minimal surface a Local/GlobalInteraction needs from its
// owning world. Declared here (rather than imported from a world package)
// to avoid a dependency cycle: package world implements this interface
// instead of this package depending on it.
type World interface {
	Walls() collision.Walls
	Random() *random.Source
}

// LocalInteraction is a range-limited per-robot behavior: a sensor, a
// short-range repulsor, anything whose relevance falls off with distance.
// Range is queried on insertion to keep the host's list sorted, and again
// by the host's early-out scans each tick.
type LocalInteraction interface {
	Range() float64
	Init(dt float64, w World)
	ObjectStep(dt float64, w World, other *body.PhysicalObject)
	WallsStep(dt float64, w World)
	Finalize(dt float64, w World)
}

// GlobalInteraction is a range-less per-robot behavior invoked once per
// tick regardless of the scene's layout.
type GlobalInteraction interface {
	Init(dt float64, w World)
	Step(dt float64, w World)
	Finalize(dt float64, w World)
}

// Robot pairs a body with its ordered local and global interaction lists
// and the per-tick control hook invoked after both have finalized.
type Robot struct {
	Body    *body.PhysicalObject
	locals  []LocalInteraction
	globals []GlobalInteraction

	// ControlStep, if set, is invoked once per tick after all interactions
	// have finalized, with the tick's dt.
	ControlStep func(dt float64)
}

// NewRobot returns a Robot wrapping b, with empty interaction lists.
func NewRobot(b *body.PhysicalObject) *Robot {
	return &Robot{Body: b}
}

// AddLocal inserts li into the robot's local-interaction list, maintained
// sorted by descending Range() so the host's early-out scan is valid.
func (r *Robot) AddLocal(li LocalInteraction) {
	i := sort.Search(len(r.locals), func(i int) bool { return r.locals[i].Range() <= li.Range() })
	r.locals = append(r.locals, nil)
	copy(r.locals[i+1:], r.locals[i:])
	r.locals[i] = li
}

// AddGlobal appends gi to the robot's global-interaction list, in
// insertion order.
func (r *Robot) AddGlobal(gi GlobalInteraction) {
	r.globals = append(r.globals, gi)
}

// Locals returns the robot's local interactions, sorted by descending range.
func (r *Robot) Locals() []LocalInteraction { return r.locals }

// Globals returns the robot's global interactions, in insertion order.
func (r *Robot) Globals() []GlobalInteraction { return r.globals }

// InitInteractions calls Init on every local then every global interaction,
// per spec §4.4 step 4.
func (r *Robot) InitInteractions(dt float64, w World) {
	for _, li := range r.locals {
		li.Init(dt, w)
	}
	for _, gi := range r.globals {
		gi.Init(dt, w)
	}
}

// ObjectStep runs the range-sorted early-out scan against a single other
// body, per spec §4.5: invoke objectStep on every local interaction whose
// range (combined with the other body's radius) still reaches it, and stop
// at the first one that doesn't — every interaction after it in the sorted
// list has equal or shorter range and cannot reach either.
func (r *Robot) ObjectStep(dt float64, w World, other *body.PhysicalObject) {
	d2 := r.Body.Pos.Sub(other.Pos).Norm2()
	for _, li := range r.locals {
		reach := li.Range() + other.Radius
		if d2 > reach*reach {
			return
		}
		li.ObjectStep(dt, w, other)
	}
}

// WallsStep runs the analogous early-out scan against the arena boundary:
// once the robot's center is far enough inside the arena that an
// interaction's range cannot reach any wall, stop — shorter-range
// interactions that follow cannot reach either.
func (r *Robot) WallsStep(dt float64, w World) {
	walls := w.Walls()
	for _, li := range r.locals {
		if walls.InteriorMargin(r.Body.Pos, li.Range()) {
			return
		}
		li.WallsStep(dt, w)
	}
}

// DoGlobalInteractions invokes Step on every global interaction, in
// insertion order.
func (r *Robot) DoGlobalInteractions(dt float64, w World) {
	for _, gi := range r.globals {
		gi.Step(dt, w)
	}
}

// FinalizeLocal calls Finalize on every local interaction.
func (r *Robot) FinalizeLocal(dt float64, w World) {
	for _, li := range r.locals {
		li.Finalize(dt, w)
	}
}

// FinalizeGlobal calls Finalize on every global interaction.
func (r *Robot) FinalizeGlobal(dt float64, w World) {
	for _, gi := range r.globals {
		gi.Finalize(dt, w)
	}
}

// RunControlStep invokes ControlStep if set, a no-op otherwise.
func (r *Robot) RunControlStep(dt float64) {
	if r.ControlStep != nil {
		r.ControlStep(dt)
	}
}

package world

import (
	"github.com/enkisim/enki2d/body"
	"github.com/enkisim/enki2d/interaction"
)

// AddBody registers b and assigns it an id if it does not already have
// one (b.ID == 0). A body restored from a snapshot with a preset id keeps
// it, and the allocator is advanced past it, per spec §6's snapshot-format
// guarantee: next_id = max(next_id, existing_id+1).
func (w *World) AddBody(b *body.PhysicalObject) {
	if b.ID == 0 {
		w.nextID++
		b.ID = w.nextID
	} else if b.ID >= w.nextID {
		w.nextID = b.ID + 1
	}
	w.Bodies = append(w.Bodies, b)
}

// AddRobot registers b (via AddBody if not already present) and wraps it
// in a new interaction.Robot, returned so the caller can attach local and
// global interactions before the first Step.
func (w *World) AddRobot(b *body.PhysicalObject) *interaction.Robot {
	present := false
	for _, o := range w.Bodies {
		if o == b {
			present = true
			break
		}
	}
	if !present {
		w.AddBody(b)
	}
	r := interaction.NewRobot(b)
	w.robots = append(w.robots, r)
	return r
}

// RemoveBody removes b from the world, and its Robot wrapper if it has
// one. Order of the remaining bodies/robots is preserved.
func (w *World) RemoveBody(b *body.PhysicalObject) {
	w.Bodies = removeBody(w.Bodies, b)
	w.robots = removeRobot(w.robots, b)
}

func removeBody(bodies []*body.PhysicalObject, target *body.PhysicalObject) []*body.PhysicalObject {
	out := bodies[:0]
	for _, b := range bodies {
		if b != target {
			out = append(out, b)
		}
	}
	return out
}

func removeRobot(robots []*interaction.Robot, target *body.PhysicalObject) []*interaction.Robot {
	out := robots[:0]
	for _, r := range robots {
		if r.Body != target {
			out = append(out, r)
		}
	}
	return out
}

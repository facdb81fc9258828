package world

import (
	"github.com/enkisim/enki2d/collision"
	"github.com/enkisim/enki2d/motion"
)

// Step advances the world by dt, split into oversampling physics sub-steps
// followed by a single once-per-tick interaction sweep, per spec §4.4.
// oversampling <= 0 is treated as 1. Every body's interlaced distance is
// reset at the start of the tick, so it measures this tick only.
func (w *World) Step(dt float64, oversampling int) {
	if oversampling <= 0 {
		oversampling = 1
	}
	for _, b := range w.Bodies {
		b.ResetInterlacedDistance()
	}
	subDt := dt / float64(oversampling)
	for k := 0; k < oversampling; k++ {
		w.physicsSubStep(subDt)
	}
	w.interactionStep(dt)
}

// physicsSubStep runs spec §4.4 steps 1-3 once: init every body, resolve
// every candidate pair, then resolve walls and finalize every body.
func (w *World) physicsSubStep(dt float64) {
	for _, b := range w.Bodies {
		motion.InitPhysics(b, dt)
	}
	for i := 0; i < len(w.Bodies); i++ {
		for j := i + 1; j < len(w.Bodies); j++ {
			a, b := w.Bodies[i], w.Bodies[j]
			if !collision.Broad(a, b) {
				continue
			}
			if c, ok := collision.Detect(a, b); ok {
				collision.Resolve(a, b, c)
			}
		}
	}
	for _, b := range w.Bodies {
		for _, c := range w.walls.Contacts(b) {
			collision.ResolveWall(b, c)
		}
		motion.FinalizePhysics(b)
	}
}

// interactionStep runs spec §4.4 steps 4-8: per-robot init, the ordered-pair
// objectStep sweep, per-robot wallsStep/global/finalize/control, the
// world-level control hook, and the optional coordinator.
func (w *World) interactionStep(dt float64) {
	for _, r := range w.robots {
		r.InitInteractions(dt, w)
	}
	for _, ri := range w.robots {
		for _, bj := range w.Bodies {
			if bj == ri.Body {
				continue
			}
			ri.ObjectStep(dt, w, bj)
		}
	}
	for _, r := range w.robots {
		r.WallsStep(dt, w)
		r.DoGlobalInteractions(dt, w)
		r.FinalizeLocal(dt, w)
		r.FinalizeGlobal(dt, w)
		r.RunControlStep(dt)
	}
	if w.ControlStep != nil {
		w.ControlStep(dt)
	}
	if w.Coordinator != nil {
		w.Coordinator.Step(dt)
	}
}

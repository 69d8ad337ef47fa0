package system

import (
	"stranded/internal/component"
	"stranded/internal/ecs"
)

// Integrate advances every entity with Transform and Velocity by velocity*dt.
// dt is the real time elapsed since the previous tick, in seconds.
func Integrate(w *ecs.World, dt float64) {
	if dt == 0 {
		return
	}
	for id := range w.Each(component.CTransform, component.CVelocity) {
		tr := w.Get(id, component.CTransform).(component.Transform)
		vel := w.Get(id, component.CVelocity).(component.Velocity)
		tr.Position = tr.Position.Add(vel.Scale(dt))
		w.Add(id, tr)
	}
}

package system

import (
	"stranded/internal/component"
	"stranded/internal/ecs"
)

// Wrap moves every WrapAround entity that has left [-hw, hw] x [-hh, hh] onto
// the opposite edge. The reset is exact: an entity that overshoots by any
// distance lands on the edge itself, never at an offset.
func Wrap(w *ecs.World, hw, hh float64) {
	for id := range w.Each(component.CTagWrapAround, component.CTransform) {
		tr := w.Get(id, component.CTransform).(component.Transform)
		p := tr.Position
		p.X = wrapAxis(p.X, hw)
		p.Y = wrapAxis(p.Y, hh)
		if p == tr.Position {
			continue
		}
		tr.Position = p
		w.Add(id, tr)
	}
}

func wrapAxis(v, half float64) float64 {
	if v > half {
		return -half
	}
	if v < -half {
		return half
	}
	return v
}

package system

import (
	"math"
	"math/rand"

	"stranded/internal/component"
	"stranded/internal/ecs"
	"stranded/internal/factory"
)

// Timer is a repeating countdown. When Elapsed reaches Period the timer
// matures once, and the overshoot is kept modulo Period.
type Timer struct {
	Period  float64
	Elapsed float64
}

// Advance adds dt to the timer and reports whether it matured. A dt spanning
// several periods still matures only once.
func (t *Timer) Advance(dt float64) bool {
	if dt > 0 {
		t.Elapsed += dt
	}
	if t.Elapsed < t.Period {
		return false
	}
	t.Elapsed = math.Mod(t.Elapsed, t.Period)
	return true
}

// Spawner creates one fuel cell each time its timer matures.
type Spawner struct {
	Timer Timer

	HalfWidth, HalfHeight float64
	VelocityRange         float64 // each velocity axis uniform in [-r, r]
	CellSize              float64

	Rng *rand.Rand
}

// Update advances the timer by dt and spawns at most one fuel cell. It returns
// the new entity and true when a cell was created.
func (s *Spawner) Update(w *ecs.World, dt float64) (ecs.EntityID, bool) {
	if !s.Timer.Advance(dt) {
		return ecs.NilEntity, false
	}
	pos := component.Vec2{
		X: s.uniform(s.HalfWidth),
		Y: s.uniform(s.HalfHeight),
	}
	vel := component.Vec2{
		X: s.uniform(s.VelocityRange),
		Y: s.uniform(s.VelocityRange),
	}
	return factory.NewFuelCell(w, pos, vel, s.CellSize), true
}

// uniform returns a value in [-r, r].
func (s *Spawner) uniform(r float64) float64 {
	return (s.Rng.Float64()*2 - 1) * r
}

package system

import (
	"stranded/internal/component"
	"stranded/internal/ecs"
	"stranded/internal/input"
)

// Thrust holds the control constants of the ship.
type Thrust struct {
	Acceleration float64 // velocity change per second per pressed direction
	BurnRate     float64 // fuel per second per pressed direction
}

// Apply changes the player's velocity for each pressed direction and burns
// fuel for each of them independently. Fuel may go below zero.
func (t Thrust) Apply(w *ecs.World, player ecs.EntityID, in input.State, dt float64) {
	n := in.Pressed()
	if n == 0 || dt == 0 {
		return
	}
	velComp := w.Get(player, component.CVelocity)
	fuelComp := w.Get(player, component.CFuel)
	if velComp == nil || fuelComp == nil {
		return
	}
	vel := velComp.(component.Velocity)
	fuel := fuelComp.(component.Fuel)

	dv := t.Acceleration * dt
	if in.Left {
		vel.X -= dv
	}
	if in.Right {
		vel.X += dv
	}
	if in.Down {
		vel.Y -= dv
	}
	if in.Up {
		vel.Y += dv
	}
	fuel.Amount -= float64(n) * t.BurnRate * dt

	w.Add(player, vel)
	w.Add(player, fuel)
}

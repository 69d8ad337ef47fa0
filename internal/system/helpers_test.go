package system

import (
	"math"

	"stranded/internal/component"
	"stranded/internal/ecs"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func vec(x, y float64) component.Vec2 { return component.Vec2{X: x, Y: y} }

// newBody creates a rigid, wrapping box with a velocity.
func newBody(w *ecs.World, pos, vel, extent component.Vec2) ecs.EntityID {
	return w.Spawn(
		component.Transform{Position: pos, Scale: extent},
		component.Velocity{Vec2: vel},
		component.BoundingBox{Extent: extent},
		component.TagRigid{},
		component.TagWrapAround{},
	)
}

func newShip(w *ecs.World, pos, vel component.Vec2, fuel float64) ecs.EntityID {
	return w.Spawn(
		component.Transform{Position: pos, Scale: vec(30, 30)},
		component.Velocity{Vec2: vel},
		component.Fuel{Amount: fuel},
		component.TagPlayer{},
		component.TagWrapAround{},
	)
}

func positionOf(w *ecs.World, id ecs.EntityID) component.Vec2 {
	return w.Get(id, component.CTransform).(component.Transform).Position
}

func velocityOf(w *ecs.World, id ecs.EntityID) component.Vec2 {
	return w.Get(id, component.CVelocity).(component.Velocity).Vec2
}

func fuelOf(w *ecs.World, id ecs.EntityID) float64 {
	return w.Get(id, component.CFuel).(component.Fuel).Amount
}

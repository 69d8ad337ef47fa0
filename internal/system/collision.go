package system

import (
	"stranded/internal/component"
	"stranded/internal/ecs"
)

// Overlaps reports whether two boxes centered at a and b with full extents ea
// and eb intersect. Touching edges do not count.
func Overlaps(a, ea, b, eb component.Vec2) bool {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx < (ea.X+eb.X)/2 && dy < (ea.Y+eb.Y)/2
}

// body is the state of one rigid entity at the start of the collision phase.
type body struct {
	id     ecs.EntityID
	pos    component.Vec2
	extent component.Vec2
	vel    component.Vec2
}

// ResolveCollisions sets the velocities of every overlapping pair of Rigid
// entities to the mean of their velocities. Every pair reads the velocities
// captured before any pair was resolved, pairs are visited in ascending
// (i, j) order, and an entity in several pairs keeps the mean of its last one.
// Rigid entities without a Velocity act as fixed obstacles: they are tested
// but never written. Returns the number of overlapping pairs.
func ResolveCollisions(w *ecs.World) int {
	ids := w.Query(component.CTagRigid, component.CTransform, component.CBoundingBox)
	if len(ids) < 2 {
		return 0
	}
	bodies := make([]body, len(ids))
	moving := make([]bool, len(ids))
	for i, id := range ids {
		tr := w.Get(id, component.CTransform).(component.Transform)
		bb := w.Get(id, component.CBoundingBox).(component.BoundingBox)
		bodies[i] = body{id: id, pos: tr.Position, extent: bb.Extent}
		if c := w.Get(id, component.CVelocity); c != nil {
			bodies[i].vel = c.(component.Velocity).Vec2
			moving[i] = true
		}
	}

	next := make([]component.Vec2, len(bodies))
	touched := make([]bool, len(bodies))
	pairs := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := &bodies[i], &bodies[j]
			if !Overlaps(a.pos, a.extent, b.pos, b.extent) {
				continue
			}
			pairs++
			mean := a.vel.Mean(b.vel)
			next[i], next[j] = mean, mean
			touched[i], touched[j] = true, true
		}
	}

	for i := range bodies {
		if touched[i] && moving[i] {
			w.Add(bodies[i].id, component.Velocity{Vec2: next[i]})
		}
	}
	return pairs
}

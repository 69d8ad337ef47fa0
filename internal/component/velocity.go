package component

import "stranded/internal/ecs"

const CVelocity ecs.ComponentType = 2

// Velocity is in world units per second.
type Velocity struct {
	Vec2
}

func (Velocity) Type() ecs.ComponentType { return CVelocity }

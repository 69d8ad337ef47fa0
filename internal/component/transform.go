package component

import "stranded/internal/ecs"

const CTransform ecs.ComponentType = 1

// Transform places an entity in the world. Scale is the render size; the
// player also uses it as its collision extent.
type Transform struct {
	Position Vec2
	Scale    Vec2
}

func (Transform) Type() ecs.ComponentType { return CTransform }

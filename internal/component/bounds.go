package component

import "stranded/internal/ecs"

const CBoundingBox ecs.ComponentType = 3

// BoundingBox is the full width/height of an axis-aligned box centered on the
// entity's position. Both extents are strictly positive.
type BoundingBox struct {
	Extent Vec2
}

func (BoundingBox) Type() ecs.ComponentType { return CBoundingBox }

// Half returns the half-extents.
func (b BoundingBox) Half() Vec2 { return b.Extent.Scale(0.5) }

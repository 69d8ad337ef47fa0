package system

import (
	"stranded/internal/component"
	"stranded/internal/ecs"
)

// CollectPickups destroys every PickupCell overlapping the player and credits
// amount fuel for each one. The player's extent is its Transform scale.
// Returns the number of cells collected.
func CollectPickups(w *ecs.World, player ecs.EntityID, amount float64) int {
	trComp := w.Get(player, component.CTransform)
	fuelComp := w.Get(player, component.CFuel)
	if trComp == nil || fuelComp == nil {
		return 0
	}
	ptr := trComp.(component.Transform)
	fuel := fuelComp.(component.Fuel)

	collected := 0
	for id := range w.Each(component.CTagPickupCell, component.CTransform, component.CBoundingBox) {
		tr := w.Get(id, component.CTransform).(component.Transform)
		bb := w.Get(id, component.CBoundingBox).(component.BoundingBox)
		if !Overlaps(ptr.Position, ptr.Scale, tr.Position, bb.Extent) {
			continue
		}
		w.DestroyEntity(id)
		fuel.Amount += amount
		collected++
	}
	if collected > 0 {
		w.Add(player, fuel)
	}
	return collected
}

package component

import "stranded/internal/ecs"

const (
	CTagPlayer      ecs.ComponentType = 8
	CTagRigid       ecs.ComponentType = 9
	CTagWrapAround  ecs.ComponentType = 10
	CTagPickupCell  ecs.ComponentType = 11
	CTagFuelDisplay ecs.ComponentType = 12
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagRigid marks an entity that takes part in pairwise collision.
type TagRigid struct{}

func (TagRigid) Type() ecs.ComponentType { return CTagRigid }

// TagWrapAround marks an entity that reappears at the opposite window edge.
type TagWrapAround struct{}

func (TagWrapAround) Type() ecs.ComponentType { return CTagWrapAround }

// TagPickupCell marks a collectible fuel cell.
type TagPickupCell struct{}

func (TagPickupCell) Type() ecs.ComponentType { return CTagPickupCell }

// TagFuelDisplay marks the fuel readout proxy.
type TagFuelDisplay struct{}

func (TagFuelDisplay) Type() ecs.ComponentType { return CTagFuelDisplay }

package ecs

// EntityID is an opaque entity handle. IDs are never reused within a World.
type EntityID uint32

// NilEntity is the zero handle; no live entity ever has it.
const NilEntity EntityID = 0

// ComponentType identifies a component store.
type ComponentType uint8

// Component is any value that can be attached to an entity.
// Tags are components with no fields.
type Component interface {
	Type() ComponentType
}

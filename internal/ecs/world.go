package ecs

import (
	"iter"
	"slices"
)

// World is the central entity registry and component store.
// It is not safe for concurrent use.
type World struct {
	nextID     EntityID
	alive      map[EntityID]struct{}
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]struct{}),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = struct{}{}
	return id
}

// Spawn creates an entity with an initial component set.
func (w *World) Spawn(components ...Component) EntityID {
	id := w.CreateEntity()
	for _, c := range components {
		w.Add(id, c)
	}
	return id
}

// DestroyEntity removes the entity and all its components.
// Destroying a dead or unknown entity is a no-op.
func (w *World) DestroyEntity(id EntityID) {
	if _, ok := w.alive[id]; !ok {
		return
	}
	delete(w.alive, id)
	for _, store := range w.components {
		delete(store, id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int { return len(w.alive) }

// Add attaches a component to an entity, replacing any existing component of
// the same type. Adding to a dead entity is ignored.
func (w *World) Add(id EntityID, c Component) {
	if !w.Alive(id) {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// HasAll reports whether entity id is alive and has every listed type.
func (w *World) HasAll(id EntityID, types ...ComponentType) bool {
	if !w.Alive(id) {
		return false
	}
	for _, t := range types {
		if !w.Has(id, t) {
			return false
		}
	}
	return true
}

// Query returns all alive entities that have every listed component type,
// in ascending ID order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if w.HasAll(id, types...) {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

// Each returns a lazy sequence over the entities matching types, in ascending
// ID order. Candidates are fixed when iteration starts; an entity destroyed or
// stripped of a required component afterwards is not yielded. The sequence
// can be ranged over any number of times.
func (w *World) Each(types ...ComponentType) iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for _, id := range w.Query(types...) {
			if !w.HasAll(id, types...) {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

// Count returns the number of entities matching types.
func (w *World) Count(types ...ComponentType) int {
	return len(w.Query(types...))
}

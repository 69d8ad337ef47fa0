package sim

import (
	"stranded/internal/component"
	"stranded/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Sprite is the read-only presentation view of one entity.
type Sprite struct {
	ID       ecs.EntityID
	Position component.Vec2
	Extent   component.Vec2
	Color    tcell.Color
	Kind     component.Kind
}

// Sprites returns every renderable entity. Fuel cells come first in ID order,
// the player last so it is drawn on top.
func (s *Session) Sprites() []Sprite {
	var cells []Sprite
	var player []Sprite
	for id := range s.world.Each(component.CRenderable, component.CTransform) {
		tr := s.world.Get(id, component.CTransform).(component.Transform)
		rend := s.world.Get(id, component.CRenderable).(component.Renderable)
		sp := Sprite{
			ID:       id,
			Position: tr.Position,
			Extent:   tr.Scale,
			Color:    rend.Color,
			Kind:     rend.Kind,
		}
		if c := s.world.Get(id, component.CBoundingBox); c != nil {
			sp.Extent = c.(component.BoundingBox).Extent
		}
		if rend.Kind == component.KindPlayer {
			player = append(player, sp)
			continue
		}
		cells = append(cells, sp)
	}
	return append(cells, player...)
}

// Fuel returns the player's fuel.
func (s *Session) Fuel() float64 {
	if c, ok := s.world.Get(s.player, component.CFuel).(component.Fuel); ok {
		return c.Amount
	}
	return 0
}

// FuelText returns the readout as refreshed by the last tick.
func (s *Session) FuelText() component.FuelText {
	txt, _ := s.world.Get(s.display, component.CFuelText).(component.FuelText)
	return txt
}

// Player returns the player's position and velocity.
func (s *Session) Player() (pos, vel component.Vec2) {
	if tr, ok := s.world.Get(s.player, component.CTransform).(component.Transform); ok {
		pos = tr.Position
	}
	if v, ok := s.world.Get(s.player, component.CVelocity).(component.Velocity); ok {
		vel = v.Vec2
	}
	return pos, vel
}

// HalfExtents returns the window half-width and half-height in world units.
func (s *Session) HalfExtents() (float64, float64) { return s.hw, s.hh }

// Stats returns the running counters.
func (s *Session) Stats() Stats {
	st := s.stats
	st.LiveCells = s.world.Count(component.CTagPickupCell)
	return st
}

// World exposes the entity store for frontends and tests. Callers must not
// mutate it while a tick is running.
func (s *Session) World() *ecs.World { return s.world }

// PlayerID returns the player entity.
func (s *Session) PlayerID() ecs.EntityID { return s.player }

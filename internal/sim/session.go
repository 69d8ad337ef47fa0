// Package sim owns one simulation session: the entity store, the spawner and
// the fixed per-tick system order.
package sim

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"stranded/internal/component"
	"stranded/internal/config"
	"stranded/internal/ecs"
	"stranded/internal/factory"
	"stranded/internal/input"
	"stranded/internal/system"
)

var (
	// ErrPlayerCount is reported when the world does not hold exactly one player.
	ErrPlayerCount = errors.New("world must contain exactly one player")
	// ErrDisplayCount is reported when the world does not hold exactly one fuel display.
	ErrDisplayCount = errors.New("world must contain exactly one fuel display")
)

// Stats are running counters for a session.
type Stats struct {
	Ticks      uint64
	Elapsed    float64 // seconds of simulated time
	Spawned    int
	Collected  int
	Collisions int // overlapping rigid pairs resolved, summed over ticks
	LiveCells  int
}

// Session is a single-player simulation. It is not safe for concurrent use.
type Session struct {
	cfg     config.Tuning
	world   *ecs.World
	player  ecs.EntityID
	display ecs.EntityID
	thrust  system.Thrust
	spawner *system.Spawner
	hw, hh  float64
	stats   Stats
	logger  *slog.Logger
}

// New builds a session from cfg. rng drives spawn placement; a nil logger
// discards output.
func New(cfg config.Tuning, rng *rand.Rand, logger *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("sim: nil random source")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	hw, hh := cfg.Window.HalfExtents()
	s := &Session{
		cfg:    cfg,
		world:  ecs.NewWorld(),
		hw:     hw,
		hh:     hh,
		logger: logger,
		thrust: system.Thrust{
			Acceleration: cfg.Player.Acceleration,
			BurnRate:     cfg.Player.BurnRate,
		},
		spawner: &system.Spawner{
			Timer:         system.Timer{Period: cfg.Spawn.Period},
			HalfWidth:     hw,
			HalfHeight:    hh,
			VelocityRange: cfg.Spawn.VelocityRange,
			CellSize:      cfg.Spawn.CellSize,
			Rng:           rng,
		},
	}
	s.player = factory.NewPlayer(s.world, cfg.Player)
	s.display = factory.NewFuelDisplay(s.world, cfg.Player.StartFuel)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the single-player and single-display invariants.
func (s *Session) Validate() error {
	if n := s.world.Count(component.CTagPlayer); n != 1 {
		return fmt.Errorf("%w: found %d", ErrPlayerCount, n)
	}
	if n := s.world.Count(component.CTagFuelDisplay); n != 1 {
		return fmt.Errorf("%w: found %d", ErrDisplayCount, n)
	}
	return nil
}

// Tick advances the session by dt seconds of real time with the given input.
// Negative dt counts as zero. The only error is a broken world invariant,
// which is fatal for the session.
func (s *Session) Tick(dt float64, in input.State) error {
	if err := s.Validate(); err != nil {
		s.logger.Error("session invariant violated", "tick", s.stats.Ticks, "error", err)
		return err
	}
	if dt < 0 {
		dt = 0
	}
	w := s.world

	s.thrust.Apply(w, s.player, in, dt)
	system.Integrate(w, dt)
	system.Wrap(w, s.hw, s.hh)
	s.stats.Collisions += system.ResolveCollisions(w)
	if n := system.CollectPickups(w, s.player, s.cfg.Spawn.Replenish); n > 0 {
		s.stats.Collected += n
		s.logger.Debug("fuel collected", "cells", n, "fuel", s.Fuel())
	}
	if id, ok := s.spawner.Update(w, dt); ok {
		s.stats.Spawned++
		s.logger.Debug("fuel cell spawned", "entity", id)
	}
	s.refreshDisplay()

	s.stats.Ticks++
	s.stats.Elapsed += dt
	return nil
}

// refreshDisplay copies the player's fuel into the readout proxy.
func (s *Session) refreshDisplay() {
	txt, ok := s.world.Get(s.display, component.CFuelText).(component.FuelText)
	if !ok {
		return
	}
	txt.Value = factory.FormatFuel(s.Fuel())
	s.world.Add(s.display, txt)
}

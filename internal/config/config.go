// Package config holds the tuning constants of a session. The defaults are
// fixed; a YAML file may override them once at process start.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid tuning")

// Window is the playfield size in world units, centered on the origin.
type Window struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HalfExtents returns (width/2, height/2).
func (w Window) HalfExtents() (float64, float64) { return w.Width / 2, w.Height / 2 }

// Player holds the starting state and control constants of the ship.
type Player struct {
	Size         float64 `yaml:"size"`
	StartVX      float64 `yaml:"start_vx"`
	StartVY      float64 `yaml:"start_vy"`
	StartFuel    float64 `yaml:"start_fuel"`
	Acceleration float64 `yaml:"acceleration"` // per second, per pressed direction
	BurnRate     float64 `yaml:"burn_rate"`    // fuel per second, per pressed direction
}

// Spawn controls the fuel-cell spawner.
type Spawn struct {
	Period        float64 `yaml:"period"`         // seconds between spawns
	VelocityRange float64 `yaml:"velocity_range"` // each axis uniform in [-r, r]
	CellSize      float64 `yaml:"cell_size"`
	Replenish     float64 `yaml:"replenish"` // fuel credited per collected cell
}

// Tuning is the full constant set.
type Tuning struct {
	Window Window `yaml:"window"`
	Player Player `yaml:"player"`
	Spawn  Spawn  `yaml:"spawn"`
}

// Default returns the built-in tuning.
func Default() Tuning {
	return Tuning{
		Window: Window{Width: 800, Height: 600},
		Player: Player{
			Size:         30,
			StartVX:      100,
			StartVY:      100,
			StartFuel:    100,
			Acceleration: 600,
			BurnRate:     30,
		},
		Spawn: Spawn{
			Period:        1.0,
			VelocityRange: 100,
			CellSize:      15,
			Replenish:     20,
		},
	}
}

// Validate reports the first out-of-range field.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"window.width", t.Window.Width},
		{"window.height", t.Window.Height},
		{"player.size", t.Player.Size},
		{"spawn.period", t.Spawn.Period},
		{"spawn.cell_size", t.Spawn.CellSize},
	}
	for _, f := range positive {
		if !(f.v > 0) {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalid, f.name, f.v)
		}
	}
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"player.acceleration", t.Player.Acceleration},
		{"player.burn_rate", t.Player.BurnRate},
		{"spawn.velocity_range", t.Spawn.VelocityRange},
		{"spawn.replenish", t.Spawn.Replenish},
	}
	for _, f := range nonNegative {
		if f.v < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalid, f.name, f.v)
		}
	}
	return nil
}

// Load reads a YAML tuning file over the defaults. Fields absent from the file
// keep their default value. An empty path returns the defaults.
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

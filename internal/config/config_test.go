package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestDefaultHalfExtents(t *testing.T) {
	hw, hh := Default().Window.HalfExtents()
	if hw != 400 || hh != 300 {
		t.Fatalf("HalfExtents = (%v,%v); want (400,300)", hw, hh)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if got != Default() {
		t.Fatalf("Load(\"\") = %+v; want defaults", got)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := "spawn:\n  period: 0.5\nplayer:\n  burn_rate: 10\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Spawn.Period != 0.5 {
		t.Errorf("spawn.period = %v; want 0.5", got.Spawn.Period)
	}
	if got.Player.BurnRate != 10 {
		t.Errorf("player.burn_rate = %v; want 10", got.Player.BurnRate)
	}
	def := Default()
	if got.Window != def.Window || got.Spawn.Replenish != def.Spawn.Replenish {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v; want wrapped os.ErrNotExist", err)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("window: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero width", func(c *Tuning) { c.Window.Width = 0 }},
		{"negative height", func(c *Tuning) { c.Window.Height = -1 }},
		{"zero period", func(c *Tuning) { c.Spawn.Period = 0 }},
		{"zero cell size", func(c *Tuning) { c.Spawn.CellSize = 0 }},
		{"zero player size", func(c *Tuning) { c.Player.Size = 0 }},
		{"negative burn", func(c *Tuning) { c.Player.BurnRate = -1 }},
		{"negative range", func(c *Tuning) { c.Spawn.VelocityRange = -5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v; want ErrInvalid", err)
			}
		})
	}
}

func TestLoadValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  period: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v; want ErrInvalid", err)
	}
}

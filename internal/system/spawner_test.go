package system

import (
	"math/rand"
	"testing"

	"stranded/internal/component"
	"stranded/internal/ecs"
)

func newTestSpawner(seed int64) *Spawner {
	return &Spawner{
		Timer:         Timer{Period: 1.0},
		HalfWidth:     400,
		HalfHeight:    300,
		VelocityRange: 100,
		CellSize:      15,
		Rng:           rand.New(rand.NewSource(seed)),
	}
}

func TestSpawnerCadence(t *testing.T) {
	w := ecs.NewWorld()
	s := newTestSpawner(1)

	for i := 0; i < 3; i++ {
		if _, ok := s.Update(w, 0.25); ok {
			t.Fatalf("spawned after %d ticks; want none before 4", i+1)
		}
	}
	if n := w.Count(component.CTagPickupCell); n != 0 {
		t.Fatalf("cells after 3 ticks = %d; want 0", n)
	}
	if _, ok := s.Update(w, 0.25); !ok {
		t.Fatal("expected a spawn on the 4th tick")
	}
	if n := w.Count(component.CTagPickupCell); n != 1 {
		t.Fatalf("cells after 4 ticks = %d; want 1", n)
	}
}

func TestSpawnerOverrunSpawnsOnce(t *testing.T) {
	w := ecs.NewWorld()
	s := newTestSpawner(1)

	if _, ok := s.Update(w, 3.5); !ok {
		t.Fatal("expected a spawn")
	}
	if n := w.Count(component.CTagPickupCell); n != 1 {
		t.Fatalf("cells = %d; want exactly 1", n)
	}
	if !approx(s.Timer.Elapsed, 0.5) {
		t.Fatalf("remainder = %v; want 0.5", s.Timer.Elapsed)
	}
	// The carried remainder shortens the next wait.
	if _, ok := s.Update(w, 0.5); !ok {
		t.Fatal("expected the remainder to carry into the next period")
	}
}

func TestSpawnerZeroDt(t *testing.T) {
	w := ecs.NewWorld()
	s := newTestSpawner(1)
	for i := 0; i < 10; i++ {
		if _, ok := s.Update(w, 0); ok {
			t.Fatal("zero dt must never spawn")
		}
	}
}

func TestSpawnedCellWithinBounds(t *testing.T) {
	w := ecs.NewWorld()
	s := newTestSpawner(42)
	for i := 0; i < 200; i++ {
		id, ok := s.Update(w, 1.0)
		if !ok {
			t.Fatalf("tick %d: expected spawn", i)
		}
		p := positionOf(w, id)
		if p.X < -400 || p.X > 400 || p.Y < -300 || p.Y > 300 {
			t.Fatalf("spawn position %+v outside window", p)
		}
		v := velocityOf(w, id)
		if v.X < -100 || v.X > 100 || v.Y < -100 || v.Y > 100 {
			t.Fatalf("spawn velocity %+v outside range", v)
		}
		for _, ct := range []ecs.ComponentType{component.CTagRigid, component.CTagWrapAround, component.CTagPickupCell} {
			if !w.Has(id, ct) {
				t.Fatalf("spawned cell missing %d", ct)
			}
		}
		if bb := w.Get(id, component.CBoundingBox).(component.BoundingBox); bb.Extent != vec(15, 15) {
			t.Fatalf("extent = %+v; want 15x15", bb.Extent)
		}
	}
}

func TestSpawnerDeterministicForSeed(t *testing.T) {
	w1, w2 := ecs.NewWorld(), ecs.NewWorld()
	s1, s2 := newTestSpawner(7), newTestSpawner(7)
	for i := 0; i < 5; i++ {
		a, _ := s1.Update(w1, 1)
		b, _ := s2.Update(w2, 1)
		if positionOf(w1, a) != positionOf(w2, b) || velocityOf(w1, a) != velocityOf(w2, b) {
			t.Fatalf("spawn %d differs between identically seeded spawners", i)
		}
	}
}

func TestTimerAdvance(t *testing.T) {
	tm := Timer{Period: 1}
	if tm.Advance(0.999) {
		t.Fatal("matured early")
	}
	if !tm.Advance(0.001 + 1e-12) {
		t.Fatal("expected maturation at the period")
	}
	if tm.Advance(-5) {
		t.Fatal("negative dt must not advance")
	}
}

package ecs

import (
	"slices"
	"testing"
)

// stub components used only in tests
type testComp struct{ val int }

func (testComp) Type() ComponentType { return 1 }

type otherComp struct{}

func (otherComp) Type() ComponentType { return 2 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
}

func TestSpawnAttachesInitialComponents(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(testComp{val: 3}, otherComp{})

	if !w.Has(id, ComponentType(1)) || !w.Has(id, ComponentType(2)) {
		t.Fatal("Spawn must attach every initial component")
	}
	if got := w.Get(id, ComponentType(1)).(testComp).val; got != 3 {
		t.Fatalf("val = %d; want 3", got)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 42})

	c := w.Get(id, ComponentType(1))
	if c == nil {
		t.Fatal("expected component, got nil")
	}
	tc, ok := c.(testComp)
	if !ok {
		t.Fatal("wrong component type returned")
	}
	if tc.val != 42 {
		t.Fatalf("expected val=42, got %d", tc.val)
	}
}

func TestAddToDeadEntityIgnored(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.DestroyEntity(id)
	w.Add(id, testComp{val: 1})

	if w.Has(id, ComponentType(1)) {
		t.Fatal("a destroyed entity must not regain components")
	}
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 7})
	w.DestroyEntity(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be gone after DestroyEntity")
	}
	if w.Len() != 0 {
		t.Fatalf("Len = %d; want 0", w.Len())
	}
}

func TestIDsAreNotReused(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	w.DestroyEntity(a)
	b := w.CreateEntity()
	if a == b {
		t.Fatalf("ID %v reused after destroy", a)
	}
}

func TestQueryFiltersCorrectly(t *testing.T) {
	w := NewWorld()

	// entity with both A and B
	both := w.CreateEntity()
	w.Add(both, testComp{})
	w.Add(both, otherComp{})

	// entity with only A
	onlyA := w.CreateEntity()
	w.Add(onlyA, testComp{})

	results := w.Query(ComponentType(1), ComponentType(2))
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0] != both {
		t.Fatalf("expected entity %v in results, got %v", both, results[0])
	}
}

func TestQueryIsSorted(t *testing.T) {
	w := NewWorld()
	var want []EntityID
	for i := 0; i < 50; i++ {
		want = append(want, w.Spawn(testComp{val: i}))
	}
	got := w.Query(ComponentType(1))
	if !slices.Equal(got, want) {
		t.Fatalf("Query order = %v; want %v", got, want)
	}
}

func TestQueryNoTypes(t *testing.T) {
	w := NewWorld()
	w.Spawn(testComp{})
	if got := w.Query(); got != nil {
		t.Fatalf("Query() = %v; want nil", got)
	}
}

func TestRemoveComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 5})

	w.Remove(id, ComponentType(1))

	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be nil after Remove")
	}
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	// Removing a component type that was never added must not panic.
	w.Remove(id, ComponentType(99))
}

func TestHasComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()

	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false before Add")
	}
	w.Add(id, testComp{val: 1})
	if !w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return true after Add")
	}
	w.Remove(id, ComponentType(1))
	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false after Remove")
	}
}

func TestQueryExcludesDeadEntities(t *testing.T) {
	w := NewWorld()
	alive := w.CreateEntity()
	w.Add(alive, testComp{})

	dead := w.CreateEntity()
	w.Add(dead, testComp{})
	w.DestroyEntity(dead)

	results := w.Query(ComponentType(1))
	for _, id := range results {
		if id == dead {
			t.Fatal("Query returned a destroyed entity")
		}
	}
	if len(results) != 1 || results[0] != alive {
		t.Fatalf("expected only the alive entity; got %v", results)
	}
}

func TestEachSkipsEntitiesDestroyedDuringIteration(t *testing.T) {
	w := NewWorld()
	ids := make([]EntityID, 4)
	for i := range ids {
		ids[i] = w.Spawn(testComp{val: i})
	}

	var visited []EntityID
	for id := range w.Each(ComponentType(1)) {
		visited = append(visited, id)
		if id == ids[0] {
			// Destroy a later entity while the traversal is in flight.
			w.DestroyEntity(ids[2])
		}
	}

	want := []EntityID{ids[0], ids[1], ids[3]}
	if !slices.Equal(visited, want) {
		t.Fatalf("visited = %v; want %v", visited, want)
	}
}

func TestEachSkipsEntitiesStrippedDuringIteration(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(testComp{}, otherComp{})
	b := w.Spawn(testComp{}, otherComp{})

	var visited []EntityID
	for id := range w.Each(ComponentType(1), ComponentType(2)) {
		visited = append(visited, id)
		w.Remove(b, ComponentType(2))
	}
	if !slices.Equal(visited, []EntityID{a}) {
		t.Fatalf("visited = %v; want [%v]", visited, a)
	}
}

func TestEachIsRestartable(t *testing.T) {
	w := NewWorld()
	w.Spawn(testComp{})
	w.Spawn(testComp{})

	seq := w.Each(ComponentType(1))
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if len(first) != 2 || !slices.Equal(first, second) {
		t.Fatalf("first = %v, second = %v; want two identical passes of 2", first, second)
	}
}

func TestEachEarlyBreak(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		w.Spawn(testComp{})
	}
	n := 0
	for range w.Each(ComponentType(1)) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("visited %d; want 2", n)
	}
}

func TestCount(t *testing.T) {
	w := NewWorld()
	w.Spawn(testComp{})
	w.Spawn(testComp{}, otherComp{})
	if got := w.Count(ComponentType(1)); got != 2 {
		t.Errorf("Count(1) = %d; want 2", got)
	}
	if got := w.Count(ComponentType(1), ComponentType(2)); got != 1 {
		t.Errorf("Count(1,2) = %d; want 1", got)
	}
	if got := w.Count(ComponentType(42)); got != 0 {
		t.Errorf("Count(42) = %d; want 0", got)
	}
}

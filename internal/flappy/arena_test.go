package flappy

import "testing"

func TestArenaInsertGetRemove(t *testing.T) {
	a := NewArena[int]()
	id1 := a.Insert(10)
	id2 := a.Insert(20)

	if a.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", a.Len())
	}
	if v, ok := a.Get(id1); !ok || *v != 10 {
		t.Errorf("Get(id1) = %v, %v", v, ok)
	}

	if !a.Remove(id1) {
		t.Fatal("Remove(id1) should succeed")
	}
	if a.Remove(id1) {
		t.Error("second Remove(id1) should be a no-op")
	}
	if _, ok := a.Get(id1); ok {
		t.Error("removed handle should be stale")
	}
	if v, ok := a.Get(id2); !ok || *v != 20 {
		t.Errorf("Get(id2) = %v, %v", v, ok)
	}
}

func TestArenaSlotReuse(t *testing.T) {
	a := NewArena[string]()
	old := a.Insert("old")
	a.Remove(old)

	fresh := a.Insert("fresh")
	if fresh.Index != old.Index {
		t.Errorf("expected slot %d to be reused, got %d", old.Index, fresh.Index)
	}
	if fresh.Generation == old.Generation {
		t.Error("reused slot must bump generation")
	}
	if _, ok := a.Get(old); ok {
		t.Error("stale handle must not resolve to the new entity")
	}
}

func TestArenaIterationOrder(t *testing.T) {
	a := NewArena[int]()
	ids := make([]EntityID, 5)
	for i := range ids {
		ids[i] = a.Insert(i)
	}
	a.Remove(ids[1])
	a.Remove(ids[3])

	var got []int
	for _, v := range a.All() {
		got = append(got, *v)
	}
	want := []int{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("All() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %d, expected %d", i, got[i], want[i])
		}
	}
}

func TestArenaRemoveIfAndClear(t *testing.T) {
	a := NewArena[int]()
	for i := 0; i < 10; i++ {
		a.Insert(i)
	}

	removed := a.RemoveIf(func(v *int) bool { return *v%2 == 0 })
	if removed != 5 || a.Len() != 5 {
		t.Errorf("RemoveIf removed %d, Len %d; expected 5, 5", removed, a.Len())
	}
	for _, v := range a.All() {
		if *v%2 == 0 {
			t.Errorf("even value %d survived RemoveIf", *v)
		}
	}

	a.Clear()
	if a.Len() != 0 {
		t.Errorf("Len() after Clear = %d", a.Len())
	}
	for range a.All() {
		t.Fatal("All() should yield nothing after Clear")
	}
}

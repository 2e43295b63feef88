package flappy

import "iter"

// EntityID is a stable handle into an Arena. A handle goes stale once its
// entity is removed; the slot's generation no longer matches.
type EntityID struct {
	Index      uint32
	Generation uint32
}

type slot[T any] struct {
	gen   uint32
	alive bool
	val   T
}

// Arena is a slot map of live entities keyed by EntityID.
// Iteration order is slot order, which keeps simulation deterministic.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) EntityID {
	a.live++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.alive = true
		s.val = v
		return EntityID{Index: idx, Generation: s.gen}
	}
	a.slots = append(a.slots, slot[T]{alive: true, val: v})
	return EntityID{Index: uint32(len(a.slots) - 1)}
}

// Get returns a pointer to the entity, or false if the handle is stale.
func (a *Arena[T]) Get(id EntityID) (*T, bool) {
	if int(id.Index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[id.Index]
	if !s.alive || s.gen != id.Generation {
		return nil, false
	}
	return &s.val, true
}

// Remove despawns the entity. Removing a stale handle is a no-op.
func (a *Arena[T]) Remove(id EntityID) bool {
	if _, ok := a.Get(id); !ok {
		return false
	}
	s := &a.slots[id.Index]
	var zero T
	s.val = zero
	s.alive = false
	s.gen++
	a.free = append(a.free, id.Index)
	a.live--
	return true
}

// RemoveIf despawns every entity matching pred and returns how many went.
func (a *Arena[T]) RemoveIf(pred func(*T) bool) int {
	removed := 0
	for id, v := range a.All() {
		if pred(v) {
			a.Remove(id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return a.live
}

// All yields live entities in slot order.
func (a *Arena[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.alive {
				continue
			}
			if !yield(EntityID{Index: uint32(i), Generation: s.gen}, &s.val) {
				return
			}
		}
	}
}

// Clear despawns everything. Outstanding handles become stale.
func (a *Arena[T]) Clear() {
	for id := range a.All() {
		a.Remove(id)
	}
}

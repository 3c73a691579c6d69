// SPDX-License-Identifier: GPL-2.0-or-later

package actor

// Handle is a stable reference to an actor: an arena slot plus the
// generation the slot had when the actor was inserted. The zero Handle
// references nothing.
type Handle struct {
	Slot uint32
	Gen  uint32
}

func (h Handle) IsNil() bool {
	return h.Gen == 0
}

type arenaSlot struct {
	gen   uint32
	actor *Actor
}

// Arena owns the handle namespace of one level.
type Arena struct {
	slots []arenaSlot
	free  []uint32
	live  int
}

func NewArena() *Arena {
	return &Arena{}
}

// Insert stores a and assigns a.Handle.
func (ar *Arena) Insert(a *Actor) Handle {
	var idx uint32
	if n := len(ar.free); n > 0 {
		idx = ar.free[n-1]
		ar.free = ar.free[:n-1]
	} else {
		ar.slots = append(ar.slots, arenaSlot{})
		idx = uint32(len(ar.slots) - 1)
	}
	s := &ar.slots[idx]
	s.gen++
	if s.gen == 0 {
		// skip the nil generation on wrap around
		s.gen = 1
	}
	s.actor = a
	ar.live++
	a.Handle = Handle{Slot: idx, Gen: s.gen}
	return a.Handle
}

// Get returns nil for nil or stale handles.
func (ar *Arena) Get(h Handle) *Actor {
	if h.Gen == 0 || int(h.Slot) >= len(ar.slots) {
		return nil
	}
	s := &ar.slots[h.Slot]
	if s.gen != h.Gen {
		return nil
	}
	return s.actor
}

// Release invalidates h. Releasing a stale handle does nothing.
func (ar *Arena) Release(h Handle) {
	if ar.Get(h) == nil {
		return
	}
	s := &ar.slots[h.Slot]
	s.actor = nil
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	ar.free = append(ar.free, h.Slot)
	ar.live--
}

func (ar *Arena) Len() int {
	return ar.live
}

// All calls f for every live actor in slot order until f returns false.
func (ar *Arena) All(f func(*Actor) bool) {
	for i := range ar.slots {
		if a := ar.slots[i].actor; a != nil {
			if !f(a) {
				return
			}
		}
	}
}

// IsBasedOn reports whether other is a (transitive) base of a.
// An actor is considered based on itself.
func (ar *Arena) IsBasedOn(a *Actor, other *Actor) bool {
	if other == nil {
		return false
	}
	// the chain is acyclic, the bound only protects against corrupt data
	for i := 0; a != nil && i < 1024; i++ {
		if a == other {
			return true
		}
		a = ar.Get(a.Base)
	}
	return false
}

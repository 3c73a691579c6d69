// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"iter"
	"sort"

	"gounreal/actor"
	"gounreal/math/vec"
)

// Hit is a single crossing of a sweep. A nil Actor means world geometry.
// Fraction 1 means nothing was hit.
type Hit struct {
	Fraction float32
	Normal   vec.Vec3
	Actor    actor.Handle
	Node     int32
}

func NoHit() Hit {
	return Hit{Fraction: 1, Node: -1}
}

func (h Hit) Blocked() bool {
	return h.Fraction < 1
}

func (h Hit) IsWorld() bool {
	return h.Actor.IsNil()
}

const inlineHits = 16

// HitList is an ordered list of hits. The first 16 entries are stored
// inline, beyond that the list moves to the heap and doubles its capacity.
// A copy made by assignment copies the heap part before it writes to it.
type HitList struct {
	inline [inlineHits]Hit
	n      int
	heap   []Hit
	// owner is the only list allowed to write heap in place
	owner *HitList
}

func (l *HitList) items() []Hit {
	if l.heap != nil {
		return l.heap
	}
	return l.inline[:l.n]
}

func (l *HitList) Append(h Hit) {
	if l.heap == nil {
		if l.n < inlineHits {
			l.inline[l.n] = h
			l.n++
			return
		}
		l.heap = make([]Hit, l.n, 2*inlineHits)
		copy(l.heap, l.inline[:l.n])
		l.n = 0
		l.owner = l
	}
	if l.owner != l || len(l.heap) == cap(l.heap) {
		c := cap(l.heap)
		if len(l.heap) == c {
			c *= 2
		}
		l.own(c)
	}
	l.heap = append(l.heap, h)
}

// AppendList appends all hits of o preserving their order.
func (l *HitList) AppendList(o *HitList) {
	for _, h := range o.items() {
		l.Append(h)
	}
}

// own replaces heap with a private copy of capacity c.
func (l *HitList) own(c int) {
	nh := make([]Hit, len(l.heap), c)
	copy(nh, l.heap)
	l.heap = nh
	l.owner = l
}

// Clear empties the list but keeps any heap capacity. Copies may still
// refer to the old elements, so the next heap write starts a new array.
func (l *HitList) Clear() {
	l.n = 0
	if l.heap != nil {
		l.heap = l.heap[:0]
	}
	l.owner = nil
}

func (l *HitList) Clone() HitList {
	c := *l
	if l.heap != nil {
		c.heap = make([]Hit, len(l.heap), cap(l.heap))
		copy(c.heap, l.heap)
	}
	// the copy claims ownership on its first heap write
	c.owner = nil
	return c
}

func (l *HitList) Len() int {
	return len(l.items())
}

func (l *HitList) At(i int) Hit {
	return l.items()[i]
}

func (l *HitList) All() iter.Seq2[int, Hit] {
	return func(yield func(int, Hit) bool) {
		for i, h := range l.items() {
			if !yield(i, h) {
				return
			}
		}
	}
}

// SortByFraction sorts ascending. Equal fractions keep insertion order.
func (l *HitList) SortByFraction() {
	if l.heap != nil {
		// an assigned copy may share the elements even with its owner
		l.own(cap(l.heap))
	}
	it := l.items()
	sort.SliceStable(it, func(i, j int) bool {
		return it[i].Fraction < it[j].Fraction
	})
}

// First returns the first hit or NoHit for an empty list.
func (l *HitList) First() Hit {
	if l.Len() == 0 {
		return NoHit()
	}
	return l.At(0)
}

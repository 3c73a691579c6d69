// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"testing"

	"pgregory.net/rapid"

	"gounreal/actor"
)

func hitN(i int) Hit {
	return Hit{Fraction: float32(i) / 100, Actor: actor.Handle{Slot: uint32(i), Gen: 1}}
}

func TestHitListGrowth(t *testing.T) {
	var l HitList
	for i := 0; i < 40; i++ {
		l.Append(hitN(i))
	}
	if got := l.Len(); got != 40 {
		t.Fatalf("Len() = %v want 40", got)
	}
	for i, h := range l.All() {
		if h != hitN(i) {
			t.Errorf("At(%d) = %v want %v", i, h, hitN(i))
		}
	}
	c := cap(l.heap)
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %v", l.Len())
	}
	if cap(l.heap) != c {
		t.Errorf("Clear released capacity: %v want %v", cap(l.heap), c)
	}
	l.Append(hitN(3))
	if l.Len() != 1 || l.At(0) != hitN(3) {
		t.Errorf("Append after Clear: %v", l.At(0))
	}
}

func TestHitListInline(t *testing.T) {
	var l HitList
	for i := 0; i < inlineHits; i++ {
		l.Append(hitN(i))
	}
	if l.heap != nil {
		t.Errorf("heap used for %d hits", inlineHits)
	}
	l.Append(hitN(16))
	if l.heap == nil || cap(l.heap) != 2*inlineHits {
		t.Errorf("heap cap = %v want %v", cap(l.heap), 2*inlineHits)
	}
}

func TestHitListClone(t *testing.T) {
	var l HitList
	for i := 0; i < 20; i++ {
		l.Append(hitN(i))
	}
	c := l.Clone()
	l.Clear()
	l.Append(hitN(99))
	if c.Len() != 20 || c.At(0) != hitN(0) {
		t.Errorf("clone changed with original: len %v first %v", c.Len(), c.At(0))
	}
}

func TestHitListAssign(t *testing.T) {
	fill := func(l *HitList) {
		for i := 0; i < 20; i++ {
			l.Append(hitN(i))
		}
	}
	for _, tc := range []struct {
		name   string
		mutate func(l *HitList)
	}{
		{"append", func(l *HitList) { l.Append(hitN(99)) }},
		{"clear", func(l *HitList) {
			l.Clear()
			for i := 0; i < 20; i++ {
				l.Append(hitN(50 + i))
			}
		}},
		{"sort", func(l *HitList) {
			l.Append(Hit{Fraction: -1})
			l.SortByFraction()
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var l HitList
			fill(&l)
			c := l
			tc.mutate(&l)
			if c.Len() != 20 {
				t.Fatalf("Len() = %v want 20", c.Len())
			}
			for i, h := range c.All() {
				if h != hitN(i) {
					t.Errorf("At(%d) = %v want %v", i, h, hitN(i))
				}
			}
			// the copy grows on its own
			c.Append(hitN(77))
			if c.At(20) != hitN(77) {
				t.Errorf("At(20) = %v want %v", c.At(20), hitN(77))
			}
		})
	}
}

func TestHitListAppendList(t *testing.T) {
	var a, b HitList
	a.Append(hitN(1))
	b.Append(hitN(2))
	b.Append(hitN(3))
	a.AppendList(&b)
	if a.Len() != 3 || a.At(0) != hitN(1) || a.At(2) != hitN(3) {
		t.Errorf("AppendList() = %v", a.items())
	}
}

func TestSortByFractionStable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var l HitList
		n := rapid.IntRange(0, 40).Draw(t, "n")
		for i := 0; i < n; i++ {
			// few distinct values to get ties
			f := float32(rapid.IntRange(0, 4).Draw(t, "f")) / 4
			l.Append(Hit{Fraction: f, Actor: actor.Handle{Slot: uint32(i), Gen: 1}})
		}
		l.SortByFraction()
		for i := 1; i < l.Len(); i++ {
			p, h := l.At(i-1), l.At(i)
			if p.Fraction > h.Fraction {
				t.Fatalf("not sorted at %d: %v > %v", i, p.Fraction, h.Fraction)
			}
			if p.Fraction == h.Fraction && p.Actor.Slot > h.Actor.Slot {
				t.Fatalf("tie order lost at %d", i)
			}
		}
	})
}

func TestFirst(t *testing.T) {
	var l HitList
	if got := l.First(); got.Fraction != 1 || got.Blocked() {
		t.Errorf("First() of empty list = %v", got)
	}
}

// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"testing"

	"github.com/chewxy/math32"

	"gounreal/actor"
	"gounreal/bsp"
	"gounreal/math/vec"
)

var (
	roomMins = vec.Vec3{X: -1000, Y: -1000, Z: 0}
	roomMaxs = vec.Vec3{X: 1000, Y: 1000, Z: 500}
)

type testWorld struct {
	ar *actor.Arena
	s  *System
}

func newTestWorld(world *bsp.Model) *testWorld {
	ar := actor.NewArena()
	return &testWorld{ar: ar, s: New(ar, world)}
}

func (w *testWorld) add(c *actor.Class, name string, loc vec.Vec3, r, h float32) *actor.Actor {
	a := actor.New(c, name)
	a.Location = loc
	a.CollisionRadius = r
	a.CollisionHeight = h
	w.ar.Insert(a)
	w.s.AddToCollision(a)
	return a
}

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-3
}

func TestTraceOrdering(t *testing.T) {
	w := newTestWorld(bsp.BoxRoom("room", roomMins, roomMaxs, 1))
	// added out of order on purpose
	c := w.add(actor.PawnClass, "c", vec.Vec3{X: 410, Z: 50}, 10, 10)
	a := w.add(actor.PawnClass, "a", vec.Vec3{X: 110, Z: 50}, 10, 10)
	b := w.add(actor.DecorationClass, "b", vec.Vec3{X: 260, Z: 50}, 10, 10)

	l := w.s.Trace(nil, vec.Vec3{Z: 50}, vec.Vec3{X: 500, Z: 50}, 0, 0, true, true, false)
	want := []struct {
		a *actor.Actor
		f float32
	}{{a, 0.2}, {b, 0.5}, {c, 0.8}}
	if l.Len() != len(want) {
		t.Fatalf("Trace() returned %d hits want %d", l.Len(), len(want))
	}
	for i, h := range l.All() {
		if h.Actor != want[i].a.Handle || !near(h.Fraction, want[i].f) {
			t.Errorf("hit %d = %v/%v want %v/%v", i, w.ar.Get(h.Actor), h.Fraction, want[i].a, want[i].f)
		}
		if h.Normal != (vec.Vec3{X: -1}) {
			t.Errorf("hit %d normal = %v", i, h.Normal)
		}
	}
}

func TestTraceWorldAndActor(t *testing.T) {
	w := newTestWorld(bsp.BoxRoom("room", roomMins, roomMaxs, 1))
	p := w.add(actor.PawnClass, "p", vec.Vec3{Z: 50}, 20, 40)
	l := w.s.Trace(nil, vec.Vec3{Z: 200}, vec.Vec3{Z: -100}, 40, 20, true, true, false)
	if l.Len() != 2 {
		t.Fatalf("Trace() returned %d hits want 2", l.Len())
	}
	first := l.At(0)
	if first.Actor != p.Handle || first.Normal != (vec.Vec3{Z: 1}) || !near(first.Fraction, 70.0/300) {
		t.Errorf("first hit = %+v", first)
	}
	if second := l.At(1); !second.IsWorld() || second.Normal != (vec.Vec3{Z: 1}) {
		t.Errorf("second hit = %+v", second)
	}
	only := w.s.Trace(p, vec.Vec3{Z: 200}, vec.Vec3{Z: -100}, 40, 20, true, false, false)
	if only.Len() != 0 {
		t.Errorf("Trace() did not ignore self: %d hits", only.Len())
	}
}

func TestTraceStartInside(t *testing.T) {
	w := newTestWorld(nil)
	w.add(actor.PawnClass, "p", vec.Vec3{}, 20, 20)
	away := w.s.Trace(nil, vec.Vec3{X: 30}, vec.Vec3{X: 100}, 20, 20, true, false, false)
	if away.Len() != 0 {
		t.Errorf("moving out of overlap blocked: %+v", away.First())
	}
	toward := w.s.Trace(nil, vec.Vec3{X: 30}, vec.Vec3{X: 10}, 20, 20, true, false, false)
	if toward.Len() != 1 || toward.First().Fraction != 0 || toward.First().Normal != (vec.Vec3{X: 1}) {
		t.Errorf("moving further into overlap = %+v", toward.First())
	}
}

func TestAddIdempotent(t *testing.T) {
	w := newTestWorld(nil)
	p := w.add(actor.PawnClass, "p", vec.Vec3{}, 20, 20)
	w.s.AddToCollision(p)
	w.s.AddToCollision(p)
	if got := w.s.CollidingActors(vec.Vec3{}, 10, 10); len(got) != 1 {
		t.Errorf("CollidingActors() = %v want one actor", got)
	}
	w.s.RemoveFromCollision(p)
	w.s.RemoveFromCollision(p)
	if got := w.s.CollidingActors(vec.Vec3{}, 10, 10); len(got) != 0 {
		t.Errorf("CollidingActors() after remove = %v", got)
	}
	if w.s.IsLinked(p) {
		t.Errorf("removed actor still linked")
	}
	ghost := actor.New(actor.ActorClass, "ghost")
	w.ar.Insert(ghost)
	w.s.AddToCollision(ghost)
	if w.s.IsLinked(ghost) {
		t.Errorf("actor without CollideActors linked")
	}
}

func TestRelinkFollowsMove(t *testing.T) {
	w := newTestWorld(bsp.BoxRoom("room", roomMins, roomMaxs, 1))
	p := w.add(actor.PawnClass, "p", vec.Vec3{X: -800, Y: -800, Z: 50}, 20, 20)
	w.s.RemoveFromCollision(p)
	p.Location = vec.Vec3{X: 800, Y: 800, Z: 50}
	w.s.AddToCollision(p)
	if got := w.s.CollidingActors(p.Location, 1, 1); len(got) != 1 || got[0] != p {
		t.Errorf("CollidingActors() at new location = %v", got)
	}
	if got := w.s.CollidingActors(vec.Vec3{X: -800, Y: -800, Z: 50}, 1, 1); len(got) != 0 {
		t.Errorf("CollidingActors() at old location = %v", got)
	}
}

func TestTraceFirstHitFlags(t *testing.T) {
	w := newTestWorld(bsp.BoxRoom("room", roomMins, roomMaxs, 1))
	w.add(actor.PawnClass, "pawn", vec.Vec3{X: 100, Z: 50}, 10, 10)
	deco := w.add(actor.DecorationClass, "deco", vec.Vec3{X: 200, Z: 50}, 10, 10)
	start, end := vec.Vec3{Z: 50}, vec.Vec3{X: 2000, Z: 50}

	h := w.s.TraceFirstHit(start, end, nil, vec.Vec3{}, TraceOthers)
	if h.Actor != deco.Handle {
		t.Errorf("TraceFirstHit(others) = %v want deco", w.ar.Get(h.Actor))
	}
	h = w.s.TraceFirstHit(start, end, nil, vec.Vec3{}, TraceWorld)
	if !h.IsWorld() || !near(h.Fraction, 1000.0/2000) {
		t.Errorf("TraceFirstHit(world) = %+v", h)
	}
	h = w.s.TraceFirstHit(start, end, nil, vec.Vec3{}, TraceOnlyProjectiles)
	if h.Blocked() {
		t.Errorf("TraceFirstHit(projectiles) = %+v", h)
	}
}

func TestTraceZoneChanges(t *testing.T) {
	w := newTestWorld(bsp.PoolRoom("pool", roomMins, roomMaxs, 100, 1, 2))
	h := w.s.TraceFirstHit(vec.Vec3{Z: 200}, vec.Vec3{Z: 0}, nil, vec.Vec3{}, TraceZoneChanges)
	if !near(h.Fraction, 0.5) {
		t.Errorf("TraceFirstHit(zone changes).Fraction = %v want 0.5", h.Fraction)
	}
}

func TestTraceAnyHit(t *testing.T) {
	w := newTestWorld(bsp.BoxRoom("room", roomMins, roomMaxs, 1))
	p := w.add(actor.PawnClass, "p", vec.Vec3{X: 100, Z: 50}, 10, 10)
	start, end := vec.Vec3{Z: 50}, vec.Vec3{X: 200, Z: 50}
	if !w.s.TraceAnyHit(start, end, nil, true, true, false) {
		t.Errorf("TraceAnyHit() missed pawn")
	}
	if w.s.TraceAnyHit(start, end, nil, true, true, true) {
		t.Errorf("TraceAnyHit(visibilityOnly) hit pawn")
	}
	if w.s.TraceAnyHit(start, end, p, true, true, false) {
		t.Errorf("TraceAnyHit() hit ignored actor")
	}
	if !w.s.TraceAnyHit(start, vec.Vec3{X: 5000, Z: 50}, nil, false, true, false) {
		t.Errorf("TraceAnyHit() missed wall")
	}
}

func TestTraceDecal(t *testing.T) {
	w := newTestWorld(bsp.BoxRoom("room", roomMins, roomMaxs, 1))
	l := w.s.TraceDecal(vec.Vec3{Z: 100}, vec.Vec3{Z: -1}, 200)
	if l.Len() != 2 || l.At(0).Node != 5 || l.At(1).Node != 6 {
		t.Fatalf("TraceDecal() = %v", l.items())
	}
	for _, h := range l.All() {
		if h.Normal != (vec.Vec3{Z: 1}) {
			t.Errorf("TraceDecal() normal = %v", h.Normal)
		}
	}
	if l := w.s.TraceDecal(vec.Vec3{Z: 100}, vec.Vec3{Z: -1}, 50); l.Len() != 0 {
		t.Errorf("TraceDecal() out of range = %v", l.items())
	}
}

func TestOverlap(t *testing.T) {
	w := newTestWorld(bsp.BoxRoom("room", roomMins, roomMaxs, 1))
	a := w.add(actor.PawnClass, "a", vec.Vec3{Z: 50}, 20, 20)
	b := w.add(actor.TriggerClass, "b", vec.Vec3{X: 30, Z: 50}, 20, 20)
	c := w.add(actor.PawnClass, "c", vec.Vec3{X: 100, Z: 50}, 20, 20)
	if !w.s.IsOverlapping(a, b) || !w.s.IsOverlapping(b, a) {
		t.Errorf("IsOverlapping(a,b) = false")
	}
	if w.s.IsOverlapping(a, c) || w.s.IsOverlapping(a, a) {
		t.Errorf("IsOverlapping(a,c) = true")
	}
	l := w.s.OverlapTest(a)
	if l.Len() != 1 || l.At(0).Actor != b.Handle {
		t.Errorf("OverlapTest(a) = %v", l.items())
	}
	l = w.s.OverlapTestAt(vec.Vec3{Z: 15}, 20, 20, true, true)
	if l.Len() != 3 || !l.At(0).IsWorld() {
		t.Fatalf("OverlapTestAt(floor) = %v", l.items())
	}
	seen := map[actor.Handle]bool{l.At(1).Actor: true, l.At(2).Actor: true}
	if !seen[a.Handle] || !seen[b.Handle] {
		t.Errorf("OverlapTestAt(floor) = %v want a and b", l.items())
	}
}

func TestEncroachingActors(t *testing.T) {
	w := newTestWorld(bsp.BoxRoom("room", roomMins, roomMaxs, 1))
	lift := actor.New(actor.MoverClass, "lift")
	lift.Brush = bsp.Box("liftbrush", vec.Vec3{X: -50, Y: -50, Z: -10}, vec.Vec3{X: 50, Y: 50, Z: 10})
	lift.Location = vec.Vec3{Z: 100}
	w.ar.Insert(lift)
	w.s.AddToCollision(lift)
	inside := w.add(actor.PawnClass, "inside", vec.Vec3{Z: 120}, 20, 20)
	w.add(actor.PawnClass, "above", vec.Vec3{Z: 200}, 20, 20)

	got := w.s.EncroachingActors(lift)
	if len(got) != 1 || got[0] != inside {
		t.Errorf("EncroachingActors() = %v want [inside]", got)
	}
	// standing on top is not encroaching
	inside.Location.Z = 130 + contactEpsilon
	w.s.AddToCollision(inside)
	if got := w.s.EncroachingActors(lift); len(got) != 0 {
		t.Errorf("EncroachingActors() = %v want none", got)
	}
	l := w.s.Trace(nil, vec.Vec3{Z: 300}, vec.Vec3{Z: 0}, 20, 20, true, false, false)
	if l.Len() != 3 {
		t.Fatalf("Trace() returned %d hits want 3", l.Len())
	}
	if got := w.ar.Get(l.At(0).Actor); got.Name != "above" {
		t.Errorf("Trace() first hit = %v want above", got)
	}
	last := l.At(2)
	if last.Actor != lift.Handle || last.Normal != (vec.Vec3{Z: 1}) || !near(last.Fraction, (170-contactEpsilon)/300) {
		t.Errorf("Trace() brush hit = %+v", last)
	}
}

// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"gounreal/actor"
	"gounreal/collision"
	"gounreal/events"
	"gounreal/math/vec"
)

const minMoveSquared = 1e-8

// baseRelated reports whether a and o stand on each other, directly or
// through a chain of bases.
func (l *Level) baseRelated(a, o *actor.Actor) bool {
	return l.Arena.IsBasedOn(a, o) || l.Arena.IsBasedOn(o, a)
}

func (l *Level) blockingHit(a *actor.Actor, hits *collision.HitList, isOwnBaseBlocking bool) collision.Hit {
	for _, h := range hits.All() {
		if h.IsWorld() {
			if a.Blocks(nil) {
				return h
			}
			continue
		}
		o := l.get(h.Actor)
		if o == nil || !a.Blocks(o) {
			continue
		}
		if !isOwnBaseBlocking && l.baseRelated(a, o) {
			continue
		}
		return h
	}
	return collision.NoHit()
}

type riderPos struct {
	a        *actor.Actor
	location vec.Vec3
}

// TryMove moves a by delta, stopping at the first blocking hit, and runs
// the touch, bump, encroachment and zone protocol. A dry run only reports
// the blocking hit. The returned hit has fraction 1 if nothing blocked.
func (l *Level) TryMove(a *actor.Actor, delta vec.Vec3, dryRun, isOwnBaseBlocking bool) collision.Hit {
	if a == nil || a.DeleteMe || a.Static || !a.Movable || delta.LengthSquared() < minMoveSquared {
		return collision.Hit{Fraction: 0, Node: -1}
	}
	l.metrics.moves.Inc()
	start := a.Location
	end := vec.Add(start, delta)

	var hits collision.HitList
	block := collision.NoHit()
	if !a.IsBrush() {
		hits = l.Collision.Trace(a, start, end, a.CollisionHeight, a.CollisionRadius, a.CollideActors, a.CollideWorld, false)
		block = l.blockingHit(a, &hits, isOwnBaseBlocking)
	}
	if dryRun {
		return block
	}

	moved := delta.Scale(block.Fraction)
	l.unlink(a)
	a.Location = vec.Add(start, moved)
	l.link(a)

	var riders []riderPos
	if a.StandingCount > 0 {
		for _, o := range l.Actors {
			if o == nil || o.DeleteMe || o.Base != a.Handle {
				continue
			}
			riders = append(riders, riderPos{o, o.Location})
			l.TryMove(o, moved, false, false)
		}
	}
	if a.DeleteMe {
		return block
	}

	if a.IsBrush() && (a.BlockActors || a.BlockPlayers) {
		var encroached []*actor.Actor
		for _, o := range l.Collision.EncroachingActors(a) {
			if o.DeleteMe || l.Arena.IsBasedOn(o, a) {
				continue
			}
			encroached = append(encroached, o)
		}
		for _, o := range encroached {
			if o.DeleteMe {
				continue
			}
			if l.callEvent(a, events.EncroachingOn, events.Object(o)).ToBool() {
				l.revert(a, start, riders)
				return collision.Hit{Fraction: 0, Actor: o.Handle, Node: -1}
			}
			if a.DeleteMe {
				return block
			}
		}
		for _, o := range encroached {
			if !o.DeleteMe && !a.DeleteMe {
				l.callEvent(o, events.EncroachedBy, events.Object(a))
			}
		}
	}

	if o := l.get(block.Actor); o != nil && !l.baseRelated(a, o) {
		l.callEvent(a, events.Bump, events.Object(o))
		if !o.DeleteMe && !a.DeleteMe {
			l.callEvent(o, events.Bump, events.Object(a))
		}
	}

	for _, h := range hits.All() {
		if a.DeleteMe || h.Fraction >= block.Fraction {
			break
		}
		o := l.get(h.Actor)
		if o == nil || a.Blocks(o) || l.baseRelated(a, o) {
			continue
		}
		l.Touch(a, o)
	}
	l.untouchSeparated(a)
	l.UpdateActorZone(a)
	return block
}

// revert puts a mover and the riders it carried back after a veto.
func (l *Level) revert(a *actor.Actor, location vec.Vec3, riders []riderPos) {
	l.unlink(a)
	a.Location = location
	l.link(a)
	for _, r := range riders {
		if r.a.DeleteMe {
			continue
		}
		l.unlink(r.a)
		r.a.Location = r.location
		l.link(r.a)
		l.UpdateActorZone(r.a)
	}
	l.UpdateActorZone(a)
}

func (l *Level) untouchSeparated(a *actor.Actor) {
	for i, h := range a.Touching {
		if a.DeleteMe {
			return
		}
		if h.IsNil() {
			continue
		}
		o := l.Arena.Get(h)
		if o == nil {
			a.Touching[i] = actor.Handle{}
			a.SetTouchSent(i, false)
			continue
		}
		if !l.Collision.IsOverlapping(a, o) {
			l.UnTouch(a, o)
		}
	}
}

// updateTouches touches everything a overlaps without being blocked by
// it and untouches what it left.
func (l *Level) updateTouches(a *actor.Actor) {
	if !a.CollideActors {
		return
	}
	hits := l.Collision.OverlapTest(a)
	for _, h := range hits.All() {
		if a.DeleteMe {
			return
		}
		o := l.get(h.Actor)
		if o == nil || a.Blocks(o) || !o.CollideActors {
			continue
		}
		l.Touch(a, o)
	}
	l.untouchSeparated(a)
}

// Touch links a and other in their touch arrays and notifies both. If
// either array is full nothing happens.
func (l *Level) Touch(a, other *actor.Actor) {
	if a == nil || other == nil || a == other || a.DeleteMe || other.DeleteMe {
		return
	}
	i := a.TouchSlot(other.Handle)
	j := other.TouchSlot(a.Handle)
	if i >= 0 && j >= 0 {
		return
	}
	if i < 0 {
		i = a.FreeTouchSlot()
	}
	if j < 0 {
		j = other.FreeTouchSlot()
	}
	if i < 0 || j < 0 {
		l.warnf("Touch: touch array full for %s and %s\n", a.Name, other.Name)
		return
	}
	a.Touching[i] = other.Handle
	other.Touching[j] = a.Handle
	l.metrics.touches.Inc()

	if !a.TouchSent(i) {
		a.SetTouchSent(i, true)
		l.callEvent(a, events.Touch, events.Object(other))
	}
	if a.DeleteMe || other.DeleteMe {
		return
	}
	// the first event may have untouched or retouched
	if j = other.TouchSlot(a.Handle); j >= 0 && !other.TouchSent(j) {
		other.SetTouchSent(j, true)
		l.callEvent(other, events.Touch, events.Object(a))
	}
}

// UnTouch removes a and other from each other's touch arrays. UnTouch
// events are only sent for sides that received a Touch.
func (l *Level) UnTouch(a, other *actor.Actor) {
	if a == nil || other == nil {
		return
	}
	sentA, sentB := false, false
	if i := a.TouchSlot(other.Handle); i >= 0 {
		sentA = a.TouchSent(i)
		a.Touching[i] = actor.Handle{}
		a.SetTouchSent(i, false)
	}
	if j := other.TouchSlot(a.Handle); j >= 0 {
		sentB = other.TouchSent(j)
		other.Touching[j] = actor.Handle{}
		other.SetTouchSent(j, false)
	}
	if sentA && !a.DeleteMe {
		l.callEvent(a, events.UnTouch, events.Object(other))
	}
	if sentB && !other.DeleteMe {
		l.callEvent(other, events.UnTouch, events.Object(a))
	}
}

// SetBase makes a stand on newBase. A nil newBase clears the base. The
// call is ignored if newBase is based on a. The level info is the base of
// actors resting on world geometry and is not notified.
func (l *Level) SetBase(a, newBase *actor.Actor, notify bool) {
	if a == nil {
		return
	}
	if newBase != nil && newBase.DeleteMe {
		newBase = nil
	}
	old := l.Arena.Get(a.Base)
	if old == newBase {
		return
	}
	if l.Arena.IsBasedOn(newBase, a) {
		return
	}
	if old != nil && old != l.Info {
		old.StandingCount--
		l.callEvent(old, events.Detach, events.Object(a))
	}
	a.Base = actor.Handle{}
	if newBase != nil {
		a.Base = newBase.Handle
		if newBase != l.Info {
			newBase.StandingCount++
			l.callEvent(newBase, events.Attach, events.Object(a))
		}
	}
	if notify && !a.DeleteMe {
		l.callEvent(a, events.BaseChange)
	}
}

// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"gounreal/actor"
	"gounreal/math/vec"
)

func cylinderOf(a *actor.Actor) cylinder {
	return cylinder{a.Location, a.CollisionRadius, a.CollisionHeight}
}

// overlapsAt reports whether o intersects the cylinder at location.
func overlapsAt(o *actor.Actor, location vec.Vec3, radius, height float32) bool {
	if m := brushModel(o); m != nil {
		return m.PointContents(vec.Sub(location, o.Location), vec.Vec3{X: radius, Y: radius, Z: height})
	}
	return cylindersOverlap(cylinder{location, radius, height}, cylinderOf(o))
}

func (s *System) overlap(self *actor.Actor, location vec.Vec3, height, radius float32, collideActors, collideWorld bool) HitList {
	var l HitList
	extent := vec.Vec3{X: radius, Y: radius, Z: height}
	if collideWorld && s.world != nil && s.world.PointContents(location, extent) {
		l.Append(Hit{Fraction: 0, Node: -1})
	}
	if collideActors {
		s.visit(vec.Sub(location, extent), vec.Add(location, extent), func(o *actor.Actor) bool {
			if o == self || !overlapsAt(o, location, radius, height) {
				return true
			}
			h := Hit{Fraction: 0, Actor: o.Handle, Node: -1}
			if !o.IsBrush() {
				h.Normal = contactNormal(vec.Sub(location, o.Location), radius+o.CollisionRadius, height+o.CollisionHeight)
			}
			l.Append(h)
			return true
		})
	}
	return l
}

// OverlapTest returns everything a overlaps at its current location.
func (s *System) OverlapTest(a *actor.Actor) HitList {
	return s.overlap(a, a.Location, a.CollisionHeight, a.CollisionRadius, true, a.CollideWorld)
}

// OverlapTestAt returns everything a cylinder placed at location overlaps.
func (s *System) OverlapTestAt(location vec.Vec3, height, radius float32, collideActors, collideWorld bool) HitList {
	return s.overlap(nil, location, height, radius, collideActors, collideWorld)
}

func (s *System) CollidingActors(location vec.Vec3, height, radius float32) []*actor.Actor {
	var r []*actor.Actor
	extent := vec.Vec3{X: radius, Y: radius, Z: height}
	s.visit(vec.Sub(location, extent), vec.Add(location, extent), func(o *actor.Actor) bool {
		if overlapsAt(o, location, radius, height) {
			r = append(r, o)
		}
		return true
	})
	return r
}

// EncroachingActors returns the non brush actors overlapping the volume
// of a.
func (s *System) EncroachingActors(a *actor.Actor) []*actor.Actor {
	var r []*actor.Actor
	mins, maxs := a.Bounds()
	s.visit(mins, maxs, func(o *actor.Actor) bool {
		if o != a && !o.IsBrush() && s.IsOverlapping(a, o) {
			r = append(r, o)
		}
		return true
	})
	return r
}

// IsOverlapping reports whether the collision volumes of a and b intersect.
// Two brushes never overlap.
func (s *System) IsOverlapping(a, b *actor.Actor) bool {
	if a == nil || b == nil || a == b || a.DeleteMe || b.DeleteMe {
		return false
	}
	if !a.CollideActors || !b.CollideActors {
		return false
	}
	am, bm := brushModel(a), brushModel(b)
	switch {
	case am != nil && bm != nil:
		return false
	case am != nil:
		return overlapsAt(a, b.Location, b.CollisionRadius, b.CollisionHeight)
	case bm != nil:
		return overlapsAt(b, a.Location, a.CollisionRadius, a.CollisionHeight)
	}
	return cylindersOverlap(cylinderOf(a), cylinderOf(b))
}

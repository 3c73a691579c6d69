// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"gounreal/actor"
	"gounreal/bsp"
	"gounreal/math/vec"
)

type TraceFlags uint32

const (
	TraceWorld TraceFlags = 1 << iota
	TraceMovers
	TracePawns
	TraceOthers
	TraceZoneChanges
	TraceOnlyProjectiles

	TraceActors = TraceMovers | TracePawns | TraceOthers
	TraceAll    = TraceWorld | TraceActors
)

func (f TraceFlags) accepts(a *actor.Actor) bool {
	if f&TraceOnlyProjectiles != 0 {
		return a.IsProjectile()
	}
	switch {
	case a.IsBrush():
		return f&TraceMovers != 0
	case a.IsPawn():
		return f&TracePawns != 0
	}
	return f&TraceOthers != 0
}

func brushModel(a *actor.Actor) *bsp.Model {
	if !a.IsBrush() {
		return nil
	}
	m, _ := a.Brush.(*bsp.Model)
	return m
}

func (s *System) sweepActor(o *actor.Actor, start, end vec.Vec3, radius, height float32) (float32, vec.Vec3, bool) {
	if m := brushModel(o); m != nil {
		return sweepBrush(start, end, vec.Vec3{X: radius, Y: radius, Z: height}, m, o.Location)
	}
	return sweepCylinder(start, end, radius, height, cylinder{o.Location, o.CollisionRadius, o.CollisionHeight})
}

func (s *System) traceWorld(start, end, extent vec.Vec3, l *HitList) {
	if s.world == nil {
		return
	}
	tr := s.world.Trace(start, end, extent)
	if tr.Fraction < 1 {
		l.Append(Hit{Fraction: tr.Fraction, Normal: tr.Normal, Node: tr.Node})
	}
}

// Trace sweeps a vertical cylinder from start to end. A zero height and
// radius sweeps a point. All crossings are returned in ascending fraction
// order, world geometry first on equal fractions. self is never hit.
// With visibilityOnly only world geometry and brushes are considered.
func (s *System) Trace(self *actor.Actor, start, end vec.Vec3, height, radius float32, collideActors, collideWorld, visibilityOnly bool) HitList {
	var l HitList
	extent := vec.Vec3{X: radius, Y: radius, Z: height}
	if collideWorld {
		s.traceWorld(start, end, extent, &l)
	}
	if collideActors {
		mins, maxs := moveBounds(start, end, extent)
		s.visit(mins, maxs, func(o *actor.Actor) bool {
			if o == self || (visibilityOnly && !o.IsBrush()) {
				return true
			}
			if f, n, ok := s.sweepActor(o, start, end, radius, height); ok {
				l.Append(Hit{Fraction: f, Normal: n, Actor: o.Handle, Node: -1})
			}
			return true
		})
	}
	l.SortByFraction()
	return l
}

// TraceFirstHit returns the nearest hit accepted by flags.
func (s *System) TraceFirstHit(start, end vec.Vec3, ignore *actor.Actor, extent vec.Vec3, flags TraceFlags) Hit {
	l := s.Trace(ignore, start, end, extent.Z, extent.X, flags&(TraceActors|TraceOnlyProjectiles) != 0, flags&TraceWorld != 0, false)
	best := NoHit()
	for _, h := range l.All() {
		if !h.IsWorld() {
			o := s.arena.Get(h.Actor)
			if o == nil || !flags.accepts(o) {
				continue
			}
		}
		best = h
		break
	}
	if flags&TraceZoneChanges != 0 {
		if zh, ok := s.zoneChange(start, end); ok && zh.Fraction < best.Fraction {
			best = zh
		}
	}
	return best
}

// zoneChange finds the first point along the segment whose zone differs
// from the zone at start.
func (s *System) zoneChange(start, end vec.Vec3) (Hit, bool) {
	if s.world == nil {
		return Hit{}, false
	}
	const steps = 32
	zone := s.world.FindRegion(start, actor.Handle{}).ZoneNumber
	differs := func(t float32) bool {
		return s.world.FindRegion(vec.Lerp(start, end, t), actor.Handle{}).ZoneNumber != zone
	}
	lo := float32(0)
	for i := 1; i <= steps; i++ {
		hi := float32(i) / steps
		if !differs(hi) {
			lo = hi
			continue
		}
		for j := 0; j < 10; j++ {
			mid := (lo + hi) / 2
			if differs(mid) {
				hi = mid
			} else {
				lo = mid
			}
		}
		dir := vec.Sub(start, end).Normalize()
		return Hit{Fraction: hi, Normal: dir, Node: -1}, true
	}
	return Hit{}, false
}

// TraceAnyHit reports whether anything blocks the segment. It stops at
// the first hit found.
func (s *System) TraceAnyHit(start, end vec.Vec3, ignore *actor.Actor, collideActors, collideWorld, visibilityOnly bool) bool {
	if collideWorld && s.world != nil {
		if tr := s.world.Trace(start, end, vec.Vec3{}); tr.Fraction < 1 || tr.StartSolid {
			return true
		}
	}
	if !collideActors {
		return false
	}
	hit := false
	mins, maxs := moveBounds(start, end, vec.Vec3{})
	s.visit(mins, maxs, func(o *actor.Actor) bool {
		if o == ignore || (visibilityOnly && !o.IsBrush()) {
			return true
		}
		_, _, hit = s.sweepActor(o, start, end, 0, 0)
		return !hit
	})
	return hit
}

// TraceDecal traces a point against the world. The result is the surface
// node hit followed by the nodes coplanar to it.
func (s *System) TraceDecal(origin, direction vec.Vec3, maxDistance float32) HitList {
	var l HitList
	if s.world == nil {
		return l
	}
	end := vec.Add(origin, direction.Normalize().Scale(maxDistance))
	tr := s.world.Trace(origin, end, vec.Vec3{})
	if tr.Fraction >= 1 || tr.Node < 0 {
		return l
	}
	for _, n := range s.world.CoplanarChain(tr.Node) {
		l.Append(Hit{Fraction: tr.Fraction, Normal: tr.Normal, Node: n})
	}
	return l
}

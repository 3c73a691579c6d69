// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"slices"
	"strings"

	"gounreal/actor"
	"gounreal/math/vec"
)

// eyeHeight is the fraction of the collision height a pawn looks from.
const eyeHeight = 0.8

// FastTrace reports whether the segment from start to end is clear of
// world geometry and brushes. Other actors never block it.
func (l *Level) FastTrace(end, start vec.Vec3) bool {
	return !l.Collision.TraceAnyHit(start, end, nil, true, true, true)
}

// LineOfSightTo reports whether a can see other. The center of other is
// tried first, then the top and the bottom of its cylinder.
func (l *Level) LineOfSightTo(a, other *actor.Actor) bool {
	if a == nil || other == nil || a.DeleteMe || other.DeleteMe {
		return false
	}
	if a == other {
		return true
	}
	eye := a.Location
	if a.IsPawn() {
		eye.Z += a.CollisionHeight * eyeHeight
	}
	// a brush target would block the trace to itself
	brushes := !other.IsBrush()
	offsets := []float32{0}
	if !other.IsBrush() && other.CollisionHeight > 0 {
		h := other.CollisionHeight * eyeHeight
		offsets = append(offsets, h, -h)
	}
	for _, dz := range offsets {
		target := other.Location
		target.Z += dz
		if !l.Collision.TraceAnyHit(eye, target, a, brushes, true, true) {
			return true
		}
	}
	return false
}

// RadiusActors returns the live actors whose collision reaches into the
// upright cylinder of the given radius around location, sorted by name.
func (l *Level) RadiusActors(location vec.Vec3, radius float32) []*actor.Actor {
	var r []*actor.Actor
	for _, o := range l.Collision.CollidingActors(location, radius, radius) {
		if !o.DeleteMe {
			r = append(r, o)
		}
	}
	slices.SortFunc(r, func(a, b *actor.Actor) int {
		return strings.Compare(a.Name, b.Name)
	})
	return r
}

// FreeSpot reports whether a cylinder of the given size fits at location
// without touching the world or a blocking actor.
func (l *Level) FreeSpot(location vec.Vec3, height, radius float32) bool {
	hits := l.Collision.OverlapTestAt(location, height, radius, true, true)
	for _, h := range hits.All() {
		if h.IsWorld() {
			return false
		}
		if o := l.Arena.Get(h.Actor); o != nil && !o.DeleteMe && (o.BlockActors || o.BlockPlayers) {
			return false
		}
	}
	return true
}

// DecalNodes returns the bsp nodes a decal projected from origin along
// direction lands on, the surface hit first. It is empty when nothing is
// hit within maxDistance.
func (l *Level) DecalNodes(origin, direction vec.Vec3, maxDistance float32) []int32 {
	hits := l.Collision.TraceDecal(origin, direction, maxDistance)
	r := make([]int32, 0, hits.Len())
	for _, h := range hits.All() {
		r = append(r, h.Node)
	}
	return r
}

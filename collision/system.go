// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"log"
	"runtime/debug"

	"gounreal/actor"
	"gounreal/bsp"
	"gounreal/math/vec"
	"gounreal/ring"
)

const areaDepth = 4

type areaNode struct {
	axis     int
	dist     float32
	children [2]*areaNode
	// blocking actors and touch-only actors are kept apart
	solidActors   *ring.Ring[actor.Handle]
	triggerActors *ring.Ring[actor.Handle]
}

type link struct {
	r      *ring.Ring[actor.Handle]
	absMin vec.Vec3
	absMax vec.Vec3
}

// System answers sweep and overlap queries against the world model and
// all actors added to it.
type System struct {
	arena *actor.Arena
	world *bsp.Model
	root  *areaNode
	links map[actor.Handle]*link
}

// New builds the area tree over the bounds of world. A nil world gives an
// unbounded level without geometry.
func New(ar *actor.Arena, world *bsp.Model) *System {
	mins := vec.Vec3{X: -65536, Y: -65536, Z: -65536}
	maxs := vec.Vec3{X: 65536, Y: 65536, Z: 65536}
	if world != nil {
		mins, maxs = world.Mins(), world.Maxs()
	}
	return &System{
		arena: ar,
		world: world,
		root:  createAreaNode(0, mins, maxs),
		links: make(map[actor.Handle]*link),
	}
}

func (s *System) World() *bsp.Model {
	return s.world
}

func createAreaNode(depth int, mins, maxs vec.Vec3) *areaNode {
	an := &areaNode{
		axis: -1,
		// a 'root' ring is needed to be able to use Prev()
		solidActors:   &ring.Ring[actor.Handle]{},
		triggerActors: &ring.Ring[actor.Handle]{},
	}
	if depth == areaDepth {
		return an
	}
	size := vec.Sub(maxs, mins)
	an.axis = 0
	if size.Y > size.X {
		an.axis = 1
	}
	an.dist = 0.5 * (maxs.Idx(an.axis) + mins.Idx(an.axis))

	mins1, maxs1 := mins, maxs
	mins2, maxs2 := mins, maxs
	if an.axis == 0 {
		maxs1.X = an.dist
		mins2.X = an.dist
	} else {
		maxs1.Y = an.dist
		mins2.Y = an.dist
	}
	an.children[0] = createAreaNode(depth+1, mins2, maxs2)
	an.children[1] = createAreaNode(depth+1, mins1, maxs1)
	return an
}

func isSolid(a *actor.Actor) bool {
	return a.BlockActors || a.BlockPlayers
}

// AddToCollision links a into the area tree. Calling it for a linked actor
// relinks it with its current bounds. Actors not colliding with other
// actors are not linked.
func (s *System) AddToCollision(a *actor.Actor) {
	s.RemoveFromCollision(a)
	if a.DeleteMe || !a.CollideActors || s.arena.Get(a.Handle) != a {
		return
	}
	mins, maxs := a.Bounds()
	// movement is clipped an epsilon away from an actual edge,
	// so fully check even when bounding boxes don't quite touch
	pad := vec.Vec3{X: 1, Y: 1, Z: 1}
	mins = vec.Sub(mins, pad)
	maxs = vec.Add(maxs, pad)

	node := s.root
	for node.axis != -1 {
		if mins.Idx(node.axis) > node.dist {
			node = node.children[0]
		} else if maxs.Idx(node.axis) < node.dist {
			node = node.children[1]
		} else {
			break
		}
	}
	r := &ring.Ring[actor.Handle]{Value: a.Handle}
	if isSolid(a) {
		node.solidActors.Prev().Link(r)
	} else {
		node.triggerActors.Prev().Link(r)
	}
	s.links[a.Handle] = &link{r: r, absMin: mins, absMax: maxs}
}

// RemoveFromCollision unlinks a. It is safe to call for unlinked actors.
func (s *System) RemoveFromCollision(a *actor.Actor) {
	l, ok := s.links[a.Handle]
	if !ok {
		return
	}
	l.r.Prev().Unlink(1)
	delete(s.links, a.Handle)
}

func (s *System) IsLinked(a *actor.Actor) bool {
	_, ok := s.links[a.Handle]
	return ok
}

func boxesOverlap(amin, amax, bmin, bmax vec.Vec3) bool {
	return amin.X <= bmax.X && amin.Y <= bmax.Y && amin.Z <= bmax.Z &&
		amax.X >= bmin.X && amax.Y >= bmin.Y && amax.Z >= bmin.Z
}

// visit calls f for every live linked actor whose link box overlaps the
// query box, until f returns false. f must not link or unlink actors.
func (s *System) visit(mins, maxs vec.Vec3, f func(a *actor.Actor) bool) {
	s.visitNode(s.root, mins, maxs, f)
}

func (s *System) visitNode(an *areaNode, mins, maxs vec.Vec3, f func(a *actor.Actor) bool) bool {
	for _, root := range []*ring.Ring[actor.Handle]{an.solidActors, an.triggerActors} {
		for r := root.Next(); r != root; r = r.Next() {
			if r == nil {
				// my area got removed out from under me!
				debug.PrintStack()
				log.Panicf("collision: encountered NULL link")
			}
			a := s.arena.Get(r.Value)
			if a == nil || a.DeleteMe {
				continue
			}
			if l := s.links[a.Handle]; l != nil && boxesOverlap(mins, maxs, l.absMin, l.absMax) {
				if !f(a) {
					return false
				}
			}
		}
	}
	if an.axis == -1 {
		return true
	}
	if maxs.Idx(an.axis) > an.dist {
		if !s.visitNode(an.children[0], mins, maxs, f) {
			return false
		}
	}
	if mins.Idx(an.axis) < an.dist {
		return s.visitNode(an.children[1], mins, maxs, f)
	}
	return true
}

func moveBounds(start, end, extent vec.Vec3) (vec.Vec3, vec.Vec3) {
	mins, maxs := vec.MinMax(start, end)
	return vec.Sub(mins, extent), vec.Add(maxs, extent)
}

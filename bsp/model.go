// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"gounreal/actor"
	"gounreal/math/vec"
)

// Child values below zero are leaves. A missing front child is open space,
// a missing back child is solid.
const (
	contentsEmpty = -1
	contentsSolid = -2
)

const (
	SurfaceInvisible = 1 << iota
	SurfaceMasked
	SurfaceTranslucent
	SurfaceNoCollide
)

type Node struct {
	Plane Plane
	Front int32
	Back  int32
	// Coplanar links nodes sharing the same plane, -1 terminates.
	Coplanar int32
	Zone     [2]uint8
	Leaf     [2]int32
	Surface  int32
	// ActorList is the head of the actors linked into this node.
	ActorList actor.Handle
}

type Zone struct {
	Actor actor.Handle
}

type Surface struct {
	Normal  vec.Vec3
	Base    int32
	Flags   uint32
	Texture string
}

type Model struct {
	name     string
	Nodes    []Node
	Zones    []Zone
	Surfaces []Surface
	Points   []vec.Vec3
	Vertices []int32
	mins     vec.Vec3
	maxs     vec.Vec3
}

func (m *Model) Name() string {
	return m.name
}

func (m *Model) Mins() vec.Vec3 {
	return m.mins
}

func (m *Model) Maxs() vec.Vec3 {
	return m.maxs
}

// Bounds implements actor.Geometry for brush models.
func (m *Model) Bounds() (mins, maxs vec.Vec3) {
	return m.mins, m.maxs
}

func (m *Model) root() int32 {
	if m == nil || len(m.Nodes) == 0 {
		return contentsEmpty
	}
	return 0
}

func (m *Model) front(n *Node) int32 {
	if n.Front < 0 {
		return contentsEmpty
	}
	return n.Front
}

func (m *Model) back(n *Node) int32 {
	if n.Back < 0 {
		return contentsSolid
	}
	return n.Back
}

// ZoneActor returns the zone actor registered for number.
func (m *Model) ZoneActor(number uint8) actor.Handle {
	if int(number) >= len(m.Zones) {
		return actor.Handle{}
	}
	return m.Zones[number].Actor
}

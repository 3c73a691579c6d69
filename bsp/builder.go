// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"gounreal/actor"
	"gounreal/math/vec"
)

// Builder assembles models in code. Levels are normally produced by the
// package loader, the builder covers tests and generated levels.
type Builder struct {
	m *Model
}

func NewBuilder(name string) *Builder {
	return &Builder{m: &Model{name: name}}
}

// AddNode appends a childless node whose leaves belong to zone.
func (b *Builder) AddNode(p Plane, zone uint8) int32 {
	idx := int32(len(b.m.Nodes))
	b.m.Surfaces = append(b.m.Surfaces, Surface{Normal: p.Normal})
	b.m.Nodes = append(b.m.Nodes, Node{
		Plane:    p,
		Front:    -1,
		Back:     -1,
		Coplanar: -1,
		Zone:     [2]uint8{zone, zone},
		Leaf:     [2]int32{2 * idx, 2*idx + 1},
		Surface:  int32(len(b.m.Surfaces) - 1),
	})
	return idx
}

func (b *Builder) SetFront(node, child int32) {
	b.m.Nodes[node].Front = child
}

func (b *Builder) SetBack(node, child int32) {
	b.m.Nodes[node].Back = child
}

// LinkCoplanar appends other to the coplanar chain of node.
func (b *Builder) LinkCoplanar(node, other int32) {
	n := node
	for b.m.Nodes[n].Coplanar >= 0 {
		n = b.m.Nodes[n].Coplanar
	}
	b.m.Nodes[n].Coplanar = other
}

func (b *Builder) SetZoneActor(number uint8, h actor.Handle) {
	for len(b.m.Zones) <= int(number) {
		b.m.Zones = append(b.m.Zones, Zone{})
	}
	b.m.Zones[number].Actor = h
}

func (b *Builder) Build(mins, maxs vec.Vec3) *Model {
	m := b.m
	m.mins, m.maxs = mins, maxs
	m.Points = append(m.Points[:0], boxCorners(mins, maxs)...)
	m.Vertices = m.Vertices[:0]
	for i := range m.Points {
		m.Vertices = append(m.Vertices, int32(i))
	}
	b.m = nil
	return m
}

func boxCorners(mins, maxs vec.Vec3) []vec.Vec3 {
	r := make([]vec.Vec3, 0, 8)
	for i := 0; i < 8; i++ {
		p := mins
		if i&1 != 0 {
			p.X = maxs.X
		}
		if i&2 != 0 {
			p.Y = maxs.Y
		}
		if i&4 != 0 {
			p.Z = maxs.Z
		}
		r = append(r, p)
	}
	return r
}

// wallChain adds the six inward facing planes of a room, chained through
// their front children. The last one is the floor.
func (b *Builder) wallChain(mins, maxs vec.Vec3) (first, floor int32) {
	planes := []Plane{
		{Normal: vec.Vec3{X: 1}, Dist: mins.X},
		{Normal: vec.Vec3{X: -1}, Dist: -maxs.X},
		{Normal: vec.Vec3{Y: 1}, Dist: mins.Y},
		{Normal: vec.Vec3{Y: -1}, Dist: -maxs.Y},
		{Normal: vec.Vec3{Z: -1}, Dist: -maxs.Z},
		{Normal: vec.Vec3{Z: 1}, Dist: mins.Z},
	}
	prev := int32(-1)
	for _, p := range planes {
		n := b.AddNode(p, 0)
		if prev >= 0 {
			b.SetFront(prev, n)
		} else {
			first = n
		}
		prev = n
	}
	return first, prev
}

// zoneLeaf closes a chain with a copy of the floor plane. Its front leaf
// carries the zone, the solid behind it is the floor again.
func (b *Builder) zoneLeaf(floor int32, zone uint8) int32 {
	n := b.AddNode(b.m.Nodes[floor].Plane, zone)
	b.LinkCoplanar(floor, n)
	return n
}

// BoxRoom builds a hollow box: open inside, solid everywhere else. Points
// inside report zone, points outside report zone 0.
func BoxRoom(name string, mins, maxs vec.Vec3, zone uint8) *Model {
	b := NewBuilder(name)
	_, floor := b.wallChain(mins, maxs)
	b.SetFront(floor, b.zoneLeaf(floor, zone))
	return b.Build(mins, maxs)
}

// PoolRoom is a BoxRoom whose lower part, up to waterTop, is a separate zone.
func PoolRoom(name string, mins, maxs vec.Vec3, waterTop float32, zone, waterZone uint8) *Model {
	b := NewBuilder(name)
	_, floor := b.wallChain(mins, maxs)
	surface := b.AddNode(Plane{Normal: vec.Vec3{Z: 1}, Dist: waterTop}, zone)
	b.SetFront(floor, surface)
	b.SetBack(surface, b.zoneLeaf(floor, waterZone))
	return b.Build(mins, maxs)
}

// Box builds a solid box in local coordinates, used as brush geometry.
func Box(name string, mins, maxs vec.Vec3) *Model {
	b := NewBuilder(name)
	planes := []Plane{
		{Normal: vec.Vec3{X: 1}, Dist: maxs.X},
		{Normal: vec.Vec3{X: -1}, Dist: -mins.X},
		{Normal: vec.Vec3{Y: 1}, Dist: maxs.Y},
		{Normal: vec.Vec3{Y: -1}, Dist: -mins.Y},
		{Normal: vec.Vec3{Z: 1}, Dist: maxs.Z},
		{Normal: vec.Vec3{Z: -1}, Dist: -mins.Z},
	}
	prev := int32(-1)
	for _, p := range planes {
		n := b.AddNode(p, 0)
		if prev >= 0 {
			b.SetBack(prev, n)
		}
		prev = n
	}
	return b.Build(mins, maxs)
}

// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"gounreal/actor"
	"gounreal/math/vec"
)

// FindRegion descends the plane tree to the leaf containing p. A null zone
// actor is replaced by fallback.
func (m *Model) FindRegion(p vec.Vec3, fallback actor.Handle) actor.PointRegion {
	r := actor.PointRegion{BspLeaf: -1}
	if m != nil && len(m.Nodes) > 0 {
		idx := int32(0)
		for {
			n := &m.Nodes[idx]
			side := n.Plane.Distance(p)
			if side >= 0 && n.Front >= 0 {
				idx = n.Front
			} else if side <= 0 && n.Back >= 0 {
				idx = n.Back
			} else {
				r.ZoneNumber = n.Zone[1]
				if side >= 0 {
					r.BspLeaf = n.Leaf[0]
				} else {
					r.BspLeaf = n.Leaf[1]
				}
				break
			}
		}
		r.Zone = m.ZoneActor(r.ZoneNumber)
	}
	if r.Zone.IsNil() {
		r.Zone = fallback
	}
	return r
}

// NodeAABBOverlap classifies a box against the plane of node: -1 if it is
// completely behind, 1 if completely in front and 0 if the plane cuts it.
func (m *Model) NodeAABBOverlap(center, extents vec.Vec3, node int32) int {
	p := &m.Nodes[node].Plane
	d := p.Distance(center)
	r := p.Offset(extents)
	switch {
	case d > r:
		return 1
	case d < -r:
		return -1
	}
	return 0
}

// LinkNode returns the deepest node whose plane cuts the box or that has
// no child on the side the box is on. It returns -1 for an empty model.
func (m *Model) LinkNode(center, extents vec.Vec3) int32 {
	if m == nil || len(m.Nodes) == 0 {
		return -1
	}
	idx := int32(0)
	for {
		n := &m.Nodes[idx]
		switch m.NodeAABBOverlap(center, extents, idx) {
		case 1:
			if n.Front < 0 {
				return idx
			}
			idx = n.Front
		case -1:
			if n.Back < 0 {
				return idx
			}
			idx = n.Back
		default:
			return idx
		}
	}
}

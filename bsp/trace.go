// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"gounreal/math/vec"
)

// distEpsilon keeps the end position 1/32 unit on the near side of the
// surface to keep floating point happy.
const distEpsilon = 0.03125

type Trace struct {
	AllSolid   bool
	StartSolid bool
	Fraction   float32
	EndPos     vec.Vec3
	Normal     vec.Vec3
	// Node holding the plane that was hit, -1 if nothing was hit.
	Node int32
}

// pathStep records the side taken at a node on the way down to a leaf. The
// steps to a solid leaf bound a convex solid region.
type pathStep struct {
	node  int32
	front bool
}

type traceWork struct {
	m          *Model
	start, end vec.Vec3
	extent     vec.Vec3
	path       []pathStep
	trace      Trace
}

// Trace sweeps a box with half size extent from start to end through the
// solid parts of the tree.
func (m *Model) Trace(start, end, extent vec.Vec3) Trace {
	w := traceWork{
		m:      m,
		start:  start,
		end:    end,
		extent: extent,
		trace: Trace{
			Fraction: 1,
			EndPos:   end,
			Node:     -1,
		},
	}
	w.traceNode(m.root(), start, end)
	if w.trace.Fraction < 1 {
		w.trace.EndPos = vec.Lerp(start, end, w.trace.Fraction)
	}
	return w.trace
}

func (w *traceWork) traceNode(num int32, p1, p2 vec.Vec3) {
	if w.trace.AllSolid {
		return
	}
	switch num {
	case contentsEmpty:
		return
	case contentsSolid:
		w.clipLeaf()
		return
	}
	n := &w.m.Nodes[num]
	t1 := n.Plane.Distance(p1)
	t2 := n.Plane.Distance(p2)
	offset := n.Plane.Offset(w.extent)

	depth := len(w.path)
	if t1 >= offset && t2 >= offset {
		w.path = append(w.path, pathStep{num, true})
		w.traceNode(w.m.front(n), p1, p2)
		w.path = w.path[:depth]
		return
	}
	if t1 < -offset && t2 < -offset {
		w.path = append(w.path, pathStep{num, false})
		w.traceNode(w.m.back(n), p1, p2)
		w.path = w.path[:depth]
		return
	}
	// the swept box straddles the plane, both sides need checking
	w.path = append(w.path, pathStep{num, true})
	w.traceNode(w.m.front(n), p1, p2)
	w.path[depth] = pathStep{num, false}
	w.traceNode(w.m.back(n), p1, p2)
	w.path = w.path[:depth]
}

// clipLeaf clips the move against the convex solid region described by
// the current path.
func (w *traceWork) clipLeaf() {
	enterFrac := float32(-1)
	leaveFrac := float32(1)
	startOut := false
	getOut := false
	var clipNormal vec.Vec3
	clipNode := int32(-1)

	for _, s := range w.path {
		p := w.m.Nodes[s.node].Plane
		if s.front {
			// solid lies in front, so the outward side is the back
			p = p.Flip()
		}
		dist := p.Dist + p.Offset(w.extent)
		d1 := vec.Dot(w.start, p.Normal) - dist
		d2 := vec.Dot(w.end, p.Normal) - dist

		if d1 > 0 {
			startOut = true
		}
		if d2 > 0 {
			getOut = true
		}
		// completely in front of a face, no intersection
		if d1 > 0 && d2 >= d1 {
			return
		}
		if d1 <= 0 && d2 <= 0 {
			continue
		}
		if d1 > d2 {
			f := (d1 - distEpsilon) / (d1 - d2)
			if f > enterFrac {
				enterFrac = f
				clipNormal = p.Normal
				clipNode = s.node
			}
		} else {
			f := (d1 + distEpsilon) / (d1 - d2)
			if f < leaveFrac {
				leaveFrac = f
			}
		}
	}

	if !startOut {
		w.trace.StartSolid = true
		if !getOut {
			w.trace.AllSolid = true
			w.trace.Fraction = 0
			w.trace.Node = clipNode
		}
		return
	}
	if enterFrac < leaveFrac && enterFrac > -1 && enterFrac < w.trace.Fraction {
		if enterFrac < 0 {
			enterFrac = 0
		}
		w.trace.Fraction = enterFrac
		w.trace.Normal = clipNormal
		w.trace.Node = clipNode
	}
}

// PointContents reports whether a box with half size extent placed at p
// penetrates solid space by more than the trace epsilon.
func (m *Model) PointContents(p, extent vec.Vec3) bool {
	return m.testNode(m.root(), p, extent, nil)
}

func (m *Model) testNode(num int32, p, extent vec.Vec3, path []pathStep) bool {
	switch num {
	case contentsEmpty:
		return false
	case contentsSolid:
		for _, s := range path {
			pl := m.Nodes[s.node].Plane
			if s.front {
				pl = pl.Flip()
			}
			if pl.Distance(p)-pl.Offset(extent) > -distEpsilon {
				return false
			}
		}
		return true
	}
	n := &m.Nodes[num]
	d := n.Plane.Distance(p)
	offset := n.Plane.Offset(extent)
	if d >= offset {
		return m.testNode(m.front(n), p, extent, append(path, pathStep{num, true}))
	}
	if d < -offset {
		return m.testNode(m.back(n), p, extent, append(path, pathStep{num, false}))
	}
	return m.testNode(m.front(n), p, extent, append(path, pathStep{num, true})) ||
		m.testNode(m.back(n), p, extent, append(path, pathStep{num, false}))
}

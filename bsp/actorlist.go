// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"log"
	"runtime/debug"

	"gounreal/actor"
	"gounreal/math/vec"
)

// AddActor links a into the actor list of the node its bounding box
// selects. a must not be linked already.
func (m *Model) AddActor(ar *actor.Arena, a *actor.Actor) {
	if a.BspInfo.Linked() {
		debug.PrintStack()
		log.Panicf("AddActor: %s already linked to node %d", a.Name, a.BspInfo.Node)
	}
	mins, maxs := a.Bounds()
	center := vec.Add(mins, maxs).Scale(0.5)
	extents := vec.Sub(maxs, mins).Scale(0.5)
	idx := m.LinkNode(center, extents)
	if idx < 0 {
		return
	}
	n := &m.Nodes[idx]
	a.BspInfo = actor.BspInfo{Node: idx, Next: n.ActorList}
	if next := ar.Get(n.ActorList); next != nil {
		next.BspInfo.Prev = a.Handle
	}
	n.ActorList = a.Handle
}

// RemoveActor unlinks a. Calling it on an unlinked actor does nothing.
func (m *Model) RemoveActor(ar *actor.Arena, a *actor.Actor) {
	info := a.BspInfo
	if !info.Linked() {
		return
	}
	if prev := ar.Get(info.Prev); prev != nil {
		prev.BspInfo.Next = info.Next
	} else if int(info.Node) < len(m.Nodes) {
		m.Nodes[info.Node].ActorList = info.Next
	}
	if next := ar.Get(info.Next); next != nil {
		next.BspInfo.Prev = info.Prev
	}
	a.BspInfo = actor.BspInfo{Node: -1}
}

// NodeActors returns the actors linked into node.
func (m *Model) NodeActors(ar *actor.Arena, node int32) []*actor.Actor {
	var r []*actor.Actor
	for a := ar.Get(m.Nodes[node].ActorList); a != nil; a = ar.Get(a.BspInfo.Next) {
		r = append(r, a)
	}
	return r
}

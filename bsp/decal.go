// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

// CoplanarChain returns node followed by all nodes sharing its plane.
func (m *Model) CoplanarChain(node int32) []int32 {
	var r []int32
	for n := node; n >= 0 && int(n) < len(m.Nodes) && len(r) < len(m.Nodes); n = m.Nodes[n].Coplanar {
		r = append(r, n)
	}
	return r
}

// SPDX-License-Identifier: GPL-2.0-or-later

package actor

import (
	"gounreal/math/vec"
)

// PointRegion is the result of a zone query for a single point.
type PointRegion struct {
	Zone       Handle
	BspLeaf    int32
	ZoneNumber uint8
}

// BspInfo threads an actor into the actor list of exactly one bsp node.
// Node is -1 while unlinked.
type BspInfo struct {
	Prev Handle
	Next Handle
	Node int32
}

func (b BspInfo) Linked() bool {
	return b.Node >= 0
}

// Geometry is the collision shape of brush actors, relative to the actor
// location.
type Geometry interface {
	Bounds() (mins, maxs vec.Vec3)
}

// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"gounreal/math/vec"
)

type Plane struct {
	Normal vec.Vec3
	Dist   float32
}

// Distance returns the signed distance of p, positive in front.
func (p *Plane) Distance(v vec.Vec3) float32 {
	return vec.Dot(p.Normal, v) - p.Dist
}

// Offset is the projection of a box with half size extent onto the normal.
func (p *Plane) Offset(extent vec.Vec3) float32 {
	return vec.Dot(extent, p.Normal.Abs())
}

func (p Plane) Flip() Plane {
	return Plane{Normal: p.Normal.Scale(-1), Dist: -p.Dist}
}

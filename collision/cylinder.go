// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"github.com/chewxy/math32"

	"gounreal/bsp"
	"gounreal/math/vec"
)

// contactEpsilon keeps a blocked mover this far away from the surface,
// same as the world sweep does.
const contactEpsilon = 0.03125

type cylinder struct {
	center vec.Vec3
	radius float32
	height float32
}

func cylindersOverlap(a, b cylinder) bool {
	r := a.radius + b.radius
	h := a.height + b.height
	d := vec.Sub(a.center, b.center)
	return d.X*d.X+d.Y*d.Y < r*r && math32.Abs(d.Z) < h
}

// contactNormal points from the other cylinder towards p, which is
// relative to its center.
func contactNormal(p vec.Vec3, r, h float32) vec.Vec3 {
	horiz := math32.Sqrt(p.X*p.X + p.Y*p.Y)
	// choose the face with the smaller penetration
	if h-math32.Abs(p.Z) < r-horiz || horiz == 0 {
		if p.Z >= 0 {
			return vec.Vec3{Z: 1}
		}
		return vec.Vec3{Z: -1}
	}
	return vec.Vec3{X: p.X / horiz, Y: p.Y / horiz}
}

// sweepCylinder moves a cylinder with radius r and half height h from
// start to end against the resting cylinder o. The problem is reduced to a
// point against a cylinder of the summed dimensions.
func sweepCylinder(start, end vec.Vec3, r, h float32, o cylinder) (float32, vec.Vec3, bool) {
	R := r + o.radius
	H := h + o.height
	p0 := vec.Sub(start, o.center)
	d := vec.Sub(end, start)

	if p0.X*p0.X+p0.Y*p0.Y < R*R && math32.Abs(p0.Z) < H {
		// starting inside only blocks moves further in
		if vec.Dot(d, p0) < 0 {
			return 0, contactNormal(p0, R, H), true
		}
		return 1, vec.Vec3{}, false
	}

	tEnter, tExit := float32(-math32.MaxFloat32), float32(math32.MaxFloat32)
	zFace := false

	a := d.X*d.X + d.Y*d.Y
	c := p0.X*p0.X + p0.Y*p0.Y - R*R
	if a < 1e-12 {
		if c >= 0 {
			return 1, vec.Vec3{}, false
		}
	} else {
		b := 2 * (p0.X*d.X + p0.Y*d.Y)
		disc := b*b - 4*a*c
		if disc < 0 {
			return 1, vec.Vec3{}, false
		}
		sq := math32.Sqrt(disc)
		tEnter = (-b - sq) / (2 * a)
		tExit = (-b + sq) / (2 * a)
	}

	if math32.Abs(d.Z) < 1e-12 {
		if math32.Abs(p0.Z) >= H {
			return 1, vec.Vec3{}, false
		}
	} else {
		t0 := (-H - p0.Z) / d.Z
		t1 := (H - p0.Z) / d.Z
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tEnter {
			tEnter = t0
			zFace = true
		}
		if t1 < tExit {
			tExit = t1
		}
	}
	if tEnter >= tExit || tEnter > 1 || tExit <= 0 {
		return 1, vec.Vec3{}, false
	}
	if tEnter < 0 {
		tEnter = 0
	}

	var n vec.Vec3
	if zFace {
		n = vec.Vec3{Z: 1}
		if p0.Z < 0 {
			n.Z = -1
		}
	} else {
		p := vec.Add(p0, d.Scale(tEnter))
		n = vec.Vec3{X: p.X, Y: p.Y}.Normalize()
	}
	if speed := -vec.Dot(d, n); speed > 0 {
		tEnter -= contactEpsilon / speed
	}
	if tEnter < 0 {
		tEnter = 0
	}
	return tEnter, n, true
}

// sweepBrush moves a box through brush geometry placed at location.
// Brush rotation is not taken into account.
func sweepBrush(start, end, extent vec.Vec3, m *bsp.Model, location vec.Vec3) (float32, vec.Vec3, bool) {
	tr := m.Trace(vec.Sub(start, location), vec.Sub(end, location), extent)
	if tr.Fraction < 1 {
		return tr.Fraction, tr.Normal, true
	}
	return 1, vec.Vec3{}, false
}

// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"github.com/chewxy/math32"
)

type Vec3 struct {
	X, Y, Z float32
}

func VFromA(a [3]float32) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func (v Vec3) Idx(i int) float32 {
	switch i {
	default:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
}

// Length returns the length of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(Dot(v, v))
}

// LengthSquared returns the squared length of the vector
func (v Vec3) LengthSquared() float32 {
	return Dot(v, v)
}

// Length2D returns the length of the vector projected onto the XY plane
func (v Vec3) Length2D() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Add returns a + b
func Add(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X + b.X,
		Y: a.Y + b.Y,
		Z: a.Z + b.Z,
	}
}

// Sub returns a - b
func Sub(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X - b.X,
		Y: a.Y - b.Y,
		Z: a.Z - b.Z,
	}
}

// Scale returns the vector multiplied by the skalar s
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// Scale returns v multiplied by the skalar s
func Scale(s float32, v Vec3) Vec3 {
	return v.Scale(s)
}

// Mul returns the component wise product
func Mul(a, b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Abs returns the component wise absolute value
func (v Vec3) Abs() Vec3 {
	return Vec3{math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)}
}

// Normalize returns the normalized vector
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Dot returns a dot b
func Dot(a Vec3, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// DoublePrecDot return a dot b calculated in double precision
func DoublePrecDot(a Vec3, b Vec3) float32 {
	p := func(x, y float32) float64 {
		return float64(x) * float64(y)
	}
	return float32(p(a.X, b.X) + p(a.Y, b.Y) + p(a.Z, b.Z))
}

// Cross returns a cross b
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Lerp computes a weighted average between two points
func Lerp(a, b Vec3, frac float32) Vec3 {
	fi := 1 - frac
	return Vec3{
		fi*a.X + frac*b.X,
		fi*a.Y + frac*b.Y,
		fi*a.Z + frac*b.Z,
	}
}

// Mix returns a + (b-a)*t
func Mix(a, b Vec3, t float32) Vec3 {
	return Add(a, Sub(b, a).Scale(t))
}

// Spline evaluates a Catmull-Rom segment between p1 and p2
func Spline(t float32, p0, p1, p2, p3 Vec3) Vec3 {
	t2 := t * t
	t3 := t2 * t
	f := func(a, b, c, d float32) float32 {
		return 0.5 * ((2 * b) +
			(-a+c)*t +
			(2*a-5*b+4*c-d)*t2 +
			(-a+3*b-3*c+d)*t3)
	}
	return Vec3{
		f(p0.X, p1.X, p2.X, p3.X),
		f(p0.Y, p1.Y, p2.Y, p3.Y),
		f(p0.Z, p1.Z, p2.Z, p3.Z),
	}
}

// ProjectOnPlane removes the part of v along the plane normal n
func ProjectOnPlane(v, n Vec3) Vec3 {
	return Sub(v, n.Scale(Dot(v, n)))
}

// Reflect mirrors v at the plane with normal n
func Reflect(v, n Vec3) Vec3 {
	return Sub(v, n.Scale(2*Dot(v, n)))
}

// ClampLength limits the length of v to max
func ClampLength(v Vec3, max float32) Vec3 {
	l := v.Length()
	if l > max && l > 0 {
		return v.Scale(max / l)
	}
	return v
}

// Equal returns a == b
func Equal(a Vec3, b Vec3) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

func minmax(a, b float32) (float32, float32) {
	if a < b {
		return a, b
	}
	return b, a
}

func MinMax(a, b Vec3) (Vec3, Vec3) {
	var r, s Vec3
	r.X, s.X = minmax(a.X, b.X)
	r.Y, s.Y = minmax(a.Y, b.Y)
	r.Z, s.Z = minmax(a.Z, b.Z)
	return r, s
}

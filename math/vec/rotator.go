// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"github.com/chewxy/math32"
)

// Angles are 16 bit fixed point, 65536 units per revolution.
const (
	AngleMask  = 65535
	HalfCircle = 32768
)

type Rotator struct {
	Pitch, Yaw, Roll int32
}

func (r Rotator) Normalized() Rotator {
	return Rotator{r.Pitch & AngleMask, r.Yaw & AngleMask, r.Roll & AngleMask}
}

func (r Rotator) Add(o Rotator) Rotator {
	return Rotator{r.Pitch + o.Pitch, r.Yaw + o.Yaw, r.Roll + o.Roll}
}

func (r Rotator) Sub(o Rotator) Rotator {
	return Rotator{r.Pitch - o.Pitch, r.Yaw - o.Yaw, r.Roll - o.Roll}
}

// Scale multiplies each axis and truncates toward zero.
func (r Rotator) Scale(s float32) Rotator {
	return Rotator{
		int32(float32(r.Pitch) * s),
		int32(float32(r.Yaw) * s),
		int32(float32(r.Roll) * s),
	}
}

func (r Rotator) Equal(o Rotator) bool {
	return r.Normalized() == o.Normalized()
}

func unrToRad(a int32) float32 {
	return float32(a&AngleMask) * (math32.Pi * 2 / 65536)
}

// Vector returns the unit forward direction.
func (r Rotator) Vector() Vec3 {
	sp, cp := math32.Sincos(unrToRad(r.Pitch))
	sy, cy := math32.Sincos(unrToRad(r.Yaw))
	return Vec3{cp * cy, cp * sy, sp}
}

// RotateVector applies yaw only; brushes and trailers rotate around Z.
func (r Rotator) RotateVector(v Vec3) Vec3 {
	s, c := math32.Sincos(unrToRad(r.Yaw))
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

func abs32(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}

// TurnToShortest moves current toward desired along the shorter arc by at
// most |rate| units.
func TurnToShortest(current, desired, rate int32) int32 {
	if rate == 0 {
		return current & AngleMask
	}
	step := abs32(rate)
	result := current & AngleMask
	current = result
	desired &= AngleMask
	if current > desired {
		if current-desired < HalfCircle {
			result -= min(current-desired, step)
		} else {
			result += min(desired+65536-current, step)
		}
	} else {
		if desired-current < HalfCircle {
			result += min(desired-current, step)
		} else {
			result -= min(current+65536-desired, step)
		}
	}
	return result & AngleMask
}

// TurnToFixed moves current toward desired in the direction given by the
// sign of rate, never reversing.
func TurnToFixed(current, desired, rate int32) int32 {
	current &= AngleMask
	desired &= AngleMask
	switch {
	case rate > 0:
		d := (desired - current) & AngleMask
		return (current + min(d, rate)) & AngleMask
	case rate < 0:
		d := (current - desired) & AngleMask
		return (current - min(d, -rate)) & AngleMask
	}
	return current
}

// SPDX-License-Identifier: GPL-2.0-or-later

package math

import "cmp"

// Clamp limits val to [lo,hi].
func Clamp[T cmp.Ordered](lo, val, hi T) T {
	return min(max(val, lo), hi)
}

// Lerp computes a weighted average between a and b
func Lerp(a, b, frac float32) float32 {
	return a + (b-a)*frac
}

// SmoothStep eases t in [0,1] with zero slope at both ends.
func SmoothStep(t float32) float32 {
	t = Clamp(0, t, 1)
	return t * t * (3 - 2*t)
}

// Spline evaluates a Catmull-Rom segment between p1 and p2.
func Spline(t, p0, p1, p2, p3 float32) float32 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

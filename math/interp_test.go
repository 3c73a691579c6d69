// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"
)

func TestClamp(t *testing.T) {
	for _, tc := range []struct {
		lo, v, hi, want float32
	}{
		{1, 0, 10, 1},
		{1, 100, 10, 10},
		{1, 5, 10, 5},
		{0, 1, 1, 1},
	} {
		if got := Clamp(tc.lo, tc.v, tc.hi); got != tc.want {
			t.Errorf("Clamp(%v,%v,%v) = %v want %v", tc.lo, tc.v, tc.hi, got, tc.want)
		}
	}
	if got := Clamp(10.0, 1.0, 1000.0); got != 10 {
		t.Errorf("Clamp(10,1,1000) = %v want 10", got)
	}
}

func TestLerp(t *testing.T) {
	for _, tc := range []struct {
		a, b, f, want float32
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.25, 2.5},
		{-4, 4, 0.5, 0},
	} {
		if got := Lerp(tc.a, tc.b, tc.f); got != tc.want {
			t.Errorf("Lerp(%v,%v,%v) = %v want %v", tc.a, tc.b, tc.f, got, tc.want)
		}
	}
}

func TestSmoothStep(t *testing.T) {
	for _, tc := range []struct {
		in, want float32
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	} {
		if got := SmoothStep(tc.in); got != tc.want {
			t.Errorf("SmoothStep(%v) = %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestSplineEndpoints(t *testing.T) {
	if got := Spline(0, 0, 1, 2, 3); got != 1 {
		t.Errorf("Spline(0) = %v want 1", got)
	}
	if got := Spline(1, 0, 1, 2, 3); got != 2 {
		t.Errorf("Spline(1) = %v want 2", got)
	}
	// evenly spaced points give a straight line
	if got := Spline(0.5, 0, 1, 2, 3); got != 1.5 {
		t.Errorf("Spline(0.5) = %v want 1.5", got)
	}
}

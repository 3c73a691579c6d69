// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"testing"
)

var (
	NULL = Vec3{}
)

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	for _, v := range []Vec3{{2, 2, 1}, {2, 1, 2}, {1, 2, 2}} {
		if v.Length() != 3 {
			t.Errorf("%v Length is not 3", v)
		}
	}
	v := Vec3{3, 4, 12}
	if got := v.Length2D(); got != 5 {
		t.Errorf("%v Length2D = %v want 5", v, got)
	}
}

func TestAdd(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Add(NULL, v)
	if v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got = Add(v, v)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Add(%v,%v) = %v want %v", v, v, got, want)
	}
}

func TestSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Sub(v, v)
	if got != NULL {
		t.Errorf("Sub(%v,%v) = %v want %v", v, v, got, NULL)
	}
	v2 := Vec3{9, 7, 5}
	got = Sub(v2, v)
	want := Vec3{8, 5, 2}
	if got != want {
		t.Errorf("Sub(%v,%v) = %v want %v", v2, v, got, want)
	}
}

func TestNormalize(t *testing.T) {
	if got := NULL.Normalize(); got != NULL {
		t.Errorf("Normalize(%v) = %v", NULL, got)
	}
	v := Vec3{0, 0, -5}
	if got, want := v.Normalize(), (Vec3{0, 0, -1}); got != want {
		t.Errorf("Normalize(%v) = %v want %v", v, got, want)
	}
}

func TestProjectOnPlane(t *testing.T) {
	v := Vec3{10, 0, -10}
	n := Vec3{0, 0, 1}
	if got, want := ProjectOnPlane(v, n), (Vec3{10, 0, 0}); got != want {
		t.Errorf("ProjectOnPlane(%v,%v) = %v want %v", v, n, got, want)
	}
	if got, want := Reflect(v, n), (Vec3{10, 0, 10}); got != want {
		t.Errorf("Reflect(%v,%v) = %v want %v", v, n, got, want)
	}
}

func TestClampLength(t *testing.T) {
	v := Vec3{0, 30, 40}
	if got, want := ClampLength(v, 5), (Vec3{0, 3, 4}); got != want {
		t.Errorf("ClampLength(%v,5) = %v want %v", v, got, want)
	}
	if got := ClampLength(v, 100); got != v {
		t.Errorf("ClampLength(%v,100) = %v want %v", v, got, v)
	}
}

func TestSplineEndpoints(t *testing.T) {
	p0, p1, p2, p3 := Vec3{0, 0, 0}, Vec3{1, 2, 0}, Vec3{2, 4, 8}, Vec3{3, 0, 0}
	if got := Spline(0, p0, p1, p2, p3); got != p1 {
		t.Errorf("Spline(0) = %v want %v", got, p1)
	}
	if got := Spline(1, p0, p1, p2, p3); got != p2 {
		t.Errorf("Spline(1) = %v want %v", got, p2)
	}
}

func TestEqual(t *testing.T) {
	v1 := Vec3{2, 3, 4}
	v2 := Vec3{4, 3, 2}
	if !Equal(v1, v1) {
		t.Errorf("Vectors are not considered equal to them self")
	}
	if Equal(v1, v2) {
		t.Errorf("Vectors %v and %v are considered equal", v1, v2)
	}
}

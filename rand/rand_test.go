// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	"testing"

	"gounreal/math/vec"
)

func TestDeterministic(t *testing.T) {
	a := New(7)
	b := New(7)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("Intn() step %d = %v want %v", i, x, y)
		}
	}
	a.Reseed(7)
	c := New(7)
	if x, y := a.Float32(), c.Float32(); x != y {
		t.Errorf("Float32() after Reseed = %v want %v", x, y)
	}
}

func TestRanges(t *testing.T) {
	s := New(42)
	mins := vec.Vec3{X: -10, Y: 5, Z: 0}
	maxs := vec.Vec3{X: 10, Y: 6, Z: 100}
	for i := 0; i < 1000; i++ {
		if f := s.Float32(); f < 0 || f >= 1 {
			t.Fatalf("Float32() = %v want [0,1)", f)
		}
		if n := s.Intn(3); n < 0 || n >= 3 {
			t.Fatalf("Intn(3) = %v", n)
		}
		p := s.InBox(mins, maxs)
		if p.X < mins.X || p.X > maxs.X || p.Y < mins.Y || p.Y > maxs.Y || p.Z < mins.Z || p.Z > maxs.Z {
			t.Fatalf("InBox() = %v outside %v %v", p, mins, maxs)
		}
		if r := s.Heading(); r.Yaw < 0 || r.Yaw > vec.AngleMask || r.Pitch != 0 {
			t.Fatalf("Heading() = %v", r)
		}
	}
}

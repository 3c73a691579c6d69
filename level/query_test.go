// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"testing"

	"gounreal/actor"
	"gounreal/math/vec"
)

func TestFastTrace(t *testing.T) {
	for _, tc := range []struct {
		name       string
		door       bool
		start, end vec.Vec3
		want       bool
	}{
		{"open", false, vec.Vec3{X: -500, Z: 100}, vec.Vec3{X: 500, Z: 100}, true},
		{"pawn in the way", false, vec.Vec3{X: -500, Z: 23}, vec.Vec3{X: 500, Z: 23}, true},
		{"door", true, vec.Vec3{X: -500, Z: 100}, vec.Vec3{X: 500, Z: 100}, false},
		{"floor", false, vec.Vec3{Z: 100}, vec.Vec3{Z: -100}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l := newRoom(t, nil)
			spawn(t, l, actor.PawnClass, "p", vec.Vec3{Z: 23})
			if tc.door {
				newDoor(t, l, vec.Vec3{Z: 100})
			}
			if got := l.FastTrace(tc.end, tc.start); got != tc.want {
				t.Errorf("FastTrace(%v, %v) = %v want %v", tc.end, tc.start, got, tc.want)
			}
		})
	}
}

func TestLineOfSightTo(t *testing.T) {
	for _, tc := range []struct {
		name string
		door vec.Vec3
		want bool
	}{
		{"clear", vec.Vec3{Y: 500, Z: 50}, true},
		{"wall", vec.Vec3{Z: 50}, false},
		// the door hides the center but not the top
		{"over", vec.Vec3{Z: -15}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l := newRoom(t, nil)
			a := spawn(t, l, actor.PawnClass, "a", vec.Vec3{X: -500, Z: 23})
			b := spawn(t, l, actor.PawnClass, "b", vec.Vec3{X: 500, Z: 23})
			newDoor(t, l, tc.door)
			if got := l.LineOfSightTo(a, b); got != tc.want {
				t.Errorf("LineOfSightTo() = %v want %v", got, tc.want)
			}
			if got := l.LineOfSightTo(b, a); got != tc.want {
				t.Errorf("LineOfSightTo(reverse) = %v want %v", got, tc.want)
			}
		})
	}
	l := newRoom(t, nil)
	a := spawn(t, l, actor.PawnClass, "a", vec.Vec3{Z: 23})
	if !l.LineOfSightTo(a, a) {
		t.Errorf("LineOfSightTo(self) = false want true")
	}
	if l.LineOfSightTo(a, nil) {
		t.Errorf("LineOfSightTo(nil) = true want false")
	}
}

func TestRadiusActors(t *testing.T) {
	l := newRoom(t, nil)
	spawn(t, l, actor.PawnClass, "b", vec.Vec3{X: 100, Z: 23})
	spawn(t, l, actor.PawnClass, "a", vec.Vec3{Z: 23})
	spawn(t, l, actor.PawnClass, "far", vec.Vec3{X: 500, Z: 23})
	gone := spawn(t, l, actor.DecorationClass, "gone", vec.Vec3{Y: 50, Z: 23})
	l.Destroy(gone)

	got := l.RadiusActors(vec.Vec3{Z: 23}, 150)
	var names []string
	for _, a := range got {
		names = append(names, a.Name)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("RadiusActors() = %v want [a b]", names)
	}
	if got := l.RadiusActors(vec.Vec3{X: -500, Z: 500}, 50); len(got) != 0 {
		t.Errorf("RadiusActors(empty) = %v want none", got)
	}
}

func TestFreeSpot(t *testing.T) {
	l := newRoom(t, nil)
	spawn(t, l, actor.PawnClass, "p", vec.Vec3{Z: 23})
	trig := spawn(t, l, actor.TriggerClass, "t", vec.Vec3{X: 300, Z: 100})
	for _, tc := range []struct {
		name string
		loc  vec.Vec3
		want bool
	}{
		{"open", vec.Vec3{X: -300, Z: 200}, true},
		{"floor", vec.Vec3{X: -300, Z: 10}, false},
		{"pawn", vec.Vec3{X: 10, Z: 23}, false},
		{"trigger", trig.Location, true},
	} {
		if got := l.FreeSpot(tc.loc, 22, 22); got != tc.want {
			t.Errorf("FreeSpot(%s) = %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestDecalNodes(t *testing.T) {
	l := newRoom(t, nil)
	got := l.DecalNodes(vec.Vec3{Z: 500}, vec.Vec3{Z: -1}, 1000)
	if len(got) == 0 {
		t.Fatalf("DecalNodes(down) = %v want the floor", got)
	}
	if got := l.DecalNodes(vec.Vec3{Z: 500}, vec.Vec3{Z: -1}, 100); len(got) != 0 {
		t.Errorf("DecalNodes(short) = %v want none", got)
	}
}

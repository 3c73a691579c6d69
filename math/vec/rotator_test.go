// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"testing"

	"pgregory.net/rapid"
)

func TestTurnToShortest(t *testing.T) {
	for _, tc := range []struct {
		cur, want, rate, res int32
	}{
		{0, 1000, 100, 100},
		{0, 1000, 5000, 1000},
		{0, 65000, 100, 65436}, // wraps backwards
		{65000, 200, 100, 65100},
		{500, 400, 1000, 400},
		{123, 456, 0, 123},
		{0, 1000, -100, 100}, // sign ignored
	} {
		if got := TurnToShortest(tc.cur, tc.want, tc.rate); got != tc.res {
			t.Errorf("TurnToShortest(%v,%v,%v) = %v want %v", tc.cur, tc.want, tc.rate, got, tc.res)
		}
	}
}

func TestTurnToFixed(t *testing.T) {
	for _, tc := range []struct {
		cur, want, rate, res int32
	}{
		{0, 65000, 100, 100},    // positive never goes the short way back
		{0, 65000, -100, 65436}, // negative turns backwards
		{65500, 100, 100, 64},
		{0, 50, 100, 50},
		{0, 50, -100, 65436},
		{7, 9, 0, 7},
	} {
		if got := TurnToFixed(tc.cur, tc.want, tc.rate); got != tc.res {
			t.Errorf("TurnToFixed(%v,%v,%v) = %v want %v", tc.cur, tc.want, tc.rate, got, tc.res)
		}
	}
}

func TestTurnConverges(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cur := rapid.Int32Range(0, AngleMask).Draw(t, "cur")
		want := rapid.Int32Range(0, AngleMask).Draw(t, "want")
		rate := rapid.Int32Range(1000, 8000).Draw(t, "rate")
		fixed := rapid.Bool().Draw(t, "fixed")
		for i := 0; i < 70; i++ {
			if fixed {
				cur = TurnToFixed(cur, want, rate)
			} else {
				cur = TurnToShortest(cur, want, rate)
			}
			if cur < 0 || cur > AngleMask {
				t.Fatalf("angle %v out of range", cur)
			}
		}
		if cur != want {
			t.Fatalf("did not converge: %v want %v", cur, want)
		}
	})
}

func TestRotatorVector(t *testing.T) {
	r := Rotator{Yaw: 16384}
	v := r.Vector()
	if v.X > 1e-6 || v.X < -1e-6 || v.Y < 0.999999 {
		t.Errorf("Rotator%v.Vector() = %v want (0,1,0)", r, v)
	}
}

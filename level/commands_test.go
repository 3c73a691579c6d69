// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"fmt"
	"strings"
	"testing"

	"gounreal/actor"
	"gounreal/cbuf"
	"gounreal/cmd"
	"gounreal/conlog"
	"gounreal/math/vec"
)

func captureConsole(t *testing.T) *strings.Builder {
	t.Helper()
	var b strings.Builder
	f := func(format string, v ...interface{}) { fmt.Fprintf(&b, format, v...) }
	conlog.SetPrintf(f)
	conlog.SetSavePrintf(f)
	t.Cleanup(func() {
		conlog.SetPrintf(nil)
		conlog.SetSavePrintf(nil)
	})
	return &b
}

func TestCommands(t *testing.T) {
	out := captureConsole(t)
	l := newRoom(t, nil)
	c := cmd.New()
	if err := l.RegisterCommands(c); err != nil {
		t.Fatalf("RegisterCommands() = %v", err)
	}
	lift := spawn(t, l, actor.MoverClass, "lift", vec.Vec3{Z: 500})
	lift.KeyPos[1] = vec.Vec3{Z: 100}

	tests := []struct {
		line string
		err  bool
		out  string
	}{
		{"summon Pawn 0 0 100", false, "spawned Pawn0"},
		{"summon Pawn 0 0 -500", true, ""},
		{"summon Nothing", true, ""},
		{"get pawn0 GroundSpeed", false, "Pawn0.GroundSpeed = 320"},
		{"set_actor pawn0 GroundSpeed 100", false, ""},
		{"get pawn0 GroundSpeed", false, "= 100"},
		{"get pawn0 Nonsense", true, ""},
		{"get nobody GroundSpeed", true, ""},
		{"physics pawn0 Falling", false, ""},
		{"physics pawn0 Sideways", true, ""},
		{"actors", false, "3 actors"},
		{"actor pawn0", false, "PHYS_Falling"},
		{"trace 0 -500 100 0 500 100", false, "Pawn0 at"},
		{"trace 300 0 500 300 0 -100", false, "world at"},
		{"mover lift 1", false, ""},
		{"mover lift 9", true, ""},
		{"radius 0 0 100 50", false, "Pawn0"},
		{"radius 0 0", false, "radius <x y z>"},
		{"los pawn0 lift", false, "Pawn0 sees lift"},
		{"los pawn0 nobody", true, ""},
		{"decal 0 0 500 0 0 -1 1000", false, "nodes"},
		{"decal 0 0 500 0 0 1 10", false, "no surface"},
		{"set_actor pawn0 Physics Walking", false, ""},
		{"actor pawn0", false, "PHYS_Walking"},
		{"destroy pawn0", false, ""},
		{"destroy LevelInfo0", false, "can not be destroyed"},
	}
	for _, tt := range tests {
		out.Reset()
		ok, err := c.Execute(nil, cbuf.Parse(tt.line))
		if !ok && !tt.err {
			t.Errorf("%q: Execute() = %v, %v", tt.line, ok, err)
			continue
		}
		if (err != nil) != tt.err {
			t.Errorf("%q: err = %v want error %v", tt.line, err, tt.err)
		}
		if !strings.Contains(out.String(), tt.out) {
			t.Errorf("%q: output %q does not contain %q", tt.line, out.String(), tt.out)
		}
	}
	if l.FindActor("pawn0") != nil {
		t.Errorf("pawn0 was not destroyed")
	}
	if !lift.Interpolating || lift.KeyNum != 1 {
		t.Errorf("mover was not started")
	}
}

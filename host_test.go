// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"gounreal/actor"
)

func TestHostFrame(t *testing.T) {
	h := &host{registry: prometheus.NewRegistry()}
	if err := h.init(); err != nil {
		t.Fatalf("init() = %v", err)
	}
	defer h.lua.Close()
	n := h.level.Arena.Len()

	cfg := filepath.Join(t.TempDir(), "test.cfg")
	if err := os.WriteFile(cfg, []byte("summon Trigger 0 0 200\nwait\nquit\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	h.cbuf.AddText("exec " + cfg + "\n")
	h.frame(0.05)
	if h.level.FindActor("Trigger0") == nil {
		t.Errorf("summoned trigger not found")
	}
	if h.quit {
		t.Errorf("quit ran before the wait")
	}
	h.frame(0.05)
	if !h.quit {
		t.Errorf("quit did not run")
	}
	if got := h.level.Arena.Len(); got != n+1 {
		t.Errorf("Arena.Len() = %v want %v", got, n+1)
	}
	if h.time.FrameCount() != 2 {
		t.Errorf("FrameCount() = %v want 2", h.time.FrameCount())
	}
	cfgOut := filepath.Join(t.TempDir(), "out.cfg")
	h.cbuf.AddText("host_maxfps 50\nwriteconfig " + cfgOut + "\n")
	h.frame(0.05)
	b, err := os.ReadFile(cfgOut)
	if err != nil {
		t.Fatalf("writeconfig: %v", err)
	}
	if !strings.Contains(string(b), "host_maxfps \"50\"") {
		t.Errorf("writeconfig wrote %q, want host_maxfps 50", b)
	}

	mfs, err := h.registry.Gather()
	if err != nil || len(mfs) == 0 {
		t.Errorf("Gather() = %v metric families, %v", len(mfs), err)
	}
}

func newTestHost(t *testing.T) *host {
	t.Helper()
	h := &host{registry: prometheus.NewRegistry()}
	if err := h.init(); err != nil {
		t.Fatalf("init() = %v", err)
	}
	t.Cleanup(h.lua.Close)
	return h
}

func TestScatter(t *testing.T) {
	h := newTestHost(t)
	n := h.level.Arena.Len()
	if err := h.scatter(20, 7); err != nil {
		t.Fatalf("scatter() = %v", err)
	}
	if got := h.level.Arena.Len(); got != n+20 {
		t.Fatalf("Arena.Len() = %v want %v", got, n+20)
	}
	var spawned []*actor.Actor
	for _, a := range h.level.Actors {
		if a != nil && (a.Class == actor.PawnClass || a.Class == actor.DecorationClass) {
			spawned = append(spawned, a)
		}
	}
	for i, a := range spawned {
		if a.Physics != actor.PhysFalling {
			t.Errorf("%s.Physics = %v want %v", a.Name, a.Physics, actor.PhysFalling)
		}
		for _, b := range spawned[i+1:] {
			if h.level.Collision.IsOverlapping(a, b) {
				t.Errorf("%s overlaps %s", a.Name, b.Name)
			}
		}
	}
}

func TestWriteMetrics(t *testing.T) {
	h := newTestHost(t)
	h.frame(0.05)
	var b strings.Builder
	if err := h.writeMetrics(&b); err != nil {
		t.Fatalf("writeMetrics() = %v", err)
	}
	for _, want := range []string{
		"# TYPE level_tick_duration_seconds histogram",
		"level_tick_duration_seconds_count 1",
		"level_actor_count ",
	} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("writeMetrics() = %q does not contain %q", b.String(), want)
		}
	}
}

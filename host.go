// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"gounreal/actor"
	"gounreal/alias"
	"gounreal/bsp"
	"gounreal/cbuf"
	"gounreal/cmd"
	"gounreal/commandline"
	"gounreal/conlog"
	"gounreal/cvar"
	"gounreal/cvars"
	"gounreal/events"
	"gounreal/gametime"
	"gounreal/level"
	"gounreal/math/vec"
	"gounreal/rand"
	"gounreal/script"
)

var (
	roomMins = vec.Vec3{X: -1024, Y: -1024, Z: 0}
	roomMaxs = vec.Vec3{X: 1024, Y: 1024, Z: 512}

	scatterMins = vec.Vec3{X: roomMins.X + 64, Y: roomMins.Y + 64, Z: 64}
	scatterMaxs = vec.Vec3{X: roomMaxs.X - 64, Y: roomMaxs.Y - 64, Z: roomMaxs.Z - 64}
)

const (
	roomZone  = 1
	waterZone = 2
	waterTop  = 128

	scatterTries = 8
)

type host struct {
	level    *level.Level
	lua      *script.LuaDispatcher
	commands *cmd.Commands
	aliases  *alias.Aliases
	cbuf     cbuf.CommandBuffer
	time     gametime.GameTime
	registry *prometheus.Registry
	quit     bool
}

func run() error {
	conlog.SetPrintf(func(format string, v ...interface{}) { fmt.Printf(format, v...) })
	conlog.SetSavePrintf(func(format string, v ...interface{}) { fmt.Printf(format, v...) })
	if commandline.Developer() {
		cvars.Developer.SetValue(float32(commandline.DeveloperLevel()))
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	h := &host{registry: prometheus.NewRegistry()}
	if err := h.init(); err != nil {
		return err
	}
	defer h.lua.Close()

	h.time.Reset()
	for frames := commandline.Frames(); !h.quit && (frames == 0 || h.time.FrameCount() < frames); {
		if !h.time.UpdateTime(commandline.TimeDemo()) {
			time.Sleep(time.Millisecond)
			continue
		}
		h.frame(float32(h.time.FrameTime()))
	}
	if commandline.Metrics() == "text" {
		if err := h.writeMetrics(os.Stdout); err != nil {
			slog.Error("metrics", "err", err)
		}
	}
	return nil
}

func (h *host) init() error {
	var model *bsp.Model
	if commandline.Pool() {
		model = bsp.PoolRoom("pool", roomMins, roomMaxs, waterTop, roomZone, waterZone)
	} else {
		model = bsp.BoxRoom("room", roomMins, roomMaxs, roomZone)
	}
	h.level = level.New(model, level.WithRegisterer(h.registry))

	h.lua = script.NewLuaDispatcher()
	h.lua.Bind(h.level)
	if f := commandline.Script(); f != "" {
		if err := h.lua.DoFile(f); err != nil {
			return err
		}
	}
	h.level.SetDispatcher(traceEvents(h.lua))

	if commandline.Pool() {
		w, err := h.level.Spawn(actor.WaterZoneClass, "Water", vec.Vec3{Z: waterTop / 2}, vec.Rotator{}, nil)
		if err != nil {
			return err
		}
		if err := h.level.SetZoneInfo(waterZone, w); err != nil {
			return err
		}
	}
	if err := h.scatter(commandline.Actors(), uint32(commandline.Seed())); err != nil {
		return err
	}

	h.commands = cmd.New()
	h.aliases = alias.New()
	for _, err := range []error{
		h.aliases.Register(h.commands),
		cvar.RegisterCommands(h.commands),
		h.level.RegisterCommands(h.commands),
		h.commands.Add("quit", h.quitCmd),
		h.commands.Add("echo", echo),
		h.commands.Add("exec", h.exec),
		h.commands.Add("writeconfig", writeConfig),
	} {
		if err != nil {
			return err
		}
	}
	h.cbuf.SetCommandExecutors([]cbuf.Efunc{h.commands.Execute, h.aliases.Execute, cvar.Execute})
	if f := commandline.Exec(); f != "" {
		h.cbuf.AddText("exec " + f + "\n")
	}
	return nil
}

// traceEvents logs every script event while sv_scriptevents is set.
func traceEvents(d events.Dispatcher) events.Dispatcher {
	return events.DispatcherFunc(func(target *actor.Actor, name events.Name, args ...events.Value) (events.Value, error) {
		if cvars.ScriptEvents.Bool() {
			slog.Debug("event", "actor", target.Name, "event", string(name), "args", len(args))
		}
		return d.CallEvent(target, name, args...)
	})
}

// scatter spawns n pawns and decorations at random places in the air,
// avoiding spots that are already taken.
func (h *host) scatter(n int, seed uint32) error {
	g := rand.New(seed)
	for i := 0; i < n; i++ {
		c := actor.DecorationClass
		if g.Intn(2) == 0 {
			c = actor.PawnClass
		}
		size := actor.New(c, "")
		loc := g.InBox(scatterMins, scatterMaxs)
		// give up on a free spot after a few tries, spawning still works
		for try := 0; try < scatterTries && !h.level.FreeSpot(loc, size.CollisionHeight, size.CollisionRadius); try++ {
			loc = g.InBox(scatterMins, scatterMaxs)
		}
		a, err := h.level.Spawn(c, "", loc, g.Heading(), nil)
		if err != nil {
			return errors.Wrap(err, "scatter")
		}
		h.level.SetPhysics(a, actor.PhysFalling)
	}
	return nil
}

func (h *host) frame(dt float32) {
	h.cbuf.Execute()
	if err := h.level.Tick(dt); err != nil {
		slog.Warn("frame", "frame", h.time.FrameCount(), "err", err)
	}
	h.time.FrameIncrease()
}

func (h *host) quitCmd(_ cbuf.Arguments) error {
	h.quit = true
	return nil
}

func echo(a cbuf.Arguments) error {
	conlog.Printf("%s\n", a.ArgumentString())
	return nil
}

func (h *host) exec(a cbuf.Arguments) error {
	args := a.Args()
	if len(args) != 2 {
		conlog.Printf("exec <filename> : execute a script file\n")
		return nil
	}
	b, err := os.ReadFile(args[1].String())
	if err != nil {
		return errors.Wrap(err, "exec")
	}
	conlog.Printf("execing %s\n", args[1].String())
	h.cbuf.InsertText(string(b))
	return nil
}

func writeConfig(a cbuf.Arguments) error {
	args := a.Args()
	if len(args) != 2 {
		conlog.Printf("writeconfig <filename> : save archived cvars\n")
		return nil
	}
	f, err := os.Create(args[1].String())
	if err != nil {
		return errors.Wrap(err, "writeconfig")
	}
	if err := cvar.WriteArchived(f); err != nil {
		f.Close()
		return errors.Wrap(err, "writeconfig")
	}
	conlog.Printf("wrote %s\n", args[1].String())
	return f.Close()
}

// writeMetrics writes the level metrics in the Prometheus text format.
func (h *host) writeMetrics(w io.Writer) error {
	mfs, err := h.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return errors.Wrap(err, "encode metrics")
		}
	}
	return nil
}

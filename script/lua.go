// SPDX-License-Identifier: GPL-2.0-or-later

// Package script runs actor events in Lua.
//
// Handlers live in global tables named after the actor or one of its
// classes, looked up in that order:
//
//	Pawn = {}
//	function Pawn.Landed(self, normal) self:set("GroundSpeed", 100) end
package script

import (
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"

	"gounreal/actor"
	"gounreal/events"
	"gounreal/math/vec"
)

// LevelAPI is the part of a level exposed to scripts.
type LevelAPI interface {
	FindActor(name string) *actor.Actor
	Destroy(a *actor.Actor) bool
	SetPhysics(a *actor.Actor, p actor.Physics)
	SetProperty(a *actor.Actor, name, text string) error
	FastTrace(end, start vec.Vec3) bool
	LineOfSightTo(a, other *actor.Actor) bool
	RadiusActors(location vec.Vec3, radius float32) []*actor.Actor
}

type LuaDispatcher struct {
	l     *lua.LState
	level LevelAPI
}

var _ events.Dispatcher = (*LuaDispatcher)(nil)

func NewLuaDispatcher() *LuaDispatcher {
	l := lua.NewState()
	l.Options.IncludeGoStackTrace = true
	d := &LuaDispatcher{l: l}
	d.registerActorType()
	d.registerLevel()
	return d
}

// Bind connects the level functions. Until then they are no-ops.
func (d *LuaDispatcher) Bind(level LevelAPI) {
	d.level = level
}

func (d *LuaDispatcher) Close() {
	d.l.Close()
}

func (d *LuaDispatcher) DoString(src string) error {
	if err := d.l.DoString(src); err != nil {
		return errors.Wrap(err, "lua")
	}
	return nil
}

func (d *LuaDispatcher) DoFile(path string) error {
	if err := d.l.DoFile(path); err != nil {
		return errors.Wrapf(err, "lua file %s", path)
	}
	return nil
}

func (d *LuaDispatcher) handler(target *actor.Actor, name events.Name) *lua.LFunction {
	lookup := func(table string) *lua.LFunction {
		t, ok := d.l.GetGlobal(table).(*lua.LTable)
		if !ok {
			return nil
		}
		f, _ := d.l.GetField(t, string(name)).(*lua.LFunction)
		return f
	}
	if target == nil {
		return nil
	}
	if f := lookup(target.Name); f != nil {
		return f
	}
	for c := target.Class; c != nil; c = c.Super {
		if f := lookup(c.Name); f != nil {
			return f
		}
	}
	return nil
}

// CallEvent calls the Lua handler for name on target, if there is one.
func (d *LuaDispatcher) CallEvent(target *actor.Actor, name events.Name, args ...events.Value) (events.Value, error) {
	f := d.handler(target, name)
	if f == nil {
		return events.Void, nil
	}
	top := d.l.GetTop()
	defer d.l.SetTop(top)
	largs := make([]lua.LValue, 0, len(args)+1)
	largs = append(largs, d.actorValue(target))
	for _, a := range args {
		largs = append(largs, d.toLua(a))
	}
	if err := d.l.CallByParam(lua.P{Fn: f, NRet: 1, Protect: true}, largs...); err != nil {
		return events.Void, errors.Wrapf(err, "%s.%s", target.Name, name)
	}
	return d.fromLua(d.l.Get(-1)), nil
}

// checkVector reads three numbers starting at argument n.
func checkVector(l *lua.LState, n int) vec.Vec3 {
	return vec.Vec3{
		X: float32(l.CheckNumber(n)),
		Y: float32(l.CheckNumber(n + 1)),
		Z: float32(l.CheckNumber(n + 2)),
	}
}

func vectorTable(l *lua.LState, v vec.Vec3) *lua.LTable {
	t := l.NewTable()
	t.RawSetString("x", lua.LNumber(v.X))
	t.RawSetString("y", lua.LNumber(v.Y))
	t.RawSetString("z", lua.LNumber(v.Z))
	return t
}

func (d *LuaDispatcher) toLua(v events.Value) lua.LValue {
	switch v.Kind() {
	case events.KindBool:
		return lua.LBool(v.ToBool())
	case events.KindInt, events.KindFloat:
		return lua.LNumber(v.Float())
	case events.KindVector:
		return vectorTable(d.l, v.Vector())
	case events.KindRotator:
		r := v.Rotator()
		t := d.l.NewTable()
		t.RawSetString("pitch", lua.LNumber(r.Pitch))
		t.RawSetString("yaw", lua.LNumber(r.Yaw))
		t.RawSetString("roll", lua.LNumber(r.Roll))
		return t
	case events.KindObject:
		return d.actorValue(v.Object())
	case events.KindName:
		return lua.LString(v.Name())
	}
	return lua.LNil
}

func (d *LuaDispatcher) fromLua(v lua.LValue) events.Value {
	switch lv := v.(type) {
	case lua.LBool:
		return events.Bool(bool(lv))
	case lua.LNumber:
		return events.Float(float32(lv))
	case lua.LString:
		return events.NameValue(string(lv))
	case *lua.LUserData:
		if a, ok := lv.Value.(*actor.Actor); ok {
			return events.Object(a)
		}
	}
	return events.Void
}

// SPDX-License-Identifier: GPL-2.0-or-later

package script

import (
	lua "github.com/yuin/gopher-lua"

	"gounreal/actor"
)

const actorTypeName = "actor"

func (d *LuaDispatcher) actorValue(a *actor.Actor) lua.LValue {
	if a == nil {
		return lua.LNil
	}
	ud := d.l.NewUserData()
	ud.Value = a
	d.l.SetMetatable(ud, d.l.GetTypeMetatable(actorTypeName))
	return ud
}

// checkActor returns nil for actors destroyed meanwhile.
func checkActor(l *lua.LState, n int) *actor.Actor {
	ud := l.CheckUserData(n)
	a, ok := ud.Value.(*actor.Actor)
	if !ok {
		l.ArgError(n, "actor expected")
		return nil
	}
	if a.DeleteMe {
		return nil
	}
	return a
}

func (d *LuaDispatcher) registerActorType() {
	mt := d.l.NewTypeMetatable(actorTypeName)
	d.l.SetField(mt, "__index", d.l.SetFuncs(d.l.NewTable(), map[string]lua.LGFunction{
		"name": func(l *lua.LState) int {
			a := checkActor(l, 1)
			if a == nil {
				l.Push(lua.LNil)
				return 1
			}
			l.Push(lua.LString(a.Name))
			return 1
		},
		"get": func(l *lua.LState) int {
			a := checkActor(l, 1)
			if a == nil {
				l.Push(lua.LNil)
				return 1
			}
			s, err := actor.GetProperty(a, l.CheckString(2))
			if err != nil {
				l.RaiseError("%v", err)
				return 0
			}
			l.Push(lua.LString(s))
			return 1
		},
		"set": func(l *lua.LState) int {
			a := checkActor(l, 1)
			if a == nil {
				return 0
			}
			name, text := l.CheckString(2), l.ToString(3)
			var err error
			if d.level != nil {
				err = d.level.SetProperty(a, name, text)
			} else {
				err = actor.SetProperty(a, name, text)
			}
			if err != nil {
				l.RaiseError("%v", err)
			}
			return 0
		},
		"location": func(l *lua.LState) int {
			a := checkActor(l, 1)
			if a == nil {
				l.Push(lua.LNil)
				return 1
			}
			l.Push(vectorTable(l, a.Location))
			return 1
		},
		"velocity": func(l *lua.LState) int {
			a := checkActor(l, 1)
			if a == nil {
				l.Push(lua.LNil)
				return 1
			}
			l.Push(vectorTable(l, a.Velocity))
			return 1
		},
		"setVelocity": func(l *lua.LState) int {
			if a := checkActor(l, 1); a != nil {
				a.Velocity = checkVector(l, 2)
			}
			return 0
		},
		"setPhysics": func(l *lua.LState) int {
			a := checkActor(l, 1)
			p, err := actor.ParsePhysics(l.CheckString(2))
			if err != nil {
				l.RaiseError("%v", err)
				return 0
			}
			if a != nil && d.level != nil {
				d.level.SetPhysics(a, p)
			}
			return 0
		},
		"destroy": func(l *lua.LState) int {
			a := checkActor(l, 1)
			if a == nil || d.level == nil {
				l.Push(lua.LTrue)
				return 1
			}
			l.Push(lua.LBool(d.level.Destroy(a)))
			return 1
		},
		"lineOfSight": func(l *lua.LState) int {
			a, other := checkActor(l, 1), checkActor(l, 2)
			if d.level == nil {
				l.Push(lua.LFalse)
				return 1
			}
			l.Push(lua.LBool(d.level.LineOfSightTo(a, other)))
			return 1
		},
		"deleted": func(l *lua.LState) int {
			l.Push(lua.LBool(checkActor(l, 1) == nil))
			return 1
		},
	}))
	d.l.SetField(mt, "__tostring", d.l.NewFunction(func(l *lua.LState) int {
		ud := l.CheckUserData(1)
		a, _ := ud.Value.(*actor.Actor)
		l.Push(lua.LString(a.String()))
		return 1
	}))
	d.l.SetField(mt, "__eq", d.l.NewFunction(func(l *lua.LState) int {
		a, _ := l.CheckUserData(1).Value.(*actor.Actor)
		b, _ := l.CheckUserData(2).Value.(*actor.Actor)
		l.Push(lua.LBool(a == b))
		return 1
	}))
}

func (d *LuaDispatcher) registerLevel() {
	d.l.SetGlobal("level", d.l.SetFuncs(d.l.NewTable(), map[string]lua.LGFunction{
		"find": func(l *lua.LState) int {
			if d.level == nil {
				l.Push(lua.LNil)
				return 1
			}
			l.Push(d.actorValue(d.level.FindActor(l.CheckString(1))))
			return 1
		},
		// fastTrace(ex, ey, ez, sx, sy, sz)
		"fastTrace": func(l *lua.LState) int {
			end, start := checkVector(l, 1), checkVector(l, 4)
			if d.level == nil {
				l.Push(lua.LTrue)
				return 1
			}
			l.Push(lua.LBool(d.level.FastTrace(end, start)))
			return 1
		},
		// radiusActors(x, y, z, radius) returns an array of actors
		"radiusActors": func(l *lua.LState) int {
			loc, r := checkVector(l, 1), float32(l.CheckNumber(4))
			t := l.NewTable()
			if d.level != nil {
				for _, a := range d.level.RadiusActors(loc, r) {
					t.Append(d.actorValue(a))
				}
			}
			l.Push(t)
			return 1
		},
	}))
}

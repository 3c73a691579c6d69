// SPDX-License-Identifier: GPL-2.0-or-later

package events

import (
	"fmt"

	"gounreal/actor"
	"gounreal/math/vec"
)

type Kind uint8

const (
	KindVoid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindVector
	KindRotator
	KindObject
	KindName
)

// Value is an argument or result of a script call.
type Value struct {
	kind Kind
	b    bool
	i    int32
	f    float32
	v    vec.Vec3
	r    vec.Rotator
	o    *actor.Actor
	s    string
}

var Void = Value{}

func Bool(b bool) Value           { return Value{kind: KindBool, b: b} }
func Int(i int32) Value           { return Value{kind: KindInt, i: i} }
func Float(f float32) Value       { return Value{kind: KindFloat, f: f} }
func Vector(v vec.Vec3) Value     { return Value{kind: KindVector, v: v} }
func Rotator(r vec.Rotator) Value { return Value{kind: KindRotator, r: r} }
func Object(a *actor.Actor) Value { return Value{kind: KindObject, o: a} }
func NameValue(s string) Value    { return Value{kind: KindName, s: s} }

func (v Value) Kind() Kind {
	return v.kind
}

// ToBool converts the result of an event into the intent it carries.
func (v Value) ToBool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindVector:
		return !v.v.IsZero()
	case KindRotator:
		return v.r != vec.Rotator{}
	case KindObject:
		return v.o != nil
	case KindName:
		return v.s != "" && v.s != "None"
	}
	return false
}

func (v Value) Int() int32 {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return int32(v.f)
	case KindBool:
		if v.b {
			return 1
		}
	}
	return 0
}

func (v Value) Float() float32 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindInt:
		return float32(v.i)
	}
	return 0
}

func (v Value) Vector() vec.Vec3 {
	return v.v
}

func (v Value) Rotator() vec.Rotator {
	return v.r
}

func (v Value) Object() *actor.Actor {
	return v.o
}

func (v Value) Name() string {
	return v.s
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindInt:
		return fmt.Sprint(v.i)
	case KindFloat:
		return fmt.Sprint(v.f)
	case KindVector:
		return actor.FormatVector(v.v)
	case KindRotator:
		return fmt.Sprintf("(Pitch=%d,Yaw=%d,Roll=%d)", v.r.Pitch, v.r.Yaw, v.r.Roll)
	case KindObject:
		return v.o.String()
	case KindName:
		return v.s
	}
	return "Void"
}

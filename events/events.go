// SPDX-License-Identifier: GPL-2.0-or-later

// Package events defines the contract between the simulation and the
// script layer: event names, argument values and the dispatcher.
package events

import (
	"gounreal/actor"
)

//go:generate go run go.uber.org/mock/mockgen -destination=./mocks/dispatcher_mock.go -package=mocks . Dispatcher

// Dispatcher calls script events synchronously. A missing handler is not
// an error, it returns Void. The call may reenter the simulation, so the
// caller has to revalidate every actor it holds afterwards.
type Dispatcher interface {
	CallEvent(target *actor.Actor, name Name, args ...Value) (Value, error)
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(target *actor.Actor, name Name, args ...Value) (Value, error)

func (f DispatcherFunc) CallEvent(target *actor.Actor, name Name, args ...Value) (Value, error) {
	return f(target, name, args...)
}

// Nop handles no events.
type Nop struct{}

func (Nop) CallEvent(*actor.Actor, Name, ...Value) (Value, error) {
	return Void, nil
}

type Name string

const (
	Spawned        Name = "Spawned"
	Destroyed      Name = "Destroyed"
	Expired        Name = "Expired"
	Tick           Name = "Tick"
	Timer          Name = "Timer"
	Touch          Name = "Touch"
	UnTouch        Name = "UnTouch"
	Bump           Name = "Bump"
	HitWall        Name = "HitWall"
	Landed         Name = "Landed"
	Falling        Name = "Falling"
	FellOutOfWorld Name = "FellOutOfWorld"
	ZoneChange     Name = "ZoneChange"
	FootZoneChange Name = "FootZoneChange"
	HeadZoneChange Name = "HeadZoneChange"
	ActorEntered   Name = "ActorEntered"
	ActorLeaving   Name = "ActorLeaving"
	EncroachingOn  Name = "EncroachingOn"
	EncroachedBy   Name = "EncroachedBy"
	Attach         Name = "Attach"
	Detach         Name = "Detach"
	BaseChange     Name = "BaseChange"
	InterpolateEnd Name = "InterpolateEnd"
	EndedRotation  Name = "EndedRotation"
	AnimEnd        Name = "AnimEnd"
	GainedChild    Name = "GainedChild"
	LostChild      Name = "LostChild"
)

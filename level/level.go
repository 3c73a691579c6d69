// SPDX-License-Identifier: GPL-2.0-or-later

// Package level runs the simulation of one map: the actor list, the
// physics modes, the move protocol and the zone bookkeeping.
package level

import (
	"fmt"
	"log"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"gounreal/actor"
	"gounreal/bsp"
	"gounreal/collision"
	"gounreal/conlog"
	"gounreal/events"
	"gounreal/math/vec"
)

type Level struct {
	ID    uuid.UUID
	Arena *actor.Arena
	// Actors is the tick order. Destroyed actors leave a nil slot until
	// the end of the frame.
	Actors    []*actor.Actor
	Model     *bsp.Model
	Collision *collision.System
	// Info is the LevelInfo actor. It is the fallback zone and stands in
	// for "no real base" when an actor rests on world geometry.
	Info        *actor.Actor
	TimeSeconds float32

	dispatcher events.Dispatcher
	log        *slog.Logger
	metrics    *metrics
	warnings   rate.Sometimes

	ticked   bool
	inTick   bool
	frameErr error
	serial   map[*actor.Class]int
}

type Option func(*Level)

func WithDispatcher(d events.Dispatcher) Option {
	return func(l *Level) { l.SetDispatcher(d) }
}

func WithLogger(lg *slog.Logger) Option {
	return func(l *Level) { l.log = lg }
}

// WithRegisterer selects where the level metrics are registered. By
// default every level uses its own registry.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(l *Level) { l.metrics = newMetrics(r) }
}

// New creates a level over model, which may be nil for a level without
// geometry.
func New(model *bsp.Model, opts ...Option) *Level {
	ar := actor.NewArena()
	l := &Level{
		ID:         uuid.Must(uuid.NewV7()),
		Arena:      ar,
		Model:      model,
		Collision:  collision.New(ar, model),
		dispatcher: events.Nop{},
		warnings:   rate.Sometimes{Interval: time.Second},
		serial:     make(map[*actor.Class]int),
	}
	for _, o := range opts {
		o(l)
	}
	if l.log == nil {
		l.log = slog.Default()
	}
	l.log = l.log.With("level", l.ID.String())
	if l.metrics == nil {
		l.metrics = newMetrics(prometheus.NewRegistry())
	}

	info := actor.New(actor.LevelInfoClass, "LevelInfo0")
	l.insert(info)
	l.Info = info
	l.InitActorZone(info)
	return l
}

// SetDispatcher replaces the script collaborator.
func (l *Level) SetDispatcher(d events.Dispatcher) {
	if d == nil {
		d = events.Nop{}
	}
	l.dispatcher = d
}

func (l *Level) insert(a *actor.Actor) {
	l.Arena.Insert(a)
	a.Index = len(l.Actors)
	l.Actors = append(l.Actors, a)
	l.metrics.actors.Set(float64(l.Arena.Len()))
}

func (l *Level) nextName(c *actor.Class) string {
	n := l.serial[c]
	l.serial[c] = n + 1
	return fmt.Sprintf("%s%d", c.Name, n)
}

// callEvent dispatches a script event. Failures are logged and the first
// one of the frame is returned by Tick. The target may be destroyed when
// this returns.
func (l *Level) callEvent(target *actor.Actor, name events.Name, args ...events.Value) events.Value {
	if target == nil || (target.DeleteMe && name != events.Destroyed) {
		return events.Void
	}
	l.metrics.events.WithLabelValues(string(name)).Inc()
	v, err := l.dispatcher.CallEvent(target, name, args...)
	if err != nil {
		l.log.Error("script event failed", "actor", target.Name, "event", string(name), "err", err)
		if l.frameErr == nil {
			l.frameErr = err
		}
		return events.Void
	}
	return v
}

func (l *Level) warnf(format string, v ...any) {
	l.warnings.Do(func() {
		conlog.DWarning(format, v...)
	})
}

// get resolves h, treating actors pending deletion as gone.
func (l *Level) get(h actor.Handle) *actor.Actor {
	a := l.Arena.Get(h)
	if a == nil || a.DeleteMe {
		return nil
	}
	return a
}

// FindActor returns the live actor with the given name, ignoring case.
func (l *Level) FindActor(name string) *actor.Actor {
	for _, a := range l.Actors {
		if a != nil && !a.DeleteMe && strings.EqualFold(a.Name, name) {
			return a
		}
	}
	return nil
}

// Spawn creates an actor of class c. An empty name is replaced by a
// generated one. Spawning an actor that collides with the world inside
// solid geometry fails.
func (l *Level) Spawn(c *actor.Class, name string, location vec.Vec3, rotation vec.Rotator, owner *actor.Actor) (*actor.Actor, error) {
	if c == nil {
		return nil, errors.New("spawn: no class")
	}
	if name == "" {
		name = l.nextName(c)
	} else if l.FindActor(name) != nil {
		return nil, errors.Errorf("spawn: actor %q already exists", name)
	}
	a := actor.New(c, name)
	a.Location = location
	a.OldLocation = location
	a.Rotation = rotation
	a.DesiredRotation = rotation
	a.BasePos = location
	a.BaseRot = rotation
	a.OldPos = location
	a.OldRot = rotation
	// due for the running frame, or for the next one outside of Tick
	a.Ticked = l.ticked != l.inTick
	if a.CollideWorld && a.Brush == nil && l.Model != nil && l.Model.PointContents(location, a.Extent()) {
		return nil, errors.Errorf("spawn %s: %s is inside world geometry", name, actor.FormatVector(location))
	}

	l.insert(a)
	if owner != nil && !owner.DeleteMe {
		a.Owner = owner.Handle
		owner.AddChild(a.Handle)
	}
	l.InitActorZone(a)
	l.link(a)

	l.callEvent(a, events.Spawned)
	if o := l.get(a.Owner); o != nil && !a.DeleteMe {
		l.callEvent(o, events.GainedChild, events.Object(a))
	}
	if !a.DeleteMe {
		l.updateTouches(a)
	}
	if a.DeleteMe {
		return nil, errors.Errorf("spawn %s: destroyed while spawning", name)
	}
	l.log.Debug("spawned", "actor", a.Name, "class", c.Name)
	return a, nil
}

// Destroy removes a from the level. It returns false for actors that
// cannot be destroyed. Destroying an actor twice succeeds without any
// further side effect.
func (l *Level) Destroy(a *actor.Actor) bool {
	if a == nil {
		return false
	}
	if a.DeleteMe {
		return true
	}
	if a.Static || a == l.Info {
		return false
	}
	if a.Index < 0 || a.Index >= len(l.Actors) || l.Actors[a.Index] != a {
		debug.PrintStack()
		log.Panicf("Destroy: %s has no valid actor index (%d)", a.Name, a.Index)
	}
	a.DeleteMe = true
	l.callEvent(a, events.Destroyed)

	for _, h := range a.Touching {
		if o := l.Arena.Get(h); o != nil {
			l.UnTouch(a, o)
		}
	}
	// actors standing on a lose their base
	for _, o := range l.Actors {
		if o == nil || o.DeleteMe || o.Base != a.Handle {
			continue
		}
		l.SetBase(o, nil, true)
		if !o.DeleteMe && o.Physics == actor.PhysWalking {
			l.SetPhysics(o, actor.PhysFalling)
		}
	}
	l.SetBase(a, nil, false)

	if o := l.Arena.Get(a.Owner); o != nil {
		o.RemoveChild(a.Handle)
		l.callEvent(o, events.LostChild, events.Object(a))
	}
	for _, h := range a.Children {
		if c := l.Arena.Get(h); c != nil && c.Owner == a.Handle {
			c.Owner = actor.Handle{}
		}
	}
	a.Children = nil

	l.unlink(a)
	l.Actors[a.Index] = nil
	a.Index = -1
	l.Arena.Release(a.Handle)
	l.metrics.actors.Set(float64(l.Arena.Len()))
	l.log.Debug("destroyed", "actor", a.Name)
	return true
}

// SetOwner changes the owner of a, notifying both owners.
func (l *Level) SetOwner(a, owner *actor.Actor) {
	if a == nil || a.DeleteMe {
		return
	}
	if old := l.get(a.Owner); old != nil {
		if old == owner {
			return
		}
		old.RemoveChild(a.Handle)
		a.Owner = actor.Handle{}
		l.callEvent(old, events.LostChild, events.Object(a))
	}
	if owner == nil || owner.DeleteMe || a.DeleteMe {
		return
	}
	a.Owner = owner.Handle
	owner.AddChild(a.Handle)
	l.callEvent(owner, events.GainedChild, events.Object(a))
}

// SetPhysics switches the physics mode. Modes that leave the ground drop
// the current base.
func (l *Level) SetPhysics(a *actor.Actor, p actor.Physics) {
	if a == nil || a.DeleteMe || a.Physics == p {
		return
	}
	a.Physics = p
	switch p {
	case actor.PhysFalling, actor.PhysSwimming, actor.PhysFlying, actor.PhysProjectile, actor.PhysInterpolating, actor.PhysTrailer:
		if !a.Base.IsNil() {
			l.SetBase(a, nil, true)
		}
	case actor.PhysNone:
		a.Interpolating = false
	}
}

// Relink refreshes collision, bsp and zone data after a was changed
// behind the level's back, for example by a property write.
func (l *Level) Relink(a *actor.Actor) {
	if a == nil || a.DeleteMe {
		return
	}
	l.unlink(a)
	l.link(a)
	l.UpdateActorZone(a)
}

// SetProperty writes a named property of a. Physics goes through
// SetPhysics so a base is dropped like it is for any other mode change,
// everything else is relinked afterwards.
func (l *Level) SetProperty(a *actor.Actor, name, text string) error {
	if a == nil || a.DeleteMe {
		return errors.New("actor is gone")
	}
	if strings.EqualFold(name, "Physics") {
		p, err := actor.ParsePhysics(strings.TrimSpace(text))
		if err != nil {
			return err
		}
		l.SetPhysics(a, p)
		return nil
	}
	if err := actor.SetProperty(a, name, text); err != nil {
		return err
	}
	l.Relink(a)
	return nil
}

// SetLocation teleports a. It fails if a collides with the world and the
// destination is inside solid geometry.
func (l *Level) SetLocation(a *actor.Actor, location vec.Vec3) bool {
	if a == nil || a.DeleteMe {
		return false
	}
	if a.CollideWorld && a.Brush == nil && l.Model != nil && l.Model.PointContents(location, a.Extent()) {
		return false
	}
	l.relocate(a, location)
	a.JustTeleported = true
	l.updateTouches(a)
	return !a.DeleteMe
}

// relocate moves a without any collision query.
func (l *Level) relocate(a *actor.Actor, location vec.Vec3) {
	l.unlink(a)
	a.Location = location
	l.link(a)
	l.UpdateActorZone(a)
}

func (l *Level) unlink(a *actor.Actor) {
	l.Collision.RemoveFromCollision(a)
	if l.Model != nil {
		l.Model.RemoveActor(l.Arena, a)
	}
}

func (l *Level) link(a *actor.Actor) {
	l.Collision.AddToCollision(a)
	l.UpdateBspInfo(a)
}

// MoverGoTo starts moving the mover m towards key frame key.
func (l *Level) MoverGoTo(m *actor.Actor, key uint8) error {
	if m == nil || !m.IsMover() {
		return errors.Errorf("%v is not a mover", m)
	}
	if int(key) >= len(m.KeyPos) {
		return errors.Errorf("mover %s: key %d out of range", m.Name, key)
	}
	m.OldPos = m.Location
	m.OldRot = m.Rotation
	m.PrevKeyNum = m.KeyNum
	m.KeyNum = key
	m.PhysAlpha = 0
	m.PhysRate = 1
	if m.MoveTime > 0 {
		m.PhysRate = 1 / m.MoveTime
	}
	m.Interpolating = true
	return nil
}

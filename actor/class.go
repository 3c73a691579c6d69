// SPDX-License-Identifier: GPL-2.0-or-later

package actor

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"gounreal/math/vec"
)

// Capability replaces class hierarchy downcasts. A class carries the union
// of its own and all super class capabilities.
type Capability uint32

const (
	CapPawn Capability = 1 << iota
	CapPlayerPawn
	CapProjectile
	CapDecoration
	CapBrush
	CapMover
	CapZoneInfo
	CapWaterZone
	CapLevelInfo
	CapInterpolationPoint
	CapTrigger
)

type Class struct {
	Name  string
	Super *Class
	Caps  Capability
	// Defaults is applied after the defaults of all super classes.
	Defaults func(a *Actor)
}

func (c *Class) Has(cp Capability) bool {
	return c != nil && c.Caps&cp == cp
}

// IsA reports whether c is the named class or derived from it.
func (c *Class) IsA(name string) bool {
	for ; c != nil; c = c.Super {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func (c *Class) applyDefaults(a *Actor) {
	if c == nil {
		return
	}
	c.Super.applyDefaults(a)
	if c.Defaults != nil {
		c.Defaults(a)
	}
}

var classes = map[string]*Class{}

// RegisterClass adds c to the class table. The capabilities of the super
// class are inherited.
func RegisterClass(c *Class) error {
	k := strings.ToLower(c.Name)
	if _, ok := classes[k]; ok {
		return errors.Errorf("class %s already registered", c.Name)
	}
	if c.Super != nil {
		c.Caps |= c.Super.Caps
	}
	classes[k] = c
	return nil
}

func MustRegisterClass(c *Class) *Class {
	if err := RegisterClass(c); err != nil {
		panic(err)
	}
	return c
}

func FindClass(name string) (*Class, error) {
	c, ok := classes[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown class %q", name)
	}
	return c, nil
}

func ClassNames() []string {
	r := make([]string, 0, len(classes))
	for _, c := range classes {
		r = append(r, c.Name)
	}
	sort.Strings(r)
	return r
}

var (
	ActorClass = MustRegisterClass(&Class{
		Name: "Actor",
		Defaults: func(a *Actor) {
			a.Movable = true
			a.CollisionRadius = 22
			a.CollisionHeight = 22
			a.MaxStepHeight = 25
			a.DrawScale = 1
			a.AnimRate = 0
		},
	})
	PawnClass = MustRegisterClass(&Class{
		Name:  "Pawn",
		Super: ActorClass,
		Caps:  CapPawn,
		Defaults: func(a *Actor) {
			a.CollideActors = true
			a.CollideWorld = true
			a.BlockActors = true
			a.BlockPlayers = true
			a.GroundSpeed = 320
			a.WaterSpeed = 200
			a.AirSpeed = 320
			a.AccelRate = 500
			a.RotationRate = vec.Rotator{Pitch: 4096, Yaw: 50000, Roll: 3072}
		},
	})
	PlayerPawnClass = MustRegisterClass(&Class{
		Name:  "PlayerPawn",
		Super: PawnClass,
		Caps:  CapPlayerPawn,
		Defaults: func(a *Actor) {
			a.GroundSpeed = 400
			a.AirSpeed = 400
			a.WaterSpeed = 300
			a.AccelRate = 2048
		},
	})
	ProjectileClass = MustRegisterClass(&Class{
		Name:  "Projectile",
		Super: ActorClass,
		Caps:  CapProjectile,
		Defaults: func(a *Actor) {
			a.CollideActors = true
			a.CollideWorld = true
			a.CollisionRadius = 0
			a.CollisionHeight = 0
			a.MaxSpeed = 2000
			a.Physics = PhysProjectile
		},
	})
	DecorationClass = MustRegisterClass(&Class{
		Name:  "Decoration",
		Super: ActorClass,
		Caps:  CapDecoration,
		Defaults: func(a *Actor) {
			a.CollideActors = true
			a.CollideWorld = true
			a.BlockActors = true
			a.BlockPlayers = true
		},
	})
	BrushClass = MustRegisterClass(&Class{
		Name:  "Brush",
		Super: ActorClass,
		Caps:  CapBrush,
		Defaults: func(a *Actor) {
			a.Static = true
			a.CollisionRadius = 0
			a.CollisionHeight = 0
		},
	})
	MoverClass = MustRegisterClass(&Class{
		Name:  "Mover",
		Super: BrushClass,
		Caps:  CapMover,
		Defaults: func(a *Actor) {
			a.Static = false
			a.CollideActors = true
			a.BlockActors = true
			a.BlockPlayers = true
			a.Physics = PhysMovingBrush
			a.MoverGlideType = GlideByTime
			a.MoveTime = 1
		},
	})
	ZoneInfoClass = MustRegisterClass(&Class{
		Name:     "ZoneInfo",
		Super:    ActorClass,
		Caps:     CapZoneInfo,
		Defaults: zoneDefaults,
	})
	WaterZoneClass = MustRegisterClass(&Class{
		Name:  "WaterZone",
		Super: ZoneInfoClass,
		Caps:  CapWaterZone,
		Defaults: func(a *Actor) {
			a.Zone.WaterZone = true
			a.Zone.FluidFriction = 2.4
			a.Zone.TerminalVelocity = 250
		},
	})
	LevelInfoClass = MustRegisterClass(&Class{
		Name:  "LevelInfo",
		Super: ZoneInfoClass,
		Caps:  CapLevelInfo,
		Defaults: func(a *Actor) {
			a.Static = true
		},
	})
	InterpolationPointClass = MustRegisterClass(&Class{
		Name:  "InterpolationPoint",
		Super: ActorClass,
		Caps:  CapInterpolationPoint,
		Defaults: func(a *Actor) {
			a.RateModifier = 1
		},
	})
	TriggerClass = MustRegisterClass(&Class{
		Name:  "Trigger",
		Super: ActorClass,
		Caps:  CapTrigger,
		Defaults: func(a *Actor) {
			a.CollideActors = true
			a.CollisionRadius = 40
			a.CollisionHeight = 40
		},
	})
)

func zoneDefaults(a *Actor) {
	a.Static = true
	a.Zone = ZoneProperties{
		Gravity:          vec.Vec3{Z: -950},
		GroundFriction:   8,
		FluidFriction:    1.2,
		TerminalVelocity: 2500,
	}
}

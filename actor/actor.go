// SPDX-License-Identifier: GPL-2.0-or-later

package actor

import (
	"gounreal/math/vec"
)

// MaxTouching is the capacity of the touch arrays. Touching a fifth actor
// silently fails.
const MaxTouching = 4

type MoverGlideType uint8

const (
	MoveByTime MoverGlideType = iota
	GlideByTime
)

// ZoneProperties is only meaningful on zone info actors.
type ZoneProperties struct {
	Gravity          vec.Vec3
	GroundFriction   float32
	FluidFriction    float32
	TerminalVelocity float32
	WaterZone        bool
	Number           uint8
}

type Actor struct {
	Name   string
	Class  *Class
	Handle Handle
	// Index into Level.Actors, -1 after removal and before spawn.
	Index int
	Tag   string

	Location     vec.Vec3
	OldLocation  vec.Vec3
	Velocity     vec.Vec3
	Acceleration vec.Vec3
	Rotation     vec.Rotator

	DesiredRotation vec.Rotator
	RotationRate    vec.Rotator

	Physics         Physics
	CollisionRadius float32
	CollisionHeight float32
	DrawScale       float32
	// Brush actors collide with Brush instead of the cylinder.
	Brush Geometry

	Static           bool
	Movable          bool
	CollideActors    bool
	CollideWorld     bool
	BlockActors      bool
	BlockPlayers     bool
	Bounce           bool
	FixedRotationDir bool
	RotateToDesired  bool
	JustTeleported   bool
	IsWalking        bool
	Bobbing          bool
	Interpolating    bool
	DeleteMe         bool
	Hidden           bool
	// Ticked is compared against the level's frame parity.
	Ticked bool

	Touching       [MaxTouching]Handle
	TouchEventSent uint8

	Base          Handle
	StandingCount int
	Owner         Handle
	Children      []Handle

	Region     PointRegion
	FootRegion PointRegion
	HeadRegion PointRegion
	BspInfo    BspInfo

	GroundSpeed   float32
	WaterSpeed    float32
	AirSpeed      float32
	AccelRate     float32
	MaxSpeed      float32
	MaxStepHeight float32

	Zone ZoneProperties

	// interpolation, Target is the current InterpolationPoint
	Target       Handle
	PhysAlpha    float32
	PhysRate     float32
	PathPosition int32
	RateModifier float32
	SkipNextPath bool
	PrevPath     Handle
	NextPath     Handle

	// movers
	KeyPos         [8]vec.Vec3
	KeyRot         [8]vec.Rotator
	KeyNum         uint8
	PrevKeyNum     uint8
	BasePos        vec.Vec3
	BaseRot        vec.Rotator
	OldPos         vec.Vec3
	OldRot         vec.Rotator
	MoverGlideType MoverGlideType
	MoveTime       float32

	// trailers
	PrePivot            vec.Vec3
	TrailerPrePivot     bool
	TrailerSameRotation bool

	AnimSequence string
	AnimFrame    float32
	AnimRate     float32
	AnimMinRate  float32
	AnimLast     float32
	AnimLoop     bool
	AnimFinished bool

	TimerRate    float32
	TimerCounter float32
	TimerLoop    bool
	LifeSpan     float32
}

// New creates an unlinked actor with the class defaults applied.
func New(c *Class, name string) *Actor {
	a := &Actor{
		Name:    name,
		Class:   c,
		Index:   -1,
		BspInfo: BspInfo{Node: -1},
	}
	c.applyDefaults(a)
	return a
}

func (a *Actor) IsPawn() bool               { return a.Class.Has(CapPawn) }
func (a *Actor) IsPlayerPawn() bool         { return a.Class.Has(CapPlayerPawn) }
func (a *Actor) IsProjectile() bool         { return a.Class.Has(CapProjectile) }
func (a *Actor) IsDecoration() bool         { return a.Class.Has(CapDecoration) }
func (a *Actor) IsBrush() bool              { return a.Class.Has(CapBrush) }
func (a *Actor) IsMover() bool              { return a.Class.Has(CapMover) }
func (a *Actor) IsZoneInfo() bool           { return a.Class.Has(CapZoneInfo) }
func (a *Actor) IsLevelInfo() bool          { return a.Class.Has(CapLevelInfo) }
func (a *Actor) IsInterpolationPoint() bool { return a.Class.Has(CapInterpolationPoint) }

// Blocks reports whether hit stops a move of a. World geometry is
// represented by a nil hit actor.
func (a *Actor) Blocks(hit *Actor) bool {
	if hit == nil {
		return a.CollideWorld || a.BlockActors || a.BlockPlayers
	}
	if a.IsPlayerPawn() || a.IsProjectile() || hit.IsPlayerPawn() || hit.IsProjectile() {
		return hit.BlockPlayers && a.BlockPlayers
	}
	return hit.BlockActors && a.BlockActors
}

// Extent is the half size of the collision box.
func (a *Actor) Extent() vec.Vec3 {
	return vec.Vec3{X: a.CollisionRadius, Y: a.CollisionRadius, Z: a.CollisionHeight}
}

// Bounds returns the world space bounding box.
func (a *Actor) Bounds() (mins, maxs vec.Vec3) {
	if a.Brush != nil {
		mi, ma := a.Brush.Bounds()
		return vec.Add(a.Location, mi), vec.Add(a.Location, ma)
	}
	e := a.Extent()
	return vec.Sub(a.Location, e), vec.Add(a.Location, e)
}

// TouchSlot returns the slot holding h or -1.
func (a *Actor) TouchSlot(h Handle) int {
	for i, t := range a.Touching {
		if t == h {
			return i
		}
	}
	return -1
}

// FreeTouchSlot returns the first empty slot or -1 if the array is full.
func (a *Actor) FreeTouchSlot() int {
	return a.TouchSlot(Handle{})
}

func (a *Actor) TouchSent(i int) bool {
	return a.TouchEventSent&(1<<uint(i)) != 0
}

func (a *Actor) SetTouchSent(i int, sent bool) {
	if sent {
		a.TouchEventSent |= 1 << uint(i)
	} else {
		a.TouchEventSent &^= 1 << uint(i)
	}
}

func (a *Actor) AddChild(h Handle) {
	for _, c := range a.Children {
		if c == h {
			return
		}
	}
	a.Children = append(a.Children, h)
}

func (a *Actor) RemoveChild(h Handle) bool {
	for i, c := range a.Children {
		if c == h {
			a.Children = append(a.Children[:i], a.Children[i+1:]...)
			return true
		}
	}
	return false
}

func (a *Actor) String() string {
	if a == nil {
		return "None"
	}
	return a.Name
}

// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"github.com/chewxy/math32"

	"gounreal/actor"
	"gounreal/collision"
	"gounreal/events"
	"gounreal/math/vec"
)

const (
	maxSubStep = 0.02
	// floors steeper than 45 degrees can not be walked on
	minFloorZ = 0.7071
	// walking speed multiplier while IsWalking is set
	walkingPct = 0.3
)

// TickPhysics advances a by elapsed seconds in slices of at most
// maxSubStep. A zero elapsed time changes nothing.
func (l *Level) TickPhysics(a *actor.Actor, elapsed float32) {
	if elapsed <= 0 || a == nil || a.DeleteMe {
		return
	}
	n := int(math32.Ceil(elapsed/maxSubStep - 1e-4))
	if n < 1 {
		n = 1
	}
	dt := elapsed / float32(n)
	for i := 0; i < n && !a.DeleteMe; i++ {
		l.metrics.subSteps.Inc()
		l.physicsStep(a, dt)
	}
}

func (l *Level) physicsStep(a *actor.Actor, dt float32) {
	l.TickRotating(a, dt)
	if a.DeleteMe {
		return
	}
	a.OldLocation = a.Location
	switch a.Physics {
	case actor.PhysWalking, actor.PhysRolling, actor.PhysSpider:
		l.physWalking(a, dt)
	case actor.PhysFalling:
		l.physFalling(a, dt)
	case actor.PhysSwimming:
		l.physSwimming(a, dt)
	case actor.PhysFlying:
		l.physFlying(a, dt)
	case actor.PhysProjectile:
		l.physProjectile(a, dt)
	case actor.PhysInterpolating:
		l.physInterpolating(a, dt)
	case actor.PhysMovingBrush:
		l.physMovingBrush(a, dt)
	case actor.PhysTrailer:
		l.physTrailer(a)
	}
	if a.DeleteMe {
		return
	}
	if a.Location != a.OldLocation && l.outOfWorld(a) {
		l.warnf("%s fell out of the world at %s\n", a.Name, actor.FormatVector(a.Location))
		if a.IsProjectile() {
			l.Destroy(a)
			return
		}
		l.callEvent(a, events.FellOutOfWorld)
	}
	a.JustTeleported = false
}

// outOfWorld reports whether a left the playable volume of a level that
// has geometry.
func (l *Level) outOfWorld(a *actor.Actor) bool {
	return l.Model != nil && len(l.Model.Nodes) > 0 && a.Region.ZoneNumber == 0
}

// TickRotating turns a towards DesiredRotation, or spins it when it has
// a fixed rotation direction and no goal.
func (l *Level) TickRotating(a *actor.Actor, dt float32) {
	if a.RotationRate == (vec.Rotator{}) {
		return
	}
	rate := a.RotationRate.Scale(dt)
	if !a.RotateToDesired {
		if a.FixedRotationDir {
			a.Rotation = a.Rotation.Add(rate).Normalized()
		}
		return
	}
	if a.Rotation.Equal(a.DesiredRotation) {
		return
	}
	turn := vec.TurnToShortest
	if a.FixedRotationDir {
		turn = vec.TurnToFixed
	}
	cur, want := a.Rotation.Normalized(), a.DesiredRotation.Normalized()
	a.Rotation = vec.Rotator{
		Pitch: turn(cur.Pitch, want.Pitch, rate.Pitch),
		Yaw:   turn(cur.Yaw, want.Yaw, rate.Yaw),
		Roll:  turn(cur.Roll, want.Roll, rate.Roll),
	}
	if a.Rotation.Equal(a.DesiredRotation) {
		l.callEvent(a, events.EndedRotation)
	}
}

// zone returns the zone info actor a currently is in.
func (l *Level) zone(a *actor.Actor) *actor.Actor {
	return l.zoneActor(a.Region)
}

// calcVelocity applies acceleration and friction to the velocity of a
// and limits it to maxSpeed.
func calcVelocity(a *actor.Actor, accel vec.Vec3, dt, maxSpeed, friction float32) {
	if a.AccelRate > 0 {
		accel = vec.ClampLength(accel, a.AccelRate)
	}
	if accel.IsZero() {
		old := a.Velocity
		a.Velocity = vec.Sub(a.Velocity, a.Velocity.Scale(math32.Min(2*dt*friction, 1)))
		if vec.Dot(old, a.Velocity) <= 0 {
			a.Velocity = vec.Vec3{}
		}
	} else {
		dir := accel.Normalize()
		speed := a.Velocity.Length()
		a.Velocity = vec.Sub(a.Velocity, vec.Sub(a.Velocity, dir.Scale(speed)).Scale(math32.Min(dt*friction, 1)))
		a.Velocity = vec.Add(a.Velocity, accel.Scale(dt))
	}
	a.Velocity = vec.ClampLength(a.Velocity, maxSpeed)
}

// clipVelocity removes the part of v going into the plane.
func clipVelocity(v, normal vec.Vec3) vec.Vec3 {
	if d := vec.Dot(v, normal); d < 0 {
		return vec.Sub(v, normal.Scale(d))
	}
	return v
}

// slideMove moves a by delta. When it hits something the rest of the
// move is projected onto the hit plane and tried once more.
func (l *Level) slideMove(a *actor.Actor, delta vec.Vec3) collision.Hit {
	hit := l.TryMove(a, delta, false, false)
	if a.DeleteMe || hit.Fraction >= 1 {
		return hit
	}
	rest := vec.ProjectOnPlane(delta.Scale(1-hit.Fraction), hit.Normal)
	a.Velocity = clipVelocity(a.Velocity, hit.Normal)
	if rest.LengthSquared() < minMoveSquared {
		return hit
	}
	return l.TryMove(a, rest, false, false)
}

func (l *Level) physWalking(a *actor.Actor, dt float32) {
	mode := a.Physics
	zone := l.zone(a)
	a.Velocity.Z = 0
	accel := a.Acceleration
	accel.Z = 0
	maxSpeed := a.GroundSpeed
	if a.IsWalking {
		maxSpeed *= walkingPct
	}
	calcVelocity(a, accel, dt, maxSpeed, zone.Zone.GroundFriction)

	if delta := a.Velocity.Scale(dt); delta.LengthSquared() >= minMoveSquared {
		l.stepMove(a, delta)
		if a.DeleteMe || a.Physics != mode {
			return
		}
	}

	down := vec.Vec3{Z: -a.MaxStepHeight * 1.3}
	floor := l.TryMove(a, down, true, true)
	steep := mode != actor.PhysSpider && floor.Normal.Z < minFloorZ
	if floor.Fraction >= 1 || steep {
		l.SetPhysics(a, actor.PhysFalling)
		l.callEvent(a, events.Falling)
	} else {
		if snap := down.Scale(floor.Fraction); snap.LengthSquared() >= minMoveSquared {
			l.TryMove(a, snap, false, true)
			if a.DeleteMe {
				return
			}
		}
		base := l.get(floor.Actor)
		if base == nil {
			base = l.Info
		}
		if a.Base != base.Handle {
			l.SetBase(a, base, true)
		}
	}
	if a.DeleteMe {
		return
	}
	if !a.JustTeleported {
		a.Velocity = vec.Sub(a.Location, a.OldLocation).Scale(1 / dt)
	}
	a.Velocity.Z = 0
}

// stepMove moves up by the step height, across, and back down, sliding
// along a wall once if the move across is blocked.
func (l *Level) stepMove(a *actor.Actor, delta vec.Vec3) {
	up := l.TryMove(a, vec.Vec3{Z: a.MaxStepHeight}, false, false)
	if a.DeleteMe {
		return
	}
	lifted := a.MaxStepHeight * up.Fraction
	hit := l.TryMove(a, delta, false, false)
	if a.DeleteMe {
		return
	}
	if hit.Fraction < 1 {
		rest := vec.ProjectOnPlane(delta.Scale(1-hit.Fraction), hit.Normal)
		rest.Z = 0
		if rest.LengthSquared() >= minMoveSquared {
			l.TryMove(a, rest, false, false)
			if a.DeleteMe {
				return
			}
		}
	}
	if lifted > 0 {
		l.TryMove(a, vec.Vec3{Z: -lifted}, false, true)
	}
}

func (l *Level) physFalling(a *actor.Actor, dt float32) {
	zone := l.zone(a)
	gravityScale := float32(2)
	if a.IsDecoration() && a.Bobbing {
		gravityScale = 1
	}
	oldVel := a.Velocity
	accel := a.Acceleration
	accel.Z = 0
	if a.AccelRate > 0 {
		accel = vec.ClampLength(accel, a.AccelRate)
	}
	a.Velocity = vec.Add(a.Velocity, vec.Add(accel, zone.Zone.Gravity.Scale(gravityScale)).Scale(dt))
	if foot := l.zoneActor(a.FootRegion); foot.Zone.WaterZone && a.Velocity.Z < 0 {
		a.Velocity = a.Velocity.Scale(1 - math32.Min(foot.Zone.FluidFriction*dt, 1))
	}
	if tv := zone.Zone.TerminalVelocity; tv > 0 {
		a.Velocity = vec.ClampLength(a.Velocity, tv)
	}

	delta := vec.Add(oldVel, a.Velocity).Scale(0.5 * dt)
	hit := l.TryMove(a, delta, false, false)
	if a.DeleteMe || a.Physics != actor.PhysFalling {
		return
	}
	if hit.Fraction < 1 {
		switch {
		case a.Bounce:
			l.callEvent(a, events.HitWall, events.Vector(hit.Normal), events.Object(l.get(hit.Actor)))
			if a.DeleteMe || a.Physics != actor.PhysFalling {
				return
			}
			a.Velocity = vec.Reflect(a.Velocity, hit.Normal)
			rest := vec.Reflect(delta, hit.Normal).Scale(1 - hit.Fraction)
			if rest.LengthSquared() >= minMoveSquared {
				l.TryMove(a, rest, false, false)
			}
		case hit.Normal.Z >= minFloorZ:
			l.physLanded(a, hit)
			return
		default:
			slide := l.slideMove(a, delta.Scale(1-hit.Fraction))
			if a.DeleteMe || a.Physics != actor.PhysFalling {
				return
			}
			if slide.Fraction < 1 && slide.Normal.Z >= minFloorZ {
				l.physLanded(a, slide)
				return
			}
		}
	}
	if a.DeleteMe || a.Physics != actor.PhysFalling {
		return
	}
	if a.IsPawn() && l.zone(a).Zone.WaterZone {
		l.SetPhysics(a, actor.PhysSwimming)
	}
}

// physLanded ends a fall on the floor described by hit.
func (l *Level) physLanded(a *actor.Actor, hit collision.Hit) {
	l.callEvent(a, events.Landed, events.Vector(hit.Normal))
	if a.DeleteMe || a.Physics != actor.PhysFalling {
		return
	}
	if a.IsPawn() {
		a.Velocity.Z = 0
		l.SetPhysics(a, actor.PhysWalking)
	} else {
		l.SetPhysics(a, actor.PhysNone)
		a.Velocity = vec.Vec3{}
	}
	base := l.get(hit.Actor)
	if base == nil {
		base = l.Info
	}
	l.SetBase(a, base, true)
}

func (l *Level) physSwimming(a *actor.Actor, dt float32) {
	zone := l.zone(a)
	if zone.Zone.WaterZone {
		calcVelocity(a, a.Acceleration, dt, a.WaterSpeed, zone.Zone.FluidFriction)
		l.slideMove(a, a.Velocity.Scale(dt))
		if a.DeleteMe || a.Physics != actor.PhysSwimming {
			return
		}
	}
	if !l.zone(a).Zone.WaterZone {
		a.Velocity.Z = math32.Max(a.Velocity.Z, (100+a.Velocity.Length2D())*0.5)
		l.SetPhysics(a, actor.PhysFalling)
	}
}

func (l *Level) physFlying(a *actor.Actor, dt float32) {
	zone := l.zone(a)
	calcVelocity(a, a.Acceleration, dt, a.AirSpeed, 0.5*zone.Zone.FluidFriction)
	l.slideMove(a, a.Velocity.Scale(dt))
	if a.DeleteMe || a.Physics != actor.PhysFlying {
		return
	}
	a.Velocity.Z = 0
}

func (l *Level) physProjectile(a *actor.Actor, dt float32) {
	if !a.Acceleration.IsZero() {
		a.Velocity = vec.Add(a.Velocity, a.Acceleration.Scale(dt))
	}
	if a.MaxSpeed > 0 {
		a.Velocity = vec.ClampLength(a.Velocity, a.MaxSpeed)
	}
	teleported := a.JustTeleported
	hit := l.TryMove(a, a.Velocity.Scale(dt), false, false)
	if a.DeleteMe || a.Physics != actor.PhysProjectile {
		return
	}
	if hit.Fraction < 1 && hit.IsWorld() && !teleported && !a.JustTeleported {
		l.callEvent(a, events.HitWall, events.Vector(hit.Normal), events.Object(nil))
		if a.DeleteMe {
			return
		}
	}
	if l.outOfWorld(a) {
		l.Destroy(a)
	}
}

func (l *Level) physTrailer(a *actor.Actor) {
	owner := l.get(a.Owner)
	if owner == nil {
		return
	}
	loc := owner.Location
	if a.TrailerPrePivot {
		loc = vec.Add(loc, a.PrePivot)
	}
	if loc != a.Location {
		l.relocate(a, loc)
	}
	if a.TrailerSameRotation {
		a.Rotation = owner.Rotation
	}
}

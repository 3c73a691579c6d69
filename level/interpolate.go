// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"gounreal/actor"
	"gounreal/events"
	"gounreal/math"
	"gounreal/math/vec"
)

// maxPathSkip bounds the walk over skipped points of a broken path.
const maxPathSkip = 64

// nextPoint follows the path link chosen by link and steps over points
// flagged to be skipped.
func (l *Level) nextPoint(p *actor.Actor, link func(*actor.Actor) actor.Handle) *actor.Actor {
	n := l.get(link(p))
	for i := 0; n != nil && n.SkipNextPath && i < maxPathSkip; i++ {
		skip := l.get(link(n))
		if skip == nil {
			break
		}
		n = skip
	}
	return n
}

func nextLink(p *actor.Actor) actor.Handle { return p.NextPath }
func prevLink(p *actor.Actor) actor.Handle { return p.PrevPath }

// pathEnd stops a at point p.
func (l *Level) pathEnd(a, p *actor.Actor) {
	a.PhysAlpha = 0
	a.Target = p.Handle
	if a.Location != p.Location {
		l.TryMove(a, vec.Sub(p.Location, a.Location), false, false)
	}
	if !a.DeleteMe {
		a.Rotation = p.Rotation
		l.SetPhysics(a, actor.PhysNone)
	}
}

// physInterpolating moves a along the InterpolationPoint path starting at
// Target. PhysAlpha is the position between Target and the next point.
func (l *Level) physInterpolating(a *actor.Actor, dt float32) {
	pt := l.get(a.Target)
	if pt == nil {
		l.SetPhysics(a, actor.PhysNone)
		return
	}
	a.PhysAlpha += dt * a.PhysRate * pt.RateModifier
	for a.PhysAlpha > 1 || a.PhysAlpha < 0 {
		forward := a.PhysAlpha > 1
		reached := pt
		link := prevLink
		if forward {
			reached = l.get(pt.NextPath)
			link = nextLink
		}
		if reached == nil {
			l.pathEnd(a, pt)
			return
		}
		l.callEvent(reached, events.InterpolateEnd, events.Object(a))
		if a.DeleteMe || a.Physics != actor.PhysInterpolating {
			return
		}
		l.callEvent(a, events.InterpolateEnd, events.Object(reached))
		if a.DeleteMe || a.Physics != actor.PhysInterpolating {
			return
		}
		if forward {
			if reached.SkipNextPath {
				if n := l.nextPoint(reached, nextLink); n != nil {
					reached = n
				}
			}
			if l.get(reached.NextPath) == nil {
				l.pathEnd(a, reached)
				return
			}
			pt = reached
			a.PhysAlpha--
		} else {
			prev := l.nextPoint(reached, link)
			if prev == nil {
				l.pathEnd(a, reached)
				return
			}
			pt = prev
			a.PhysAlpha++
		}
		a.Target = pt.Handle
	}

	next := l.get(pt.NextPath)
	if next == nil {
		l.pathEnd(a, pt)
		return
	}
	var dest vec.Vec3
	prev, after := l.get(pt.PrevPath), l.get(next.NextPath)
	if prev != nil && after != nil {
		dest = vec.Spline(a.PhysAlpha, prev.Location, pt.Location, next.Location, after.Location)
	} else {
		dest = vec.Mix(pt.Location, next.Location, a.PhysAlpha)
	}
	if d := vec.Sub(dest, a.Location); d.LengthSquared() >= minMoveSquared {
		l.TryMove(a, d, false, false)
		if a.DeleteMe {
			return
		}
	}
	a.Rotation = lerpRotator(pt.Rotation, next.Rotation, a.PhysAlpha)
}

// lerpRotator blends each axis along the shorter way around.
func lerpRotator(from, to vec.Rotator, t float32) vec.Rotator {
	d := to.Sub(from)
	shortest := func(x int32) int32 {
		x &= vec.AngleMask
		if x > vec.HalfCircle {
			x -= vec.AngleMask + 1
		}
		return x
	}
	d = vec.Rotator{Pitch: shortest(d.Pitch), Yaw: shortest(d.Yaw), Roll: shortest(d.Roll)}
	return from.Add(d.Scale(t)).Normalized()
}

// physMovingBrush drives a mover from OldPos towards its current key
// frame. A move vetoed by an encroached actor keeps the old alpha and is
// retried on the next step.
func (l *Level) physMovingBrush(a *actor.Actor, dt float32) {
	if !a.Interpolating {
		return
	}
	alpha := math.Clamp(0, a.PhysAlpha+dt*a.PhysRate, 1)
	t := alpha
	if a.MoverGlideType == actor.GlideByTime {
		t = math.SmoothStep(alpha)
	}
	k := a.KeyNum
	dest := vec.Add(a.OldPos, vec.Sub(vec.Add(a.BasePos, a.KeyPos[k]), a.OldPos).Scale(t))
	rot := lerpRotator(a.OldRot, a.BaseRot.Add(a.KeyRot[k]), t)

	if d := vec.Sub(dest, a.Location); d.LengthSquared() >= minMoveSquared {
		hit := l.TryMove(a, d, false, false)
		if a.DeleteMe {
			return
		}
		if hit.Fraction < 1 {
			return
		}
	}
	a.Rotation = rot
	a.PhysAlpha = alpha
	if alpha >= 1 {
		a.Interpolating = false
		l.callEvent(a, events.InterpolateEnd, events.Object(nil))
	}
}

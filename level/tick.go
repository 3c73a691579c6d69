// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"time"

	"gounreal/actor"
	"gounreal/events"
)

// Tick advances the level by elapsed seconds. Every live actor is ticked
// once, owners before the actors they own. Actors spawned during the
// frame are ticked as well. It returns the first script error since the
// previous Tick.
func (l *Level) Tick(elapsed float32) error {
	start := time.Now()
	l.ticked = !l.ticked
	l.inTick = true
	defer func() { l.inTick = false }()
	l.TimeSeconds += elapsed
	for i := 0; i < len(l.Actors); i++ {
		if a := l.Actors[i]; a != nil && !a.DeleteMe {
			l.TickActor(a, elapsed)
		}
	}
	l.compact()
	l.metrics.tickDuration.Observe(time.Since(start).Seconds())
	err := l.frameErr
	l.frameErr = nil
	return err
}

// TickActor runs one frame of a unless it was already ticked this frame.
func (l *Level) TickActor(a *actor.Actor, dt float32) {
	if a.DeleteMe || a.Ticked == l.ticked {
		return
	}
	a.Ticked = l.ticked
	if o := l.get(a.Owner); o != nil && o.Ticked != l.ticked {
		l.TickActor(o, dt)
		if a.DeleteMe {
			return
		}
	}

	l.TickAnimation(a, dt)
	if a.DeleteMe {
		return
	}
	l.TickPhysics(a, dt)
	if a.DeleteMe {
		return
	}
	if a.TimerRate > 0 {
		a.TimerCounter += dt
		if a.TimerCounter >= a.TimerRate {
			if a.TimerLoop {
				a.TimerCounter -= a.TimerRate
			} else {
				a.TimerRate = 0
				a.TimerCounter = 0
			}
			l.callEvent(a, events.Timer)
			if a.DeleteMe {
				return
			}
		}
	}
	if a.LifeSpan > 0 {
		a.LifeSpan -= dt
		if a.LifeSpan <= 0 {
			a.LifeSpan = 0
			l.callEvent(a, events.Expired)
			l.Destroy(a)
			return
		}
	}
	l.callEvent(a, events.Tick, events.Float(dt))
}

// compact drops the slots of destroyed actors and renumbers the rest.
func (l *Level) compact() {
	n := 0
	for _, a := range l.Actors {
		if a == nil {
			continue
		}
		a.Index = n
		l.Actors[n] = a
		n++
	}
	clear(l.Actors[n:])
	l.Actors = l.Actors[:n]
}

// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"github.com/chewxy/math32"

	"gounreal/actor"
	"gounreal/events"
)

// TickAnimation advances the animation frame of a. A negative AnimRate
// scales with the speed of a and never drops below AnimMinRate.
func (l *Level) TickAnimation(a *actor.Actor, dt float32) {
	if a.AnimSequence == "" || a.AnimFinished {
		return
	}
	rate := a.AnimRate
	if rate < 0 {
		rate = math32.Max(-rate*a.Velocity.Length(), a.AnimMinRate)
	}
	if rate == 0 {
		return
	}
	a.AnimFrame += rate * dt
	if a.AnimFrame < a.AnimLast {
		return
	}
	if a.AnimLoop && a.AnimLast > 0 {
		a.AnimFrame = math32.Mod(a.AnimFrame, a.AnimLast)
	} else {
		a.AnimFrame = a.AnimLast
		a.AnimFinished = true
	}
	l.callEvent(a, events.AnimEnd)
}

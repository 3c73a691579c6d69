// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"gounreal/conlog"
	"gounreal/cvar"
)

var (
	Developer     *cvar.Cvar
	HostFrameRate *cvar.Cvar
	HostMaxFps    *cvar.Cvar
	HostTimeScale *cvar.Cvar
	// MaxFrameTime caps the simulated time of a single frame.
	MaxFrameTime *cvar.Cvar
	// ScriptEvents logs every script event while set.
	ScriptEvents *cvar.Cvar
)

func init() {
	Developer = cvar.MustRegister("developer", "0", cvar.NONE)
	Developer.SetCallback(func(cv *cvar.Cvar) {
		conlog.SetDeveloper(cv.Bool())
	})
	HostFrameRate = cvar.MustRegister("host_framerate", "0", cvar.NONE)
	HostMaxFps = cvar.MustRegister("host_maxfps", "72", cvar.ARCHIVE)
	HostTimeScale = cvar.MustRegister("host_timescale", "0", cvar.NONE)
	MaxFrameTime = cvar.MustRegister("sv_maxframetime", "0.1", cvar.NOTIFY)
	ScriptEvents = cvar.MustRegister("sv_scriptevents", "0", cvar.NONE)
}

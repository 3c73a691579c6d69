// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

var (
	p  func(string, ...interface{}) = logPrintf
	sp func(string, ...interface{}) = logPrintf

	developer atomic.Bool
)

// logPrintf is the console sink until a host installs its own.
func logPrintf(format string, v ...interface{}) {
	slog.Info(strings.TrimRight(fmt.Sprintf(format, v...), "\n"))
}

func SetPrintf(f func(string, ...interface{})) {
	if f == nil {
		f = logPrintf
	}
	p = f
}

func SetSavePrintf(f func(string, ...interface{})) {
	if f == nil {
		f = logPrintf
	}
	sp = f
}

// SetDeveloper enables the DPrintf and DWarning output.
func SetDeveloper(on bool) {
	developer.Store(on)
}

func Developer() bool {
	return developer.Load()
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

func SafePrintf(format string, v ...interface{}) {
	sp(format, v...)
}

// DPrintf prints only in developer mode.
func DPrintf(format string, v ...interface{}) {
	if !developer.Load() {
		return
	}
	p(format, v...)
}

func DWarning(format string, v ...interface{}) {
	if !developer.Load() {
		return
	}
	p("Warning: "+format, v...)
}

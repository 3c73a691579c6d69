// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"log/slog"

	"gounreal/conlog"
)

// Efunc tries to execute a command. It reports whether it knew the
// command.
type Efunc func(*CommandBuffer, Arguments) (bool, error)

type executors []Efunc

func (ex executors) execute(c *CommandBuffer, a Arguments) {
	args := a.Args()
	if len(args) == 0 {
		return // no tokens
	}
	name := args[0].String()
	for _, e := range ex {
		ok, err := e(c, a)
		if err != nil {
			slog.Error("command failed", "cmd", name, "err", err)
			conlog.Printf("%s: %v\n", name, err)
			return
		}
		if ok {
			return
		}
	}
	slog.Info("unknown command", "cmd", name)
	conlog.Printf("Unknown command \"%s\"\n", name)
}

// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"strings"

	"gounreal/cbuf"
	"gounreal/conlog"
)

type cmdList []string

func (c Commands) printCmdList() QFunc {
	return func(a cbuf.Arguments) error {
		args := a.Args()
		cl := cmdList(c.List())
		switch len(args) {
		default:
			cl.printPartialCmdList(args[1].String())
		case 0, 1:
			cl.printFullCmdList()
		}
		return nil
	}
}

func (cl *cmdList) printFullCmdList() {
	for _, c := range *cl {
		conlog.SafePrintf("  %s\n", c)
	}
	conlog.SafePrintf("%v commands\n", len(*cl))
}

func (cl *cmdList) printPartialCmdList(part string) {
	count := 0
	for _, c := range *cl {
		if strings.HasPrefix(c, part) {
			conlog.SafePrintf("  %s\n", c)
			count++
		}
	}
	conlog.SafePrintf("%v commands beginning with \"%v\"\n", count, part)
}

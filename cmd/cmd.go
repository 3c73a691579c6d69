// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"gounreal/cbuf"
)

type QFunc func(a cbuf.Arguments) error

// Commands maps lower case command names to their handlers.
type Commands map[string]QFunc

// New returns a command table that already knows "cmdlist".
func New() *Commands {
	c := make(Commands)
	c["cmdlist"] = c.printCmdList()
	return &c
}

func (c *Commands) Add(name string, f QFunc) error {
	ln := strings.ToLower(name)
	if _, ok := (*c)[ln]; ok {
		return errors.Errorf("AddCommand: %s already defined", ln)
	}
	(*c)[ln] = f
	return nil
}

func (c *Commands) Exists(cmdName string) bool {
	name := strings.ToLower(cmdName)
	_, ok := (*c)[name]
	return ok
}

func (c *Commands) List() []string {
	cmds := make([]string, 0, len(*c))
	for cmd := range *c {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return cmds
}

// Execute runs the command named by the first argument. It has the
// signature of a cbuf executor.
func (c *Commands) Execute(_ *cbuf.CommandBuffer, a cbuf.Arguments) (bool, error) {
	n := a.Args()
	if len(n) == 0 {
		return false, nil
	}
	name := strings.ToLower(n[0].String())
	if cmd, ok := (*c)[name]; ok {
		if err := cmd(a); err != nil {
			return false, errors.WithMessage(err, name)
		}
		return true, nil
	}
	return false, nil
}

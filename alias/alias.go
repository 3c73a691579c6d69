// SPDX-License-Identifier: GPL-2.0-or-later
package alias

import (
	"sort"
	"strings"

	"gounreal/cbuf"
	"gounreal/cmd"
	"gounreal/conlog"
)

// Aliases maps a console word to the text it expands to. Every stored
// value ends with a line break.
type Aliases map[string]string

func New() *Aliases {
	a := make(Aliases)
	return &a
}

// Register adds alias, unalias and unaliasall to c.
func (al *Aliases) Register(c *cmd.Commands) error {
	if err := c.Add("alias", al.alias); err != nil {
		return err
	}
	if err := c.Add("unalias", al.unalias); err != nil {
		return err
	}
	return c.Add("unaliasall", al.unaliasAll)
}

func (al *Aliases) alias(a cbuf.Arguments) error {
	args := a.Args()[1:]
	switch len(args) {
	case 0:
		al.list()
	case 1:
		al.print(args[0].String())
	default:
		al.set(args)
	}
	return nil
}

func (al *Aliases) list() {
	if len(*al) == 0 {
		conlog.SafePrintf("no alias commands found\n")
		return
	}
	names := make([]string, 0, len(*al))
	for k := range *al {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		conlog.SafePrintf("  %s: %s", k, (*al)[k])
	}
	conlog.SafePrintf("%v alias command(s)\n", len(*al))
}

func (al *Aliases) print(name string) {
	if v, ok := (*al)[name]; ok {
		conlog.Printf("  %s: %s", name, v)
	}
}

func join(a []cbuf.QArg, sep string) string {
	parts := make([]string, len(a))
	for i, p := range a {
		parts[i] = p.String()
	}
	return strings.Join(parts, sep)
}

func (al *Aliases) set(args []cbuf.QArg) {
	// the parts have '"' already removed
	command := join(args[1:], " ")
	(*al)[args[0].String()] = strings.TrimSpace(command) + "\n"
}

func (al *Aliases) unalias(a cbuf.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("unalias <name> : delete alias\n")
		return nil
	}
	name := args[0].String()
	if _, ok := (*al)[name]; !ok {
		conlog.Printf("No alias named %s\n", name)
		return nil
	}
	delete(*al, name)
	return nil
}

func (al *Aliases) unaliasAll(_ cbuf.Arguments) error {
	for k := range *al {
		delete(*al, k)
	}
	return nil
}

func (al *Aliases) Get(name string) (string, bool) {
	v, ok := (*al)[name]
	return v, ok
}

// Execute expands an alias in front of the remaining buffer. It has the
// signature of a cbuf executor.
func (al *Aliases) Execute(cb *cbuf.CommandBuffer, a cbuf.Arguments) (bool, error) {
	args := a.Args()
	if len(args) == 0 {
		return false, nil
	}
	if v, ok := al.Get(args[0].String()); ok {
		cb.InsertText(v)
		return true, nil
	}
	return false, nil
}

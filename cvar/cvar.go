// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"gounreal/cbuf"
	"gounreal/cmd"
	"gounreal/conlog"
)

var (
	cvarArray  []*Cvar
	cvarByName = make(map[string]*Cvar)
	commands   *cmd.Commands
)

type flag uint64

const (
	// cvar flags bitfield
	NONE        flag = 0
	ARCHIVE     flag = 1
	NOTIFY      flag = 1 << 1
	ROM         flag = 1 << 6
	USERDEFINED flag = 1 << 17 // created by the user with set
	SETA        flag = 1 << 19 // saved with seta
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	flags    flag
	callback CallbackFunc
	name     string
	// stringValue is the truth, value the derived one
	stringValue  string
	value        float32
	defaultValue string
	id           int
}

func All() []*Cvar {
	return cvarArray
}

func (cv *Cvar) has(f flag) bool { return cv.flags&f != 0 }

func (cv *Cvar) Archive() bool     { return cv.has(ARCHIVE) }
func (cv *Cvar) Notify() bool      { return cv.has(NOTIFY) }
func (cv *Cvar) ReadOnly() bool    { return cv.has(ROM) }
func (cv *Cvar) UserDefined() bool { return cv.has(USERDEFINED) }
func (cv *Cvar) SetA() bool        { return cv.has(SETA) }

func (cv *Cvar) SetCallback(cb CallbackFunc) {
	cv.callback = cb
}

func (cv *Cvar) SetByString(s string) {
	if cv.ReadOnly() {
		return
	}
	old := cv.stringValue
	cv.stringValue = s
	pf, _ := strconv.ParseFloat(cv.stringValue, 32)
	cv.value = float32(pf)
	if cv.Notify() && old != s && cv.id >= 0 {
		conlog.Printf("\"%s\" changed to \"%s\"\n", cv.name, s)
	}
	if cv.callback != nil {
		cv.callback(cv)
	}
}

func (cv *Cvar) Reset() {
	cv.SetByString(cv.defaultValue)
}

func (cv *Cvar) String() string {
	return cv.stringValue
}

func (cv *Cvar) ID() int {
	return cv.id
}

func (cv *Cvar) Name() string {
	return cv.name
}

func (cv *Cvar) Value() float32 {
	return cv.value
}

func (cv *Cvar) SetValue(value float32) {
	if float32(int(value)) == value {
		v := strconv.FormatInt(int64(value), 10)
		cv.SetByString(v)
	} else {
		v := strconv.FormatFloat(float64(value), 'f', -1, 32)
		cv.SetByString(v)
	}
}

func (cv *Cvar) Toggle() {
	if cv.String() == "1" {
		cv.SetByString("0")
	} else {
		cv.SetByString("1")
	}
}

func (cv *Cvar) Bool() bool {
	return cv.stringValue != "0"
}

func Get(name string) (*Cvar, bool) {
	cv, err := cvarByName[name]
	return cv, err
}

func GetByID(id int) (*Cvar, error) {
	if id < 0 || id >= len(cvarArray) {
		return nil, errors.Errorf("cvar id %d out of bounds", id)
	}
	return cvarArray[id], nil
}

func create(name, value string) *Cvar {
	cv := &Cvar{name: name, defaultValue: value, id: -1}
	cv.SetByString(value)
	pos := len(cvarArray)
	cvarArray = append(cvarArray, cv)
	cvarByName[name] = cv
	cv.id = pos
	return cv
}

func Register(name, value string, flags flag) (*Cvar, error) {
	if _, ok := cvarByName[name]; ok {
		return nil, errors.Errorf("can't register variable %s, already defined", name)
	}

	cv := create(name, value)
	cv.flags = flags
	return cv, nil
}

func MustRegister(n, v string, flag flag) *Cvar {
	cv, err := Register(n, v, flag)
	if err != nil {
		log.Panic(err)
	}
	return cv
}

// Execute shows or sets the cvar named by the first argument. It has the
// signature of a cbuf executor.
func Execute(_ *cbuf.CommandBuffer, a cbuf.Arguments) (bool, error) {
	args := a.Args()
	if len(args) == 0 {
		return false, nil
	}
	n := args[0].String()
	cv, ok := Get(n)
	if !ok {
		return false, nil
	}
	if len(args) == 1 {
		conlog.Printf("\"%s\" is \"%s\"\n", cv.Name(), cv.String())
		return true, nil
	}
	cv.SetByString(args[1].String())
	return true, nil
}

// RegisterCommands adds the cvar console commands to c. set refuses to
// shadow any command known to c.
func RegisterCommands(c *cmd.Commands) error {
	commands = c
	for _, e := range []struct {
		name string
		f    cmd.QFunc
	}{
		{"cvarlist", list},
		{"cycle", cycle},
		{"inc", inc},
		{"reset", reset},
		{"resetall", resetAll},
		{"resetcfg", resetCfg},
		{"set", set},
		{"seta", seta},
		{"toggle", toggle},
	} {
		if err := c.Add(e.name, e.f); err != nil {
			return err
		}
	}
	return nil
}

func isCommand(name string) bool {
	return commands != nil && commands.Exists(name)
}

func set(a cbuf.Arguments) error {
	args := a.Args()[1:]
	switch {
	case len(args) >= 2:
		if isCommand(args[0].String()) {
			conlog.Printf("conflict with command\n")
			return nil
		}
		if cv, ok := cvarByName[args[0].String()]; ok {
			cv.SetByString(args[1].String())
		} else {
			cv := create(args[0].String(), args[1].String())
			cv.flags |= USERDEFINED
		}
	default:
		conlog.Printf("set <cvar> <value>\n")
	}
	return nil
}

func seta(a cbuf.Arguments) error {
	args := a.Args()[1:]
	switch {
	case len(args) >= 2:
		if isCommand(args[0].String()) {
			conlog.Printf("conflict with command\n")
			return nil
		}
		if cv, ok := cvarByName[args[0].String()]; ok {
			cv.SetByString(args[1].String())
			cv.flags |= SETA
		} else {
			cv := create(args[0].String(), args[1].String())
			cv.flags |= SETA | ARCHIVE | USERDEFINED
		}
	default:
		conlog.Printf("seta <cvar> <value>\n")
	}
	return nil
}

func toggle(a cbuf.Arguments) error {
	args := a.Args()[1:]
	switch c := len(args); c {
	case 1:
		arg := args[0].String()
		if cv, ok := Get(arg); ok {
			cv.Toggle()
		} else {
			slog.Debug("toggle: cvar not found", "cvar", arg)
			conlog.Printf("toggle: variable %v not found\n", arg)
		}
	default:
		conlog.Printf("toggle <cvar> : toggle cvar\n")
	}
	return nil
}

func incr(n string, v float32) {
	if cv, ok := Get(n); ok {
		cv.SetValue(cv.Value() + v)
	} else {
		slog.Debug("inc: cvar not found", "cvar", n)
		conlog.Printf("inc: variable %v not found\n", n)
	}
}

func inc(a cbuf.Arguments) error {
	args := a.Args()[1:]
	switch c := len(args); c {
	case 1:
		arg := args[0].String()
		incr(arg, 1)
	case 2:
		arg := args[0].String()
		incr(arg, args[1].Float32())
	default:
		conlog.Printf("inc <cvar> [amount] : increment cvar\n")
	}
	return nil
}

func reset(a cbuf.Arguments) error {
	args := a.Args()[1:]
	switch c := len(args); c {
	case 1:
		arg := args[0].String()
		if cv, ok := Get(arg); ok {
			cv.Reset()
		} else {
			slog.Debug("reset: cvar not found", "cvar", arg)
			conlog.Printf("reset: variable %v not found\n", arg)
		}
	default:
		conlog.Printf("reset <cvar> : reset cvar to default\n")
	}
	return nil
}

func resetAll(_ cbuf.Arguments) error {
	for _, cv := range All() {
		cv.Reset()
	}
	return nil
}

func resetCfg(_ cbuf.Arguments) error {
	for _, cv := range All() {
		if cv.Archive() {
			cv.Reset()
		}
	}
	return nil
}

// WriteArchived writes every archived cvar as a console line that
// restores its current value when executed.
func WriteArchived(w io.Writer) error {
	for _, cv := range All() {
		if !cv.Archive() {
			continue
		}
		var err error
		if cv.SetA() {
			_, err = fmt.Fprintf(w, "seta %s \"%s\"\n", cv.Name(), cv.String())
		} else {
			_, err = fmt.Fprintf(w, "%s \"%s\"\n", cv.Name(), cv.String())
		}
		if err != nil {
			return errors.Wrap(err, cv.Name())
		}
	}
	return nil
}

func list(a cbuf.Arguments) error {
	args := a.Args()
	switch len(args) {
	default:
		partialList(args[1].String())
	case 0, 1:
		fullList()
	}
	return nil
}

func fullList() {
	cvars := All()
	for _, v := range cvars {
		printCvar(v)
	}
	conlog.SafePrintf("%v cvars\n", len(cvars))
}

func printCvar(v *Cvar) {
	mark := []byte("   ")
	if v.Archive() {
		mark[0] = '*'
	}
	if v.Notify() {
		mark[1] = 's'
	}
	if v.ReadOnly() {
		mark[2] = 'r'
	}
	conlog.SafePrintf("%s %s \"%s\"\n", mark, v.Name(), v.String())
}

func partialList(p string) {
	count := 0
	for _, v := range All() {
		if strings.HasPrefix(v.Name(), p) {
			printCvar(v)
			count++
		}
	}
	conlog.SafePrintf("%v cvars beginning with \"%s\"\n", count, p)
}

func cycle(a cbuf.Arguments) error {
	args := a.Args()[1:]
	if len(args) < 2 {
		conlog.Printf("cycle <cvar> <value list>: cycle cvar through a list of values\n")
		return nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		conlog.Printf("cycle: variable %v not found\n", args[0].String())
		return nil
	}
	oldValue := cv.String()
	i := 0
	for i < len(args)-1 {
		i++
		if oldValue == args[i].String() {
			break
		}
	}
	i %= len(args) - 1
	i++
	cv.SetByString(args[i].String())
	return nil
}

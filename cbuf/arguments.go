// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode"
)

type QArg struct {
	a string
}

func (a QArg) String() string {
	return a.a
}

func (a QArg) Int() int {
	r, err := strconv.ParseInt(a.a, 10, 0)
	if err != nil {
		return 0
	}
	return int(r)
}

func (a QArg) Float32() float32 {
	r, err := strconv.ParseFloat(a.a, 32)
	if err != nil {
		return 0
	}
	return float32(r)
}

func (a QArg) Bool() bool {
	switch strings.ToLower(a.a) {
	case "1", "t", "true", "on":
		return true
	default:
		return false
	}
}

type Arguments struct {
	// each arg on its own
	args []QArg
	// the trimmed line
	full string
}

func (c *Arguments) Argv(i int) QArg {
	if i < 0 || i >= len(c.args) {
		slog.Debug("Argv out of bounds", "i", i, "len", len(c.args), "line", c.full)
		return QArg{}
	}
	return c.args[i]
}

func (c *Arguments) Full() string {
	return c.full
}

func (c *Arguments) Args() []QArg {
	return c.args
}

// ArgumentString is everything after the command name with surrounding
// quotes removed.
func (c *Arguments) ArgumentString() string {
	if len(c.args) < 2 {
		return ""
	}
	r := strings.TrimPrefix(c.full, c.args[0].String())
	r = strings.TrimLeftFunc(r, unicode.IsSpace)
	if len(r) > 1 && r[0] == '"' {
		r = strings.Trim(r, "\"\t\n\v\f\r ")
	}
	return r
}

// Message returns the text after the first two arguments, command and
// target.
func (c *Arguments) Message() string {
	if len(c.args) < 3 {
		return ""
	}
	t := c.args[1].String()
	return c.full[strings.Index(c.full, t)+len(t)+1:]
}

// Parse splits a console line into arguments. Quoted strings form one
// argument, "//" starts a comment and a line break ends the line.
func Parse(s string) (args Arguments) {
	args.full = strings.TrimFunc(s, unicode.IsSpace)
	args.args = []QArg{}
	in := args.full
	for i := 0; i < len(in); {
		switch c := in[i]; {
		case c == '\r' || c == '\n':
			return
		case c <= ' ':
			i++
		case c == '/' && i+1 < len(in) && in[i+1] == '/':
			return
		case c == '"':
			end := strings.IndexAny(in[i+1:], "\"\n")
			if end < 0 || in[i+1+end] == '\n' {
				slog.Debug("unterminated string", "line", in)
				return
			}
			args.args = append(args.args, QArg{in[i+1 : i+1+end]})
			i += end + 2
		default:
			j := i
			for j < len(in) && in[j] > ' ' {
				j++
			}
			args.args = append(args.args, QArg{in[i:j]})
			i = j
		}
	}
	return
}

// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

// CommandBuffer collects console text and executes it line by line. A
// "wait" line postpones the rest of the buffer to the next Execute.
type CommandBuffer struct {
	buf       string
	executors executors
}

func (c *CommandBuffer) SetCommandExecutors(e []Efunc) {
	c.executors = e
}

func (c *CommandBuffer) AddText(text string) {
	c.buf += text
}

// InsertText puts text in front of the pending commands.
func (c *CommandBuffer) InsertText(text string) {
	c.buf = text + "\n" + c.buf
}

func (c *CommandBuffer) Empty() bool {
	return len(c.buf) == 0
}

// nextLine cuts the next command off the buffer. Commands end at a
// newline or at a ';' outside of quotes.
func (c *CommandBuffer) nextLine() string {
	quote := false
	i := 0
LineLoop:
	for ; i < len(c.buf); i++ {
		switch c.buf[i] {
		case '"':
			quote = !quote
		case ';':
			if !quote {
				break LineLoop
			}
		case '\n':
			break LineLoop
		}
	}
	line := c.buf[:i]
	if i < len(c.buf) {
		i++
	}
	c.buf = c.buf[i:]
	return line
}

// Execute runs the buffered commands until the buffer is empty or a wait
// is found.
func (c *CommandBuffer) Execute() {
	for len(c.buf) != 0 {
		line := c.nextLine()
		a := Parse(line)
		if args := a.Args(); len(args) > 0 && args[0].String() == "wait" {
			return
		}
		c.executors.execute(c, a)
	}
}

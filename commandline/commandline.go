// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"fmt"
	"strconv"
)

var (
	timeDemo bool
	pool     bool

	developer = boolInt{false, 1}

	frames  int
	seed    int
	actors  int
	metrics string

	execFile   string
	scriptFile string
)

type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// We can not support both "-flag" and "-flag 10"
	// This allows "-flag", and "-flag=10"
	// and also "-flag=true" and "-flag=false"
	// but not "-flag 10"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

func init() {
	flag.BoolVar(&timeDemo, "timedemo", false, "run frames as fast as possible")
	flag.BoolVar(&pool, "pool", false, "use the room with a water pool")

	flag.Var(&developer, "developer", "enable developer output, optional level")

	flag.IntVar(&frames, "frames", 300, "number of frames to run, 0 runs until quit")
	flag.IntVar(&seed, "seed", 0, "seed for the scattered actors")
	flag.IntVar(&actors, "actors", 8, "number of scattered actors")

	flag.StringVar(&metrics, "metrics", "", "print the metrics at exit, \"text\" or \"\"")
	flag.StringVar(&execFile, "exec", "", "console script to run at startup")
	flag.StringVar(&scriptFile, "script", "", "lua file with the actor event handlers")
}

func TimeDemo() bool {
	return timeDemo
}

func Pool() bool {
	return pool
}

func Developer() bool {
	return developer.set
}

func DeveloperLevel() int {
	return developer.num
}

func Frames() int {
	return frames
}

func Seed() int {
	return seed
}

func Actors() int {
	return actors
}

func Metrics() string {
	return metrics
}

func Exec() string {
	return execFile
}

func Script() string {
	return scriptFile
}

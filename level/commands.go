// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"strconv"

	"github.com/pkg/errors"

	"gounreal/actor"
	"gounreal/cbuf"
	"gounreal/cmd"
	"gounreal/collision"
	"gounreal/conlog"
	"gounreal/math/vec"
)

// RegisterCommands adds the console commands that inspect and edit the
// level.
func (l *Level) RegisterCommands(c *cmd.Commands) error {
	for _, e := range []struct {
		name string
		f    cmd.QFunc
	}{
		{"actors", l.listActors},
		{"actor", l.showActor},
		{"snapshot", l.showSnapshot},
		{"get", l.getProperty},
		{"set_actor", l.setProperty},
		{"physics", l.setPhysicsCmd},
		{"destroy", l.destroyCmd},
		{"summon", l.summon},
		{"trace", l.traceCmd},
		{"mover", l.moverCmd},
		{"los", l.losCmd},
		{"radius", l.radiusCmd},
		{"decal", l.decalCmd},
	} {
		if err := c.Add(e.name, e.f); err != nil {
			return err
		}
	}
	return nil
}

func (l *Level) argActor(a cbuf.Arguments, i int) (*actor.Actor, error) {
	n := a.Argv(i).String()
	if n == "" {
		return nil, errors.New("no actor name given")
	}
	act := l.FindActor(n)
	if act == nil {
		return nil, errors.Errorf("no actor named %q", n)
	}
	return act, nil
}

func argVector(args []cbuf.QArg) (vec.Vec3, error) {
	var r [3]float32
	if len(args) < 3 {
		return vec.Vec3{}, errors.New("need three coordinates")
	}
	for i := range r {
		f, err := strconv.ParseFloat(args[i].String(), 32)
		if err != nil {
			return vec.Vec3{}, errors.Wrapf(err, "coordinate %d", i)
		}
		r[i] = float32(f)
	}
	return vec.VFromA(r), nil
}

func (l *Level) listActors(_ cbuf.Arguments) error {
	n := 0
	for _, a := range l.Actors {
		if a == nil || a.DeleteMe {
			continue
		}
		conlog.SafePrintf("  %-20s %-16s %-18s %s\n", a.Name, a.Class.Name, a.Physics, actor.FormatVector(a.Location))
		n++
	}
	conlog.SafePrintf("%v actors\n", n)
	return nil
}

func (l *Level) showActor(a cbuf.Arguments) error {
	act, err := l.argActor(a, 1)
	if err != nil {
		return err
	}
	s, err := l.ActorSnapshot(act)
	if err != nil {
		return err
	}
	b, err := MarshalSnapshot(s)
	if err != nil {
		return err
	}
	conlog.SafePrintf("%s\n", b)
	return nil
}

func (l *Level) showSnapshot(_ cbuf.Arguments) error {
	s, err := l.Snapshot()
	if err != nil {
		return err
	}
	b, err := MarshalSnapshot(s)
	if err != nil {
		return err
	}
	conlog.SafePrintf("%s\n", b)
	return nil
}

func (l *Level) getProperty(a cbuf.Arguments) error {
	if len(a.Args()) != 3 {
		conlog.Printf("get <actor> <property>\n")
		return nil
	}
	act, err := l.argActor(a, 1)
	if err != nil {
		return err
	}
	v, err := actor.GetProperty(act, a.Argv(2).String())
	if err != nil {
		return err
	}
	conlog.Printf("%s.%s = %s\n", act.Name, a.Argv(2).String(), v)
	return nil
}

func (l *Level) setProperty(a cbuf.Arguments) error {
	args := a.Args()
	if len(args) < 4 {
		conlog.Printf("set_actor <actor> <property> <value>\n")
		return nil
	}
	act, err := l.argActor(a, 1)
	if err != nil {
		return err
	}
	return l.SetProperty(act, args[2].String(), args[3].String())
}

func (l *Level) setPhysicsCmd(a cbuf.Arguments) error {
	if len(a.Args()) != 3 {
		conlog.Printf("physics <actor> <mode>\n")
		return nil
	}
	act, err := l.argActor(a, 1)
	if err != nil {
		return err
	}
	p, err := actor.ParsePhysics(a.Argv(2).String())
	if err != nil {
		return err
	}
	l.SetPhysics(act, p)
	return nil
}

func (l *Level) destroyCmd(a cbuf.Arguments) error {
	act, err := l.argActor(a, 1)
	if err != nil {
		return err
	}
	if !l.Destroy(act) {
		conlog.Printf("%s can not be destroyed\n", act.Name)
	}
	return nil
}

func (l *Level) summon(a cbuf.Arguments) error {
	args := a.Args()
	if len(args) != 2 && len(args) != 5 {
		conlog.Printf("summon <class> [x y z]\n")
		return nil
	}
	c, err := actor.FindClass(args[1].String())
	if err != nil {
		return err
	}
	var loc vec.Vec3
	if len(args) == 5 {
		if loc, err = argVector(args[2:]); err != nil {
			return err
		}
	}
	act, err := l.Spawn(c, "", loc, vec.Rotator{}, nil)
	if err != nil {
		return err
	}
	conlog.Printf("spawned %s\n", act.Name)
	return nil
}

func (l *Level) traceCmd(a cbuf.Arguments) error {
	args := a.Args()
	if len(args) != 7 {
		conlog.Printf("trace <start x y z> <end x y z>\n")
		return nil
	}
	start, err := argVector(args[1:4])
	if err != nil {
		return err
	}
	end, err := argVector(args[4:7])
	if err != nil {
		return err
	}
	h := l.Collision.TraceFirstHit(start, end, nil, vec.Vec3{}, collision.TraceAll)
	switch {
	case !h.Blocked():
		conlog.Printf("no hit\n")
	case h.IsWorld():
		conlog.Printf("world at %.3f normal %s\n", h.Fraction, actor.FormatVector(h.Normal))
	default:
		name := "?"
		if o := l.Arena.Get(h.Actor); o != nil {
			name = o.Name
		}
		conlog.Printf("%s at %.3f normal %s\n", name, h.Fraction, actor.FormatVector(h.Normal))
	}
	return nil
}

func (l *Level) moverCmd(a cbuf.Arguments) error {
	args := a.Args()
	if len(args) != 3 {
		conlog.Printf("mover <actor> <key>\n")
		return nil
	}
	act, err := l.argActor(a, 1)
	if err != nil {
		return err
	}
	k, err := strconv.ParseUint(args[2].String(), 10, 8)
	if err != nil {
		return errors.Wrap(err, "key")
	}
	return l.MoverGoTo(act, uint8(k))
}

func (l *Level) losCmd(a cbuf.Arguments) error {
	if len(a.Args()) != 3 {
		conlog.Printf("los <actor> <actor>\n")
		return nil
	}
	from, err := l.argActor(a, 1)
	if err != nil {
		return err
	}
	to, err := l.argActor(a, 2)
	if err != nil {
		return err
	}
	if l.LineOfSightTo(from, to) {
		conlog.Printf("%s sees %s\n", from.Name, to.Name)
	} else {
		conlog.Printf("%s can not see %s\n", from.Name, to.Name)
	}
	return nil
}

func (l *Level) radiusCmd(a cbuf.Arguments) error {
	args := a.Args()
	if len(args) != 5 {
		conlog.Printf("radius <x y z> <radius>\n")
		return nil
	}
	loc, err := argVector(args[1:4])
	if err != nil {
		return err
	}
	r := args[4].Float32()
	found := l.RadiusActors(loc, r)
	for _, o := range found {
		conlog.Printf("%s %s\n", o.Name, actor.FormatVector(o.Location))
	}
	conlog.Printf("%d actors within %v\n", len(found), r)
	return nil
}

func (l *Level) decalCmd(a cbuf.Arguments) error {
	args := a.Args()
	if len(args) != 8 {
		conlog.Printf("decal <origin x y z> <direction x y z> <distance>\n")
		return nil
	}
	origin, err := argVector(args[1:4])
	if err != nil {
		return err
	}
	dir, err := argVector(args[4:7])
	if err != nil {
		return err
	}
	nodes := l.DecalNodes(origin, dir, args[7].Float32())
	if len(nodes) == 0 {
		conlog.Printf("no surface\n")
		return nil
	}
	conlog.Printf("nodes %v\n", nodes)
	return nil
}

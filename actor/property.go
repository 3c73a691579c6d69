// SPDX-License-Identifier: GPL-2.0-or-later

package actor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"gounreal/math/vec"
)

type property struct {
	name string
	get  func(a *Actor) string
	set  func(a *Actor, text string) error
}

var properties = map[string]property{}

func addProperty(name string, p property) {
	p.name = name
	properties[strings.ToLower(name)] = p
}

func floatProp(name string, f func(a *Actor) *float32) {
	addProperty(name, property{
		get: func(a *Actor) string {
			return strconv.FormatFloat(float64(*f(a)), 'f', -1, 32)
		},
		set: func(a *Actor, text string) error {
			v, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
			if err != nil {
				return errors.Wrapf(err, "%s", name)
			}
			*f(a) = float32(v)
			return nil
		},
	})
}

func boolProp(name string, f func(a *Actor) *bool) {
	addProperty(name, property{
		get: func(a *Actor) string {
			if *f(a) {
				return "True"
			}
			return "False"
		},
		set: func(a *Actor, text string) error {
			switch strings.ToLower(strings.TrimSpace(text)) {
			case "true", "1":
				*f(a) = true
			case "false", "0":
				*f(a) = false
			default:
				return errors.Errorf("%s: bad bool %q", name, text)
			}
			return nil
		},
	})
}

func vectorProp(name string, f func(a *Actor) *vec.Vec3) {
	addProperty(name, property{
		get: func(a *Actor) string {
			return FormatVector(*f(a))
		},
		set: func(a *Actor, text string) error {
			v, err := ParseVector(text)
			if err != nil {
				return errors.Wrapf(err, "%s", name)
			}
			*f(a) = v
			return nil
		},
	})
}

func rotatorProp(name string, f func(a *Actor) *vec.Rotator) {
	addProperty(name, property{
		get: func(a *Actor) string {
			r := *f(a)
			return fmt.Sprintf("(Pitch=%d,Yaw=%d,Roll=%d)", r.Pitch, r.Yaw, r.Roll)
		},
		set: func(a *Actor, text string) error {
			m, err := parseStruct(text, "pitch", "yaw", "roll")
			if err != nil {
				return errors.Wrapf(err, "%s", name)
			}
			*f(a) = vec.Rotator{Pitch: int32(m[0]), Yaw: int32(m[1]), Roll: int32(m[2])}
			return nil
		},
	})
}

func init() {
	vectorProp("Location", func(a *Actor) *vec.Vec3 { return &a.Location })
	vectorProp("Velocity", func(a *Actor) *vec.Vec3 { return &a.Velocity })
	vectorProp("Acceleration", func(a *Actor) *vec.Vec3 { return &a.Acceleration })
	vectorProp("PrePivot", func(a *Actor) *vec.Vec3 { return &a.PrePivot })
	vectorProp("BasePos", func(a *Actor) *vec.Vec3 { return &a.BasePos })
	vectorProp("ZoneGravity", func(a *Actor) *vec.Vec3 { return &a.Zone.Gravity })
	rotatorProp("Rotation", func(a *Actor) *vec.Rotator { return &a.Rotation })
	rotatorProp("DesiredRotation", func(a *Actor) *vec.Rotator { return &a.DesiredRotation })
	rotatorProp("RotationRate", func(a *Actor) *vec.Rotator { return &a.RotationRate })

	floatProp("CollisionRadius", func(a *Actor) *float32 { return &a.CollisionRadius })
	floatProp("CollisionHeight", func(a *Actor) *float32 { return &a.CollisionHeight })
	floatProp("DrawScale", func(a *Actor) *float32 { return &a.DrawScale })
	floatProp("GroundSpeed", func(a *Actor) *float32 { return &a.GroundSpeed })
	floatProp("WaterSpeed", func(a *Actor) *float32 { return &a.WaterSpeed })
	floatProp("AirSpeed", func(a *Actor) *float32 { return &a.AirSpeed })
	floatProp("AccelRate", func(a *Actor) *float32 { return &a.AccelRate })
	floatProp("MaxSpeed", func(a *Actor) *float32 { return &a.MaxSpeed })
	floatProp("MaxStepHeight", func(a *Actor) *float32 { return &a.MaxStepHeight })
	floatProp("PhysAlpha", func(a *Actor) *float32 { return &a.PhysAlpha })
	floatProp("PhysRate", func(a *Actor) *float32 { return &a.PhysRate })
	floatProp("RateModifier", func(a *Actor) *float32 { return &a.RateModifier })
	floatProp("MoveTime", func(a *Actor) *float32 { return &a.MoveTime })
	floatProp("AnimFrame", func(a *Actor) *float32 { return &a.AnimFrame })
	floatProp("AnimRate", func(a *Actor) *float32 { return &a.AnimRate })
	floatProp("AnimMinRate", func(a *Actor) *float32 { return &a.AnimMinRate })
	floatProp("AnimLast", func(a *Actor) *float32 { return &a.AnimLast })
	floatProp("TimerRate", func(a *Actor) *float32 { return &a.TimerRate })
	floatProp("TimerCounter", func(a *Actor) *float32 { return &a.TimerCounter })
	floatProp("LifeSpan", func(a *Actor) *float32 { return &a.LifeSpan })
	floatProp("ZoneGroundFriction", func(a *Actor) *float32 { return &a.Zone.GroundFriction })
	floatProp("ZoneFluidFriction", func(a *Actor) *float32 { return &a.Zone.FluidFriction })
	floatProp("ZoneTerminalVelocity", func(a *Actor) *float32 { return &a.Zone.TerminalVelocity })

	boolProp("bStatic", func(a *Actor) *bool { return &a.Static })
	boolProp("bMovable", func(a *Actor) *bool { return &a.Movable })
	boolProp("bCollideActors", func(a *Actor) *bool { return &a.CollideActors })
	boolProp("bCollideWorld", func(a *Actor) *bool { return &a.CollideWorld })
	boolProp("bBlockActors", func(a *Actor) *bool { return &a.BlockActors })
	boolProp("bBlockPlayers", func(a *Actor) *bool { return &a.BlockPlayers })
	boolProp("bBounce", func(a *Actor) *bool { return &a.Bounce })
	boolProp("bFixedRotationDir", func(a *Actor) *bool { return &a.FixedRotationDir })
	boolProp("bRotateToDesired", func(a *Actor) *bool { return &a.RotateToDesired })
	boolProp("bJustTeleported", func(a *Actor) *bool { return &a.JustTeleported })
	boolProp("bIsWalking", func(a *Actor) *bool { return &a.IsWalking })
	boolProp("bBobbing", func(a *Actor) *bool { return &a.Bobbing })
	boolProp("bInterpolating", func(a *Actor) *bool { return &a.Interpolating })
	boolProp("bHidden", func(a *Actor) *bool { return &a.Hidden })
	boolProp("bTimerLoop", func(a *Actor) *bool { return &a.TimerLoop })
	boolProp("bAnimLoop", func(a *Actor) *bool { return &a.AnimLoop })
	boolProp("bWaterZone", func(a *Actor) *bool { return &a.Zone.WaterZone })
	boolProp("bTrailerPrePivot", func(a *Actor) *bool { return &a.TrailerPrePivot })
	boolProp("bTrailerSameRotation", func(a *Actor) *bool { return &a.TrailerSameRotation })
	boolProp("bSkipNextPath", func(a *Actor) *bool { return &a.SkipNextPath })

	addProperty("Name", property{
		get: func(a *Actor) string { return a.Name },
	})
	addProperty("Class", property{
		get: func(a *Actor) string { return a.Class.Name },
	})
	addProperty("Tag", property{
		get: func(a *Actor) string { return a.Tag },
		set: func(a *Actor, text string) error {
			a.Tag = strings.TrimSpace(text)
			return nil
		},
	})
	addProperty("AnimSequence", property{
		get: func(a *Actor) string { return a.AnimSequence },
		set: func(a *Actor, text string) error {
			a.AnimSequence = strings.TrimSpace(text)
			return nil
		},
	})
	addProperty("Physics", property{
		get: func(a *Actor) string { return a.Physics.String() },
		set: func(a *Actor, text string) error {
			p, err := ParsePhysics(strings.TrimSpace(text))
			if err != nil {
				return err
			}
			a.Physics = p
			return nil
		},
	})
}

// GetProperty returns the text form of the named property.
func GetProperty(a *Actor, name string) (string, error) {
	p, ok := properties[strings.ToLower(name)]
	if !ok {
		return "", errors.Errorf("%s has no property %s", a.Name, name)
	}
	return p.get(a), nil
}

// SetProperty parses text into the named property. Callers are responsible
// for relinking the actor if its location or extent changed.
func SetProperty(a *Actor, name, text string) error {
	p, ok := properties[strings.ToLower(name)]
	if !ok {
		return errors.Errorf("%s has no property %s", a.Name, name)
	}
	if p.set == nil {
		return errors.Errorf("property %s is read only", name)
	}
	return p.set(a, text)
}

// PropertyNames returns the names as declared, sorted.
func PropertyNames() []string {
	r := make([]string, 0, len(properties))
	for _, p := range properties {
		r = append(r, p.name)
	}
	sort.Strings(r)
	return r
}

func FormatVector(v vec.Vec3) string {
	f := func(x float32) string {
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	}
	return fmt.Sprintf("(X=%s,Y=%s,Z=%s)", f(v.X), f(v.Y), f(v.Z))
}

// ParseVector accepts the "(X=1,Y=2,Z=3)" form. Missing components are zero.
func ParseVector(text string) (vec.Vec3, error) {
	m, err := parseStruct(text, "x", "y", "z")
	if err != nil {
		return vec.Vec3{}, err
	}
	return vec.Vec3{X: float32(m[0]), Y: float32(m[1]), Z: float32(m[2])}, nil
}

func parseStruct(text string, keys ...string) ([]float64, error) {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "(") || !strings.HasSuffix(t, ")") {
		return nil, errors.Errorf("malformed struct text %q", text)
	}
	r := make([]float64, len(keys))
	t = t[1 : len(t)-1]
	if t == "" {
		return r, nil
	}
	for _, field := range strings.Split(t, ",") {
		k, v, ok := strings.Cut(field, "=")
		if !ok {
			return nil, errors.Errorf("malformed field %q", field)
		}
		k = strings.ToLower(strings.TrimSpace(k))
		idx := -1
		for i, key := range keys {
			if key == k {
				idx = i
			}
		}
		if idx < 0 {
			return nil, errors.Errorf("unknown field %q", k)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", k)
		}
		r[idx] = f
	}
	return r, nil
}

// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"gounreal/actor"
)

func actorFields(a *actor.Actor) (map[string]any, error) {
	m := map[string]any{
		"Index": float64(a.Index),
		"Slot":  float64(a.Handle.Slot),
		"Gen":   float64(a.Handle.Gen),
	}
	for _, name := range actor.PropertyNames() {
		v, err := actor.GetProperty(a, name)
		if err != nil {
			return nil, err
		}
		m[name] = v
	}
	return m, nil
}

// ActorSnapshot captures the properties of a.
func (l *Level) ActorSnapshot(a *actor.Actor) (*structpb.Struct, error) {
	m, err := actorFields(a)
	if err != nil {
		return nil, errors.Wrapf(err, "snapshot of %s", a.Name)
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrapf(err, "snapshot of %s", a.Name)
	}
	return s, nil
}

// Snapshot captures the level and all live actors in tick order.
func (l *Level) Snapshot() (*structpb.Struct, error) {
	var list []any
	for _, a := range l.Actors {
		if a == nil || a.DeleteMe {
			continue
		}
		m, err := actorFields(a)
		if err != nil {
			return nil, errors.Wrapf(err, "snapshot of %s", a.Name)
		}
		list = append(list, m)
	}
	s, err := structpb.NewStruct(map[string]any{
		"ID":          l.ID.String(),
		"TimeSeconds": float64(l.TimeSeconds),
		"Actors":      list,
	})
	if err != nil {
		return nil, errors.Wrap(err, "level snapshot")
	}
	return s, nil
}

// MarshalSnapshot renders a snapshot as indented JSON.
func MarshalSnapshot(s *structpb.Struct) ([]byte, error) {
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
}

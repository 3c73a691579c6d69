// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"github.com/pkg/errors"

	"gounreal/actor"
	"gounreal/bsp"
	"gounreal/events"
	"gounreal/math/vec"
)

func (l *Level) regionAt(p vec.Vec3) actor.PointRegion {
	var fallback actor.Handle
	if l.Info != nil {
		fallback = l.Info.Handle
	}
	return l.Model.FindRegion(p, fallback)
}

// zoneActor resolves the zone info of r, falling back to the level info.
func (l *Level) zoneActor(r actor.PointRegion) *actor.Actor {
	if z := l.get(r.Zone); z != nil {
		return z
	}
	return l.Info
}

func (l *Level) footAndHead(a *actor.Actor) (foot, head actor.PointRegion) {
	foot = l.regionAt(vec.Sub(a.Location, vec.Vec3{Z: a.CollisionHeight}))
	head = l.regionAt(vec.Add(a.Location, vec.Vec3{Z: a.CollisionHeight}))
	return foot, head
}

// SetZoneInfo registers z as the zone info of zone number and refreshes
// the regions of all actors without sending events.
func (l *Level) SetZoneInfo(number uint8, z *actor.Actor) error {
	if l.Model == nil {
		return errors.New("SetZoneInfo: level has no geometry")
	}
	if z == nil || z.DeleteMe || !z.IsZoneInfo() {
		return errors.Errorf("SetZoneInfo: %v is not a zone info", z)
	}
	for len(l.Model.Zones) <= int(number) {
		l.Model.Zones = append(l.Model.Zones, bsp.Zone{})
	}
	l.Model.Zones[number].Actor = z.Handle
	z.Zone.Number = number
	for _, a := range l.Actors {
		if a != nil && !a.DeleteMe {
			l.InitActorZone(a)
		}
	}
	return nil
}

// InitActorZone computes the regions of a without sending events.
func (l *Level) InitActorZone(a *actor.Actor) {
	a.Region = l.regionAt(a.Location)
	a.FootRegion, a.HeadRegion = l.footAndHead(a)
}

// UpdateActorZone refreshes the regions of a and sends the zone change
// events. Foot and head changes are only reported to pawns.
func (l *Level) UpdateActorZone(a *actor.Actor) {
	if a == nil || a.DeleteMe {
		return
	}
	region := l.regionAt(a.Location)
	if region.Zone != a.Region.Zone {
		oldZone, newZone := l.zoneActor(a.Region), l.zoneActor(region)
		l.callEvent(oldZone, events.ActorLeaving, events.Object(a))
		if a.DeleteMe {
			return
		}
		l.callEvent(a, events.ZoneChange, events.Object(newZone))
		if a.DeleteMe {
			return
		}
		a.Region = region
		l.callEvent(newZone, events.ActorEntered, events.Object(a))
		if a.DeleteMe {
			return
		}
	} else {
		a.Region = region
	}

	foot, head := l.footAndHead(a)
	if !a.IsPawn() {
		a.FootRegion, a.HeadRegion = foot, head
		return
	}
	if foot.Zone != a.FootRegion.Zone {
		a.FootRegion = foot
		l.callEvent(a, events.FootZoneChange, events.Object(l.zoneActor(foot)))
		if a.DeleteMe {
			return
		}
	} else {
		a.FootRegion = foot
	}
	if head.Zone != a.HeadRegion.Zone {
		a.HeadRegion = head
		l.callEvent(a, events.HeadZoneChange, events.Object(l.zoneActor(head)))
	} else {
		a.HeadRegion = head
	}
}

// UpdateBspInfo relinks a into the actor list of the bsp node its
// bounding box falls into.
func (l *Level) UpdateBspInfo(a *actor.Actor) {
	if l.Model == nil {
		return
	}
	l.Model.RemoveActor(l.Arena, a)
	if !a.DeleteMe {
		l.Model.AddActor(l.Arena, a)
	}
}

// SPDX-License-Identifier: GPL-2.0-or-later

package actor

import (
	"strings"

	"github.com/pkg/errors"
)

type Physics uint8

const (
	PhysNone Physics = iota
	PhysWalking
	PhysFalling
	PhysSwimming
	PhysFlying
	PhysRotating
	PhysProjectile
	PhysRolling
	PhysInterpolating
	PhysMovingBrush
	PhysSpider
	PhysTrailer
)

var physicsNames = [...]string{
	PhysNone:          "None",
	PhysWalking:       "Walking",
	PhysFalling:       "Falling",
	PhysSwimming:      "Swimming",
	PhysFlying:        "Flying",
	PhysRotating:      "Rotating",
	PhysProjectile:    "Projectile",
	PhysRolling:       "Rolling",
	PhysInterpolating: "Interpolating",
	PhysMovingBrush:   "MovingBrush",
	PhysSpider:        "Spider",
	PhysTrailer:       "Trailer",
}

func (p Physics) String() string {
	if int(p) < len(physicsNames) {
		return "PHYS_" + physicsNames[p]
	}
	return "PHYS_Unknown"
}

// ParsePhysics accepts "Falling" as well as "PHYS_Falling", ignoring case.
func ParsePhysics(s string) (Physics, error) {
	n := strings.TrimPrefix(strings.ToLower(s), "phys_")
	for i, name := range physicsNames {
		if strings.ToLower(name) == n {
			return Physics(i), nil
		}
	}
	return PhysNone, errors.Errorf("unknown physics mode %q", s)
}

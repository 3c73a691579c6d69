// SPDX-License-Identifier: GPL-2.0-or-later

// Package rand is a seeded position hash used to place actors
// reproducibly. The same seed always yields the same level.
package rand

import (
	"gounreal/math/vec"
)

const (
	bitNoise1 = 0xB5297A4D
	bitNoise2 = 0x68E31DA4
	bitNoise3 = 0x1B56C4E9
)

type Source struct {
	pos  uint32
	seed uint32
}

func New(seed uint32) *Source {
	return &Source{seed: seed}
}

func squirrel(p, seed uint32) uint32 {
	m := p * bitNoise1
	m += seed
	m ^= m >> 8
	m += bitNoise2
	m ^= m << 8
	m *= bitNoise3
	m ^= m >> 8
	return m
}

func (s *Source) next() uint32 {
	s.pos++
	return squirrel(s.pos, s.seed)
}

// Reseed restarts the sequence.
func (s *Source) Reseed(seed uint32) {
	s.seed = seed
	s.pos = 0
}

// Intn returns a value in [0,n). n must be positive.
func (s *Source) Intn(n int) int {
	return int(s.next() % uint32(n))
}

// Float32 returns a value in [0,1).
func (s *Source) Float32() float32 {
	return float32(s.next()>>8) / (1 << 24)
}

// Range returns a value in [lo,hi).
func (s *Source) Range(lo, hi float32) float32 {
	return lo + s.Float32()*(hi-lo)
}

// InBox returns a point inside the box spanned by mins and maxs.
func (s *Source) InBox(mins, maxs vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: s.Range(mins.X, maxs.X),
		Y: s.Range(mins.Y, maxs.Y),
		Z: s.Range(mins.Z, maxs.Z),
	}
}

// Heading returns a rotator with a random yaw and no pitch or roll.
func (s *Source) Heading() vec.Rotator {
	return vec.Rotator{Yaw: int32(s.Intn(vec.AngleMask + 1))}
}

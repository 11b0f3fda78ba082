package game

import (
	"math/rand"

	"github.com/pthm-cable/widdershins/systems"
)

// Star is one point of the background star field.
type Star struct {
	Pos        systems.Vec3
	Brightness float32
	Twinkle    float32 // phase offset so stars shimmer out of sync
}

// Starfield holds the decorative backdrop around the arena.
type Starfield struct {
	Stars []Star
}

// NewStarfield scatters count stars in a wide flat shell around the arena.
func NewStarfield(count int, rng *rand.Rand) *Starfield {
	s := &Starfield{Stars: make([]Star, count)}
	for i := range s.Stars {
		s.Stars[i] = Star{
			Pos: systems.Vec3{
				X: (rng.Float32() - 0.5) * 200,
				Y: (rng.Float32() - 0.5) * 20,
				Z: (rng.Float32() - 0.5) * 200,
			},
			Brightness: 0.3 + rng.Float32()*0.7,
			Twinkle:    rng.Float32(),
		}
	}
	return s
}

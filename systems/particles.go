package systems

import (
	"math/rand"

	"github.com/pthm-cable/widdershins/config"
)

// RGBA is a display color carried by particles. Kept plain so the
// simulation stays independent of the renderer.
type RGBA struct {
	R, G, B, A uint8
}

// EffectParticle is a short-lived visual feedback particle.
type EffectParticle struct {
	Pos   Vec3
	Vel   Vec3
	Color RGBA
	Life  float32 // seconds remaining
	Size  float32
}

// ParticleSystem manages effect particles for visual feedback.
type ParticleSystem struct {
	Particles    []EffectParticle
	maxParticles int
	rng          *rand.Rand
}

// NewParticleSystem creates a particle pool with a fixed capacity.
func NewParticleSystem(maxParticles int, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		Particles:    make([]EffectParticle, 0, maxParticles),
		maxParticles: maxParticles,
		rng:          rng,
	}
}

// Update processes all particles. dt is unscaled wall time so effects
// keep playing at full speed during slow time.
func (s *ParticleSystem) Update(dt float32) {
	gravity := float32(config.Cfg().Particles.Gravity)

	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.Life -= dt
		if p.Life <= 0 {
			continue
		}

		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel.Y -= gravity * dt

		// Fade out over the final second
		p.Color.A = uint8(255 * clamp01(p.Life))

		// Keep particle
		s.Particles[alive] = s.Particles[i]
		alive++
	}
	s.Particles = s.Particles[:alive]
}

// EmitBurst emits count particles scattered from a point.
func (s *ParticleSystem) EmitBurst(pos Vec3, color RGBA, count int) {
	for i := 0; i < count; i++ {
		s.emit(pos, color)
	}
}

func (s *ParticleSystem) emit(pos Vec3, color RGBA) {
	if len(s.Particles) >= s.maxParticles {
		return
	}

	vel := Vec3{
		X: (s.rng.Float32() - 0.5) * 10,
		Y: s.rng.Float32() * 10,
		Z: (s.rng.Float32() - 0.5) * 10,
	}

	s.Particles = append(s.Particles, EffectParticle{
		Pos:   pos,
		Vel:   vel,
		Color: color,
		Life:  1 + s.rng.Float32(),
		Size:  0.1 + s.rng.Float32()*0.3,
	})
}

// Count returns the current number of active particles.
func (s *ParticleSystem) Count() int {
	return len(s.Particles)
}

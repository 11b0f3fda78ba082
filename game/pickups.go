package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/widdershins/audio"
	"github.com/pthm-cable/widdershins/components"
	"github.com/pthm-cable/widdershins/config"
	"github.com/pthm-cable/widdershins/systems"
)

// pickupHit captures a collected pickup during query iteration so the
// structural change can happen after the query completes.
type pickupHit struct {
	entity ecs.Entity
	kind   components.PowerupKind
	pos    systems.Vec3
}

// spawnPickup adds one pickup entity at a rolled ring position. No-op
// when the pool is full.
func (g *Game) spawnPickup() {
	cfg := config.Cfg()
	if g.pickupCount >= cfg.Powerups.PoolSize {
		return
	}

	pos := systems.RollSpawnPosition(g.rng)
	g.pickupMapper.NewEntity(
		&components.Position{X: pos.X, Y: pos.Y, Z: pos.Z},
		&components.Spin{BobOffset: systems.RollBobOffset(g.rng)},
		&components.Lifetime{Remaining: float32(cfg.Powerups.Lifetime)},
		&components.Powerup{Kind: systems.RollPowerupKind(g.rng)},
	)
	g.pickupCount++
}

// updatePickups ages, animates and collects pickup entities.
func (g *Game) updatePickups(dt float32) {
	cfg := config.Cfg()
	head := g.rider.Head().Pos
	collectRadius := cfg.Derived.CollectRadius
	spin := float32(cfg.Powerups.SpinRate) * dt

	// First pass: mutate components, collect removal candidates.
	var expired []ecs.Entity
	var collected []pickupHit

	query := g.pickupFilter.Query()
	for query.Next() {
		pos, sp, life, pow := query.Get()

		life.Remaining -= dt
		if life.Remaining <= 0 {
			expired = append(expired, query.Entity())
			continue
		}

		sp.Rotation += spin
		pos.Y = systems.BobHeight(g.gameTime, sp.BobOffset)

		if g.rider.Alive {
			p := systems.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z}
			if head.Distance(p) < collectRadius {
				collected = append(collected, pickupHit{
					entity: query.Entity(),
					kind:   pow.Kind,
					pos:    p,
				})
			}
		}
	}

	// Second pass: remove entities (query iteration complete).
	for _, e := range expired {
		g.world.RemoveEntity(e)
		g.pickupCount--
	}
	for _, hit := range collected {
		g.collect(hit)
	}
}

// collect applies a pickup's effect and removes its entity.
func (g *Game) collect(hit pickupHit) {
	cfg := config.Cfg()

	res := systems.ApplyPowerup(g.rider, hit.kind)
	g.particles.EmitBurst(hit.pos, pickupPalette[hit.kind], cfg.Powerups.CollectBurst)
	g.shake = float32(cfg.Powerups.ShakeImpulse)
	if res.SlowTime {
		g.slowTime = float32(cfg.Powerups.SlowTimeFactor)
	}

	switch hit.kind {
	case components.PowerupSpeedBoost:
		g.sounds.Play(audio.SoundBoost)
	case components.PowerupShield:
		g.sounds.Play(audio.SoundShield)
	default:
		g.sounds.Play(audio.SoundPickup)
	}

	g.world.RemoveEntity(hit.entity)
	g.pickupCount--
}

// clearPickups removes every pickup entity.
func (g *Game) clearPickups() {
	var all []ecs.Entity
	query := g.pickupFilter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, e := range all {
		g.world.RemoveEntity(e)
	}
	g.pickupCount = 0
}

// nearestEnergyPickup returns the closest energy pickup to the rider's
// head, or ok=false when none are live.
func (g *Game) nearestEnergyPickup() (systems.Vec3, bool) {
	head := g.rider.Head().Pos
	var best systems.Vec3
	bestDist := float32(0)
	found := false

	query := g.pickupFilter.Query()
	for query.Next() {
		pos, _, _, pow := query.Get()
		if pow.Kind != components.PowerupEnergy {
			continue
		}
		p := systems.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z}
		d := head.DistanceSq(p)
		if !found || d < bestDist {
			best = p
			bestDist = d
			found = true
		}
	}
	return best, found
}

// energyPickupPositions lists live energy pickups for the indicator layer.
func (g *Game) energyPickupPositions() []rl.Vector3 {
	var out []rl.Vector3
	query := g.pickupFilter.Query()
	for query.Next() {
		pos, _, _, pow := query.Get()
		if pow.Kind != components.PowerupEnergy {
			continue
		}
		out = append(out, rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z})
	}
	return out
}

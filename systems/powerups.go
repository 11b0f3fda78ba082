package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/widdershins/components"
	"github.com/pthm-cable/widdershins/config"
)

// CollectResult reports the side effects of a collection that the
// rider itself cannot apply.
type CollectResult struct {
	Grew     bool // a segment was added to the chain
	SlowTime bool // the session should enter slow time
}

// RollPowerupKind picks a random kind, re-rolled toward energy so that
// runs are survivable.
func RollPowerupKind(rng *rand.Rand) components.PowerupKind {
	cfg := config.Cfg()

	kind := components.PowerupKind(rng.Intn(components.NumPowerupKinds))
	if rng.Intn(100) < cfg.Powerups.EnergyWeightPct {
		kind = components.PowerupEnergy
	}
	return kind
}

// RollSpawnPosition picks a point on a random ring around the arena
// center, inside the boundary at float height.
func RollSpawnPosition(rng *rand.Rand) Vec3 {
	cfg := config.Cfg()

	angle := rng.Float64() * 2 * math.Pi
	dist := cfg.Powerups.SpawnRadiusMin + rng.Float64()*cfg.Powerups.SpawnRadiusFrac*cfg.Arena.Size
	return Vec3{
		X: float32(math.Cos(angle) * dist),
		Y: float32(cfg.Powerups.BaseHeight),
		Z: float32(math.Sin(angle) * dist),
	}
}

// RollBobOffset picks a phase offset so pickups bob out of sync.
func RollBobOffset(rng *rand.Rand) float32 {
	return rng.Float32() * 10
}

// NextSpawnInterval picks the delay before the next spawn. Higher
// difficulty spawns faster.
func NextSpawnInterval(rng *rand.Rand, diffMult float32) float32 {
	cfg := config.Cfg()

	base := float32(cfg.Powerups.SpawnBase) + rng.Float32()*float32(cfg.Powerups.SpawnJitter)
	return base / diffMult
}

// BobHeight returns the hover height of a pickup at the given game time.
func BobHeight(gameTime, bobOffset float32) float32 {
	cfg := config.Cfg()

	bob := math.Sin(float64(gameTime)*cfg.Powerups.BobRate + float64(bobOffset))
	return float32(cfg.Powerups.BaseHeight + bob*cfg.Powerups.BobAmplitude)
}

// ApplyPowerup applies a collected pickup's effect to the rider and
// credits the flat collection score. Growth and slow time are reported
// back for the caller to handle.
func ApplyPowerup(r *Rider, kind components.PowerupKind) CollectResult {
	cfg := config.Cfg()

	var res CollectResult
	switch kind {
	case components.PowerupEnergy:
		r.AddEnergy(cfg.Derived.EnergyRefill)
	case components.PowerupSpeedBoost:
		r.Boosted = true
		r.BoostTimer = float32(cfg.Rider.BoostDuration)
	case components.PowerupSlowTime:
		res.SlowTime = true
	case components.PowerupShield:
		r.ShieldTimer = float32(cfg.Rider.ShieldDuration)
	case components.PowerupShrink:
		r.Shrink(cfg.Powerups.ShrinkCount)
	case components.PowerupBonusPoints:
		r.Score += float32(cfg.Powerups.BonusScore)
	}

	r.Score += float32(cfg.Powerups.CollectScore)

	if kind == components.PowerupEnergy {
		res.Grew = r.Grow()
	}
	return res
}

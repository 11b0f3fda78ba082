// Package components defines ECS components for world pickups.
package components

// Position represents an entity's world position.
type Position struct {
	X, Y, Z float32
}

// Spin holds a pickup's animation state: accumulated rotation plus the
// per-entity phase offset for the vertical bob.
type Spin struct {
	Rotation  float32
	BobOffset float32
}

// Lifetime counts down the seconds an entity stays in the world.
// Entities despawn when it reaches zero.
type Lifetime struct {
	Remaining float32
}

// PowerupKind identifies a pickup's effect.
type PowerupKind uint8

const (
	PowerupEnergy PowerupKind = iota
	PowerupSpeedBoost
	PowerupSlowTime
	PowerupShield
	PowerupShrink
	PowerupBonusPoints
	powerupKindCount
)

// NumPowerupKinds is the size of the kind set the spawner rolls over.
const NumPowerupKinds = int(powerupKindCount)

// String returns a short lowercase name for logs and telemetry.
func (k PowerupKind) String() string {
	switch k {
	case PowerupEnergy:
		return "energy"
	case PowerupSpeedBoost:
		return "boost"
	case PowerupSlowTime:
		return "slowtime"
	case PowerupShield:
		return "shield"
	case PowerupShrink:
		return "shrink"
	case PowerupBonusPoints:
		return "bonus"
	default:
		return "unknown"
	}
}

// Powerup tags an entity as a collectible pickup.
type Powerup struct {
	Kind PowerupKind
}

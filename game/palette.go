package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/widdershins/components"
	"github.com/pthm-cable/widdershins/systems"
)

// pickupPalette maps each powerup kind to its display and burst color.
var pickupPalette = [components.NumPowerupKinds]systems.RGBA{
	components.PowerupEnergy:      {R: 102, G: 191, B: 255, A: 255}, // sky blue
	components.PowerupSpeedBoost:  {R: 253, G: 249, B: 0, A: 255},   // yellow
	components.PowerupSlowTime:    {R: 200, G: 122, B: 255, A: 255}, // purple
	components.PowerupShield:      {R: 0, G: 228, B: 48, A: 255},    // green
	components.PowerupShrink:      {R: 255, G: 161, B: 0, A: 255},   // orange
	components.PowerupBonusPoints: {R: 255, G: 203, B: 0, A: 255},   // gold
}

// Burst colors for rider events.
var (
	lapBurstColor   = systems.RGBA{R: 255, G: 203, B: 0, A: 255}   // gold
	wallBurstColor  = systems.RGBA{R: 102, G: 191, B: 255, A: 255} // sky blue
	deathBurstColor = systems.RGBA{R: 230, G: 41, B: 55, A: 255}   // red
)

// toRl converts a simulation color to a raylib color.
func toRl(c systems.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// vec converts a simulation vector to a raylib vector.
func vec(v systems.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

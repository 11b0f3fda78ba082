// Package camera provides the orbit chase camera rig.
package camera

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/widdershins/config"
	"github.com/pthm-cable/widdershins/systems"
)

// pitchMargin keeps the pitch off the poles where the view flips.
const pitchMargin = 0.01

// Rig is an orbit camera that tracks the rider. The target eases after
// the head while yaw, pitch, and distance stay under player control.
type Rig struct {
	// Target is the point the camera looks at, in world coordinates
	Target systems.Vec3

	// Distance from target to eye
	Distance float32

	// Yaw is the horizontal rotation around the Y axis
	Yaw float32

	// Pitch is the vertical rotation measured from straight up
	Pitch float32
}

// NewRig creates a rig with the configured framing, aimed at the origin.
func NewRig() *Rig {
	cfg := config.Cfg()
	return &Rig{
		Distance: float32(cfg.Camera.Distance),
		Yaw:      float32(cfg.Camera.Yaw),
		Pitch:    float32(cfg.Camera.Pitch),
	}
}

// Follow eases the target toward a point ahead of the head so the view
// leads into the turn, then applies shake jitter on top. Call once per
// frame while a run is live.
func (r *Rig) Follow(head systems.Vec3, heading, shake float32, rng *rand.Rand) {
	cfg := config.Cfg()

	sin, cos := math.Sincos(float64(heading))
	ahead := float32(cfg.Camera.LookAhead)
	look := systems.Vec3{
		X: head.X + float32(sin)*ahead,
		Y: head.Y,
		Z: head.Z + float32(cos)*ahead,
	}
	r.Target = r.Target.Lerp(look, float32(cfg.Camera.FollowLerp))

	// Jitter sticks to the target and decays through the ease above
	if shake > 0 {
		r.Target.X += (rng.Float32() - 0.5) * shake
		r.Target.Z += (rng.Float32() - 0.5) * shake
	}
}

// Orbit rotates the rig by a mouse drag delta in pixels.
func (r *Rig) Orbit(dx, dy float32) {
	sens := float32(config.Cfg().Camera.Sensitivity)

	r.Yaw -= dx * sens
	r.Pitch -= dy * sens
	r.Pitch = clampf(r.Pitch, pitchMargin, math.Pi-pitchMargin)
}

// Zoom scales the orbit distance by mouse wheel notches.
func (r *Rig) Zoom(wheel float32) {
	if wheel == 0 {
		return
	}
	cfg := config.Cfg()

	r.Distance -= wheel * r.Distance * float32(cfg.Camera.ZoomStep)
	r.Distance = clampf(r.Distance, float32(cfg.Camera.MinDistance), float32(cfg.Camera.MaxDistance))
}

// Position returns the eye point for the current target and angles.
func (r *Rig) Position() systems.Vec3 {
	sinV, cosV := math.Sincos(float64(r.Pitch))
	sinH, cosH := math.Sincos(float64(r.Yaw))
	d := float64(r.Distance)

	return systems.Vec3{
		X: r.Target.X + float32(d*sinV*cosH),
		Y: r.Target.Y + float32(d*cosV),
		Z: r.Target.Z + float32(d*sinV*sinH),
	}
}

// Reset restores the configured framing and snaps the target to origin.
func (r *Rig) Reset() {
	cfg := config.Cfg()

	r.Target = systems.Vec3{}
	r.Distance = float32(cfg.Camera.Distance)
	r.Yaw = float32(cfg.Camera.Yaw)
	r.Pitch = float32(cfg.Camera.Pitch)
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

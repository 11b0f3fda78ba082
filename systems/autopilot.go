package systems

import (
	"math"

	"github.com/pthm-cable/widdershins/config"
)

// AutopilotParams weight the steering pressures of the self-playing
// pilot. Kept as float64 so parameter search can optimize the vector
// form directly.
type AutopilotParams struct {
	WallRange float64 // look-ahead distance for boundary avoidance
	WallGain  float64
	BodyRange float64 // radius for own-body avoidance
	BodyGain  float64
	AlignGain float64 // pull toward the nearest pickup
}

// DefaultAutopilotParams returns hand-tuned baseline weights.
func DefaultAutopilotParams() AutopilotParams {
	return AutopilotParams{
		WallRange: 12,
		WallGain:  1.5,
		BodyRange: 4,
		BodyGain:  2.0,
		AlignGain: 0.8,
	}
}

// Vector flattens the params for the optimizer.
func (p AutopilotParams) Vector() []float64 {
	return []float64{p.WallRange, p.WallGain, p.BodyRange, p.BodyGain, p.AlignGain}
}

// AutopilotParamsFromVector rebuilds params from an optimizer vector.
// Ranges are forced positive so a search cannot produce a pilot that
// steers toward walls.
func AutopilotParamsFromVector(v []float64) AutopilotParams {
	p := DefaultAutopilotParams()
	if len(v) > 0 {
		p.WallRange = math.Max(math.Abs(v[0]), 1)
	}
	if len(v) > 1 {
		p.WallGain = math.Abs(v[1])
	}
	if len(v) > 2 {
		p.BodyRange = math.Max(math.Abs(v[2]), 1)
	}
	if len(v) > 3 {
		p.BodyGain = math.Abs(v[3])
	}
	if len(v) > 4 {
		p.AlignGain = math.Abs(v[4])
	}
	return p
}

// Autopilot computes a turn signal in [0, 1] for a rider that can only
// turn counterclockwise. target is the nearest pickup position, valid
// only when ok is true.
func Autopilot(p AutopilotParams, r *Rider, target Vec3, ok bool) float32 {
	cfg := config.Cfg()
	half := cfg.Derived.HalfArena

	head := r.Segments[0]
	sin, cos := math.Sincos(float64(r.Heading))
	dir := Vec3{float32(sin), 0, float32(cos)}

	var pressure float64

	// Boundary: probe ahead of the head, turn harder the deeper the
	// probe lands out of bounds.
	probe := head.Pos.Add(dir.Scale(float32(p.WallRange)))
	overX := float64(absf(probe.X)) - float64(half)
	overZ := float64(absf(probe.Z)) - float64(half)
	if over := math.Max(overX, overZ); over > 0 {
		pressure += p.WallGain * math.Min(over/p.WallRange, 1)
	}

	// Own body: steer off segments that are close and in front.
	for i := cfg.Rider.CollisionSkip; i < len(r.Segments); i++ {
		to := r.Segments[i].Pos.Sub(head.Pos)
		d := to.Length()
		if d == 0 || d >= float32(p.BodyRange) {
			continue
		}
		if to.X*dir.X+to.Z*dir.Z <= 0 {
			continue
		}
		pressure += p.BodyGain * float64(1-d/float32(p.BodyRange))
	}

	// Target: only a counterclockwise turn can close the bearing, so
	// pressure grows with the angle still to cover. A target that sits
	// clockwise is left alone until the chain comes back around.
	if ok {
		to := target.Sub(head.Pos)
		bearing := float32(math.Atan2(float64(to.X), float64(to.Z)))
		delta := normalizeAngle(bearing - r.Heading)
		if delta > 0 {
			pressure += p.AlignGain * float64(delta) / math.Pi
		}
	}

	return clampFloat(float32(pressure), 0, 1)
}

package systems

import (
	"math"

	"github.com/pthm-cable/widdershins/config"
)

// DeathCause identifies what ended a run.
type DeathCause uint8

const (
	DeathNone DeathCause = iota
	DeathEnergy
	DeathCollision
)

func (c DeathCause) String() string {
	switch c {
	case DeathEnergy:
		return "energy"
	case DeathCollision:
		return "collision"
	default:
		return "none"
	}
}

// Segment is one link of the rider chain.
type Segment struct {
	Pos     Vec3
	PrevPos Vec3
	Angle   float32
	Color   [3]uint8
	Glow    float32
	Head    bool
}

// StepEvents reports what happened during one simulation step so the
// caller can drive effects and audio without the rider knowing about them.
type StepEvents struct {
	Turned        bool
	LapsCompleted int
	LapPos        Vec3
	WrapBursts    [2]Vec3
	WrapCount     int
	Died          bool
	Cause         DeathCause
}

// Rider is the player-controlled chain. It can only turn counterclockwise.
type Rider struct {
	Segments      []Segment
	Heading       float32 // radians, 0 faces +Z
	TotalRotation float32 // accumulated turn since the last completed lap
	Laps          int
	Speed         float32 // units per second, difficulty already folded in
	Energy        float32
	Score         float32
	Alive         bool
	Boosted       bool
	BoostTimer    float32
	ShieldTimer   float32
}

// NewRider creates a rider at the arena origin heading toward +Z.
// Difficulty scales speed once here rather than every step.
func NewRider(diffMult float32) *Rider {
	cfg := config.Cfg()

	n := cfg.Rider.InitialSegments
	r := &Rider{
		Segments: make([]Segment, n, cfg.Rider.MaxSegments),
		Speed:    float32(cfg.Rider.Speed) * diffMult,
		Energy:   cfg.Derived.MaxEnergy,
		Alive:    true,
	}

	spacing := cfg.Derived.SegmentSpacing
	for i := range r.Segments {
		seg := &r.Segments[i]
		seg.Pos = Vec3{0, cfg.Derived.RideHeight, -float32(i) * spacing}
		seg.PrevPos = seg.Pos
		seg.Head = i == 0

		// Gradient from bright cyan at the head to blue at the tail
		t := float32(i) / float32(n)
		seg.Color = [3]uint8{
			uint8(100 + 155*(1-t)),
			uint8(200 + 55*(1-t)),
			255,
		}
		seg.Glow = 1 - t*0.5
	}
	return r
}

// Head returns the lead segment.
func (r *Rider) Head() *Segment {
	return &r.Segments[0]
}

// Step advances the rider by dt seconds. signal is the turn input in [0, 1].
// dt must already be scaled by any slow-time effect; diffMult scales the
// turn rate and energy drain but not speed, which was scaled at creation.
func (r *Rider) Step(signal, dt, diffMult float32) StepEvents {
	var ev StepEvents
	if !r.Alive {
		return ev
	}

	r.Turn(signal, dt, diffMult, &ev)
	r.Advance(dt)
	r.FollowChain()
	r.WrapBoundary(&ev)
	r.DrainEnergy(dt, diffMult, &ev)
	r.CheckSelfCollision(&ev)

	if r.ShieldTimer > 0 {
		r.ShieldTimer -= dt
	}

	r.Score += config.Cfg().Derived.PassiveScore * dt
	return ev
}

// Turn rotates the heading counterclockwise by the turn input and credits
// completed laps. A lap only registers while actively turning.
func (r *Rider) Turn(signal, dt, diffMult float32, ev *StepEvents) {
	if signal <= 0 {
		return
	}
	cfg := config.Cfg()

	amount := cfg.Derived.TurnSpeed * signal * dt * diffMult
	r.Heading += amount
	r.TotalRotation += amount
	ev.Turned = true

	for r.TotalRotation >= 2*math.Pi {
		r.Laps++
		r.TotalRotation -= 2 * math.Pi
		r.Score += cfg.Derived.LapBonus * float32(r.Laps)
		ev.LapsCompleted++
		ev.LapPos = r.Segments[0].Pos
	}
}

// Advance moves the head along the current heading and ticks the boost timer.
func (r *Rider) Advance(dt float32) {
	cfg := config.Cfg()

	speed := r.Speed
	if r.Boosted && r.BoostTimer > 0 {
		speed *= cfg.Derived.BoostFactor
		r.BoostTimer -= dt
		if r.BoostTimer <= 0 {
			r.Boosted = false
		}
	}

	head := &r.Segments[0]
	head.PrevPos = head.Pos
	sin, cos := math.Sincos(float64(r.Heading))
	head.Pos.X += float32(sin) * speed * dt
	head.Pos.Z += float32(cos) * speed * dt
	head.Angle = r.Heading
}

// FollowChain pulls each body segment toward its predecessor, keeping
// the chain taut at the configured spacing.
func (r *Rider) FollowChain() {
	cfg := config.Cfg()
	spacing := cfg.Derived.SegmentSpacing
	lerp := cfg.Derived.FollowLerp

	for i := 1; i < len(r.Segments); i++ {
		seg := &r.Segments[i]
		prev := &r.Segments[i-1]

		seg.PrevPos = seg.Pos

		toTarget := prev.Pos.Sub(seg.Pos)
		dist := toTarget.Length()
		if dist > spacing {
			target := prev.Pos.Sub(toTarget.Normalize().Scale(spacing))
			seg.Pos = seg.Pos.Lerp(target, lerp)
			seg.Angle = float32(math.Atan2(float64(toTarget.X), float64(toTarget.Z)))
		}
	}
}

// WrapBoundary reflects the head across the arena center when it leaves
// the field, once per axis. The inset keeps the reentry point inside.
func (r *Rider) WrapBoundary(ev *StepEvents) {
	cfg := config.Cfg()
	half := cfg.Derived.HalfArena
	inset := cfg.Derived.WrapInset

	head := &r.Segments[0]
	if absf(head.Pos.X) > half {
		head.Pos.X = -head.Pos.X * inset
		if ev.WrapCount < len(ev.WrapBursts) {
			ev.WrapBursts[ev.WrapCount] = head.Pos
			ev.WrapCount++
		}
	}
	if absf(head.Pos.Z) > half {
		head.Pos.Z = -head.Pos.Z * inset
		if ev.WrapCount < len(ev.WrapBursts) {
			ev.WrapBursts[ev.WrapCount] = head.Pos
			ev.WrapCount++
		}
	}
}

// DrainEnergy applies the passive energy cost of staying alive.
func (r *Rider) DrainEnergy(dt, diffMult float32, ev *StepEvents) {
	cfg := config.Cfg()

	r.Energy -= cfg.Derived.EnergyDrain * dt * diffMult
	if r.Energy <= 0 {
		r.Energy = 0
		r.Alive = false
		ev.Died = true
		ev.Cause = DeathEnergy
	}
}

// CheckSelfCollision kills the rider if the head touches its own body.
// Segments immediately behind the head are exempt so that tight turns
// do not self-destruct. An active shield ignores the hit entirely.
func (r *Rider) CheckSelfCollision(ev *StepEvents) {
	cfg := config.Cfg()
	hitDist := cfg.Derived.SegmentSize

	head := r.Segments[0].Pos
	for i := cfg.Rider.CollisionSkip; i < len(r.Segments); i++ {
		if head.Distance(r.Segments[i].Pos) < hitDist {
			if r.ShieldTimer <= 0 {
				r.Alive = false
				ev.Died = true
				ev.Cause = DeathCollision
			}
		}
	}
}

// Grow appends a copy of the tail segment one spacing behind it.
// Returns false when the chain is already at capacity.
func (r *Rider) Grow() bool {
	cfg := config.Cfg()
	if len(r.Segments) >= cfg.Rider.MaxSegments-1 {
		return false
	}

	seg := r.Segments[len(r.Segments)-1]
	seg.Pos.Z -= cfg.Derived.SegmentSpacing
	seg.PrevPos = seg.Pos
	seg.Head = false
	r.Segments = append(r.Segments, seg)
	return true
}

// Shrink drops up to n tail segments, never below the starting length.
func (r *Rider) Shrink(n int) {
	cfg := config.Cfg()
	min := cfg.Rider.InitialSegments
	if len(r.Segments) <= min {
		return
	}
	target := len(r.Segments) - n
	if target < min {
		target = min
	}
	r.Segments = r.Segments[:target]
}

// AddEnergy credits energy, clamped to the configured maximum.
func (r *Rider) AddEnergy(amount float32) {
	cfg := config.Cfg()
	r.Energy = clampFloat(r.Energy+amount, 0, cfg.Derived.MaxEnergy)
}

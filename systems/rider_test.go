package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/widdershins/config"
)

// ensureConfig makes sure the package config is initialized before a
// test touches the simulation. Safe to call repeatedly.
func ensureConfig() {
	config.MustInit("")
}

// ---------- NewRider ----------

func TestNewRider_InitialState(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)

	if len(r.Segments) != cfg.Rider.InitialSegments {
		t.Fatalf("expected %d segments, got %d", cfg.Rider.InitialSegments, len(r.Segments))
	}
	if !r.Alive {
		t.Error("new rider should be alive")
	}
	if r.Energy != cfg.Derived.MaxEnergy {
		t.Errorf("expected full energy %f, got %f", cfg.Derived.MaxEnergy, r.Energy)
	}
	if r.Heading != 0 {
		t.Errorf("expected heading 0, got %f", r.Heading)
	}
	if !r.Segments[0].Head {
		t.Error("first segment should be the head")
	}
	for i := 1; i < len(r.Segments); i++ {
		if r.Segments[i].Head {
			t.Errorf("segment %d should not be flagged as head", i)
		}
	}

	// Segments line up behind the head along -Z
	spacing := cfg.Derived.SegmentSpacing
	for i, seg := range r.Segments {
		wantZ := -float32(i) * spacing
		if math.Abs(float64(seg.Pos.Z-wantZ)) > 1e-6 {
			t.Errorf("segment %d: expected z %f, got %f", i, wantZ, seg.Pos.Z)
		}
		if seg.Pos.X != 0 {
			t.Errorf("segment %d: expected x 0, got %f", i, seg.Pos.X)
		}
	}
}

func TestNewRider_DifficultyScalesSpeed(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()

	easy := NewRider(1)
	hard := NewRider(2)

	if math.Abs(float64(easy.Speed-float32(cfg.Rider.Speed))) > 1e-6 {
		t.Errorf("expected easy speed %f, got %f", cfg.Rider.Speed, easy.Speed)
	}
	if math.Abs(float64(hard.Speed-2*easy.Speed)) > 1e-6 {
		t.Errorf("expected hardcore speed %f, got %f", 2*easy.Speed, hard.Speed)
	}
}

func TestNewRider_GradientBrightestAtHead(t *testing.T) {
	ensureConfig()
	r := NewRider(1)

	for i := 1; i < len(r.Segments); i++ {
		if r.Segments[i].Color[0] >= r.Segments[i-1].Color[0] {
			t.Errorf("segment %d should be darker than segment %d", i, i-1)
		}
		if r.Segments[i].Glow >= r.Segments[i-1].Glow {
			t.Errorf("segment %d glow should fade toward the tail", i)
		}
	}
}

// ---------- Turn ----------

func TestTurn_HeadingOnlyIncreases(t *testing.T) {
	ensureConfig()
	r := NewRider(1)
	dt := float32(1.0 / 60.0)

	last := r.Heading
	for i := 0; i < 100; i++ {
		var ev StepEvents
		r.Turn(1, dt, 1, &ev)
		if r.Heading < last {
			t.Fatalf("heading decreased from %f to %f", last, r.Heading)
		}
		last = r.Heading
	}
}

func TestTurn_ZeroSignalNoOp(t *testing.T) {
	ensureConfig()
	r := NewRider(1)

	var ev StepEvents
	r.Turn(0, 1.0/60, 1, &ev)

	if r.Heading != 0 || r.TotalRotation != 0 {
		t.Errorf("zero signal should not rotate, heading=%f rotation=%f", r.Heading, r.TotalRotation)
	}
	if ev.Turned {
		t.Error("zero signal should not report a turn")
	}
}

func TestTurn_RateScalesWithSignalAndDifficulty(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	dt := float32(1.0 / 60.0)

	r := NewRider(1)
	var ev StepEvents
	r.Turn(0.5, dt, 2, &ev)

	want := cfg.Derived.TurnSpeed * 0.5 * dt * 2
	if math.Abs(float64(r.Heading-want)) > 1e-6 {
		t.Errorf("expected heading %f, got %f", want, r.Heading)
	}
}

func TestTurn_LapAwardsEscalatingBonus(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)
	dt := float32(1.0 / 120.0)

	// First full rotation
	for r.Laps == 0 {
		var ev StepEvents
		r.Turn(1, dt, 1, &ev)
		if ev.LapsCompleted > 0 && r.Laps != 1 {
			t.Fatalf("expected 1 lap after first completion, got %d", r.Laps)
		}
	}
	firstBonus := r.Score
	want := cfg.Derived.LapBonus
	if math.Abs(float64(firstBonus-want)) > 1e-4 {
		t.Errorf("expected first lap bonus %f, got %f", want, firstBonus)
	}
	if r.TotalRotation >= 2*math.Pi {
		t.Errorf("rotation should wrap below a full turn, got %f", r.TotalRotation)
	}

	// Second rotation pays double
	for r.Laps == 1 {
		var ev StepEvents
		r.Turn(1, dt, 1, &ev)
	}
	secondBonus := r.Score - firstBonus
	if math.Abs(float64(secondBonus-2*want)) > 1e-3 {
		t.Errorf("expected second lap bonus %f, got %f", 2*want, secondBonus)
	}
}

// ---------- Advance ----------

func TestAdvance_MovesAlongHeading(t *testing.T) {
	ensureConfig()
	r := NewRider(1)
	dt := float32(0.1)

	start := r.Segments[0].Pos
	r.Advance(dt)
	head := r.Segments[0]

	// Heading 0 faces +Z
	wantZ := start.Z + r.Speed*dt
	if math.Abs(float64(head.Pos.Z-wantZ)) > 1e-5 {
		t.Errorf("expected head z %f, got %f", wantZ, head.Pos.Z)
	}
	if math.Abs(float64(head.Pos.X-start.X)) > 1e-5 {
		t.Errorf("head should not drift on x, got %f", head.Pos.X)
	}
	if head.PrevPos != start {
		t.Error("previous position should hold the pre-step position")
	}
}

func TestAdvance_BoostMultipliesSpeed(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	dt := float32(0.1)

	plain := NewRider(1)
	plain.Advance(dt)

	boosted := NewRider(1)
	boosted.Boosted = true
	boosted.BoostTimer = 1
	boosted.Advance(dt)

	plainDist := plain.Segments[0].Pos.Z
	boostDist := boosted.Segments[0].Pos.Z
	want := plainDist * cfg.Derived.BoostFactor
	if math.Abs(float64(boostDist-want)) > 1e-5 {
		t.Errorf("expected boosted travel %f, got %f", want, boostDist)
	}
}

func TestAdvance_BoostExpires(t *testing.T) {
	ensureConfig()
	r := NewRider(1)
	r.Boosted = true
	r.BoostTimer = 0.05

	r.Advance(0.1)

	if r.Boosted {
		t.Error("boost should expire once its timer runs out")
	}
}

// ---------- FollowChain ----------

func TestFollowChain_SegmentsOnlyMoveWhenStretched(t *testing.T) {
	ensureConfig()
	r := NewRider(1)

	// At rest the chain is exactly at spacing, nothing moves
	before := make([]Vec3, len(r.Segments))
	for i, seg := range r.Segments {
		before[i] = seg.Pos
	}
	r.FollowChain()
	for i := 1; i < len(r.Segments); i++ {
		if r.Segments[i].Pos != before[i] {
			t.Errorf("segment %d moved while chain was slack", i)
		}
	}
}

func TestFollowChain_ClosesStretchedGaps(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)

	// Drag the head far ahead and let the chain catch up
	r.Segments[0].Pos.Z += 5
	for i := 0; i < 200; i++ {
		r.FollowChain()
	}

	spacing := float64(cfg.Derived.SegmentSpacing)
	for i := 1; i < len(r.Segments); i++ {
		gap := float64(r.Segments[i-1].Pos.Distance(r.Segments[i].Pos))
		if gap > spacing+0.01 {
			t.Errorf("segment %d gap %f should settle near spacing %f", i, gap, spacing)
		}
	}
}

func TestFollowChain_AngleFacesPredecessor(t *testing.T) {
	ensureConfig()
	r := NewRider(1)

	// Move the head off to +X so segment 1 must turn toward it
	r.Segments[0].Pos = Vec3{5, 0.5, 0}
	r.FollowChain()

	to := r.Segments[0].Pos.Sub(r.Segments[1].PrevPos)
	want := math.Atan2(float64(to.X), float64(to.Z))
	if math.Abs(float64(r.Segments[1].Angle)-want) > 0.2 {
		t.Errorf("expected angle near %f, got %f", want, r.Segments[1].Angle)
	}
}

// ---------- WrapBoundary ----------

func TestWrapBoundary_ReflectsAcrossCenter(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)
	r.Segments[0].Pos.X = cfg.Derived.HalfArena + 1

	var ev StepEvents
	r.WrapBoundary(&ev)

	want := -(cfg.Derived.HalfArena + 1) * cfg.Derived.WrapInset
	if math.Abs(float64(r.Segments[0].Pos.X-want)) > 1e-5 {
		t.Errorf("expected reflected x %f, got %f", want, r.Segments[0].Pos.X)
	}
	if ev.WrapCount != 1 {
		t.Errorf("expected 1 wrap burst, got %d", ev.WrapCount)
	}
	if ev.WrapBursts[0] != r.Segments[0].Pos {
		t.Error("wrap burst should sit at the reentry point")
	}
}

func TestWrapBoundary_InsideNoOp(t *testing.T) {
	ensureConfig()
	r := NewRider(1)

	var ev StepEvents
	r.WrapBoundary(&ev)

	if ev.WrapCount != 0 {
		t.Errorf("expected no wrap inside the arena, got %d", ev.WrapCount)
	}
}

func TestWrapBoundary_BothAxes(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)
	r.Segments[0].Pos.X = cfg.Derived.HalfArena + 2
	r.Segments[0].Pos.Z = -(cfg.Derived.HalfArena + 3)

	var ev StepEvents
	r.WrapBoundary(&ev)

	if ev.WrapCount != 2 {
		t.Errorf("expected 2 wrap bursts, got %d", ev.WrapCount)
	}
	if r.Segments[0].Pos.X > 0 || r.Segments[0].Pos.Z < 0 {
		t.Error("both axes should reflect across center")
	}
}

// ---------- DrainEnergy ----------

func TestDrainEnergy_RateScalesWithDifficulty(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	dt := float32(1.0)

	r := NewRider(2)
	var ev StepEvents
	r.DrainEnergy(dt, 2, &ev)

	want := cfg.Derived.MaxEnergy - cfg.Derived.EnergyDrain*dt*2
	if math.Abs(float64(r.Energy-want)) > 1e-5 {
		t.Errorf("expected energy %f, got %f", want, r.Energy)
	}
	if ev.Died {
		t.Error("rider should survive a single drain tick")
	}
}

func TestDrainEnergy_DepletionKills(t *testing.T) {
	ensureConfig()
	r := NewRider(1)
	r.Energy = 0.01

	var ev StepEvents
	r.DrainEnergy(1, 1, &ev)

	if r.Alive {
		t.Error("rider should die at zero energy")
	}
	if r.Energy != 0 {
		t.Errorf("energy should clamp to 0, got %f", r.Energy)
	}
	if !ev.Died || ev.Cause != DeathEnergy {
		t.Errorf("expected energy death event, got died=%v cause=%v", ev.Died, ev.Cause)
	}
}

// ---------- CheckSelfCollision ----------

func TestCheckSelfCollision_NearSegmentsExempt(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)

	// Pile the exempt segments onto the head
	for i := 1; i < cfg.Rider.CollisionSkip; i++ {
		r.Segments[i].Pos = r.Segments[0].Pos
	}

	var ev StepEvents
	r.CheckSelfCollision(&ev)

	if !r.Alive || ev.Died {
		t.Error("segments behind the head should not collide")
	}
}

func TestCheckSelfCollision_DistantSegmentKills(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)
	r.Segments[cfg.Rider.CollisionSkip].Pos = r.Segments[0].Pos

	var ev StepEvents
	r.CheckSelfCollision(&ev)

	if r.Alive {
		t.Error("touching a distant segment should kill the rider")
	}
	if !ev.Died || ev.Cause != DeathCollision {
		t.Errorf("expected collision death event, got died=%v cause=%v", ev.Died, ev.Cause)
	}
}

func TestCheckSelfCollision_ShieldIgnoresHit(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)
	r.ShieldTimer = 5
	r.Segments[cfg.Rider.CollisionSkip].Pos = r.Segments[0].Pos

	var ev StepEvents
	r.CheckSelfCollision(&ev)

	if !r.Alive || ev.Died {
		t.Error("shielded rider should survive a self-collision")
	}
}

// ---------- Grow / Shrink ----------

func TestGrow_AppendsBehindTail(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)

	tail := r.Segments[len(r.Segments)-1]
	if !r.Grow() {
		t.Fatal("grow should succeed below capacity")
	}

	if len(r.Segments) != cfg.Rider.InitialSegments+1 {
		t.Fatalf("expected %d segments, got %d", cfg.Rider.InitialSegments+1, len(r.Segments))
	}
	got := r.Segments[len(r.Segments)-1]
	wantZ := tail.Pos.Z - cfg.Derived.SegmentSpacing
	if math.Abs(float64(got.Pos.Z-wantZ)) > 1e-6 {
		t.Errorf("expected new tail z %f, got %f", wantZ, got.Pos.Z)
	}
	if got.Head {
		t.Error("grown segment must not be a head")
	}
	if got.Color != tail.Color {
		t.Error("grown segment should copy the tail color")
	}
}

func TestGrow_StopsAtCapacity(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)

	for r.Grow() {
	}

	if len(r.Segments) != cfg.Rider.MaxSegments-1 {
		t.Errorf("expected growth to stop at %d segments, got %d", cfg.Rider.MaxSegments-1, len(r.Segments))
	}
}

func TestShrink_FloorsAtInitialLength(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)

	// At the starting length shrink is a no-op
	r.Shrink(3)
	if len(r.Segments) != cfg.Rider.InitialSegments {
		t.Errorf("shrink at minimum should be a no-op, got %d segments", len(r.Segments))
	}

	r.Grow()
	r.Shrink(3)
	if len(r.Segments) != cfg.Rider.InitialSegments {
		t.Errorf("shrink should clamp to %d, got %d", cfg.Rider.InitialSegments, len(r.Segments))
	}
}

// ---------- AddEnergy ----------

func TestAddEnergy_ClampsToMax(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)

	r.AddEnergy(50)
	if r.Energy != cfg.Derived.MaxEnergy {
		t.Errorf("energy should clamp at %f, got %f", cfg.Derived.MaxEnergy, r.Energy)
	}

	r.Energy = 10
	r.AddEnergy(20)
	if math.Abs(float64(r.Energy-30)) > 1e-6 {
		t.Errorf("expected energy 30, got %f", r.Energy)
	}
}

// ---------- Step ----------

func TestStep_DeadRiderNoOp(t *testing.T) {
	ensureConfig()
	r := NewRider(1)
	r.Alive = false
	before := r.Segments[0].Pos

	ev := r.Step(1, 1.0/60, 1)

	if r.Segments[0].Pos != before {
		t.Error("dead rider should not move")
	}
	if ev.Turned || ev.Died {
		t.Error("dead rider should produce no events")
	}
}

func TestStep_PassiveScoreAccrues(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)
	dt := float32(1.0 / 60.0)

	for i := 0; i < 60; i++ {
		r.Step(0, dt, 1)
	}

	want := cfg.Derived.PassiveScore // one second survived
	if math.Abs(float64(r.Score-want)) > 0.01 {
		t.Errorf("expected passive score near %f, got %f", want, r.Score)
	}
}

func TestStep_FullCircleCompletesLap(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)
	dt := float32(1.0 / 120.0)

	// Holding the turn for a full rotation takes 2*pi/turnSpeed seconds
	steps := int(float64(2*math.Pi)/(float64(cfg.Derived.TurnSpeed)*float64(dt))) + 2
	laps := 0
	for i := 0; i < steps; i++ {
		ev := r.Step(1, dt, 1)
		laps += ev.LapsCompleted
	}

	if laps != 1 {
		t.Fatalf("expected exactly 1 lap, got %d", laps)
	}
	if r.Laps != 1 {
		t.Errorf("expected lap counter 1, got %d", r.Laps)
	}
	elapsed := float32(steps) * dt
	wantMin := cfg.Derived.LapBonus + cfg.Derived.PassiveScore*elapsed*0.99
	if r.Score < wantMin {
		t.Errorf("score %f should cover the lap bonus plus passive accrual %f", r.Score, wantMin)
	}
}

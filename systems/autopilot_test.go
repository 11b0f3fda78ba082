package systems

import (
	"testing"

	"github.com/pthm-cable/widdershins/config"
)

// ---------- Steering pressures ----------

func TestAutopilot_OpenFieldNoTarget(t *testing.T) {
	ensureConfig()
	r := NewRider(1)
	p := DefaultAutopilotParams()

	signal := Autopilot(p, r, Vec3{}, false)

	if signal != 0 {
		t.Errorf("expected no turn pressure in an open field, got %f", signal)
	}
}

func TestAutopilot_WallAheadForcesTurn(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)
	p := DefaultAutopilotParams()

	// Aim the head straight at the +Z boundary from point blank
	r.Segments[0].Pos = Vec3{0, 0.5, cfg.Derived.HalfArena - 1}

	signal := Autopilot(p, r, Vec3{}, false)

	if signal <= 0 {
		t.Error("expected turn pressure approaching a wall")
	}
}

func TestAutopilot_WallPressureGrowsWithProximity(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	p := DefaultAutopilotParams()

	far := NewRider(1)
	far.Segments[0].Pos = Vec3{0, 0.5, cfg.Derived.HalfArena - float32(p.WallRange) + 1}
	near := NewRider(1)
	near.Segments[0].Pos = Vec3{0, 0.5, cfg.Derived.HalfArena - 1}

	farSignal := Autopilot(p, far, Vec3{}, false)
	nearSignal := Autopilot(p, near, Vec3{}, false)

	if nearSignal <= farSignal {
		t.Errorf("pressure should grow toward the wall: near=%f far=%f", nearSignal, farSignal)
	}
}

func TestAutopilot_BodyAheadForcesTurn(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)
	p := DefaultAutopilotParams()

	// Park a collidable segment directly in the head's path
	idx := cfg.Rider.CollisionSkip
	r.Segments[idx].Pos = r.Segments[0].Pos.Add(Vec3{0, 0, 2})

	signal := Autopilot(p, r, Vec3{}, false)

	if signal <= 0 {
		t.Error("expected turn pressure with the body ahead")
	}
}

func TestAutopilot_BodyBehindIgnored(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)
	p := DefaultAutopilotParams()

	// The trailing chain already sits behind the head; nudge one
	// collidable segment closer, still behind
	idx := cfg.Rider.CollisionSkip
	r.Segments[idx].Pos = r.Segments[0].Pos.Add(Vec3{0, 0, -2})

	signal := Autopilot(p, r, Vec3{}, false)

	if signal != 0 {
		t.Errorf("segments behind the head should not add pressure, got %f", signal)
	}
}

func TestAutopilot_TurnsTowardCounterclockwiseTarget(t *testing.T) {
	ensureConfig()
	r := NewRider(1)
	p := DefaultAutopilotParams()

	// Heading 0 faces +Z; a target at +X needs a positive heading change
	signal := Autopilot(p, r, Vec3{20, 1, 0}, true)

	if signal <= 0 {
		t.Error("expected pressure toward a reachable target")
	}
}

func TestAutopilot_IgnoresClockwiseTarget(t *testing.T) {
	ensureConfig()
	r := NewRider(1)
	p := DefaultAutopilotParams()

	// A target at -X sits clockwise, unreachable without a near-full lap
	signal := Autopilot(p, r, Vec3{-20, 1, 0}, true)

	if signal != 0 {
		t.Errorf("expected no pressure toward a clockwise target, got %f", signal)
	}
}

func TestAutopilot_SignalClamped(t *testing.T) {
	ensureConfig()
	cfg := config.Cfg()
	r := NewRider(1)
	p := DefaultAutopilotParams()
	p.WallGain = 100
	p.BodyGain = 100

	r.Segments[0].Pos = Vec3{0, 0.5, cfg.Derived.HalfArena - 0.5}
	idx := cfg.Rider.CollisionSkip
	r.Segments[idx].Pos = r.Segments[0].Pos.Add(Vec3{0, 0, 1})

	signal := Autopilot(p, r, Vec3{}, false)

	if signal < 0 || signal > 1 {
		t.Errorf("signal must stay in [0, 1], got %f", signal)
	}
	if signal != 1 {
		t.Errorf("stacked pressures should saturate the signal, got %f", signal)
	}
}

// ---------- Parameter vectors ----------

func TestAutopilotParams_VectorRoundTrip(t *testing.T) {
	p := DefaultAutopilotParams()

	got := AutopilotParamsFromVector(p.Vector())

	if got != p {
		t.Errorf("round trip changed params: %+v != %+v", got, p)
	}
}

func TestAutopilotParamsFromVector_ForcesSanePositives(t *testing.T) {
	p := AutopilotParamsFromVector([]float64{-8, -1.5, 0.2, -3, -0.5})

	if p.WallRange != 8 {
		t.Errorf("expected wall range 8, got %f", p.WallRange)
	}
	if p.WallGain != 1.5 {
		t.Errorf("expected wall gain 1.5, got %f", p.WallGain)
	}
	if p.BodyRange != 1 {
		t.Errorf("expected body range floored at 1, got %f", p.BodyRange)
	}
	if p.BodyGain != 3 || p.AlignGain != 0.5 {
		t.Errorf("expected gains 3 and 0.5, got %f and %f", p.BodyGain, p.AlignGain)
	}
}

func TestAutopilotParamsFromVector_ShortVectorKeepsDefaults(t *testing.T) {
	def := DefaultAutopilotParams()

	p := AutopilotParamsFromVector([]float64{20})

	if p.WallRange != 20 {
		t.Errorf("expected wall range 20, got %f", p.WallRange)
	}
	if p.WallGain != def.WallGain || p.AlignGain != def.AlignGain {
		t.Error("missing entries should fall back to defaults")
	}
}

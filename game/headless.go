package game

import (
	"github.com/pthm-cable/widdershins/systems"
)

// HeadlessResult summarizes a windowless autopilot run.
type HeadlessResult struct {
	Score    float32
	Laps     int
	Length   int // peak chain length reached
	Ticks    int
	Survived bool
}

// RunHeadless plays one session without a window at a fixed 60 Hz
// timestep, steering with the autopilot. It returns when the rider
// dies or after maxTicks, whichever comes first.
func (g *Game) RunHeadless(maxTicks int, params systems.AutopilotParams) HeadlessResult {
	const dt = float32(1.0 / 60.0)

	g.startSession()
	ticks := 0
	for g.screen == ScreenPlaying && ticks < maxTicks {
		target, ok := g.nearestEnergyPickup()
		signal := systems.Autopilot(params, g.rider, target, ok)
		g.step(dt, signal)
		ticks++
	}

	return HeadlessResult{
		Score:    g.rider.Score,
		Laps:     g.rider.Laps,
		Length:   g.peakLength,
		Ticks:    ticks,
		Survived: g.rider.Alive,
	}
}

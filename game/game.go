// Package game wires the simulation core to raylib: it owns the session
// state machine (menu, playing, game over), the ark world holding pickup
// entities, input gathering, rendering, and the per-tick pipeline.
package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/widdershins/audio"
	"github.com/pthm-cable/widdershins/camera"
	"github.com/pthm-cable/widdershins/components"
	"github.com/pthm-cable/widdershins/config"
	"github.com/pthm-cable/widdershins/systems"
	"github.com/pthm-cable/widdershins/telemetry"
	"github.com/pthm-cable/widdershins/ui"
)

// Screen identifies which top-level state the game is in.
type Screen uint8

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenGameOver
)

// Difficulty selects the speed and drain scaling for a session.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Hardcore
)

// Multiplier returns the scaling factor applied to speed, turn rate,
// energy drain and spawn frequency.
func (d Difficulty) Multiplier() float32 {
	if d == Hardcore {
		return float32(config.Cfg().Difficulty.HardcoreMultiplier)
	}
	return 1
}

func (d Difficulty) String() string {
	if d == Hardcore {
		return "hardcore"
	}
	return "easy"
}

// Options configures a new Game.
type Options struct {
	Seed       int64
	Audio      *audio.Bank           // nil runs silent
	Scores     *telemetry.HighScores // nil starts from zero
	ScoresPath string                // persisted on game over and shutdown; empty disables
	RunLog     *telemetry.RunLog     // nil discards round records
	Hardcore   bool
}

// Game holds the complete game state.
type Game struct {
	world ecs.World
	rng   *rand.Rand

	// Pickup entity access
	pickupMapper *ecs.Map4[components.Position, components.Spin, components.Lifetime, components.Powerup]
	pickupFilter *ecs.Filter4[components.Position, components.Spin, components.Lifetime, components.Powerup]

	rider     *systems.Rider
	particles *systems.ParticleSystem
	stars     *Starfield
	rig       *camera.Rig

	sounds     *audio.Bank
	scores     *telemetry.HighScores
	scoresPath string
	runlog     *telemetry.RunLog

	// UI views
	hud        *ui.HUD
	menuView   *ui.MenuView
	overView   *ui.GameOverView
	indicators *ui.Indicators

	// State
	screen     Screen
	paused     bool
	difficulty Difficulty
	showFPS    bool

	gameTime   float32
	slowTime   float32
	shake      float32
	spawnTimer float32

	pickupCount int // live pickup entities, capped at the configured pool size
	peakLength  int
	roundLogged bool
}

// NewGame creates a game starting at the menu screen. The caller owns the
// audio bank and run log passed in through opts.
func NewGame(opts Options) *Game {
	cfg := config.Cfg()

	scores := opts.Scores
	if scores == nil {
		scores = &telemetry.HighScores{}
	}

	g := &Game{
		world:      ecs.NewWorld(),
		rng:        rand.New(rand.NewSource(opts.Seed)),
		sounds:     opts.Audio,
		scores:     scores,
		scoresPath: opts.ScoresPath,
		runlog:     opts.RunLog,
		hud:        ui.NewHUD(),
		menuView:   ui.NewMenuView(),
		overView:   ui.NewGameOverView(),
		indicators: ui.NewIndicators(),
		screen:     ScreenMenu,
		slowTime:   1,
		showFPS:    true,
	}
	if opts.Hardcore {
		g.difficulty = Hardcore
	}

	g.pickupMapper = ecs.NewMap4[components.Position, components.Spin, components.Lifetime, components.Powerup](&g.world)
	g.pickupFilter = ecs.NewFilter4[components.Position, components.Spin, components.Lifetime, components.Powerup](&g.world)

	g.rider = systems.NewRider(g.difficulty.Multiplier())
	g.particles = systems.NewParticleSystem(cfg.Particles.PoolSize, g.rng)
	g.stars = NewStarfield(cfg.Stars.Count, g.rng)
	g.rig = camera.NewRig()
	g.peakLength = len(g.rider.Segments)

	return g
}

// startSession resets the playfield for a fresh round. Difficulty, high
// scores, the audio bank and the display toggles survive the reset.
func (g *Game) startSession() {
	cfg := config.Cfg()
	mult := g.difficulty.Multiplier()

	g.rider = systems.NewRider(mult)
	g.particles = systems.NewParticleSystem(cfg.Particles.PoolSize, g.rng)
	g.stars = NewStarfield(cfg.Stars.Count, g.rng)
	g.clearPickups()

	g.gameTime = 0
	g.slowTime = 1
	g.shake = 0
	g.spawnTimer = float32(cfg.Powerups.InitialDelay) / mult
	g.paused = false
	g.peakLength = len(g.rider.Segments)
	g.roundLogged = false
	g.screen = ScreenPlaying

	for i := 0; i < cfg.Powerups.InitialSpawns; i++ {
		g.spawnPickup()
	}

	slog.Info("round_started", "difficulty", g.difficulty.String())
}

// Update advances the game by one rendered frame.
func (g *Game) Update() {
	g.handleInput()

	if g.screen != ScreenPlaying || g.paused {
		return
	}

	g.step(rl.GetFrameTime(), g.turnSignal())

	if g.rider.Alive {
		g.rig.Follow(g.rider.Head().Pos, g.rider.Heading, g.shake, g.rng)
	}
}

// step runs one tick of the playing pipeline. The rider advances on
// slow-scaled time; particles, pickups and the ambient timers use raw dt.
func (g *Game) step(dt, turnSignal float32) {
	cfg := config.Cfg()
	mult := g.difficulty.Multiplier()

	g.gameTime += dt

	ev := g.rider.Step(turnSignal, dt*g.slowTime, mult)
	g.emitRiderEvents(ev)

	g.particles.Update(dt)
	g.updatePickups(dt)

	g.spawnTimer -= dt
	if g.spawnTimer <= 0 {
		g.spawnPickup()
		g.spawnTimer = systems.NextSpawnInterval(g.rng, mult)
	}

	// Slow-time wears off gradually.
	if g.slowTime < 1 {
		g.slowTime += float32(cfg.Powerups.SlowTimeRegen) * dt
		if g.slowTime > 1 {
			g.slowTime = 1
		}
	}

	if g.shake > 0 {
		g.shake -= float32(cfg.Camera.ShakeDecay) * dt
		if g.shake < 0 {
			g.shake = 0
		}
	}

	if n := len(g.rider.Segments); n > g.peakLength {
		g.peakLength = n
	}
}

// emitRiderEvents turns the tick's events into particles and sounds.
func (g *Game) emitRiderEvents(ev systems.StepEvents) {
	cfg := config.Cfg()

	if ev.Turned {
		g.sounds.PlayTurn(g.gameTime)
	}
	if ev.LapsCompleted > 0 {
		for i := 0; i < ev.LapsCompleted; i++ {
			g.particles.EmitBurst(ev.LapPos, lapBurstColor, cfg.Rider.LapBurst)
		}
		g.sounds.Play(audio.SoundLap)
	}
	for i := 0; i < ev.WrapCount; i++ {
		g.particles.EmitBurst(ev.WrapBursts[i], wallBurstColor, cfg.Arena.WallBurst)
	}

	if !ev.Died {
		return
	}
	switch ev.Cause {
	case systems.DeathEnergy:
		for i := range g.rider.Segments {
			g.particles.EmitBurst(g.rider.Segments[i].Pos, deathBurstColor, cfg.Rider.DeathBurst)
		}
	case systems.DeathCollision:
		g.particles.EmitBurst(g.rider.Head().Pos, deathBurstColor, cfg.Rider.CollisionBurst)
		g.sounds.Play(audio.SoundGameOver)
	}
	g.finishRound(ev.Cause)
}

// finishRound transitions to the game over screen, ratchets the high
// score and records the round.
func (g *Game) finishRound(cause systems.DeathCause) {
	g.screen = ScreenGameOver
	g.scores.Record(g.difficulty == Hardcore, int32(g.rider.Score))
	g.saveScores()

	if !g.roundLogged {
		g.roundLogged = true
		if err := g.runlog.Write(telemetry.RunRecord{
			Difficulty: g.difficulty.String(),
			Score:      int32(g.rider.Score),
			Laps:       g.rider.Laps,
			PeakLength: g.peakLength,
			Duration:   float64(g.gameTime),
			DeathCause: cause.String(),
		}); err != nil {
			slog.Warn("run_log_write_failed", "error", err)
		}
	}

	slog.Info("round_over",
		"difficulty", g.difficulty.String(),
		"score", int32(g.rider.Score),
		"laps", g.rider.Laps,
		"peak_length", g.peakLength,
		"duration_sec", g.gameTime,
		"cause", cause.String(),
	)
}

// saveScores persists high scores when a path is configured.
func (g *Game) saveScores() {
	if g.scoresPath == "" {
		return
	}
	if err := g.scores.Save(g.scoresPath); err != nil {
		slog.Warn("high_score_save_failed", "error", err)
	}
}

// Shutdown runs the final high-score ratchet and persists scores.
func (g *Game) Shutdown() {
	g.scores.Record(g.difficulty == Hardcore, int32(g.rider.Score))
	g.saveScores()
}

// Scores exposes the session's high-score table.
func (g *Game) Scores() *telemetry.HighScores {
	return g.scores
}

// CurrentScreen returns the current top-level state.
func (g *Game) CurrentScreen() Screen {
	return g.screen
}

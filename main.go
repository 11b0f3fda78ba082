package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/widdershins/audio"
	"github.com/pthm-cable/widdershins/config"
	"github.com/pthm-cable/widdershins/game"
	"github.com/pthm-cable/widdershins/systems"
	"github.com/pthm-cable/widdershins/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run one autopilot session without graphics")
	hardcore := flag.Bool("hardcore", false, "Start on hardcore difficulty")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 36000, "Headless run length in 60Hz ticks")
	outputDir := flag.String("output-dir", "", "Directory for the scores file and run log (empty = working directory)")
	dumpConfig := flag.String("dump-config", "", "Write the effective config to this path and exit")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *dumpConfig != "" {
		if err := cfg.WriteYAML(*dumpConfig); err != nil {
			slog.Error("failed to write config", "error", err)
			os.Exit(1)
		}
		slog.Info("config written", "path", *dumpConfig)
		return
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	scoresPath := resolvePath(*outputDir, cfg.Telemetry.ScoresFile)
	runLogPath := resolvePath(*outputDir, cfg.Telemetry.RunLogFile)

	var scores *telemetry.HighScores
	if scoresPath != "" {
		loaded, err := telemetry.LoadHighScores(scoresPath)
		if err != nil {
			slog.Error("failed to load high scores", "error", err)
			os.Exit(1)
		}
		scores = loaded
	}

	runLog, err := telemetry.NewRunLog(runLogPath)
	if err != nil {
		slog.Error("failed to open run log", "error", err)
		os.Exit(1)
	}
	defer runLog.Close()

	if *headless {
		g := game.NewGame(game.Options{
			Seed:       rngSeed,
			Scores:     scores,
			ScoresPath: scoresPath,
			RunLog:     runLog,
			Hardcore:   *hardcore,
		})

		slog.Info("starting headless run",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
			"hardcore", *hardcore,
		)

		res := g.RunHeadless(*maxTicks, systems.DefaultAutopilotParams())
		g.Shutdown()

		slog.Info("headless run finished",
			"score", res.Score,
			"laps", res.Laps,
			"peak_length", res.Length,
			"ticks", res.Ticks,
			"survived", res.Survived,
		)
		return
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Widdershins")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	bank := audio.NewBank()
	defer bank.Unload()

	g := game.NewGame(game.Options{
		Seed:       rngSeed,
		Audio:      bank,
		Scores:     scores,
		ScoresPath: scoresPath,
		RunLog:     runLog,
		Hardcore:   *hardcore,
	})

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}

	g.Shutdown()
}

// resolvePath joins a telemetry file name with the output directory.
// Empty names stay empty, which disables that consumer.
func resolvePath(dir, name string) string {
	if name == "" {
		return ""
	}
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// Spawn distribution preview tool - interactive visualization with sliders.
//
// Samples the real spawn rolls, so what the scatter shows is what a
// session gets.
//
// Usage: go run ./cmd/spawnview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/widdershins/components"
	"github.com/pthm-cable/widdershins/config"
	"github.com/pthm-cable/widdershins/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

// SpawnParams holds the adjustable spawn distribution knobs.
type SpawnParams struct {
	RadiusMin  float32
	RadiusFrac float32
	EnergyPct  int
	Samples    int
	Seed       int
}

func defaultParams() SpawnParams {
	cfg := config.Cfg()
	return SpawnParams{
		RadiusMin:  float32(cfg.Powerups.SpawnRadiusMin),
		RadiusFrac: float32(cfg.Powerups.SpawnRadiusFrac),
		EnergyPct:  cfg.Powerups.EnergyWeightPct,
		Samples:    2000,
		Seed:       12345,
	}
}

// sample is one rolled spawn.
type sample struct {
	pos  systems.Vec3
	kind components.PowerupKind
}

func main() {
	if err := config.Init(""); err != nil {
		panic(err)
	}
	cfg := config.Cfg()

	rl.InitWindow(windowWidth, windowHeight, "Spawn Distribution Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()
	samples := make([]sample, 0, params.Samples)
	var kindCounts [components.NumPowerupKinds]int

	needsRegen := true

	for !rl.WindowShouldClose() {
		if needsRegen {
			// Push the slider values into the live config so the real
			// roll functions see them.
			cfg.Powerups.SpawnRadiusMin = float64(params.RadiusMin)
			cfg.Powerups.SpawnRadiusFrac = float64(params.RadiusFrac)
			cfg.Powerups.EnergyWeightPct = params.EnergyPct

			rng := rand.New(rand.NewSource(int64(params.Seed)))
			samples = samples[:0]
			kindCounts = [components.NumPowerupKinds]int{}
			for i := 0; i < params.Samples; i++ {
				s := sample{
					pos:  systems.RollSpawnPosition(rng),
					kind: systems.RollPowerupKind(rng),
				}
				samples = append(samples, s)
				kindCounts[s.kind]++
			}
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawPreview(samples, params)

		// Per-kind shares
		statsY := int32(previewSize + 25)
		total := float32(len(samples))
		for k := components.PowerupKind(0); k < components.NumPowerupKinds; k++ {
			col := int32(k) % 3
			row := int32(k) / 3
			text := fmt.Sprintf("%s: %.1f%%", k.String(), float32(kindCounts[k])/total*100)
			rl.DrawText(text, 15+col*170, statsY+row*20, 16, kindColor(k))
		}

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Spawn Distribution Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Radius min slider
		rl.DrawText("Radius min (inner ring edge)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRadiusMin := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "50",
			params.RadiusMin, 0, 50,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.RadiusMin), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newRadiusMin != params.RadiusMin {
			params.RadiusMin = newRadiusMin
			needsRegen = true
		}
		panelY += 35

		// Radius fraction slider
		rl.DrawText("Radius span (fraction of arena size)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRadiusFrac := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "1.0",
			params.RadiusFrac, 0, 1.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.RadiusFrac), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newRadiusFrac != params.RadiusFrac {
			params.RadiusFrac = newRadiusFrac
			needsRegen = true
		}
		panelY += 35

		// Energy weight slider
		rl.DrawText("Energy weight (re-roll chance %)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newEnergyPct := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "100",
			float32(params.EnergyPct), 0, 100,
		)
		rl.DrawText(fmt.Sprintf("%d", params.EnergyPct), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newEnergyPct) != params.EnergyPct {
			params.EnergyPct = int(newEnergyPct)
			needsRegen = true
		}
		panelY += 35

		// Sample count slider
		rl.DrawText("Samples", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSamples := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"100", "5000",
			float32(params.Samples), 100, 5000,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Samples), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newSamples) != params.Samples {
			params.Samples = int(newSamples)
			needsRegen = true
		}
		panelY += 35

		// Seed slider
		rl.DrawText("Seed", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "99999",
			float32(params.Seed), 0, 99999,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Seed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newSeed) != params.Seed {
			params.Seed = int(newSeed)
			needsRegen = true
		}
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int(rl.GetRandomValue(0, 99999))
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			needsRegen = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yamlLines := []string{
			"powerups:",
			fmt.Sprintf("  spawn_radius_min: %.1f", params.RadiusMin),
			fmt.Sprintf("  spawn_radius_frac: %.2f", params.RadiusFrac),
			fmt.Sprintf("  energy_weight_pct: %d", params.EnergyPct),
		}
		for _, line := range yamlLines {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)

		if rl.IsKeyPressed(rl.KeyC) {
			yaml := fmt.Sprintf(`powerups:
  spawn_radius_min: %.1f
  spawn_radius_frac: %.2f
  energy_weight_pct: %d`,
				params.RadiusMin, params.RadiusFrac, params.EnergyPct)
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

// drawPreview renders the arena square, the spawn ring bounds, and the
// sampled spawns colored by kind.
func drawPreview(samples []sample, params SpawnParams) {
	cfg := config.Cfg()
	arena := float32(cfg.Arena.Size)
	half := arena / 2
	scale := float32(previewSize) / arena

	toScreen := func(x, z float32) (int32, int32) {
		return int32(10 + (x+half)*scale), int32(10 + (z+half)*scale)
	}

	rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

	// Spawn ring bounds
	cx, cy := toScreen(0, 0)
	rl.DrawCircleLines(cx, cy, params.RadiusMin*scale, rl.LightGray)
	outer := params.RadiusMin + params.RadiusFrac*arena
	rl.DrawCircleLines(cx, cy, outer*scale, rl.LightGray)

	// Rider start
	rl.DrawCircle(cx, cy, 4, rl.Black)

	for _, s := range samples {
		x, y := toScreen(s.pos.X, s.pos.Z)
		rl.DrawCircle(x, y, 2, kindColor(s.kind))
	}
}

// kindColor matches the in-game pickup palette.
func kindColor(kind components.PowerupKind) rl.Color {
	switch kind {
	case components.PowerupEnergy:
		return rl.SkyBlue
	case components.PowerupSpeedBoost:
		return rl.Yellow
	case components.PowerupSlowTime:
		return rl.Purple
	case components.PowerupShield:
		return rl.Green
	case components.PowerupShrink:
		return rl.Orange
	case components.PowerupBonusPoints:
		return rl.Gold
	default:
		return rl.DarkGray
	}
}

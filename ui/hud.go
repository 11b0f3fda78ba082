package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the in-game HUD.
type HUDData struct {
	Score        int32
	HighScore    int32
	Hardcore     bool
	EnergyFrac   float32 // current energy as a fraction of maximum
	GameTime     float32
	Boosted      bool
	ShieldTimer  float32
	Length       int
	Laps         int
	FPS          int32
	ShowFPS      bool
	SoundOn      bool
	GamepadOn    bool
	Paused       bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the in-game heads-up display.
type HUD struct {
	theme Theme
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{theme: DefaultTheme()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	w, sh := data.ScreenWidth, data.ScreenHeight

	drawCentered(Title, w, 10, 20, h.theme.Title)
	if data.Hardcore {
		drawCentered("HARDCORE MODE", w, 35, 14, h.theme.Hardcore)
	} else {
		drawCentered("EASY MODE", w, 35, 14, h.theme.Easy)
	}

	rl.DrawText(fmt.Sprintf("Score: %d", data.Score), 10, 60, 16, rl.White)
	if data.HighScore > 0 {
		rl.DrawText(fmt.Sprintf("High: %d", data.HighScore), 10, 80, 12, rl.Gold)
	}

	h.drawEnergyBar(data)

	if data.Boosted {
		drawCentered("BOOST!", w, 60, 24, rl.Yellow)
	}

	if data.ShowFPS {
		fpsColor := rl.Red
		switch {
		case data.FPS >= 55:
			fpsColor = rl.Green
		case data.FPS >= 30:
			fpsColor = rl.Yellow
		}
		rl.DrawText(fmt.Sprintf("FPS: %d", data.FPS), w-60, 5, 14, fpsColor)
	}

	if data.ShieldTimer > 0 {
		rl.DrawText(fmt.Sprintf("SHIELD: %.1fs", data.ShieldTimer), 10, 120, 12, rl.Green)
	}

	rl.DrawText(fmt.Sprintf("Length: %d", data.Length), 10, 135, 12, rl.SkyBlue)
	if data.Laps > 0 {
		rl.DrawText(fmt.Sprintf("Loops: %d", data.Laps), 10, 150, 12, rl.Gold)
	}

	// Control hints track whatever input device is active.
	if data.GamepadOn {
		rl.DrawText("SPACE/MOUSE/A/RT/L-STICK: Turn Left", w-220, sh-20, 10, rl.LightGray)
		rl.DrawText("LB/LT/L3/R3: Camera Zoom", w-220, sh-32, 9, rl.DarkGray)
	} else {
		rl.DrawText("SPACE or LEFT MOUSE: Turn Left", w-180, sh-20, 10, rl.LightGray)
	}

	if data.SoundOn {
		rl.DrawText("Sound: ON (S to toggle)", 10, sh-20, 10, rl.Green)
	} else {
		rl.DrawText("Sound: OFF (S to toggle)", 10, sh-20, 10, rl.DarkGray)
	}
	if data.ShowFPS {
		rl.DrawText("FPS: ON (F to toggle)", 10, sh-32, 10, rl.Green)
	} else {
		rl.DrawText("FPS: OFF (F to toggle)", 10, sh-32, 10, rl.DarkGray)
	}

	if data.Paused {
		drawCentered("PAUSED", w, sh/2-12, 24, rl.Yellow)
		resume := "Press P to resume"
		if data.GamepadOn {
			resume = "Press P or START to resume"
		}
		drawCentered(resume, w, sh/2+20, 14, rl.White)
	}
}

// drawEnergyBar draws the energy gauge, flashing white when nearly empty.
func (h *HUD) drawEnergyBar(data HUDData) {
	fill := h.theme.EnergyBarFill
	if data.EnergyFrac < 0.2 && math.Mod(float64(data.GameTime), 0.4) < 0.2 {
		fill = h.theme.EnergyBarFlash
	}
	rl.DrawRectangle(10, 100, 120, 12, h.theme.EnergyBarBg)
	rl.DrawRectangle(10, 100, int32(120*data.EnergyFrac), 12, fill)
	rl.DrawRectangleLines(10, 100, 120, 12, h.theme.EnergyBarBorder)
	rl.DrawText("ENERGY", 12, 101, 10, rl.White)
}

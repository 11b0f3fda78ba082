// Package ui draws the 2D layer: the in-game HUD, the menu and game
// over screens, and the pickup indicator arrows. Views take plain data
// structs so the game loop stays free of drawing concerns.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	// Title is the banner shown on the menu and above the playfield.
	Title = "WIDDERSHINS"
	// Subtitle is the one-line pitch under the menu title.
	Subtitle = "You can only steer LEFT!"
)

// Theme holds UI styling constants.
type Theme struct {
	Title    rl.Color
	Subtitle rl.Color
	Accent   rl.Color
	Easy     rl.Color
	Hardcore rl.Color

	EnergyBarBg     rl.Color
	EnergyBarFill   rl.Color
	EnergyBarFlash  rl.Color
	EnergyBarBorder rl.Color
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Title:           rl.White,
		Subtitle:        rl.SkyBlue,
		Accent:          rl.Yellow,
		Easy:            rl.Green,
		Hardcore:        rl.Red,
		EnergyBarBg:     rl.DarkGray,
		EnergyBarFill:   rl.SkyBlue,
		EnergyBarFlash:  rl.White,
		EnergyBarBorder: rl.White,
	}
}

// drawCentered draws text horizontally centered on the screen.
func drawCentered(text string, screenWidth, y, fontSize int32, col rl.Color) {
	rl.DrawText(text, screenWidth/2-rl.MeasureText(text, fontSize)/2, y, fontSize, col)
}

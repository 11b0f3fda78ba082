package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MenuData holds the values shown on the difficulty select screen.
type MenuData struct {
	Hardcore          bool
	EasyHighScore     int32
	HardcoreHighScore int32
	GamepadOn         bool
	ScreenWidth       int32
	ScreenHeight      int32
}

// MenuView renders the title and difficulty select screen.
type MenuView struct {
	theme Theme
}

// NewMenuView creates a new menu renderer.
func NewMenuView() *MenuView {
	return &MenuView{theme: DefaultTheme()}
}

// Draw renders the menu.
func (m *MenuView) Draw(data MenuData) {
	w := data.ScreenWidth

	drawCentered(Title, w, 50, 30, m.theme.Title)
	drawCentered(Subtitle, w, 80, 18, m.theme.Subtitle)
	drawCentered("SELECT DIFFICULTY", w, 120, 20, m.theme.Accent)

	easyColor := rl.White
	if !data.Hardcore {
		easyColor = m.theme.Easy
	}
	rl.DrawText("[LEFT] EASY", w/2-120, 160, 16, easyColor)
	rl.DrawText("Normal speed", w/2-120, 180, 12, rl.LightGray)
	rl.DrawText("For beginners", w/2-120, 195, 12, rl.LightGray)

	hardcoreColor := rl.White
	if data.Hardcore {
		hardcoreColor = m.theme.Hardcore
	}
	rl.DrawText("[RIGHT] HARDCORE", w/2+20, 160, 16, hardcoreColor)
	rl.DrawText("2x speed!", w/2+20, 180, 12, rl.Orange)
	rl.DrawText("For experts", w/2+20, 195, 12, rl.Orange)

	start := "Press ENTER to start"
	if data.GamepadOn {
		start = "A to start"
	}
	drawCentered(start, w, 230, 16, rl.Lime)

	rl.DrawText(fmt.Sprintf("Easy High Score: %d", data.EasyHighScore), w/2-150, 270, 14, rl.White)
	rl.DrawText(fmt.Sprintf("Hardcore High Score: %d", data.HardcoreHighScore), w/2+10, 270, 14, rl.White)

	if data.GamepadOn {
		drawCentered("Gamepad Connected", w, 295, 12, rl.Lime)
	}
	drawCentered("Press ESC to exit", w, 320, 12, rl.DarkGray)
}

// GameOverData holds the values shown on the game over screen.
type GameOverData struct {
	Score        int32
	Hardcore     bool
	ScreenWidth  int32
	ScreenHeight int32
}

// GameOverView renders the game over overlay on top of the frozen scene.
type GameOverView struct {
	theme Theme
}

// NewGameOverView creates a new game over renderer.
func NewGameOverView() *GameOverView {
	return &GameOverView{theme: DefaultTheme()}
}

// Draw renders the game over overlay.
func (g *GameOverView) Draw(data GameOverData) {
	w, h := data.ScreenWidth, data.ScreenHeight

	rl.DrawRectangle(0, 0, w, h, rl.Fade(rl.Black, 0.7))
	drawCentered("GAME OVER", w, h/2-60, 30, rl.Red)
	drawCentered(fmt.Sprintf("Final Score: %d", data.Score), w, h/2-20, 20, rl.White)
	if data.Hardcore {
		drawCentered("HARDCORE MODE", w, h/2+5, 14, rl.Orange)
	} else {
		drawCentered("EASY MODE", w, h/2+5, 14, g.theme.Easy)
	}
	drawCentered("Press ENTER to Restart", w, h/2+30, 14, rl.LightGray)
	drawCentered("Press M for Menu", w, h/2+50, 14, rl.LightGray)
	drawCentered("Press ESC to Exit", w, h/2+70, 14, rl.LightGray)
}

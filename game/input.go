package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/widdershins/audio"
)

const (
	stickDeadzone   = 0.1
	triggerDeadzone = 0.1
	gamepadZoomStep = 0.15
)

// activeGamepad returns the first connected gamepad.
func activeGamepad() (int32, bool) {
	for pad := int32(0); pad < 4; pad++ {
		if rl.IsGamepadAvailable(pad) {
			return pad, true
		}
	}
	return 0, false
}

// handleInput processes everything except the turn signal: camera
// controls, menu navigation, pause and display toggles, and the game
// over restart paths.
func (g *Game) handleInput() {
	g.handleCameraInput()

	pad, hasPad := activeGamepad()

	if g.screen == ScreenMenu {
		if rl.IsKeyPressed(rl.KeyLeft) || (hasPad && rl.IsGamepadButtonPressed(pad, rl.GamepadButtonLeftFaceLeft)) {
			g.difficulty = Easy
			g.sounds.Play(audio.SoundMenu)
		}
		if rl.IsKeyPressed(rl.KeyRight) || (hasPad && rl.IsGamepadButtonPressed(pad, rl.GamepadButtonLeftFaceRight)) {
			g.difficulty = Hardcore
			g.sounds.Play(audio.SoundMenu)
		}
		if rl.IsKeyPressed(rl.KeyEnter) || (hasPad && rl.IsGamepadButtonPressed(pad, rl.GamepadButtonRightFaceDown)) {
			g.sounds.Play(audio.SoundMenu)
			g.startSession()
		}
		return
	}

	if g.screen == ScreenPlaying {
		if rl.IsKeyPressed(rl.KeyP) || (hasPad && rl.IsGamepadButtonPressed(pad, rl.GamepadButtonMiddleRight)) {
			g.paused = !g.paused
			g.sounds.Play(audio.SoundPause)
		}
	}
	if rl.IsKeyPressed(rl.KeyS) {
		if g.sounds.Toggle() {
			g.sounds.Play(audio.SoundMenu)
		}
	}
	if rl.IsKeyPressed(rl.KeyF) {
		g.showFPS = !g.showFPS
	}

	if g.screen == ScreenGameOver {
		if rl.IsKeyPressed(rl.KeyEnter) || (hasPad && rl.IsGamepadButtonPressed(pad, rl.GamepadButtonRightFaceDown)) {
			g.sounds.Play(audio.SoundMenu)
			g.startSession()
			return
		}
		if rl.IsKeyPressed(rl.KeyM) || (hasPad && rl.IsGamepadButtonPressed(pad, rl.GamepadButtonRightFaceRight)) {
			g.screen = ScreenMenu
			g.sounds.Play(audio.SoundMenu)
		}
	}
}

// turnSignal reads every left-turn input and returns the strongest one.
// Keyboard, mouse and face button are all-or-nothing; the trigger and
// stick give analog control.
func (g *Game) turnSignal() float32 {
	var signal float32
	if rl.IsKeyDown(rl.KeySpace) || rl.IsMouseButtonDown(rl.MouseLeftButton) {
		signal = 1
	}

	if pad, ok := activeGamepad(); ok {
		if rl.IsGamepadButtonDown(pad, rl.GamepadButtonRightFaceDown) {
			signal = 1
		}
		// Triggers report -1 at rest.
		rt := (rl.GetGamepadAxisMovement(pad, rl.GamepadAxisRightTrigger) + 1) / 2
		if rt > triggerDeadzone && rt > signal {
			signal = rt
		}
		if x := rl.GetGamepadAxisMovement(pad, rl.GamepadAxisLeftX); x < -stickDeadzone && -x > signal {
			signal = -x
		}
	}

	if signal > 1 {
		signal = 1
	}
	return signal
}

// handleCameraInput runs the orbit rig controls. Right mouse drag
// orbits, the wheel zooms, R restores the default framing. On a
// gamepad the bumper and stick clicks zoom.
func (g *Game) handleCameraInput() {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		g.rig.Orbit(delta.X, delta.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.rig.Zoom(wheel)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.rig.Reset()
	}

	pad, ok := activeGamepad()
	if !ok {
		return
	}
	if rl.IsGamepadButtonDown(pad, rl.GamepadButtonLeftTrigger1) || rl.IsGamepadButtonDown(pad, rl.GamepadButtonLeftThumb) {
		g.rig.Zoom(gamepadZoomStep)
	}
	lt := (rl.GetGamepadAxisMovement(pad, rl.GamepadAxisLeftTrigger) + 1) / 2
	if lt > triggerDeadzone || rl.IsGamepadButtonDown(pad, rl.GamepadButtonRightThumb) {
		g.rig.Zoom(-gamepadZoomStep)
	}
}

package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// IndicatorData holds everything needed to point at energy pickups.
type IndicatorData struct {
	Camera       rl.Camera3D
	Head         rl.Vector3   // rider head position, used for distance labels
	Pickups      []rl.Vector3 // world positions of active energy pickups
	EnergyFrac   float32
	GameTime     float32
	ScreenWidth  int32
	ScreenHeight int32
}

// Indicators draws arrows pointing at energy pickups. Pickups inside the
// viewport get a bobbing marker above them; pickups outside get an arrow
// pinned to the screen edge whose size, color and pulse rate escalate as
// energy runs low.
type Indicators struct {
	theme Theme
}

// NewIndicators creates a new pickup indicator renderer.
func NewIndicators() *Indicators {
	return &Indicators{theme: DefaultTheme()}
}

// Draw renders one indicator per pickup.
func (ind *Indicators) Draw(data IndicatorData) {
	for _, pos := range data.Pickups {
		ind.drawOne(pos, data)
	}
}

func (ind *Indicators) drawOne(pos rl.Vector3, data IndicatorData) {
	w := float32(data.ScreenWidth)
	h := float32(data.ScreenHeight)

	screenPos := rl.GetWorldToScreen(pos, data.Camera)

	toPickup := rl.Vector3Subtract(pos, data.Camera.Position)
	forward := rl.Vector3Normalize(rl.Vector3Subtract(data.Camera.Target, data.Camera.Position))
	facing := rl.Vector3DotProduct(rl.Vector3Normalize(toPickup), forward)

	onScreen := facing > 0 &&
		screenPos.X > 0 && screenPos.X < w &&
		screenPos.Y > 0 && screenPos.Y < h

	if onScreen {
		drawMarker(screenPos, data.GameTime)
		return
	}
	drawEdgeArrow(toPickup, pos, data)
}

// drawMarker draws the bobbing arrow above an on-screen pickup.
func drawMarker(screenPos rl.Vector2, gameTime float32) {
	pulse := float32(math.Sin(float64(gameTime*5)))*5 + 10
	const size = float32(15)

	tip := rl.Vector2{X: screenPos.X, Y: screenPos.Y - pulse}
	base1 := rl.Vector2{X: tip.X - size/2, Y: tip.Y - size}
	base2 := rl.Vector2{X: tip.X + size/2, Y: tip.Y - size}

	color := rl.SkyBlue
	color.A = 200
	rl.DrawTriangle(tip, base1, base2, color)
	rl.DrawTriangleLines(tip, base1, base2, rl.Fade(rl.Black, 0.5))
}

// drawEdgeArrow projects the pickup direction onto the camera plane and
// pins an arrow to the screen edge. GetWorldToScreen is unreliable for
// points behind the camera, so the direction is derived from the inverse
// view matrix instead.
func drawEdgeArrow(toPickup, pos rl.Vector3, data IndicatorData) {
	w := float32(data.ScreenWidth)
	h := float32(data.ScreenHeight)

	invView := rl.MatrixInvert(rl.GetCameraMatrix(data.Camera))
	camRight := rl.Vector3{X: invView.M0, Y: invView.M1, Z: invView.M2}
	camUp := rl.Vector3{X: invView.M4, Y: invView.M5, Z: invView.M6}

	// Screen Y grows downward, so the up component flips sign.
	dx := rl.Vector3DotProduct(toPickup, camRight)
	dy := -rl.Vector3DotProduct(toPickup, camUp)

	dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if dist < 0.001 {
		return
	}
	dx /= dist
	dy /= dist

	const edgeMargin = float32(30)
	maxDistX := w/2 - edgeMargin
	maxDistY := h/2 - edgeMargin

	scaleX := float32(99999)
	if absf(dx) > 0.001 {
		scaleX = maxDistX / absf(dx)
	}
	scaleY := float32(99999)
	if absf(dy) > 0.001 {
		scaleY = maxDistY / absf(dy)
	}
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	edgeX := w/2 + dx*scale
	edgeY := h/2 + dy*scale
	angle := math.Atan2(float64(dy), float64(dx))

	// The arrow gets bigger, redder and faster the lower energy runs.
	size := float32(20)
	pulseSpeed := float32(5)
	arrowColor := rl.SkyBlue
	outline := rl.SkyBlue
	switch {
	case data.EnergyFrac < 0.2:
		size, pulseSpeed = 30, 10
		arrowColor = rl.Red
		outline = rl.Color{R: 255, G: 100, B: 100, A: 255}
	case data.EnergyFrac < 0.4:
		size, pulseSpeed = 25, 7
		arrowColor = rl.Orange
		outline = rl.Color{R: 255, G: 200, B: 100, A: 255}
	case data.EnergyFrac < 0.6:
		arrowColor = rl.Yellow
		outline = rl.Color{R: 255, G: 255, B: 100, A: 255}
	}

	tip := rl.Vector2{X: edgeX, Y: edgeY}
	base1 := arrowBase(edgeX, edgeY, angle-0.5, size)
	base2 := arrowBase(edgeX, edgeY, angle+0.5, size)

	pulse := float32(math.Sin(float64(data.GameTime*pulseSpeed)))*0.4 + 0.6
	arrowColor.A = uint8(255 * pulse)

	if data.EnergyFrac < 0.2 {
		glowSize := size * 1.5 * pulse
		g1 := arrowBase(edgeX, edgeY, angle-0.5, glowSize)
		g2 := arrowBase(edgeX, edgeY, angle+0.5, glowSize)
		rl.DrawTriangle(tip, g1, g2, rl.Fade(rl.Red, 0.3))
	}
	rl.DrawTriangle(tip, base1, base2, arrowColor)
	rl.DrawTriangleLines(tip, base1, base2, outline)

	// Distance label beside the arrow, clamped inside the screen.
	distText := fmt.Sprintf("%.0fm", rl.Vector3Distance(data.Head, pos))
	fontSize := int32(12)
	if data.EnergyFrac < 0.2 {
		fontSize = 16
	}
	textWidth := rl.MeasureText(distText, fontSize)
	textX := edgeX - float32(textWidth)/2
	textY := edgeY
	if dy > 0.5 {
		textY -= size + 5
	} else {
		textY += size + float32(fontSize)
	}
	textX = clampf(textX, 5, w-float32(textWidth)-5)
	textY = clampf(textY, 5, h-float32(fontSize)-5)
	rl.DrawText(distText, int32(textX), int32(textY), fontSize, outline)
}

// arrowBase computes one rear corner of an arrowhead aimed along angle.
func arrowBase(x, y float32, angle float64, size float32) rl.Vector2 {
	return rl.Vector2{
		X: x - float32(math.Cos(angle))*size,
		Y: y - float32(math.Sin(angle))*size,
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

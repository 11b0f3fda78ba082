package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/widdershins/components"
	"github.com/pthm-cable/widdershins/config"
	"github.com/pthm-cable/widdershins/ui"
)

// Draw renders one frame. The 3D scene is skipped on the menu screen;
// the 2D layer always draws.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 32, G: 32, B: 32, A: 255})

	cam := g.camera3D()
	if g.screen != ScreenMenu {
		rl.BeginMode3D(cam)
		g.drawStars()
		g.drawArena()
		g.drawPickups()
		g.drawRider()
		g.drawParticles()
		rl.EndMode3D()
	}

	g.drawUI(cam)
	rl.EndDrawing()
}

func (g *Game) camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   vec(g.rig.Position()),
		Target:     vec(g.rig.Target),
		Up:         rl.Vector3{Y: 1},
		Fovy:       float32(config.Cfg().Camera.Fovy),
		Projection: rl.CameraPerspective,
	}
}

func (g *Game) drawStars() {
	for i := range g.stars.Stars {
		s := &g.stars.Stars[i]
		twinkle := float32(math.Sin(float64(g.gameTime*3+s.Twinkle*10)))*0.3 + 0.7
		col := rl.Color{R: 255, G: 255, B: 255, A: uint8(s.Brightness * twinkle * 255)}
		rl.DrawSphere(vec(s.Pos), 0.1, col)
	}
}

func (g *Game) drawArena() {
	cfg := config.Cfg()
	half := cfg.Derived.HalfArena
	boundary := rl.Color{R: 100, G: 100, B: 200, A: 50}

	for i := 0; i < 4; i++ {
		a1 := float64(i) * 90 * math.Pi / 180
		a2 := a1 + 90*math.Pi/180
		p1 := rl.Vector3{X: float32(math.Cos(a1)) * half, Z: float32(math.Sin(a1)) * half}
		p2 := rl.Vector3{X: float32(math.Cos(a2)) * half, Z: float32(math.Sin(a2)) * half}
		rl.DrawLine3D(p1, p2, boundary)
		rl.DrawCube(p1, 1, 3, 1, boundary)
	}

	// Floor flash while energy is critical
	if g.rider.Alive && g.rider.Energy < cfg.Derived.MaxEnergy*0.2 {
		pulse := float32(math.Sin(float64(g.gameTime*10)))*0.5 + 0.5
		warning := rl.Color{R: 255, G: 255, B: 255, A: uint8(pulse * 100)}
		rl.DrawCylinder(rl.Vector3{Y: -1}, 0, half*2, 0.1, 32, warning)
	}
}

// drawPickups gives each pickup kind its own silhouette so they read at
// a distance: cube for energy, cone for boost, sphere for slow time,
// tapered cylinder for shield, small cube for shrink, spinning star for
// bonus points.
func (g *Game) drawPickups() {
	cfg := config.Cfg()
	size := float32(cfg.Powerups.Size)

	query := g.pickupFilter.Query()
	for query.Next() {
		pos, spin, life, pow := query.Get()
		p := rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z}
		col := toRl(pickupPalette[pow.Kind])

		switch pow.Kind {
		case components.PowerupEnergy:
			rl.DrawCube(p, size, size, size, col)
			rl.DrawCubeWires(p, size*1.2, size*1.2, size*1.2, rl.Fade(col, 0.5))
		case components.PowerupSpeedBoost:
			rl.DrawCylinder(p, size*0.5, 0.2, size*1.5, 4, col)
		case components.PowerupSlowTime:
			rl.DrawSphere(p, size, col)
			rl.DrawSphereWires(p, size*1.3, 8, 8, rl.Fade(col, 0.5))
		case components.PowerupShield:
			bottom := rl.Vector3{X: p.X, Y: p.Y - size/2, Z: p.Z}
			top := rl.Vector3{X: p.X, Y: p.Y + size/2, Z: p.Z}
			rl.DrawCylinderEx(bottom, top, size, size*0.7, 8, col)
		case components.PowerupShrink:
			rl.DrawCube(p, size*0.6, size*0.6, size*0.6, col)
		case components.PowerupBonusPoints:
			for j := 0; j < 5; j++ {
				a1 := float64(j)*72*math.Pi/180 + float64(spin.Rotation)
				a2 := a1 + 144*math.Pi/180
				p1 := rl.Vector3{X: p.X + float32(math.Cos(a1))*size, Y: p.Y, Z: p.Z + float32(math.Sin(a1))*size}
				p2 := rl.Vector3{X: p.X + float32(math.Cos(a2))*size, Y: p.Y, Z: p.Z + float32(math.Sin(a2))*size}
				rl.DrawLine3D(p1, p2, col)
			}
		}

		// Despawn warning bubble, growing as the timer runs out
		if life.Remaining < 5 {
			r := size * (1 + (5-life.Remaining)*0.2)
			rl.DrawSphere(p, r, rl.Fade(col, 0.1))
		}
	}
}

func (g *Game) drawRider() {
	cfg := config.Cfg()
	segSize := cfg.Derived.SegmentSize
	halfH := float32(cfg.Rider.SegmentHeight) / 2
	glowScale := float32(cfg.Rider.GlowScale)
	r := g.rider

	// Tail to head so the head layers on top
	for i := len(r.Segments) - 1; i >= 0; i-- {
		seg := &r.Segments[i]
		size := segSize
		if seg.Head {
			size *= 1.3
		}

		pos := vec(seg.Pos)
		bottom := rl.Vector3{X: pos.X, Y: pos.Y - halfH, Z: pos.Z}
		top := rl.Vector3{X: pos.X, Y: pos.Y + halfH, Z: pos.Z}
		col := rl.Color{R: seg.Color[0], G: seg.Color[1], B: seg.Color[2], A: 255}

		rl.DrawCylinderEx(bottom, top, size, size*0.8, 6, col)

		glow := col
		glow.A = uint8(100 * seg.Glow)
		rl.DrawCylinderWiresEx(bottom, top, size*glowScale, size*glowScale*0.8, 6, glow)

		if r.ShieldTimer > 0 {
			pulse := float32(math.Sin(float64(g.gameTime*10)))*0.5 + 0.5
			shield := rl.Green
			shield.A = uint8(50 * pulse)
			rl.DrawSphereWires(pos, size*1.5, 4, 8, shield)
		}
	}

	for i := 0; i < len(r.Segments)-1; i++ {
		col := rl.Color{R: r.Segments[i].Color[0], G: r.Segments[i].Color[1], B: r.Segments[i].Color[2], A: 150}
		rl.DrawLine3D(vec(r.Segments[i].Pos), vec(r.Segments[i+1].Pos), col)
	}

	if r.Boosted && r.BoostTimer > 0 {
		head := vec(r.Head().Pos)
		sin, cos := math.Sincos(float64(r.Heading))
		for i := 0; i < 3; i++ {
			offset := float32(i) * 0.3
			trail := rl.Vector3{
				X: head.X - float32(sin)*offset,
				Y: head.Y,
				Z: head.Z - float32(cos)*offset,
			}
			col := rl.Yellow
			col.A = uint8(100 * (1 - offset))
			rl.DrawSphere(trail, segSize*0.5, col)
		}
	}
}

func (g *Game) drawParticles() {
	for i := range g.particles.Particles {
		p := &g.particles.Particles[i]
		col := rl.Color{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: p.Color.A}
		rl.DrawSphere(vec(p.Pos), p.Size, col)
	}
}

func (g *Game) drawUI(cam rl.Camera3D) {
	cfg := config.Cfg()
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	_, hasPad := activeGamepad()
	hardcore := g.difficulty == Hardcore

	if g.screen == ScreenMenu {
		g.menuView.Draw(ui.MenuData{
			Hardcore:          hardcore,
			EasyHighScore:     g.scores.Easy,
			HardcoreHighScore: g.scores.Hardcore,
			GamepadOn:         hasPad,
			ScreenWidth:       w,
			ScreenHeight:      h,
		})
		return
	}

	energyFrac := g.rider.Energy / cfg.Derived.MaxEnergy
	g.hud.Draw(ui.HUDData{
		Score:        int32(g.rider.Score),
		HighScore:    g.scores.Best(hardcore),
		Hardcore:     hardcore,
		EnergyFrac:   energyFrac,
		GameTime:     g.gameTime,
		Boosted:      g.rider.Boosted && g.rider.BoostTimer > 0,
		ShieldTimer:  g.rider.ShieldTimer,
		Length:       len(g.rider.Segments),
		Laps:         g.rider.Laps,
		FPS:          rl.GetFPS(),
		ShowFPS:      g.showFPS,
		SoundOn:      g.sounds != nil && g.sounds.Enabled,
		GamepadOn:    hasPad,
		Paused:       g.paused,
		ScreenWidth:  w,
		ScreenHeight: h,
	})

	if g.screen == ScreenPlaying && !g.paused && g.rider.Alive {
		g.indicators.Draw(ui.IndicatorData{
			Camera:       cam,
			Head:         vec(g.rider.Head().Pos),
			Pickups:      g.energyPickupPositions(),
			EnergyFrac:   energyFrac,
			GameTime:     g.gameTime,
			ScreenWidth:  w,
			ScreenHeight: h,
		})
	}

	if g.screen == ScreenGameOver {
		g.overView.Draw(ui.GameOverData{
			Score:        int32(g.rider.Score),
			Hardcore:     hardcore,
			ScreenWidth:  w,
			ScreenHeight: h,
		})
	}
}

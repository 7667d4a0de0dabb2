package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"arenashooter/game"
)

// drawWorld draws every entity in the snapshot; world and screen coordinates coincide
func (a *App) drawWorld(screen *ebiten.Image, s game.Snapshot) {
	screen.Fill(a.palette.Background)
	a.dust.draw(screen)
	vector.StrokeRect(screen, 0, 0, float32(s.Width), float32(s.Height), 1, a.palette.Border, false)

	for i := range s.Projectiles {
		a.drawProjectile(screen, &s.Projectiles[i])
	}
	for i := range s.EnemyProjectiles {
		p := &s.EnemyProjectiles[i]
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), a.palette.EnemyShot, true)
	}
	for i := range s.Enemies {
		a.drawEnemy(screen, &s.Enemies[i])
	}
	a.drawPlayer(screen, &s.Player)
}

func (a *App) drawPlayer(screen *ebiten.Image, p *game.Player) {
	x, y := float32(p.Pos.X), float32(p.Pos.Y)
	vector.DrawFilledCircle(screen, x, y, float32(p.Radius), a.palette.Player, true)

	// Direction indicator
	tip := p.Pos.Add(game.FromAngle(p.Angle, p.Radius*aimLineLength))
	vector.StrokeLine(screen, x, y, float32(tip.X), float32(tip.Y), 2, a.palette.Aim, true)
}

func (a *App) drawEnemy(screen *ebiten.Image, e *game.Enemy) {
	x, y := float32(e.Pos.X), float32(e.Pos.Y)
	clr := a.palette.EnemyColor(e)
	vector.DrawFilledCircle(screen, x, y, float32(e.Radius), clr, true)

	if e.Kind == game.EnemyKindShooter || e.Kind == game.EnemyKindBoss {
		vector.StrokeCircle(screen, x, y, float32(e.Radius)+3, 1.5, clr, true)
	}

	if e.ShowsHealthBar() {
		barWidth := e.Radius * 2
		barX := e.Pos.X - e.Radius
		barY := e.Pos.Y - e.Radius - enemyBarHeight - enemyBarGap
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), enemyBarHeight, a.palette.BarBack, true)
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth*e.HealthFraction()), enemyBarHeight, a.palette.HealthBar, true)
	}
}

func (a *App) drawProjectile(screen *ebiten.Image, p *game.Projectile) {
	switch p.Kind {
	case game.ProjectileLaserBeam:
		// Fade out over the beam's lifetime
		fade := math.Max(0.2, float64(p.Lifetime)/laserFadeTicks)
		clr := withAlpha(a.palette.Laser, fade)
		vector.StrokeLine(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.End.X), float32(p.End.Y), 3, clr, true)

	case game.ProjectileMissile:
		tail := p.Pos.Sub(game.FromAngle(p.Angle, p.Radius*2))
		vector.StrokeLine(screen, float32(tail.X), float32(tail.Y), float32(p.Pos.X), float32(p.Pos.Y), 2, a.palette.Missile, true)
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), a.palette.Missile, true)

	default:
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), a.palette.Bullet, true)
	}
}

// withAlpha scales the alpha channel of c by f in [0, 1]
func withAlpha(c color.NRGBA, f float64) color.NRGBA {
	c.A = uint8(math.Max(0, math.Min(1, f)) * float64(c.A))
	return c
}

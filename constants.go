package main

import (
	"image/color"

	"arenashooter/game"
)

// Palette holds every color the desktop front-end draws with
type Palette struct {
	Background   color.NRGBA
	Border       color.NRGBA
	Dust         color.NRGBA
	Player       color.NRGBA
	Aim          color.NRGBA
	Bullet       color.NRGBA
	Missile      color.NRGBA
	Laser        color.NRGBA
	EnemyShot    color.NRGBA
	Enemies      map[game.EnemyKind]color.NRGBA
	BossEnraged  color.NRGBA
	BarBack      color.NRGBA
	HealthBar    color.NRGBA
	ExpBar       color.NRGBA
	DamageFlash  color.NRGBA
	Text         color.NRGBA
	TextDim      color.NRGBA
	OverlayShade color.NRGBA
}

// DefaultPalette returns the standard color scheme
func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{R: 3, G: 5, B: 16, A: 255},
		Border:     color.NRGBA{R: 24, G: 48, B: 96, A: 255},
		Dust:       color.NRGBA{R: 90, G: 100, B: 130, A: 120},
		Player:     color.NRGBA{R: 180, G: 255, B: 200, A: 255},
		Aim:        color.NRGBA{R: 120, G: 210, B: 255, A: 160},
		Bullet:     color.NRGBA{R: 255, G: 255, B: 0, A: 255},
		Missile:    color.NRGBA{R: 255, G: 180, B: 60, A: 255},
		Laser:      color.NRGBA{R: 120, G: 220, B: 255, A: 255},
		EnemyShot:  color.NRGBA{R: 255, G: 90, B: 90, A: 255},
		Enemies: map[game.EnemyKind]color.NRGBA{
			game.EnemyKindNormal:    {R: 220, G: 60, B: 60, A: 255},
			game.EnemyKindFast:      {R: 255, G: 140, B: 0, A: 255},
			game.EnemyKindTank:      {R: 140, G: 30, B: 30, A: 255},
			game.EnemyKindShooter:   {R: 200, G: 60, B: 200, A: 255},
			game.EnemyKindWandering: {R: 60, G: 180, B: 180, A: 255},
			game.EnemyKindSwarm:     {R: 255, G: 220, B: 120, A: 255},
			game.EnemyKindBoss:      {R: 160, G: 0, B: 255, A: 255},
		},
		BossEnraged:  color.NRGBA{R: 255, G: 0, B: 120, A: 255},
		BarBack:      color.NRGBA{R: 100, G: 0, B: 0, A: 255},
		HealthBar:    color.NRGBA{R: 0, G: 255, B: 0, A: 255},
		ExpBar:       color.NRGBA{R: 80, G: 160, B: 255, A: 255},
		DamageFlash:  color.NRGBA{R: 255, G: 0, B: 0, A: 255},
		Text:         color.NRGBA{R: 230, G: 230, B: 230, A: 255},
		TextDim:      color.NRGBA{R: 140, G: 140, B: 160, A: 255},
		OverlayShade: color.NRGBA{R: 0, G: 0, B: 0, A: 180},
	}
}

// EnemyColor returns the body color for an enemy
func (p Palette) EnemyColor(e *game.Enemy) color.NRGBA {
	if e.Kind == game.EnemyKindBoss && e.Phase == game.BossPhaseEnraged {
		return p.BossEnraged
	}
	if c, ok := p.Enemies[e.Kind]; ok {
		return c
	}
	return p.Text
}

// UI constants
const (
	hudMargin        = 10.0
	hudBarWidth      = 200.0
	hudBarHeight     = 12.0
	hudLineHeight    = 20.0
	hudFontSize      = 16.0
	hudTitleFontSize = 36.0
	hudEaseSeconds   = 0.35
	flashSeconds     = 0.4
	enemyBarHeight   = 4.0
	enemyBarGap      = 4.0
	laserFadeTicks   = 10.0
	aimLineLength    = 1.6 // Multiple of the player radius
)

// Dust constants
const (
	dustCount    = 120
	dustSpeedMin = 0.1 // Drift per unit of player movement
	dustSpeedMax = 0.5
)

// Particle constants
const (
	maxParticles        = 2000
	burstCountPerSize   = 0.8 // Particles per radius unit
	burstSpeedMax       = 4.0
	particleLifeMin     = 20 // Ticks
	particleLifeMax     = 45
	particleSizeMin     = 1.5
	particleSizeMax     = 3.5
	hitSparkCount       = 6
	bossBurstMultiplier = 3
)

// Profiling constants
const (
	slowTickBudgetMs = 12 // A tick slower than this triggers a capture
)

package main

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"arenashooter/game"
)

// Particle represents a single particle in a particle system
type Particle struct {
	pos      game.Vec2
	vel      game.Vec2
	age      int // Ticks
	lifetime int
	color    color.NRGBA
	size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// ParticleSystem holds short-lived cosmetic particles spawned from tick events
type ParticleSystem struct {
	particles    []Particle
	maxParticles int
	rng          *rand.Rand
}

// NewParticleSystem creates a particle system capped at limit particles
func NewParticleSystem(limit int) *ParticleSystem {
	return &ParticleSystem{
		particles:    make([]Particle, 0, limit),
		maxParticles: limit,
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Reset drops every particle
func (ps *ParticleSystem) Reset() {
	ps.particles = ps.particles[:0]
}

// Emit turns a tick's events into bursts
func (ps *ParticleSystem) Emit(events []game.Event, palette Palette) {
	for _, ev := range events {
		switch ev.Kind {
		case game.EventEnemyKilled, game.EventEnemyCrashed:
			cfg, err := game.GetEnemyKindConfig(ev.EnemyKind)
			if err != nil {
				continue
			}
			count := int(cfg.Radius * burstCountPerSize)
			if ev.EnemyKind == game.EnemyKindBoss {
				count *= bossBurstMultiplier
			}
			ps.Burst(ev.Pos, count, palette.Enemies[ev.EnemyKind], burstSpeedMax)
		case game.EventPlayerHit:
			ps.Burst(ev.Pos, hitSparkCount, palette.DamageFlash, burstSpeedMax/2)
		case game.EventLevelUp:
			ps.Burst(ev.Pos, 30, palette.ExpBar, burstSpeedMax)
		}
	}
}

// Burst emits count particles from pos in random directions
func (ps *ParticleSystem) Burst(pos game.Vec2, count int, base color.NRGBA, speedMax float64) {
	for i := 0; i < count && len(ps.particles) < ps.maxParticles; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := (0.25 + 0.75*ps.rng.Float64()) * speedMax
		ps.particles = append(ps.particles, Particle{
			pos:      pos,
			vel:      game.FromAngle(angle, speed),
			lifetime: particleLifeMin + ps.rng.IntN(particleLifeMax-particleLifeMin+1),
			color:    base,
			size:     particleSizeMin + ps.rng.Float64()*(particleSizeMax-particleSizeMin),
		})
	}
}

// Update ages and moves particles one tick, dropping the dead ones
func (ps *ParticleSystem) Update() {
	live := ps.particles[:0]
	for _, p := range ps.particles {
		p.age++
		p.pos = p.pos.Add(p.vel)
		p.vel = p.vel.Scale(0.95)
		if p.IsAlive() {
			live = append(live, p)
		}
	}
	ps.particles = live
}

// Draw renders all particles, fading them with age
func (ps *ParticleSystem) Draw(screen *ebiten.Image) {
	for _, p := range ps.particles {
		ageAlpha := 1.0 - float64(p.age)/float64(p.lifetime)
		clr := withAlpha(p.color, ageAlpha)
		vector.DrawFilledCircle(screen, float32(p.pos.X), float32(p.pos.Y), float32(p.size), clr, true)
	}
}

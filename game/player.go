package game

import "math"

// Upgrades records every stat upgrade applied so far
// A variant switch rebuilds base stats from the new kind and lays these back on top.
type Upgrades struct {
	MaxHealth     int // Number of +20 health upgrades
	MoveSpeed     float64
	BulletSpeed   float64
	BulletDamage  float64
	FireRateSteps int
}

// Player is the single player-controlled entity
type Player struct {
	Kind      PlayerKind
	Pos       Vec2
	Angle     float64
	Radius    float64
	Speed     float64
	Health    float64
	MaxHealth float64

	Score            int
	Experience       int
	Level            int
	ExperienceToNext int
	UpgradePoints    int
	Upgrades         Upgrades

	BulletDamage float64
	BulletSpeed  float64
	MissileSpeed float64
	FireRate     int // Ticks between shots
	FireCooldown int

	Description string
}

// NewPlayer creates a level one player of the given variant at pos
func NewPlayer(kind PlayerKind, pos Vec2) (*Player, error) {
	cfg, err := GetPlayerKindConfig(kind)
	if err != nil {
		return nil, err
	}
	p := &Player{
		Pos:              pos,
		Health:           playerBaseHealth,
		MaxHealth:        playerBaseHealth,
		Level:            1,
		ExperienceToNext: playerFirstLevelXP,
	}
	p.applyKind(cfg)
	return p, nil
}

// applyKind resets variant base stats to cfg and re-applies recorded upgrades
func (p *Player) applyKind(cfg PlayerKindConfig) {
	p.Kind = cfg.Kind
	p.Description = cfg.Description
	p.Radius = cfg.Radius
	p.Speed = playerBaseSpeed + p.Upgrades.MoveSpeed
	p.BulletDamage = cfg.Damage + p.Upgrades.BulletDamage
	p.BulletSpeed = cfg.BulletSpeed + p.Upgrades.BulletSpeed
	p.MissileSpeed = cfg.MissileSpeed
	p.FireRate = max(playerMinFireRate, cfg.FireRate-p.Upgrades.FireRateSteps)
}

// Bounds returns the collision box
func (p *Player) Bounds() Rect {
	return RectAround(p.Pos, p.Radius)
}

// Alive reports whether the player still has health left
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Move translates the player by Speed per held direction and keeps it inside the playfield
func (p *Player) Move(in Input, w, h float64) {
	dx, dy := in.movement()
	p.Pos.X = clamp(p.Pos.X+dx*p.Speed, p.Radius, w-p.Radius)
	p.Pos.Y = clamp(p.Pos.Y+dy*p.Speed, p.Radius, h-p.Radius)
}

// AimAt points the player at target
func (p *Player) AimAt(target Vec2) {
	p.Angle = p.Pos.AngleTo(target)
}

// TickCooldown counts the fire cooldown down towards zero
func (p *Player) TickCooldown() {
	if p.FireCooldown > 0 {
		p.FireCooldown--
	}
}

// tryFire consumes the cooldown if a shot is permitted
func (p *Player) tryFire() bool {
	if p.FireCooldown > 0 {
		return false
	}
	p.FireCooldown = p.FireRate
	return true
}

// Fire shoots according to the variant's pattern if the cooldown allows it
// aim is the cursor position (used by beams); enemies are the missile lock candidates.
func (p *Player) Fire(aim Vec2, enemies []*Enemy, ids *idAllocator, w, h float64) []Projectile {
	if !p.tryFire() {
		return nil
	}

	switch p.Kind {
	case PlayerKindShotgun:
		shots := make([]Projectile, 0, shotgunPellets)
		for i := 0; i < shotgunPellets; i++ {
			angle := p.Angle + float64(i-1)*shotgunSpread
			shots = append(shots, newBullet(ids.Next(), p.Pos, angle, p.BulletDamage, p.BulletSpeed))
		}
		return shots

	case PlayerKindLaser:
		if aim == p.Pos {
			aim = p.Pos.Add(FromAngle(p.Angle, laserAimReach))
		}
		return []Projectile{newLaserBeam(ids.Next(), p.Pos, aim, p.BulletDamage, w, h)}

	case PlayerKindMissile:
		if target := p.lockTarget(enemies); target != nil {
			return []Projectile{newMissile(ids.Next(), p.Pos, target, p.BulletDamage, p.MissileSpeed)}
		}
		// No lock: degrade to a straight shot with the same damage and speed
		return []Projectile{newBullet(ids.Next(), p.Pos, p.Angle, p.BulletDamage, p.MissileSpeed)}

	default:
		return []Projectile{newBullet(ids.Next(), p.Pos, p.Angle, p.BulletDamage, p.BulletSpeed)}
	}
}

// lockTarget returns the nearest live enemy strictly inside the lock range
func (p *Player) lockTarget(enemies []*Enemy) *Enemy {
	var nearest *Enemy
	nearestDist := missileLockRange
	for _, e := range enemies {
		if e.removed {
			continue
		}
		if d := p.Pos.DistanceTo(e.Pos); d < nearestDist {
			nearestDist = d
			nearest = e
		}
	}
	return nearest
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

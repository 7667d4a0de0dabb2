package game

// ProjectileKind identifies a player-owned projectile variant
type ProjectileKind int

const (
	ProjectileBullet ProjectileKind = iota
	ProjectileLaserBeam
	ProjectileMissile
)

// String returns the lowercase name of the kind
func (k ProjectileKind) String() string {
	switch k {
	case ProjectileBullet:
		return "bullet"
	case ProjectileLaserBeam:
		return "laser"
	case ProjectileMissile:
		return "missile"
	default:
		return "unknown"
	}
}

// Projectile tuning
const (
	bulletRadius = 5.0

	missileRadius        = 6.0
	missileTurnRate      = 0.1 // Radians per tick
	missileLifetime      = 300 // Ticks
	missileOffFieldSlack = 50.0

	laserLifetime     = 10 // Ticks
	laserDamageFactor = 0.1
	laserAimReach     = 100.0 // Fallback aim distance when the aim point sits on the firer

	enemyBulletRadius = 4.0
	enemyBulletSpeed  = 5.0
	enemyBulletDamage = 5.0
)

// Projectile is a player-owned shot
// Which fields are meaningful depends on Kind: bullets fly along Velocity until
// they leave the playfield, beams live for a fixed number of ticks between
// Pos and End, missiles steer towards Target while Lifetime lasts.
type Projectile struct {
	ID       EntityID
	Kind     ProjectileKind
	Pos      Vec2
	Velocity Vec2
	Angle    float64
	Speed    float64
	Damage   float64
	Radius   float64

	// Lifetime counts down once per tick (beams and missiles)
	Lifetime int

	// End is the beam end point on the playfield boundary
	End Vec2

	// Target is the missile lock; InvalidEntityID once the target is gone
	Target EntityID

	// hit holds the enemies a beam damaged during the current resolution pass
	hit map[EntityID]struct{}

	spent bool
}

// newBullet creates a straight-flying bullet
func newBullet(id EntityID, pos Vec2, angle, damage, speed float64) Projectile {
	return Projectile{
		ID:       id,
		Kind:     ProjectileBullet,
		Pos:      pos,
		Velocity: FromAngle(angle, speed),
		Angle:    angle,
		Speed:    speed,
		Damage:   damage,
		Radius:   bulletRadius,
	}
}

// newLaserBeam creates a beam from origin towards aim, ending on the playfield boundary
func newLaserBeam(id EntityID, origin, aim Vec2, damage, w, h float64) Projectile {
	angle := origin.AngleTo(aim)
	return Projectile{
		ID:       id,
		Kind:     ProjectileLaserBeam,
		Pos:      origin,
		Angle:    angle,
		Damage:   damage * laserDamageFactor,
		Lifetime: laserLifetime,
		End:      EdgeIntersection(origin, angle, w, h),
		hit:      make(map[EntityID]struct{}),
	}
}

// newMissile creates a missile locked onto target
func newMissile(id EntityID, pos Vec2, target *Enemy, damage, speed float64) Projectile {
	angle := pos.AngleTo(target.Pos)
	return Projectile{
		ID:       id,
		Kind:     ProjectileMissile,
		Pos:      pos,
		Velocity: FromAngle(angle, speed),
		Angle:    angle,
		Speed:    speed,
		Damage:   damage,
		Radius:   missileRadius,
		Lifetime: missileLifetime,
		Target:   target.ID,
	}
}

// Bounds returns the collision box (beams use a segment test instead)
func (p *Projectile) Bounds() Rect {
	if p.Kind == ProjectileLaserBeam {
		return Rect{
			MinX: min(p.Pos.X, p.End.X),
			MinY: min(p.Pos.Y, p.End.Y),
			MaxX: max(p.Pos.X, p.End.X) + 1,
			MaxY: max(p.Pos.Y, p.End.Y) + 1,
		}
	}
	return RectAround(p.Pos, p.Radius)
}

// HitsCircle reports whether a beam touches the given circle
func (p *Projectile) HitsCircle(center Vec2, radius float64) bool {
	return SegmentCircleIntersects(p.Pos, p.End, center, radius)
}

// Update advances the projectile one tick and reports whether it is still in flight
// lookup resolves the missile target; it returns nil once the target is gone.
func (p *Projectile) Update(w, h float64, lookup func(EntityID) *Enemy) bool {
	switch p.Kind {
	case ProjectileLaserBeam:
		p.Lifetime--
		return p.Lifetime > 0

	case ProjectileMissile:
		if p.Target != InvalidEntityID {
			if target := lookup(p.Target); target != nil {
				p.Angle = RotateTowards(p.Angle, p.Pos.AngleTo(target.Pos), missileTurnRate)
			} else {
				// Lock lost: hold the last heading from now on
				p.Target = InvalidEntityID
			}
		}
		p.Velocity = FromAngle(p.Angle, p.Speed)
		p.Pos = p.Pos.Add(p.Velocity)
		p.Lifetime--
		return p.Lifetime > 0 && !outside(p.Pos, w, h, missileOffFieldSlack)

	default:
		p.Pos = p.Pos.Add(p.Velocity)
		return !outside(p.Pos, w, h, 0)
	}
}

// EnemyProjectile is a shot fired by a Shooter or the Boss
type EnemyProjectile struct {
	ID       EntityID
	Owner    EntityID
	Pos      Vec2
	Velocity Vec2
	Damage   float64
	Radius   float64

	spent bool
}

func newEnemyProjectile(id, owner EntityID, pos Vec2, angle float64) EnemyProjectile {
	return EnemyProjectile{
		ID:       id,
		Owner:    owner,
		Pos:      pos,
		Velocity: FromAngle(angle, enemyBulletSpeed),
		Damage:   enemyBulletDamage,
		Radius:   enemyBulletRadius,
	}
}

// Bounds returns the collision box
func (p *EnemyProjectile) Bounds() Rect {
	return RectAround(p.Pos, p.Radius)
}

// Update advances the projectile one tick and reports whether it is still on the playfield
func (p *EnemyProjectile) Update(w, h float64) bool {
	p.Pos = p.Pos.Add(p.Velocity)
	return !outside(p.Pos, w, h, 0)
}

package game

import "math"

// BossPhase is the Boss's two-valued phase
type BossPhase int

const (
	BossPhaseNormal  BossPhase = 1
	BossPhaseEnraged BossPhase = 2
)

// Enemy is a hostile entity; Kind selects its stats and per-tick behavior
type Enemy struct {
	ID         EntityID
	Kind       EnemyKind
	Pos        Vec2
	Radius     float64
	Speed      float64
	Health     float64
	MaxHealth  float64
	Damage     float64
	ScoreValue int

	// ShootCooldown counts down to the next aimed shot (Shooter, Boss)
	ShootCooldown int
	// ShootDelay is the reset value of ShootCooldown
	ShootDelay int
	// VolleyCooldown counts down to the next radial volley (Boss)
	VolleyCooldown int

	// Phase is the Boss phase; it only ever moves from 1 to 2
	Phase BossPhase

	// Wander state
	WanderTarget Vec2
	WanderTimer  int

	// Outbox holds projectiles fired this tick until the game takes ownership of them
	Outbox []EnemyProjectile

	config  EnemyKindConfig
	removed bool
}

// NewEnemy creates an enemy of the given kind with its fixed stats
func NewEnemy(id EntityID, kind EnemyKind, pos Vec2) (*Enemy, error) {
	cfg, err := GetEnemyKindConfig(kind)
	if err != nil {
		return nil, err
	}
	e := &Enemy{
		ID:           id,
		Kind:         kind,
		Pos:          pos,
		Radius:       cfg.Radius,
		Speed:        cfg.Speed,
		Health:       cfg.Health,
		MaxHealth:    cfg.Health,
		Damage:       cfg.Damage,
		ScoreValue:   cfg.ScoreValue,
		ShootDelay:   cfg.ShootDelay,
		WanderTarget: pos,
		config:       cfg,
	}
	if kind == EnemyKindBoss {
		e.Phase = BossPhaseNormal
	}
	return e, nil
}

// Bounds returns the collision box
func (e *Enemy) Bounds() Rect {
	return RectAround(e.Pos, e.Radius)
}

// HealthFraction returns health over max health in [0, 1]
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, e.Health/e.MaxHealth))
}

// ShowsHealthBar reports whether renderers should draw a health bar over the enemy
func (e *Enemy) ShowsHealthBar() bool {
	return e.config.HealthBar
}

// Update runs one tick of the kind's behavior against the player's position
// It reports whether a Boss crossed into phase two during this tick.
func (e *Enemy) Update(target Vec2, rng RandomSource, ids *idAllocator) bool {
	switch e.Kind {
	case EnemyKindShooter:
		dist := e.Pos.DistanceTo(target)
		if dist > e.config.HoldRange {
			e.moveTowards(target)
		}
		e.ShootCooldown--
		if e.ShootCooldown <= 0 && dist <= e.config.ShootRange {
			e.fireAimed(target, ids)
			e.ShootCooldown = e.ShootDelay
		}
		return false

	case EnemyKindWandering:
		e.wander(rng)
		return false

	case EnemyKindBoss:
		return e.updateBoss(target, ids)

	default:
		// Normal, Fast, Tank and Swarm are pure pursuit
		e.moveTowards(target)
		return false
	}
}

// moveTowards steps Speed units directly at p
func (e *Enemy) moveTowards(p Vec2) {
	e.Pos = e.Pos.Add(e.Pos.DirectionTo(p).Scale(e.Speed))
}

func (e *Enemy) wander(rng RandomSource) {
	e.WanderTimer--
	if e.WanderTimer <= 0 {
		e.WanderTimer = wanderRetargetDelay
		angle := uniform(rng, 0, 2*math.Pi)
		dist := uniform(rng, wanderMinDistance, wanderMaxDistance)
		e.WanderTarget = e.Pos.Add(FromAngle(angle, dist))
	}
	if e.Pos.DistanceTo(e.WanderTarget) > wanderArrival {
		e.moveTowards(e.WanderTarget)
	}
}

func (e *Enemy) updateBoss(target Vec2, ids *idAllocator) bool {
	if e.Pos.DistanceTo(target) > e.config.HoldRange {
		e.moveTowards(target)
	}

	e.ShootCooldown--
	e.VolleyCooldown--

	if e.ShootCooldown <= 0 {
		if e.Phase == BossPhaseEnraged {
			angle := e.Pos.AngleTo(target)
			for i := -1; i <= 1; i++ {
				e.fire(angle+float64(i)*bossSpread, ids)
			}
		} else {
			e.fireAimed(target, ids)
		}
		e.ShootCooldown = e.ShootDelay
	}

	if e.VolleyCooldown <= 0 {
		for i := 0; i < bossVolleyCount; i++ {
			e.fire(float64(i)/bossVolleyCount*2*math.Pi, ids)
		}
		e.VolleyCooldown = e.config.VolleyDelay
	}

	// One-way latch: the stat change happens exactly once at the crossing
	if e.Phase == BossPhaseNormal && e.Health < e.MaxHealth*bossEnrageFraction {
		e.Phase = BossPhaseEnraged
		e.ShootDelay = bossEnragedShootDelay
		e.Speed = bossEnragedSpeed
		return true
	}
	return false
}

func (e *Enemy) fireAimed(target Vec2, ids *idAllocator) {
	e.fire(e.Pos.AngleTo(target), ids)
}

func (e *Enemy) fire(angle float64, ids *idAllocator) {
	e.Outbox = append(e.Outbox, newEnemyProjectile(ids.Next(), e.ID, e.Pos, angle))
}

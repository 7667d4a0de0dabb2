package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ErrSessionOver is returned by mutating calls once the player has died
var ErrSessionOver = errors.New("session is over")

// Game is one play session: the player, every enemy and projectile, and the spawn director
// It is not safe for concurrent use; front-ends drive it from a single loop.
type Game struct {
	config        Config
	width, height float64
	rng           RandomSource
	logger        *slog.Logger
	sessionID     uuid.UUID
	ids           idAllocator

	player           *Player
	enemies          []*Enemy
	projectiles      []Projectile
	enemyProjectiles []EnemyProjectile

	spawner    *SpawnDirector
	collisions *CollisionSystem

	tick   uint64
	over   bool
	events []Event
}

// NewGame creates a new session, with the player centered on the playfield
func NewGame(config Config) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	player, err := NewPlayer(config.StartVariant, Vec2{config.Width / 2, config.Height / 2})
	if err != nil {
		return nil, err
	}

	rng := config.random()
	sessionID := uuid.New()
	g := &Game{
		config:    config,
		width:     config.Width,
		height:    config.Height,
		rng:       rng,
		logger:    config.logger().With("session", sessionID.String()),
		sessionID: sessionID,
		player:    player,
		spawner:   NewSpawnDirector(config.Width, config.Height, rng),
	}
	g.collisions = NewCollisionSystem(g)

	g.logger.Info("session started",
		"width", g.width,
		"height", g.height,
		"variant", player.Kind.String(),
	)
	return g, nil
}

// Advance runs one fixed tick with the given input and returns the resulting state
// Once the session is over nothing changes and the final state is returned.
func (g *Game) Advance(in Input) Snapshot {
	if g.over {
		s := g.Snapshot()
		s.Events = nil
		return s
	}

	g.tick++
	g.events = g.events[:0]

	if !g.config.DisableSpawner {
		if req, ok := g.spawner.Step(g.player.Score); ok {
			g.spawn(req.Kind, req.Pos)
		}
	}

	g.updatePlayer(in)
	g.updateProjectiles()
	g.updateEnemies()
	g.collisions.Resolve()
	g.compact()

	if !g.player.Alive() {
		g.over = true
		g.emit(Event{Kind: EventSessionOver, Amount: float64(g.player.Score), Level: g.player.Level})
		g.logger.Info("session over",
			"tick", g.tick,
			"score", g.player.Score,
			"level", g.player.Level,
		)
	}

	return g.Snapshot()
}

func (g *Game) updatePlayer(in Input) {
	p := g.player
	p.Move(in, g.width, g.height)
	p.AimAt(in.Aim)
	p.TickCooldown()
	if in.Fire {
		g.projectiles = append(g.projectiles, p.Fire(in.Aim, g.enemies, &g.ids, g.width, g.height)...)
	}
}

// updateProjectiles moves every projectile and drops the ones that expired or left the playfield
func (g *Game) updateProjectiles() {
	live := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.Update(g.width, g.height, g.enemyByID) {
			live = append(live, p)
		}
	}
	clear(g.projectiles[len(live):])
	g.projectiles = live

	liveEnemy := g.enemyProjectiles[:0]
	for _, p := range g.enemyProjectiles {
		if p.Update(g.width, g.height) {
			liveEnemy = append(liveEnemy, p)
		}
	}
	g.enemyProjectiles = liveEnemy
}

// updateEnemies runs enemy behavior and takes ownership of the shots fired this tick
func (g *Game) updateEnemies() {
	target := g.player.Pos
	for _, e := range g.enemies {
		if e.Update(target, g.rng, &g.ids) {
			g.emit(Event{Kind: EventBossEnraged, EnemyID: e.ID, EnemyKind: e.Kind, Pos: e.Pos})
			g.logger.Info("boss enraged", "id", uint64(e.ID), "health", e.Health)
		}
		for _, shot := range e.Outbox {
			if shot.Update(g.width, g.height) {
				g.enemyProjectiles = append(g.enemyProjectiles, shot)
			}
		}
		e.Outbox = e.Outbox[:0]
	}
}

// compact drops everything flagged during the tick
func (g *Game) compact() {
	live := g.enemies[:0]
	for _, e := range g.enemies {
		if !e.removed {
			live = append(live, e)
		}
	}
	clear(g.enemies[len(live):])
	g.enemies = live

	shots := g.projectiles[:0]
	for _, p := range g.projectiles {
		if !p.spent {
			shots = append(shots, p)
		}
	}
	clear(g.projectiles[len(shots):])
	g.projectiles = shots

	enemyShots := g.enemyProjectiles[:0]
	for _, p := range g.enemyProjectiles {
		if !p.spent {
			enemyShots = append(enemyShots, p)
		}
	}
	g.enemyProjectiles = enemyShots
}

// enemyByID resolves a live enemy, or nil if it is gone
func (g *Game) enemyByID(id EntityID) *Enemy {
	for _, e := range g.enemies {
		if e.ID == id && !e.removed {
			return e
		}
	}
	return nil
}

// SpawnEnemy places an enemy of the given kind at pos and returns its ID
// Spawning a Boss this way marks it active for the spawn director.
func (g *Game) SpawnEnemy(kind EnemyKind, pos Vec2) (EntityID, error) {
	if g.over {
		return InvalidEntityID, ErrSessionOver
	}
	if !kind.valid() {
		return InvalidEntityID, fmt.Errorf("%w: %d", ErrUnknownEnemyKind, int(kind))
	}
	e := g.spawn(kind, pos)
	if kind == EnemyKindBoss {
		g.spawner.BossActive = true
	}
	return e.ID, nil
}

func (g *Game) spawn(kind EnemyKind, pos Vec2) *Enemy {
	// kind comes from a closed set here, so the lookup cannot fail
	e, _ := NewEnemy(g.ids.Next(), kind, pos)
	g.enemies = append(g.enemies, e)
	if kind == EnemyKindBoss {
		g.emit(Event{Kind: EventBossSpawned, EnemyID: e.ID, EnemyKind: kind, Pos: pos})
		g.logger.Info("boss spawned", "id", uint64(e.ID), "score", g.player.Score)
	}
	return e
}

// removeEnemy flags e for compaction; removing the Boss frees the director to spawn another
func (g *Game) removeEnemy(e *Enemy) {
	e.removed = true
	if e.Kind == EnemyKindBoss {
		g.spawner.BossRemoved()
	}
}

// reward grants score and experience for a kill
func (g *Game) reward(e *Enemy) {
	p := g.player
	p.Score += e.ScoreValue
	g.emit(Event{Kind: EventEnemyKilled, EnemyID: e.ID, EnemyKind: e.Kind, Pos: e.Pos, Amount: float64(e.ScoreValue)})
	g.logger.Debug("enemy killed", "enemy", e.Kind.String(), "id", uint64(e.ID), "score", p.Score)

	if p.AddExperience(e.ScoreValue) {
		g.emit(Event{Kind: EventLevelUp, Level: p.Level, Pos: p.Pos})
		g.logger.Info("level up", "level", p.Level, "points", p.UpgradePoints)
	}
}

// damagePlayer lowers player health, never below zero
func (g *Game) damagePlayer(amount float64) {
	g.player.Health = max(0, g.player.Health-amount)
	g.emit(Event{Kind: EventPlayerHit, Pos: g.player.Pos, Amount: amount})
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

// ApplyUpgrade spends an upgrade point
func (g *Game) ApplyUpgrade(kind UpgradeKind) error {
	if g.over {
		return ErrSessionOver
	}
	if err := g.player.ApplyUpgrade(kind); err != nil {
		return err
	}
	g.logger.Info("upgrade applied", "upgrade", kind.String(), "points", g.player.UpgradePoints)
	return nil
}

// SwitchVariant changes the player's character variant, keeping progression
func (g *Game) SwitchVariant(kind PlayerKind) error {
	if g.over {
		return ErrSessionOver
	}
	if err := g.player.SwitchKind(kind); err != nil {
		return err
	}
	g.logger.Info("variant switched", "variant", kind.String())
	return nil
}

// Score returns the current score
func (g *Game) Score() int { return g.player.Score }

// Health returns the player's health, never negative
func (g *Game) Health() float64 { return g.player.Health }

// MaxHealth returns the player's maximum health
func (g *Game) MaxHealth() float64 { return g.player.MaxHealth }

// Level returns the player's level
func (g *Game) Level() int { return g.player.Level }

// Experience returns experience towards the next level
func (g *Game) Experience() int { return g.player.Experience }

// ExperienceToNext returns the current level threshold
func (g *Game) ExperienceToNext() int { return g.player.ExperienceToNext }

// UpgradePoints returns the unspent upgrade points
func (g *Game) UpgradePoints() int { return g.player.UpgradePoints }

// Variant returns the player's character variant
func (g *Game) Variant() PlayerKind { return g.player.Kind }

// Over reports whether the session has ended
func (g *Game) Over() bool { return g.over }

// Tick returns the number of ticks advanced so far
func (g *Game) Tick() uint64 { return g.tick }

// SessionID identifies this session in logs
func (g *Game) SessionID() uuid.UUID { return g.sessionID }

// Config returns the configuration the game was created with
func (g *Game) Config() Config { return g.config }

package game

import (
	"slices"

	"github.com/google/uuid"
)

// EventKind identifies something notable that happened during a tick
type EventKind int

const (
	EventEnemyKilled  EventKind = iota // Destroyed by a player projectile, reward granted
	EventEnemyCrashed                  // Rammed the player, no reward
	EventPlayerHit                     // Player took damage from contact or an enemy projectile
	EventLevelUp                       // One or more levels gained
	EventBossSpawned
	EventBossEnraged
	EventSessionOver
)

// String returns a short name for logs
func (k EventKind) String() string {
	switch k {
	case EventEnemyKilled:
		return "enemy_killed"
	case EventEnemyCrashed:
		return "enemy_crashed"
	case EventPlayerHit:
		return "player_hit"
	case EventLevelUp:
		return "level_up"
	case EventBossSpawned:
		return "boss_spawned"
	case EventBossEnraged:
		return "boss_enraged"
	case EventSessionOver:
		return "session_over"
	default:
		return "unknown"
	}
}

// Event is one tick event
// Enemy fields are set for enemy events; Amount carries damage taken or score
// gained; Level is the new level for EventLevelUp.
type Event struct {
	Kind      EventKind
	EnemyID   EntityID
	EnemyKind EnemyKind
	Pos       Vec2
	Amount    float64
	Level     int
}

// Snapshot is a read-only copy of the game state after a tick
// Nothing in it aliases the live game, so front-ends may keep it across ticks.
type Snapshot struct {
	SessionID uuid.UUID
	Tick      uint64
	Width     float64
	Height    float64

	Player           Player
	Enemies          []Enemy
	Projectiles      []Projectile
	EnemyProjectiles []EnemyProjectile

	BossActive bool
	Over       bool

	// Events happened during this tick only
	Events []Event
}

// Snapshot copies the current state
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		SessionID:        g.sessionID,
		Tick:             g.tick,
		Width:            g.width,
		Height:           g.height,
		Player:           *g.player,
		Enemies:          make([]Enemy, 0, len(g.enemies)),
		Projectiles:      make([]Projectile, len(g.projectiles)),
		EnemyProjectiles: slices.Clone(g.enemyProjectiles),
		BossActive:       g.spawner.BossActive,
		Over:             g.over,
		Events:           slices.Clone(g.events),
	}
	for _, e := range g.enemies {
		c := *e
		c.Outbox = nil
		s.Enemies = append(s.Enemies, c)
	}
	copy(s.Projectiles, g.projectiles)
	for i := range s.Projectiles {
		s.Projectiles[i].hit = nil
	}
	return s
}

package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEnemyKind is returned for enemy tags outside the closed variant set
var ErrUnknownEnemyKind = errors.New("unknown enemy kind")

// EnemyKind defines different types of enemies
type EnemyKind int

const (
	EnemyKindNormal    EnemyKind = iota // Pure pursuit
	EnemyKindFast                       // Pure pursuit, fast and fragile
	EnemyKindTank                       // Pure pursuit, slow and durable
	EnemyKindShooter                    // Closes to standoff range and fires aimed shots
	EnemyKindWandering                  // Drifts between random nearby points
	EnemyKindSwarm                      // Pure pursuit, spawned in numbers
	EnemyKindBoss                       // Two-phase boss with aimed fire and radial volleys
	enemyKindCount
)

// regularEnemyKinds are the kinds the spawn director picks from uniformly
var regularEnemyKinds = [...]EnemyKind{
	EnemyKindNormal,
	EnemyKindFast,
	EnemyKindTank,
	EnemyKindShooter,
	EnemyKindWandering,
	EnemyKindSwarm,
}

var enemyKindNames = [enemyKindCount]string{
	EnemyKindNormal:    "normal",
	EnemyKindFast:      "fast",
	EnemyKindTank:      "tank",
	EnemyKindShooter:   "shooter",
	EnemyKindWandering: "wandering",
	EnemyKindSwarm:     "swarm",
	EnemyKindBoss:      "boss",
}

// String returns the lowercase tag of the kind
func (k EnemyKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("EnemyKind(%d)", int(k))
	}
	return enemyKindNames[k]
}

func (k EnemyKind) valid() bool {
	return k >= 0 && k < enemyKindCount
}

// ParseEnemyKind maps a tag such as "tank" to its EnemyKind
func ParseEnemyKind(s string) (EnemyKind, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	for k, name := range enemyKindNames {
		if name == tag {
			return EnemyKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEnemyKind, s)
}

// EnemyKindConfig holds the fixed stats of an enemy kind
type EnemyKindConfig struct {
	Kind        EnemyKind
	Radius      float64
	Speed       float64
	Health      float64
	ScoreValue  int
	Damage      float64 // Contact damage dealt to the player
	ShootDelay  int     // Ticks between aimed shots (Shooter, Boss)
	HealthBar   bool    // Rendered with a health bar overlay
	HoldRange   float64 // Stops pursuing inside this distance (0 = never stops)
	ShootRange  float64 // Only fires within this distance (0 = unlimited)
	VolleyDelay int     // Ticks between radial volleys (Boss)
}

// GetEnemyKindConfig returns configuration for an enemy kind
func GetEnemyKindConfig(kind EnemyKind) (EnemyKindConfig, error) {
	switch kind {
	case EnemyKindNormal:
		return EnemyKindConfig{
			Kind:       EnemyKindNormal,
			Radius:     15,
			Speed:      3,
			Health:     30,
			ScoreValue: 10,
			Damage:     10,
		}, nil
	case EnemyKindFast:
		return EnemyKindConfig{
			Kind:       EnemyKindFast,
			Radius:     12,
			Speed:      6,
			Health:     15,
			ScoreValue: 15,
			Damage:     5,
		}, nil
	case EnemyKindTank:
		return EnemyKindConfig{
			Kind:       EnemyKindTank,
			Radius:     25,
			Speed:      1.5,
			Health:     100,
			ScoreValue: 30,
			Damage:     20,
			HealthBar:  true,
		}, nil
	case EnemyKindShooter:
		return EnemyKindConfig{
			Kind:       EnemyKindShooter,
			Radius:     18,
			Speed:      2,
			Health:     40,
			ScoreValue: 20,
			Damage:     10,
			ShootDelay: 120,
			HoldRange:  200,
			ShootRange: 400,
		}, nil
	case EnemyKindWandering:
		return EnemyKindConfig{
			Kind:       EnemyKindWandering,
			Radius:     16,
			Speed:      2.5,
			Health:     25,
			ScoreValue: 12,
			Damage:     8,
		}, nil
	case EnemyKindSwarm:
		return EnemyKindConfig{
			Kind:       EnemyKindSwarm,
			Radius:     10,
			Speed:      4,
			Health:     10,
			ScoreValue: 5,
			Damage:     3,
		}, nil
	case EnemyKindBoss:
		return EnemyKindConfig{
			Kind:        EnemyKindBoss,
			Radius:      40,
			Speed:       1,
			Health:      300,
			ScoreValue:  100,
			Damage:      30,
			ShootDelay:  60,
			HealthBar:   true,
			HoldRange:   300,
			VolleyDelay: 180,
		}, nil
	default:
		return EnemyKindConfig{}, fmt.Errorf("%w: %d", ErrUnknownEnemyKind, int(kind))
	}
}

// Boss phase two values
const (
	bossEnragedShootDelay = 40
	bossEnragedSpeed      = 1.5
	bossEnrageFraction    = 0.5
	bossSpread            = 0.3 // Radians between enraged spread shots
	bossVolleyCount       = 8
)

// Wandering enemy tuning
const (
	wanderRetargetDelay = 60
	wanderMinDistance   = 50.0
	wanderMaxDistance   = 150.0
	wanderArrival       = 5.0
)

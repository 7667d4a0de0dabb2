package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPlayerKind is returned for character variants outside the closed set
var ErrUnknownPlayerKind = errors.New("unknown player kind")

// PlayerKind selects the player's character variant
type PlayerKind int

const (
	PlayerKindNormal  PlayerKind = iota // Single bullet
	PlayerKindShotgun                   // Three-bullet spread, lower damage
	PlayerKindLaser                     // Continuous beam to the playfield edge
	PlayerKindMissile                   // Homing missile locked on the nearest enemy
	PlayerKindRapid                     // Very fast fire, low damage
	playerKindCount
)

var playerKindNames = [playerKindCount]string{
	PlayerKindNormal:  "normal",
	PlayerKindShotgun: "shotgun",
	PlayerKindLaser:   "laser",
	PlayerKindMissile: "missile",
	PlayerKindRapid:   "rapid",
}

// String returns the lowercase tag of the kind
func (k PlayerKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("PlayerKind(%d)", int(k))
	}
	return playerKindNames[k]
}

func (k PlayerKind) valid() bool {
	return k >= 0 && k < playerKindCount
}

// PlayerKinds returns every character variant in menu order
func PlayerKinds() []PlayerKind {
	return []PlayerKind{PlayerKindNormal, PlayerKindShotgun, PlayerKindLaser, PlayerKindMissile, PlayerKindRapid}
}

// ParsePlayerKind maps a tag such as "laser" to its PlayerKind
func ParsePlayerKind(s string) (PlayerKind, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	for k, name := range playerKindNames {
		if name == tag {
			return PlayerKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlayerKind, s)
}

// Shared player base stats
const (
	playerBaseSpeed        = 5.0
	playerBaseHealth       = 100.0
	playerFirstLevelXP     = 100
	playerMinFireRate      = 3
	missileLockRange       = 500.0
	shotgunPellets         = 3
	shotgunSpread          = 0.3
	defaultPlayerFireRate  = 10
	defaultPlayerDamage    = 10.0
	defaultPlayerShotSpeed = 10.0
)

// PlayerKindConfig holds the base stats a character variant starts from
type PlayerKindConfig struct {
	Kind        PlayerKind
	Description string
	Radius      float64
	Damage      float64
	FireRate    int     // Ticks between shots
	BulletSpeed float64 // Speed of straight bullets
	// MissileSpeed is the flight speed of missiles and of the fallback bullet (Missile only)
	MissileSpeed float64
}

// GetPlayerKindConfig returns configuration for a character variant
func GetPlayerKindConfig(kind PlayerKind) (PlayerKindConfig, error) {
	switch kind {
	case PlayerKindNormal:
		return PlayerKindConfig{
			Kind:        PlayerKindNormal,
			Description: "basic character, fires single bullets",
			Radius:      20,
			Damage:      defaultPlayerDamage,
			FireRate:    defaultPlayerFireRate,
			BulletSpeed: defaultPlayerShotSpeed,
		}, nil
	case PlayerKindShotgun:
		return PlayerKindConfig{
			Kind:        PlayerKindShotgun,
			Description: "fires three bullets at once, lower damage",
			Radius:      22,
			Damage:      6,
			FireRate:    15,
			BulletSpeed: defaultPlayerShotSpeed,
		}, nil
	case PlayerKindLaser:
		return PlayerKindConfig{
			Kind:        PlayerKindLaser,
			Description: "fires a continuous beam, high damage",
			Radius:      18,
			Damage:      15,
			FireRate:    5,
			BulletSpeed: defaultPlayerShotSpeed,
		}, nil
	case PlayerKindMissile:
		return PlayerKindConfig{
			Kind:         PlayerKindMissile,
			Description:  "fires homing missiles that lock onto enemies",
			Radius:       20,
			Damage:       20,
			FireRate:     20,
			BulletSpeed:  defaultPlayerShotSpeed,
			MissileSpeed: 6,
		}, nil
	case PlayerKindRapid:
		return PlayerKindConfig{
			Kind:        PlayerKindRapid,
			Description: "extreme fire rate, low damage",
			Radius:      19,
			Damage:      5,
			FireRate:    3,
			BulletSpeed: 12,
		}, nil
	default:
		return PlayerKindConfig{}, fmt.Errorf("%w: %d", ErrUnknownPlayerKind, int(kind))
	}
}

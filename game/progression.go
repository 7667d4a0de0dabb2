package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoUpgradePoints rejects an upgrade when the player has no points to spend
	ErrNoUpgradePoints = errors.New("no upgrade points available")

	// ErrUnknownUpgrade is returned for upgrade kinds outside the closed set
	ErrUnknownUpgrade = errors.New("unknown upgrade")
)

// UpgradeKind is one of the stat upgrades a point can buy
type UpgradeKind int

const (
	UpgradeMaxHealth UpgradeKind = iota
	UpgradeMoveSpeed
	UpgradeBulletSpeed
	UpgradeBulletDamage
	UpgradeFireRate
	upgradeKindCount
)

var upgradeNames = [upgradeKindCount]string{
	UpgradeMaxHealth:    "health",
	UpgradeMoveSpeed:    "speed",
	UpgradeBulletSpeed:  "bullet-speed",
	UpgradeBulletDamage: "damage",
	UpgradeFireRate:     "fire-rate",
}

// String returns the tag of the upgrade
func (u UpgradeKind) String() string {
	if u < 0 || u >= upgradeKindCount {
		return fmt.Sprintf("UpgradeKind(%d)", int(u))
	}
	return upgradeNames[u]
}

// ParseUpgradeKind maps a tag such as "damage" to its UpgradeKind
func ParseUpgradeKind(s string) (UpgradeKind, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	for u, name := range upgradeNames {
		if name == tag {
			return UpgradeKind(u), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUpgrade, s)
}

// Upgrade step sizes
const (
	upgradeHealthStep      = 20.0
	upgradeSpeedStep       = 0.5
	upgradeBulletSpeedStep = 1.0
	upgradeDamageStep      = 2.0
	levelThresholdGrowth   = 1.5
)

// AddExperience grants experience and applies every level-up it pays for
// It reports whether at least one level-up happened.
func (p *Player) AddExperience(amount int) bool {
	p.Experience += amount
	leveled := false
	for p.Experience >= p.ExperienceToNext {
		p.Experience -= p.ExperienceToNext
		p.Level++
		p.ExperienceToNext = int(float64(p.ExperienceToNext) * levelThresholdGrowth)
		p.UpgradePoints++
		leveled = true
	}
	return leveled
}

// ApplyUpgrade spends one upgrade point on the given stat
func (p *Player) ApplyUpgrade(kind UpgradeKind) error {
	if kind < 0 || kind >= upgradeKindCount {
		return fmt.Errorf("%w: %d", ErrUnknownUpgrade, int(kind))
	}
	if p.UpgradePoints <= 0 {
		return ErrNoUpgradePoints
	}

	switch kind {
	case UpgradeMaxHealth:
		p.Upgrades.MaxHealth++
		p.MaxHealth += upgradeHealthStep
		p.Health = min(p.Health+upgradeHealthStep, p.MaxHealth)
	case UpgradeMoveSpeed:
		p.Upgrades.MoveSpeed += upgradeSpeedStep
		p.Speed += upgradeSpeedStep
	case UpgradeBulletSpeed:
		p.Upgrades.BulletSpeed += upgradeBulletSpeedStep
		p.BulletSpeed += upgradeBulletSpeedStep
	case UpgradeBulletDamage:
		p.Upgrades.BulletDamage += upgradeDamageStep
		p.BulletDamage += upgradeDamageStep
	case UpgradeFireRate:
		p.Upgrades.FireRateSteps++
		p.FireRate = max(playerMinFireRate, p.FireRate-1)
	}

	p.UpgradePoints--
	return nil
}

// SwitchKind changes the character variant in place
// Progression (health, score, experience, level, threshold, points and the
// recorded upgrades) carries over; radius, damage, fire rate and shot speeds
// restart from the new variant's base values with the upgrades re-applied.
func (p *Player) SwitchKind(kind PlayerKind) error {
	cfg, err := GetPlayerKindConfig(kind)
	if err != nil {
		return err
	}
	p.applyKind(cfg)
	p.FireCooldown = min(p.FireCooldown, p.FireRate)
	return nil
}

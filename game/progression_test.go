package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAddExperienceMultipleLevels(t *testing.T) {
	p := newTestPlayer(t, PlayerKindNormal)

	assert.False(t, p.AddExperience(99))
	assert.Equal(t, 1, p.Level)

	// 99 + 151 = 250 pays for level 2 (100) and level 3 (150)
	assert.True(t, p.AddExperience(151))
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 0, p.Experience)
	assert.Equal(t, 225, p.ExperienceToNext)
	assert.Equal(t, 2, p.UpgradePoints)
}

func TestAddExperienceThresholdTruncates(t *testing.T) {
	p := newTestPlayer(t, PlayerKindNormal)
	p.AddExperience(100 + 150 + 225)

	// 225 * 1.5 = 337.5
	assert.Equal(t, 4, p.Level)
	assert.Equal(t, 337, p.ExperienceToNext)
}

func TestAddExperienceAssociative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.IntRange(0, 5000).Draw(t, "a")
		b := rapid.IntRange(0, 5000).Draw(t, "b")

		split, err := NewPlayer(PlayerKindNormal, Vec2{})
		if err != nil {
			t.Fatal(err)
		}
		whole, _ := NewPlayer(PlayerKindNormal, Vec2{})

		split.AddExperience(a)
		split.AddExperience(b)
		whole.AddExperience(a + b)

		if split.Level != whole.Level ||
			split.Experience != whole.Experience ||
			split.ExperienceToNext != whole.ExperienceToNext ||
			split.UpgradePoints != whole.UpgradePoints {
			t.Fatalf("grant %d+%d: split %d/%d/%d/%d, whole %d/%d/%d/%d", a, b,
				split.Level, split.Experience, split.ExperienceToNext, split.UpgradePoints,
				whole.Level, whole.Experience, whole.ExperienceToNext, whole.UpgradePoints)
		}
		if split.Experience >= split.ExperienceToNext {
			t.Fatalf("experience %d left at or above threshold %d", split.Experience, split.ExperienceToNext)
		}
	})
}

func TestApplyUpgradeWithoutPoints(t *testing.T) {
	p := newTestPlayer(t, PlayerKindNormal)
	before := *p

	err := p.ApplyUpgrade(UpgradeBulletDamage)

	require.ErrorIs(t, err, ErrNoUpgradePoints)
	assert.Equal(t, before, *p)
}

func TestApplyUpgradeUnknown(t *testing.T) {
	p := newTestPlayer(t, PlayerKindNormal)
	p.UpgradePoints = 1

	require.ErrorIs(t, p.ApplyUpgrade(UpgradeKind(99)), ErrUnknownUpgrade)
	assert.Equal(t, 1, p.UpgradePoints)

	_, err := ParseUpgradeKind("armor")
	require.ErrorIs(t, err, ErrUnknownUpgrade)

	kind, err := ParseUpgradeKind("Fire-Rate")
	require.NoError(t, err)
	assert.Equal(t, UpgradeFireRate, kind)
}

func TestApplyUpgrades(t *testing.T) {
	p := newTestPlayer(t, PlayerKindNormal)
	p.UpgradePoints = 5
	p.Health = 50

	require.NoError(t, p.ApplyUpgrade(UpgradeMaxHealth))
	assert.Equal(t, 120.0, p.MaxHealth)
	assert.Equal(t, 70.0, p.Health)

	require.NoError(t, p.ApplyUpgrade(UpgradeMoveSpeed))
	assert.Equal(t, 5.5, p.Speed)

	require.NoError(t, p.ApplyUpgrade(UpgradeBulletSpeed))
	assert.Equal(t, 11.0, p.BulletSpeed)

	require.NoError(t, p.ApplyUpgrade(UpgradeBulletDamage))
	assert.Equal(t, 12.0, p.BulletDamage)

	require.NoError(t, p.ApplyUpgrade(UpgradeFireRate))
	assert.Equal(t, 9, p.FireRate)

	assert.Equal(t, 0, p.UpgradePoints)
}

func TestMaxHealthUpgradeCapsCurrentHealth(t *testing.T) {
	p := newTestPlayer(t, PlayerKindNormal)
	p.UpgradePoints = 1

	require.NoError(t, p.ApplyUpgrade(UpgradeMaxHealth))
	assert.Equal(t, 120.0, p.Health)
	assert.Equal(t, 120.0, p.MaxHealth)
}

func TestFireRateFloor(t *testing.T) {
	p := newTestPlayer(t, PlayerKindRapid)
	p.UpgradePoints = 2

	require.NoError(t, p.ApplyUpgrade(UpgradeFireRate))
	require.NoError(t, p.ApplyUpgrade(UpgradeFireRate))

	assert.Equal(t, playerMinFireRate, p.FireRate)
	assert.Equal(t, 2, p.Upgrades.FireRateSteps)
}

func TestSwitchKindKeepsProgression(t *testing.T) {
	p := newTestPlayer(t, PlayerKindNormal)
	p.AddExperience(100)
	p.Score = 120
	p.UpgradePoints = 4
	require.NoError(t, p.ApplyUpgrade(UpgradeBulletDamage))
	require.NoError(t, p.ApplyUpgrade(UpgradeFireRate))
	require.NoError(t, p.ApplyUpgrade(UpgradeFireRate))
	p.Health = 42

	require.NoError(t, p.SwitchKind(PlayerKindShotgun))

	assert.Equal(t, PlayerKindShotgun, p.Kind)
	assert.Equal(t, 22.0, p.Radius)
	assert.Equal(t, 8.0, p.BulletDamage)
	assert.Equal(t, 13, p.FireRate)
	assert.Equal(t, 42.0, p.Health)
	assert.Equal(t, 120, p.Score)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 150, p.ExperienceToNext)
	assert.Equal(t, 1, p.UpgradePoints)

	require.NoError(t, p.SwitchKind(PlayerKindRapid))
	assert.Equal(t, playerMinFireRate, p.FireRate)
	assert.Equal(t, 7.0, p.BulletDamage)

	require.NoError(t, p.ApplyUpgrade(UpgradeFireRate))
	assert.Equal(t, playerMinFireRate, p.FireRate)

	require.NoError(t, p.SwitchKind(PlayerKindNormal))
	assert.Equal(t, 7, p.FireRate, "steps bought at the floor still count")

	require.ErrorIs(t, p.SwitchKind(PlayerKind(17)), ErrUnknownPlayerKind)
	assert.Equal(t, PlayerKindNormal, p.Kind)
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer(t *testing.T, kind PlayerKind) *Player {
	t.Helper()
	p, err := NewPlayer(kind, Vec2{400, 300})
	require.NoError(t, err)
	return p
}

func TestNewPlayerDefaults(t *testing.T) {
	p := newTestPlayer(t, PlayerKindNormal)

	assert.Equal(t, 100.0, p.Health)
	assert.Equal(t, 100.0, p.MaxHealth)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 100, p.ExperienceToNext)
	assert.Equal(t, 5.0, p.Speed)
	assert.Equal(t, 10, p.FireRate)

	_, err := NewPlayer(PlayerKind(-1), Vec2{})
	require.ErrorIs(t, err, ErrUnknownPlayerKind)
}

func TestParsePlayerKind(t *testing.T) {
	for _, kind := range PlayerKinds() {
		got, err := ParsePlayerKind(" " + kind.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	got, err := ParsePlayerKind("LASER")
	require.NoError(t, err)
	assert.Equal(t, PlayerKindLaser, got)

	_, err = ParsePlayerKind("sniper")
	require.ErrorIs(t, err, ErrUnknownPlayerKind)
}

func TestPlayerMove(t *testing.T) {
	p := newTestPlayer(t, PlayerKindNormal)

	p.Move(Input{Up: true, Right: true}, 800, 600)
	assert.Equal(t, Vec2{405, 295}, p.Pos, "each axis moves by full speed")

	p.Move(Input{Up: true, Down: true}, 800, 600)
	assert.Equal(t, Vec2{405, 295}, p.Pos, "opposite keys cancel")

	p.Pos = Vec2{10, 590}
	p.Move(Input{Left: true, Down: true}, 800, 600)
	assert.Equal(t, Vec2{20, 580}, p.Pos, "clamped to radius from the edge")
}

func TestPlayerCooldown(t *testing.T) {
	p := newTestPlayer(t, PlayerKindNormal)
	var ids idAllocator

	require.Len(t, p.Fire(Vec2{800, 300}, nil, &ids, 800, 600), 1)
	assert.Equal(t, 10, p.FireCooldown)
	assert.Empty(t, p.Fire(Vec2{800, 300}, nil, &ids, 800, 600))

	for range 10 {
		p.TickCooldown()
	}
	assert.Equal(t, 0, p.FireCooldown)
	p.TickCooldown()
	assert.Equal(t, 0, p.FireCooldown, "never goes negative")
}

func TestShotgunSpread(t *testing.T) {
	p := newTestPlayer(t, PlayerKindShotgun)
	p.Angle = 0
	var ids idAllocator

	shots := p.Fire(Vec2{800, 300}, nil, &ids, 800, 600)

	require.Len(t, shots, 3)
	for i, want := range []float64{-shotgunSpread, 0, shotgunSpread} {
		assert.Equal(t, ProjectileBullet, shots[i].Kind)
		assert.InDelta(t, want, shots[i].Angle, 1e-12)
		assert.Equal(t, 6.0, shots[i].Damage)
	}
	assert.Equal(t, 15, p.FireCooldown)
}

func TestLaserBeamReachesEdge(t *testing.T) {
	p := newTestPlayer(t, PlayerKindLaser)
	var ids idAllocator

	shots := p.Fire(Vec2{600, 300}, nil, &ids, 800, 600)

	require.Len(t, shots, 1)
	beam := shots[0]
	assert.Equal(t, ProjectileLaserBeam, beam.Kind)
	assert.InDelta(t, 800, beam.End.X, 1e-9)
	assert.InDelta(t, 300, beam.End.Y, 1e-9)
	assert.InDelta(t, 1.5, beam.Damage, 1e-9)
	assert.Equal(t, laserLifetime, beam.Lifetime)
}

func TestLaserAimOnPlayerUsesHeading(t *testing.T) {
	p := newTestPlayer(t, PlayerKindLaser)
	p.Angle = 0
	var ids idAllocator

	shots := p.Fire(p.Pos, nil, &ids, 800, 600)

	require.Len(t, shots, 1)
	assert.InDelta(t, 0, shots[0].Angle, 1e-12)
	assert.InDelta(t, 800, shots[0].End.X, 1e-9)
}

func TestMissileLocksNearestEnemy(t *testing.T) {
	p := newTestPlayer(t, PlayerKindMissile)
	var ids idAllocator

	far := &Enemy{ID: 7, Pos: Vec2{400, 0}}
	near := &Enemy{ID: 8, Pos: Vec2{600, 300}}
	removed := &Enemy{ID: 9, Pos: Vec2{410, 300}, removed: true}

	shots := p.Fire(Vec2{}, []*Enemy{far, near, removed}, &ids, 800, 600)

	require.Len(t, shots, 1)
	assert.Equal(t, ProjectileMissile, shots[0].Kind)
	assert.Equal(t, EntityID(8), shots[0].Target)
	assert.InDelta(t, 0, shots[0].Angle, 1e-12)
}

func TestMissileWithoutLockFiresEquivalentBullet(t *testing.T) {
	var ids idAllocator

	locked := newTestPlayer(t, PlayerKindMissile)
	target := &Enemy{ID: 3, Pos: Vec2{700, 300}}
	missile := locked.Fire(Vec2{800, 300}, []*Enemy{target}, &ids, 800, 600)

	// Exactly 500 away is outside the lock range
	unlocked := newTestPlayer(t, PlayerKindMissile)
	unlocked.AimAt(Vec2{800, 300})
	tooFar := &Enemy{ID: 4, Pos: Vec2{900, 300}}
	fallback := unlocked.Fire(Vec2{800, 300}, []*Enemy{tooFar}, &ids, 800, 600)

	require.Len(t, missile, 1)
	require.Len(t, fallback, 1)
	assert.Equal(t, ProjectileMissile, missile[0].Kind)
	assert.Equal(t, ProjectileBullet, fallback[0].Kind)
	assert.Equal(t, missile[0].Damage, fallback[0].Damage)
	assert.Equal(t, missile[0].Speed, fallback[0].Speed)
	assert.InDelta(t, 6.0, fallback[0].Velocity.Len(), 1e-9)
}

package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func noEnemies(EntityID) *Enemy { return nil }

func TestBulletLeavesPlayfield(t *testing.T) {
	b := newBullet(1, Vec2{795, 300}, 0, 10, 10)

	assert.False(t, b.Update(800, 600, noEnemies))
	assert.InDelta(t, 805, b.Pos.X, 1e-9)

	inside := newBullet(2, Vec2{400, 300}, math.Pi/2, 10, 10)
	assert.True(t, inside.Update(800, 600, noEnemies))
}

func TestLaserBeamExpires(t *testing.T) {
	beam := newLaserBeam(1, Vec2{400, 300}, Vec2{800, 300}, 15, 800, 600)

	alive := 0
	for beam.Update(800, 600, noEnemies) {
		alive++
	}
	assert.Equal(t, laserLifetime-1, alive)
}

func TestMissileSteersTowardsTarget(t *testing.T) {
	target := &Enemy{ID: 5, Pos: Vec2{400, 0}}
	m := newMissile(1, Vec2{400, 300}, target, 20, 6)
	start := m.Angle

	// Target moves to the right; the missile turns at most one step per tick
	target.Pos = Vec2{800, 300}
	lookup := func(id EntityID) *Enemy {
		if id == target.ID {
			return target
		}
		return nil
	}
	assert.True(t, m.Update(800, 600, lookup))
	assert.InDelta(t, start+missileTurnRate, m.Angle, 1e-9)
	assert.Equal(t, target.ID, m.Target)
}

func TestMissileHoldsHeadingWhenTargetDisappears(t *testing.T) {
	target := &Enemy{ID: 5, Pos: Vec2{700, 300}}
	m := newMissile(1, Vec2{400, 300}, target, 20, 6)

	assert.True(t, m.Update(800, 600, noEnemies))
	assert.Equal(t, InvalidEntityID, m.Target)
	assert.InDelta(t, 0, m.Angle, 1e-12)
	assert.InDelta(t, 406, m.Pos.X, 1e-9)
	assert.InDelta(t, 300, m.Pos.Y, 1e-9)

	// Once cleared the lock is never re-acquired
	assert.True(t, m.Update(800, 600, func(EntityID) *Enemy { return target }))
	assert.Equal(t, InvalidEntityID, m.Target)
	assert.InDelta(t, 412, m.Pos.X, 1e-9)
}

func TestMissileLifetime(t *testing.T) {
	target := &Enemy{ID: 5, Pos: Vec2{400, 0}}
	m := newMissile(1, Vec2{400, 300}, target, 20, 0)

	ticks := 0
	for m.Update(800, 600, noEnemies) {
		ticks++
	}
	assert.Equal(t, missileLifetime-1, ticks)
}

func TestMissileOffFieldSlack(t *testing.T) {
	target := &Enemy{ID: 5, Pos: Vec2{900, 300}}
	m := newMissile(1, Vec2{834, 300}, target, 20, 6)

	assert.True(t, m.Update(800, 600, noEnemies), "within 50 of the edge")
	assert.True(t, m.Update(800, 600, noEnemies))
	assert.False(t, m.Update(800, 600, noEnemies), "852 is beyond the slack")
}

func TestEnemyProjectileUpdate(t *testing.T) {
	p := newEnemyProjectile(1, 2, Vec2{400, 2}, -math.Pi/2)

	assert.False(t, p.Update(800, 600))
	assert.InDelta(t, -3, p.Pos.Y, 1e-9)
	assert.Equal(t, enemyBulletDamage, p.Damage)
}

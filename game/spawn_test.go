package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"arenashooter/game/mocks"
)

func TestSpawnDirectorFirstSpawnAfterInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandomSource(ctrl)
	rng.EXPECT().IntN(gomock.Any()).Return(0).AnyTimes()

	d := NewSpawnDirector(800, 600, rng)
	for i := 1; i < 60; i++ {
		_, ok := d.Step(0)
		require.False(t, ok, "tick %d", i)
	}
	_, ok := d.Step(0)
	assert.True(t, ok)
	assert.Equal(t, 0, d.Counter)
	assert.InDelta(t, 59.7, d.Interval, 1e-9)
}

func TestSpawnDirectorEdgeEntry(t *testing.T) {
	tests := []struct {
		name  string
		side  int
		coord int
		bound int
		want  Vec2
	}{
		{"top", 0, 250, 801, Vec2{250, -50}},
		{"bottom", 1, 800, 801, Vec2{800, 650}},
		{"left", 2, 123, 601, Vec2{-50, 123}},
		{"right", 3, 0, 601, Vec2{850, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rng := mocks.NewMockRandomSource(ctrl)
			gomock.InOrder(
				rng.EXPECT().IntN(6).Return(3),
				rng.EXPECT().IntN(4).Return(tt.side),
				rng.EXPECT().IntN(tt.bound).Return(tt.coord),
			)

			d := NewSpawnDirector(800, 600, rng)
			d.Counter = 59

			req, ok := d.Step(0)
			require.True(t, ok)
			assert.Equal(t, EnemyKindShooter, req.Kind)
			assert.Equal(t, tt.want, req.Pos)
		})
	}
}

func TestSpawnDirectorBoss(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandomSource(ctrl)
	d := NewSpawnDirector(800, 600, rng)

	// Boss spawns draw nothing from the random source
	d.Counter = 59
	req, ok := d.Step(200)
	require.True(t, ok)
	assert.Equal(t, EnemyKindBoss, req.Kind)
	assert.Equal(t, Vec2{400, -50}, req.Pos)
	assert.True(t, d.BossActive)
	assert.Equal(t, 200, d.Watermark)

	// While the boss is active the director keeps spawning regular enemies
	rng.EXPECT().IntN(gomock.Any()).Return(0).AnyTimes()
	d.Counter = 100
	req, _ = d.Step(1000)
	assert.Equal(t, EnemyKindNormal, req.Kind)

	d.BossRemoved()
	d.Counter = 100
	req, _ = d.Step(399)
	assert.Equal(t, EnemyKindNormal, req.Kind, "needs 200 over the watermark")

	d.Counter = 100
	req, _ = d.Step(400)
	assert.Equal(t, EnemyKindBoss, req.Kind)
	assert.Equal(t, 400, d.Watermark)
}

func TestSpawnIntervalReachesFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandomSource(ctrl)
	rng.EXPECT().IntN(gomock.Any()).Return(0).AnyTimes()

	d := NewSpawnDirector(800, 600, rng)
	spawns := 0
	for spawns < 133 {
		if _, ok := d.Step(0); ok {
			spawns++
		}
	}
	assert.Greater(t, d.Interval, minSpawnInterval)

	for spawns < 134 {
		if _, ok := d.Step(0); ok {
			spawns++
		}
	}
	assert.Equal(t, minSpawnInterval, d.Interval)

	for spawns < 200 {
		if _, ok := d.Step(0); ok {
			spawns++
		}
	}
	assert.Equal(t, minSpawnInterval, d.Interval)
}

func TestSpawnIntervalMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		steps := rapid.IntRange(1, 6000).Draw(t, "steps")

		d := NewSpawnDirector(800, 600, rand.New(rand.NewPCG(seed, seed)))
		prev := d.Interval
		score := 0
		for i := 0; i < steps; i++ {
			if req, ok := d.Step(score); ok {
				if req.Kind == EnemyKindBoss {
					d.BossRemoved()
				}
				score += 7
			}
			if d.Interval > prev {
				t.Fatalf("interval grew from %v to %v at step %d", prev, d.Interval, i)
			}
			if d.Interval < minSpawnInterval {
				t.Fatalf("interval %v below floor at step %d", d.Interval, i)
			}
			prev = d.Interval
		}
	})
}

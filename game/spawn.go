package game

import "math"

// Spawn director tuning
const (
	initialSpawnInterval = 60.0
	spawnIntervalStep    = 0.3
	minSpawnInterval     = 20.0
	bossScoreDelta       = 200
	spawnEdgeOffset      = 50.0
)

// SpawnRequest describes one enemy the director wants placed
type SpawnRequest struct {
	Kind EnemyKind
	Pos  Vec2
}

// SpawnDirector decides when and what to spawn, and ramps difficulty
type SpawnDirector struct {
	// Counter counts ticks since the last spawn
	Counter int

	// Interval is the current ticks-per-spawn; it only ever shrinks
	Interval float64

	// Watermark is the score at the last boss spawn
	Watermark int

	// BossActive is set while a Boss is in play
	BossActive bool

	width, height float64
	rng           RandomSource
}

// NewSpawnDirector creates a director for a w x h playfield
func NewSpawnDirector(w, h float64, rng RandomSource) *SpawnDirector {
	return &SpawnDirector{
		Interval: initialSpawnInterval,
		width:    w,
		height:   h,
		rng:      rng,
	}
}

// Step advances the spawn timer one tick and returns the enemy to spawn, if any
func (d *SpawnDirector) Step(score int) (SpawnRequest, bool) {
	d.Counter++
	if float64(d.Counter) < d.Interval {
		return SpawnRequest{}, false
	}
	d.Counter = 0

	var req SpawnRequest
	if score >= d.Watermark+bossScoreDelta && !d.BossActive {
		req = SpawnRequest{Kind: EnemyKindBoss, Pos: d.bossEntry()}
		d.BossActive = true
		d.Watermark = score
	} else {
		req = SpawnRequest{
			Kind: regularEnemyKinds[d.rng.IntN(len(regularEnemyKinds))],
			Pos:  d.edgeEntry(),
		}
	}

	d.Interval = math.Max(minSpawnInterval, d.Interval-spawnIntervalStep)
	return req, true
}

// BossRemoved clears the boss-active flag so another Boss can be earned
func (d *SpawnDirector) BossRemoved() {
	d.BossActive = false
}

// bossEntry is the fixed point above top-center
func (d *SpawnDirector) bossEntry() Vec2 {
	return Vec2{d.width / 2, -spawnEdgeOffset}
}

// edgeEntry picks a uniform point just outside a random playfield edge
func (d *SpawnDirector) edgeEntry() Vec2 {
	switch d.rng.IntN(4) {
	case 0: // Top
		return Vec2{float64(d.rng.IntN(int(d.width) + 1)), -spawnEdgeOffset}
	case 1: // Bottom
		return Vec2{float64(d.rng.IntN(int(d.width) + 1)), d.height + spawnEdgeOffset}
	case 2: // Left
		return Vec2{-spawnEdgeOffset, float64(d.rng.IntN(int(d.height) + 1))}
	default: // Right
		return Vec2{d.width + spawnEdgeOffset, float64(d.rng.IntN(int(d.height) + 1))}
	}
}

package game

//go:generate go tool mockgen -destination=mocks/mock_random.go -package=mocks arenashooter/game RandomSource

// EntityID is a stable identifier for an entity within one Game
// Homing projectiles hold an EntityID instead of a pointer so a removed target
// is detected by lookup rather than dereferenced.
type EntityID uint64

// InvalidEntityID marks an unset entity reference
const InvalidEntityID EntityID = 0

// idAllocator hands out EntityIDs for a single Game
type idAllocator struct {
	next EntityID
}

// Next returns a fresh EntityID
func (a *idAllocator) Next() EntityID {
	a.next++
	return a.next
}

// RandomSource is the randomness used by spawning and wandering enemies
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	// Float64 returns a uniform value in [0.0, 1.0)
	Float64() float64

	// IntN returns a uniform value in [0, n)
	IntN(n int) int
}

// uniform returns a uniform value in [lo, hi)
func uniform(r RandomSource, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Collidable is implemented by every entity that takes part in box collision tests
type Collidable interface {
	Bounds() Rect
}

var (
	_ Collidable = (*Player)(nil)
	_ Collidable = (*Enemy)(nil)
	_ Collidable = (*Projectile)(nil)
	_ Collidable = (*EnemyProjectile)(nil)
)

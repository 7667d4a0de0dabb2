package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
)

// ErrInvalidPlayfield is returned when a playfield dimension is outside (0, MaxPlayfieldSize]
var ErrInvalidPlayfield = errors.New("invalid playfield size")

// MaxPlayfieldSize bounds each playfield dimension; spawn coordinates are drawn as integers
const MaxPlayfieldSize = math.MaxInt32

// Config holds game configuration
type Config struct {
	// Width is the logical playfield width in world units
	Width float64

	// Height is the logical playfield height in world units
	Height float64

	// StartVariant is the character variant the player starts as
	StartVariant PlayerKind

	// Seed seeds the default random source when Random is nil
	Seed uint64

	// Random overrides the random source used by spawning and wandering enemies
	Random RandomSource

	// DisableSpawner stops the spawn director (scripted scenarios place enemies with SpawnEnemy)
	DisableSpawner bool

	// Logger receives session records; nil discards them
	Logger *slog.Logger
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		StartVariant: PlayerKindNormal,
		Seed:         1,
	}
}

// Validate checks the configuration and returns a descriptive error for the first problem found
func (c Config) Validate() error {
	if !isValidSize(c.Width) || !isValidSize(c.Height) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidPlayfield, c.Width, c.Height)
	}
	if !c.StartVariant.valid() {
		return fmt.Errorf("start variant: %w: %d", ErrUnknownPlayerKind, int(c.StartVariant))
	}
	return nil
}

// random returns the configured random source or a seeded PCG
func (c Config) random() RandomSource {
	if c.Random != nil {
		return c.Random
	}
	return rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15))
}

// logger returns the configured logger or one that drops every record
func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func isValidSize(v float64) bool {
	return v > 0 && v <= MaxPlayfieldSize
}

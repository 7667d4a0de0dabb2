package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"arenashooter/game"
)

// screenState is the front-end menu state layered over a session
type screenState int

const (
	statePlaying screenState = iota
	statePaused
	stateUpgrade
	stateOver
)

// App adapts a game session to ebiten's Game interface and owns the menus around it
type App struct {
	config  game.Config
	session *game.Game

	// snapshot is the state after the most recent tick
	snapshot game.Snapshot

	state     screenState
	palette   Palette
	hud       *hud
	particles *ParticleSystem
	dust      *dustField
	profiler  *Profiler
	logger    *slog.Logger

	// notice is a one-line message shown under the HUD (rejected upgrades and the like)
	notice string
	quit   bool
}

// NewApp starts a session with config; profiler may be nil
func NewApp(config game.Config, palette Palette, profiler *Profiler, logger *slog.Logger) (*App, error) {
	h, err := newHUD(palette)
	if err != nil {
		return nil, fmt.Errorf("hud: %w", err)
	}
	a := &App{
		config:    config,
		palette:   palette,
		hud:       h,
		particles: NewParticleSystem(maxParticles),
		dust:      newDustField(config.Width, config.Height, dustCount, palette.Dust, rand.New(rand.NewPCG(config.Seed, 0))),
		profiler:  profiler,
		logger:    logger,
	}
	if err := a.restart(); err != nil {
		return nil, err
	}
	return a, nil
}

// restart throws the current session away and begins a new one with the same config
// A zero seed draws a fresh one for every session.
func (a *App) restart() error {
	config := a.config
	if config.Seed == 0 {
		config.Seed = rand.Uint64()
	}
	session, err := game.NewGame(config)
	if err != nil {
		return err
	}
	a.session = session
	a.snapshot = session.Snapshot()
	a.state = statePlaying
	a.notice = ""
	a.particles.Reset()
	a.hud.Reset(a.snapshot)
	return nil
}

// Update runs one frame: menu keys, then one simulation tick while playing
func (a *App) Update() error {
	if err := a.handleMenuKeys(); err != nil {
		return err
	}
	if a.quit {
		a.logger.Info("quit", "session", a.session.SessionID().String(), "score", a.session.Score())
		return ebiten.Termination
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	if a.state != statePlaying {
		// Keep the bars easing without replaying the last tick's events
		idle := a.snapshot
		idle.Events = nil
		a.hud.Update(idle, dt)
		return nil
	}

	before := a.snapshot.Player.Pos
	start := time.Now()
	a.snapshot = a.session.Advance(readInput())
	a.profiler.Observe(a.snapshot.Tick, time.Since(start))

	a.dust.update(a.snapshot.Player.Pos.Sub(before))
	a.particles.Emit(a.snapshot.Events, a.palette)
	a.particles.Update()
	a.hud.Update(a.snapshot, dt)

	if a.snapshot.Over {
		a.state = stateOver
	}
	return nil
}

// Draw draws the latest snapshot and whichever overlay the menu state calls for
func (a *App) Draw(screen *ebiten.Image) {
	a.drawWorld(screen, a.snapshot)
	a.particles.Draw(screen)

	switch a.state {
	case statePlaying:
		a.hud.Draw(screen, a.snapshot, a.notice)
	case statePaused:
		a.hud.Draw(screen, a.snapshot, "")
		a.hud.DrawPaused(screen, a.snapshot)
	case stateUpgrade:
		a.hud.DrawUpgrade(screen, a.snapshot, a.notice)
	case stateOver:
		a.hud.DrawOver(screen, a.snapshot)
	}
}

// Layout keeps the logical screen equal to the playfield; ebiten scales it to the window
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.config.Width), int(a.config.Height)
}

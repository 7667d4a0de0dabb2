package main

import (
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenashooter/game"
)

func newTestApp(t *testing.T) *termApp {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.DisableSpawner = true
	app, err := newTermApp(cfg, newSimScreen(t), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return app
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func send(t *testing.T, app *termApp, ev tcell.Event) bool {
	t.Helper()
	quit, err := app.handleEvent(ev)
	require.NoError(t, err)
	return quit
}

func TestStickyMovement(t *testing.T) {
	app := newTestApp(t)

	send(t, app, key('w'))
	for range stickyTicks {
		app.step()
	}
	assert.InDelta(t, 300-5*stickyTicks, app.snapshot.Player.Pos.Y, 1e-9)

	app.step()
	assert.InDelta(t, 300-5*stickyTicks, app.snapshot.Player.Pos.Y, 1e-9, "released after the sticky window")
}

func TestPauseFreezesSession(t *testing.T) {
	app := newTestApp(t)
	app.step()
	require.Equal(t, uint64(1), app.snapshot.Tick)

	send(t, app, key('p'))
	app.step()
	assert.Equal(t, uint64(1), app.snapshot.Tick)
	assert.Equal(t, []string{"PAUSED", "p or Esc to resume, q to quit"}, app.overlay())

	send(t, app, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	app.step()
	assert.Equal(t, uint64(2), app.snapshot.Tick)
}

func TestUpgradeMenu(t *testing.T) {
	app := newTestApp(t)

	send(t, app, key('u'))
	require.Equal(t, modeUpgrade, app.mode)

	send(t, app, key('1'))
	assert.Equal(t, "no upgrade points left", app.notice)

	send(t, app, key('8'))
	assert.Equal(t, game.PlayerKindLaser, app.session.Variant())
	assert.Equal(t, game.PlayerKindLaser, app.snapshot.Player.Kind)

	send(t, app, key('u'))
	assert.Equal(t, modePlaying, app.mode)
}

func TestMouseAimsAndFires(t *testing.T) {
	app := newTestApp(t)

	send(t, app, tcell.NewEventMouse(70, 13, tcell.Button1, tcell.ModNone))
	app.step()
	require.Len(t, app.snapshot.Projectiles, 1)
	assert.Greater(t, app.snapshot.Projectiles[0].Pos.X, 400.0, "fired toward the cursor")

	send(t, app, tcell.NewEventMouse(70, 13, tcell.ButtonNone, tcell.ModNone))
	assert.False(t, app.controls.mouse)
}

func TestRestartSeeds(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.DisableSpawner = true
	cfg.Seed = 0
	app, err := newTermApp(cfg, newSimScreen(t), slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	first := app.session.Config().Seed
	require.NoError(t, app.restart())
	second := app.session.Config().Seed
	assert.NotZero(t, first)
	assert.NotEqual(t, first, second, "a zero seed draws a fresh one per session")

	cfg.Seed = 7
	app, err = newTermApp(cfg, newSimScreen(t), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.NoError(t, app.restart())
	assert.Equal(t, uint64(7), app.session.Config().Seed, "an explicit seed is kept")
}

func TestGameOverRestartAndQuit(t *testing.T) {
	app := newTestApp(t)
	for range 5 {
		_, err := app.session.SpawnEnemy(game.EnemyKindTank, game.Vec2{X: 400, Y: 300})
		require.NoError(t, err)
	}
	app.step()
	require.Equal(t, modeOver, app.mode)

	first := app.session.SessionID()
	assert.False(t, send(t, app, key('r')))
	assert.Equal(t, modePlaying, app.mode)
	assert.NotEqual(t, first, app.session.SessionID())
	assert.Equal(t, 100.0, app.snapshot.Player.Health)

	assert.True(t, send(t, app, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

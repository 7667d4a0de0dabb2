package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenashooter/game"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25) // 24 playfield rows under the HUD
	return screen
}

func newScriptedSession(t *testing.T) *game.Game {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.DisableSpawner = true
	g, err := game.NewGame(cfg)
	require.NoError(t, err)
	return g
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	row := make([]rune, w)
	for x := range row {
		r, _, _, _ := screen.GetContent(x, y)
		row[x] = r
	}
	return string(row)
}

func TestViewPlacesEntities(t *testing.T) {
	screen := newSimScreen(t)
	v := newView(screen)
	g := newScriptedSession(t)
	_, err := g.SpawnEnemy(game.EnemyKindTank, game.Vec2{X: 700, Y: 300})
	require.NoError(t, err)

	v.Draw(g.Snapshot(), nil)

	r, _, _, _ := screen.GetContent(40, 13)
	assert.Equal(t, '@', r, "player at the center")
	r, _, _, _ = screen.GetContent(70, 13)
	assert.Equal(t, 'T', r, "tank at three quarters across")
	assert.Contains(t, rowText(screen, 0), "Score 0  HP 100/100  Lv 1  XP 0/100  normal")
}

func TestViewDrawsLaserAlongBeam(t *testing.T) {
	screen := newSimScreen(t)
	v := newView(screen)
	cfg := game.DefaultConfig()
	cfg.DisableSpawner = true
	cfg.StartVariant = game.PlayerKindLaser
	g, err := game.NewGame(cfg)
	require.NoError(t, err)

	s := g.Advance(game.Input{Aim: game.Vec2{X: 800, Y: 300}, Fire: true})
	require.Len(t, s.Projectiles, 1)
	v.Draw(s, nil)

	for x := 41; x < 80; x++ {
		r, _, _, _ := screen.GetContent(x, 13)
		assert.Equal(t, '*', r, "column %d", x)
	}
}

func TestViewOverlays(t *testing.T) {
	screen := newSimScreen(t)
	v := newView(screen)
	g := newScriptedSession(t)
	for range 5 {
		_, err := g.SpawnEnemy(game.EnemyKindTank, game.Vec2{X: 400, Y: 300})
		require.NoError(t, err)
	}
	s := g.Advance(game.Input{})
	require.True(t, s.Over)

	v.Draw(s, []string{"r to restart"})
	assert.Contains(t, rowText(screen, 11), "GAME OVER")
	assert.Contains(t, rowText(screen, 12), "r to restart")
}

func TestViewCellMapping(t *testing.T) {
	screen := newSimScreen(t)
	v := newView(screen)
	s := newScriptedSession(t).Snapshot()

	world := v.toWorld(s.Width, s.Height, 40, 13)
	assert.InDelta(t, 405, world.X, 1e-9)
	assert.InDelta(t, 312.5, world.Y, 1e-9)

	x, y, ok := v.toCell(s, world)
	require.True(t, ok)
	assert.Equal(t, 40, x)
	assert.Equal(t, 13, y)

	_, _, ok = v.toCell(s, game.Vec2{X: 800, Y: 10})
	assert.False(t, ok, "right edge is outside")
	_, _, ok = v.toCell(s, game.Vec2{X: 10, Y: -1})
	assert.False(t, ok)
}

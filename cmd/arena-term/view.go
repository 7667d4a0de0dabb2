package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"arenashooter/game"
)

// hudRows is the number of terminal rows above the playfield
const hudRows = 1

var (
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorLightGreen).Bold(true)
	styleBullet   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleMissile  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleLaser    = tcell.StyleDefault.Foreground(tcell.ColorLightCyan)
	styleShot     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleEnraged  = tcell.StyleDefault.Foreground(tcell.ColorDeepPink).Bold(true)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// enemyGlyphs gives each enemy kind its rune and color
var enemyGlyphs = map[game.EnemyKind]struct {
	r     rune
	style tcell.Style
}{
	game.EnemyKindNormal:    {'e', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	game.EnemyKindFast:      {'f', tcell.StyleDefault.Foreground(tcell.ColorOrange)},
	game.EnemyKindTank:      {'T', tcell.StyleDefault.Foreground(tcell.ColorMaroon).Bold(true)},
	game.EnemyKindShooter:   {'s', tcell.StyleDefault.Foreground(tcell.ColorPurple)},
	game.EnemyKindWandering: {'w', tcell.StyleDefault.Foreground(tcell.ColorTeal)},
	game.EnemyKindSwarm:     {'.', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	game.EnemyKindBoss:      {'B', tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)},
}

// view draws snapshots onto a terminal, scaling the playfield to fit below the HUD row
type view struct {
	screen tcell.Screen
}

func newView(screen tcell.Screen) *view {
	return &view{screen: screen}
}

// field returns the playfield's size in cells
func (v *view) field() (cols, rows int) {
	w, h := v.screen.Size()
	return max(1, w), max(1, h-hudRows)
}

// toCell maps a world position onto a terminal cell; ok is false outside the playfield
func (v *view) toCell(s game.Snapshot, p game.Vec2) (x, y int, ok bool) {
	cols, rows := v.field()
	if p.X < 0 || p.Y < 0 || p.X >= s.Width || p.Y >= s.Height {
		return 0, 0, false
	}
	x = int(p.X / s.Width * float64(cols))
	y = int(p.Y/s.Height*float64(rows)) + hudRows
	return x, y, true
}

// toWorld maps a terminal cell to the world position at its center
func (v *view) toWorld(width, height float64, x, y int) game.Vec2 {
	cols, rows := v.field()
	return game.Vec2{
		X: (float64(x) + 0.5) / float64(cols) * width,
		Y: (float64(y-hudRows) + 0.5) / float64(rows) * height,
	}
}

func (v *view) put(x, y int, r rune, style tcell.Style) {
	v.screen.SetContent(x, y, r, nil, style)
}

func (v *view) text(x, y int, str string, style tcell.Style) {
	for _, r := range str {
		v.put(x, y, r, style)
		x++
	}
}

func (v *view) centered(y int, str string, style tcell.Style) {
	w, _ := v.screen.Size()
	v.text(max(0, (w-len([]rune(str)))/2), y, str, style)
}

// Draw renders s; overlay is an optional menu line drawn over the middle of the field
func (v *view) Draw(s game.Snapshot, overlay []string) {
	v.screen.Clear()
	v.drawHUD(s)

	for i := range s.Projectiles {
		v.drawProjectile(s, &s.Projectiles[i])
	}
	for i := range s.EnemyProjectiles {
		if x, y, ok := v.toCell(s, s.EnemyProjectiles[i].Pos); ok {
			v.put(x, y, 'o', styleShot)
		}
	}
	for i := range s.Enemies {
		e := &s.Enemies[i]
		x, y, ok := v.toCell(s, e.Pos)
		if !ok {
			continue
		}
		g := enemyGlyphs[e.Kind]
		style := g.style
		if e.Kind == game.EnemyKindBoss && e.Phase == game.BossPhaseEnraged {
			style = styleEnraged
		}
		v.put(x, y, g.r, style)
	}
	if x, y, ok := v.toCell(s, s.Player.Pos); ok {
		v.put(x, y, '@', stylePlayer)
	}

	if s.Over {
		overlay = append([]string{"GAME OVER"}, overlay...)
	}
	_, h := v.screen.Size()
	for i, line := range overlay {
		style := styleDim
		switch {
		case s.Over && i == 0:
			style = styleGameOver
		case i == 0:
			style = styleText
		}
		v.centered(h/2-len(overlay)/2+i, line, style)
	}
	v.screen.Show()
}

func (v *view) drawHUD(s game.Snapshot) {
	p := s.Player
	line := fmt.Sprintf("Score %d  HP %.0f/%.0f  Lv %d  XP %d/%d  %s",
		p.Score, p.Health, p.MaxHealth, p.Level, p.Experience, p.ExperienceToNext, p.Kind)
	if p.UpgradePoints > 0 {
		line += fmt.Sprintf("  +%d (u)", p.UpgradePoints)
	}
	v.text(0, 0, line, styleText)
	if s.BossActive {
		w, _ := v.screen.Size()
		v.text(w-4, 0, "BOSS", styleEnraged)
	}
}

func (v *view) drawProjectile(s game.Snapshot, p *game.Projectile) {
	switch p.Kind {
	case game.ProjectileLaserBeam:
		// Sample the beam at sub-cell spacing
		cols, rows := v.field()
		step := math.Min(s.Width/float64(cols), s.Height/float64(rows)) / 2
		length := p.End.Sub(p.Pos).Len()
		dir := p.Pos.DirectionTo(p.End)
		for d := 0.0; d <= length; d += step {
			if x, y, ok := v.toCell(s, p.Pos.Add(dir.Scale(d))); ok {
				v.put(x, y, '*', styleLaser)
			}
		}
	case game.ProjectileMissile:
		if x, y, ok := v.toCell(s, p.Pos); ok {
			v.put(x, y, '!', styleMissile)
		}
	default:
		if x, y, ok := v.toCell(s, p.Pos); ok {
			v.put(x, y, '\'', styleBullet)
		}
	}
}

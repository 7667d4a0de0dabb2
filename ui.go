package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"

	"arenashooter/game"
)

// easedBar is a HUD bar whose fill glides to its target instead of jumping
type easedBar struct {
	value  float32
	target float32
	tween  *gween.Tween
}

// Set starts a new tween if the target changed
func (b *easedBar) Set(target float32) {
	if target == b.target {
		return
	}
	b.target = target
	b.tween = gween.New(b.value, target, hudEaseSeconds, ease.OutCubic)
}

// Snap jumps straight to v
func (b *easedBar) Snap(v float32) {
	b.value, b.target, b.tween = v, v, nil
}

// Update advances the tween by dt seconds
func (b *easedBar) Update(dt float32) {
	if b.tween == nil {
		return
	}
	v, done := b.tween.Update(dt)
	b.value = v
	if done {
		b.tween = nil
	}
}

// hud draws score, bars, level and the menu overlays
type hud struct {
	palette Palette
	face    *text.GoTextFace
	title   *text.GoTextFace

	health easedBar
	exp    easedBar

	// flash fades a red border in after the player takes damage
	flash      *gween.Tween
	flashAlpha float32
}

func newHUD(palette Palette) (*hud, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &hud{
		palette: palette,
		face:    &text.GoTextFace{Source: src, Size: hudFontSize},
		title:   &text.GoTextFace{Source: src, Size: hudTitleFontSize},
	}, nil
}

// Reset snaps the bars to s without easing
func (h *hud) Reset(s game.Snapshot) {
	h.health.Snap(fraction(s.Player.Health, s.Player.MaxHealth))
	h.exp.Snap(fraction(float64(s.Player.Experience), float64(s.Player.ExperienceToNext)))
	h.flash = nil
	h.flashAlpha = 0
}

// Update retargets the bars from s and advances the tweens by dt seconds
func (h *hud) Update(s game.Snapshot, dt float32) {
	h.health.Set(fraction(s.Player.Health, s.Player.MaxHealth))
	h.exp.Set(fraction(float64(s.Player.Experience), float64(s.Player.ExperienceToNext)))
	for _, ev := range s.Events {
		if ev.Kind == game.EventPlayerHit {
			h.flash = gween.New(1, 0, flashSeconds, ease.OutQuad)
			break
		}
	}

	h.health.Update(dt)
	h.exp.Update(dt)
	if h.flash != nil {
		v, done := h.flash.Update(dt)
		h.flashAlpha = v
		if done {
			h.flash = nil
		}
	}
}

// Draw draws the in-game HUD
func (h *hud) Draw(screen *ebiten.Image, s game.Snapshot, notice string) {
	p := s.Player
	y := hudMargin

	h.label(screen, fmt.Sprintf("Score: %d", p.Score), hudMargin, y, h.palette.Text)
	y += hudLineHeight

	h.bar(screen, hudMargin, y, h.health.value, h.palette.HealthBar)
	h.label(screen, fmt.Sprintf("%.0f/%.0f", p.Health, p.MaxHealth), hudMargin+hudBarWidth+8, y-3, h.palette.TextDim)
	y += hudLineHeight

	h.label(screen, fmt.Sprintf("Level %d", p.Level), hudMargin, y, h.palette.Text)
	y += hudLineHeight

	h.bar(screen, hudMargin, y, h.exp.value, h.palette.ExpBar)
	h.label(screen, fmt.Sprintf("%d/%d XP", p.Experience, p.ExperienceToNext), hudMargin+hudBarWidth+8, y-3, h.palette.TextDim)
	y += hudLineHeight

	if p.UpgradePoints > 0 {
		h.label(screen, fmt.Sprintf("Upgrade points: %d (U)", p.UpgradePoints), hudMargin, y, h.palette.Text)
		y += hudLineHeight
	}
	h.label(screen, "Variant: "+p.Kind.String(), hudMargin, y, h.palette.TextDim)
	y += hudLineHeight

	if notice != "" {
		h.label(screen, notice, hudMargin, y, h.palette.TextDim)
	}

	if h.flashAlpha > 0 {
		clr := withAlpha(h.palette.DamageFlash, float64(h.flashAlpha))
		vector.StrokeRect(screen, 2, 2, float32(s.Width)-4, float32(s.Height)-4, 4, clr, false)
	}
}

// DrawPaused draws the pause overlay
func (h *hud) DrawPaused(screen *ebiten.Image, s game.Snapshot) {
	h.shade(screen, s)
	h.centered(screen, h.title, "PAUSED", s.Width/2, s.Height/2-40, h.palette.Text)
	h.centered(screen, h.face, "Esc to resume, Q to quit", s.Width/2, s.Height/2+10, h.palette.TextDim)
}

// DrawUpgrade draws the upgrade and variant menu
func (h *hud) DrawUpgrade(screen *ebiten.Image, s game.Snapshot, notice string) {
	h.shade(screen, s)
	p := s.Player
	x, y := s.Width/2-160, s.Height/2-180

	h.label(screen, "UPGRADES", x, y, h.palette.Text)
	y += hudLineHeight * 1.5
	h.label(screen, fmt.Sprintf("Points available: %d", p.UpgradePoints), x, y, h.palette.TextDim)
	y += hudLineHeight * 1.5

	lines := []string{
		fmt.Sprintf("1  Max health +20   (%.0f)", p.MaxHealth),
		fmt.Sprintf("2  Move speed +0.5  (%.1f)", p.Speed),
		fmt.Sprintf("3  Bullet speed +1  (%.0f)", p.BulletSpeed),
		fmt.Sprintf("4  Damage +2        (%.0f)", p.BulletDamage),
		fmt.Sprintf("5  Fire rate -1     (%d ticks)", p.FireRate),
	}
	for _, l := range lines {
		h.label(screen, l, x, y, h.palette.Text)
		y += hudLineHeight
	}

	y += hudLineHeight
	h.label(screen, "VARIANTS", x, y, h.palette.Text)
	y += hudLineHeight * 1.5
	for i, kind := range game.PlayerKinds() {
		key := (i + 6) % 10
		clr := h.palette.Text
		if kind == p.Kind {
			clr = h.palette.Player
		}
		cfg, _ := game.GetPlayerKindConfig(kind)
		h.label(screen, fmt.Sprintf("%d  %-8s %s", key, kind.String(), cfg.Description), x, y, clr)
		y += hudLineHeight
	}

	y += hudLineHeight
	if notice != "" {
		h.label(screen, notice, x, y, h.palette.TextDim)
		y += hudLineHeight
	}
	h.label(screen, "U or Esc to return", x, y, h.palette.TextDim)
}

// DrawOver draws the game over screen
func (h *hud) DrawOver(screen *ebiten.Image, s game.Snapshot) {
	h.shade(screen, s)
	h.centered(screen, h.title, "GAME OVER", s.Width/2, s.Height/2-60, h.palette.DamageFlash)
	h.centered(screen, h.face, fmt.Sprintf("Score %d, level %d", s.Player.Score, s.Player.Level), s.Width/2, s.Height/2, h.palette.Text)
	h.centered(screen, h.face, "R to restart, Q to quit", s.Width/2, s.Height/2+30, h.palette.TextDim)
}

func (h *hud) bar(screen *ebiten.Image, x, y float64, fill float32, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), hudBarWidth, hudBarHeight, h.palette.BarBack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), hudBarWidth*clamp01(fill), hudBarHeight, clr, false)
}

func (h *hud) shade(screen *ebiten.Image, s game.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.Width), float32(s.Height), h.palette.OverlayShade, false)
}

func (h *hud) label(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, h.face, op)
}

func (h *hud) centered(screen *ebiten.Image, face *text.GoTextFace, str string, cx, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, str, face, op)
}

func fraction(v, total float64) float32 {
	if total <= 0 {
		return 0
	}
	return clamp01(float32(v / total))
}

func clamp01(v float32) float32 {
	return min(1, max(0, v))
}

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"arenashooter/game"
)

// upgradeKeys maps the upgrade screen's number keys to upgrades
var upgradeKeys = []struct {
	key     ebiten.Key
	upgrade game.UpgradeKind
}{
	{ebiten.Key1, game.UpgradeMaxHealth},
	{ebiten.Key2, game.UpgradeMoveSpeed},
	{ebiten.Key3, game.UpgradeBulletSpeed},
	{ebiten.Key4, game.UpgradeBulletDamage},
	{ebiten.Key5, game.UpgradeFireRate},
}

// variantKeys maps 6 to 0 onto the character variants in menu order
var variantKeys = []ebiten.Key{ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9, ebiten.Key0}

// readInput polls the keyboard and mouse into one tick of player intent
func readInput() game.Input {
	cx, cy := ebiten.CursorPosition()
	return game.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		Aim:   game.Vec2{X: float64(cx), Y: float64(cy)},
		Fire:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

// handleMenuKeys processes state transitions and menu actions for this frame
func (a *App) handleMenuKeys() error {
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	switch a.state {
	case statePlaying:
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			a.state = statePaused
		case inpututil.IsKeyJustPressed(ebiten.KeyU):
			a.state = stateUpgrade
			a.notice = ""
		}

	case statePaused:
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			a.state = statePlaying
		case inpututil.IsKeyJustPressed(ebiten.KeyQ):
			a.quit = true
		}

	case stateUpgrade:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyU) {
			a.state = statePlaying
			return nil
		}
		for _, k := range upgradeKeys {
			if inpututil.IsKeyJustPressed(k.key) {
				a.applyUpgrade(k.upgrade)
			}
		}
		for i, key := range variantKeys {
			if inpututil.IsKeyJustPressed(key) {
				a.switchVariant(game.PlayerKinds()[i])
			}
		}

	case stateOver:
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			return a.restart()
		case inpututil.IsKeyJustPressed(ebiten.KeyQ):
			a.quit = true
		}
	}
	return nil
}

func (a *App) applyUpgrade(kind game.UpgradeKind) {
	err := a.session.ApplyUpgrade(kind)
	switch {
	case errors.Is(err, game.ErrNoUpgradePoints):
		a.notice = "no upgrade points left"
	case err != nil:
		a.logger.Error("upgrade failed", "upgrade", kind.String(), "error", err)
	default:
		a.notice = "upgraded " + kind.String()
	}
	a.snapshot = a.session.Snapshot()
}

func (a *App) switchVariant(kind game.PlayerKind) {
	if err := a.session.SwitchVariant(kind); err != nil {
		a.logger.Error("variant switch failed", "variant", kind.String(), "error", err)
		return
	}
	a.notice = "now playing " + kind.String()
	a.snapshot = a.session.Snapshot()
}

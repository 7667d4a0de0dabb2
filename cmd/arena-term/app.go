package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"

	"arenashooter/game"
)

type mode int

const (
	modePlaying mode = iota
	modePaused
	modeUpgrade
	modeOver
)

// upgradeRunes maps the upgrade menu's number keys to upgrades
var upgradeRunes = map[rune]game.UpgradeKind{
	'1': game.UpgradeMaxHealth,
	'2': game.UpgradeMoveSpeed,
	'3': game.UpgradeBulletSpeed,
	'4': game.UpgradeBulletDamage,
	'5': game.UpgradeFireRate,
}

// variantRunes maps 6 to 0 onto the character variants in menu order
var variantRunes = []rune{'6', '7', '8', '9', '0'}

// termApp runs one session against a terminal
type termApp struct {
	config   game.Config
	session  *game.Game
	snapshot game.Snapshot
	view     *view
	controls controls
	mode     mode
	notice   string
	logger   *slog.Logger
}

func newTermApp(config game.Config, screen tcell.Screen, logger *slog.Logger) (*termApp, error) {
	t := &termApp{
		config: config,
		view:   newView(screen),
		logger: logger,
	}
	if err := t.restart(); err != nil {
		return nil, err
	}
	return t, nil
}

// restart begins a new session; a zero seed draws a fresh one each time
func (t *termApp) restart() error {
	config := t.config
	if config.Seed == 0 {
		config.Seed = rand.Uint64()
	}
	session, err := game.NewGame(config)
	if err != nil {
		return err
	}
	t.session = session
	t.snapshot = session.Snapshot()
	t.controls = controls{aim: t.snapshot.Player.Pos}
	t.mode = modePlaying
	t.notice = ""
	return nil
}

// handleEvent applies one terminal event and reports whether the app should quit
func (t *termApp) handleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.controls.aim = t.view.toWorld(t.snapshot.Width, t.snapshot.Height, x, y)
		t.controls.mouse = ev.Buttons()&tcell.Button1 != 0
	case *tcell.EventResize:
		t.view.screen.Sync()
	}
	return false, nil
}

func (t *termApp) handleKey(ev *tcell.EventKey) (bool, error) {
	if ev.Key() == tcell.KeyCtrlC {
		return true, nil
	}

	switch t.mode {
	case modePlaying:
		switch ev.Key() {
		case tcell.KeyUp:
			t.controls.press(dirUp)
		case tcell.KeyDown:
			t.controls.press(dirDown)
		case tcell.KeyLeft:
			t.controls.press(dirLeft)
		case tcell.KeyRight:
			t.controls.press(dirRight)
		case tcell.KeyEscape:
			t.mode = modePaused
			t.controls.release()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'w':
				t.controls.press(dirUp)
			case 's':
				t.controls.press(dirDown)
			case 'a':
				t.controls.press(dirLeft)
			case 'd':
				t.controls.press(dirRight)
			case ' ':
				t.controls.fire()
			case 'p':
				t.mode = modePaused
				t.controls.release()
			case 'u':
				t.mode = modeUpgrade
				t.notice = ""
				t.controls.release()
			}
		}

	case modePaused:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
			t.mode = modePlaying
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true, nil
		}

	case modeUpgrade:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyRune && ev.Rune() == 'u' {
			t.mode = modePlaying
			return false, nil
		}
		if ev.Key() != tcell.KeyRune {
			return false, nil
		}
		if kind, ok := upgradeRunes[ev.Rune()]; ok {
			t.applyUpgrade(kind)
		}
		for i, r := range variantRunes {
			if ev.Rune() == r {
				t.switchVariant(game.PlayerKinds()[i])
			}
		}

	case modeOver:
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'r':
				return false, t.restart()
			case 'q':
				return true, nil
			}
		}
	}
	return false, nil
}

func (t *termApp) applyUpgrade(kind game.UpgradeKind) {
	err := t.session.ApplyUpgrade(kind)
	switch {
	case errors.Is(err, game.ErrNoUpgradePoints):
		t.notice = "no upgrade points left"
	case err != nil:
		t.logger.Error("upgrade failed", "upgrade", kind.String(), "error", err)
	default:
		t.notice = "upgraded " + kind.String()
	}
	t.snapshot = t.session.Snapshot()
}

func (t *termApp) switchVariant(kind game.PlayerKind) {
	if err := t.session.SwitchVariant(kind); err != nil {
		t.logger.Error("variant switch failed", "variant", kind.String(), "error", err)
		return
	}
	t.notice = "now playing " + kind.String()
	t.snapshot = t.session.Snapshot()
}

// step advances the session one tick unless a menu is open
func (t *termApp) step() {
	if t.mode != modePlaying {
		return
	}
	t.snapshot = t.session.Advance(t.controls.next())
	if t.snapshot.Over {
		t.mode = modeOver
	}
}

// draw renders the current snapshot with the overlay for the current mode
func (t *termApp) draw() {
	t.view.Draw(t.snapshot, t.overlay())
}

func (t *termApp) overlay() []string {
	p := t.snapshot.Player
	switch t.mode {
	case modePaused:
		return []string{"PAUSED", "p or Esc to resume, q to quit"}
	case modeUpgrade:
		lines := []string{
			fmt.Sprintf("UPGRADES  points: %d", p.UpgradePoints),
			fmt.Sprintf("1 max health (%.0f)  2 speed (%.1f)  3 bullet speed (%.0f)", p.MaxHealth, p.Speed, p.BulletSpeed),
			fmt.Sprintf("4 damage (%.0f)  5 fire rate (%d)", p.BulletDamage, p.FireRate),
			"6 normal  7 shotgun  8 laser  9 missile  0 rapid",
		}
		if t.notice != "" {
			lines = append(lines, t.notice)
		}
		return append(lines, "u or Esc to return")
	case modeOver:
		return []string{fmt.Sprintf("score %d, level %d", p.Score, p.Level), "r to restart, q to quit"}
	}
	if t.notice != "" {
		return []string{t.notice}
	}
	return nil
}

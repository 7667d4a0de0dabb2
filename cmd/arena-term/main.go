// Command arena-term plays the arena shooter in a terminal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"arenashooter/game"
)

func main() {
	config := game.DefaultConfig()

	variant := flag.String("variant", config.StartVariant.String(), "starting variant: normal, shotgun, laser, missile, rapid")
	seed := flag.Uint64("seed", 0, "random seed (0 draws a fresh one per session)")
	logPath := flag.String("log", "arena-term.log", "log file; the terminal itself is the display")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := run(config, *variant, *seed, *logPath, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "arena-term: %v\n", err)
		os.Exit(1)
	}
}

func run(config game.Config, variant string, seed uint64, logPath string, debug bool) error {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))

	kind, err := game.ParsePlayerKind(variant)
	if err != nil {
		return err
	}
	config.StartVariant = kind
	config.Seed = seed
	config.Logger = logger

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	app, err := newTermApp(config, screen, logger)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 ticks per second
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := app.handleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				logger.Info("quit", "session", app.session.SessionID().String(), "score", app.snapshot.Player.Score)
				return nil
			}

		case <-ticker.C:
			app.step()
			app.draw()
		}
	}
}

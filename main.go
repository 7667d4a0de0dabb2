package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"arenashooter/game"
)

func main() {
	config := game.DefaultConfig()

	width := flag.Float64("width", config.Width, "playfield width")
	height := flag.Float64("height", config.Height, "playfield height")
	variant := flag.String("variant", config.StartVariant.String(), "starting variant: normal, shotgun, laser, missile, rapid")
	seed := flag.Uint64("seed", 0, "random seed (0 draws a fresh one per session)")
	debug := flag.Bool("debug", false, "enable debug logging")
	profile := flag.String("profile", "", "capture CPU profiles of slow ticks into this directory")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	kind, err := game.ParsePlayerKind(*variant)
	if err != nil {
		log.Fatal(err)
	}
	config.Width = *width
	config.Height = *height
	config.StartVariant = kind
	config.Seed = *seed
	config.Logger = logger
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	var profiler *Profiler
	if *profile != "" {
		profiler, err = NewProfiler(*profile, logger)
		if err != nil {
			log.Fatal(err)
		}
	}

	app, err := NewApp(config, DefaultPalette(), profiler, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(int(config.Width), int(config.Height))
	ebiten.SetWindowTitle("Arena Shooter")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

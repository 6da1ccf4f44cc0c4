//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"life-sandbox/internal/app"
	"life-sandbox/internal/logging"
	"life-sandbox/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Parse("life", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, closer, err := logging.New(cfg.Logging())
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	session, err := life.NewSession(cfg.SessionConfig(), logger)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(cfg, session, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop exited", "err", err)
		os.Exit(1)
	}
}

package main

import (
	"log"
	"os"

	"life-sandbox/internal/app"
	"life-sandbox/internal/logging"
	"life-sandbox/internal/term"
	"life-sandbox/pkg/sims/life"
)

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// The terminal owns stdout and stderr while the UI runs.
	lc := cfg.Logging()
	lc.Discard = lc.File == ""
	logger, closer, err := logging.New(lc)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	session, err := life.NewSession(cfg.SessionConfig(), logger)
	if err != nil {
		log.Fatal(err)
	}

	ctl := app.NewController(session, cfg.Mapper(), logger)
	console, err := term.NewConsole(ctl, cfg.TPS, cfg.StepEvery, logger)
	if err != nil {
		log.Fatal(err)
	}
	if err := console.Run(); err != nil {
		logger.Error("terminal exited", "err", err)
		closer.Close()
		log.Fatal(err)
	}
}

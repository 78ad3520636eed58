package main

import (
	"io"
	"log"

	"github.com/rileyL6122428/rileyL6122428.github.io/internal/bootstrap"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/config"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/game"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/logging"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/scoreboard"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/surface"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	logger := logging.NewConsole(cfg.LogLevel)
	if cfg.DataDirErr != nil {
		logger.Warning("main", "no data directory, scores will not persist", logging.Fields{"error": cfg.DataDirErr.Error()})
	}

	scores, err := scoreboard.Open(cfg.ScoreStore, cfg.DataDir)
	if err != nil {
		// Fall back so a broken data dir never blocks play
		logger.Error("main", "could not open score store, scores will not persist", err, logging.Fields{"store": cfg.ScoreStore, "dir": cfg.DataDir})
		scores = scoreboard.NewMemoryStore()
	}
	if c, ok := scores.(io.Closer); ok {
		defer c.Close()
	}

	audio := game.NewAudioManager(cfg.SoundsDir, cfg.AudioEnabled)

	bcfg := bootstrap.Config{SurfaceID: cfg.SurfaceID, Width: cfg.Width, Height: cfg.Height}
	err = bootstrap.Run(bcfg, surface.NewHost(cfg.Title), func(ctx surface.Context, width, height int) (bootstrap.View, error) {
		return game.NewView(ctx, width, height, game.Options{
			Logger: logger,
			Scores: scores,
			Audio:  audio,
			Tuning: cfg.Tuning,
		}), nil
	})
	if err != nil {
		logger.Error("main", "game stopped", err, nil)
	}
	return err
}

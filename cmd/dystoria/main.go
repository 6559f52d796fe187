// Package main provides the Dystoria console game binary.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dystoria/internal/config"
	"github.com/cory-johannsen/dystoria/internal/content"
	"github.com/cory-johannsen/dystoria/internal/frontend/console"
	"github.com/cory-johannsen/dystoria/internal/game/actor"
	"github.com/cory-johannsen/dystoria/internal/game/dice"
	"github.com/cory-johannsen/dystoria/internal/game/tactic"
	"github.com/cory-johannsen/dystoria/internal/gameplay"
	"github.com/cory-johannsen/dystoria/internal/observability"
)

func main() {
	// A missing .env is normal; real environment variables still apply.
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to configuration file; empty = defaults and DYSTORIA_* env only")
	dataDir := flag.String("data", "", "override content.data_dir")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *dataDir != "" {
		cfg.Content.DataDir = *dataDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	noise, err := dice.Parse(cfg.Game.NoiseDice)
	if err != nil {
		logger.Fatal("parsing noise dice", zap.String("expr", cfg.Game.NoiseDice), zap.Error(err))
	}
	tactics, err := tactic.Load(cfg.Content.Path(cfg.Content.Tactics))
	if err != nil {
		logger.Fatal("loading tactics", zap.Error(err))
	}

	roller := dice.NewLoggedRoller(dice.NewSource(cfg.Game.Seed), logger)
	con := console.New(os.Stdin, os.Stdout, cfg.Console.Color)

	loaded := content.NewLoader(cfg.Content, cfg.Game.StartingShots, logger).Load()
	start := loaded.Choose(cfg.Game.Sanctuary, roller, cfg.Game.StartingShots)
	for _, w := range loaded.Warnings {
		_ = con.WriteLine(con.Style(console.Yellow, "Warning: "+w))
	}

	champion := actor.NewChampion(cfg.Game.PlayerName, cfg.Game.PlayerHealth, actor.Rules{
		StartingVisibility:  cfg.Game.StartingVisibility,
		VisibilityThreshold: cfg.Game.VisibilityThreshold,
		Noise:               noise,
		Tactics:             tactics,
	})

	logger.Info("starting run",
		zap.String("player", champion.Name()),
		zap.String("sanctuary", start.Name()),
		zap.Int("enemies", len(start.Enemies())),
		zap.Int64("seed", cfg.Game.Seed),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcome, err := gameplay.New(cfg.Game, champion, start, con, roller, logger).Run(ctx)
	if err != nil {
		logger.Warn("run interrupted", zap.Error(err))
	}
	logger.Info("game over", zap.String("outcome", outcome.String()))
}

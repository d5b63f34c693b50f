package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrewpaige1/studysmart/catalog"
	"github.com/andrewpaige1/studysmart/config"
	"github.com/andrewpaige1/studysmart/repository"
	"github.com/andrewpaige1/studysmart/store"
	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", ".", "directory containing config.toml")
	flag.Parse()

	env := config.LoadEnvironment()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "studysmart:", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(env, cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "studysmart: building logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	dialector, err := config.Dialector(cfg.Database)
	if err != nil {
		logger.Fatal("Invalid database configuration", zap.Error(err))
	}

	db, err := store.Open(dialector, config.GormConfig())
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database", zap.Error(err))
		}
	}()
	logger.Info("Database ready", zap.String("driver", cfg.Database.Driver), zap.String("environment", env.Name))

	repo := repository.New(db, logger)
	cat, err := catalog.New(repo, logger)
	if err != nil {
		logger.Fatal("Failed to load folders", zap.Error(err))
	}

	if orphans, err := cat.Orphans(); err != nil {
		logger.Warn("Could not check for orphaned cards", zap.Error(err))
	} else if len(orphans) > 0 {
		logger.Info("Found cards without a folder", zap.Strings("folders", orphans))
	}

	t := newTerminal(os.Stdin, os.Stdout, cat, repo, logger)
	if err := t.run(); err != nil {
		logger.Error("Terminal stopped", zap.Error(err))
	}
}

package main

import (
	"flag"

	"github.com/aurelia-studio/site-core/internal/config"
	"github.com/aurelia-studio/site-core/internal/database"
	"github.com/aurelia-studio/site-core/internal/seed"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	if err := seed.Run(db, logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("seeding complete")
}

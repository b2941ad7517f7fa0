package main

import (
	"context"
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/locali/locali/infra/initializer"
	"github.com/locali/locali/pkg/config"
	"github.com/locali/locali/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	bootLogger := initializer.SetupLogger(config.LogConfig{Level: "info", Format: "text", TimeFormat: "15:04:05"})

	cfg, err := config.Load(bootLogger, ".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := initializer.SetupLogger(cfg.Log)

	application, err := initializer.InitializeApp(context.Background(), cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	fiberApp := webapi.SetupApp(application)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", "env", cfg.Env, "address", addr)

	return fiberApp.Listen(addr)
}

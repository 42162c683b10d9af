// Package main is the entry point for the mesh viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/cvlogo/internal/app"
	"github.com/Faultbox/cvlogo/internal/config"
	"github.com/Faultbox/cvlogo/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== cvlogo viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Mesh loading and normal synthesis happen before any window exists.
	v, err := app.LoadViewer(cfg)
	if err != nil {
		logger.Error("failed to set up viewer", zap.String("model", cfg.Viewer.Model), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	if err := app.Run(cfg, v); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

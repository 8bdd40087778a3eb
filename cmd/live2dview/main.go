// Package main is the entry point for the Live2D viewer API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Faultbox/live2d-viewer/internal/character"
	"github.com/Faultbox/live2d-viewer/internal/config"
	"github.com/Faultbox/live2d-viewer/internal/logger"
	"github.com/Faultbox/live2d-viewer/internal/server"
	"github.com/Faultbox/live2d-viewer/internal/session"
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
	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
		fileCfg.JSON = cfg.Logging.JSON
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Live2D Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	chars := character.Builtin()
	if cfg.Data.CharactersFile != "" {
		if err := chars.LoadFile(cfg.Data.CharactersFile); err != nil {
			logger.Error("failed to load characters", zap.String("file", cfg.Data.CharactersFile), zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
	}
	if _, err := chars.Get(cfg.Viewer.Character); err != nil {
		logger.Warn("default character is not registered", zap.String("character", cfg.Viewer.Character))
	}
	logger.Info("characters loaded", zap.Int("count", chars.Len()))

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := session.NewManager(cfg.Server.MaxSessions)
	srv := server.New(cfg, chars, sessions)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
		stop()
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("server closed normally")
}

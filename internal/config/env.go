package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment overrides, applied between the config file and flags.
const (
	EnvListen         = "LIVE2D_LISTEN"
	EnvLogLevel       = "LIVE2D_LOG_LEVEL"
	EnvModelsDir      = "LIVE2D_MODELS_DIR"
	EnvCharactersFile = "LIVE2D_CHARACTERS_FILE"
)

// loadDotEnv reads ./.env into the process environment if it exists.
// Variables already set are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// applyEnv applies environment overrides to the config.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvListen); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvModelsDir); v != "" {
		cfg.Data.ModelsDir = v
	}
	if v := os.Getenv(EnvCharactersFile); v != "" {
		cfg.Data.CharactersFile = v
	}
}

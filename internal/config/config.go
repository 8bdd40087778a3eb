// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/live2d-viewer/pkg/color"
	"github.com/Faultbox/live2d-viewer/pkg/motion"
	"github.com/Faultbox/live2d-viewer/pkg/scale"
)

// Config holds all viewer settings.
type Config struct {
	Viewer  ViewerConfig  `yaml:"viewer"`
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// ViewerConfig holds surface and animation settings for sessions.
type ViewerConfig struct {
	Width           int           `yaml:"width"`
	Height          int           `yaml:"height"`
	FillRatio       float64       `yaml:"fill_ratio"`
	Character       string        `yaml:"character"`
	ModelPath       string        `yaml:"model_path"`
	ModelWidth      float64       `yaml:"model_width"`  // 0 = unknown, static scaling
	ModelHeight     float64       `yaml:"model_height"` // 0 = unknown, static scaling
	AutoCycle       time.Duration `yaml:"auto_cycle"`
	IdleProbability float64       `yaml:"idle_probability"`
	BackgroundColor string        `yaml:"background_color"`
	Seed            uint64        `yaml:"seed"` // 0 = time based
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Listen       string        `yaml:"listen"`
	AllowOrigins []string      `yaml:"allow_origins"`
	MaxSessions  int           `yaml:"max_sessions"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DataConfig holds data file paths.
type DataConfig struct {
	CharactersFile string `yaml:"characters_file"` // optional YAML overrides
	ModelsDir      string `yaml:"models_dir"`      // root for model paths starting with /models/
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Width:           scale.ReferenceWidth,
			Height:          scale.ReferenceHeight,
			FillRatio:       scale.DefaultFillRatio,
			Character:       scale.DefaultProfileKey,
			AutoCycle:       8 * time.Second,
			IdleProbability: motion.DefaultIdleProbability,
			BackgroundColor: color.Default,
		},
		Server: ServerConfig{
			Listen:       ":8080",
			AllowOrigins: []string{"http://localhost:3000"},
			MaxSessions:  64,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Data: DataConfig{
			ModelsDir: "public",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	v := c.Viewer
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("viewer surface must be positive, got %dx%d", v.Width, v.Height)
	}
	if v.FillRatio <= 0 || v.FillRatio > 1 {
		return fmt.Errorf("viewer fill_ratio must be in (0,1], got %g", v.FillRatio)
	}
	if v.ModelWidth < 0 || v.ModelHeight < 0 {
		return fmt.Errorf("viewer model bounds must not be negative")
	}
	if v.AutoCycle <= 0 {
		return fmt.Errorf("viewer auto_cycle must be positive, got %v", v.AutoCycle)
	}
	if v.IdleProbability < 0 || v.IdleProbability > 1 {
		return fmt.Errorf("viewer idle_probability must be in [0,1], got %g", v.IdleProbability)
	}
	if _, err := color.Parse(v.BackgroundColor); err != nil {
		return fmt.Errorf("viewer background_color: %w", err)
	}
	if c.Server.MaxSessions <= 0 {
		return fmt.Errorf("server max_sessions must be positive, got %d", c.Server.MaxSessions)
	}
	return nil
}

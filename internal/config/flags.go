package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagListen    = flag.String("listen", "", "HTTP listen address")
	flagCharacter = flag.String("character", "", "Default character id")
	flagModel     = flag.String("model", "", "Default model settings file")
	flagWidth     = flag.Int("width", 0, "Surface width")
	flagHeight    = flag.Int("height", 0, "Surface height")
	flagSeed      = flag.Uint64("seed", 0, "Random seed for motion selection (0 = time based)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagListen != "" {
		cfg.Server.Listen = *flagListen
	}
	if *flagCharacter != "" {
		cfg.Viewer.Character = *flagCharacter
	}
	if *flagModel != "" {
		cfg.Viewer.ModelPath = *flagModel
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
	if *flagSeed > 0 {
		cfg.Viewer.Seed = *flagSeed
	}
}

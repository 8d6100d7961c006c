package config

import (
	_ "embed"
)

//go:embed defaults/pitchcoach.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Ledger: LedgerConfig{
			Path: "~/.pitchcoach/scores.json",
		},
		Archive: ArchiveConfig{
			Enabled: true,
			Path:    "~/.pitchcoach/sessions.db",
		},
		Session: SessionConfig{
			AccuracyWindow: 10,
		},
		Speed: SpeedConfig{
			Difficulty: "easy",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

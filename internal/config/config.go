// Package config provides YAML-based configuration loading for the
// coaching core.
package config

// Config is the full configuration surface of the coaching core.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Archive ArchiveConfig `yaml:"archive"`
	Session SessionConfig `yaml:"session"`
	Speed   SpeedConfig   `yaml:"speed_challenge"`
	Logging LoggingConfig `yaml:"logging"`
}

// LedgerConfig locates the JSON score ledger.
type LedgerConfig struct {
	Path string `yaml:"path"`
}

// ArchiveConfig controls the SQLite session archive.
type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// SessionConfig tunes the rolling session statistics.
type SessionConfig struct {
	AccuracyWindow int `yaml:"accuracy_window"`
}

// SpeedConfig selects the speed-challenge difficulty preset
// ("easy", "medium", or "hard").
type SpeedConfig struct {
	Difficulty string `yaml:"difficulty"`
}

// LoggingConfig selects the log verbosity ("debug", "info", "warn",
// "error").
type LoggingConfig struct {
	Level string `yaml:"level"`
}

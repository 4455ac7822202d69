package config

import "github.com/ziadkadry99/globe-explorer/internal/theme"

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".globe.yml"

// DefaultPort is the HTTP port used when neither config nor PORT set one.
const DefaultPort = 4173

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            DefaultPort,
			AllowAllOrigins: true,
		},
		Theme: theme.Default(),
		Log: LogConfig{
			Level:  "info",
			Format: LogConsole,
		},
		Snapshot: SnapshotConfig{
			Width:     800,
			Height:    600,
			Frames:    1,
			OutputDir: "snapshots",
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "USA Globe Explorer",
		},
	}
}

package config

import "github.com/ziadkadry99/globe-explorer/internal/theme"

// LogFormat selects the log encoding.
type LogFormat string

const (
	LogConsole LogFormat = "console"
	LogJSON    LogFormat = "json"
)

// Config is the top-level globe configuration, corresponding to .globe.yml.
type Config struct {
	Server   ServerConfig   `yaml:"server" koanf:"server"`
	Dataset  DatasetConfig  `yaml:"dataset" koanf:"dataset"`
	Theme    theme.Config   `yaml:"theme" koanf:"theme"`
	Log      LogConfig      `yaml:"log" koanf:"log"`
	Snapshot SnapshotConfig `yaml:"snapshot" koanf:"snapshot"`
	Window   WindowConfig   `yaml:"window" koanf:"window"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int    `yaml:"port" koanf:"port"`
	StaticDir       string `yaml:"static_dir" koanf:"static_dir"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// DatasetConfig selects where state records come from. SQLite wins over
// Files; with neither set the embedded dataset is used.
type DatasetConfig struct {
	Files  []string `yaml:"files" koanf:"files"`
	SQLite string   `yaml:"sqlite" koanf:"sqlite"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}

// SnapshotConfig holds defaults for offscreen rendering.
type SnapshotConfig struct {
	Width     int    `yaml:"width" koanf:"width"`
	Height    int    `yaml:"height" koanf:"height"`
	Frames    int    `yaml:"frames" koanf:"frames"`
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
}

// WindowConfig holds desktop viewer settings.
type WindowConfig struct {
	Width  int    `yaml:"width" koanf:"width"`
	Height int    `yaml:"height" koanf:"height"`
	Title  string `yaml:"title" koanf:"title"`
}

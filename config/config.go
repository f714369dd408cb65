// Package config provides configuration loading for the game.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Board    BoardConfig  `yaml:"board"`
	Worm     WormConfig   `yaml:"worm"`
	Food     FoodConfig   `yaml:"food"`
	Tick     TickConfig   `yaml:"tick"`
	Frontend string       `yaml:"frontend"`
	Level    LevelConfig  `yaml:"level"`
	Input    InputConfig  `yaml:"input"`
	Window   WindowConfig `yaml:"window"`
	Audio    AudioConfig  `yaml:"audio"`
	Log      LogConfig    `yaml:"log"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// BoardConfig holds the playfield size.
type BoardConfig struct {
	MinRows      int `yaml:"min_rows"`
	MinCols      int `yaml:"min_cols"`
	ReservedRows int `yaml:"reserved_rows"` // Message area below the board
}

// WormConfig holds the body's ring buffer sizing.
type WormConfig struct {
	Capacity      int `yaml:"capacity"`       // Maximum length the worm can reach
	InitialLength int `yaml:"initial_length"` // Length the worm grows into at level start
}

// FoodConfig holds the growth bonus per food kind.
type FoodConfig struct {
	Bonus BonusConfig `yaml:"bonus"`
}

type BonusConfig struct {
	Food1 int `yaml:"food1"`
	Food2 int `yaml:"food2"`
	Food3 int `yaml:"food3"`
}

type TickConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// LevelConfig selects the level layout.
type LevelConfig struct {
	Name     string `yaml:"name"`
	Path     string `yaml:"path"`
	Seed     uint64 `yaml:"seed"`
	Food     int    `yaml:"food"`
	Barriers int    `yaml:"barriers"`
}

type InputConfig struct {
	AllowReverse bool `yaml:"allow_reverse"` // Let a 180 degree turn run the worm into itself
}

// WindowConfig holds raylib display settings.
type WindowConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
	CellSize  int `yaml:"cell_size"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	TickInterval time.Duration
	LogLevel     slog.Level
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	c.Derived.TickInterval = time.Duration(c.Tick.IntervalMs) * time.Millisecond
	return c.SetLogLevel(c.Log.Level)
}

// SetLogLevel parses and stores a log level name
func (c *Config) SetLogLevel(name string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	c.Log.Level = strings.ToLower(name)
	c.Derived.LogLevel = lvl
	return nil
}

// Validate checks the values the game cannot run without.
func (c *Config) Validate() error {
	switch {
	case c.Board.MinRows < 1 || c.Board.MinCols < 1:
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Board.MinCols, c.Board.MinRows)
	case c.Board.ReservedRows < 0:
		return fmt.Errorf("board.reserved_rows must not be negative")
	case c.Worm.InitialLength < 1 || c.Worm.InitialLength > c.Worm.Capacity:
		return fmt.Errorf("worm.initial_length %d must be within 1..capacity (%d)", c.Worm.InitialLength, c.Worm.Capacity)
	case c.Tick.IntervalMs <= 0:
		return fmt.Errorf("tick.interval_ms must be positive")
	}
	switch c.Frontend {
	case "raylib", "terminal", "headless":
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	return nil
}

// WriteYAML saves the configuration to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

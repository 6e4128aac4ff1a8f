package config

import (
	"fmt"
	"os"
	"time"

	"snake-pathfinder/ai"
	"snake-pathfinder/game"

	"gopkg.in/yaml.v3"
)

const minGridSide = 8

type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Window   WindowConfig   `yaml:"window"`
	Game     GameConfig     `yaml:"game"`
	AutoPlay AutoPlayConfig `yaml:"autoplay"`
	Log      LogConfig      `yaml:"log"`
	Audio    AudioConfig    `yaml:"audio"`
	UI       UIConfig       `yaml:"ui"`
	Headless HeadlessConfig `yaml:"headless"`
}

type GridConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Border bool `yaml:"border"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type GameConfig struct {
	MoveDelayMs    int    `yaml:"moveDelayMs"`
	MaxFood        int    `yaml:"maxFood"`
	PointsPerLevel int    `yaml:"pointsPerLevel"`
	Seed           uint64 `yaml:"seed"` // 0 seeds from the clock
}

type AutoPlayConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Algorithm string `yaml:"algorithm"` // bfs | dijkstra
	Replan    string `yaml:"replan"`    // tick | food
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type UIConfig struct {
	Frontend string `yaml:"frontend"` // raylib | term | headless
}

type HeadlessConfig struct {
	Ticks int `yaml:"ticks"`
}

func Default() *Config {
	return &Config{
		Grid:     GridConfig{Width: 40, Height: 30, Border: true},
		Window:   WindowConfig{Width: 800, Height: 600},
		Game:     GameConfig{MoveDelayMs: 150, MaxFood: 3, PointsPerLevel: 5},
		AutoPlay: AutoPlayConfig{Algorithm: "bfs", Replan: "tick"},
		Log:      LogConfig{File: "snake.log", Level: "info"},
		Audio:    AudioConfig{Enabled: true},
		UI:       UIConfig{Frontend: "raylib"},
		Headless: HeadlessConfig{Ticks: 2000},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills string fields that were present but left empty
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.AutoPlay.Algorithm == "" {
		cfg.AutoPlay.Algorithm = def.AutoPlay.Algorithm
	}
	if cfg.AutoPlay.Replan == "" {
		cfg.AutoPlay.Replan = def.AutoPlay.Replan
	}
	if cfg.Log.File == "" {
		cfg.Log.File = def.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.UI.Frontend == "" {
		cfg.UI.Frontend = def.UI.Frontend
	}
}

func (c *Config) Validate() error {
	if c.Grid.Width < minGridSide || c.Grid.Height < minGridSide {
		return fmt.Errorf("grid must be at least %dx%d, got %dx%d", minGridSide, minGridSide, c.Grid.Width, c.Grid.Height)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Game.MoveDelayMs <= 0 {
		return fmt.Errorf("game.moveDelayMs must be positive, got %d", c.Game.MoveDelayMs)
	}
	if c.Game.MaxFood <= 0 {
		return fmt.Errorf("game.maxFood must be positive, got %d", c.Game.MaxFood)
	}
	if c.Game.PointsPerLevel <= 0 {
		return fmt.Errorf("game.pointsPerLevel must be positive, got %d", c.Game.PointsPerLevel)
	}
	if _, err := ai.ParseAlgorithm(c.AutoPlay.Algorithm); err != nil {
		return fmt.Errorf("autoplay.algorithm: %w", err)
	}
	if _, err := game.ParseReplan(c.AutoPlay.Replan); err != nil {
		return fmt.Errorf("autoplay.replan: %w", err)
	}
	switch c.UI.Frontend {
	case "raylib", "term", "headless":
	default:
		return fmt.Errorf("ui.frontend must be one of: raylib, term, headless, got %q", c.UI.Frontend)
	}
	if c.UI.Frontend == "headless" && c.Headless.Ticks <= 0 {
		return fmt.Errorf("headless.ticks must be positive, got %d", c.Headless.Ticks)
	}
	return nil
}

// GameOptions converts a validated config into controller options
func (c *Config) GameOptions() game.Options {
	algo, _ := ai.ParseAlgorithm(c.AutoPlay.Algorithm)
	replan, _ := game.ParseReplan(c.AutoPlay.Replan)
	return game.Options{
		Width:          c.Grid.Width,
		Height:         c.Grid.Height,
		Border:         c.Grid.Border,
		MoveDelay:      time.Duration(c.Game.MoveDelayMs) * time.Millisecond,
		MaxFood:        c.Game.MaxFood,
		PointsPerLevel: c.Game.PointsPerLevel,
		Seed:           c.Game.Seed,
		AutoPlay:       c.AutoPlay.Enabled,
		Algorithm:      algo,
		Replan:         replan,
	}
}

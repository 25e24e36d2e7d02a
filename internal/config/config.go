// Package config loads solver settings from a YAML file, .env and the
// environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/cubegame"
)

const (
	DefaultPath = "aoc2023.yaml"

	EnvConfigPath = "AOC_CONFIG_PATH"
	EnvInputDir   = "AOC_INPUT_DIR"
	EnvDebugDir   = "AOC_DEBUG_DIR"
	EnvLogLevel   = "AOC_LOG_LEVEL"
	EnvWorkers    = "AOC_WORKERS"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	InputDir string         `yaml:"input_dir"`
	DebugDir string         `yaml:"debug_dir"`
	LogLevel string         `yaml:"log_level"`
	Workers  int            `yaml:"workers"`
	Cubes    map[string]int `yaml:"cubes"`
}

// Load reads the config at path. An empty path falls back to
// AOC_CONFIG_PATH, then to DefaultPath, which may be absent.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("cannot load .env: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("cannot parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		slog.Debug("no config file, using defaults", "path", path)
	default:
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvInputDir); v != "" {
		cfg.InputDir = v
	}
	if v := os.Getenv(EnvDebugDir); v != "" {
		cfg.DebugDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvWorkers, v, err)
		}
		cfg.Workers = workers
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "inputs"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.Cubes == nil {
		cfg.Cubes = cubegame.DefaultBag()
	}
}

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for color, n := range c.Cubes {
		if n < 0 {
			return fmt.Errorf("%w: negative number of %s cubes", ErrInvalidConfig, color)
		}
	}
	return nil
}

func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

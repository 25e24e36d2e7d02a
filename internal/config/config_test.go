package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/cubegame"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "aoc2023.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath
}

func TestLoadSuccess(t *testing.T) {
	configPath := writeConfig(t, `input_dir: /data/aoc
debug_dir: /tmp/aoc-debug
log_level: debug
workers: 4
cubes:
  red: 1
  green: 2
  blue: 3
`)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		InputDir: "/data/aoc",
		DebugDir: "/tmp/aoc-debug",
		LogLevel: "debug",
		Workers:  4,
		Cubes:    map[string]int{"red": 1, "green": 2, "blue": 3},
	}, cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "inputs", cfg.InputDir)
	assert.Equal(t, "", cfg.DebugDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, map[string]int(cubegame.DefaultBag()), cfg.Cubes)

	cfg.Cubes["red"] = 0
	assert.Equal(t, 12, cubegame.DefaultBag()["red"])
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPathFromEnv(t *testing.T) {
	configPath := writeConfig(t, "workers: 3\n")
	t.Setenv(EnvConfigPath, configPath)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadEnvOverrides(t *testing.T) {
	configPath := writeConfig(t, "input_dir: fromfile\nworkers: 2\n")
	t.Setenv(EnvInputDir, "fromenv")
	t.Setenv(EnvDebugDir, "/tmp/dbg")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvWorkers, "8")

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.InputDir)
	assert.Equal(t, "/tmp/dbg", cfg.DebugDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Workers)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AOC_INPUT_DIR=dotenv-inputs\n"), 0o644))
	// godotenv does not override variables that are already set
	t.Setenv(EnvInputDir, "")
	os.Unsetenv(EnvInputDir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dotenv-inputs", cfg.InputDir)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative workers", "workers: -1\n"},
		{"bad level", "log_level: loud\n"},
		{"negative cubes", "cubes:\n  red: -2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Setenv(EnvWorkers, "many")
	_, err := Load(writeConfig(t, ""))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "workers: [1, 2\n"))
	require.Error(t, err)
}

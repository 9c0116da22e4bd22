package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the tool-level settings for react-repl.
type Config struct {
	// RootID is the root the inspector opens on. Single-app processes use 1.
	RootID int

	// TickSeconds is the demo producer's commit cadence.
	TickSeconds int
}

const (
	defaultConfigPath  = "~/.config/react-repl/config.toml"
	defaultRootID      = 1
	defaultTickSeconds = 1
)

// Load locates and parses the react-repl config, falling back to defaults
// when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{RootID: defaultRootID, TickSeconds: defaultTickSeconds}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		RootID      int `toml:"root_id"`
		TickSeconds int `toml:"tick_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.RootID > 0 {
		cfg.RootID = raw.RootID
	}
	if raw.TickSeconds > 0 {
		cfg.TickSeconds = raw.TickSeconds
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

// Package config loads the wgtui settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Peer sources.
const (
	SourceWG   = "wg"
	SourceDemo = "demo"
)

// Config holds the resolved settings.
type Config struct {
	Interface        string
	Source           string
	WGPath           string
	Sudo             bool
	PTY              bool
	InventoryPath    string
	HandshakeTimeout time.Duration
	LogFile          string
}

// EnvPath overrides the config file location.
const EnvPath = "WGTUI_CONFIG"

const (
	defaultConfigPath       = "~/.config/wgtui/config.toml"
	defaultInterface        = "wg0"
	defaultWGPath           = "wg"
	defaultInventoryPath    = "~/.config/wgtui/peers.yaml"
	defaultHandshakeTimeout = 3 * time.Minute
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Interface:        defaultInterface,
		Source:           SourceWG,
		WGPath:           defaultWGPath,
		InventoryPath:    mustExpand(defaultInventoryPath),
		HandshakeTimeout: defaultHandshakeTimeout,
	}
}

// Path returns the config file to load: $WGTUI_CONFIG when set, else the default.
func Path() string {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return p
	}
	return defaultConfigPath
}

// Load reads the TOML file at path (Path() when empty), falling back to
// defaults when it does not exist.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = Path()
	}
	resolved, err := expandPath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

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
		Interface        string `toml:"interface"`
		Source           string `toml:"source"`
		WGPath           string `toml:"wg_path"`
		Sudo             bool   `toml:"sudo"`
		PTY              bool   `toml:"pty"`
		Inventory        string `toml:"inventory"`
		HandshakeTimeout string `toml:"handshake_timeout"`
		LogFile          string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Interface = orDefault(raw.Interface, defaultInterface)
	cfg.WGPath = orDefault(raw.WGPath, defaultWGPath)
	cfg.Sudo = raw.Sudo
	cfg.PTY = raw.PTY

	switch source := orDefault(raw.Source, SourceWG); source {
	case SourceWG, SourceDemo:
		cfg.Source = source
	default:
		return Config{}, fmt.Errorf("parse config: source %q: want %q or %q", source, SourceWG, SourceDemo)
	}

	cfg.InventoryPath = mustExpand(orDefault(raw.Inventory, defaultInventoryPath))

	if s := strings.TrimSpace(raw.HandshakeTimeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: handshake_timeout: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("parse config: handshake_timeout must be positive, got %s", d)
		}
		cfg.HandshakeTimeout = d
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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

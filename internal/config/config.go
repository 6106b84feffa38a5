package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/treykane/room-area/internal/logging"
)

var log = logging.New("config")

const (
	configDirName  = ".room-area"
	configFileName = "config.json"
	storeFileName  = "storage.json"
	keymapFileName = "keymap.json"
)

const (
	// DefaultSaveDebounceMS is the quiet window before rows are written.
	DefaultSaveDebounceMS = 250
	// DefaultResetConfirmMS is how long the first reset press stays armed.
	DefaultResetConfirmMS = 3000
	// DefaultAddCount is the initial number of rows added per add action.
	DefaultAddCount = 1
)

// AddCountOptions are the choices offered by the add-rows selector.
var AddCountOptions = []int{1, 2, 3, 5, 10}

var ErrNotConfigured = errors.New("room-area is not configured")

// Config stores user-defined room-area settings.
type Config struct {
	StorePath      string            `json:"store_path"`
	SaveDebounceMS int               `json:"save_debounce_ms,omitempty"`
	ResetConfirmMS int               `json:"reset_confirm_ms,omitempty"`
	AddCount       int               `json:"add_count,omitempty"`
	Keybindings    map[string]string `json:"keybindings,omitempty"`
	KeymapFile     string            `json:"keymap_file,omitempty"`
}

// SaveDebounce returns the persistence quiet window.
func (c Config) SaveDebounce() time.Duration {
	return time.Duration(c.SaveDebounceMS) * time.Millisecond
}

// ResetConfirm returns the reset confirmation window.
func (c Config) ResetConfirm() time.Duration {
	return time.Duration(c.ResetConfirmMS) * time.Millisecond
}

// Default returns the configuration used when no config file exists.
func Default() (Config, error) {
	var cfg Config
	if err := cfg.applyDefaults(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigDir returns the directory holding config, storage and keymap files.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName), nil
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads and validates the saved configuration.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, ErrNotConfigured
		}
		return Config{}, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.applyDefaults(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrInit loads the config. On first run it writes the defaults so the
// user has a config.json to edit; a failed write is logged and the defaults
// are used anyway.
func LoadOrInit() (Config, error) {
	cfg, err := Load()
	if !errors.Is(err, ErrNotConfigured) {
		return cfg, err
	}
	cfg, err = Default()
	if err != nil {
		return Config{}, err
	}
	if err := Save(cfg); err != nil {
		log.Warn("write default config", "error", err)
	}
	return cfg, nil
}

// Save writes configuration to disk.
func Save(cfg Config) error {
	if err := cfg.applyDefaults(); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", path)
	return nil
}

// applyDefaults fills blank or out-of-range fields and normalizes paths.
func (c *Config) applyDefaults() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if strings.TrimSpace(c.StorePath) == "" {
		c.StorePath = filepath.Join(dir, storeFileName)
	}
	storePath, err := NormalizePath(c.StorePath)
	if err != nil {
		return fmt.Errorf("invalid store_path: %w", err)
	}
	c.StorePath = storePath

	if strings.TrimSpace(c.KeymapFile) == "" {
		c.KeymapFile = filepath.Join(dir, keymapFileName)
	}
	keymapFile, err := NormalizePath(c.KeymapFile)
	if err != nil {
		return fmt.Errorf("invalid keymap_file: %w", err)
	}
	c.KeymapFile = keymapFile

	if c.SaveDebounceMS <= 0 {
		c.SaveDebounceMS = DefaultSaveDebounceMS
	}
	if c.ResetConfirmMS <= 0 {
		c.ResetConfirmMS = DefaultResetConfirmMS
	}
	if !slices.Contains(AddCountOptions, c.AddCount) {
		c.AddCount = DefaultAddCount
	}
	return nil
}

// NormalizePath expands ~ and returns a clean absolute path.
func NormalizePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is required")
	}

	expanded, err := expandHome(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"backoffice/internal/eventbus"
	"backoffice/internal/logutil"
	"backoffice/internal/table"
)

const (
	defaultConfigPath = "~/.config/backoffice/config.toml"
	defaultLogFile    = "~/.local/share/backoffice/backoffice.log"
	currentVersion    = 1
)

// Config represents the application configuration
type Config struct {
	Version        int               `toml:"version"`
	DefaultFeature string            `toml:"default_feature"` // slug opened on start, empty shows the menu
	RowsPerPage    int               `toml:"rows_per_page"`
	Mock           MockSettings      `toml:"mock"`
	UISettings     UISettings        `toml:"ui"`
	Log            logutil.LogConfig `toml:"log"`
}

// MockSettings controls the generated dataset
type MockSettings struct {
	Seed              int64 `toml:"seed"`
	RecordsPerFeature int   `toml:"records_per_feature"`
	FoodLatencyMS     int   `toml:"food_latency_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ConfirmDelete bool `toml:"confirm_delete"` // also confirm single-row deletes
	ToastSeconds  int  `toml:"toast_seconds"`
	Mouse         bool `toml:"mouse"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for path, or the default location when empty
func NewConfigService(path string) (ConfigService, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	return &configService{filePath: resolved}, nil
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) (ConfigService, error) {
	cs, err := NewConfigService(path)
	if err != nil {
		return nil, err
	}
	cs.(*configService).bus = bus
	return cs, nil
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	// Publish ConfigLoaded event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:           cs.filePath,
			DefaultFeature: cfg.DefaultFeature,
			RowsPerPage:    cfg.RowsPerPage,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// A missing file is reported with an error wrapping os.ErrNotExist.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep their default value
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	log := logutil.DefaultLogConfig()
	log.Filename = mustExpand(defaultLogFile)

	return &Config{
		Version:     currentVersion,
		RowsPerPage: table.DefaultRowsPerPage,
		Mock: MockSettings{
			Seed:              42,
			RecordsPerFeature: 24,
			FoodLatencyMS:     400,
		},
		UISettings: UISettings{
			ConfirmDelete: true,
			ToastSeconds:  3,
			Mouse:         true,
		},
		Log: log,
	}
}

// normalize coerces out-of-range values back to usable ones
func (c *Config) normalize() {
	if c.Version == 0 {
		c.Version = currentVersion
	}
	if !table.ValidRowsPerPage(c.RowsPerPage) {
		c.RowsPerPage = table.DefaultRowsPerPage
	}
	c.DefaultFeature = strings.TrimSpace(c.DefaultFeature)
	if c.Mock.RecordsPerFeature < 0 {
		c.Mock.RecordsPerFeature = 0
	}
	if c.Mock.FoodLatencyMS < 0 {
		c.Mock.FoodLatencyMS = 0
	}
	if c.UISettings.ToastSeconds <= 0 {
		c.UISettings.ToastSeconds = 3
	}
	if name := strings.TrimSpace(c.Log.Filename); name != "" && name != logutil.StderrSink {
		c.Log.Filename = mustExpand(name)
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"binsearchviz/internal/eventbus"
)

const (
	DefaultArraySize    = 150
	DefaultMaxValue     = 100
	DefaultFrameDelayMS = 60
	DefaultLogFile      = "binsearchviz.log"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Array      ArraySettings  `toml:"array"`
	Search     SearchSettings `toml:"search"`
	UISettings UISettings     `toml:"ui"`
}

// ArraySettings controls sequence generation
type ArraySettings struct {
	Size     int    `toml:"size"`
	MaxValue int    `toml:"max_value"` // values are drawn from [1, max_value)
	Seed     uint64 `toml:"seed"`      // 0 picks a random seed per run
}

// SearchSettings controls the binary search animation
type SearchSettings struct {
	// InclusiveBounds loops while left <= right; the default strict bound
	// never probes a range that has collapsed to a single element.
	InclusiveBounds bool `toml:"inclusive_bounds"`
	FrameDelayMS    int  `toml:"frame_delay_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp bool   `toml:"show_help"`
	LogFile  string `toml:"log_file"`
}

// FrameDelay returns the pause between two animation frames
func (c *Config) FrameDelay() time.Duration {
	return time.Duration(c.Search.FrameDelayMS) * time.Millisecond
}

// Validate reports every out-of-range setting
func (c *Config) Validate() error {
	var errs []error
	if c.Array.Size < 1 {
		errs = append(errs, fmt.Errorf("array.size must be at least 1, got %d", c.Array.Size))
	}
	if c.Array.MaxValue < 2 {
		errs = append(errs, fmt.Errorf("array.max_value must be at least 2, got %d", c.Array.MaxValue))
	}
	if c.Search.FrameDelayMS < 0 {
		errs = append(errs, fmt.Errorf("search.frame_delay_ms must not be negative, got %d", c.Search.FrameDelayMS))
	}
	return errors.Join(errs...)
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

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "binsearchviz", "config.toml")
}

// NewConfigService creates a config service backed by path, or DefaultPath when empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the
// defaults, which are written back so the user has something to edit.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			return nil, err
		}
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Settings absent
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
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
	return &Config{
		Version: 1,
		Array: ArraySettings{
			Size:     DefaultArraySize,
			MaxValue: DefaultMaxValue,
		},
		Search: SearchSettings{
			FrameDelayMS: DefaultFrameDelayMS,
		},
		UISettings: UISettings{
			ShowHelp: true,
			LogFile:  DefaultLogFile,
		},
	}
}

package config

import (
	"fmt"

	"github.com/spf13/pflag"

	"binsearchviz/internal/eventbus"
)

// Flags holds command line overrides for a loaded Config
type Flags struct {
	fs *pflag.FlagSet

	ConfigPath string
	Seed       uint64
	Size       int
	MaxValue   int
	Inclusive  bool
	FrameDelay int
}

// BindFlags registers the shared flags on fs
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "path to config file (default: user config dir)")
	fs.Uint64Var(&f.Seed, "seed", 0, "random seed for array generation (0 = random)")
	fs.IntVar(&f.Size, "size", DefaultArraySize, "number of elements in the array")
	fs.IntVar(&f.MaxValue, "max-value", DefaultMaxValue, "exclusive upper bound for element values")
	fs.BoolVar(&f.Inclusive, "inclusive", false, "search while left <= right instead of left < right")
	fs.IntVar(&f.FrameDelay, "frame-delay", DefaultFrameDelayMS, "milliseconds between animation frames")
	return f
}

// Apply copies every flag the user set explicitly onto cfg
func (f *Flags) Apply(cfg *Config) {
	if f.fs.Changed("seed") {
		cfg.Array.Seed = f.Seed
	}
	if f.fs.Changed("size") {
		cfg.Array.Size = f.Size
	}
	if f.fs.Changed("max-value") {
		cfg.Array.MaxValue = f.MaxValue
	}
	if f.fs.Changed("inclusive") {
		cfg.Search.InclusiveBounds = f.Inclusive
	}
	if f.fs.Changed("frame-delay") {
		cfg.Search.FrameDelayMS = f.FrameDelay
	}
}

// Load reads the file named by --config, or the default path, and applies
// the explicit overrides on top. bus may be nil.
func (f *Flags) Load(bus eventbus.EventBus) (*Config, error) {
	cfg, err := NewConfigServiceWithBus(f.ConfigPath, bus).Load()
	if err != nil {
		return nil, err
	}
	return f.Overlay(cfg)
}

// Overlay applies the overrides to cfg and validates the result
func (f *Flags) Overlay(cfg *Config) (*Config, error) {
	f.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

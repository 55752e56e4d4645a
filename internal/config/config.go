// Package config loads and validates the settings of the surreal commands.
package config

import (
	"errors"
	"fmt"
	"os"

	"surreal/internal/core"
	"surreal/internal/experience"
	"surreal/internal/logging"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Defaults used when neither a file nor a flag sets a value.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFPS    = 60
	DefaultSeed   = 42
)

// Validation errors, checked with errors.Is.
var (
	ErrInvalidMode = errors.New("config: invalid mode")
	ErrInvalidSize = errors.New("config: invalid size")
	ErrInvalidFPS  = errors.New("config: invalid fps")
)

// Config represents the settings shared by every surreal command.
type Config struct {
	Width     int       `yaml:"width"`
	Height    int       `yaml:"height"`
	Mode      core.Mode `yaml:"mode"`
	Running   bool      `yaml:"running"`
	Seed      int64     `yaml:"seed"`
	FPS       int       `yaml:"fps"`
	Followers bool      `yaml:"followers"`
	Controls  bool      `yaml:"controls"`
	LogLevel  string    `yaml:"log_level"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Mode:     core.ModeHigh,
		Running:  true,
		Seed:     DefaultSeed,
		FPS:      DefaultFPS,
		Controls: true,
		LogLevel: "off",
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads a YAML file over base and validates the result. Keys absent
// from the file keep base's values. base is modified and returned.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if _, err := core.ParseMode(string(c.Mode)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}
	if _, _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Size returns the configured viewport.
func (c *Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Experience converts the settings into the root widget configuration.
func (c *Config) Experience() experience.Config {
	return experience.Config{
		Running:   c.Running,
		Mode:      c.Mode,
		Seed:      c.Seed,
		FPS:       c.FPS,
		Followers: c.Followers,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.Var((*modeValue)(&c.Mode), "mode", "quality mode: high or smooth")
	fs.BoolVar(&c.Running, "running", c.Running, "start with the animation running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for particle placement")
	fs.IntVar(&c.FPS, "fps", c.FPS, "animation frames per second")
	fs.BoolVar(&c.Followers, "followers", c.Followers, "show the cursor followers")
	fs.BoolVar(&c.Controls, "controls", c.Controls, "show the on-screen buttons")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: off, debug, info, warn, error")
}

type modeValue core.Mode

func (m *modeValue) String() string { return string(*m) }

func (m *modeValue) Set(s string) error {
	mode, err := core.ParseMode(s)
	if err != nil {
		return err
	}
	*m = modeValue(mode)
	return nil
}

func (m *modeValue) Type() string { return "mode" }

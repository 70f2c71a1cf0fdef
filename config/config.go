package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/skillcast/parameter"
)

// EnvPrefix scopes every environment override
const EnvPrefix = "SKILLCAST_"

// Config is the runtime configuration of the skill core and sandbox
type Config struct {
	Beam    BeamConfig    `yaml:"beam" envPrefix:"BEAM_"`
	Log     LogConfig     `yaml:"log" envPrefix:"LOG_"`
	Sandbox SandboxConfig `yaml:"sandbox" envPrefix:"SANDBOX_"`

	// CatalogPath points at the skill catalog YAML, empty uses the built-in catalog
	CatalogPath string `yaml:"catalog" env:"CATALOG"`
}

type BeamConfig struct {
	MinLength    float64 `yaml:"min_length" env:"MIN_LENGTH"`
	DefaultRange float64 `yaml:"default_range" env:"DEFAULT_RANGE"`
}

type LogConfig struct {
	Level       string `yaml:"level" env:"LEVEL"`
	Development bool   `yaml:"development" env:"DEVELOPMENT"`
	Dir         string `yaml:"dir" env:"DIR"`
}

type SandboxConfig struct {
	Tick         time.Duration `yaml:"tick" env:"TICK"`
	Audio        bool          `yaml:"audio" env:"AUDIO"`
	GroundHeight float64       `yaml:"ground_height" env:"GROUND_HEIGHT"`
	CellSize     float64       `yaml:"cell_size" env:"CELL_SIZE"` // World units per terminal column
}

var (
	ErrInvalidMinLength = errors.New("beam min_length must be positive")
	ErrInvalidTick      = errors.New("sandbox tick must be positive")
)

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Beam: BeamConfig{
			MinLength:    parameter.BeamMinLength,
			DefaultRange: parameter.BeamDefaultRange,
		},
		Log: LogConfig{
			Level: "info",
			Dir:   "logs",
		},
		Sandbox: SandboxConfig{
			Tick:         parameter.TickInterval,
			Audio:        true,
			GroundHeight: parameter.GroundHeight,
			CellSize:     0.5,
		},
	}
}

// Load reads defaults, then the YAML file at path if non-empty, then environment overrides
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv applies SKILLCAST_ prefixed environment overrides onto target
// Unset variables leave existing values untouched
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects values the core cannot run with
func (c Config) Validate() error {
	if c.Beam.MinLength <= 0 {
		return ErrInvalidMinLength
	}
	if c.Sandbox.Tick <= 0 {
		return ErrInvalidTick
	}
	return nil
}

package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Rows           int           `json:"rows" env:"GOL_ROWS"`
	Columns        int           `json:"columns" env:"GOL_COLUMNS"`
	LivePercent    int           `json:"live_percent" env:"GOL_LIVE_PERCENT"`
	FrameRate      time.Duration `json:"frame_rate" env:"GOL_FRAME_RATE"`
	MaxGenerations int           `json:"max_generations" env:"GOL_MAX_GENERATIONS"`
	Seed           int64         `json:"seed" env:"GOL_SEED"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:           10,
		Columns:        10,
		LivePercent:    30,
		FrameRate:      1000 * time.Millisecond,
		MaxGenerations: 0, // run until extinction
		Seed:           0, // draw a random seed
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnv overlays any GOL_* environment variables onto config
func ApplyEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}

// Validate reports settings the board or driver cannot run with
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Columns <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] dimensions must be positive, got %dx%d", c.Rows, c.Columns)
	case c.LivePercent < 0 || c.LivePercent > 100:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] live percent must be within [0,100], got %d", c.LivePercent)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must not be negative, got %s", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}

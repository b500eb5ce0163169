// meta/meta.go
package meta

import (
	"fmt"
	"os"
	"time"

	"tictacpro/geometry"

	"gopkg.in/yaml.v3"
)

// GO_ROUTINES defines the default number of concurrent simulated sessions.
const GO_ROUTINES = 8

// SESSIONS defines the default number of simulated sessions.
const SESSIONS = 100

// MAX_TURNS bounds the actions a session runner takes within one level.
const MAX_TURNS = 300

// Config holds the tunable parameters of a game session.
type Config struct {
	BoardSide     int           `yaml:"board_side"`
	RunLength     int           `yaml:"run_length"`
	MaxLevels     int           `yaml:"max_levels"`
	LineCap       int           `yaml:"line_cap"`
	BasePoints    int           `yaml:"base_points"`
	OpponentDelay time.Duration `yaml:"opponent_delay"`
	Seed          uint64        `yaml:"seed"` // 0 picks a time-based seed
}

func Default() Config {
	return Config{
		BoardSide:     5,
		RunLength:     geometry.DefaultRunLength(5),
		MaxLevels:     10,
		LineCap:       3,
		BasePoints:    1000,
		OpponentDelay: 300 * time.Millisecond,
	}
}

// Load overlays the YAML file at path onto the defaults. A run length left
// unset follows the configured board side.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw struct {
		RunLength *int `yaml:"run_length"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if raw.RunLength == nil {
		cfg.RunLength = geometry.DefaultRunLength(cfg.BoardSide)
	}
	return cfg, cfg.Validate()
}

// Validate checks every field and builds the board once so geometry errors
// surface at startup.
func (c Config) Validate() error {
	if _, err := c.Board(); err != nil {
		return err
	}
	switch {
	case c.MaxLevels < 1:
		return fmt.Errorf("%w: max_levels must be positive, got %d", geometry.ErrConfiguration, c.MaxLevels)
	case c.LineCap < 1:
		return fmt.Errorf("%w: line_cap must be positive, got %d", geometry.ErrConfiguration, c.LineCap)
	case c.BasePoints < 1:
		return fmt.Errorf("%w: base_points must be positive, got %d", geometry.ErrConfiguration, c.BasePoints)
	case c.OpponentDelay < 0:
		return fmt.Errorf("%w: opponent_delay must not be negative, got %s", geometry.ErrConfiguration, c.OpponentDelay)
	}
	return nil
}

func (c Config) Board() (*geometry.Board, error) {
	return geometry.New(c.BoardSide, c.RunLength)
}

// SessionSeed derives the seed of the i-th session.
func (c Config) SessionSeed(i int) uint64 {
	base := c.Seed
	if base == 0 {
		base = uint64(time.Now().UnixNano())
	}
	return base + uint64(i)
}

// Package config provides YAML-based game configuration loading and
// preset management for the dots game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DotsConfig contains all configuration for a dots session.
type DotsConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Game     GameConfig     `yaml:"game"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Display  DisplayConfig  `yaml:"display"`
}

// BoardConfig defines the board dimensions and colors.
type BoardConfig struct {
	GridSize    int `yaml:"grid_size"`
	PaletteSize int `yaml:"palette_size"`
}

// GameConfig defines the rules of a session.
type GameConfig struct {
	MoveBudget  int    `yaml:"move_budget"`
	LoopRemoval string `yaml:"loop_removal"`       // "color" or "path"
	RNGSeed     *int64 `yaml:"rng_seed,omitempty"` // nil seeds from the clock
}

// FeedbackConfig holds the player's feedback preferences.
type FeedbackConfig struct {
	Sound   bool `yaml:"sound"`
	Vibrate bool `yaml:"vibrate"`
}

// DisplayConfig defines how the board is drawn in a terminal.
type DisplayConfig struct {
	AnimationMS int `yaml:"animation_ms"`
	CellWidth   int `yaml:"cell_width"`
	CellHeight  int `yaml:"cell_height"`
}

// ToSettings converts the configuration into controller settings.
func (c DotsConfig) ToSettings() dots.Settings {
	s := dots.Settings{
		GridSize:    c.Board.GridSize,
		MoveBudget:  c.Game.MoveBudget,
		PaletteSize: c.Board.PaletteSize,
		LoopRemoval: dots.LoopRemoval(c.Game.LoopRemoval),
	}
	if c.Game.RNGSeed != nil {
		s = s.WithSeed(*c.Game.RNGSeed)
	}
	return s
}

// Validate checks the configuration and reports every problem found.
func (c DotsConfig) Validate() error {
	var errs []error
	if err := c.ToSettings().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Display.AnimationMS < 0 {
		errs = append(errs, fmt.Errorf("animation_ms %d is negative", c.Display.AnimationMS))
	}
	if c.Display.CellWidth < 1 {
		errs = append(errs, fmt.Errorf("cell_width %d is below 1", c.Display.CellWidth))
	}
	if c.Display.CellHeight < 1 {
		errs = append(errs, fmt.Errorf("cell_height %d is below 1", c.Display.CellHeight))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// SetSeed fixes the board seed.
func (c *DotsConfig) SetSeed(seed int64) {
	c.Game.RNGSeed = &seed
}

package config

import (
	"fmt"
	"strings"
)

// Preset represents a named board and rule combination.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetSmall   Preset = "small"
	PresetLarge   Preset = "large"
	PresetBlitz   Preset = "blitz"
	PresetZen     Preset = "zen"
)

// PresetInfo describes a preset for listings.
type PresetInfo struct {
	Name        Preset
	GridSize    int
	PaletteSize int
	MoveBudget  int
	Description string
}

var presets = []PresetInfo{
	{PresetClassic, 6, 5, 30, "The original 6x6 board with 30 moves"},
	{PresetSmall, 4, 4, 20, "A quick 4x4 board with four colors"},
	{PresetLarge, 8, 6, 40, "An 8x8 board with six colors"},
	{PresetBlitz, 6, 5, 10, "Ten moves to score as much as you can"},
	{PresetZen, 6, 4, 999, "Play until the board runs out of moves"},
}

// Presets returns all presets in display order.
func Presets() []PresetInfo {
	out := make([]PresetInfo, len(presets))
	copy(out, presets)
	return out
}

// PresetNames returns the preset names joined for help text.
func PresetNames() string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = string(p.Name)
	}
	return strings.Join(names, ", ")
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (PresetInfo, bool) {
	for _, p := range presets {
		if string(p.Name) == strings.ToLower(name) {
			return p, true
		}
	}
	return PresetInfo{}, false
}

// ApplyPreset modifies the config based on a preset.
// Feedback and display settings are left alone.
func ApplyPreset(cfg *DotsConfig, name string) error {
	p, ok := LookupPreset(name)
	if !ok {
		return fmt.Errorf("%w: unknown preset %q (available: %s)", ErrInvalidConfig, name, PresetNames())
	}
	cfg.Board.GridSize = p.GridSize
	cfg.Board.PaletteSize = p.PaletteSize
	cfg.Game.MoveBudget = p.MoveBudget
	return nil
}

package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

//go:embed defaults/dots.yaml
var defaultDotsYAML []byte

// DefaultConfig returns the default dots configuration.
func DefaultConfig() DotsConfig {
	return DotsConfig{
		Board: BoardConfig{
			GridSize:    dots.DefaultGridSize,
			PaletteSize: dots.DefaultPaletteSize,
		},
		Game: GameConfig{
			MoveBudget:  dots.DefaultMoveBudget,
			LoopRemoval: string(dots.LoopRemovesColor),
		},
		Feedback: FeedbackConfig{
			Sound:   false,
			Vibrate: true,
		},
		Display: DisplayConfig{
			AnimationMS: 180,
			CellWidth:   4,
			CellHeight:  2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDotsYAML
}

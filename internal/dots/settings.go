package dots

import (
	"errors"
	"fmt"
)

// LoopRemoval selects which dots a closed loop removes.
type LoopRemoval string

const (
	// LoopRemovesColor removes every dot of the loop's color.
	LoopRemovesColor LoopRemoval = "color"
	// LoopRemovesPath removes only the dots on the path.
	LoopRemovesPath LoopRemoval = "path"
)

// Default session parameters.
const (
	DefaultGridSize    = 6
	DefaultMoveBudget  = 30
	DefaultPaletteSize = 5
	MinGridSize        = 3
)

// Settings are read once when a session is constructed.
type Settings struct {
	GridSize    int
	MoveBudget  int
	PaletteSize int
	Seed        *int64 // nil means seed from system entropy
	LoopRemoval LoopRemoval
}

// DefaultSettings returns the classic 6×6, 30-move, 5-color game.
func DefaultSettings() Settings {
	return Settings{
		GridSize:    DefaultGridSize,
		MoveBudget:  DefaultMoveBudget,
		PaletteSize: DefaultPaletteSize,
		LoopRemoval: LoopRemovesColor,
	}
}

// WithSeed returns a copy of s with a fixed seed.
func (s Settings) WithSeed(seed int64) Settings {
	s.Seed = &seed
	return s
}

// Validate checks every field and reports all problems at once.
func (s Settings) Validate() error {
	var errs []error
	if s.GridSize < MinGridSize {
		errs = append(errs, fmt.Errorf("grid size %d is below %d", s.GridSize, MinGridSize))
	}
	if s.MoveBudget < 1 {
		errs = append(errs, fmt.Errorf("move budget %d is below 1", s.MoveBudget))
	}
	if s.PaletteSize < MinPalette || s.PaletteSize > MaxPalette {
		errs = append(errs, fmt.Errorf("palette size %d is outside [%d, %d]", s.PaletteSize, MinPalette, MaxPalette))
	}
	switch s.LoopRemoval {
	case LoopRemovesColor, LoopRemovesPath, "":
	default:
		errs = append(errs, fmt.Errorf("unknown loop removal %q", s.LoopRemoval))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
}

// Label returns the board label used to group high scores, e.g. "6x6".
func (s Settings) Label() string {
	return fmt.Sprintf("%dx%d", s.GridSize, s.GridSize)
}

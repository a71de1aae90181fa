package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/platform/tui"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

var (
	flagPreset      string
	flagGrid        int
	flagMoves       int
	flagPalette     int
	flagLoopRemoval string
	flagAnimationMS int
	flagSound       bool
	flagVibrate     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in this terminal.

Controls:
  Mouse drag          - Draw a path, release to clear it
  Arrows/hjkl + Space - Move the cursor, Space starts and finishes a path
  Esc                 - Drop the current path
  R                   - Deal a new board
  Tab                 - High scores
  Q/Ctrl+C            - Quit

Presets:
` + presetSummary() + `
Examples:
  dots play
  dots play --preset small
  dots play --grid 7 --moves 25
  dots play --loop-removal path --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that shape the board on cmd.
func addGameFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&flagPreset, "preset", "", "Board preset: "+config.PresetNames())
	flags.IntVar(&flagGrid, "grid", 0, "Grid size (rows and columns)")
	flags.IntVar(&flagMoves, "moves", 0, "Move budget")
	flags.IntVar(&flagPalette, "palette", 0, "Number of dot colors")
	flags.StringVar(&flagLoopRemoval, "loop-removal", "", "What a loop clears: color or path")
	flags.IntVar(&flagAnimationMS, "animation", 0, "Fall animation length in milliseconds")
	flags.BoolVar(&flagSound, "sound", false, "Ring the terminal bell when dots are cleared")
	flags.BoolVar(&flagVibrate, "vibrate", false, "Flash the board frame when dots are cleared")
}

// gameConfig resolves the configuration for a game from file, preset and flags.
func gameConfig(cmd *cobra.Command) (config.DotsConfig, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.DotsConfig{}, err
	}

	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, flagPreset); err != nil {
			return config.DotsConfig{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("grid") {
		cfg.Board.GridSize = flagGrid
	}
	if flags.Changed("palette") {
		cfg.Board.PaletteSize = flagPalette
	}
	if flags.Changed("moves") {
		cfg.Game.MoveBudget = flagMoves
	}
	if flags.Changed("loop-removal") {
		cfg.Game.LoopRemoval = flagLoopRemoval
	}
	if flags.Changed("animation") {
		cfg.Display.AnimationMS = flagAnimationMS
	}
	if flags.Changed("sound") {
		cfg.Feedback.Sound = flagSound
	}
	if flags.Changed("vibrate") {
		cfg.Feedback.Vibrate = flagVibrate
	}

	if err := cfg.Validate(); err != nil {
		return config.DotsConfig{}, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := gameConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: core.DefaultConfig().WithSize(width, height),
		Store:   store,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

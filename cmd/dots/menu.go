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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board preset from a menu",
	Long: `Start dots in interactive menu mode.

Use arrow keys or j/k to choose a preset, Enter to play it.
Quitting a game returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play preset
  Tab          - High scores
  Q            - Quit

Examples:
  dots menu
  dots menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	base, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	runtime := core.DefaultConfig().WithSize(width, height)

	// Menu loop
	for {
		result, err := tui.RunMenu(store, runtime)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		runtime = result.Config

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			if store == nil {
				continue
			}
			if err := tui.RunScoreboard(store, result.Board, runtime.ScreenW, runtime.ScreenH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			continue
		}

		cfg := base
		if err := config.ApplyPreset(&cfg, string(result.Preset)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		if err := tui.Run(tui.Options{
			Config:  cfg,
			Runtime: runtime,
			Store:   store,
			Logger:  logger,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
	}
}

// dots is a terminal edition of the connect-the-dots puzzle.
//
// Usage:
//
//	dots play                - Play a game in this terminal
//	dots serve               - Start SSH server for remote play
//	dots scores [board]      - Show high scores for a board, e.g. 6x6
//	dots presets             - List board presets
//	dots config              - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.dots/scores.db)
//	--config <path>      - Use a custom configuration file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dots",
	Short: "Dots - connect same-colored dots in your terminal",
	Long: `Dots is a terminal puzzle: drag through horizontally or vertically
adjacent dots of one color to clear them. Close a loop to clear every dot
of that color. Score as many dots as you can before the moves run out.

Available commands:
  play     - Play a game
  serve    - Start SSH server for remote play
  scores   - View high scores
  presets  - List board presets
  config   - Print the effective configuration

Examples:
  dots play
  dots play --preset blitz
  dots play --grid 8 --palette 6
  dots serve --ssh :2222
  dots scores 6x6`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (random based on time when unset)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr logger shared by every command.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dots",
		Level:           level,
	}), nil
}

// loadConfig loads the configuration file and applies the global --seed.
func loadConfig(cmd *cobra.Command) (config.DotsConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.DotsConfig{}, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.SetSeed(flagSeed)
	}
	return cfg, nil
}

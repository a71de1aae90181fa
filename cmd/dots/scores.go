package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dots/internal/platform/tui"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores for a board",
	Long: `Display the high scores for a board label such as 6x6.
Without a board, the board from the current configuration is shown.

In a terminal the scores open in an interactive table where Tab switches
boards. Use --plain for a text listing.

Examples:
  dots scores
  dots scores 8x8 --plain
  dots scores 4x4 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score for the board")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores in the text listing")
}

func runScores(cmd *cobra.Command, args []string) {
	board := ""
	if len(args) > 0 {
		board = args[0]
	} else {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		board = cfg.ToSettings().Label()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(board); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s\n", board)
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, board, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store, board, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes a plain text high score listing to stdout.
func printScores(store *storage.Store, board string, limit int) error {
	scores, err := store.TopScores(board, limit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", board)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dots play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-15s  %s\n", "Rank", "Score", "Moves", "Ended", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-15s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-5d  %-15s  %s\n", i+1, entry.Score, entry.MovesUsed, entry.Reason, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetBoardStats(board); err == nil && stats != nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

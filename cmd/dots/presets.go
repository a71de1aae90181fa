package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dots/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List board presets",
	Long:  `Shows the board presets accepted by 'dots play --preset'.`,
	Run:   runPresets,
}

// presetSummary lists the presets for help text.
func presetSummary() string {
	var b strings.Builder
	for _, p := range config.Presets() {
		fmt.Fprintf(&b, "  %-8s - %s\n", p.Name, p.Description)
	}
	return b.String()
}

func runPresets(_ *cobra.Command, _ []string) {
	presets := config.Presets()

	fmt.Println("Available presets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %-5s  %-6s  %-5s  %s\n", maxNameLen, "Name", "Board", "Colors", "Moves", "Description")
	fmt.Printf("  %-*s  %-5s  %-6s  %-5s  %s\n", maxNameLen, "----", "-----", "------", "-----", "-----------")

	for _, p := range presets {
		board := fmt.Sprintf("%dx%d", p.GridSize, p.GridSize)
		fmt.Printf("  %-*s  %-5s  %-6d  %-5d  %s\n", maxNameLen, p.Name, board, p.PaletteSize, p.MoveBudget, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'dots play --preset <name>' to play one.")
}

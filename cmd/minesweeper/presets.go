package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long: `Shows every difficulty preset with its board size and mine
density, as resolved from the active config (--config).`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	gameCfg, current := loadGameConfig()

	fmt.Println("Difficulty presets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range config.PresetOrder {
		if len(p) > maxNameLen {
			maxNameLen = len(p)
		}
	}

	fmt.Printf("  %-*s  %-20s  %s\n", maxNameLen, "Name", "Board", "Density")
	fmt.Printf("  %-*s  %-20s  %s\n", maxNameLen, "----", "-----", "-------")

	for _, p := range config.PresetOrder {
		board, ok := gameCfg.PresetBoard(p)
		if !ok {
			continue
		}
		density := 0.0
		if cells := board.Width * board.Height; cells > 0 {
			density = float64(board.Mines) / float64(cells) * 100
		}
		marker := ""
		if p == current {
			marker = "  (selected)"
		}
		fmt.Printf("  %-*s  %-20s  %5.1f%%%s\n", maxNameLen, p, board, density, marker)
	}

	fmt.Println()
	fmt.Println("Run 'minesweeper play --difficulty <name>' to play a preset.")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to choose a difficulty, Enter to play.
When a game is over (or paused), Esc/B returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Scores
  Q            - Quit

Examples:
  minesweeper menu
  minesweeper menu --difficulty hard
  minesweeper menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, preset := loadGameConfig()
	cfg := runtimeConfig()

	logger, closeLog := openEventLog()
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := []tui.ModelOption{tui.WithBackToMenu()}
	if logger != nil {
		opts = append(opts, tui.WithLogger(logger))
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, gameCfg, preset, minesweeper.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, minesweeper.GameID, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		preset = menuResult.Preset
		game := minesweeper.NewWithPreset(preset)

		backToMenu, runErr := tui.Run(game, store, cfg, opts...)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			break
		}
		if !backToMenu {
			break
		}
		// A fixed --seed would replay the same board every round
		cfg.Seed = 0
	}
}

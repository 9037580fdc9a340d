package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game at the chosen difficulty.

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Space/Enter       - Dig (on a number: clear around it)
  F                 - Flag or unflag
  C                 - Clear around a number
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 9x9, 10 mines
  normal - 16x16, 40 mines
  hard   - 30x16, 99 mines
  custom - the board block of the config file

Examples:
  minesweeper play
  minesweeper play --difficulty easy
  minesweeper play --seed 42
  minesweeper play --config ./my-board.yaml --difficulty custom
  minesweeper play --log-file ./events.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	_, preset := loadGameConfig()
	cfg := runtimeConfig()

	logger, closeLog := openEventLog()
	defer closeLog()

	game := minesweeper.NewWithPreset(preset)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var opts []tui.ModelOption
	if logger != nil {
		opts = append(opts, tui.WithLogger(logger))
	}
	_, runErr := tui.Run(game, store, cfg, opts...)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

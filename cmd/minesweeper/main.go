// minesweeper is a terminal minesweeper with local and SSH play.
//
// Usage:
//
//	minesweeper play         - Play a game at the chosen difficulty
//	minesweeper menu         - Pick a difficulty interactively, play, repeat
//	minesweeper serve        - Start SSH server for remote play
//	minesweeper scores       - Show high scores, recent games and stats
//	minesweeper presets      - List difficulty presets and board sizes
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Load a custom game config YAML
//	--difficulty <name>   - easy, normal, hard or custom
//	--log-file <path>     - Write every game event to a log file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper for the terminal, playable locally or over SSH.

The first dig is always safe. Numbers count the mines around a cell;
flag the mines and dig everything else to win.

Available commands:
  play     - Play a game directly
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores and stats
  presets  - List difficulty presets

Examples:
  minesweeper play
  minesweeper play --difficulty hard
  minesweeper menu
  minesweeper serve --ssh :2222
  minesweeper scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, custom")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
}

// loadGameConfig loads and checks the game config and difficulty flags,
// exiting on a bad value so problems surface before the TUI starts.
func loadGameConfig() (config.MinesweeperConfig, config.DifficultyPreset) {
	cfg, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	check := cfg
	if err := config.ApplyMinesweeperPreset(&check, preset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	minesweeper.SetConfigPath(flagConfig)
	minesweeper.SetDifficultyPreset(string(preset))
	return cfg, preset
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openEventLog opens --log-file and installs it as the game event logger.
// The returned func closes the file. Without the flag the logger is nil.
func openEventLog() (*log.Logger, func()) {
	if flagLogFile == "" {
		return nil, func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
		os.Exit(1)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "minesweeper",
		Level:           log.DebugLevel,
	})
	minesweeper.SetEventLogger(logger)
	return logger, func() {
		minesweeper.SetEventLogger(nil)
		f.Close()
	}
}

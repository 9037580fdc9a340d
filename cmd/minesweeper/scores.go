package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and stats",
	Long: `Display the top 10 high scores, the most recent games and
overall statistics (games played, win rate, best time).

Examples:
  minesweeper scores
  minesweeper scores --recent 20
  minesweeper scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent games to show")
}

func runScores(_ *cobra.Command, _ []string) {
	gameID := minesweeper.GameID

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	results, err := store.RecentResults(gameID, flagRecent)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Println("High Scores - Minesweeper")
	fmt.Println()

	if len(scores) == 0 && len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'minesweeper play' to set the first high score!")
		return
	}

	if len(scores) > 0 {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}
		fmt.Println()
	}

	if len(results) > 0 {
		fmt.Println("Recent games:")
		fmt.Printf("  %-6s  %-8s  %-10s  %-6s  %s\n", "Result", "Preset", "Board", "Time", "Date")
		fmt.Printf("  %-6s  %-8s  %-10s  %-6s  %s\n", "------", "------", "-----", "----", "----")
		for _, r := range results {
			outcome := "lost"
			if r.Won {
				outcome = "won"
			}
			board := fmt.Sprintf("%dx%d/%d", r.Width, r.Height, r.Mines)
			fmt.Printf("  %-6s  %-8s  %-10s  %-6s  %s\n",
				outcome, r.Preset, board, tui.FormatDuration(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}

	fmt.Printf("Games: %d  Wins: %d  Win rate: %.0f%%\n", stats.GamesCount, stats.Wins, stats.WinRate()*100)
	if stats.BestTime > 0 {
		fmt.Printf("Best time: %s\n", tui.FormatDuration(stats.BestTime))
	}
	if stats.HighScore > 0 {
		fmt.Printf("Best: %d\n", stats.HighScore)
	}
}

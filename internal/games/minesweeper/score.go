package minesweeper

import "github.com/vovakirdan/tui-minesweeper/internal/config"

type scoreInput struct {
	cellsDug int
	mines    int
	seconds  int
	won      bool
}

// computeScore awards points per safe cell dug. A win adds a bonus that
// scales with the mine count and shrinks with elapsed time, but never
// drops the total below the per-cell base.
func computeScore(s config.ScoringConfig, in scoreInput) int {
	base := s.PointsPerCell * in.cellsDug
	if !in.won {
		return base
	}
	bonus := s.WinBonus*in.mines - s.TimePenalty*in.seconds
	if bonus < 0 {
		bonus = 0
	}
	return base + bonus
}

package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the hard-coded minesweeper configuration.
// It is used when the embedded YAML cannot be parsed.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Board:   BoardConfig{Width: 16, Height: 16, Mines: 40},
		Presets: BuiltinPresets(),
		Animation: AnimationConfig{
			DigTicks:          3,
			FloodTicksPerCell: 1,
			DetonateTicks:     30,
			MaxTicks:          20,
		},
		Scoring: ScoringConfig{
			PointsPerCell: 10,
			WinBonus:      50,
			TimePenalty:   1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "minesweeper":
		return defaultMinesweeperYAML
	default:
		return nil
	}
}

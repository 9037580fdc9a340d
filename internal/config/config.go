// Package config provides YAML-based game configuration loading and
// difficulty presets for the minesweeper game.
package config

import "fmt"

// MinesweeperConfig contains all configuration for the minesweeper game.
type MinesweeperConfig struct {
	Board     BoardConfig                      `yaml:"board"`
	Presets   map[DifficultyPreset]BoardConfig `yaml:"presets"`
	Animation AnimationConfig                  `yaml:"animation"`
	Scoring   ScoringConfig                    `yaml:"scoring"`
}

// BoardConfig defines the dimensions and mine count of a board.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// AnimationConfig defines presentation effect lengths, in ticks.
// While an effect is running the board ignores player actions.
type AnimationConfig struct {
	DigTicks          int `yaml:"dig_ticks"`            // Base length of a reveal effect
	FloodTicksPerCell int `yaml:"flood_ticks_per_cell"` // Extra ticks per additional cell uncovered
	DetonateTicks     int `yaml:"detonate_ticks"`       // Length of the detonation flash
	MaxTicks          int `yaml:"max_ticks"`            // Upper bound for a reveal effect
}

// ScoringConfig defines how a finished game is scored.
type ScoringConfig struct {
	PointsPerCell int `yaml:"points_per_cell"` // Awarded for every safe cell dug
	WinBonus      int `yaml:"win_bonus"`       // Multiplied by the mine count on a win
	TimePenalty   int `yaml:"time_penalty"`    // Subtracted per elapsed second on a win
}

// Validate reports whether a board can be built from this configuration.
func (b BoardConfig) Validate() error {
	if b.Width < 1 || b.Height < 1 {
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d", b.Width, b.Height)
	}
	if b.Mines < 0 {
		return fmt.Errorf("config: mine count must not be negative, got %d", b.Mines)
	}
	if b.Mines > b.Width*b.Height {
		return fmt.Errorf("config: %d mines do not fit on a %dx%d board", b.Mines, b.Width, b.Height)
	}
	return nil
}

// Validate checks the active board and every preset.
func (c MinesweeperConfig) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return err
	}
	for name, p := range c.Presets {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("config: preset %q: %w", name, err)
		}
	}
	if c.Animation.MaxTicks < 0 {
		return fmt.Errorf("config: animation.max_ticks must not be negative")
	}
	return nil
}

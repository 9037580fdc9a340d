package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named board size.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom" // Uses the board block as configured
)

// PresetOrder lists the presets in the order menus show them.
var PresetOrder = []DifficultyPreset{
	DifficultyEasy,
	DifficultyNormal,
	DifficultyHard,
	DifficultyCustom,
}

// BuiltinPresets returns the classic board sizes.
func BuiltinPresets() map[DifficultyPreset]BoardConfig {
	return map[DifficultyPreset]BoardConfig{
		DifficultyEasy:   {Width: 9, Height: 9, Mines: 10},
		DifficultyNormal: {Width: 16, Height: 16, Mines: 40},
		DifficultyHard:   {Width: 30, Height: 16, Mines: 99},
	}
}

// ParseDifficulty converts a flag value to a preset.
// An empty string maps to the normal preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range PresetOrder {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or custom)", s)
}

// PresetBoard returns the board for a preset, preferring the config's
// presets block over the built-in sizes.
func (c MinesweeperConfig) PresetBoard(preset DifficultyPreset) (BoardConfig, bool) {
	if preset == DifficultyCustom {
		return c.Board, true
	}
	if b, ok := c.Presets[preset]; ok {
		return b, true
	}
	b, ok := BuiltinPresets()[preset]
	return b, ok
}

// String formats the board as "9x9, 10 mines".
func (b BoardConfig) String() string {
	return fmt.Sprintf("%dx%d, %d mines", b.Width, b.Height, b.Mines)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMinesweeper loads minesweeper configuration.
// Search order: customPath -> ~/.arcade/configs/minesweeper.yaml -> ./configs/minesweeper.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MinesweeperConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodeMinesweeper(data)
		if err != nil {
			return MinesweeperConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return MinesweeperConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("minesweeper.yaml"),
		filepath.Join("configs", "minesweeper.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeMinesweeper(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeMinesweeper(defaultMinesweeperYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultMinesweeperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeMinesweeper(data []byte) (MinesweeperConfig, error) {
	cfg := DefaultMinesweeperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MinesweeperConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyMinesweeperPreset sets the active board from a difficulty preset.
// The custom preset keeps the configured board.
func ApplyMinesweeperPreset(cfg *MinesweeperConfig, preset DifficultyPreset) error {
	board, ok := cfg.PresetBoard(preset)
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q", preset)
	}
	if err := board.Validate(); err != nil {
		return fmt.Errorf("config: preset %q: %w", preset, err)
	}
	cfg.Board = board
	return nil
}

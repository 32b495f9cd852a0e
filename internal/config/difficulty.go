package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPinyinPreset modifies the config based on a difficulty preset.
//
// Easy colors tiles by sound and grants extra moves. Hard shows only
// characters, disables hints and cuts the move budget.
func ApplyPinyinPreset(cfg *PinyinConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Display.ColorHints = true
		cfg.Display.Hints = true
		scaleMoves(cfg, 3, 2)
	case DifficultyHard:
		cfg.Display.HanziRatio = 1.0
		cfg.Display.ColorHints = false
		cfg.Display.Hints = false
		scaleMoves(cfg, 3, 4)
	}
}

func scaleMoves(cfg *PinyinConfig, num, den int) {
	scale := func(m int) int {
		m = m * num / den
		if m < 1 {
			m = 1
		}
		return m
	}
	for i := range cfg.Levels {
		cfg.Levels[i].Moves = scale(cfg.Levels[i].Moves)
	}
	cfg.Endless.Moves = scale(cfg.Endless.Moves)
}

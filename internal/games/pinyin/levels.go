// Package pinyin implements the pinyin match game: a match-3 board whose
// tiles show either the pinyin or a character of a Chinese syllable.
// Tiles match by sound, so 木, 目 and mù all clear together.
package pinyin

import (
	"fmt"

	"github.com/vovakirdan/pinyin-match/internal/config"
	"github.com/vovakirdan/pinyin-match/internal/match3"
)

// Package-level variables for config
var (
	configPath       string
	levelDir         string
	difficultyPreset string
	selectedStart    int
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelDir sets a directory of extra level files merged over the config.
func SetLevelDir(dir string) {
	levelDir = dir
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting campaign level (1-based). 0 means start
// from the beginning.
func SetStartLevel(level int) {
	selectedStart = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStart
}

// LoadConfig loads, merges, adjusts and validates the game configuration
// using the package-level settings.
func LoadConfig() (config.PinyinConfig, error) {
	cfg, err := config.LoadPinyin(configPath)
	if err != nil {
		return cfg, err
	}

	if levelDir != "" {
		extra, err := config.LoadLevelDir(levelDir)
		if err != nil {
			return cfg, err
		}
		config.MergeLevels(&cfg, extra)
	}

	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPinyinPreset(&cfg, preset)

	if err := config.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Levels returns the campaign levels of the active configuration, or the
// built-in ones when it cannot be loaded.
func Levels() []config.LevelConfig {
	cfg, err := LoadConfig()
	if err != nil {
		return config.DefaultPinyinConfig().Levels
	}
	return cfg.Levels
}

// Alphabet returns the pieces a level draws from: one entry per character,
// so sounds with more characters come up more often.
func Alphabet(lvl config.LevelConfig) []match3.PieceID {
	out := make([]match3.PieceID, 0, len(lvl.Characters))
	for _, c := range lvl.Characters {
		out = append(out, match3.PieceID(c.Pinyin))
	}
	return out
}

// BoardConfig builds the engine configuration for a level.
func BoardConfig(cfg config.PinyinConfig, lvl config.LevelConfig, rng match3.Source) match3.Config {
	w, h := lvl.Size(cfg.Board)
	return match3.Config{
		Width:                 w,
		Height:                h,
		Alphabet:              Alphabet(lvl),
		Rand:                  rng,
		MaxRegenerateAttempts: cfg.Board.MaxRegenerateAttempts,
		MaxCascades:           cfg.Board.MaxCascades,
	}
}

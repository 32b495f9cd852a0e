// Package config provides YAML-based game configuration loading, level
// definitions and difficulty presets for pinyin-match.
package config

// PinyinConfig contains all configuration for the pinyin match game.
type PinyinConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	Endless EndlessConfig `yaml:"endless"`
	Levels  []LevelConfig `yaml:"levels"`
}

// BoardConfig defines the grid and the engine limits.
type BoardConfig struct {
	Width                 int `yaml:"width"`
	Height                int `yaml:"height"`
	MaxRegenerateAttempts int `yaml:"max_regenerate_attempts"`
	MaxCascades           int `yaml:"max_cascades"`
}

// DisplayConfig defines how tiles are labelled and styled.
type DisplayConfig struct {
	HanziRatio float64 `yaml:"hanzi_ratio"` // Chance a tile shows hanzi instead of pinyin
	ColorHints bool    `yaml:"color_hints"` // Color tiles by sound
	Hints      bool    `yaml:"hints"`       // Allow the hint key
}

// EndlessConfig defines the single-board endless mode.
type EndlessConfig struct {
	Moves  int   `yaml:"moves"`
	Levels []int `yaml:"levels"` // Level ids whose characters are pooled; empty means all
}

// LevelConfig defines one campaign level.
type LevelConfig struct {
	ID         int               `yaml:"id"`
	Name       string            `yaml:"name"`
	Target     int               `yaml:"target"`
	Moves      int               `yaml:"moves"`
	Width      int               `yaml:"width,omitempty"`
	Height     int               `yaml:"height,omitempty"`
	Characters []CharacterConfig `yaml:"characters"`
}

// CharacterConfig pairs a pinyin sound with one character that has it.
// Several characters may share a sound; they all match each other.
type CharacterConfig struct {
	Pinyin  string `yaml:"pinyin"`
	Hanzi   string `yaml:"hanzi"`
	Meaning string `yaml:"meaning,omitempty"`
}

// Sounds returns the distinct pinyin of the level in first-seen order.
func (l LevelConfig) Sounds() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range l.Characters {
		if !seen[c.Pinyin] {
			seen[c.Pinyin] = true
			out = append(out, c.Pinyin)
		}
	}
	return out
}

// Size returns the level's board size, falling back to the board defaults.
func (l LevelConfig) Size(board BoardConfig) (int, int) {
	w, h := board.Width, board.Height
	if l.Width > 0 {
		w = l.Width
	}
	if l.Height > 0 {
		h = l.Height
	}
	return w, h
}

// Level returns the level with the given id.
func (c PinyinConfig) Level(id int) (LevelConfig, bool) {
	for _, l := range c.Levels {
		if l.ID == id {
			return l, true
		}
	}
	return LevelConfig{}, false
}

// EndlessLevel builds the pseudo-level used by endless mode by pooling the
// characters of the configured levels. Characters repeated across levels
// are kept once.
func (c PinyinConfig) EndlessLevel() LevelConfig {
	include := make(map[int]bool)
	for _, id := range c.Endless.Levels {
		include[id] = true
	}

	lvl := LevelConfig{ID: 0, Name: "Endless", Moves: c.Endless.Moves}
	seen := make(map[CharacterConfig]bool)
	for _, l := range c.Levels {
		if len(include) > 0 && !include[l.ID] {
			continue
		}
		for _, ch := range l.Characters {
			key := CharacterConfig{Pinyin: ch.Pinyin, Hanzi: ch.Hanzi}
			if seen[key] {
				continue
			}
			seen[key] = true
			lvl.Characters = append(lvl.Characters, ch)
		}
	}
	return lvl
}
